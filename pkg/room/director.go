package room

import (
	"context"
	"padeltour-server/pkg/model"

	"github.com/sirupsen/logrus"
)

type acquireRequest struct {
	uuid  string
	reply chan *Referee
}

type executeResult struct {
	tournament *model.Tournament
	err        error
}

// Director is responsible for dispatching clients and changes to referees
// A tournament has at most one referee, which serializes every change to it
type Director struct {
	store      model.Store
	referees   map[string]*Referee
	connect    chan *Client
	disconnect chan *Client
	acquire    chan acquireRequest
	release    chan *Referee
	close      chan bool
}

// NewDirector returns a new dispatch object
func NewDirector(store model.Store) *Director {
	return &Director{
		store:      store,
		referees:   make(map[string]*Referee),
		connect:    make(chan *Client, 256),
		disconnect: make(chan *Client, 256),
		acquire:    make(chan acquireRequest),
		release:    make(chan *Referee, 256),
		close:      make(chan bool),
	}
}

// StartShift starts the Director run loop
func (d *Director) StartShift() {
	go d.runLoop()
}

// EndShift stops the run loop and every referee
func (d *Director) EndShift() {
	close(d.close)
}

func (d *Director) runLoop() {
	for {
		select {
		case client := <-d.connect:
			logrus.WithField("client", client.String()).Debug("client connected")
			d.referee(client.uuid).AddClient(client)
		case client := <-d.disconnect:
			logrus.WithField("client", client.String()).Debug("client disconnected")
			referee, found := d.referees[client.uuid]
			if !found {
				logrus.WithField("uuid", client.uuid).WithField("type", "exception").Error("referee not found")
				continue
			}

			referee.RemoveClient(client)
			d.maybeEndShift(referee)
		case req := <-d.acquire:
			referee := d.referee(req.uuid)
			referee.holds++
			req.reply <- referee
		case referee := <-d.release:
			referee.holds--
			d.maybeEndShift(referee)
		case <-d.close:
			for uuid, referee := range d.referees {
				referee.EndShift()
				delete(d.referees, uuid)
			}

			return
		}
	}
}

// NOTE: must only be called from the run loop
func (d *Director) referee(uuid string) *Referee {
	referee, found := d.referees[uuid]
	if !found {
		referee = NewReferee(uuid, d.store)
		referee.StartShift()
		d.referees[uuid] = referee
	}

	return referee
}

// NOTE: must only be called from the run loop
func (d *Director) maybeEndShift(referee *Referee) {
	if referee.holds > 0 || len(referee.Clients()) > 0 {
		return
	}

	referee.EndShift()
	delete(d.referees, referee.uuid)
}

// ClientConnected is called when a client connects to the server
func (d *Director) ClientConnected(client *Client) {
	d.connect <- client
}

// ClientDisconnected is called when a client disconnects from the server
func (d *Director) ClientDisconnected(client *Client) {
	d.disconnect <- client
}

// Execute runs fn against the tournament in its referee's run loop, saves the change and
// broadcasts the new state to every connected client
// An error from fn leaves the stored tournament untouched
func (d *Director) Execute(ctx context.Context, uuid string, fn func(t *model.Tournament) error) (*model.Tournament, error) {
	reply := make(chan *Referee, 1)
	select {
	case d.acquire <- acquireRequest{uuid: uuid, reply: reply}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	referee := <-reply
	defer func() {
		d.release <- referee
	}()

	result := make(chan executeResult, 1)
	fnInRunLoop := func() {
		t, err := referee.execute(ctx, fn)
		result <- executeResult{tournament: t, err: err}
	}

	select {
	case referee.execInRunLoop <- fnInRunLoop:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case res := <-result:
		return res.tournament, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
