package room

import (
	"context"
	"errors"
	"padeltour-server/pkg/model"
	"sync"

	"github.com/sirupsen/logrus"
)

// Referee owns a single tournament while it is in use
// Every change to the tournament runs in the referee's run loop, one at a time
type Referee struct {
	uuid    string
	store   model.Store
	clients map[*Client]bool
	lock    sync.RWMutex

	// holds counts executions in flight, only touched by the director's run loop
	holds int

	execInRunLoop chan func()
	close         chan bool
	done          chan bool
}

// NewReferee creates a new referee for the tournament
// This is called from a blocking state, so it needs to return quickly
func NewReferee(uuid string, store model.Store) *Referee {
	return &Referee{
		uuid:          uuid,
		store:         store,
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
		done:          make(chan bool),
	}
}

// Clients will return a slice of connected (at the time) clients
func (r *Referee) Clients() []*Client {
	r.lock.RLock()
	defer r.lock.RUnlock()

	clients := make([]*Client, 0, len(r.clients))
	for client := range r.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (r *Referee) StartShift() {
	go r.runLoop()
}

func (r *Referee) runLoop() {
	log := logrus.WithField("uuid", r.uuid)
	log.Debug("creating referee run loop")
	defer close(r.done)

	for {
		select {
		case fn := <-r.execInRunLoop:
			fn()
		case <-r.close:
			// finish what was already queued
			for {
				select {
				case fn := <-r.execInRunLoop:
					fn()
				default:
					log.Debug("terminating referee run loop")
					return
				}
			}
		}
	}
}

// EndShift is called when the referee is no longer needed
func (r *Referee) EndShift() {
	close(r.close)
}

// AddClient adds a client and sends it the current state
// This method must return quickly
func (r *Referee) AddClient(client *Client) {
	r.lock.Lock()
	client.setReferee(r)
	r.clients[client] = true
	r.lock.Unlock()

	r.execInRunLoop <- func() {
		r.sendSnapshot(client, "")
	}
}

// RemoveClient removes a client and returns how many are left
// This method must return quickly
func (r *Referee) RemoveClient(client *Client) int {
	r.lock.Lock()
	defer r.lock.Unlock()

	delete(r.clients, client)
	return len(r.clients)
}

// execute loads the tournament, applies fn, saves the result and broadcasts it
// Nothing is saved once ctx is done, the caller has already given up on the result
// NOTE: must only be called from the run loop
func (r *Referee) execute(ctx context.Context, fn func(t *model.Tournament) error) (*model.Tournament, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t, err := r.store.Get(ctx, r.uuid)
	if err != nil {
		return nil, err
	}

	if err := fn(t); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		logrus.WithError(err).WithField("uuid", r.uuid).Warn("change abandoned")
		return nil, err
	}

	if err := r.store.Save(ctx, t); err != nil {
		return nil, err
	}

	r.broadcast(newSnapshotResponse(t, ""))
	return t, nil
}

// NOTE: must only be called from the run loop
func (r *Referee) broadcast(msg *Response) {
	for _, client := range r.Clients() {
		if !client.Send(msg) {
			logrus.WithField("client", client.String()).Warn("client is not keeping up, message dropped")
		}
	}
}

// NOTE: must only be called from the run loop
func (r *Referee) sendSnapshot(client *Client, ctx string) {
	t, err := r.store.Get(context.Background(), r.uuid)
	if err != nil {
		logrus.WithError(err).WithField("uuid", r.uuid).Error("could not load tournament")
		client.Send(newErrorResponse(ctx, err))
		return
	}

	client.Send(newSnapshotResponse(t, ctx))
}

// ReceivedMessage is called when a client sends a message to the server
func (r *Referee) ReceivedMessage(c *Client, msg *PayloadIn) {
	switch msg.Action {
	case "refresh":
		r.execInRunLoop <- func() {
			r.sendSnapshot(c, msg.Context)
		}
	default:
		logrus.WithField("msg", msg).Warn("unknown message")
		c.Send(newErrorResponse(msg.Context, errors.New("unknown action")))
	}
}
