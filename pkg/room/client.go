package room

import (
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client is a spectator connected to a tournament via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	referee *Referee
	lock    sync.Mutex

	uuid       string
	remoteAddr string
}

// NewClient returns a new client following the tournament
func NewClient(conn *websocket.Conn, uuid, remoteAddr string) *Client {
	return &Client{
		send:       make(chan interface{}, 256),
		Close:      make(chan string),
		Conn:       conn,
		uuid:       uuid,
		remoteAddr: remoteAddr,
	}
}

// Send send a message to the web client
// false is returned if the client is not keeping up
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// UUID returns the tournament the client follows
func (c *Client) UUID() string {
	return c.uuid
}

// String returns a traceable identifier for the client and tournament
func (c *Client) String() string {
	return fmt.Sprintf("%s:%s", c.remoteAddr, c.uuid)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *PayloadIn) {
	c.lock.Lock()
	referee := c.referee
	c.lock.Unlock()

	if referee == nil {
		logrus.WithField("msg", msg).Warn("received message, but referee not found")
		return
	}

	referee.ReceivedMessage(c, msg)
}

func (c *Client) setReferee(r *Referee) {
	c.lock.Lock()
	c.referee = r
	c.lock.Unlock()
}
