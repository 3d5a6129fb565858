package room

import (
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client is a single connection to the server via websockets. Connection
// identity (this object) is deliberately separate from the durable
// participant id so a future resume feature can rebind a fresh connection
// to an existing participant.
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// Send is a channel for sending messages to the client
	Send chan *Response

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	pitBoss *PitBoss
	dealer  *Dealer

	participantID string
}

// NewClient returns a new client object for the authenticated participant
func NewClient(conn *websocket.Conn, participantID string) *Client {
	return &Client{
		Conn:          conn,
		Send:          make(chan *Response, 256),
		Close:         make(chan string),
		participantID: participantID,
	}
}

// ParticipantID returns the durable participant id bound to this connection
func (c *Client) ParticipantID() string {
	return c.participantID
}

// String returns a traceable identifier for the connection
func (c *Client) String() string {
	if d := c.dealer; d != nil {
		return fmt.Sprintf("%s:%s", c.participantID, d.session.ID())
	}

	return c.participantID
}

// ReceivedMessage is called when the server receives a message from a connected client.
// Session-creation events go to the pit boss; everything else needs a dealer.
func (c *Client) ReceivedMessage(msg *PayloadIn) {
	switch msg.Event {
	case EventCreateGame, EventJoinGame:
		if c.pitBoss == nil {
			logrus.WithField("msg", msg).Warn("received message before registration")
			return
		}

		c.pitBoss.ReceivedMessage(c, msg)
	default:
		if c.dealer == nil {
			logrus.WithField("msg", msg).Warn("received message, but dealer not found")
			return
		}

		c.dealer.ReceivedMessage(c, msg)
	}
}
