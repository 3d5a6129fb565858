package room

import (
	"cardsagainstagility-server/pkg/store"

	"github.com/sirupsen/logrus"
)

type pitBossEvent struct {
	client  *Client
	message *PayloadIn
}

// PitBoss is responsible for dispatching connections to sessions. It owns
// the session store and the session-id to dealer mapping, and its single run
// loop serializes registration plus the create/join events that happen
// before a connection has a dealer.
type PitBoss struct {
	store      *store.Store
	dealers    map[string]*Dealer
	connect    chan *Client
	disconnect chan *Client
	events     chan pitBossEvent
}

// NewPitBoss returns a new dispatch object backed by the given store
func NewPitBoss(store *store.Store) *PitBoss {
	return &PitBoss{
		store:      store,
		dealers:    make(map[string]*Dealer),
		connect:    make(chan *Client, 256),
		disconnect: make(chan *Client, 256),
		events:     make(chan pitBossEvent, 256),
	}
}

// StartShift starts the PitBoss run loop
func (p *PitBoss) StartShift() {
	go p.runLoop()
}

func (p *PitBoss) runLoop() {
	for {
		select {
		case client := <-p.connect:
			logrus.WithField("client", client.String()).Debug("client connected")
			client.pitBoss = p

			client.Send <- &Response{
				Event: EventConnected,
				Data:  connectedPayload{ParticipantID: client.participantID},
			}
		case client := <-p.disconnect:
			logrus.WithField("client", client.String()).Debug("client disconnected")
			p.detach(client)
		case ev := <-p.events:
			p.receivedMessage(ev.client, ev.message)
		}
	}
}

// ClientConnected is called when a client connects to the server
func (p *PitBoss) ClientConnected(client *Client) {
	p.connect <- client
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	p.disconnect <- client
}

// ReceivedMessage queues a pre-session event for the run loop
func (p *PitBoss) ReceivedMessage(client *Client, msg *PayloadIn) {
	p.events <- pitBossEvent{client: client, message: msg}
}

// detach unhooks the client from its dealer, retiring the dealer when its
// last connection is gone. The session itself stays in the store; a
// participant who disconnects mid-round leaves their hand in place.
func (p *PitBoss) detach(client *Client) {
	dealer := client.dealer
	if dealer == nil {
		return
	}

	if dealer.RemoveClient(client) {
		dealer.EndShift()
		delete(p.dealers, dealer.session.ID())
	}
}

// NOTE: must only be called from the run loop.
// Failed operations send nothing back; the protocol has no error events.
func (p *PitBoss) receivedMessage(c *Client, msg *PayloadIn) {
	switch msg.Event {
	case EventCreateGame:
		session, err := p.store.CreateSession(c.participantID, msg.Nickname)
		if err != nil {
			logrus.WithError(err).WithField("client", c.String()).Error("could not create session")
			return
		}

		p.detach(c)

		dealer := NewDealer(p, session)
		dealer.StartShift()
		p.dealers[session.ID()] = dealer
		dealer.AddClient(c)

		c.Send <- &Response{
			Event:   EventCreateGame,
			Data:    gamePayload{Game: session.Info(), Nickname: msg.Nickname},
			Context: msg.Context,
		}
	case EventJoinGame:
		session, err := p.store.JoinSession(c.participantID, msg.Nickname, msg.GameID)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"client": c.String(),
				"gameId": msg.GameID,
			}).Warn("could not join session")
			return
		}

		p.detach(c)

		dealer, ok := p.dealers[session.ID()]
		if !ok {
			dealer = NewDealer(p, session)
			dealer.StartShift()
			p.dealers[session.ID()] = dealer
		}

		dealer.AddClient(c)

		dealer.execInRunLoop <- func() {
			dealer.broadcast(&Response{
				Event: EventJoinGame,
				Data:  gamePayload{Game: session.Info(), Nickname: msg.Nickname},
			})
		}
	default:
		logrus.WithField("msg", msg).Warn("unknown message")
	}
}
