package room

import (
	"sync"

	"cardsagainstagility-server/pkg/cards"
	"cardsagainstagility-server/pkg/game"

	"github.com/sirupsen/logrus"
)

// Dealer runs a single session. Every round event for the session funnels
// through its run loop, so game calls and their fanout never interleave.
// Failed and no-op operations deliberately produce no outbound event; the
// client is expected to time out on its own.
type Dealer struct {
	pitBoss *PitBoss
	session *game.Session
	clients map[*Client]bool
	lock    sync.RWMutex

	execInRunLoop chan func()
	close         chan bool
}

// NewDealer creates a new dealer for the session
// This is called from a blocking state, so it needs to return quickly
func NewDealer(pitBoss *PitBoss, session *game.Session) *Dealer {
	return &Dealer{
		pitBoss:       pitBoss,
		session:       session,
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	log := logrus.WithField("gameId", d.session.ID())

	log.Debug("creating dealer run loop")
	for {
		select {
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.close:
			log.Debug("terminating dealer run loop")
			return
		}
	}
}

// AddClient adds a client
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lock.Unlock()
}

// RemoveClient removes a client and reports whether it was the last one
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	client.dealer = nil
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lock.Unlock()

	return nClients == 0
}

// EndShift is called when the dealer is no longer needed
func (d *Dealer) EndShift() {
	close(d.close)
}

// NOTE: must only be called from the run loop
func (d *Dealer) broadcast(res *Response) {
	for _, client := range d.Clients() {
		client.Send <- res
	}
}

// sendRoundState sends each participant their private view of the round.
// NOTE: must only be called from the run loop
func (d *Dealer) sendRoundState(event string) {
	for _, client := range d.Clients() {
		client.Send <- &Response{
			Event: event,
			Data:  d.session.RoundState(client.participantID),
		}
	}
}

// ReceivedMessage is called when a client sends a session-scoped event.
// Exactly one game call per event; failures are logged and swallowed.
func (d *Dealer) ReceivedMessage(c *Client, msg *PayloadIn) {
	log := logrus.WithFields(logrus.Fields{
		"gameId": d.session.ID(),
		"client": c.String(),
	})

	switch msg.Event {
	case EventStartGame:
		d.execInRunLoop <- func() {
			if err := d.session.Start(c.participantID); err != nil {
				log.WithError(err).Warn("could not start game")
				return
			}

			d.sendRoundState(EventStartGame)
		}
	case EventSubmitCard:
		d.execInRunLoop <- func() {
			inReview, err := d.session.Submit(c.participantID, cards.Card(msg.SubmittedCard))
			if err != nil {
				log.WithError(err).Warn("could not submit card")
				return
			}

			d.broadcast(&Response{
				Event: EventReceiveAnswerCard,
				Data:  submissionsPayload{Submissions: d.session.Submissions()},
			})

			if inReview {
				d.broadcast(&Response{Event: EventStartCardReview})
			}
		}
	case EventShowCurrentAnswer:
		d.execInRunLoop <- func() {
			focus, err := d.session.ShowAnswer(c.participantID, msg.ParticipantID, msg.Answer)
			if err != nil {
				log.WithError(err).Warn("could not show answer")
				return
			}

			d.broadcast(&Response{
				Event: EventShowAnswer,
				Data:  showAnswerPayload{InFocusCard: focus},
			})
		}
	case EventSelectWinner:
		d.execInRunLoop <- func() {
			// the state machine only validates the winner; the judge
			// check lives here at the protocol boundary
			if judge := d.session.Judge(); judge == nil || judge.ID != c.participantID {
				log.Warn("non-judge tried to select a winner")
				return
			}

			gameOver, err := d.session.SelectWinner(msg.WinningParticipantID)
			if err != nil {
				log.WithError(err).Warn("could not select winner")
				return
			}

			d.broadcast(&Response{
				Event: EventShowRoundWinner,
				Data: roundWinnerPayload{
					WinningParticipantID: msg.WinningParticipantID,
					Score:                d.session.Score(msg.WinningParticipantID),
				},
			})

			if gameOver {
				d.broadcast(&Response{
					Event: EventShowGameWinner,
					Data:  gameWinnerPayload{WinningParticipantID: msg.WinningParticipantID},
				})
			}
		}
	case EventNewRound:
		d.execInRunLoop <- func() {
			if err := d.session.NewRound(); err != nil {
				log.WithError(err).Warn("could not start new round")
				return
			}

			d.sendRoundState(EventNewRound)
		}
	default:
		log.WithField("msg", msg).Warn("unknown message")
	}
}
