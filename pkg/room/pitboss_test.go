package room

import (
	"testing"
	"time"

	"cardsagainstagility-server/pkg/game"
	"cardsagainstagility-server/pkg/store"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func expectEvent(t *testing.T, c *Client, event string) *Response {
	t.Helper()

	select {
	case res := <-c.Send:
		assert.Equal(t, event, res.Event)
		return res
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for %q on %s", event, c.ParticipantID())
		return nil
	}
}

func expectNoEvent(t *testing.T, c *Client) {
	t.Helper()

	select {
	case res := <-c.Send:
		t.Fatalf("expected no event on %s, got %q", c.ParticipantID(), res.Event)
	case <-time.After(100 * time.Millisecond):
	}
}

func connect(t *testing.T, p *PitBoss, participantID string) *Client {
	t.Helper()

	c := NewClient(nil, participantID)
	p.ClientConnected(c)

	res := expectEvent(t, c, EventConnected)
	assert.Equal(t, participantID, res.Data.(connectedPayload).ParticipantID)
	return c
}

func TestPitBoss_GameFlow(t *testing.T) {
	st := store.New(logrus.StandardLogger(), game.DefaultOptions())
	p := NewPitBoss(st)
	p.StartShift()

	alice := connect(t, p, "a")
	bob := connect(t, p, "b")
	cara := connect(t, p, "c")
	clients := map[string]*Client{"a": alice, "b": bob, "c": cara}

	// Alice creates a game; only she gets the reply
	alice.ReceivedMessage(&PayloadIn{Event: EventCreateGame, Nickname: "Alice", Context: "c1"})
	res := expectEvent(t, alice, EventCreateGame)
	assert.Equal(t, "c1", res.Context)

	info := res.Data.(gamePayload).Game
	assert.Len(t, info.Players, 1)
	gameID := info.ID

	// joining an unknown game id produces no response at all
	bob.ReceivedMessage(&PayloadIn{Event: EventJoinGame, Nickname: "Bob", GameID: "XXXXX"})
	expectNoEvent(t, bob)

	// Bob joins; everybody in the session hears about it
	bob.ReceivedMessage(&PayloadIn{Event: EventJoinGame, Nickname: "Bob", GameID: gameID})
	assert.Len(t, expectEvent(t, alice, EventJoinGame).Data.(gamePayload).Game.Players, 2)
	expectEvent(t, bob, EventJoinGame)

	cara.ReceivedMessage(&PayloadIn{Event: EventJoinGame, Nickname: "Cara", GameID: gameID})
	expectEvent(t, alice, EventJoinGame)
	expectEvent(t, bob, EventJoinGame)
	assert.Len(t, expectEvent(t, cara, EventJoinGame).Data.(gamePayload).Game.Players, 3)

	session, err := st.Get(gameID)
	assert.NoError(t, err)

	// only the creator can start; a failed start sends nothing
	bob.ReceivedMessage(&PayloadIn{Event: EventStartGame, GameID: gameID})
	expectNoEvent(t, bob)

	alice.ReceivedMessage(&PayloadIn{Event: EventStartGame, GameID: gameID})

	judgeID := ""
	for id, c := range clients {
		state := expectEvent(t, c, EventStartGame).Data.(*game.RoundState)
		assert.Len(t, state.AnswerCards, 7)
		assert.NotEmpty(t, state.QuestionCard)

		if state.IsAskingQuestion {
			judgeID = id
		}
	}

	assert.Equal(t, session.Judge().ID, judgeID)
	judge := clients[judgeID]

	// the judge cannot submit; nothing goes out
	judge.ReceivedMessage(&PayloadIn{Event: EventSubmitCard, GameID: gameID, SubmittedCard: session.Hand(judgeID)[0].String()})
	expectNoEvent(t, judge)

	// each non-judge submission is broadcast; the last one opens the review
	submitted := 0
	for id, c := range clients {
		if id == judgeID {
			continue
		}

		c.ReceivedMessage(&PayloadIn{Event: EventSubmitCard, GameID: gameID, SubmittedCard: session.Hand(id)[0].String()})
		submitted++

		for _, rc := range clients {
			assert.Len(t, expectEvent(t, rc, EventReceiveAnswerCard).Data.(submissionsPayload).Submissions, submitted)
			if submitted == 2 {
				expectEvent(t, rc, EventStartCardReview)
			}
		}
	}

	assert.True(t, session.IsInReview())

	// reading an answer out loud is judge-only
	nonJudge := "a"
	if judgeID == "a" {
		nonJudge = "b"
	}
	clients[nonJudge].ReceivedMessage(&PayloadIn{Event: EventShowCurrentAnswer, GameID: gameID, ParticipantID: nonJudge, Answer: "mandatory fun"})
	expectNoEvent(t, clients[nonJudge])

	judge.ReceivedMessage(&PayloadIn{Event: EventShowCurrentAnswer, GameID: gameID, ParticipantID: nonJudge, Answer: "mandatory fun"})
	for _, c := range clients {
		focus := expectEvent(t, c, EventShowAnswer).Data.(showAnswerPayload).InFocusCard
		assert.Equal(t, "mandatory fun", focus.Answer)
		assert.Equal(t, nonJudge, focus.ParticipantID)
	}

	// a non-judge cannot pick the winner
	clients[nonJudge].ReceivedMessage(&PayloadIn{Event: EventSelectWinner, GameID: gameID, WinningParticipantID: nonJudge})
	expectNoEvent(t, clients[nonJudge])

	judge.ReceivedMessage(&PayloadIn{Event: EventSelectWinner, GameID: gameID, WinningParticipantID: nonJudge})
	for _, c := range clients {
		winner := expectEvent(t, c, EventShowRoundWinner).Data.(roundWinnerPayload)
		assert.Equal(t, nonJudge, winner.WinningParticipantID)
		assert.Equal(t, 1, winner.Score)
	}

	// next round: fresh hands, rotated judge
	judge.ReceivedMessage(&PayloadIn{Event: EventNewRound, GameID: gameID})
	for id, c := range clients {
		state := expectEvent(t, c, EventNewRound).Data.(*game.RoundState)
		assert.Len(t, state.AnswerCards, 7)
		assert.Equal(t, session.Judge().ID == id, state.IsAskingQuestion)
	}

	assert.NotEqual(t, judgeID, session.Judge().ID)
}

func TestPitBoss_GameWinner(t *testing.T) {
	st := store.New(logrus.StandardLogger(), game.DefaultOptions())
	p := NewPitBoss(st)
	p.StartShift()

	alice := connect(t, p, "a")
	bob := connect(t, p, "b")
	cara := connect(t, p, "c")
	clients := []*Client{alice, bob, cara}

	alice.ReceivedMessage(&PayloadIn{Event: EventCreateGame, Nickname: "Alice"})
	gameID := expectEvent(t, alice, EventCreateGame).Data.(gamePayload).Game.ID

	for _, c := range []*Client{bob, cara} {
		c.ReceivedMessage(&PayloadIn{Event: EventJoinGame, Nickname: c.ParticipantID(), GameID: gameID})
		for _, rc := range clients {
			if rc == cara && c == bob {
				continue // Cara has not joined yet
			}
			expectEvent(t, rc, EventJoinGame)
		}
	}

	alice.ReceivedMessage(&PayloadIn{Event: EventStartGame, GameID: gameID})
	for _, c := range clients {
		expectEvent(t, c, EventStartGame)
	}

	session, err := st.Get(gameID)
	assert.NoError(t, err)

	judge := clients[0]
	for _, c := range clients {
		if session.Judge().ID == c.ParticipantID() {
			judge = c
		}
	}

	winnerID := "a"
	if session.Judge().ID == "a" {
		winnerID = "b"
	}

	// five wins ends the game; only the fifth announces a game winner
	for i := 1; i <= 5; i++ {
		judge.ReceivedMessage(&PayloadIn{Event: EventSelectWinner, GameID: gameID, WinningParticipantID: winnerID})
		for _, c := range clients {
			assert.Equal(t, i, expectEvent(t, c, EventShowRoundWinner).Data.(roundWinnerPayload).Score)
			if i == 5 {
				winner := expectEvent(t, c, EventShowGameWinner).Data.(gameWinnerPayload)
				assert.Equal(t, winnerID, winner.WinningParticipantID)
			}
		}
	}

	assert.True(t, session.IsOver())
	assert.Equal(t, winnerID, session.WinnerID())

	// the session is terminal now
	judge.ReceivedMessage(&PayloadIn{Event: EventSelectWinner, GameID: gameID, WinningParticipantID: winnerID})
	judge.ReceivedMessage(&PayloadIn{Event: EventNewRound, GameID: gameID})
	for _, c := range clients {
		expectNoEvent(t, c)
	}
}

func TestPitBoss_Disconnect(t *testing.T) {
	st := store.New(logrus.StandardLogger(), game.DefaultOptions())
	p := NewPitBoss(st)
	p.StartShift()

	alice := connect(t, p, "a")
	bob := connect(t, p, "b")

	alice.ReceivedMessage(&PayloadIn{Event: EventCreateGame, Nickname: "Alice"})
	gameID := expectEvent(t, alice, EventCreateGame).Data.(gamePayload).Game.ID

	bob.ReceivedMessage(&PayloadIn{Event: EventJoinGame, Nickname: "Bob", GameID: gameID})
	expectEvent(t, alice, EventJoinGame)
	expectEvent(t, bob, EventJoinGame)

	p.ClientDisconnected(bob)

	// Bob's hand and membership survive his connection
	session, err := st.Get(gameID)
	assert.NoError(t, err)
	assert.Len(t, session.Participants(), 2)
}
