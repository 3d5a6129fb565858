package game

import (
	"sync"

	"cardsagainstagility-server/internal/rng"
	"cardsagainstagility-server/pkg/cards"

	"github.com/sirupsen/logrus"
)

// Session is one game of Cards Against Agility. It owns all mutable round
// state for the session: hands, submissions, judge rotation, and scores.
// Every exported method is safe for concurrent use; join-path mutations and
// round-path mutations may arrive from different run loops.
type Session struct {
	mu sync.Mutex

	id        string
	creatorID string
	options   Options

	// join order is turn order; only ever appended to
	participants []*Participant

	hands       map[string][]cards.Card
	pool        *cards.Pool
	prompt      cards.Card
	usedPrompts map[cards.Card]bool
	submissions []*Submission
	judgeIndex  int
	roundNumber int
	scores      map[string]int
	inReview    bool
	gameOver    bool
	winnerID    string
	inFocus     *FocusedAnswer

	seed   int64
	random rng.Generator
	logger logrus.FieldLogger
}

// NewSession creates a session with the creator as its only participant
func NewSession(logger logrus.FieldLogger, id string, creator Participant, options Options) *Session {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Session{
		id:           id,
		creatorID:    creator.ID,
		options:      options,
		participants: []*Participant{{ID: creator.ID, Nickname: creator.Nickname}},
		hands:        make(map[string][]cards.Card),
		pool:         cards.NewPool(),
		usedPrompts:  make(map[cards.Card]bool),
		scores:       map[string]int{creator.ID: 0},
		random:       rng.Crypto{},
		logger:       logger.WithField("gameId", id),
	}
}

// ID returns the session's join code
func (s *Session) ID() string {
	return s.id
}

// CreatorID returns the participant id of the player who created the session
func (s *Session) CreatorID() string {
	return s.creatorID
}

// AddParticipant appends a participant with a zero score. Adding a
// participant who is already a member is a no-op and returns false.
func (s *Session) AddParticipant(p Participant) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.participants {
		if existing.ID == p.ID {
			return false
		}
	}

	s.participants = append(s.participants, &Participant{ID: p.ID, Nickname: p.Nickname})
	s.scores[p.ID] = 0
	return true
}

// Start deals the first round. Only the creator may start, and only with
// enough players. The judge for the first round is picked at random; every
// judge after that rotates in join order.
func (s *Session) Start(requestingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gameOver {
		return ErrGameOver
	}

	if s.roundNumber > 0 {
		return ErrAlreadyStarted
	}

	if requestingID != s.creatorID {
		return ErrNotCreator
	}

	if len(s.participants) < s.options.MinParticipants {
		return ErrNotEnoughPlayers
	}

	s.pool.Shuffle(s.seed)
	for _, p := range s.participants {
		s.hands[p.ID] = s.pool.Draw(s.options.HandSize)
	}

	s.prompt = s.pool.PickPrompt(s.usedPrompts)
	s.usedPrompts[s.prompt] = true

	s.judgeIndex = s.random.Intn(len(s.participants))
	s.roundNumber = 1
	s.submissions = nil
	s.inReview = false
	s.inFocus = nil

	s.logger.WithFields(logrus.Fields{
		"players": len(s.participants),
		"judge":   s.participants[s.judgeIndex].ID,
	}).Info("game started")

	return nil
}

// Submit plays an answer card from the participant's hand. The card leaves
// the hand immediately; a second submit in the same round replaces the first
// entry in place. When every non-judge has submitted, the round flips to the
// review phase and true is returned. That flip is the only automatic
// transition in the game.
func (s *Session) Submit(participantID string, card cards.Card) (inReview bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.roundNumber == 0 {
		return false, ErrNotStarted
	}

	if s.gameOver {
		return false, ErrGameOver
	}

	if s.participants[s.judgeIndex].ID == participantID {
		return false, ErrJudgeCannotSubmit
	}

	hand, ok := s.hands[participantID]
	if !ok {
		return false, ErrNotParticipant
	}

	cardIndex := -1
	for i, held := range hand {
		if held == card {
			cardIndex = i
			break
		}
	}

	if cardIndex < 0 {
		return false, ErrCardNotHeld
	}

	s.hands[participantID] = append(hand[:cardIndex], hand[cardIndex+1:]...)

	replaced := false
	for _, submission := range s.submissions {
		if submission.ParticipantID == participantID {
			submission.Cards = []cards.Card{card}
			replaced = true
			break
		}
	}

	if !replaced {
		s.submissions = append(s.submissions, &Submission{
			ParticipantID: participantID,
			Cards:         []cards.Card{card},
		})
	}

	if s.allSubmitted() {
		s.inReview = true
	}

	return s.inReview, nil
}

// allSubmitted reports whether every non-judge participant has exactly one
// submission. Caller must hold the lock.
func (s *Session) allSubmitted() bool {
	submitted := make(map[string]bool, len(s.submissions))
	for _, submission := range s.submissions {
		submitted[submission.ParticipantID] = true
	}

	nonJudges := 0
	for i, p := range s.participants {
		if i == s.judgeIndex {
			continue
		}

		nonJudges++
		if !submitted[p.ID] {
			return false
		}
	}

	return nonJudges > 0
}

// ShowAnswer records the submission the judge is currently reading out.
// Only the judge may call it; submitterID identifies whose card is in
// focus. It never mutates round-critical state.
func (s *Session) ShowAnswer(callerID, submitterID, answer string) (*FocusedAnswer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.roundNumber == 0 {
		return nil, ErrNotStarted
	}

	if s.participants[s.judgeIndex].ID != callerID {
		return nil, ErrNotJudge
	}

	s.inFocus = &FocusedAnswer{ParticipantID: submitterID, Answer: answer}
	return s.inFocus, nil
}

// SelectWinner awards the round to the named participant. Reaching the
// target score ends the game and makes the session terminal. There is no
// de-dup: two calls in the same round increment the score twice.
func (s *Session) SelectWinner(winnerID string) (gameOver bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.roundNumber == 0 {
		return false, ErrNotStarted
	}

	if s.gameOver {
		return false, ErrGameOver
	}

	if _, ok := s.scores[winnerID]; !ok {
		return false, ErrNotParticipant
	}

	s.scores[winnerID]++
	if s.scores[winnerID] >= s.options.TargetScore {
		s.gameOver = true
		s.winnerID = winnerID

		s.logger.WithField("winner", winnerID).Info("game over")
		return true, nil
	}

	return false, nil
}

// NewRound replenishes hands up to the hand size, rotates the judge to the
// next participant in join order, and picks a fresh prompt. Hands may come up
// short once the pool runs dry; the game keeps going regardless.
func (s *Session) NewRound() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gameOver {
		return ErrGameOver
	}

	if s.roundNumber == 0 {
		return ErrNotStarted
	}

	for _, p := range s.participants {
		hand := s.hands[p.ID]
		if shortfall := s.options.HandSize - len(hand); shortfall > 0 {
			s.hands[p.ID] = append(hand, s.pool.Draw(shortfall)...)
		}
	}

	s.judgeIndex = (s.judgeIndex + 1) % len(s.participants)

	s.prompt = s.pool.PickPrompt(s.usedPrompts)
	s.usedPrompts[s.prompt] = true

	s.submissions = nil
	s.inReview = false
	s.inFocus = nil
	s.roundNumber++

	return nil
}

// Participants returns the players in join order
func (s *Session) Participants() []*Participant {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*Participant{}, s.participants...)
}

// Judge returns the current judge, or nil before the first round
func (s *Session) Judge() *Participant {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.roundNumber == 0 {
		return nil
	}

	return s.participants[s.judgeIndex]
}

// Hand returns a copy of the participant's current hand
func (s *Session) Hand(participantID string) []cards.Card {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]cards.Card{}, s.hands[participantID]...)
}

// Prompt returns the current prompt card
func (s *Session) Prompt() cards.Card {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.prompt
}

// Submissions returns the round's submissions in submission order
func (s *Session) Submissions() []*Submission {
	s.mu.Lock()
	defer s.mu.Unlock()

	submissions := make([]*Submission, len(s.submissions))
	for i, submission := range s.submissions {
		submissions[i] = &Submission{
			ParticipantID: submission.ParticipantID,
			Cards:         append([]cards.Card{}, submission.Cards...),
		}
	}

	return submissions
}

// Score returns the participant's current score
func (s *Session) Score(participantID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.scores[participantID]
}

// RoundNumber returns the current round, or 0 before the game starts
func (s *Session) RoundNumber() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.roundNumber
}

// IsInReview returns true while the judge reads out submissions
func (s *Session) IsInReview() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.inReview
}

// IsOver returns true once a participant reaches the target score
func (s *Session) IsOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.gameOver
}

// WinnerID returns the game winner's participant id, or "" while in progress
func (s *Session) WinnerID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.winnerID
}
