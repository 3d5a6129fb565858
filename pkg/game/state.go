package game

import "cardsagainstagility-server/pkg/cards"

// Info is the session summary shared with everybody in the game
type Info struct {
	ID      string         `json:"id"`
	Players []*Participant `json:"players"`
}

// RoundState is one participant's private view of the current round
type RoundState struct {
	AnswerCards      []cards.Card `json:"answerCards"`
	IsAskingQuestion bool         `json:"isAskingQuestion"`
	QuestionCard     cards.Card   `json:"questionCard"`
}

// Info returns the shareable session summary
func (s *Session) Info() *Info {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &Info{
		ID:      s.id,
		Players: append([]*Participant{}, s.participants...),
	}
}

// RoundState returns the private round view for the participant
func (s *Session) RoundState(participantID string) *RoundState {
	s.mu.Lock()
	defer s.mu.Unlock()

	isJudge := s.roundNumber > 0 && s.participants[s.judgeIndex].ID == participantID

	return &RoundState{
		AnswerCards:      append([]cards.Card{}, s.hands[participantID]...),
		IsAskingQuestion: isJudge,
		QuestionCard:     s.prompt,
	}
}
