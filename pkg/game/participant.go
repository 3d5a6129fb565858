package game

import "cardsagainstagility-server/pkg/cards"

// Participant is a player within a session
type Participant struct {
	ID       string `json:"participantId"`
	Nickname string `json:"nickname"`
}

// Submission is one participant's anonymous answer for the current round
type Submission struct {
	ParticipantID string       `json:"participantId"`
	Cards         []cards.Card `json:"cards"`
}

// FocusedAnswer is the submission the judge is currently reading out
type FocusedAnswer struct {
	ParticipantID string `json:"participantId"`
	Answer        string `json:"answer"`
}
