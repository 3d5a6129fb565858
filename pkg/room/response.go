package room

import "cardsagainstagility-server/pkg/game"

// Response is the envelope for every outbound event
type Response struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
	// Context echoes the inbound context on direct replies
	Context string `json:"context,omitempty"`
}

type connectedPayload struct {
	ParticipantID string `json:"participantId"`
}

type gamePayload struct {
	Game     *game.Info `json:"game"`
	Nickname string     `json:"nickname"`
}

type submissionsPayload struct {
	Submissions []*game.Submission `json:"submissions"`
}

type showAnswerPayload struct {
	InFocusCard *game.FocusedAnswer `json:"inFocusCard"`
}

type roundWinnerPayload struct {
	WinningParticipantID string `json:"winningParticipantId"`
	Score                int    `json:"score"`
}

type gameWinnerPayload struct {
	WinningParticipantID string `json:"winningParticipantId"`
}
