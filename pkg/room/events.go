package room

// Inbound event names
const (
	EventCreateGame        = "create-game"
	EventJoinGame          = "join-game"
	EventStartGame         = "start-game"
	EventSubmitCard        = "submit-card"
	EventShowCurrentAnswer = "show-current-answer"
	EventSelectWinner      = "select-winner"
	EventNewRound          = "new-round"
)

// Outbound event names
const (
	EventConnected         = "connected"
	EventReceiveAnswerCard = "receive-answer-card"
	EventStartCardReview   = "start-card-review"
	EventShowAnswer        = "show-answer"
	EventShowRoundWinner   = "show-round-winner"
	EventShowGameWinner    = "show-game-winner"
)

// PayloadIn is the envelope we expect from the JS client. Only the fields
// relevant to the named event are set.
type PayloadIn struct {
	Event                string `json:"event"`
	GameID               string `json:"gameId,omitempty"`
	ParticipantID        string `json:"participantId,omitempty"`
	Nickname             string `json:"nickname,omitempty"`
	SubmittedCard        string `json:"submittedCard,omitempty"`
	Answer               string `json:"answer,omitempty"`
	WinningParticipantID string `json:"winningParticipantId,omitempty"`
	// Context will be passed back on any direct reply
	Context string `json:"context,omitempty"`
}
