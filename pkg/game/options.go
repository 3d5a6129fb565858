package game

// Options configures a session
type Options struct {
	// TargetScore is the number of round wins that ends the game
	TargetScore int

	// HandSize is the number of answer cards each participant holds
	HandSize int

	// MinParticipants is the number of players required before the game can start
	MinParticipants int
}

// DefaultOptions returns the standard game options
func DefaultOptions() Options {
	return Options{
		TargetScore:     5,
		HandSize:        7,
		MinParticipants: 3,
	}
}
