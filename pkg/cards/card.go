package cards

// Card is the text of a single prompt or answer card
type Card string

// String returns the card text
func (c Card) String() string {
	return string(c)
}
