package cards

import (
	"math/rand"
	"time"
)

// Pool holds a session's working copy of the answer cards along with the
// shared prompt set. Answer cards are drawn without replacement, so the pool
// shrinks for the lifetime of a session.
type Pool struct {
	answers []Card
	prompts []Card
	seed    int64
	rng     *rand.Rand
}

// NewPool returns a new pool of cards.
// Important! the pool is unshuffled. You must call the Shuffle() method before drawing.
func NewPool() *Pool {
	return &Pool{
		answers: Answers(),
		prompts: Prompts(),
		seed:    -1,
	}
}

// SetSeed will set the seed
// This should only be used by tests. Setting the seed is normally handled when you call Shuffle()
func (p *Pool) SetSeed(seed int64) {
	p.seed = seed
	p.rng = rand.New(rand.NewSource(seed)) // nolint:gosec
}

// Shuffle performs a uniform random permutation of the answer cards.
// You can manually specify the seed, or pass 0 to use the current time.
func (p *Pool) Shuffle(seed int64) {
	if seed < 0 {
		panic("seed cannot be < 0")
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	p.SetSeed(seed)

	for j := len(p.answers) - 1; j > 0; j-- {
		i := p.rng.Intn(j + 1)
		p.answers[i], p.answers[j] = p.answers[j], p.answers[i]
	}
}

// Draw removes and returns up to n answer cards, taken from the end of the
// shuffled pool. If fewer than n cards remain, the remainder is returned
// without error. An exhausted pool returns an empty slice.
func (p *Pool) Draw(n int) []Card {
	if n > len(p.answers) {
		n = len(p.answers)
	}

	drawn := make([]Card, n)
	copy(drawn, p.answers[len(p.answers)-n:])
	p.answers = p.answers[:len(p.answers)-n]

	return drawn
}

// CardsLeft returns the number of answer cards left in the pool
func (p *Pool) CardsLeft() int {
	return len(p.answers)
}

// PickPrompt returns a prompt card not present in used. Once every prompt has
// been used, any prompt may be returned again. The game must never halt
// because the prompt set ran out.
func (p *Pool) PickPrompt(used map[Card]bool) Card {
	available := make([]Card, 0, len(p.prompts))
	for _, prompt := range p.prompts {
		if !used[prompt] {
			available = append(available, prompt)
		}
	}

	if len(available) == 0 {
		available = p.prompts
	}

	return available[p.rng.Intn(len(available))]
}
