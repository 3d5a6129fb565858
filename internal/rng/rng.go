package rng

// Generator provides a source of random numbers.
// Sessions take one so tests can pin the first-round judge selection.
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}
