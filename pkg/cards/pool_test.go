package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPool(t *testing.T) {
	pool := NewPool()

	assert.Equal(t, len(answerCards), pool.CardsLeft())

	pool.Shuffle(1)
	shuffled := append([]Card{}, pool.answers...)

	pool2 := NewPool()
	pool2.Shuffle(1)
	assert.Equal(t, shuffled, pool2.answers)

	pool3 := NewPool()
	pool3.Shuffle(2)
	assert.NotEqual(t, shuffled, pool3.answers)
}

func TestPool_Draw(t *testing.T) {
	pool := NewPool()
	pool.Shuffle(1)

	total := pool.CardsLeft()
	drawn := pool.Draw(7)
	assert.Len(t, drawn, 7)
	assert.Equal(t, total-7, pool.CardsLeft())

	// no card may be drawn twice
	seen := make(map[Card]bool)
	for _, card := range drawn {
		assert.False(t, seen[card])
		seen[card] = true
	}
}

func TestPool_DrawExhaustion(t *testing.T) {
	pool := NewPool()
	pool.Shuffle(1)

	left := pool.CardsLeft()
	drawn := pool.Draw(left + 10)
	assert.Len(t, drawn, left)
	assert.Equal(t, 0, pool.CardsLeft())

	// drawing from an empty pool is not an error
	assert.Len(t, pool.Draw(7), 0)
}

func TestPool_PickPrompt(t *testing.T) {
	pool := NewPool()
	pool.Shuffle(1)

	used := make(map[Card]bool)
	for range promptCards {
		prompt := pool.PickPrompt(used)
		assert.False(t, used[prompt], "prompt %q repeated while alternatives remained", prompt)
		used[prompt] = true
	}

	assert.Len(t, used, len(promptCards))

	// the full set is exhausted, so repeats are now allowed
	prompt := pool.PickPrompt(used)
	assert.True(t, used[prompt])
}
