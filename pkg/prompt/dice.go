package prompt

import "math/rand"

// Dice supplies the random draw used to pick between pattern alternatives.
// Injecting it keeps selection deterministic under test; Roll(n) must return
// a value in [0, n).
type Dice interface {
	Roll(n int) int
}

// NewDice returns a seeded Dice. The result is not safe for concurrent use;
// it exists for tests and single-session callers that need reproducibility.
func NewDice(seed int64) Dice {
	return seededDice{rng: rand.New(rand.NewSource(seed))}
}

type seededDice struct {
	rng *rand.Rand
}

func (d seededDice) Roll(n int) int { return d.rng.Intn(n) }

// sharedDice backs selection when callers pass a nil Dice. The top-level
// math/rand functions are safe for concurrent use, so one schema can serve
// many simultaneous sessions without synchronization on this path.
type sharedDice struct{}

func (sharedDice) Roll(n int) int { return rand.Intn(n) }
