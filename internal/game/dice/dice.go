// Package dice provides the randomness abstraction and the three roll shapes
// the rule engines consume: uniform draws, summed dice and averaged draws.
package dice

import "fmt"

// RollResult holds the audit trail for a single roll evaluation.
//
// Postcondition: Total() == sum(Dice).
type RollResult struct {
	Expression string // human-readable shape, e.g. "random2(40)" or "2d7"
	Dice       []int  // individual draws, before averaging
}

// Total returns the sum of all draws.
func (r RollResult) Total() int {
	total := 0
	for _, d := range r.Dice {
		total += d
	}
	return total
}

// String returns a human-readable audit string in the format:
//
//	"2d6 → [4 5] = 9"
//
// Precondition: r.Expression is non-empty.
func (r RollResult) String() string {
	if r.Expression == "" {
		panic("dice: RollResult.String() precondition violated: Expression must be non-empty")
	}
	return fmt.Sprintf("%s → %v = %d", r.Expression, r.Dice, r.Total())
}

// Source is the randomness provider for all rolls.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}
