package dice

import (
	"fmt"

	"go.uber.org/zap"
)

// Roller wraps a Source and logger to provide the game's roll shapes.
// All rolls are logged at debug level with their audit string.
//
// The shapes follow the game's conventions: a zero or negative bound never
// reaches the Source and simply yields 0.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewRoller creates a Roller that draws from src and logs each roll to logger.
//
// Precondition: src and logger must be non-nil.
func NewRoller(src Source, logger *zap.Logger) *Roller {
	if src == nil {
		panic("dice: NewRoller precondition violated: src must be non-nil")
	}
	if logger == nil {
		panic("dice: NewRoller precondition violated: logger must be non-nil")
	}
	return &Roller{src: src, logger: logger}
}

// Random2 returns a uniform int in [0, n). Returns 0 when n <= 1.
//
// Postcondition: 0 <= result < max(n, 1).
func (r *Roller) Random2(n int) int {
	if n <= 1 {
		return 0
	}
	v := r.src.Intn(n)
	r.log(RollResult{Expression: fmt.Sprintf("random2(%d)", n), Dice: []int{v}})
	return v
}

// RollDice returns the sum of count dice with the given number of sides.
// Returns 0 when count or sides is not positive.
//
// Postcondition: count <= result <= count*sides for positive inputs.
func (r *Roller) RollDice(count, sides int) int {
	if count <= 0 || sides <= 0 {
		return 0
	}
	res := RollResult{Expression: fmt.Sprintf("%dd%d", count, sides), Dice: make([]int, count)}
	for i := range res.Dice {
		res.Dice[i] = r.src.Intn(sides) + 1
	}
	r.log(res)
	return res.Total()
}

// Random2Avg returns the integer average of rolls draws in [0, n), biasing
// the result towards n/2. The first draw is random2(n); the remaining draws
// are random2(n+1).
//
// Postcondition: 0 <= result <= max(n, 0).
func (r *Roller) Random2Avg(n, rolls int) int {
	if rolls < 1 {
		rolls = 1
	}
	res := RollResult{Expression: fmt.Sprintf("random2avg(%d, %d)", n, rolls), Dice: make([]int, rolls)}
	res.Dice[0] = r.quiet(n)
	for i := 1; i < rolls; i++ {
		res.Dice[i] = r.quiet(n + 1)
	}
	r.log(res)
	return res.Total() / rolls
}

func (r *Roller) quiet(n int) int {
	if n <= 1 {
		return 0
	}
	return r.src.Intn(n)
}

func (r *Roller) log(res RollResult) {
	r.logger.Debug("dice roll",
		zap.String("expression", res.Expression),
		zap.Int("total", res.Total()),
		zap.String("audit", res.String()),
	)
}
