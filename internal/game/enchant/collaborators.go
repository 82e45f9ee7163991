package enchant

//go:generate mockgen -destination=mock/mock_collaborators.go -package=mockenchant -source=collaborators.go

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/crawl/internal/game/message"
	"github.com/cory-johannsen/crawl/internal/game/player"
)

// Conduct is a deed a god may have an opinion about.
type Conduct int

const (
	ConductHasty Conduct = iota
	ConductNecromancy
)

func (c Conduct) String() string {
	switch c {
	case ConductHasty:
		return "hasty"
	case ConductNecromancy:
		return "necromancy"
	default:
		return "unknown"
	}
}

// HintEvent names a tutorial trigger.
type HintEvent string

// HintYouSilence fires when the player first silences themselves.
const HintYouSilence HintEvent = "you_silence"

// AreaCache is told when silence or liquefaction geometry around the player changes.
type AreaCache interface {
	InvalidateAreaGrid(recheckNew bool)
}

// Effects applies the consequences of casting that live outside this package.
type Effects interface {
	Contaminate(p *player.State, amount int, controlled bool)
	Excommunicate(p *player.State)
	GodConduct(p *player.State, conduct Conduct, level int)
	Hint(event HintEvent)
}

// StateEffects is the default Effects: it mutates the player record directly.
type StateEffects struct {
	msgs   message.Sink
	logger *zap.Logger
}

// NewStateEffects creates a StateEffects reporting through msgs and logger.
//
// Precondition: msgs and logger must be non-nil.
func NewStateEffects(msgs message.Sink, logger *zap.Logger) *StateEffects {
	if msgs == nil || logger == nil {
		panic("enchant: NewStateEffects precondition violated: msgs and logger must be non-nil")
	}
	return &StateEffects{msgs: msgs, logger: logger}
}

// Contaminate adds amount to the player's magical contamination.
func (e *StateEffects) Contaminate(p *player.State, amount int, controlled bool) {
	if amount <= 0 {
		return
	}
	p.Contamination += amount
	if !controlled {
		e.msgs.Emit("Your body shudders with the violent release of wild energies!", message.Warning)
	}
	e.logger.Info("magical contamination",
		zap.String("player", p.Name),
		zap.Int("amount", amount),
		zap.Int("total", p.Contamination),
		zap.Bool("controlled", controlled),
	)
}

// Excommunicate removes the player from their religion.
func (e *StateEffects) Excommunicate(p *player.State) {
	if p.God == player.NoGod {
		return
	}
	old := p.God
	p.God = player.NoGod
	p.Piety = 0
	p.UnderPenance = false
	e.msgs.Emit("You have lost your religion!", message.God)
	e.logger.Info("excommunicated", zap.String("player", p.Name), zap.String("god", string(old)))
}

// GodConduct applies piety loss for deeds the player's god dislikes.
// Only Cheibriados objects to haste.
func (e *StateEffects) GodConduct(p *player.State, conduct Conduct, level int) {
	if conduct != ConductHasty || p.God != player.Cheibriados {
		return
	}
	p.Piety = max(0, p.Piety-level)
	e.msgs.Emit("You feel a little guilty.", message.God)
	e.logger.Debug("god conduct",
		zap.String("player", p.Name),
		zap.Stringer("conduct", conduct),
		zap.Int("level", level),
		zap.Int("piety", p.Piety),
	)
}

// Hint records a tutorial trigger.
func (e *StateEffects) Hint(event HintEvent) {
	e.logger.Debug("hint", zap.String("event", string(event)))
}

// LoggingAreaCache is an AreaCache for tools with no map: it only logs.
type LoggingAreaCache struct {
	Logger *zap.Logger
}

// InvalidateAreaGrid logs the invalidation.
func (c LoggingAreaCache) InvalidateAreaGrid(recheckNew bool) {
	c.Logger.Debug("area grid invalidated", zap.Bool("recheck_new", recheckNew))
}
