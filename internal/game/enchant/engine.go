// Package enchant implements the self-enchantment spells and the extension
// pass that re-casts every active timed effect at a given power.
package enchant

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/crawl/internal/game/dice"
	"github.com/cory-johannsen/crawl/internal/game/duration"
	"github.com/cory-johannsen/crawl/internal/game/message"
	"github.com/cory-johannsen/crawl/internal/game/player"
	"github.com/cory-johannsen/crawl/internal/game/spell"
)

// Engine casts self-enchantments against a player record.
// It holds no player state; the caller serialises access to each player.
type Engine struct {
	spells  *spell.Registry
	roller  *dice.Roller
	msgs    message.Sink
	area    AreaCache
	effects Effects
	logger  *zap.Logger
}

// NewEngine wires an Engine to its collaborators.
//
// Precondition: every argument must be non-nil.
func NewEngine(spells *spell.Registry, roller *dice.Roller, msgs message.Sink, area AreaCache, effects Effects, logger *zap.Logger) *Engine {
	if spells == nil || roller == nil || msgs == nil || area == nil || effects == nil || logger == nil {
		panic("enchant: NewEngine precondition violated: all collaborators must be non-nil")
	}
	return &Engine{
		spells:  spells,
		roller:  roller,
		msgs:    msgs,
		area:    area,
		effects: effects,
		logger:  logger,
	}
}

// Outcome is what the extension pass did with one catalogue entry.
type Outcome int

const (
	// Inactive entries were not running, or were blocked before the knowledge check.
	Inactive Outcome = iota
	NoSpell
	Unknown
	Failed
	Blocked
	Extended
)

func (o Outcome) String() string {
	switch o {
	case Inactive:
		return "inactive"
	case NoSpell:
		return "no spell"
	case Unknown:
		return "unknown spell"
	case Failed:
		return "failed"
	case Blocked:
		return "blocked"
	case Extended:
		return "extended"
	default:
		return "unknown"
	}
}

// EntryResult records the handling of one catalogue entry.
type EntryResult struct {
	Kind    duration.Kind
	Spell   spell.ID
	Outcome Outcome
	Before  int
	After   int
}

// Report summarises an extension pass.
type Report struct {
	Entries       []EntryResult
	Contamination int
}

// Extended returns the kinds whose owning spell was successfully re-cast.
func (r Report) Extended() []duration.Kind {
	var out []duration.Kind
	for _, e := range r.Entries {
		if e.Outcome == Extended {
			out = append(out, e.Kind)
		}
	}
	return out
}

// Result returns the entry for kind k.
func (r Report) Result(k duration.Kind) (EntryResult, bool) {
	for _, e := range r.Entries {
		if e.Kind == k {
			return e, true
		}
	}
	return EntryResult{}, false
}

// Extend re-casts every active duration whose owning spell the player knows,
// walking the catalogue in order. Each entry is independent; a skipped entry
// never stops the pass. Contamination starts at random2(2), grows with each
// contaminating success, and is applied once at the end when non-zero.
//
// Precondition: p must be non-nil.
// Postcondition: no duration inactive on entry is active on return unless a
// re-cast routine for another kind set it (flight extends levitation).
func (e *Engine) Extend(p *player.State, power int) Report {
	if p == nil {
		panic("enchant: Extend precondition violated: player must be non-nil")
	}
	power = max(power, 0)

	report := Report{Entries: make([]EntryResult, 0, len(catalogue))}
	contamination := e.roller.Random2(2)

	for _, ent := range catalogue {
		res := EntryResult{Kind: ent.kind, Before: p.Durations.Get(ent.kind)}
		res.Outcome, res.Spell = e.extendEntry(p, ent, power)
		res.After = p.Durations.Get(ent.kind)
		if res.Outcome == Extended {
			contamination += ent.contamination
		} else if res.Outcome != Inactive {
			e.logger.Debug("extension skipped",
				zap.Stringer("duration", ent.kind),
				zap.String("spell", string(res.Spell)),
				zap.Stringer("reason", res.Outcome),
			)
		}
		report.Entries = append(report.Entries, res)
	}

	if contamination > 0 {
		e.effects.Contaminate(p, contamination, true)
	}
	report.Contamination = contamination

	e.logger.Debug("extension pass",
		zap.String("player", p.Name),
		zap.Int("power", power),
		zap.Int("extended", len(report.Extended())),
		zap.Int("contamination", contamination),
	)
	return report
}

func (e *Engine) extendEntry(p *player.State, ent entry, power int) (Outcome, spell.ID) {
	if !p.Durations.IsActive(ent.kind) {
		return Inactive, spell.None
	}
	if ent.eligible != nil && !ent.eligible(p) {
		return Inactive, spell.None
	}
	id := ent.owner(p)
	if outcome := e.knowSpell(p, id); outcome != Extended {
		return outcome, id
	}
	if ent.allowed != nil && !ent.allowed(p) {
		return Blocked, id
	}
	ent.recast(e, p, power)
	return Extended, id
}

// knowSpell runs the knowledge and fail checks, reporting Extended on success.
func (e *Engine) knowSpell(p *player.State, id spell.ID) Outcome {
	if id == spell.None {
		return NoSpell
	}
	title := e.spells.Title(id)
	if !p.Knows(id) {
		e.msgs.Emit(fmt.Sprintf("You don't know how to extend %s.", title), message.Plain)
		return Unknown
	}

	fail := 100
	if def, ok := e.spells.Get(id); ok {
		fail = spell.FailChance(def, p.Skills, p.Intelligence)
	} else {
		e.logger.Warn("known spell has no definition", zap.String("spell", string(id)))
	}
	roll := e.roller.Random2(50) + 50
	e.logger.Debug("extension fail check",
		zap.String("spell", string(id)),
		zap.Int("fail", fail),
		zap.Int("roll", roll),
	)
	if fail > roll {
		e.msgs.Emit(fmt.Sprintf("Your knowledge of %s fails you.", title), message.Plain)
		return Failed
	}
	return Extended
}
