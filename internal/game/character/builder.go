package character

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cory-johannsen/crawl/internal/game/newgame"
	"github.com/cory-johannsen/crawl/internal/game/ruleset"
)

// ErrBannedArchetype is returned when the chosen combination may not start.
var ErrBannedArchetype = errors.New("archetype is banned")

// ErrUnknownChoice is returned when a species or job ID is not registered.
var ErrUnknownChoice = errors.New("unknown species or job")

// baseMP is the magic pool every character starts with.
const baseMP = 3

// sizeHP is the starting hit point total by body size.
var sizeHP = map[ruleset.Size]int{
	ruleset.SizeTiny:   8,
	ruleset.SizeLittle: 10,
	ruleset.SizeSmall:  11,
	ruleset.SizeMedium: 12,
	ruleset.SizeLarge:  14,
	ruleset.SizeBig:    15,
	ruleset.SizeGiant:  16,
}

// Builder turns rated archetypes into characters.
type Builder struct {
	reg *ruleset.Registry
	res *newgame.Resolver
}

// NewBuilder creates a Builder over reg.
//
// Precondition: reg must be non-nil.
func NewBuilder(reg *ruleset.Registry) *Builder {
	if reg == nil {
		panic("character: NewBuilder precondition violated: registry must be non-nil")
	}
	return &Builder{reg: reg, res: newgame.NewResolver(reg)}
}

// Build constructs a new Character named name from archetype a.
// The archetype is rated first; a Banned archetype is refused with the
// exclusion reason when one applies.
//
// Precondition: name must be non-empty.
// Postcondition: Returns a Character with a fresh ID, MaxHP >= 1 and a
// non-Banned Verdict, or a non-nil error.
func (b *Builder) Build(name string, a newgame.Archetype) (*Character, error) {
	if name == "" {
		return nil, errors.New("character name must not be empty")
	}
	s, ok := b.reg.Species(a.Species)
	if !ok {
		return nil, fmt.Errorf("species %q: %w", a.Species, ErrUnknownChoice)
	}
	if _, ok := b.reg.Job(a.Job); !ok {
		return nil, fmt.Errorf("job %q: %w", a.Job, ErrUnknownChoice)
	}

	verdict := b.res.ArchetypeVerdict(a)
	if verdict == newgame.Banned {
		if reason, excluded := b.res.ExclusionReason(a.Species, a.Job); excluded {
			return nil, fmt.Errorf("%s %s: %s: %w", a.Species, a.Job, reason, ErrBannedArchetype)
		}
		return nil, fmt.Errorf("%s %s: %w", a.Species, a.Job, ErrBannedArchetype)
	}

	maxHP := max(1, sizeHP[s.Size])
	return &Character{
		ID:      uuid.New(),
		Name:    name,
		Species: s.ID,
		Job:     a.Job,
		Weapon:  a.Weapon,
		God:     a.Deity,
		Verdict: verdict,
		Undead:  s.Undead,
		MaxHP:   maxHP,
		MaxMP:   baseMP,
	}, nil
}
