// Package player holds the mutable character record the rules engines read and write.
package player

import (
	"slices"

	"github.com/cory-johannsen/crawl/internal/game/duration"
	"github.com/cory-johannsen/crawl/internal/game/ruleset"
	"github.com/cory-johannsen/crawl/internal/game/spell"
	"github.com/cory-johannsen/crawl/internal/game/weapon"
)

// MaxKnownSpells is the number of spell slots a character has.
const MaxKnownSpells = 21

// NormalMovementSpeed is the movement delay of an unhasted walker.
const NormalMovementSpeed = 10

// State is the complete mutable record of one character.
// It is not safe for concurrent use; the caller must serialise access.
type State struct {
	Name    string
	Species string
	Job     string
	Undead  ruleset.UndeadState

	Durations duration.Table
	Spells    []spell.ID
	Skills    map[string]int

	Intelligence int
	HP, MaxHP    int
	MP, MaxMP    int

	// Weapon is nil when fighting unarmed.
	Weapon *weapon.Weapon
	Form   Form

	God          God
	Piety        int
	UnderPenance bool

	WasSilenced        bool
	DivineRegeneration bool

	HeavyArmour bool
	ShieldWorn  bool
	InWater     bool
	// MovementSpeed is the delay of one step; lower is faster.
	MovementSpeed         int
	SeeInvisibleIntrinsic bool

	RedrawArmourClass bool
	RedrawEvasion     bool

	Contamination int
}

// New returns a living character of the given species and job with full
// health, normal speed and no spells.
//
// Postcondition: Returned state has HP == MaxHP and MP == MaxMP.
func New(name, species, job string, maxHP, maxMP int) *State {
	return &State{
		Name:          name,
		Species:       species,
		Job:           job,
		Skills:        make(map[string]int),
		HP:            maxHP,
		MaxHP:         maxHP,
		MP:            maxMP,
		MaxMP:         maxMP,
		MovementSpeed: NormalMovementSpeed,
		Intelligence:  10,
	}
}

// Knows reports whether id is memorised. None is never known.
func (p *State) Knows(id spell.ID) bool {
	return id != spell.None && slices.Contains(p.Spells, id)
}

// Learn memorises id.
//
// Postcondition: Returns false without change when id is None, already
// known, or every slot is full.
func (p *State) Learn(id spell.ID) bool {
	if id == spell.None || p.Knows(id) || len(p.Spells) >= MaxKnownSpells {
		return false
	}
	p.Spells = append(p.Spells, id)
	return true
}

// Forget removes id from memory, returning whether it was known.
func (p *State) Forget(id spell.ID) bool {
	i := slices.Index(p.Spells, id)
	if i < 0 {
		return false
	}
	p.Spells = slices.Delete(p.Spells, i, i+1)
	return true
}

// Skill returns the level of the named skill.
func (p *State) Skill(name string) int {
	return p.Skills[name]
}

// Airborne reports whether the character is levitating or flying.
func (p *State) Airborne() bool {
	return p.Durations.IsActive(duration.Levitation) || p.Durations.IsActive(duration.ControlledFlight)
}

// CanSeeInvisible reports whether the character perceives invisible things.
func (p *State) CanSeeInvisible() bool {
	return p.SeeInvisibleIntrinsic || p.Durations.IsActive(duration.SeeInvisible)
}

// IsUndead reports whether the character is fully undead.
func (p *State) IsUndead() bool {
	return p.Undead == ruleset.Undead
}

// GainMP adds amount magic points, capped at MaxMP.
func (p *State) GainMP(amount int) {
	p.MP = min(p.MP+amount, p.MaxMP)
}
