// Package character defines the persisted character record and its creation
// from a rated starting archetype.
package character

import (
	"time"

	"github.com/google/uuid"

	"github.com/cory-johannsen/crawl/internal/game/newgame"
	"github.com/cory-johannsen/crawl/internal/game/player"
	"github.com/cory-johannsen/crawl/internal/game/ruleset"
	"github.com/cory-johannsen/crawl/internal/game/weapon"
)

// Character is a created character's persistent identity.
//
// ID is assigned by the Builder; CreatedAt and UpdatedAt are set by the
// persistence layer, and zero values indicate an unsaved character.
type Character struct {
	ID uuid.UUID

	Name    string
	Species string
	Job     string
	// Weapon is nil for jobs that start without a weapon choice.
	Weapon *weapon.Type
	God    player.God

	// Verdict is the archetype's rating at creation time.
	Verdict newgame.Verdict
	Undead  ruleset.UndeadState

	MaxHP int
	MaxMP int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Archetype returns the starting combination the character was built from.
func (c *Character) Archetype() newgame.Archetype {
	a := newgame.Archetype{Species: c.Species, Job: c.Job, Deity: c.God}
	if c.Weapon != nil {
		a = a.WithWeapon(*c.Weapon)
	}
	return a
}

// NewPlayer returns a fresh mutable record for the character at full health.
//
// Postcondition: the returned state's Name, Species, Job, Undead and God
// match the character.
func (c *Character) NewPlayer() *player.State {
	p := player.New(c.Name, c.Species, c.Job, c.MaxHP, c.MaxMP)
	p.Undead = c.Undead
	p.God = c.God
	return p
}
