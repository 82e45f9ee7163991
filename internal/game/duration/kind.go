// Package duration models the timed player effects tracked as remaining ticks.
package duration

import "fmt"

// BaselineDelay is the number of ticks in one player turn at normal speed.
const BaselineDelay = 10

// Kind identifies a timed player effect.
type Kind int

const (
	Haste Kind = iota
	Slow
	Levitation
	Invisibility
	IcyArmour
	RepelMissiles
	Regeneration
	DeflectMissiles
	FireShield
	WeaponBrand
	Swiftness
	Insulation
	ControlledFlight
	ControlTeleport
	ResistPoison
	Transformation
	Stoneskin
	PhaseShift
	SeeInvisible
	Silence
	CondensationShield
	DeathChannel
	DeathsDoor
	Stonemail
	Exhausted
	Liquefying
	NumKinds // sentinel; not a valid Kind
)

var kindNames = [NumKinds]string{
	Haste:              "haste",
	Slow:               "slow",
	Levitation:         "levitation",
	Invisibility:       "invisibility",
	IcyArmour:          "icy_armour",
	RepelMissiles:      "repel_missiles",
	Regeneration:       "regeneration",
	DeflectMissiles:    "deflect_missiles",
	FireShield:         "fire_shield",
	WeaponBrand:        "weapon_brand",
	Swiftness:          "swiftness",
	Insulation:         "insulation",
	ControlledFlight:   "controlled_flight",
	ControlTeleport:    "control_teleport",
	ResistPoison:       "resist_poison",
	Transformation:     "transformation",
	Stoneskin:          "stoneskin",
	PhaseShift:         "phase_shift",
	SeeInvisible:       "see_invisible",
	Silence:            "silence",
	CondensationShield: "condensation_shield",
	DeathChannel:       "death_channel",
	DeathsDoor:         "deaths_door",
	Stonemail:          "stonemail",
	Exhausted:          "exhausted",
	Liquefying:         "liquefying",
}

// Valid reports whether k names a real duration.
func (k Kind) Valid() bool {
	return k >= 0 && k < NumKinds
}

// String returns the stable snake_case name of k.
// Postcondition: returns "unknown" for an invalid Kind.
func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind returns the Kind whose name is s.
//
// Postcondition: returns a valid Kind, or an error if s names no duration.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown duration %q", s)
}

// Kinds returns every valid Kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, NumKinds)
	for k := Kind(0); k < NumKinds; k++ {
		out = append(out, k)
	}
	return out
}
