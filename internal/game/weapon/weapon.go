// Package weapon defines the starting weapon choices and the descriptor of a
// wielded weapon consulted by the enchantment rules.
package weapon

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Type is a starting weapon choice offered during character creation.
type Type int

const (
	Unarmed Type = iota
	ShortSword
	Rapier
	Mace
	Flail
	HandAxe
	Spear
	Trident
	Falchion
	LongSword
	Quarterstaff
	Shortbow
	HandCrossbow
	Sling
	Thrown
	Whip
	NumTypes // sentinel; not a valid Type
)

var typeNames = [NumTypes]string{
	Unarmed:      "unarmed",
	ShortSword:   "short_sword",
	Rapier:       "rapier",
	Mace:         "mace",
	Flail:        "flail",
	HandAxe:      "hand_axe",
	Spear:        "spear",
	Trident:      "trident",
	Falchion:     "falchion",
	LongSword:    "long_sword",
	Quarterstaff: "quarterstaff",
	Shortbow:     "shortbow",
	HandCrossbow: "hand_crossbow",
	Sling:        "sling",
	Thrown:       "thrown",
	Whip:         "whip",
}

// String returns the snake_case name of t, or "unknown".
func (t Type) String() string {
	if t < 0 || t >= NumTypes {
		return "unknown"
	}
	return typeNames[t]
}

// ParseType returns the Type named s.
//
// Postcondition: returns a valid Type, or an error if s names no weapon.
func ParseType(s string) (Type, error) {
	for i, name := range typeNames {
		if name == s {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weapon %q", s)
}

// UnmarshalYAML decodes a weapon name scalar.
func (t *Type) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseType(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*t = parsed
	return nil
}

// Types returns every starting weapon in declaration order.
func Types() []Type {
	out := make([]Type, 0, NumTypes)
	for t := Type(0); t < NumTypes; t++ {
		out = append(out, t)
	}
	return out
}

// Brand is the special property on a wielded weapon.
type Brand int

const (
	BrandNone Brand = iota
	BrandFlaming
	BrandFreezing
	BrandHolyWrath
	BrandElectrocution
	BrandVenom
	BrandProtection
	BrandDraining
	BrandSpeed
	BrandVorpal
	BrandFlame
	BrandFrost
	BrandVampiricism
	BrandPain
	BrandDistortion
	BrandReaching
	BrandReturning
	BrandChaos
)

var brandNames = map[Brand]string{
	BrandNone:          "none",
	BrandFlaming:       "flaming",
	BrandFreezing:      "freezing",
	BrandHolyWrath:     "holy_wrath",
	BrandElectrocution: "electrocution",
	BrandVenom:         "venom",
	BrandProtection:    "protection",
	BrandDraining:      "draining",
	BrandSpeed:         "speed",
	BrandVorpal:        "vorpal",
	BrandFlame:         "flame",
	BrandFrost:         "frost",
	BrandVampiricism:   "vampiricism",
	BrandPain:          "pain",
	BrandDistortion:    "distortion",
	BrandReaching:      "reaching",
	BrandReturning:     "returning",
	BrandChaos:         "chaos",
}

func (b Brand) String() string {
	if s, ok := brandNames[b]; ok {
		return s
	}
	return "unknown"
}

// ParseBrand returns the Brand named s.
func ParseBrand(s string) (Brand, error) {
	for b, name := range brandNames {
		if name == s {
			return b, nil
		}
	}
	return BrandNone, fmt.Errorf("unknown brand %q", s)
}

// DamageType is how a weapon deals its damage.
type DamageType int

const (
	DamageNone DamageType = iota
	Crushing
	Slicing
	Piercing
	Chopping
	Slashing
	Stabbing
)

var damageNames = map[DamageType]string{
	DamageNone: "none",
	Crushing:   "crushing",
	Slicing:    "slicing",
	Piercing:   "piercing",
	Chopping:   "chopping",
	Slashing:   "slashing",
	Stabbing:   "stabbing",
}

func (d DamageType) String() string {
	if s, ok := damageNames[d]; ok {
		return s
	}
	return "unknown"
}

// ParseDamageType returns the DamageType named s.
func ParseDamageType(s string) (DamageType, error) {
	for d, name := range damageNames {
		if name == s {
			return d, nil
		}
	}
	return DamageNone, fmt.Errorf("unknown damage type %q", s)
}

// Weapon describes the item currently wielded.
type Weapon struct {
	Name   string
	Brand  Brand
	Damage DamageType
}
