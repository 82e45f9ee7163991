package ruleset

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Size is a species' body size category. Sizes are totally ordered.
// The zero value is unspecified and never valid on a loaded species.
type Size int

const (
	SizeUnspecified Size = iota
	SizeTiny
	SizeLittle
	SizeSmall
	SizeMedium
	SizeLarge
	SizeBig
	SizeGiant
)

var sizeNames = map[Size]string{
	SizeTiny:   "tiny",
	SizeLittle: "little",
	SizeSmall:  "small",
	SizeMedium: "medium",
	SizeLarge:  "large",
	SizeBig:    "big",
	SizeGiant:  "giant",
}

func (s Size) String() string {
	if n, ok := sizeNames[s]; ok {
		return n
	}
	return "unspecified"
}

// ParseSize returns the Size named name.
func ParseSize(name string) (Size, error) {
	for s, n := range sizeNames {
		if n == name {
			return s, nil
		}
	}
	return SizeUnspecified, fmt.Errorf("unknown size %q", name)
}

// UnmarshalYAML decodes a size name scalar.
func (s *Size) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseSize(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*s = parsed
	return nil
}

// UndeadState describes how undead a species is.
type UndeadState int

const (
	Alive UndeadState = iota
	SemiUndead
	HungryDead
	Undead
)

var undeadNames = map[UndeadState]string{
	Alive:      "alive",
	SemiUndead: "semi_undead",
	HungryDead: "hungry_dead",
	Undead:     "undead",
}

func (u UndeadState) String() string {
	if n, ok := undeadNames[u]; ok {
		return n
	}
	return "unknown"
}

// UnmarshalYAML decodes an undead state name scalar.
func (u *UndeadState) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	for state, n := range undeadNames {
		if n == name {
			*u = state
			return nil
		}
	}
	return fmt.Errorf("line %d: unknown undead state %q", value.Line, name)
}
