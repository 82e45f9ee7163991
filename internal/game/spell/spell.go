// Package spell holds the spell definitions known to the rules engines and the
// spell failure formula.
package spell

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ID identifies a spell definition.
type ID string

// None is the "no spell" sentinel. A duration owned by None cannot be re-cast.
const None ID = ""

// Spells referenced directly by the enchantment rules.
const (
	Haste                ID = "haste"
	Slow                 ID = "slow"
	Levitation           ID = "levitation"
	Invisibility         ID = "invisibility"
	OzocubusArmour       ID = "ozocubus_armour"
	RepelMissiles        ID = "repel_missiles"
	Regeneration         ID = "regeneration"
	DeflectMissiles      ID = "deflect_missiles"
	RingOfFlames         ID = "ring_of_flames"
	FireBrand            ID = "fire_brand"
	FreezingAura         ID = "freezing_aura"
	MaxwellsSilverHammer ID = "maxwells_silver_hammer"
	PoisonWeapon         ID = "poison_weapon"
	ExcruciatingWounds   ID = "excruciating_wounds"
	LethalInfusion       ID = "lethal_infusion"
	WarpBrand            ID = "warp_brand"
	Swiftness            ID = "swiftness"
	Insulation           ID = "insulation"
	Fly                  ID = "fly"
	ControlTeleport      ID = "control_teleport"
	ResistPoison         ID = "resist_poison"
	BladeHands           ID = "blade_hands"
	SpiderForm           ID = "spider_form"
	StatueForm           ID = "statue_form"
	IceForm              ID = "ice_form"
	DragonForm           ID = "dragon_form"
	Necromutation        ID = "necromutation"
	Porkalator           ID = "porkalator"
	Stoneskin            ID = "stoneskin"
	PhaseShift           ID = "phase_shift"
	SeeInvisible         ID = "see_invisible"
	Silence              ID = "silence"
	CondensationShield   ID = "condensation_shield"
	DeathChannel         ID = "death_channel"
	DeathsDoor           ID = "deaths_door"
	SelectiveAmnesia     ID = "selective_amnesia"
	Liquefaction         ID = "liquefaction"
)

// Def is the static definition of a spell, loaded from YAML.
type Def struct {
	ID      ID       `yaml:"id"`
	Title   string   `yaml:"title"`
	Level   int      `yaml:"level"`
	Schools []string `yaml:"schools"`
	Mana    int      `yaml:"mana"`
}

// Registry holds all known spell definitions keyed by ID.
// It is read-only after loading and safe for concurrent readers.
type Registry struct {
	defs map[ID]*Def
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[ID]*Def)}
}

// Register adds def to the registry, overwriting any existing entry with the same ID.
//
// Precondition: def must not be nil and def.ID must not be None.
func (r *Registry) Register(def *Def) {
	if def == nil || def.ID == None {
		panic("spell: Register precondition violated: def must be non-nil with an ID")
	}
	r.defs[def.ID] = def
}

// Get returns the definition for id, or (nil, false) if not found.
func (r *Registry) Get(id ID) (*Def, bool) {
	d, ok := r.defs[id]
	return d, ok
}

// Title returns the display title for id, falling back to the raw ID.
func (r *Registry) Title(id ID) string {
	if d, ok := r.defs[id]; ok && d.Title != "" {
		return d.Title
	}
	return string(id)
}

// All returns every definition sorted by ID.
func (r *Registry) All() []*Def {
	out := make([]*Def, 0, len(r.defs))
	for _, d := range r.defs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// LoadDirectory reads every *.yaml file in dir, parses each as a Def,
// and returns a populated Registry.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns a non-nil Registry, or an error if any file fails to parse
// or declares a level outside 1..9.
func LoadDirectory(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading spell dir %q: %w", dir, err)
	}
	reg := NewRegistry()
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		var def Def
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil {
			return nil, fmt.Errorf("parsing %q: %w", path, err)
		}
		if def.ID == None {
			return nil, fmt.Errorf("parsing %q: id must not be empty", path)
		}
		if def.Level < 1 || def.Level > MaxLevel {
			return nil, fmt.Errorf("parsing %q: level must be 1-%d, got %d", path, MaxLevel, def.Level)
		}
		reg.Register(&def)
	}
	return reg, nil
}
