package ruleset

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cory-johannsen/crawl/internal/game/weapon"
)

// Species defines a playable (or retired) species for character creation.
//
// Precondition: ID, Name and Size must be set after loading.
type Species struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Playable    bool        `yaml:"playable"`
	Size        Size        `yaml:"size"`
	Undead      UndeadState `yaml:"undead"`
	// Family groups colour variants such as the draconians.
	Family string `yaml:"family"`
	// FamilyBase marks the one member of Family offered before the colour is known.
	FamilyBase bool `yaml:"family_base"`
	// UnarmedOnly species cannot hold weapons at all.
	UnarmedOnly bool `yaml:"unarmed_only"`
	// Limbless species cannot grip staves or draw bows.
	Limbless           bool          `yaml:"limbless"`
	RecommendedJobs    []string      `yaml:"recommended_jobs"`
	RecommendedWeapons []weapon.Type `yaml:"recommended_weapons"`
}

// RecommendsJob reports whether jobID is on the species' recommended list.
func (s *Species) RecommendsJob(jobID string) bool {
	return slices.Contains(s.RecommendedJobs, jobID)
}

// RecommendsWeapon reports whether w is on the species' recommended list.
func (s *Species) RecommendsWeapon(w weapon.Type) bool {
	return slices.Contains(s.RecommendedWeapons, w)
}

// IsColourVariant reports whether s is a non-base member of a multi-variant family.
func (s *Species) IsColourVariant() bool {
	return s.Family != "" && !s.FamilyBase
}

// Validate checks the loaded definition.
//
// Postcondition: Returns nil, or an error listing every missing field.
func (s *Species) Validate() error {
	var errs []error
	if s.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if s.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if s.Size == SizeUnspecified {
		errs = append(errs, errors.New("size must be set"))
	}
	if s.FamilyBase && s.Family == "" {
		errs = append(errs, errors.New("family_base requires family"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("species %q: %w", s.ID, errors.Join(errs...))
	}
	return nil
}

// LoadSpecies reads all .yaml files in dir and parses each as a Species.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed species in file-name order or a non-nil error.
func LoadSpecies(dir string) ([]*Species, error) {
	return loadDefinitions(dir, "species", (*Species).Validate)
}
