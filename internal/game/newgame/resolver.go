package newgame

import (
	"fmt"

	"github.com/cory-johannsen/crawl/internal/game/player"
	"github.com/cory-johannsen/crawl/internal/game/ruleset"
	"github.com/cory-johannsen/crawl/internal/game/weapon"
)

// Archetype is a starting combination. Weapon is nil until one is chosen.
type Archetype struct {
	Species string
	Job     string
	Weapon  *weapon.Type
	Deity   player.God
}

// WithWeapon returns a copy of a with w chosen.
func (a Archetype) WithWeapon(w weapon.Type) Archetype {
	a.Weapon = &w
	return a
}

// Resolver rates character-creation choices against a species/job registry.
// Every method is a pure function of its arguments and the registry.
type Resolver struct {
	reg *ruleset.Registry
}

// NewResolver creates a Resolver over reg.
//
// Precondition: reg must be non-nil.
func NewResolver(reg *ruleset.Registry) *Resolver {
	if reg == nil {
		panic("newgame: NewResolver precondition violated: registry must be non-nil")
	}
	return &Resolver{reg: reg}
}

// startingPair looks up both axes and reports whether both are playable.
func (r *Resolver) startingPair(speciesID, jobID string) (*ruleset.Species, *ruleset.Job, bool) {
	s, ok := r.reg.Species(speciesID)
	if !ok || !s.Playable {
		return nil, nil, false
	}
	j, ok := r.reg.Job(jobID)
	if !ok || !j.Playable {
		return nil, nil, false
	}
	return s, j, true
}

// SpeciesAllowed rates speciesID for a character whose job was chosen first.
//
// Postcondition: Banned when either axis is unknown or unplayable, or the pair is excluded;
// Unrestricted when the job recommends the species; Restricted otherwise.
func (r *Resolver) SpeciesAllowed(jobID, speciesID string) Verdict {
	s, j, ok := r.startingPair(speciesID, jobID)
	if !ok {
		return Banned
	}
	if _, banned := bannedCombination(s, j); banned {
		return Banned
	}
	if j.RecommendsSpecies(s.ID) {
		return Unrestricted
	}
	return Restricted
}

// JobAllowed rates jobID for a character whose species was chosen first.
//
// Postcondition: Banned when either axis is unknown or unplayable, or the pair is excluded;
// Unrestricted when the species recommends the job; Restricted otherwise.
func (r *Resolver) JobAllowed(speciesID, jobID string) Verdict {
	s, j, ok := r.startingPair(speciesID, jobID)
	if !ok {
		return Banned
	}
	if _, banned := bannedCombination(s, j); banned {
		return Banned
	}
	if s.RecommendsJob(j.ID) {
		return Unrestricted
	}
	return Restricted
}

// IsGoodCombination reduces the verdict for the menu's selection order to a
// bool. With good set only Unrestricted passes; otherwise anything not Banned.
func (r *Resolver) IsGoodCombination(speciesID, jobID string, speciesFirst, good bool) bool {
	var v Verdict
	if speciesFirst {
		v = r.JobAllowed(speciesID, jobID)
	} else {
		v = r.SpeciesAllowed(jobID, speciesID)
	}
	if good {
		return v == Unrestricted
	}
	return v != Banned
}

// ExclusionReason names the exclusion rule banning the pair, if any.
// Unknown IDs report no reason.
func (r *Resolver) ExclusionReason(speciesID, jobID string) (string, bool) {
	s, ok := r.reg.Species(speciesID)
	if !ok {
		return "", false
	}
	j, ok := r.reg.Job(jobID)
	if !ok {
		return "", false
	}
	return bannedCombination(s, j)
}

// WeaponRestriction rates starting weapon w for the archetype's species and job.
//
// Precondition: a.Species and a.Job are registered, and a.Species is not a
// colour variant of a multi-variant family. Violations panic.
func (r *Resolver) WeaponRestriction(w weapon.Type, a Archetype) Verdict {
	s, ok := r.reg.Species(a.Species)
	if !ok {
		panic(fmt.Sprintf("newgame: WeaponRestriction precondition violated: unknown species %q", a.Species))
	}
	j, ok := r.reg.Job(a.Job)
	if !ok {
		panic(fmt.Sprintf("newgame: WeaponRestriction precondition violated: unknown job %q", a.Job))
	}
	if s.IsColourVariant() {
		panic(fmt.Sprintf("newgame: WeaponRestriction precondition violated: %q is a colour variant of %s", s.ID, s.Family))
	}
	for _, rule := range weaponRules {
		if v, applies := rule.apply(w, s, j); applies {
			return v
		}
	}
	// unreachable: the final rule always applies
	return Restricted
}

// ArchetypeVerdict combines the job verdict with the chosen weapon's verdict.
// The deity carries no restrictions in this ruleset.
func (r *Resolver) ArchetypeVerdict(a Archetype) Verdict {
	v := r.JobAllowed(a.Species, a.Job)
	if v == Banned || a.Weapon == nil {
		return v
	}
	return Lesser(v, r.WeaponRestriction(*a.Weapon, a))
}

// Cell is one rated choice in a menu grid.
type Cell struct {
	ID      string
	Verdict Verdict
}

// Row lists the verdicts for one choice on the first axis.
type Row struct {
	ID    string
	Cells []Cell
}

// Matrix rates every playable species against every playable job.
// With speciesFirst each row is a species rated with JobAllowed; otherwise
// each row is a job rated with SpeciesAllowed.
func (r *Resolver) Matrix(speciesFirst bool) []Row {
	species := r.reg.PlayableSpecies()
	jobs := r.reg.PlayableJobs()

	var rows []Row
	if speciesFirst {
		for _, s := range species {
			row := Row{ID: s.ID, Cells: make([]Cell, 0, len(jobs))}
			for _, j := range jobs {
				row.Cells = append(row.Cells, Cell{ID: j.ID, Verdict: r.JobAllowed(s.ID, j.ID)})
			}
			rows = append(rows, row)
		}
		return rows
	}
	for _, j := range jobs {
		row := Row{ID: j.ID, Cells: make([]Cell, 0, len(species))}
		for _, s := range species {
			row.Cells = append(row.Cells, Cell{ID: s.ID, Verdict: r.SpeciesAllowed(j.ID, s.ID)})
		}
		rows = append(rows, row)
	}
	return rows
}

// WeaponChoices rates every starting weapon for the archetype.
//
// Precondition: as for WeaponRestriction.
func (r *Resolver) WeaponChoices(a Archetype) []Cell {
	out := make([]Cell, 0, weapon.NumTypes)
	for _, w := range weapon.Types() {
		out = append(out, Cell{ID: w.String(), Verdict: r.WeaponRestriction(w, a)})
	}
	return out
}
