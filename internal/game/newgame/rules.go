package newgame

import (
	"slices"

	"github.com/cory-johannsen/crawl/internal/game/ruleset"
	"github.com/cory-johannsen/crawl/internal/game/weapon"
)

// Species and jobs named by the restriction rules.
const (
	speciesDemigod    = "demigod"
	speciesFelidMummy = "felid_mummy"
	speciesFormicid   = "formicid"
	speciesHedgehog   = "hedgehog"
	speciesMummy      = "mummy"
	speciesNaga       = "naga"
	speciesRobot      = "robot"
	speciesVampire    = "vampire"

	jobAbyssalKnight  = "abyssal_knight"
	jobAlchemist      = "alchemist"
	jobAnnihilator    = "annihilator"
	jobArcaneMarksman = "arcane_marksman"
	jobAssassin       = "assassin"
	jobBerserker      = "berserker"
	jobBloodKnight    = "blood_knight"
	jobChaosKnight    = "chaos_knight"
	jobFighter        = "fighter"
	jobGladiator      = "gladiator"
	jobHunter         = "hunter"
	jobMonk           = "monk"
	jobSlimePriest    = "slime_priest"
	jobTorporKnight   = "torpor_knight"
	jobTransmuter     = "transmuter"
)

// exclusionRule forbids a species/job pair outright.
type exclusionRule struct {
	name  string
	match func(s *ruleset.Species, j *ruleset.Job) bool
}

// exclusionRules is evaluated top to bottom; the first match bans the pair.
// Species-specific overrides come first, then the cross-cutting job rules.
var exclusionRules = []exclusionRule{
	{
		name: "unarmed-only species cannot take weapon jobs",
		match: func(s *ruleset.Species, j *ruleset.Job) bool {
			return s.UnarmedOnly && slices.Contains(
				[]string{jobGladiator, jobAssassin, jobHunter, jobArcaneMarksman}, j.ID)
		},
	},
	{
		name: "hedgehogs cannot be torpor knights",
		match: func(s *ruleset.Species, j *ruleset.Job) bool {
			return s.ID == speciesHedgehog && j.ID == jobTorporKnight
		},
	},
	{
		name: "demigods cannot take god-granted jobs",
		match: func(s *ruleset.Species, j *ruleset.Job) bool {
			return s.ID == speciesDemigod && slices.Contains([]string{
				jobBerserker, jobChaosKnight, jobAbyssalKnight, jobSlimePriest,
				jobBloodKnight, jobTorporKnight, jobAnnihilator, jobMonk,
			}, j.ID)
		},
	},
	{
		name: "undead and robots cannot transmute",
		match: func(s *ruleset.Species, j *ruleset.Job) bool {
			return j.ID == jobTransmuter &&
				(s.Undead == ruleset.Undead || s.Undead == ruleset.HungryDead || s.ID == speciesRobot)
		},
	},
	{
		name: "mummies cannot be alchemists",
		match: func(s *ruleset.Species, j *ruleset.Job) bool {
			return j.ID == jobAlchemist && (s.ID == speciesMummy || s.ID == speciesFelidMummy)
		},
	},
}

// bannedCombination returns the first exclusion rule matching the pair.
func bannedCombination(s *ruleset.Species, j *ruleset.Job) (string, bool) {
	for _, rule := range exclusionRules {
		if rule.match(s, j) {
			return rule.name, true
		}
	}
	return "", false
}

// weaponRule rates a weapon for a species/job pair when it applies.
type weaponRule struct {
	name  string
	apply func(w weapon.Type, s *ruleset.Species, j *ruleset.Job) (Verdict, bool)
}

// weaponRules is evaluated top to bottom; the first rule that applies decides.
// The final rule always applies.
var weaponRules = []weaponRule{
	{
		name: "unarmed-only body plan",
		apply: func(w weapon.Type, s *ruleset.Species, _ *ruleset.Job) (Verdict, bool) {
			return Banned, s.UnarmedOnly && w != weapon.Unarmed
		},
	},
	{
		name: "stabbers in fighter armour",
		apply: func(w weapon.Type, s *ruleset.Species, j *ruleset.Job) (Verdict, bool) {
			return Restricted, (s.ID == speciesNaga || s.ID == speciesVampire) &&
				j.ID == jobFighter && w == weapon.Rapier
		},
	},
	{
		name: "limbless species cannot grip staves or bows",
		apply: func(w weapon.Type, s *ruleset.Species, _ *ruleset.Job) (Verdict, bool) {
			return Banned, s.Limbless && (w == weapon.Quarterstaff || w == weapon.Shortbow)
		},
	},
	{
		name: "quarterstaff needs training",
		apply: func(w weapon.Type, s *ruleset.Species, j *ruleset.Job) (Verdict, bool) {
			trained := j.ID == jobGladiator || (j.ID == jobFighter && s.ID == speciesFormicid)
			return Banned, w == weapon.Quarterstaff && !trained
		},
	},
	{
		name: "thrown weapons suit medium and larger bodies",
		apply: func(w weapon.Type, s *ruleset.Species, _ *ruleset.Job) (Verdict, bool) {
			if w != weapon.Thrown {
				return Banned, false
			}
			if s.Size >= ruleset.SizeMedium {
				return Unrestricted, true
			}
			return Restricted, true
		},
	},
	{
		name: "species weapon recommendation",
		apply: func(w weapon.Type, s *ruleset.Species, _ *ruleset.Job) (Verdict, bool) {
			if s.RecommendsWeapon(w) {
				return Unrestricted, true
			}
			return Restricted, true
		},
	},
}
