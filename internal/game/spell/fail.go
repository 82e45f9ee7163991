package spell

// MaxLevel is the highest spell level.
const MaxLevel = 9

// SkillSpellcasting is the general casting skill consulted for every spell.
const SkillSpellcasting = "spellcasting"

// levelDifficulty is added to the base failure chance, indexed by level-1.
var levelDifficulty = [MaxLevel]int{3, 15, 35, 70, 100, 150, 200, 260, 330}

// FailChance returns the percentage chance that casting def fails.
// School skills are averaged; spellcasting and intelligence reduce the
// chance further, and the spell level raises it.
//
// Precondition: def must be non-nil with 1 <= Level <= MaxLevel.
// Postcondition: 0 <= result <= 100.
func FailChance(def *Def, skills map[string]int, intelligence int) int {
	if def == nil || def.Level < 1 || def.Level > MaxLevel {
		panic("spell: FailChance precondition violated: def must be non-nil with a valid level")
	}
	chance := 60

	if len(def.Schools) > 0 {
		total := 0
		for _, school := range def.Schools {
			total += skills[school]
		}
		chance -= 6 * total / len(def.Schools)
	}
	chance -= skills[SkillSpellcasting]
	chance -= 2 * intelligence
	chance += levelDifficulty[def.Level-1]

	return max(0, min(100, chance))
}
