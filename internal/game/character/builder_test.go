package character_test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/crawl/internal/game/character"
	"github.com/cory-johannsen/crawl/internal/game/newgame"
	"github.com/cory-johannsen/crawl/internal/game/player"
	"github.com/cory-johannsen/crawl/internal/game/ruleset"
	"github.com/cory-johannsen/crawl/internal/game/weapon"
)

func loadRegistry(t testing.TB) *ruleset.Registry {
	t.Helper()
	content := filepath.Join("..", "..", "..", "content")
	reg, err := ruleset.Load(filepath.Join(content, "species"), filepath.Join(content, "jobs"))
	require.NoError(t, err)
	return reg
}

func TestNewBuilder_NilRegistryPanics(t *testing.T) {
	assert.Panics(t, func() { character.NewBuilder(nil) })
}

func TestBuild_RecommendedArchetype(t *testing.T) {
	b := character.NewBuilder(loadRegistry(t))
	a := newgame.Archetype{Species: "human", Job: "berserker", Deity: player.Okawaru}.WithWeapon(weapon.LongSword)

	c, err := b.Build("Urist", a)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.Equal(t, "Urist", c.Name)
	assert.Equal(t, newgame.Unrestricted, c.Verdict)
	assert.Equal(t, 12, c.MaxHP)
	assert.Equal(t, 3, c.MaxMP)
	assert.Equal(t, a, c.Archetype())
}

func TestBuild_UndeadSpeciesCarriesOver(t *testing.T) {
	b := character.NewBuilder(loadRegistry(t))
	c, err := b.Build("Imhotep", newgame.Archetype{Species: "mummy", Job: "wizard"})
	require.NoError(t, err)

	assert.Equal(t, ruleset.Undead, c.Undead)
	assert.Nil(t, c.Weapon)

	p := c.NewPlayer()
	assert.True(t, p.IsUndead())
	assert.Equal(t, c.MaxHP, p.HP)
	assert.Equal(t, "mummy", p.Species)
	assert.Equal(t, "wizard", p.Job)
}

func TestBuild_ExcludedPairNamesTheRule(t *testing.T) {
	b := character.NewBuilder(loadRegistry(t))
	_, err := b.Build("Mittens", newgame.Archetype{Species: "felid", Job: "gladiator"})
	require.ErrorIs(t, err, character.ErrBannedArchetype)
	assert.Contains(t, err.Error(), "unarmed-only species cannot take weapon jobs")
}

func TestBuild_BannedWeapon(t *testing.T) {
	b := character.NewBuilder(loadRegistry(t))
	a := newgame.Archetype{Species: "felid", Job: "wizard"}.WithWeapon(weapon.LongSword)
	_, err := b.Build("Mittens", a)
	assert.ErrorIs(t, err, character.ErrBannedArchetype)
}

func TestBuild_UnplayableSpecies(t *testing.T) {
	b := character.NewBuilder(loadRegistry(t))
	_, err := b.Build("Elrond", newgame.Archetype{Species: "high_elf", Job: "wizard"})
	assert.ErrorIs(t, err, character.ErrBannedArchetype)
}

func TestBuild_UnknownChoices(t *testing.T) {
	b := character.NewBuilder(loadRegistry(t))

	_, err := b.Build("Nobody", newgame.Archetype{Species: "dwarf", Job: "wizard"})
	assert.ErrorIs(t, err, character.ErrUnknownChoice)

	_, err = b.Build("Nobody", newgame.Archetype{Species: "human", Job: "jester"})
	assert.ErrorIs(t, err, character.ErrUnknownChoice)
}

func TestBuild_EmptyNameError(t *testing.T) {
	b := character.NewBuilder(loadRegistry(t))
	_, err := b.Build("", newgame.Archetype{Species: "human", Job: "fighter"})
	assert.Error(t, err)
}

// Property: Build succeeds exactly when the archetype is not Banned, and the
// stored verdict is the resolver's verdict.
func TestPropertyBuild_AgreesWithResolver(t *testing.T) {
	reg := loadRegistry(t)
	b := character.NewBuilder(reg)
	res := newgame.NewResolver(reg)
	species := reg.PlayableSpecies()
	jobs := reg.PlayableJobs()

	rapid.Check(t, func(rt *rapid.T) {
		s := rapid.SampledFrom(species).Draw(rt, "species")
		j := rapid.SampledFrom(jobs).Draw(rt, "job")
		a := newgame.Archetype{Species: s.ID, Job: j.ID}
		if rapid.Bool().Draw(rt, "armed") {
			a = a.WithWeapon(rapid.SampledFrom(weapon.Types()).Draw(rt, "weapon"))
		}

		want := res.ArchetypeVerdict(a)
		c, err := b.Build("Prop", a)
		if want == newgame.Banned {
			if err == nil {
				rt.Fatalf("%s %s built despite a banned verdict", s.ID, j.ID)
			}
			return
		}
		if err != nil {
			rt.Fatalf("%s %s: unexpected error %v", s.ID, j.ID, err)
		}
		if c.Verdict != want {
			rt.Fatalf("verdict %s, want %s", c.Verdict, want)
		}
		if c.MaxHP < 1 {
			rt.Fatalf("MaxHP %d < 1", c.MaxHP)
		}
	})
}
