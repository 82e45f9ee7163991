package ruleset_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/crawl/internal/game/ruleset"
)

func TestRegistry_LookupAndOrder(t *testing.T) {
	reg := ruleset.NewRegistry()
	reg.RegisterSpecies(&ruleset.Species{ID: "troll", Playable: true})
	reg.RegisterSpecies(&ruleset.Species{ID: "high_elf"})
	reg.RegisterJob(&ruleset.Job{ID: "monk", Playable: true})

	s, ok := reg.Species("troll")
	require.True(t, ok)
	assert.Equal(t, "troll", s.ID)

	_, ok = reg.Species("yak")
	assert.False(t, ok)

	all := reg.AllSpecies()
	require.Len(t, all, 2)
	assert.Equal(t, "troll", all[0].ID)
	assert.Equal(t, "high_elf", all[1].ID)

	playable := reg.PlayableSpecies()
	require.Len(t, playable, 1)
	assert.Equal(t, "troll", playable[0].ID)
	assert.Len(t, reg.PlayableJobs(), 1)
}

func TestRegistry_RegisterPanics(t *testing.T) {
	reg := ruleset.NewRegistry()
	assert.Panics(t, func() { reg.RegisterSpecies(nil) })
	assert.Panics(t, func() { reg.RegisterSpecies(&ruleset.Species{}) })
	assert.Panics(t, func() { reg.RegisterJob(nil) })
	assert.Panics(t, func() { reg.RegisterJob(&ruleset.Job{}) })

	reg.RegisterJob(&ruleset.Job{ID: "monk"})
	assert.Panics(t, func() { reg.RegisterJob(&ruleset.Job{ID: "monk"}) })
}

func TestRegistry_AllSpeciesReturnsCopy(t *testing.T) {
	reg := ruleset.NewRegistry()
	reg.RegisterSpecies(&ruleset.Species{ID: "human"})
	all := reg.AllSpecies()
	all[0] = nil
	assert.NotNil(t, reg.AllSpecies()[0])
}

func TestLoad_DuplicateSpeciesRejected(t *testing.T) {
	species := t.TempDir()
	jobs := t.TempDir()
	writeFile(t, filepath.Join(species, "a.yaml"), "id: human\nname: Human\nsize: medium\n")
	writeFile(t, filepath.Join(species, "b.yaml"), "id: human\nname: Human Again\nsize: medium\n")
	_, err := ruleset.Load(species, jobs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate species")
}

func TestLoad_ActualContent(t *testing.T) {
	reg, err := ruleset.Load("../../../content/species", "../../../content/jobs")
	require.NoError(t, err)

	for _, j := range reg.AllJobs() {
		for _, id := range j.RecommendedSpecies {
			_, ok := reg.Species(id)
			assert.True(t, ok, "job %s recommends unknown species %s", j.ID, id)
		}
	}
	for _, s := range reg.AllSpecies() {
		for _, id := range s.RecommendedJobs {
			_, ok := reg.Job(id)
			assert.True(t, ok, "species %s recommends unknown job %s", s.ID, id)
		}
	}
}

func TestSize_Ordering(t *testing.T) {
	assert.Less(t, ruleset.SizeLittle, ruleset.SizeSmall)
	assert.Less(t, ruleset.SizeSmall, ruleset.SizeMedium)
	assert.Less(t, ruleset.SizeMedium, ruleset.SizeLarge)
}

func TestProperty_SizeParseRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := ruleset.Size(rapid.IntRange(int(ruleset.SizeTiny), int(ruleset.SizeGiant)).Draw(rt, "size"))
		got, err := ruleset.ParseSize(s.String())
		if err != nil {
			rt.Fatal(err)
		}
		if got != s {
			rt.Fatalf("ParseSize(%q) = %v, want %v", s.String(), got, s)
		}
	})
}
