package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/crawl/internal/game/character"
	"github.com/cory-johannsen/crawl/internal/game/newgame"
	"github.com/cory-johannsen/crawl/internal/game/player"
	"github.com/cory-johannsen/crawl/internal/game/ruleset"
	"github.com/cory-johannsen/crawl/internal/game/weapon"
	"github.com/cory-johannsen/crawl/internal/storage/postgres"
	"github.com/cory-johannsen/crawl/internal/testutil"
)

func uniqueName(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
}

func makeTestCharacter(name string) *character.Character {
	w := weapon.LongSword
	return &character.Character{
		ID:      uuid.New(),
		Name:    name,
		Species: "human",
		Job:     "berserker",
		Weapon:  &w,
		God:     player.Okawaru,
		Verdict: newgame.Unrestricted,
		Undead:  ruleset.Alive,
		MaxHP:   12,
		MaxMP:   3,
	}
}

func TestCharacterRepository_CreateAndGet(t *testing.T) {
	repo := postgres.NewCharacterRepository(testutil.NewPool(t))
	ctx := context.Background()

	c := makeTestCharacter("Urist")
	created, err := repo.Create(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, c.ID, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	require.NotNil(t, created.Weapon)
	assert.Equal(t, weapon.LongSword, *created.Weapon)

	fetched, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Urist", fetched.Name)
	assert.Equal(t, "human", fetched.Species)
	assert.Equal(t, "berserker", fetched.Job)
	assert.Equal(t, player.Okawaru, fetched.God)
	assert.Equal(t, newgame.Unrestricted, fetched.Verdict)
	assert.Equal(t, c.Archetype(), fetched.Archetype())

	byName, err := repo.GetByName(ctx, "Urist")
	require.NoError(t, err)
	assert.Equal(t, c.ID, byName.ID)
}

func TestCharacterRepository_NoWeapon(t *testing.T) {
	repo := postgres.NewCharacterRepository(testutil.NewPool(t))
	ctx := context.Background()

	c := makeTestCharacter("Imhotep")
	c.Weapon = nil
	c.Undead = ruleset.Undead
	_, err := repo.Create(ctx, c)
	require.NoError(t, err)

	fetched, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.Weapon)
	assert.Equal(t, ruleset.Undead, fetched.Undead)
}

func TestCharacterRepository_DuplicateNameError(t *testing.T) {
	repo := postgres.NewCharacterRepository(testutil.NewPool(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, makeTestCharacter("Zara"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, makeTestCharacter("Zara"))
	assert.ErrorIs(t, err, postgres.ErrCharacterNameTaken)
}

func TestCharacterRepository_NilIDRejected(t *testing.T) {
	repo := postgres.NewCharacterRepository(testutil.NewPool(t))
	c := makeTestCharacter("Nil")
	c.ID = uuid.Nil
	_, err := repo.Create(context.Background(), c)
	assert.Error(t, err)
}

func TestCharacterRepository_ListAndDelete(t *testing.T) {
	repo := postgres.NewCharacterRepository(testutil.NewPool(t))
	ctx := context.Background()

	chars, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, chars)
	assert.Empty(t, chars)

	a, err := repo.Create(ctx, makeTestCharacter("Alpha"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, makeTestCharacter("Beta"))
	require.NoError(t, err)

	chars, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, chars, 2)

	require.NoError(t, repo.Delete(ctx, a.ID))
	assert.ErrorIs(t, repo.Delete(ctx, a.ID), postgres.ErrCharacterNotFound)

	_, err = repo.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, postgres.ErrCharacterNotFound)
}

func TestCharacterRepository_NotFound(t *testing.T) {
	repo := postgres.NewCharacterRepository(testutil.NewPool(t))
	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, postgres.ErrCharacterNotFound)
	_, err = repo.GetByName(context.Background(), "nobody")
	assert.ErrorIs(t, err, postgres.ErrCharacterNotFound)
}

func TestProperty_CharacterRoundTrip(t *testing.T) {
	repo := postgres.NewCharacterRepository(testutil.NewPool(t))
	ctx := context.Background()

	rapid.Check(t, func(rt *rapid.T) {
		c := makeTestCharacter(uniqueName("prop"))
		c.MaxHP = rapid.IntRange(1, 100).Draw(rt, "max_hp")
		c.MaxMP = rapid.IntRange(0, 50).Draw(rt, "max_mp")
		c.Verdict = newgame.Verdict(rapid.IntRange(int(newgame.Restricted), int(newgame.Unrestricted)).Draw(rt, "verdict"))
		w := rapid.SampledFrom(weapon.Types()).Draw(rt, "weapon")
		c.Weapon = &w

		_, err := repo.Create(ctx, c)
		if err != nil {
			rt.Fatalf("create: %v", err)
		}
		got, err := repo.GetByID(ctx, c.ID)
		if err != nil {
			rt.Fatalf("get: %v", err)
		}
		if got.MaxHP != c.MaxHP || got.MaxMP != c.MaxMP || got.Verdict != c.Verdict || *got.Weapon != w {
			rt.Fatalf("round trip mismatch: got %+v want %+v", got, c)
		}
	})
}
