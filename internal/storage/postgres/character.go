package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/crawl/internal/game/character"
	"github.com/cory-johannsen/crawl/internal/game/newgame"
	"github.com/cory-johannsen/crawl/internal/game/player"
	"github.com/cory-johannsen/crawl/internal/game/ruleset"
	"github.com/cory-johannsen/crawl/internal/game/weapon"
)

// ErrCharacterNotFound is returned when a character lookup yields no results.
var ErrCharacterNotFound = errors.New("character not found")

// ErrCharacterNameTaken is returned when creating a character with a name already in use.
var ErrCharacterNameTaken = errors.New("character name already taken")

const characterColumns = `id, name, species, job, weapon, god, verdict, undead, max_hp, max_mp, created_at, updated_at`

// CharacterRepository provides character persistence operations.
type CharacterRepository struct {
	db *pgxpool.Pool
}

// NewCharacterRepository creates a CharacterRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewCharacterRepository(db *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{db: db}
}

// Create inserts a new character and returns it with timestamps set.
//
// Precondition: c.ID must be non-nil; c.Name must be non-empty.
// Postcondition: Returns the stored character, or ErrCharacterNameTaken on a duplicate name.
func (r *CharacterRepository) Create(ctx context.Context, c *character.Character) (*character.Character, error) {
	if c.ID == uuid.Nil {
		return nil, errors.New("character ID must be set")
	}
	var weaponName *string
	if c.Weapon != nil {
		s := c.Weapon.String()
		weaponName = &s
	}
	row := r.db.QueryRow(ctx, `
		INSERT INTO characters (id, name, species, job, weapon, god, verdict, undead, max_hp, max_mp)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING `+characterColumns,
		c.ID, c.Name, c.Species, c.Job, weaponName, string(c.God), int16(c.Verdict), int16(c.Undead), c.MaxHP, c.MaxMP,
	)
	out, err := scanCharacter(row)
	if err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrCharacterNameTaken
		}
		return nil, fmt.Errorf("inserting character: %w", err)
	}
	return out, nil
}

// GetByID retrieves a character by its primary key.
//
// Postcondition: Returns the Character or ErrCharacterNotFound.
func (r *CharacterRepository) GetByID(ctx context.Context, id uuid.UUID) (*character.Character, error) {
	row := r.db.QueryRow(ctx, `SELECT `+characterColumns+` FROM characters WHERE id = $1`, id)
	c, err := scanCharacter(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCharacterNotFound
		}
		return nil, fmt.Errorf("querying character: %w", err)
	}
	return c, nil
}

// GetByName retrieves a character by its unique name.
//
// Postcondition: Returns the Character or ErrCharacterNotFound.
func (r *CharacterRepository) GetByName(ctx context.Context, name string) (*character.Character, error) {
	row := r.db.QueryRow(ctx, `SELECT `+characterColumns+` FROM characters WHERE name = $1`, name)
	c, err := scanCharacter(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCharacterNotFound
		}
		return nil, fmt.Errorf("querying character by name: %w", err)
	}
	return c, nil
}

// List returns every character, oldest first.
//
// Postcondition: Returns a slice (may be empty) or a non-nil error.
func (r *CharacterRepository) List(ctx context.Context) ([]*character.Character, error) {
	rows, err := r.db.Query(ctx, `SELECT `+characterColumns+` FROM characters ORDER BY created_at ASC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing characters: %w", err)
	}
	defer rows.Close()

	chars := make([]*character.Character, 0)
	for rows.Next() {
		c, err := scanCharacter(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning character row: %w", err)
		}
		chars = append(chars, c)
	}
	return chars, rows.Err()
}

// Delete removes a character and, by cascade, its saved state.
//
// Postcondition: Returns nil on success, ErrCharacterNotFound if no row was deleted.
func (r *CharacterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM characters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting character: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCharacterNotFound
	}
	return nil
}

func scanCharacter(row pgx.Row) (*character.Character, error) {
	var (
		c          character.Character
		weaponName *string
		god        string
		verdict    int16
		undead     int16
	)
	if err := row.Scan(
		&c.ID, &c.Name, &c.Species, &c.Job, &weaponName, &god, &verdict, &undead,
		&c.MaxHP, &c.MaxMP, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if weaponName != nil {
		w, err := weapon.ParseType(*weaponName)
		if err != nil {
			return nil, fmt.Errorf("character %s: %w", c.ID, err)
		}
		c.Weapon = &w
	}
	c.God = player.God(god)
	c.Verdict = newgame.Verdict(verdict)
	c.Undead = ruleset.UndeadState(undead)
	return &c, nil
}
