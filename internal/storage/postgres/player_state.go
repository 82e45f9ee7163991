package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/crawl/internal/game/duration"
	"github.com/cory-johannsen/crawl/internal/game/player"
	"github.com/cory-johannsen/crawl/internal/game/ruleset"
	"github.com/cory-johannsen/crawl/internal/game/spell"
	"github.com/cory-johannsen/crawl/internal/game/weapon"
)

// ErrPlayerNotFound is returned when no state has been saved for a character.
var ErrPlayerNotFound = errors.New("player state not found")

// PlayerStateRepository persists the mutable player record between extension passes.
type PlayerStateRepository struct {
	db *pgxpool.Pool
}

// NewPlayerStateRepository creates a PlayerStateRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewPlayerStateRepository(db *pgxpool.Pool) *PlayerStateRepository {
	return &PlayerStateRepository{db: db}
}

// Save replaces the stored state for characterID with p in one transaction.
// Name, species and job live on the character row and are not written here.
//
// Precondition: characterID must reference an existing character; p must be non-nil.
// Postcondition: A subsequent Load returns a state equal to p in every persisted field.
func (r *PlayerStateRepository) Save(ctx context.Context, characterID uuid.UUID, p *player.State) error {
	if p == nil {
		return errors.New("player state must not be nil")
	}
	var wName, wBrand, wDamage *string
	if p.Weapon != nil {
		name, brand, damage := p.Weapon.Name, p.Weapon.Brand.String(), p.Weapon.Damage.String()
		wName, wBrand, wDamage = &name, &brand, &damage
	}

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			INSERT INTO player_states
				(character_id, hp, max_hp, mp, max_mp, intelligence, undead, form, god, piety,
				 under_penance, was_silenced, divine_regeneration, heavy_armour, shield_worn,
				 in_water, movement_speed, see_invisible_intrinsic, contamination,
				 weapon_name, weapon_brand, weapon_damage)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)
			ON CONFLICT (character_id) DO UPDATE SET
				hp = EXCLUDED.hp, max_hp = EXCLUDED.max_hp, mp = EXCLUDED.mp, max_mp = EXCLUDED.max_mp,
				intelligence = EXCLUDED.intelligence, undead = EXCLUDED.undead, form = EXCLUDED.form,
				god = EXCLUDED.god, piety = EXCLUDED.piety, under_penance = EXCLUDED.under_penance,
				was_silenced = EXCLUDED.was_silenced, divine_regeneration = EXCLUDED.divine_regeneration,
				heavy_armour = EXCLUDED.heavy_armour, shield_worn = EXCLUDED.shield_worn,
				in_water = EXCLUDED.in_water, movement_speed = EXCLUDED.movement_speed,
				see_invisible_intrinsic = EXCLUDED.see_invisible_intrinsic,
				contamination = EXCLUDED.contamination, weapon_name = EXCLUDED.weapon_name,
				weapon_brand = EXCLUDED.weapon_brand, weapon_damage = EXCLUDED.weapon_damage,
				updated_at = NOW()`,
			characterID, p.HP, p.MaxHP, p.MP, p.MaxMP, p.Intelligence, int16(p.Undead),
			p.Form.String(), string(p.God), p.Piety, p.UnderPenance, p.WasSilenced,
			p.DivineRegeneration, p.HeavyArmour, p.ShieldWorn, p.InWater, p.MovementSpeed,
			p.SeeInvisibleIntrinsic, p.Contamination, wName, wBrand, wDamage,
		); err != nil {
			if isForeignKeyError(err) {
				return ErrCharacterNotFound
			}
			return fmt.Errorf("upserting player state: %w", err)
		}

		batch := &pgx.Batch{}
		batch.Queue(`DELETE FROM player_durations WHERE character_id = $1`, characterID)
		batch.Queue(`DELETE FROM player_spells WHERE character_id = $1`, characterID)
		batch.Queue(`DELETE FROM player_skills WHERE character_id = $1`, characterID)
		for _, k := range p.Durations.Active() {
			batch.Queue(`INSERT INTO player_durations (character_id, kind, ticks) VALUES ($1,$2,$3)`,
				characterID, k.String(), p.Durations.Get(k))
		}
		for slot, id := range p.Spells {
			batch.Queue(`INSERT INTO player_spells (character_id, slot, spell_id) VALUES ($1,$2,$3)`,
				characterID, slot, string(id))
		}
		for skill, level := range p.Skills {
			batch.Queue(`INSERT INTO player_skills (character_id, skill, level) VALUES ($1,$2,$3)`,
				characterID, skill, level)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("writing player state rows: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrCharacterNotFound) {
			return err
		}
		return fmt.Errorf("saving player state: %w", err)
	}
	return nil
}

// Load reads the saved state for the character. The returned state carries the
// character's name, species and job from the character row.
//
// Postcondition: Returns the state or ErrPlayerNotFound.
func (r *PlayerStateRepository) Load(ctx context.Context, characterID uuid.UUID) (*player.State, error) {
	var (
		name, species, job     string
		undead                 int16
		form, god              string
		wName, wBrand, wDamage *string
	)
	p := &player.State{Skills: make(map[string]int)}
	err := r.db.QueryRow(ctx, `
		SELECT c.name, c.species, c.job,
		       s.hp, s.max_hp, s.mp, s.max_mp, s.intelligence, s.undead, s.form, s.god, s.piety,
		       s.under_penance, s.was_silenced, s.divine_regeneration, s.heavy_armour, s.shield_worn,
		       s.in_water, s.movement_speed, s.see_invisible_intrinsic, s.contamination,
		       s.weapon_name, s.weapon_brand, s.weapon_damage
		FROM player_states s JOIN characters c ON c.id = s.character_id
		WHERE s.character_id = $1`,
		characterID,
	).Scan(
		&name, &species, &job,
		&p.HP, &p.MaxHP, &p.MP, &p.MaxMP, &p.Intelligence, &undead, &form, &god, &p.Piety,
		&p.UnderPenance, &p.WasSilenced, &p.DivineRegeneration, &p.HeavyArmour, &p.ShieldWorn,
		&p.InWater, &p.MovementSpeed, &p.SeeInvisibleIntrinsic, &p.Contamination,
		&wName, &wBrand, &wDamage,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("querying player state: %w", err)
	}
	p.Name, p.Species, p.Job = name, species, job
	p.Undead = ruleset.UndeadState(undead)
	p.God = player.God(god)
	if p.Form, err = player.ParseForm(form); err != nil {
		return nil, fmt.Errorf("player state %s: %w", characterID, err)
	}
	if wName != nil {
		w := &weapon.Weapon{Name: *wName}
		if w.Brand, err = weapon.ParseBrand(deref(wBrand)); err != nil {
			return nil, fmt.Errorf("player state %s: %w", characterID, err)
		}
		if w.Damage, err = weapon.ParseDamageType(deref(wDamage)); err != nil {
			return nil, fmt.Errorf("player state %s: %w", characterID, err)
		}
		p.Weapon = w
	}

	if err := r.loadDurations(ctx, characterID, p); err != nil {
		return nil, err
	}
	if err := r.loadSpells(ctx, characterID, p); err != nil {
		return nil, err
	}
	if err := r.loadSkills(ctx, characterID, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PlayerStateRepository) loadDurations(ctx context.Context, id uuid.UUID, p *player.State) error {
	rows, err := r.db.Query(ctx, `SELECT kind, ticks FROM player_durations WHERE character_id = $1`, id)
	if err != nil {
		return fmt.Errorf("querying durations: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			name  string
			ticks int
		)
		if err := rows.Scan(&name, &ticks); err != nil {
			return fmt.Errorf("scanning duration row: %w", err)
		}
		k, err := duration.ParseKind(name)
		if err != nil {
			return fmt.Errorf("player state %s: %w", id, err)
		}
		p.Durations.Set(k, ticks)
	}
	return rows.Err()
}

func (r *PlayerStateRepository) loadSpells(ctx context.Context, id uuid.UUID, p *player.State) error {
	rows, err := r.db.Query(ctx, `SELECT spell_id FROM player_spells WHERE character_id = $1 ORDER BY slot`, id)
	if err != nil {
		return fmt.Errorf("querying spells: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var sid string
		if err := rows.Scan(&sid); err != nil {
			return fmt.Errorf("scanning spell row: %w", err)
		}
		p.Spells = append(p.Spells, spell.ID(sid))
	}
	return rows.Err()
}

func (r *PlayerStateRepository) loadSkills(ctx context.Context, id uuid.UUID, p *player.State) error {
	rows, err := r.db.Query(ctx, `SELECT skill, level FROM player_skills WHERE character_id = $1`, id)
	if err != nil {
		return fmt.Errorf("querying skills: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			skill string
			level int
		)
		if err := rows.Scan(&skill, &level); err != nil {
			return fmt.Errorf("scanning skill row: %w", err)
		}
		p.Skills[skill] = level
	}
	return rows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
