package enchant

import (
	"github.com/cory-johannsen/crawl/internal/game/duration"
	"github.com/cory-johannsen/crawl/internal/game/player"
	"github.com/cory-johannsen/crawl/internal/game/spell"
	"github.com/cory-johannsen/crawl/internal/game/weapon"
)

// entry describes how one duration kind is re-cast.
type entry struct {
	kind duration.Kind
	// owner resolves the spell that re-casts the kind.
	owner func(p *player.State) spell.ID
	// eligible is checked before the knowledge check; nil means always.
	eligible func(p *player.State) bool
	// allowed is checked after a successful knowledge check; nil means always.
	allowed       func(p *player.State) bool
	recast        func(e *Engine, p *player.State, power int)
	contamination int
}

func static(id spell.ID) func(*player.State) spell.ID {
	return func(*player.State) spell.ID { return id }
}

// catalogue is the order of the extension pass. Contamination accumulates in
// this order, so reordering entries changes behaviour.
var catalogue = []entry{
	{kind: duration.Haste, owner: static(spell.Haste), recast: (*Engine).Haste, contamination: 1},
	{kind: duration.Slow, owner: static(spell.Slow), recast: (*Engine).Slow},
	{
		kind:     duration.Levitation,
		owner:    static(spell.Levitation),
		eligible: func(p *player.State) bool { return !p.Durations.IsActive(duration.ControlledFlight) },
		recast:   (*Engine).Levitate,
	},
	{kind: duration.Invisibility, owner: static(spell.Invisibility), recast: (*Engine).Invisibility, contamination: 1},
	{
		kind:  duration.IcyArmour,
		owner: static(spell.OzocubusArmour),
		recast: func(e *Engine, p *player.State, power int) {
			e.IceArmour(p, power, true)
		},
	},
	{kind: duration.RepelMissiles, owner: static(spell.RepelMissiles), recast: (*Engine).MissileProt},
	{
		kind:    duration.Regeneration,
		owner:   static(spell.Regeneration),
		allowed: func(p *player.State) bool { return p.Form != player.FormLich },
		recast: func(e *Engine, p *player.State, power int) {
			e.CastRegen(p, power, false)
		},
	},
	{kind: duration.DeflectMissiles, owner: static(spell.DeflectMissiles), recast: (*Engine).Deflection},
	{kind: duration.FireShield, owner: static(spell.RingOfFlames), recast: (*Engine).extendRingOfFlames},
	{kind: duration.WeaponBrand, owner: brandSpell, recast: (*Engine).extendWeaponBrand},
	{kind: duration.Swiftness, owner: static(spell.Swiftness), recast: (*Engine).CastSwiftness},
	{kind: duration.Insulation, owner: static(spell.Insulation), recast: (*Engine).CastInsulation},
	{kind: duration.ControlledFlight, owner: static(spell.Fly), recast: (*Engine).CastFly},
	{kind: duration.ControlTeleport, owner: static(spell.ControlTeleport), recast: (*Engine).CastTeleportControl},
	{kind: duration.ResistPoison, owner: static(spell.ResistPoison), recast: (*Engine).CastResistPoison},
	{kind: duration.Transformation, owner: transformSpell, recast: (*Engine).extendTransformation},
	{kind: duration.Stoneskin, owner: static(spell.Stoneskin), recast: (*Engine).CastStoneskin},
	{kind: duration.PhaseShift, owner: static(spell.PhaseShift), recast: (*Engine).CastPhaseShift},
	{kind: duration.SeeInvisible, owner: static(spell.SeeInvisible), recast: (*Engine).CastSeeInvisible},
	{kind: duration.Silence, owner: static(spell.Silence), recast: (*Engine).CastSilence},
	{kind: duration.CondensationShield, owner: static(spell.CondensationShield), recast: (*Engine).CastCondensationShield},
	{kind: duration.DeathChannel, owner: static(spell.DeathChannel), recast: (*Engine).CastDeathChannel},
	{
		kind:  duration.DeathsDoor,
		owner: static(spell.DeathsDoor),
		recast: func(e *Engine, p *player.State, power int) {
			e.CastDeathsDoor(p, power)
		},
	},
}

// Catalogue returns the duration kinds in extension order.
func Catalogue() []duration.Kind {
	out := make([]duration.Kind, len(catalogue))
	for i, ent := range catalogue {
		out[i] = ent.kind
	}
	return out
}

// brandSpell returns the spell that grants the wielded weapon's brand.
func brandSpell(p *player.State) spell.ID {
	if p.Weapon == nil {
		return spell.None
	}
	crushing := p.Weapon.Damage == weapon.Crushing
	switch p.Weapon.Brand {
	case weapon.BrandFlaming, weapon.BrandFlame:
		return spell.FireBrand
	case weapon.BrandFreezing, weapon.BrandFrost:
		return spell.FreezingAura
	case weapon.BrandVorpal:
		if crushing {
			return spell.MaxwellsSilverHammer
		}
		return spell.None
	case weapon.BrandVenom:
		if crushing {
			return spell.None
		}
		return spell.PoisonWeapon
	case weapon.BrandPain:
		return spell.ExcruciatingWounds
	case weapon.BrandDraining:
		return spell.LethalInfusion
	case weapon.BrandDistortion:
		return spell.WarpBrand
	default:
		return spell.None
	}
}

// transformSpell returns the spell that produces the current form.
func transformSpell(p *player.State) spell.ID {
	switch p.Form {
	case player.FormBladeHands:
		return spell.BladeHands
	case player.FormSpider:
		return spell.SpiderForm
	case player.FormStatue:
		return spell.StatueForm
	case player.FormIceBeast:
		return spell.IceForm
	case player.FormDragon:
		return spell.DragonForm
	case player.FormLich:
		return spell.Necromutation
	case player.FormPig:
		return spell.Porkalator
	default:
		// bat form has no spell
		return spell.None
	}
}
