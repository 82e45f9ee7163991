package enchant

import (
	"github.com/cory-johannsen/crawl/internal/game/duration"
	"github.com/cory-johannsen/crawl/internal/game/message"
	"github.com/cory-johannsen/crawl/internal/game/player"
	"github.com/cory-johannsen/crawl/internal/game/spell"
)

// transformWarnTurns is the remaining time at which a form is announced as fading.
const transformWarnTurns = 10

func (e *Engine) say(text string) {
	e.msgs.Emit(text, message.Plain)
}

// Haste speeds the player up, or extends an existing haste.
func (e *Engine) Haste(p *player.State, power int) {
	if p.Durations.IsActive(duration.Haste) {
		e.say("You feel as though your hastened speed will last longer.")
	} else {
		e.say("You feel yourself speed up.")
	}
	p.Durations.Increase(duration.Haste, 40+e.roller.Random2(power), 80)
	e.effects.GodConduct(p, ConductHasty, 10)
}

// Slow slows the player down, or prolongs an existing slow.
func (e *Engine) Slow(p *player.State, power int) {
	if p.Durations.IsActive(duration.Slow) {
		e.say("You feel as though you will be slow longer.")
	} else {
		e.say("You feel yourself slow down.")
	}
	p.Durations.Increase(duration.Slow, 10+e.roller.Random2(power), 100)
}

// Levitate lifts the player off the ground.
func (e *Engine) Levitate(p *player.State, power int) {
	if p.Airborne() {
		e.say("You feel more buoyant.")
	} else {
		e.say("You gently float upwards from the floor.")
	}
	p.Durations.Increase(duration.Levitation, 25+e.roller.Random2(power), 100)
}

// Invisibility turns the player invisible.
func (e *Engine) Invisibility(p *player.State, power int) {
	if p.Durations.IsActive(duration.Invisibility) {
		e.say("You fade further into invisibility.")
	} else {
		e.say("You fade into invisibility!")
	}
	p.Durations.Increase(duration.Invisibility, 15+e.roller.Random2(power), 100)
}

// RemoveIceArmour ends Ozocubu's Armour.
func (e *Engine) RemoveIceArmour(p *player.State) {
	e.msgs.Emit("Your icy armour melts away.", message.Duration)
	p.RedrawArmourClass = true
	p.Durations.Clear(duration.IcyArmour)
}

// IceArmour casts Ozocubu's Armour. When extending, refusals are silent.
func (e *Engine) IceArmour(p *player.State, power int, extending bool) {
	if p.HeavyArmour {
		if !extending {
			e.say("You are wearing too much armour.")
		}
		return
	}
	if p.Durations.IsActive(duration.Stonemail) || p.Durations.IsActive(duration.Stoneskin) {
		if !extending {
			e.say("The spell conflicts with another spell still in effect.")
		}
		return
	}

	switch {
	case p.Durations.IsActive(duration.IcyArmour):
		e.say("Your icy armour thickens.")
	case p.Form == player.FormIceBeast:
		e.say("Your icy body feels more resilient.")
		p.RedrawArmourClass = true
	default:
		e.say("A film of ice covers your body!")
		p.RedrawArmourClass = true
	}
	p.Durations.Increase(duration.IcyArmour, 20+e.roller.Random2(power)+e.roller.Random2(power), 50)
}

// MissileProt casts Repel Missiles.
func (e *Engine) MissileProt(p *player.State, power int) {
	e.say("You feel protected from missiles.")
	p.Durations.Increase(duration.RepelMissiles, 8+e.roller.RollDice(2, power), 100)
}

// Deflection casts Deflect Missiles.
func (e *Engine) Deflection(p *player.State, power int) {
	e.say("You feel very safe from missiles.")
	p.Durations.Increase(duration.DeflectMissiles, 15+e.roller.Random2(power), 100)
}

// RemoveRegen ends regeneration, along with its divine magic resistance.
func (e *Engine) RemoveRegen(p *player.State, divine bool) {
	e.msgs.Emit("Your skin stops crawling.", message.Duration)
	p.Durations.Clear(duration.Regeneration)
	if divine {
		e.msgs.Emit("You feel less resistant to magic.", message.Duration)
		p.DivineRegeneration = false
	}
}

// CastRegen casts Regeneration. The divine variant also grants magic resistance.
func (e *Engine) CastRegen(p *player.State, power int, divine bool) {
	e.say("Your skin crawls.")
	p.Durations.Increase(duration.Regeneration, 5+e.roller.RollDice(2, power/3+1), 100)
	if divine {
		e.say("You feel resistant to magic.")
		p.DivineRegeneration = true
	}
}

func (e *Engine) extendRingOfFlames(p *player.State, power int) {
	p.Durations.Increase(duration.FireShield, e.roller.Random2(power/20), 50)
	e.say("Your ring of flames roars with new vigour!")
}

func (e *Engine) extendWeaponBrand(p *player.State, _ int) {
	p.Durations.Increase(duration.WeaponBrand, 5+e.roller.Random2(8), 80)
}

// CastSwiftness speeds up the player's movement.
func (e *Engine) CastSwiftness(p *player.State, power int) {
	if p.InWater {
		e.say("The water foams!")
		return
	}
	if !p.Durations.IsActive(duration.Swiftness) && p.MovementSpeed <= 6 {
		e.say("You can't move any more quickly.")
		return
	}
	e.say("You feel quick.")
	p.Durations.Increase(duration.Swiftness, 20+e.roller.Random2(power), 100)
	e.effects.GodConduct(p, ConductHasty, 8)
}

// CastFly grants controlled flight. Flight also carries levitation, so both
// durations grow by the same amount.
func (e *Engine) CastFly(p *player.State, power int) {
	turns := 25 + e.roller.Random2(power) + e.roller.Random2(power)
	wasAirborne := p.Airborne()

	p.Durations.Increase(duration.Levitation, turns, 100)
	p.Durations.Increase(duration.ControlledFlight, turns, 100)

	if wasAirborne {
		e.say("You feel more buoyant.")
	} else {
		e.say("You fly up into the air.")
	}
}

// CastInsulation protects the player from electricity.
func (e *Engine) CastInsulation(p *player.State, power int) {
	e.say("You feel insulated.")
	p.Durations.Increase(duration.Insulation, 10+e.roller.Random2(power), 100)
}

// CastResistPoison protects the player from poison.
func (e *Engine) CastResistPoison(p *player.State, power int) {
	e.say("You feel resistant to poison.")
	p.Durations.Increase(duration.ResistPoison, 10+e.roller.Random2(power), 100)
}

// CastTeleportControl lets the player choose teleport destinations.
func (e *Engine) CastTeleportControl(p *player.State, power int) {
	e.say("You feel in control.")
	p.Durations.Increase(duration.ControlTeleport, 10+e.roller.Random2(power), 50)
}

func (e *Engine) extendTransformation(p *player.State, power int) {
	e.say("Your transformation has been extended.")
	p.Durations.Increase(duration.Transformation, e.roller.Random2(power), 100)

	// Lich form is reachable under a good god through Xom or a card.
	if p.Form == player.FormLich && p.God.IsGood() {
		e.effects.Excommunicate(p)
	}
	e.transformationExpirationWarning(p)
}

func (e *Engine) transformationExpirationWarning(p *player.State) {
	if p.Durations.Get(duration.Transformation) <= transformWarnTurns*duration.BaselineDelay {
		e.msgs.Emit("You have a feeling this form won't last long.", message.Duration)
	}
}

// CastStoneskin hardens the player's skin.
func (e *Engine) CastStoneskin(p *player.State, power int) {
	if p.IsUndead() {
		e.say("This spell does not affect your undead flesh.")
		return
	}
	switch p.Form {
	case player.FormNone, player.FormStatue, player.FormBladeHands:
	default:
		e.say("This spell does not affect your current form.")
		return
	}
	if p.Durations.IsActive(duration.Stonemail) || p.Durations.IsActive(duration.IcyArmour) {
		e.say("This spell conflicts with another spell still in effect.")
		return
	}

	switch {
	case p.Durations.IsActive(duration.Stoneskin):
		e.say("Your skin feels harder.")
	case p.Form == player.FormStatue:
		e.say("Your stone body feels more resilient.")
		p.RedrawArmourClass = true
	default:
		e.say("Your skin hardens.")
		p.RedrawArmourClass = true
	}
	p.Durations.Increase(duration.Stoneskin, 10+e.roller.Random2(power)+e.roller.Random2(power), 50)
}

// CastPhaseShift shifts the player partly out of the material plane.
func (e *Engine) CastPhaseShift(p *player.State, power int) {
	if p.Durations.IsActive(duration.PhaseShift) {
		e.say("You feel the material plane grow further away.")
	} else {
		e.say("You feel the strange sensation of being on two planes at once.")
	}
	p.Durations.Increase(duration.PhaseShift, 5+e.roller.Random2(power), 30)
	p.RedrawEvasion = true
}

// CastSeeInvisible sharpens the player's vision.
func (e *Engine) CastSeeInvisible(p *player.State, power int) {
	if p.CanSeeInvisible() {
		e.say("You feel as though your vision will be sharpened longer.")
	} else {
		e.say("Your vision seems to sharpen.")
	}
	p.Durations.Increase(duration.SeeInvisible, 10+e.roller.Random2(2+power/2), 100)
}

// CastSilence surrounds the player with silence.
func (e *Engine) CastSilence(p *player.State, power int) {
	if !p.WasSilenced {
		e.say("A profound silence engulfs you.")
	}
	p.WasSilenced = true

	p.Durations.Increase(duration.Silence, 10+e.roller.Random2Avg(power, 2), 100)
	e.area.InvalidateAreaGrid(true)
	e.effects.Hint(HintYouSilence)
}

// CastLiquefaction turns the ground around the player to mud.
func (e *Engine) CastLiquefaction(p *player.State, power int) {
	e.say("The ground around you becomes liquefied!")
	p.Durations.Increase(duration.Liquefying, 10+e.roller.Random2Avg(power, 2), 100)
	e.area.InvalidateAreaGrid(true)
}

// CastCondensationShield forms a disc of vapour. A worn shield or a ring of
// flames makes the spell fizzle.
func (e *Engine) CastCondensationShield(p *player.State, power int) {
	if p.ShieldWorn || p.Durations.IsActive(duration.FireShield) {
		e.say("The spell fizzles.")
		return
	}
	if p.Durations.IsActive(duration.CondensationShield) {
		e.say("The disc of vapour around you crackles some more.")
	} else {
		e.say("A crackling disc of dense vapour forms in the air!")
		p.RedrawArmourClass = true
	}
	p.Durations.Increase(duration.CondensationShield, 15+e.roller.Random2(power), 30)
}

// CastDeathChannel lets slain foes rise as spectral servants.
func (e *Engine) CastDeathChannel(p *player.State, power int) {
	e.say("Malign forces permeate your being, awaiting release.")
	p.Durations.Increase(duration.DeathChannel, 30+e.roller.Random2(1+2*power/3), 200)
	e.effects.GodConduct(p, ConductNecromancy, 4)
}

// AllowedDeathsDoorHP is the hit point total Death's Door holds the player at.
//
// Postcondition: result >= 1.
func AllowedDeathsDoorHP(p *player.State) int {
	hp := p.Skill("necromancy") / 2
	if p.God == player.Kikubaaqudgha && !p.UnderPenance {
		hp += p.Piety / 15
	}
	return max(hp, 1)
}

// CastDeathsDoor makes the player unkillable for a while. It reports whether
// the spell took effect; an existing Death's Door is never extended.
func (e *Engine) CastDeathsDoor(p *player.State, power int) bool {
	switch {
	case p.IsUndead():
		e.say("You're already dead!")
		return false
	case p.Durations.IsActive(duration.Exhausted):
		e.say("You are too exhausted to enter Death's door!")
		return false
	case p.Durations.IsActive(duration.DeathsDoor):
		e.say("Your appeal for an extension has been denied.")
		return false
	}

	e.say("You feel invincible!")
	e.msgs.Emit("You seem to hear sand running through an hourglass...", message.Sound)

	p.HP = min(AllowedDeathsDoorHP(p), p.MaxHP)

	turns := 10 + e.roller.Random2Avg(13, 3) + e.roller.Random2(power)/10
	p.Durations.Set(duration.DeathsDoor, turns*duration.BaselineDelay)
	if p.Durations.Get(duration.DeathsDoor) > 25*duration.BaselineDelay {
		p.Durations.Set(duration.DeathsDoor, (23+e.roller.Random2(5))*duration.BaselineDelay)
	}
	return true
}

// CastSelectiveAmnesia forgets a memorised spell and returns its mana to the
// player. It reports whether a spell was forgotten.
func (e *Engine) CastSelectiveAmnesia(p *player.State, id spell.ID) bool {
	if len(p.Spells) == 0 {
		e.say("You don't know any spells.")
		return false
	}
	if !p.Forget(id) {
		e.say("You don't know that spell.")
		return false
	}
	def, ok := e.spells.Get(id)
	if ok && def.Mana > 0 {
		p.GainMP(def.Mana)
		e.say("The spell releases its latent energy back to you as it unravels.")
	}
	return true
}
