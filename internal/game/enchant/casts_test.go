package enchant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/crawl/internal/game/dice"
	mockdice "github.com/cory-johannsen/crawl/internal/game/dice/mock"
	"github.com/cory-johannsen/crawl/internal/game/duration"
	"github.com/cory-johannsen/crawl/internal/game/enchant"
	mockenchant "github.com/cory-johannsen/crawl/internal/game/enchant/mock"
	"github.com/cory-johannsen/crawl/internal/game/message"
	mockmessage "github.com/cory-johannsen/crawl/internal/game/message/mock"
	"github.com/cory-johannsen/crawl/internal/game/player"
	"github.com/cory-johannsen/crawl/internal/game/ruleset"
	"github.com/cory-johannsen/crawl/internal/game/spell"
)

func TestHaste_NewAndCheibriadosGuilt(t *testing.T) {
	p := adept()
	p.God = player.Cheibriados
	p.Piety = 50

	f := newFixture(t, nil, nil, 4)
	f.engine.Haste(p, 10)

	assert.Equal(t, 440, p.Durations.Get(duration.Haste))
	assert.Equal(t, 40, p.Piety)
	assert.Equal(t, []string{"You feel yourself speed up.", "You feel a little guilty."}, f.log.Texts())
}

func TestHaste_Capped(t *testing.T) {
	p := adept()
	p.Durations.Set(duration.Haste, 790)
	f := newFixture(t, nil, nil, 99)
	f.engine.Haste(p, 100)
	assert.Equal(t, 800, p.Durations.Get(duration.Haste))
}

func TestLevitate_Messages(t *testing.T) {
	p := adept()
	f := newFixture(t, nil, nil)
	f.engine.Levitate(p, 0)
	f.engine.Levitate(p, 0)
	assert.Equal(t, 500, p.Durations.Get(duration.Levitation))
	assert.Equal(t, []string{"You gently float upwards from the floor.", "You feel more buoyant."}, f.log.Texts())
}

func TestInvisibility_Messages(t *testing.T) {
	p := adept()
	f := newFixture(t, nil, nil)
	f.engine.Invisibility(p, 0)
	f.engine.Invisibility(p, 0)
	assert.Equal(t, []string{"You fade into invisibility!", "You fade further into invisibility."}, f.log.Texts())
}

func TestIceArmour_Refusals(t *testing.T) {
	cases := []struct {
		name  string
		setup func(p *player.State)
		msg   string
	}{
		{"heavy armour", func(p *player.State) { p.HeavyArmour = true }, "You are wearing too much armour."},
		{"stoneskin", func(p *player.State) { p.Durations.Set(duration.Stoneskin, 10) }, "The spell conflicts with another spell still in effect."},
		{"stonemail", func(p *player.State) { p.Durations.Set(duration.Stonemail, 10) }, "The spell conflicts with another spell still in effect."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := adept()
			tc.setup(p)
			f := newFixture(t, nil, nil)
			f.engine.IceArmour(p, 50, false)
			assert.Equal(t, []string{tc.msg}, f.log.Texts())
			assert.False(t, p.Durations.IsActive(duration.IcyArmour))

			f.log.Reset()
			f.engine.IceArmour(p, 50, true)
			assert.Empty(t, f.log.Texts(), "refusals are silent while extending")
		})
	}
}

func TestIceArmour_Casts(t *testing.T) {
	p := adept()
	f := newFixture(t, nil, nil, 5, 6)
	f.engine.IceArmour(p, 20, false)
	assert.Equal(t, 310, p.Durations.Get(duration.IcyArmour))
	assert.True(t, p.RedrawArmourClass)
	assert.Equal(t, []string{"A film of ice covers your body!"}, f.log.Texts())

	p.RedrawArmourClass = false
	f.engine.IceArmour(p, 0, true)
	assert.Equal(t, 500, p.Durations.Get(duration.IcyArmour), "capped at 50 turns")
	assert.False(t, p.RedrawArmourClass)
	assert.Equal(t, "Your icy armour thickens.", f.log.Texts()[1])
}

func TestIceArmour_IceBeast(t *testing.T) {
	p := adept()
	p.Form = player.FormIceBeast
	f := newFixture(t, nil, nil)
	f.engine.IceArmour(p, 0, false)
	assert.Equal(t, []string{"Your icy body feels more resilient."}, f.log.Texts())
}

func TestRemoveIceArmour(t *testing.T) {
	p := adept()
	p.Durations.Set(duration.IcyArmour, 100)
	f := newFixture(t, nil, nil)
	f.engine.RemoveIceArmour(p)
	assert.False(t, p.Durations.IsActive(duration.IcyArmour))
	assert.True(t, p.RedrawArmourClass)
	assert.Equal(t, []message.Message{{Text: "Your icy armour melts away.", Channel: message.Duration}}, f.log.Messages())
}

func TestMissileProt_RollsTwoDice(t *testing.T) {
	p := adept()
	f := newFixture(t, nil, nil, 2, 3)
	f.engine.MissileProt(p, 10)
	// 8 + (2+1) + (3+1)
	assert.Equal(t, 150, p.Durations.Get(duration.RepelMissiles))
	assert.Equal(t, []string{"You feel protected from missiles."}, f.log.Texts())
}

func TestDeflection(t *testing.T) {
	p := adept()
	f := newFixture(t, nil, nil, 5)
	f.engine.Deflection(p, 10)
	assert.Equal(t, 200, p.Durations.Get(duration.DeflectMissiles))
	assert.Equal(t, []string{"You feel very safe from missiles."}, f.log.Texts())
}

func TestRegen_DivineRoundTrip(t *testing.T) {
	p := adept()
	f := newFixture(t, nil, nil, 0, 0)
	f.engine.CastRegen(p, 0, true)
	// 5 + 1d1 + 1d1
	assert.Equal(t, 70, p.Durations.Get(duration.Regeneration))
	assert.True(t, p.DivineRegeneration)

	f.engine.RemoveRegen(p, true)
	assert.False(t, p.Durations.IsActive(duration.Regeneration))
	assert.False(t, p.DivineRegeneration)
	assert.Equal(t, []string{
		"Your skin crawls.",
		"You feel resistant to magic.",
		"Your skin stops crawling.",
		"You feel less resistant to magic.",
	}, f.log.Texts())
}

func TestSwiftness(t *testing.T) {
	t.Run("in water", func(t *testing.T) {
		p := adept()
		p.InWater = true
		f := newFixture(t, nil, nil)
		f.engine.CastSwiftness(p, 50)
		assert.Equal(t, []string{"The water foams!"}, f.log.Texts())
		assert.False(t, p.Durations.IsActive(duration.Swiftness))
	})
	t.Run("already fast", func(t *testing.T) {
		p := adept()
		p.MovementSpeed = 6
		f := newFixture(t, nil, nil)
		f.engine.CastSwiftness(p, 50)
		assert.Equal(t, []string{"You can't move any more quickly."}, f.log.Texts())
	})
	t.Run("fast but extending", func(t *testing.T) {
		p := adept()
		p.MovementSpeed = 6
		p.Durations.Set(duration.Swiftness, 10)
		f := newFixture(t, nil, nil, 0)
		f.engine.CastSwiftness(p, 50)
		assert.Equal(t, 210, p.Durations.Get(duration.Swiftness))
		assert.Equal(t, []string{"You feel quick."}, f.log.Texts())
	})
}

func TestSwiftness_ReportsHastyConduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	effects := mockenchant.NewMockEffects(ctrl)
	p := adept()
	effects.EXPECT().GodConduct(p, enchant.ConductHasty, 8).Times(1)

	f := newFixture(t, nil, effects)
	f.engine.CastSwiftness(p, 0)
}

func TestCastFly_SetsLevitationToo(t *testing.T) {
	p := adept()
	f := newFixture(t, nil, nil, 1, 2)
	f.engine.CastFly(p, 10)
	assert.Equal(t, 280, p.Durations.Get(duration.ControlledFlight))
	assert.Equal(t, 280, p.Durations.Get(duration.Levitation))
	assert.Equal(t, []string{"You fly up into the air."}, f.log.Texts())
}

func TestSimpleProtections(t *testing.T) {
	cases := []struct {
		name string
		cast func(f fixture, p *player.State)
		kind duration.Kind
		want int
		msg  string
	}{
		{"insulation", func(f fixture, p *player.State) { f.engine.CastInsulation(p, 0) }, duration.Insulation, 100, "You feel insulated."},
		{"resist poison", func(f fixture, p *player.State) { f.engine.CastResistPoison(p, 0) }, duration.ResistPoison, 100, "You feel resistant to poison."},
		{"teleport control", func(f fixture, p *player.State) { f.engine.CastTeleportControl(p, 0) }, duration.ControlTeleport, 100, "You feel in control."},
		{"death channel", func(f fixture, p *player.State) { f.engine.CastDeathChannel(p, 0) }, duration.DeathChannel, 300, "Malign forces permeate your being, awaiting release."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := adept()
			f := newFixture(t, nil, nil)
			tc.cast(f, p)
			assert.Equal(t, tc.want, p.Durations.Get(tc.kind))
			assert.Equal(t, []string{tc.msg}, f.log.Texts())
		})
	}
}

func TestStoneskin(t *testing.T) {
	t.Run("undead flesh", func(t *testing.T) {
		p := adept()
		p.Undead = ruleset.Undead
		p.Form = player.FormDragon
		f := newFixture(t, nil, nil)
		f.engine.CastStoneskin(p, 50)
		assert.Equal(t, []string{"This spell does not affect your undead flesh."}, f.log.Texts())
		assert.False(t, p.Durations.IsActive(duration.Stoneskin))
	})
	t.Run("semi-undead may harden", func(t *testing.T) {
		p := adept()
		p.Undead = ruleset.SemiUndead
		f := newFixture(t, nil, nil, 0, 0)
		f.engine.CastStoneskin(p, 50)
		assert.Equal(t, []string{"Your skin hardens."}, f.log.Texts())
		assert.Equal(t, 100, p.Durations.Get(duration.Stoneskin))
	})
	t.Run("wrong form", func(t *testing.T) {
		p := adept()
		p.Form = player.FormDragon
		f := newFixture(t, nil, nil)
		f.engine.CastStoneskin(p, 50)
		assert.Equal(t, []string{"This spell does not affect your current form."}, f.log.Texts())
		assert.False(t, p.Durations.IsActive(duration.Stoneskin))
	})
	t.Run("conflicts with icy armour", func(t *testing.T) {
		p := adept()
		p.Durations.Set(duration.IcyArmour, 10)
		f := newFixture(t, nil, nil)
		f.engine.CastStoneskin(p, 50)
		assert.Equal(t, []string{"This spell conflicts with another spell still in effect."}, f.log.Texts())
	})
	t.Run("statue", func(t *testing.T) {
		p := adept()
		p.Form = player.FormStatue
		f := newFixture(t, nil, nil)
		f.engine.CastStoneskin(p, 0)
		assert.Equal(t, []string{"Your stone body feels more resilient."}, f.log.Texts())
		assert.True(t, p.RedrawArmourClass)
	})
	t.Run("new then harder", func(t *testing.T) {
		p := adept()
		f := newFixture(t, nil, nil, 40, 40)
		f.engine.CastStoneskin(p, 50)
		f.engine.CastStoneskin(p, 0)
		assert.Equal(t, 500, p.Durations.Get(duration.Stoneskin))
		assert.Equal(t, []string{"Your skin hardens.", "Your skin feels harder."}, f.log.Texts())
	})
}

func TestPhaseShift(t *testing.T) {
	p := adept()
	f := newFixture(t, nil, nil)
	f.engine.CastPhaseShift(p, 0)
	f.engine.CastPhaseShift(p, 0)
	assert.Equal(t, 100, p.Durations.Get(duration.PhaseShift))
	assert.True(t, p.RedrawEvasion)
	assert.Equal(t, []string{
		"You feel the strange sensation of being on two planes at once.",
		"You feel the material plane grow further away.",
	}, f.log.Texts())
}

func TestSeeInvisible(t *testing.T) {
	p := adept()
	f := newFixture(t, nil, nil, 3)
	f.engine.CastSeeInvisible(p, 10)
	// 10 + random2(7)
	assert.Equal(t, 130, p.Durations.Get(duration.SeeInvisible))
	f.engine.CastSeeInvisible(p, 0)
	assert.Equal(t, []string{
		"Your vision seems to sharpen.",
		"You feel as though your vision will be sharpened longer.",
	}, f.log.Texts())
}

func TestSilence_FirstCastAnnounces(t *testing.T) {
	ctrl := gomock.NewController(t)
	area := mockenchant.NewMockAreaCache(ctrl)
	effects := mockenchant.NewMockEffects(ctrl)
	area.EXPECT().InvalidateAreaGrid(true).Times(2)
	effects.EXPECT().Hint(enchant.HintYouSilence).Times(2)

	p := adept()
	f := newFixture(t, area, effects)
	f.engine.CastSilence(p, 0)
	f.engine.CastSilence(p, 0)
	assert.True(t, p.WasSilenced)
	assert.Equal(t, []string{"A profound silence engulfs you."}, f.log.Texts())
}

func TestLiquefaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	area := mockenchant.NewMockAreaCache(ctrl)
	area.EXPECT().InvalidateAreaGrid(true).Times(1)

	p := adept()
	f := newFixture(t, area, nil)
	f.engine.CastLiquefaction(p, 0)
	assert.Equal(t, 100, p.Durations.Get(duration.Liquefying))
	assert.Equal(t, []string{"The ground around you becomes liquefied!"}, f.log.Texts())
}

func TestCondensationShield(t *testing.T) {
	t.Run("fizzles with a shield", func(t *testing.T) {
		p := adept()
		p.ShieldWorn = true
		f := newFixture(t, nil, nil)
		f.engine.CastCondensationShield(p, 50)
		assert.Equal(t, []string{"The spell fizzles."}, f.log.Texts())
	})
	t.Run("fizzles with ring of flames", func(t *testing.T) {
		p := adept()
		p.Durations.Set(duration.FireShield, 10)
		f := newFixture(t, nil, nil)
		f.engine.CastCondensationShield(p, 50)
		assert.Equal(t, []string{"The spell fizzles."}, f.log.Texts())
	})
	t.Run("forms then crackles", func(t *testing.T) {
		p := adept()
		f := newFixture(t, nil, nil)
		f.engine.CastCondensationShield(p, 0)
		f.engine.CastCondensationShield(p, 0)
		assert.Equal(t, 300, p.Durations.Get(duration.CondensationShield))
		assert.True(t, p.RedrawArmourClass)
		assert.Equal(t, []string{
			"A crackling disc of dense vapour forms in the air!",
			"The disc of vapour around you crackles some more.",
		}, f.log.Texts())
	})
}

func TestRingOfFlamesExtension(t *testing.T) {
	p := adept(spell.RingOfFlames)
	p.Durations.Set(duration.FireShield, 100)

	f := newFixture(t, nil, nil, 0, 0, 3)
	f.engine.Extend(p, 100)

	// random2(5)
	assert.Equal(t, 130, p.Durations.Get(duration.FireShield))
	assert.Equal(t, []string{"Your ring of flames roars with new vigour!"}, f.log.Texts())
}

func TestAllowedDeathsDoorHP(t *testing.T) {
	p := adept()
	p.Skills["necromancy"] = 20
	assert.Equal(t, 10, enchant.AllowedDeathsDoorHP(p))

	p.God = player.Kikubaaqudgha
	p.Piety = 150
	assert.Equal(t, 20, enchant.AllowedDeathsDoorHP(p))

	p.UnderPenance = true
	assert.Equal(t, 10, enchant.AllowedDeathsDoorHP(p))

	assert.Equal(t, 1, enchant.AllowedDeathsDoorHP(player.New("x", "human", "fighter", 10, 0)))
}

func TestDeathsDoor_Refusals(t *testing.T) {
	t.Run("undead", func(t *testing.T) {
		p := adept()
		p.Undead = ruleset.Undead
		f := newFixture(t, nil, nil)
		assert.False(t, f.engine.CastDeathsDoor(p, 50))
		assert.Equal(t, []string{"You're already dead!"}, f.log.Texts())
	})
	t.Run("exhausted", func(t *testing.T) {
		p := adept()
		p.Durations.Set(duration.Exhausted, 10)
		f := newFixture(t, nil, nil)
		assert.False(t, f.engine.CastDeathsDoor(p, 50))
		assert.Equal(t, []string{"You are too exhausted to enter Death's door!"}, f.log.Texts())
	})
}

func TestDeathsDoor_Enters(t *testing.T) {
	p := adept()
	p.Skills["necromancy"] = 10

	// random2avg(13, 3) draws 6, 6, 6; random2(50) draws 20
	f := newFixture(t, nil, nil, 6, 6, 6, 20)
	require.True(t, f.engine.CastDeathsDoor(p, 50))

	assert.Equal(t, 180, p.Durations.Get(duration.DeathsDoor))
	assert.Equal(t, 5, p.HP)
	assert.Equal(t, []message.Message{
		{Text: "You feel invincible!", Channel: message.Plain},
		{Text: "You seem to hear sand running through an hourglass...", Channel: message.Sound},
	}, f.log.Messages())
}

func TestDeathsDoor_LongRollIsShortened(t *testing.T) {
	p := adept()
	f := newFixture(t, nil, nil, 12, 13, 13, 199, 4)
	require.True(t, f.engine.CastDeathsDoor(p, 200))
	assert.Equal(t, 270, p.Durations.Get(duration.DeathsDoor))
}

func TestSelectiveAmnesia(t *testing.T) {
	t.Run("no spells", func(t *testing.T) {
		p := adept()
		f := newFixture(t, nil, nil)
		assert.False(t, f.engine.CastSelectiveAmnesia(p, spell.Haste))
		assert.Equal(t, []string{"You don't know any spells."}, f.log.Texts())
	})
	t.Run("unknown spell", func(t *testing.T) {
		p := adept(spell.Slow)
		f := newFixture(t, nil, nil)
		assert.False(t, f.engine.CastSelectiveAmnesia(p, spell.Haste))
		assert.Equal(t, []string{"You don't know that spell."}, f.log.Texts())
	})
	t.Run("returns mana", func(t *testing.T) {
		p := adept(spell.Haste, spell.Slow)
		p.MP = 0
		f := newFixture(t, nil, nil)
		assert.True(t, f.engine.CastSelectiveAmnesia(p, spell.Haste))
		assert.False(t, p.Knows(spell.Haste))
		assert.True(t, p.Knows(spell.Slow))
		assert.Equal(t, 6, p.MP)
		assert.Equal(t, []string{"The spell releases its latent energy back to you as it unravels."}, f.log.Texts())
	})
}

func TestCasts_EmitThroughSink(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mockmessage.NewMockSink(ctrl)
	sink.EXPECT().Emit("You feel insulated.", message.Plain).Times(1)

	logger := zap.NewNop()
	roller := dice.NewRoller(mockdice.NewScriptedSource(), logger)
	e := enchant.NewEngine(loadSpells(t), roller, sink,
		enchant.LoggingAreaCache{Logger: logger}, enchant.NewStateEffects(sink, logger), logger)
	e.CastInsulation(adept(), 0)
}

func TestStateEffects(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := message.NewLog(0, zap.NewNop())
	effects := enchant.NewStateEffects(log, zap.New(core))

	p := adept()
	effects.Contaminate(p, 0, false)
	assert.Zero(t, p.Contamination)

	effects.Contaminate(p, 2, true)
	assert.Equal(t, 2, p.Contamination)
	assert.Empty(t, log.Texts())

	effects.Contaminate(p, 1, false)
	assert.Equal(t, 3, p.Contamination)
	assert.Equal(t, []string{"Your body shudders with the violent release of wild energies!"}, log.Texts())
	assert.Equal(t, 2, logs.FilterMessage("magical contamination").Len())

	log.Reset()
	effects.Excommunicate(p)
	assert.Empty(t, log.Texts(), "no god, nothing to lose")

	p.God = player.Cheibriados
	p.Piety = 5
	effects.GodConduct(p, enchant.ConductNecromancy, 10)
	assert.Equal(t, 5, p.Piety)
	effects.GodConduct(p, enchant.ConductHasty, 10)
	assert.Zero(t, p.Piety)

	effects.Excommunicate(p)
	assert.Equal(t, player.NoGod, p.God)
	assert.Equal(t, []string{"You feel a little guilty.", "You have lost your religion!"}, log.Texts())

	assert.Panics(t, func() { enchant.NewStateEffects(nil, zap.NewNop()) })
}
