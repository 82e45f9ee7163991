// Package main runs one duration extension pass against a player record built
// from flags or loaded from the database, and prints the outcome.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/crawl/internal/config"
	"github.com/cory-johannsen/crawl/internal/game/dice"
	"github.com/cory-johannsen/crawl/internal/game/duration"
	"github.com/cory-johannsen/crawl/internal/game/enchant"
	"github.com/cory-johannsen/crawl/internal/game/message"
	"github.com/cory-johannsen/crawl/internal/game/player"
	"github.com/cory-johannsen/crawl/internal/game/spell"
	"github.com/cory-johannsen/crawl/internal/game/weapon"
	"github.com/cory-johannsen/crawl/internal/observability"
	"github.com/cory-johannsen/crawl/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (defaults when empty)")
	power := flag.Int("power", -1, "spell power (-1 = extension.default_power)")
	durations := flag.String("durations", "", "active durations as kind=turns pairs, e.g. haste=10,invisibility=5")
	spells := flag.String("spells", "", "known spells, comma separated")
	skills := flag.String("skills", "", "skills as name=level pairs, e.g. charms=12,spellcasting=8")
	intelligence := flag.Int("int", 10, "intelligence")
	form := flag.String("form", "none", "current transformation")
	god := flag.String("god", "", "worshipped god")
	wielded := flag.String("weapon", "", "wielded weapon as brand[:damage], e.g. vorpal:crushing (empty = unarmed)")
	seed := flag.Uint64("seed", 0, "dice seed (0 = cryptographic randomness)")
	charID := flag.String("character", "", "load, extend and save the stored state of this character ID")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	logger, err := observability.NewLogger(cfg.Logging, "extend")
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	spellReg, err := spell.LoadDirectory(cfg.Content.SpellsDir)
	if err != nil {
		logger.Fatal("loading spells", zap.Error(err))
	}

	pow := *power
	if pow < 0 {
		pow = cfg.Extension.DefaultPower
	}
	pow = min(pow, cfg.Extension.MaxPower)

	var src dice.Source = dice.NewCryptoSource()
	if *seed != 0 {
		src = dice.NewSeededSource(*seed)
	}
	msgs := message.NewLog(0, logger)
	engine := enchant.NewEngine(spellReg, dice.NewRoller(src, logger), msgs,
		enchant.LoggingAreaCache{Logger: logger}, enchant.NewStateEffects(msgs, logger), logger)

	ctx := context.Background()
	var (
		p     *player.State
		id    uuid.UUID
		store *postgres.Store
	)
	if *charID != "" {
		id, err = uuid.Parse(*charID)
		if err != nil {
			logger.Fatal("parsing character ID", zap.Error(err))
		}
		store, err = postgres.Open(ctx, cfg.Database, logger)
		if err != nil {
			logger.Fatal("connecting to database", zap.Error(err))
		}
		defer store.Close()
		if err := store.CheckSchema(ctx); err != nil {
			logger.Fatal("checking database schema", zap.Error(err))
		}
		if p, err = store.States.Load(ctx, id); err != nil {
			logger.Fatal("loading player state", zap.Error(err))
		}
	} else {
		p, err = playerFromFlags(*durations, *spells, *skills, *intelligence, *form, *god, *wielded)
		if err != nil {
			logger.Fatal("building player", zap.Error(err))
		}
	}

	report := engine.Extend(p, pow)

	for _, m := range msgs.Messages() {
		fmt.Println(m.Text)
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 2, 1, ' ', 0)
	for _, e := range report.Entries {
		if e.Outcome == enchant.Inactive {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%d -> %d\n", e.Kind, e.Outcome, e.Before, e.After)
	}
	_ = tw.Flush()
	fmt.Printf("contamination: %d\n", report.Contamination)

	if store != nil {
		if err := store.States.Save(ctx, id, p); err != nil {
			logger.Fatal("saving player state", zap.Error(err))
		}
	}
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.LoadFromViper(config.Defaults())
	}
	return config.Load(path)
}

func playerFromFlags(durations, spells, skills string, intelligence int, form, god, wielded string) (*player.State, error) {
	p := player.New("Extender", "human", "wizard", 20, 20)
	p.Intelligence = intelligence
	p.God = player.God(god)

	w, err := parseWeapon(wielded)
	if err != nil {
		return nil, fmt.Errorf("weapon: %w", err)
	}
	p.Weapon = w

	f, err := player.ParseForm(form)
	if err != nil {
		return nil, err
	}
	p.Form = f

	durs, err := parsePairs(durations)
	if err != nil {
		return nil, fmt.Errorf("durations: %w", err)
	}
	for name, turns := range durs {
		k, err := duration.ParseKind(name)
		if err != nil {
			return nil, err
		}
		p.Durations.Set(k, turns*duration.BaselineDelay)
	}

	levels, err := parsePairs(skills)
	if err != nil {
		return nil, fmt.Errorf("skills: %w", err)
	}
	for name, level := range levels {
		p.Skills[name] = level
	}

	for _, id := range splitList(spells) {
		if !p.Learn(spell.ID(id)) {
			return nil, fmt.Errorf("cannot learn %q", id)
		}
	}
	return p, nil
}

// parseWeapon reads brand[:damage]. An empty string means unarmed.
func parseWeapon(s string) (*weapon.Weapon, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	brandName, damageName, _ := strings.Cut(s, ":")
	b, err := weapon.ParseBrand(brandName)
	if err != nil {
		return nil, err
	}
	w := &weapon.Weapon{Name: s, Brand: b}
	if damageName != "" {
		if w.Damage, err = weapon.ParseDamageType(damageName); err != nil {
			return nil, err
		}
	}
	return w, nil
}

func parsePairs(s string) (map[string]int, error) {
	out := make(map[string]int)
	for _, item := range splitList(s) {
		name, val, ok := strings.Cut(item, "=")
		if !ok {
			return nil, fmt.Errorf("%q is not name=value", item)
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", item, err)
		}
		out[strings.TrimSpace(name)] = n
	}
	return out, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
