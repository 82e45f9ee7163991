// Package main provides the character-creation tool: it prints the species ×
// job verdict grid, rates starting weapons, and creates characters.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/cory-johannsen/crawl/internal/config"
	"github.com/cory-johannsen/crawl/internal/game/character"
	"github.com/cory-johannsen/crawl/internal/game/newgame"
	"github.com/cory-johannsen/crawl/internal/game/player"
	"github.com/cory-johannsen/crawl/internal/game/ruleset"
	"github.com/cory-johannsen/crawl/internal/game/weapon"
	"github.com/cory-johannsen/crawl/internal/observability"
	"github.com/cory-johannsen/crawl/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (defaults when empty)")
	speciesFirst := flag.Bool("species-first", true, "rate jobs for each species rather than species for each job")
	speciesID := flag.String("species", "", "species ID; with -job, rate starting weapons")
	jobID := flag.String("job", "", "job ID; with -species, rate starting weapons")
	create := flag.String("create", "", "create a character with this name from -species, -job, -weapon and -god")
	weaponName := flag.String("weapon", "", "starting weapon for -create")
	god := flag.String("god", "", "starting deity for -create")
	save := flag.Bool("save", false, "persist the created character to the database")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	logger, err := observability.NewLogger(cfg.Logging, "chargen")
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	reg, err := ruleset.Load(cfg.Content.SpeciesDir, cfg.Content.JobsDir)
	if err != nil {
		logger.Fatal("loading ruleset", zap.Error(err))
	}
	logger.Info("ruleset loaded",
		zap.Int("species", len(reg.AllSpecies())),
		zap.Int("jobs", len(reg.AllJobs())),
	)
	res := newgame.NewResolver(reg)

	switch {
	case *create != "":
		a := newgame.Archetype{Species: *speciesID, Job: *jobID, Deity: player.God(*god)}
		if *weaponName != "" {
			w, err := weapon.ParseType(*weaponName)
			if err != nil {
				logger.Fatal("parsing weapon", zap.Error(err))
			}
			a = a.WithWeapon(w)
		}
		c, err := character.NewBuilder(reg).Build(*create, a)
		if err != nil {
			logger.Fatal("building character", zap.Error(err))
		}
		fmt.Printf("%s the %s %s (%s, %s) id=%s hp=%d mp=%d\n",
			c.Name, c.Species, c.Job, c.Verdict, c.Verdict.Colour(), c.ID, c.MaxHP, c.MaxMP)
		if *save {
			if err := saveCharacter(cfg.Database, c, logger); err != nil {
				logger.Fatal("saving character", zap.Error(err))
			}
		}
	case *speciesID != "" && *jobID != "":
		printWeapons(res, reg, newgame.Archetype{Species: *speciesID, Job: *jobID})
	default:
		printMatrix(res.Matrix(*speciesFirst))
	}
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.LoadFromViper(config.Defaults())
	}
	return config.Load(path)
}

func printMatrix(rows []newgame.Row) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 2, 1, ' ', 0)
	defer tw.Flush()
	for _, row := range rows {
		cells := make([]string, len(row.Cells))
		for i, c := range row.Cells {
			cells[i] = fmt.Sprintf("%s:%s", c.ID, c.Verdict.Colour())
		}
		fmt.Fprintf(tw, "%s\t%s\n", row.ID, strings.Join(cells, " "))
	}
}

func printWeapons(res *newgame.Resolver, reg *ruleset.Registry, a newgame.Archetype) {
	s, ok := reg.Species(a.Species)
	if !ok {
		log.Fatalf("unknown species %q", a.Species)
	}
	if _, ok := reg.Job(a.Job); !ok {
		log.Fatalf("unknown job %q", a.Job)
	}
	if s.IsColourVariant() {
		log.Fatalf("%q is a colour variant; choose %s's base species", s.ID, s.Family)
	}
	fmt.Printf("%s %s: %s\n", a.Species, a.Job, res.JobAllowed(a.Species, a.Job))
	tw := tabwriter.NewWriter(os.Stdout, 0, 2, 1, ' ', 0)
	defer tw.Flush()
	for _, c := range res.WeaponChoices(a) {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", c.ID, c.Verdict, c.Verdict.Colour())
	}
}

func saveCharacter(dbCfg config.DatabaseConfig, c *character.Character, logger *zap.Logger) error {
	ctx := context.Background()
	store, err := postgres.Open(ctx, dbCfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.CheckSchema(ctx); err != nil {
		return err
	}

	if _, err := store.Characters.Create(ctx, c); err != nil {
		return err
	}
	if err := store.States.Save(ctx, c.ID, c.NewPlayer()); err != nil {
		return err
	}
	logger.Info("character saved", zap.String("id", c.ID.String()), zap.String("name", c.Name))
	return nil
}
