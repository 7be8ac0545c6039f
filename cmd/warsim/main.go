package main

import (
	"flag"
	"fmt"
	"os"

	"warsim/internal/combat"
	"warsim/internal/config"
	"warsim/internal/logging"
	"warsim/internal/report"
	"warsim/internal/util"
)

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		config.Exitf("warsim: %v", err)
	}

	flag.Int64Var(&settings.Seed, "seed", settings.Seed, "seed (0 = random)")
	flag.StringVar(&settings.Lang, "lang", settings.Lang, "report language (en, ru)")
	flag.StringVar(&settings.LogLevel, "log-level", settings.LogLevel, "diagnostic log level")
	flag.StringVar(&settings.Out, "out", settings.Out, "write the battle record as JSON to this file")
	flag.IntVar(&settings.MaxRounds, "max-rounds", settings.MaxRounds, "round limit per pairing (0 = none)")
	flag.Parse()

	if err := run(settings); err != nil {
		config.Exitf("warsim: %v", err)
	}
}

func run(s config.Settings) error {
	log, err := logging.New(s.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	roster, err := config.DefaultRoster()
	if err != nil {
		return err
	}
	factory, err := combat.NewSquadFactory(roster)
	if err != nil {
		return err
	}
	console, err := report.NewConsole(os.Stdout, s.Lang)
	if err != nil {
		return err
	}

	seed := s.Seed
	if seed == 0 {
		if seed, err = util.NewSeed(); err != nil {
			return err
		}
	}

	env := &combat.Env{Rng: util.New(seed), Log: log, MaxRounds: s.MaxRounds}
	res, err := combat.Run(env, factory, console.Handle, s.Out != "")
	if err != nil {
		return err
	}
	if err := console.Err(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	res.Seed = seed

	if s.Out != "" {
		b, err := combat.MarshalPretty(res)
		if err != nil {
			return fmt.Errorf("encode battle record: %w", err)
		}
		if err := os.WriteFile(s.Out, b, 0644); err != nil {
			return fmt.Errorf("write battle record: %w", err)
		}
	}
	return nil
}
