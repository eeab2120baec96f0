package main

import (
	"flag"
	"os"
	"time"

	"hearts/experiments"
	"hearts/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML experiment configuration")
	games := flag.Int("games", 0, "Number of games to play (overrides the configuration)")
	players := flag.Int("players", 0, "Number of players, 3 to 7 (overrides the configuration)")
	seed := flag.Uint64("seed", 0, "Seed of the first game (overrides the configuration)")
	goroutines := flag.Int("goroutines", 0, "Games played concurrently (overrides the configuration)")
	output := flag.String("out", "", "Directory for the experiment records (overrides the configuration)")
	debug := flag.Bool("debug", false, "Log every move")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	config := meta.Default()
	if *configPath != "" {
		var err error
		config, err = meta.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load configuration")
		}
	}
	if *games > 0 {
		config.Experiment.Games = *games
	}
	if *players > 0 {
		config.Game.Players = *players
		config.Experiment.Agents = fitAgents(config, *players)
	}
	if *seed > 0 {
		config.Game.Seed = *seed
	}
	if *goroutines > 0 {
		config.Experiment.Goroutines = *goroutines
	}
	if *output != "" {
		config.Experiment.OutputDir = *output
	}

	dir, err := experiments.Run(config)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	log.Info().Msgf("records written to %s", dir)
}
