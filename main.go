package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"checkers/experiments"
	"checkers/game"
	"checkers/meta"
	"checkers/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	games := flag.Int("games", meta.GAMES_PER_MATCHUP, "Number of games per difficulty match-up")
	depth := flag.Int("depth", searcher.DefaultDepth, "Minimax search depth of the hard opponent")
	seed := flag.Uint64("seed", 1, "Seed of the random opponent")
	maxTurns := flag.Int("max-turns", meta.MAX_TURNS, "Turns before a game is called a draw")
	forced := flag.Bool("forced-capture", false, "Make captures mandatory")
	out := flag.String("out", "experiments", "Folder the results are written under")
	debug := flag.Bool("debug", false, "Log every move")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	rules := game.StandardRules()
	if *forced {
		rules = game.ForcedCaptureRules()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dir, err := experiments.RunDifficultyExperiment(ctx,
		experiments.WithGames(*games),
		experiments.WithDepth(*depth),
		experiments.WithSeed(*seed),
		experiments.WithMaxTurns(*maxTurns),
		experiments.WithRules(rules),
		experiments.WithOutputDir(*out),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	log.Info().Msgf("results written to %s", dir)
}
