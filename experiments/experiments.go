package experiments

import (
	"context"
	"fmt"

	"checkers/engine"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/meta"
	"checkers/player"
	"checkers/searcher"

	"github.com/rs/zerolog/log"
)

type config struct {
	root     string
	games    int
	depth    int
	seed     uint64
	maxTurns int
	rules    game.Rules
}

type Option func(c *config)

// WithOutputDir sets the folder the experiment results are written under.
func WithOutputDir(root string) Option {
	return func(c *config) {
		c.root = root
	}
}

// WithGames sets the number of games per match-up.
func WithGames(games int) Option {
	return func(c *config) {
		c.games = games
	}
}

// WithDepth sets the minimax depth of the hard agent.
func WithDepth(depth int) Option {
	return func(c *config) {
		c.depth = depth
	}
}

// WithSeed makes the random agent reproducible. Game i of the experiment
// uses seed+i.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

func WithMaxTurns(turns int) Option {
	return func(c *config) {
		c.maxTurns = turns
	}
}

func WithRules(rules game.Rules) Option {
	return func(c *config) {
		c.rules = rules
	}
}

// RunDifficultyExperiment plays every difficulty against every other one,
// alternating colors between games, and writes the agent configs, game
// records and move records as CSV. It returns the folder written to.
func RunDifficultyExperiment(ctx context.Context, options ...Option) (string, error) {
	c := config{
		root:     "experiments",
		games:    meta.GAMES_PER_MATCHUP,
		depth:    searcher.DefaultDepth,
		seed:     1,
		maxTurns: meta.MAX_TURNS,
		rules:    game.StandardRules(),
	}
	for _, option := range options {
		option(&c)
	}

	configs := []metrics.AgentConfig{
		{ID: 1, Difficulty: searcher.Easy.String()},
		{ID: 2, Difficulty: searcher.Medium.String()},
		{ID: 3, Difficulty: searcher.Hard.String(), Depth: c.depth},
	}
	matchUps := [][]metrics.AgentConfig{
		{configs[0], configs[1]},
		{configs[0], configs[2]},
		{configs[1], configs[2]},
	}

	return runExperiment(ctx, "difficulty", c, configs, matchUps)
}

func runExperiment(ctx context.Context, name string, c config, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between %s and %s...", mi+1, len(matchUps), matchup[0].Difficulty, matchup[1].Difficulty)

		for i := 0; i < c.games; i++ {
			// Alternate which agent plays White, which always starts
			white, black := matchup[0], matchup[1]
			if i%2 == 1 {
				white, black = black, white
			}

			winner, gameMetric, moveMetrics, err := runGame(ctx, c, white, black, c.seed+uint64(count))
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				White:      white.ID,
				Black:      black.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(c.root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err = writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err = writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err = writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored results in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame plays a single game without thinking delays.
func runGame(ctx context.Context, c config, white, black metrics.AgentConfig, seed uint64) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	e := engine.LocalEngine([]*player.Opponent{
		createOpponent(game.White, white, seed),
		createOpponent(game.Black, black, seed+1),
	}, game.WithRules(c.rules))
	e.MaxTurns = c.maxTurns

	return e.Run(ctx)
}

func createOpponent(color game.Color, config metrics.AgentConfig, seed uint64) *player.Opponent {
	difficulty, err := searcher.ParseDifficulty(config.Difficulty)
	if err != nil {
		panic(err)
	}

	options := []searcher.Option{searcher.WithSeed(seed)}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}

	return player.NewOpponent(color, difficulty,
		player.WithoutDelay(),
		player.WithMetrics(),
		player.WithSearchOptions(options...),
	)
}
