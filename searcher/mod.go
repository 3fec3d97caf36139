package searcher

import (
	"fmt"
	"strings"

	"checkers/experiments/metrics"
	"checkers/game"
)

// Strategy picks a move for the side to move. Implementations re-derive every
// legal move from the given game on each call and never mutate it.
type Strategy interface {
	// FindMove returns false iff the side to move has no legal move.
	FindMove(g *game.Game) (game.Move, bool)
	Name() string
}

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

var difficultyNames = map[Difficulty]string{
	Easy:   "easy",
	Medium: "medium",
	Hard:   "hard",
}

func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

func ParseDifficulty(s string) (Difficulty, error) {
	for d, name := range difficultyNames {
		if strings.EqualFold(s, name) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// New returns the strategy for a difficulty: random for easy, heuristic for
// medium and minimax for hard. It panics on an unknown difficulty.
func New(d Difficulty, options ...Option) Strategy {
	switch d {
	case Easy:
		return NewRandom(options...)
	case Medium:
		return NewHeuristic(options...)
	case Hard:
		return NewMinimax(options...)
	default:
		panic(fmt.Sprintf("unknown difficulty %d", int(d)))
	}
}

type config struct {
	seed     uint64
	seeded   bool
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

type Option func(c *config)

// WithSeed makes the random strategy reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithDepth sets the minimax search depth in plies.
func WithDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(c *config) {
		if evaluate != nil {
			c.evaluate = evaluate
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(c *config) {
		if collector != nil {
			c.metrics = collector
		}
	}
}

func newConfig(options []Option) config {
	c := config{ // Default values
		depth:    DefaultDepth,
		evaluate: game.EvaluateMaterial,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&c)
	}
	return c
}
