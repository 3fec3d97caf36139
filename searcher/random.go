package searcher

import (
	"sync"
	"time"

	"checkers/experiments/metrics"
	"checkers/game"

	"golang.org/x/exp/rand"
)

// Random picks uniformly among all legal moves, captures included.
type Random struct {
	mu      sync.Mutex
	rng     *rand.Rand
	metrics metrics.Collector
}

func NewRandom(options ...Option) *Random {
	c := newConfig(options)
	seed := uint64(time.Now().UnixNano())
	if c.seeded {
		seed = c.seed
	}
	return &Random{
		rng:     rand.New(rand.NewSource(seed)),
		metrics: c.metrics,
	}
}

func (r *Random) Name() string {
	return "random"
}

func (r *Random) FindMove(g *game.Game) (game.Move, bool) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, false
	}
	for range moves {
		r.metrics.AddNode()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return moves[r.rng.Intn(len(moves))], true
}
