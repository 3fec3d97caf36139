package searcher

import (
	"math"

	"checkers/experiments/metrics"
	"checkers/game"
)

// DefaultDepth is even, so the root player is also the side to move at every
// full-depth leaf. Leaves are always scored for the root player; at odd depths
// that is the side that just moved.
const DefaultDepth = 4

// Minimax runs a fixed-depth, full-width minimax search without pruning.
// Every simulated move is played on a deep clone, so the searched game is
// never touched.
type Minimax struct {
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func NewMinimax(options ...Option) *Minimax {
	c := newConfig(options)
	return &Minimax{
		depth:    c.depth,
		evaluate: c.evaluate,
		metrics:  c.metrics,
	}
}

func (m *Minimax) Name() string {
	return "minimax"
}

func (m *Minimax) Depth() int {
	return m.depth
}

// FindMove plays the root move with the highest backed-up score, ties to the
// first move enumerated. Scores are taken from the root player's perspective.
func (m *Minimax) FindMove(g *game.Game) (game.Move, bool) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, false
	}
	root := g.CurrentPlayer()

	best := moves[0]
	bestScore := math.Inf(-1)
	for _, move := range moves {
		child := g.Clone()
		if !child.MovePiece(move.From, move.To) {
			panic("legal move rejected: " + move.String())
		}
		if score := m.search(child, m.depth-1, false, root); score > bestScore {
			best, bestScore = move, score
		}
	}
	return best, true
}

func (m *Minimax) search(g *game.Game, depth int, maximizing bool, root game.Color) float64 {
	m.metrics.AddNode()
	moves := g.LegalMoves()
	if depth <= 0 || len(moves) == 0 {
		m.metrics.AddLeaf()
		return m.evaluate(g, root)
	}

	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	for _, move := range moves {
		child := g.Clone()
		child.MovePiece(move.From, move.To)
		score := m.search(child, depth-1, !maximizing, root)
		if maximizing {
			best = math.Max(best, score)
		} else {
			best = math.Min(best, score)
		}
	}
	return best
}
