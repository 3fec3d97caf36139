package searcher

import (
	"math"

	"checkers/experiments/metrics"
	"checkers/game"
)

// Weights of the heuristic move score.
const (
	CaptureBonus     = 1000
	KingCaptureBonus = 500
	ProtectionBonus  = 5
	ExposurePenalty  = 10
)

// Heuristic scores every legal move with a fixed weighted sum and plays the
// best one. Ties go to the first move enumerated.
type Heuristic struct {
	metrics metrics.Collector
}

func NewHeuristic(options ...Option) *Heuristic {
	c := newConfig(options)
	return &Heuristic{metrics: c.metrics}
}

func (h *Heuristic) Name() string {
	return "heuristic"
}

func (h *Heuristic) FindMove(g *game.Game) (game.Move, bool) {
	var best game.Move
	bestScore := math.Inf(-1)
	for _, m := range g.LegalMoves() {
		h.metrics.AddNode()
		if score := ScoreMove(g, m); score > bestScore {
			best, bestScore = m, score
		}
	}
	return best, !math.IsInf(bestScore, -1)
}

// ScoreMove rates m for the side to move: a capture bonus (more for a king),
// the destination's center bonus and advancement, plus protection by adjacent
// allies and exposure to adjacent enemies once the move is made.
func ScoreMove(g *game.Game, m game.Move) float64 {
	mover, ok := g.Board().At(m.From)
	if !ok {
		return math.Inf(-1)
	}
	score := 0.0
	if captured, ok := g.Captured(m); ok {
		score += CaptureBonus
		if captured.Kind == game.King {
			score += KingCaptureBonus
		}
	}
	score += game.CenterBonus(m.To)
	score += float64(game.Advancement(mover.Color, m.To))

	after := g.Clone()
	if !after.MovePiece(m.From, m.To) {
		return math.Inf(-1)
	}
	board := after.Board()
	for _, d := range game.Diagonals {
		neighbor, ok := board.At(m.To.Add(d[0], d[1]))
		if !ok {
			continue
		}
		if neighbor.Color == mover.Color {
			score += ProtectionBonus
		} else {
			score -= ExposurePenalty
		}
	}
	return score
}
