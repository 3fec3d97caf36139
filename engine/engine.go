package engine

import (
	"context"

	"checkers/experiments/metrics"
)

type Engine interface {
	// Run plays a game till one side has no legal move or the turn cap is reached
	Run(ctx context.Context) (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
