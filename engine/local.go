package engine

import (
	"context"
	"fmt"
	"time"

	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/meta"
	"checkers/player"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*Local)(nil)

// Local plays two AI opponents against each other in process.
type Local struct {
	Game      *game.Game
	Opponents [2]*player.Opponent // indexed by color
	MaxTurns  int
}

// LocalEngine panics unless opponents holds exactly one White and one Black
// opponent.
func LocalEngine(opponents []*player.Opponent, options ...game.Option) *Local {
	if len(opponents) != 2 {
		panic("need exactly two opponents")
	}
	var seats [2]*player.Opponent
	for _, o := range opponents {
		if seats[o.Color()] != nil {
			panic(fmt.Sprintf("two opponents play %v", o.Color()))
		}
		seats[o.Color()] = o
	}

	return &Local{
		Game:      game.NewGame(options...),
		Opponents: seats,
		MaxTurns:  meta.MAX_TURNS,
	}
}

// Run executes the game loop. A side to move without legal moves loses; a game
// reaching MaxTurns is a draw with an empty winner.
func (e *Local) Run(ctx context.Context) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Game.CurrentPlayer().String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%v is starting", e.Game.CurrentPlayer())

	winner := ""
	for turn := 1; turn <= e.MaxTurns; turn++ {
		current := e.Game.CurrentPlayer()
		opponent := e.Opponents[current]

		move, ok, err := opponent.MakeMove(ctx, e.Game)
		if err != nil {
			return "", gameMetric, moveMetrics, fmt.Errorf("turn %d: %w", turn, err)
		}
		if !ok {
			winner = current.Opponent().String()
			log.Info().Msgf("%v has no legal move after %d moves", current, e.Game.Moves())
			break
		}

		if !e.Game.IsLegal(move) {
			log.Warn().Msgf("%v opponent returned an illegal move %v, playing the first legal move", current, move)
			move = e.Game.LegalMoves()[0]
		}
		e.Game.MovePiece(move.From, move.To)
		log.Debug().Msgf("turn %d: %v played %v\n%v", turn, current, move, e.Game.Board())

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       current.String(),
			SearchMetric: opponent.LastMetric(),
		})
	}

	if winner == "" {
		log.Info().Msgf("stopped after %d turns with no winner", e.MaxTurns)
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.Game.Moves()
	return winner, gameMetric, moveMetrics, nil
}
