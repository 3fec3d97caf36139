package engine

import (
	"context"
	"testing"
	"time"

	"checkers/game"
	"checkers/player"
	"checkers/searcher"

	"github.com/stretchr/testify/require"
)

func opponent(color game.Color, d searcher.Difficulty, seed uint64) *player.Opponent {
	return player.NewOpponent(color, d, player.WithoutDelay(), player.WithMetrics(),
		player.WithSearchOptions(searcher.WithSeed(seed), searcher.WithDepth(2)))
}

func TestLocalEngine(t *testing.T) {
	t.Run("panics with the wrong number of opponents", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine([]*player.Opponent{opponent(game.White, searcher.Easy, 1)})
		})
	})

	t.Run("panics when both opponents play the same color", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine([]*player.Opponent{
				opponent(game.White, searcher.Easy, 1),
				opponent(game.White, searcher.Easy, 2),
			})
		})
	})
}

func TestLocalRun(t *testing.T) {
	t.Run("plays a full game between two random opponents", func(t *testing.T) {
		e := LocalEngine([]*player.Opponent{
			opponent(game.Black, searcher.Easy, 1),
			opponent(game.White, searcher.Easy, 2),
		})

		winner, gameMetric, moveMetrics, err := e.Run(context.Background())

		require.NoError(t, err)
		require.Equal(t, "white", gameMetric.StartingPlayer)
		require.Equal(t, winner, gameMetric.Winner)
		require.Equal(t, e.Game.Moves(), gameMetric.TotalMoves)
		require.Len(t, moveMetrics, gameMetric.TotalMoves, "One metric per applied move")
		require.Equal(t, "white", moveMetrics[0].Player)
		require.Equal(t, "random", moveMetrics[0].Strategy)
		if winner != "" {
			require.Empty(t, e.Game.LegalMoves(), "The loser should have no legal move")
		} else {
			require.Equal(t, e.MaxTurns, gameMetric.TotalMoves)
		}
	})

	t.Run("declares the side with no move the loser", func(t *testing.T) {
		e := LocalEngine([]*player.Opponent{
			opponent(game.White, searcher.Medium, 1),
			opponent(game.Black, searcher.Medium, 2),
		})
		b := game.EmptyBoard()
		b.Place(game.NewPiece(game.White, game.Man, game.Pos(5, 2)))
		b.Place(game.NewPiece(game.Black, game.Man, game.Pos(4, 3)))
		players := [2]*game.Player{{Color: game.White}, {Color: game.Black}}
		e.Game = game.NewGameFrom(b, players, players[game.White])

		winner, gameMetric, _, err := e.Run(context.Background())

		require.NoError(t, err)
		require.Equal(t, "white", winner)
		require.Equal(t, 1, gameMetric.TotalMoves)
	})

	t.Run("stops at the turn cap with no winner", func(t *testing.T) {
		e := LocalEngine([]*player.Opponent{
			opponent(game.White, searcher.Easy, 1),
			opponent(game.Black, searcher.Easy, 2),
		})
		e.MaxTurns = 4

		winner, gameMetric, _, err := e.Run(context.Background())

		require.NoError(t, err)
		require.Empty(t, winner)
		require.Equal(t, 4, gameMetric.TotalMoves)
	})

	t.Run("returns the context error of an interrupted move", func(t *testing.T) {
		slow := player.NewOpponent(game.White, searcher.Easy,
			player.WithDelays(map[searcher.Difficulty]time.Duration{searcher.Easy: time.Minute}))
		e := LocalEngine([]*player.Opponent{slow, opponent(game.Black, searcher.Easy, 2)})
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, _, _, err := e.Run(ctx)

		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
