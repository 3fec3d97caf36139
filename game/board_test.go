package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("places twelve men per color on dark squares", func(t *testing.T) {
		for _, color := range []Color{White, Black} {
			pieces := b.Pieces(color)
			require.Len(t, pieces, 12, "Each side should start with 12 pieces")
			for _, p := range pieces {
				require.Equal(t, Man, p.Kind, "Every starting piece should be a man")
				require.True(t, p.Position.Dark(), "Pieces should only stand on dark squares")
			}
		}
	})

	t.Run("black on rows 0-2, white on rows 5-7, middle empty", func(t *testing.T) {
		for row := 0; row < Size; row++ {
			for col := 0; col < Size; col++ {
				p := b.At(Pos(row, col))
				switch {
				case !Pos(row, col).Dark() || (row >= 3 && row <= 4):
					require.Nil(t, p, "Square (%d,%d) should be empty", row, col)
				case row < 3:
					require.Equal(t, Black, p.Color)
				default:
					require.Equal(t, White, p.Color)
				}
			}
		}
	})
}

func TestBoardPlace(t *testing.T) {
	t.Run("panics on a light square", func(t *testing.T) {
		require.Panics(t, func() {
			EmptyBoard().Place(NewPiece(White, Man, Pos(0, 0)))
		})
	})

	t.Run("panics off the board", func(t *testing.T) {
		require.Panics(t, func() {
			EmptyBoard().Place(NewPiece(White, Man, Pos(8, 1)))
		})
	})
}

func TestBoardApply(t *testing.T) {
	t.Run("fails without a piece on the source", func(t *testing.T) {
		_, ok := EmptyBoard().Apply(Pos(5, 0), Pos(4, 1))
		require.False(t, ok)
	})

	t.Run("moves a piece and clears the source", func(t *testing.T) {
		b := NewBoard()
		result, ok := b.Apply(Pos(5, 0), Pos(4, 1))

		require.True(t, ok)
		require.Nil(t, b.At(Pos(5, 0)))
		require.Equal(t, result.Piece, b.At(Pos(4, 1)))
		require.Equal(t, Pos(4, 1), result.Piece.Position, "Piece position should be updated in place")
		require.Nil(t, result.Captured)
		require.False(t, result.Promoted)
	})

	t.Run("removes the jumped opposing piece", func(t *testing.T) {
		b := EmptyBoard()
		b.Place(NewPiece(White, Man, Pos(5, 2)))
		b.Place(NewPiece(Black, Man, Pos(4, 3)))

		result, ok := b.Apply(Pos(5, 2), Pos(3, 4))

		require.True(t, ok)
		require.Nil(t, b.At(Pos(4, 3)), "Jumped piece should be removed")
		require.NotNil(t, result.Captured)
		require.Equal(t, Black, result.Captured.Color)
		require.Equal(t, White, b.At(Pos(3, 4)).Color)
	})

	t.Run("leaves an own piece on the midpoint", func(t *testing.T) {
		b := EmptyBoard()
		b.Place(NewPiece(White, Man, Pos(5, 2)))
		b.Place(NewPiece(White, Man, Pos(4, 3)))

		result, ok := b.Apply(Pos(5, 2), Pos(3, 4))

		require.True(t, ok)
		require.Nil(t, result.Captured)
		require.NotNil(t, b.At(Pos(4, 3)), "Own piece should not be removed")
	})

	t.Run("removes the single piece passed by a flying king", func(t *testing.T) {
		b := EmptyBoard()
		b.Place(NewPiece(White, King, Pos(7, 0)))
		b.Place(NewPiece(Black, Man, Pos(4, 3)))

		result, ok := b.Apply(Pos(7, 0), Pos(2, 5))

		require.True(t, ok)
		require.NotNil(t, result.Captured)
		require.Nil(t, b.At(Pos(4, 3)))
	})

	t.Run("promotes a man reaching the opponent back rank", func(t *testing.T) {
		b := EmptyBoard()
		b.Place(NewPiece(White, Man, Pos(1, 2)))
		b.Place(NewPiece(Black, Man, Pos(6, 1)))

		white, _ := b.Apply(Pos(1, 2), Pos(0, 1))
		black, _ := b.Apply(Pos(6, 1), Pos(7, 0))

		require.True(t, white.Promoted)
		require.Equal(t, Man, white.Kind, "Result should report the kind before promotion")
		require.Equal(t, King, b.At(Pos(0, 1)).Kind)
		require.True(t, black.Promoted)
		require.Equal(t, King, b.At(Pos(7, 0)).Kind)
	})

	t.Run("does not promote before the back rank", func(t *testing.T) {
		b := EmptyBoard()
		b.Place(NewPiece(White, Man, Pos(2, 1)))

		result, _ := b.Apply(Pos(2, 1), Pos(1, 2))

		require.False(t, result.Promoted)
		require.Equal(t, Man, b.At(Pos(1, 2)).Kind)
	})
}

func TestBoardCopy(t *testing.T) {
	b := NewBoard()
	c := b.Copy()

	c.Apply(Pos(5, 0), Pos(4, 1))

	require.NotNil(t, b.At(Pos(5, 0)), "Original should not see moves on the copy")
	require.Nil(t, b.At(Pos(4, 1)))
	require.Equal(t, Pos(5, 0), b.At(Pos(5, 0)).Position, "Pieces should not be shared")
}

func TestPositionString(t *testing.T) {
	require.Equal(t, "a1", Pos(7, 0).String())
	require.Equal(t, "h8", Pos(0, 7).String())
	require.Equal(t, "a1-b2", Move{From: Pos(7, 0), To: Pos(6, 1)}.String())
}
