package game

import (
	"fmt"
	"strings"
)

// Board is an 8x8 grid of optional pieces. Pieces only ever stand on dark
// squares: Place enforces it and the movement strategies only produce dark
// destinations.
type Board struct {
	squares [Size][Size]*Piece
}

// NewBoard returns the standard setup: Black men on rows 0-2, White men on
// rows 5-7, all on dark squares.
func NewBoard() *Board {
	b := EmptyBoard()
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			pos := Pos(row, col)
			if !pos.Dark() {
				continue
			}
			switch {
			case row < 3:
				b.Place(NewPiece(Black, Man, pos))
			case row > 4:
				b.Place(NewPiece(White, Man, pos))
			}
		}
	}
	return b
}

func EmptyBoard() *Board {
	return &Board{}
}

// Place puts a piece on its own Position, replacing any occupant.
func (b *Board) Place(p *Piece) {
	if !p.Position.Valid() || !p.Position.Dark() {
		panic(fmt.Sprintf("cannot place piece on %v: not a dark square", p.Position))
	}
	b.squares[p.Position.Row][p.Position.Col] = p
}

// At returns the piece on pos, or nil for an empty or off-board square.
func (b *Board) At(pos Position) *Piece {
	if !pos.Valid() {
		return nil
	}
	return b.squares[pos.Row][pos.Col]
}

func (b *Board) IsEmpty(pos Position) bool {
	return pos.Valid() && b.squares[pos.Row][pos.Col] == nil
}

func (b *Board) Remove(pos Position) *Piece {
	p := b.At(pos)
	if p != nil {
		b.squares[pos.Row][pos.Col] = nil
	}
	return p
}

// Pieces lists the pieces of color in row-major order.
func (b *Board) Pieces(color Color) []*Piece {
	var pieces []*Piece
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if p := b.squares[row][col]; p != nil && p.Color == color {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

func (b *Board) Count(color Color) int {
	return len(b.Pieces(color))
}

// Copy returns a deep copy: no piece is shared with the original.
func (b *Board) Copy() *Board {
	c := &Board{}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if p := b.squares[row][col]; p != nil {
				c.squares[row][col] = p.copy()
			}
		}
	}
	return c
}

// ApplyResult describes what Apply did to the board.
type ApplyResult struct {
	Piece    *Piece // the moved piece, after any promotion
	Kind     Kind   // kind of the moved piece before promotion
	Captured *Piece
	Promoted bool
}

// Apply moves the piece on from to to without checking legality; callers
// validate through a Strategy first. A diagonal jump removes the single
// opposing piece it passes over. Own pieces and empty squares on the path are
// left untouched. A man ending on the opponent's back rank is replaced by a
// king of the same color.
func (b *Board) Apply(from, to Position) (ApplyResult, bool) {
	p := b.At(from)
	if p == nil || !to.Valid() {
		return ApplyResult{}, false
	}
	result := ApplyResult{Kind: p.Kind}

	dRow, dCol := to.Row-from.Row, to.Col-from.Col
	if abs(dRow) >= 2 && abs(dRow) == abs(dCol) {
		if jumped, ok := b.jumped(from, to); ok && jumped.Color != p.Color {
			result.Captured = b.Remove(jumped.Position)
		}
	}

	b.squares[from.Row][from.Col] = nil
	p.Position = to
	b.squares[to.Row][to.Col] = p

	if p.Kind == Man && to.Row == p.Color.PromotionRow() {
		p = NewPiece(p.Color, King, to)
		b.squares[to.Row][to.Col] = p
		result.Promoted = true
	}
	result.Piece = p
	return result, true
}

// jumped returns the only occupied square strictly between from and to on a
// diagonal. ok is false when the path is empty or holds more than one piece.
func (b *Board) jumped(from, to Position) (*Piece, bool) {
	var found *Piece
	for _, pos := range between(from, to) {
		if p := b.At(pos); p != nil {
			if found != nil {
				return nil, false
			}
			found = p
		}
	}
	return found, found != nil
}

// between lists the squares strictly between two squares on one diagonal.
func between(from, to Position) []Position {
	dRow, dCol := sign(to.Row-from.Row), sign(to.Col-from.Col)
	var squares []Position
	for pos := from.Add(dRow, dCol); pos != to && pos.Valid(); pos = pos.Add(dRow, dCol) {
		squares = append(squares, pos)
	}
	return squares
}

// String renders the board with row 0 on top.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for row := 0; row < Size; row++ {
		fmt.Fprintf(&sb, "%d ", Size-row)
		for col := 0; col < Size; col++ {
			switch p := b.squares[row][col]; {
			case p != nil:
				sb.WriteByte(p.Symbol())
			case Pos(row, col).Dark():
				sb.WriteByte('.')
			default:
				sb.WriteByte(' ')
			}
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d\n", Size-row)
	}
	sb.WriteString("  a b c d e f g h")
	return sb.String()
}

// BoardView is a read-only window on a Game's board.
type BoardView struct {
	board *Board
}

// At returns a copy of the piece on pos.
func (v BoardView) At(pos Position) (Piece, bool) {
	p := v.board.At(pos)
	if p == nil {
		return Piece{}, false
	}
	return *p, true
}

func (v BoardView) Pieces(color Color) []Piece {
	ptrs := v.board.Pieces(color)
	pieces := make([]Piece, len(ptrs))
	for i, p := range ptrs {
		pieces[i] = *p
	}
	return pieces
}

func (v BoardView) Count(color Color) int {
	return v.board.Count(color)
}

// Copy returns an independent Board with the same position.
func (v BoardView) Copy() *Board {
	return v.board.Copy()
}

func (v BoardView) String() string {
	return v.board.String()
}
