package game

import "fmt"

// Size is the number of rows and columns on the board.
const Size = 8

type Color int

const (
	White Color = iota
	Black
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// Forward is the row delta of a man's forward move.
func (c Color) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// PromotionRow is the opponent's back rank, where men of this color become kings.
func (c Color) PromotionRow() int {
	if c == White {
		return 0
	}
	return Size - 1
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return fmt.Sprintf("Color(%d)", int(c))
	}
}

type Kind int

const (
	Man Kind = iota
	King
)

func (k Kind) String() string {
	switch k {
	case Man:
		return "man"
	case King:
		return "king"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Position is a (row, col) square. Row 0 is Black's home rank, row 7 is White's.
type Position struct {
	Row int
	Col int
}

func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// Dark reports whether the square is playable.
func (p Position) Dark() bool {
	return (p.Row+p.Col)%2 == 1
}

func (p Position) Add(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// String renders the square in algebraic notation, a1 being (7,0).
func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+p.Col, Size-p.Row)
}

// Move is a single (from, to) square pair.
type Move struct {
	From Position
	To   Position
}

func (m Move) String() string {
	return m.From.String() + "-" + m.To.String()
}

// IsJump reports whether the move spans more than one square.
func (m Move) IsJump() bool {
	return abs(m.To.Row-m.From.Row) > 1
}

// Diagonals lists the four diagonal directions as (dRow, dCol).
var Diagonals = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
