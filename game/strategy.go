package game

import "fmt"

// Strategy computes the movement rules of one piece kind. Implementations are
// stateless and may be shared between games; they never keep a piece or
// board past a single call.
type Strategy interface {
	// CanMove reports whether p may move to to on b, capturing or not.
	CanMove(p *Piece, b *Board, to Position) bool
	// Moves lists the non-capturing destinations of p.
	Moves(p *Piece, b *Board) []Position
	// Captures lists the destinations of single captures by p.
	Captures(p *Piece, b *Board) []Position
}

var (
	manRules  Strategy = manStrategy{}
	kingRules Strategy = kingStrategy{}
)

// StrategyFor returns the movement strategy of a piece kind.
func StrategyFor(kind Kind) Strategy {
	switch kind {
	case Man:
		return manRules
	case King:
		return kingRules
	default:
		panic(fmt.Sprintf("no movement strategy for %v", kind))
	}
}

// manStrategy moves one square diagonally forward and captures by jumping an
// adjacent opposing piece forward. Men never move or capture backwards.
type manStrategy struct{}

func (manStrategy) CanMove(p *Piece, b *Board, to Position) bool {
	if !b.IsEmpty(to) {
		return false
	}
	dRow, dCol := to.Row-p.Position.Row, to.Col-p.Position.Col
	forward := p.Color.Forward()
	switch {
	case dRow == forward && abs(dCol) == 1:
		return true
	case dRow == 2*forward && abs(dCol) == 2:
		mid := b.At(p.Position.Add(forward, dCol/2))
		return mid != nil && mid.Color != p.Color
	default:
		return false
	}
}

func (s manStrategy) Moves(p *Piece, b *Board) []Position {
	var moves []Position
	forward := p.Color.Forward()
	for _, dCol := range []int{-1, 1} {
		to := p.Position.Add(forward, dCol)
		if s.CanMove(p, b, to) {
			moves = append(moves, to)
		}
	}
	return moves
}

func (s manStrategy) Captures(p *Piece, b *Board) []Position {
	var captures []Position
	forward := p.Color.Forward()
	for _, dCol := range []int{-2, 2} {
		to := p.Position.Add(2*forward, dCol)
		if s.CanMove(p, b, to) {
			captures = append(captures, to)
		}
	}
	return captures
}

// kingStrategy is a flying king: it slides any distance along the four
// diagonals and captures the single opposing piece on an otherwise open
// diagonal, landing on any empty square beyond it.
type kingStrategy struct{}

func (kingStrategy) CanMove(p *Piece, b *Board, to Position) bool {
	if !b.IsEmpty(to) {
		return false
	}
	dRow, dCol := to.Row-p.Position.Row, to.Col-p.Position.Col
	if dRow == 0 || abs(dRow) != abs(dCol) {
		return false
	}
	var occupied []*Piece
	for _, pos := range between(p.Position, to) {
		if q := b.At(pos); q != nil {
			occupied = append(occupied, q)
		}
	}
	switch len(occupied) {
	case 0:
		return true
	case 1:
		return occupied[0].Color != p.Color
	default:
		return false
	}
}

func (kingStrategy) Moves(p *Piece, b *Board) []Position {
	var moves []Position
	for _, d := range Diagonals {
		for pos := p.Position.Add(d[0], d[1]); b.IsEmpty(pos); pos = pos.Add(d[0], d[1]) {
			moves = append(moves, pos)
		}
	}
	return moves
}

func (kingStrategy) Captures(p *Piece, b *Board) []Position {
	var captures []Position
	for _, d := range Diagonals {
		pos := p.Position.Add(d[0], d[1])
		for b.IsEmpty(pos) {
			pos = pos.Add(d[0], d[1])
		}
		if q := b.At(pos); q == nil || q.Color == p.Color {
			continue
		}
		for landing := pos.Add(d[0], d[1]); b.IsEmpty(landing); landing = landing.Add(d[0], d[1]) {
			captures = append(captures, landing)
		}
	}
	return captures
}

// IsCapture reports whether moving p to to would capture a piece.
func IsCapture(p *Piece, b *Board, to Position) bool {
	dRow, dCol := to.Row-p.Position.Row, to.Col-p.Position.Col
	if abs(dRow) < 2 || abs(dRow) != abs(dCol) {
		return false
	}
	jumped, ok := b.jumped(p.Position, to)
	return ok && jumped.Color != p.Color
}
