package game

// Piece is owned by a Board, which updates Position in place on every move.
type Piece struct {
	Color    Color
	Kind     Kind
	Position Position
}

func NewPiece(color Color, kind Kind, pos Position) *Piece {
	return &Piece{Color: color, Kind: kind, Position: pos}
}

func (p *Piece) IsKing() bool {
	return p.Kind == King
}

func (p *Piece) copy() *Piece {
	c := *p
	return &c
}

// Symbol is the single-character board diagram glyph.
func (p *Piece) Symbol() byte {
	switch {
	case p.Color == White && p.Kind == King:
		return 'W'
	case p.Color == White:
		return 'w'
	case p.Kind == King:
		return 'B'
	default:
		return 'b'
	}
}
