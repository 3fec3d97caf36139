package game

import "math"

const (
	ManValue      = 100
	KingValue     = 300
	MobilityValue = 5
)

// Evaluate scores a position from perspective's point of view: positive
// favors perspective.
type Evaluate func(g *Game, perspective Color) float64

// EvaluateMaterial sums, per piece on the board, its material value, a
// positional value (center bonus, doubled for kings, plus row advancement for
// men) and a mobility bonus for each suggested destination. Pieces of
// perspective add to the score, opposing pieces subtract.
func EvaluateMaterial(g *Game, perspective Color) float64 {
	score := 0.0
	for _, color := range []Color{White, Black} {
		for _, p := range g.board.Pieces(color) {
			value := pieceValue(p) + float64(MobilityValue*len(ValidMoves(p, g.board)))
			if color == perspective {
				score += value
			} else {
				score -= value
			}
		}
	}
	return score
}

func pieceValue(p *Piece) float64 {
	if p.Kind == King {
		return KingValue + 2*CenterBonus(p.Position)
	}
	return ManValue + CenterBonus(p.Position) + float64(Advancement(p.Color, p.Position))
}

// CenterBonus is the inverted Manhattan distance from pos to the board
// center: 6 on the four central squares, 0 in the corners.
func CenterBonus(pos Position) float64 {
	const center = (Size - 1) / 2.0
	distance := math.Abs(float64(pos.Row)-center) + math.Abs(float64(pos.Col)-center)
	return Size - 1 - distance
}

// Advancement is the number of rows a piece of color on pos has progressed
// from its home rank towards promotion.
func Advancement(color Color, pos Position) int {
	if color == White {
		return Size - 1 - pos.Row
	}
	return pos.Row
}
