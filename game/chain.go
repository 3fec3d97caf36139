package game

import "golang.org/x/exp/slices"

// Chain is a sequence of capture landings made by one piece, each removing one
// opposing piece.
type Chain []Position

// Captures is the number of pieces the chain removes.
func (c Chain) Captures() int {
	return len(c)
}

// Chains explores every capture sequence available to p, depth first, on
// copies of b. Each returned chain ends where no further capture exists or
// where a man is promoted.
func Chains(p *Piece, b *Board) []Chain {
	var chains []Chain
	explore(b, p.Position, nil, &chains)
	return chains
}

func explore(b *Board, at Position, path Chain, chains *[]Chain) {
	p := b.At(at)
	captures := StrategyFor(p.Kind).Captures(p, b)
	if len(captures) == 0 {
		if len(path) > 0 {
			*chains = append(*chains, path)
		}
		return
	}
	for _, to := range captures {
		next := b.Copy()
		result, _ := next.Apply(at, to)
		extended := append(slices.Clone(path), to)
		if result.Promoted {
			*chains = append(*chains, extended)
			continue
		}
		explore(next, to, extended, chains)
	}
}

// LongestChains returns the chains with the highest capture count.
func LongestChains(p *Piece, b *Board) []Chain {
	var longest []Chain
	best := 0
	for _, c := range Chains(p, b) {
		switch {
		case c.Captures() > best:
			best = c.Captures()
			longest = []Chain{c}
		case c.Captures() == best:
			longest = append(longest, c)
		}
	}
	return longest
}

// ValidMoves returns the destinations p may be steered to this turn. When a
// capture is available only the first steps of the longest capture chains are
// offered; otherwise the plain moves of the piece's strategy.
func ValidMoves(p *Piece, b *Board) []Position {
	longest := LongestChains(p, b)
	if len(longest) == 0 {
		return StrategyFor(p.Kind).Moves(p, b)
	}
	var moves []Position
	for _, c := range longest {
		if !slices.Contains(moves, c[0]) {
			moves = append(moves, c[0])
		}
	}
	return moves
}
