package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Player is one side of a Game.
type Player struct {
	Color    Color
	Captured int // opposing pieces captured so far
}

type Option func(g *Game)

func WithRules(rules Rules) Option {
	return func(g *Game) {
		g.rules = rules
	}
}

// Game owns a Board and alternates turns between two players. Every mutation
// goes through Play, so human and AI moves share one path.
type Game struct {
	board     *Board
	players   [2]*Player // indexed by Color
	current   *Player
	rules     Rules
	moves     int
	observers []func(MoveRecord)
}

// NewGame starts a game from the standard setup with White to move.
func NewGame(options ...Option) *Game {
	players := [2]*Player{{Color: White}, {Color: Black}}
	return NewGameFrom(NewBoard(), players, players[White], options...)
}

// NewGameFrom builds a game from an explicit position. It panics when current
// is not one of players or the players are not ordered White, Black.
func NewGameFrom(board *Board, players [2]*Player, current *Player, options ...Option) *Game {
	if board == nil {
		panic("game needs a board")
	}
	for i, p := range players {
		if p == nil || p.Color != Color(i) {
			panic(fmt.Sprintf("player %d must be %v", i, Color(i)))
		}
	}
	if current != players[White] && current != players[Black] {
		panic("current player is not one of the game's players")
	}
	g := &Game{
		board:   board,
		players: players,
		current: current,
		rules:   StandardRules(),
	}
	for _, option := range options {
		option(g)
	}
	return g
}

func (g *Game) Board() BoardView {
	return BoardView{board: g.board}
}

func (g *Game) CurrentPlayer() Color {
	return g.current.Color
}

func (g *Game) Player(color Color) Player {
	return *g.players[color]
}

func (g *Game) Rules() Rules {
	return g.rules
}

// Moves is the number of moves applied so far.
func (g *Game) Moves() int {
	return g.moves
}

// Subscribe registers fn to be called synchronously after every applied move.
func (g *Game) Subscribe(fn func(MoveRecord)) {
	g.observers = append(g.observers, fn)
}

// MovePiece applies the move if it is legal for the side to move and reports
// whether it did. A false return leaves the game untouched.
func (g *Game) MovePiece(from, to Position) bool {
	_, ok := g.Play(from, to)
	return ok
}

// Play is MovePiece returning the record of the applied move.
func (g *Game) Play(from, to Position) (MoveRecord, bool) {
	p := g.board.At(from)
	if p == nil || p.Color != g.current.Color {
		return MoveRecord{}, false
	}
	if !StrategyFor(p.Kind).CanMove(p, g.board, to) {
		return MoveRecord{}, false
	}
	capture := IsCapture(p, g.board, to)
	if g.rules.MandatoryCapture && !capture && g.HasCapture(p.Color) {
		return MoveRecord{}, false
	}

	result, ok := g.board.Apply(from, to)
	if !ok {
		return MoveRecord{}, false
	}
	g.moves++
	record := MoveRecord{
		Index:     g.moves,
		Color:     g.current.Color,
		From:      from,
		To:        to,
		Kind:      result.Kind,
		Promotion: result.Promoted,
	}
	if result.Captured != nil {
		g.current.Captured++
		record.Capture = true
		record.Captured = result.Captured.Position
	}
	g.current = g.players[g.current.Color.Opponent()]

	for _, fn := range g.observers {
		fn(record)
	}
	return record, true
}

// ValidMoves returns the suggested destinations of the piece on pos, or nil
// when the square is empty.
func (g *Game) ValidMoves(pos Position) []Position {
	p := g.board.At(pos)
	if p == nil {
		return nil
	}
	return ValidMoves(p, g.board)
}

// LegalMoves enumerates the moves of the side to move, pieces in row-major
// order. Under mandatory capture only capturing moves are returned when any
// exist.
func (g *Game) LegalMoves() []Move {
	var moves, captures []Move
	for _, p := range g.board.Pieces(g.current.Color) {
		for _, to := range ValidMoves(p, g.board) {
			m := Move{From: p.Position, To: to}
			moves = append(moves, m)
			if IsCapture(p, g.board, to) {
				captures = append(captures, m)
			}
		}
	}
	if g.rules.MandatoryCapture && len(captures) > 0 {
		return captures
	}
	return moves
}

// IsLegal reports whether m is among LegalMoves.
func (g *Game) IsLegal(m Move) bool {
	return slices.Contains(g.LegalMoves(), m)
}

// HasCapture reports whether any piece of color can capture.
func (g *Game) HasCapture(color Color) bool {
	for _, p := range g.board.Pieces(color) {
		if len(StrategyFor(p.Kind).Captures(p, g.board)) > 0 {
			return true
		}
	}
	return false
}

// Clone returns an independent deep copy. Observers are not carried over.
func (g *Game) Clone() *Game {
	players := [2]*Player{}
	for i, p := range g.players {
		c := *p
		players[i] = &c
	}
	return &Game{
		board:   g.board.Copy(),
		players: players,
		current: players[g.current.Color],
		rules:   g.rules,
		moves:   g.moves,
	}
}

// Captured returns the piece m would capture if played now.
func (g *Game) Captured(m Move) (Piece, bool) {
	p := g.board.At(m.From)
	if p == nil || !IsCapture(p, g.board, m.To) {
		return Piece{}, false
	}
	jumped, _ := g.board.jumped(m.From, m.To)
	return *jumped, true
}
