package gamemaster

import (
	"context"
	"fmt"
	"sync"

	"checkers/game"
	"checkers/player"
	"checkers/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Update is published after every applied move.
type Update struct {
	GameID   string
	Record   game.MoveRecord
	Next     game.Color
	GameOver bool
	Winner   string // color of the winner once GameOver
}

type Option func(s *Session)

func WithRecorder(r Recorder) Option {
	return func(s *Session) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithPlayerOptions configures the computer opponents of the session.
func WithPlayerOptions(options ...player.Option) Option {
	return func(s *Session) {
		s.playerOptions = append(s.playerOptions, options...)
	}
}

func WithUpdateBuffer(size int) Option {
	return func(s *Session) {
		if size > 0 {
			s.bufferSize = size
		}
	}
}

// Session seats two sides around one Game. It rejects off-turn submissions
// before they reach the engine, and moves from computer seats go through the
// same path as human ones.
type Session struct {
	id            string
	config        Config
	recorder      Recorder
	playerOptions []player.Option
	bufferSize    int
	updates       chan Update

	mu         sync.Mutex
	game       *game.Game
	opponents  [2]*player.Opponent // nil for human seats
	generation int
	over       bool
	winner     string
}

func NewSession(config Config, options ...Option) (*Session, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		id:         uuid.New().String(),
		config:     config,
		recorder:   nopRecorder{},
		bufferSize: 64,
	}
	for _, option := range options {
		option(s)
	}
	s.updates = make(chan Update, s.bufferSize)

	for _, color := range []game.Color{game.White, game.Black} {
		if seat := config.Seat(color); seat.IsAI() {
			s.opponents[color] = player.NewOpponent(color, seat.difficulty(), s.playerOptions...)
		}
	}
	s.newGame()

	log.Info().Msgf("session %s created: white=%s black=%s", s.id, config.White.Type, config.Black.Type)
	return s, nil
}

// newGame must be called with s.mu held or before the session is shared.
func (s *Session) newGame() {
	s.game = game.NewGame(game.WithRules(s.config.rules()))
	s.game.Subscribe(s.record)
	s.over = false
	s.winner = ""
	s.generation++
}

func (s *Session) record(record game.MoveRecord) {
	if err := s.recorder.Record(s.id, record); err != nil {
		log.Warn().Msgf("session %s: failed to record move %d: %v", s.id, record.Index, err)
	}
}

func (s *Session) ID() string {
	return s.id
}

// Updates delivers one Update per applied move. Updates are dropped when the
// buffer is full.
func (s *Session) Updates() <-chan Update {
	return s.updates
}

func (s *Session) CurrentPlayer() game.Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.CurrentPlayer()
}

// Board returns a view of a copy of the current position.
func (s *Session) Board() game.BoardView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Clone().Board()
}

// Result reports whether the game is over and who won.
func (s *Session) Result() (over bool, winner string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.over, s.winner
}

// Opponent returns the computer opponent playing color, or nil for a human seat.
func (s *Session) Opponent(color game.Color) *player.Opponent {
	return s.opponents[color]
}

// Submit plays a move on behalf of color.
func (s *Session) Submit(color game.Color, from, to game.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submit(color, from, to)
}

func (s *Session) submit(color game.Color, from, to game.Position) error {
	if s.over {
		return ErrGameOver
	}
	if color != s.game.CurrentPlayer() {
		return ErrNotYourTurn
	}
	record, ok := s.game.Play(from, to)
	if !ok {
		return fmt.Errorf("%w: %v", ErrIllegalMove, game.Move{From: from, To: to})
	}

	next := s.game.CurrentPlayer()
	if len(s.game.LegalMoves()) == 0 {
		s.over = true
		s.winner = color.String()
		log.Info().Msgf("session %s: %v wins, %v has no legal move", s.id, color, next)
	}
	s.publish(Update{
		GameID:   s.id,
		Record:   record,
		Next:     next,
		GameOver: s.over,
		Winner:   s.winner,
	})
	return nil
}

func (s *Session) publish(u Update) {
	select {
	case s.updates <- u:
	default:
		log.Warn().Msgf("session %s: update buffer full, dropping move %d", s.id, u.Record.Index)
	}
}

// PlayAI lets the computer seat whose turn it is pick and play a move. The
// game is not locked while the opponent thinks; a Reset in the meantime makes
// the move stale and it is dropped with ErrStaleMove.
func (s *Session) PlayAI(ctx context.Context) error {
	s.mu.Lock()
	if s.over {
		s.mu.Unlock()
		return ErrGameOver
	}
	color := s.game.CurrentPlayer()
	opponent := s.opponents[color]
	if opponent == nil {
		s.mu.Unlock()
		return ErrHumanSeat
	}
	snapshot := s.game.Clone()
	generation := s.generation
	s.mu.Unlock()

	move, ok, err := opponent.MakeMove(ctx, snapshot)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		return ErrStaleMove
	}
	if !ok {
		// Only reachable on a position the session has not marked over yet.
		s.over = true
		s.winner = color.Opponent().String()
		return ErrGameOver
	}
	return s.submit(color, move.From, move.To)
}

// ChangeDifficulty switches the computer playing color to difficulty d.
func (s *Session) ChangeDifficulty(color game.Color, d searcher.Difficulty) error {
	opponent := s.opponents[color]
	if opponent == nil {
		return ErrHumanSeat
	}
	opponent.ChangeDifficulty(d)
	return nil
}

// Reset cancels any computer move in its thinking delay and starts a fresh
// game under the same session.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.opponents {
		if o != nil {
			o.Cancel()
		}
	}
	s.newGame()
	log.Info().Msgf("session %s reset", s.id)
}
