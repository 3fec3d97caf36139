package gamemaster

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"checkers/game"
	"checkers/searcher"

	"github.com/go-playground/validator/v10"
)

var (
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrNotYourTurn = errors.New("not your turn")
	ErrIllegalMove = errors.New("illegal move")
	ErrHumanSeat   = errors.New("seat is not played by the computer")
	ErrStaleMove   = errors.New("game was reset while the computer was thinking")
)

const (
	SeatHuman = "human"
	SeatAI    = "ai"
)

// SeatConfig describes who plays one color.
type SeatConfig struct {
	Type       string `json:"type" validate:"required,oneof=human ai"`
	Difficulty string `json:"difficulty,omitempty" validate:"required_if=Type ai,omitempty,oneof=easy medium hard"`
}

func (s SeatConfig) IsAI() bool {
	return s.Type == SeatAI
}

type Config struct {
	White            SeatConfig `json:"white"`
	Black            SeatConfig `json:"black"`
	MandatoryCapture bool       `json:"mandatoryCapture"`
}

func (c Config) Seat(color game.Color) SeatConfig {
	if color == game.White {
		return c.White
	}
	return c.Black
}

func (c Config) rules() game.Rules {
	if c.MandatoryCapture {
		return game.ForcedCaptureRules()
	}
	return game.StandardRules()
}

var validate = validator.New()

// Validate checks the seat types and difficulties of a session config.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("invalid config: %w", err)
	}
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		switch e.Tag() {
		case "required", "required_if":
			msgs = append(msgs, fmt.Sprintf("%s is required", e.Namespace()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s], got %q", e.Namespace(), e.Param(), e.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", e.Namespace(), e.Tag()))
		}
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func (s SeatConfig) difficulty() searcher.Difficulty {
	d, err := searcher.ParseDifficulty(s.Difficulty)
	if err != nil {
		panic(err) // unreachable after Validate
	}
	return d
}

// Recorder receives every applied move, e.g. to persist it. It must not
// mutate the game.
type Recorder interface {
	Record(gameID string, record game.MoveRecord) error
}

// MemoryRecorder keeps move records in memory, per game.
type MemoryRecorder struct {
	mu      sync.RWMutex
	records map[string][]game.MoveRecord
}

func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{records: make(map[string][]game.MoveRecord)}
}

func (r *MemoryRecorder) Record(gameID string, record game.MoveRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[gameID] = append(r.records[gameID], record)
	return nil
}

// Records returns a copy of the records of one game.
func (r *MemoryRecorder) Records(gameID string) []game.MoveRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	records := make([]game.MoveRecord, len(r.records[gameID]))
	copy(records, r.records[gameID])
	return records
}

type nopRecorder struct{}

func (nopRecorder) Record(string, game.MoveRecord) error { return nil }
