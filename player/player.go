package player

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/meta"
	"checkers/searcher"

	"github.com/rs/zerolog/log"
)

// ErrCanceled is returned by MakeMove when its thinking delay is cut short by
// Cancel or ChangeDifficulty.
var ErrCanceled = errors.New("move canceled")

// DefaultDelays is the thinking latency of each difficulty.
var DefaultDelays = map[searcher.Difficulty]time.Duration{
	searcher.Easy:   meta.EASY_DELAY,
	searcher.Medium: meta.MEDIUM_DELAY,
	searcher.Hard:   meta.HARD_DELAY,
}

type Option func(o *Opponent)

// WithDelays overrides the thinking latency of the given difficulties.
func WithDelays(delays map[searcher.Difficulty]time.Duration) Option {
	return func(o *Opponent) {
		for d, delay := range delays {
			o.delays[d] = delay
		}
	}
}

// WithoutDelay removes the thinking latency of every difficulty.
func WithoutDelay() Option {
	return func(o *Opponent) {
		for d := range o.delays {
			o.delays[d] = 0
		}
	}
}

// WithSearchOptions is passed to the strategy factory on every difficulty
// change.
func WithSearchOptions(options ...searcher.Option) Option {
	return func(o *Opponent) {
		o.searchOptions = append(o.searchOptions, options...)
	}
}

func WithMetrics() Option {
	return func(o *Opponent) {
		o.metrics = metrics.NewCollector()
	}
}

// Opponent is an AI-controlled side. It wraps one search strategy, paces its
// moves with a difficulty-dependent delay and can switch difficulty between
// moves.
type Opponent struct {
	color         game.Color
	delays        map[searcher.Difficulty]time.Duration
	searchOptions []searcher.Option
	metrics       metrics.Collector

	mu         sync.Mutex
	difficulty searcher.Difficulty
	strategy   searcher.Strategy
	inflight   *call // the MakeMove currently owning the cancel handle
	last       metrics.SearchMetric

	thinking atomic.Int32 // MakeMove calls not yet returned
}

// call is the cancel handle of one MakeMove invocation.
type call struct {
	cancel func()
}

// NewOpponent panics on an unknown difficulty.
func NewOpponent(color game.Color, difficulty searcher.Difficulty, options ...Option) *Opponent {
	o := &Opponent{
		color:   color,
		delays:  make(map[searcher.Difficulty]time.Duration, len(DefaultDelays)),
		metrics: metrics.NewDummyCollector(),
	}
	for d, delay := range DefaultDelays {
		o.delays[d] = delay
	}
	for _, option := range options {
		option(o)
	}
	o.difficulty = difficulty
	o.strategy = o.newStrategy(difficulty)
	return o
}

func (o *Opponent) newStrategy(d searcher.Difficulty) searcher.Strategy {
	options := append([]searcher.Option{searcher.WithMetrics(o.metrics)}, o.searchOptions...)
	return searcher.New(d, options...)
}

func (o *Opponent) Color() game.Color {
	return o.color
}

func (o *Opponent) Difficulty() searcher.Difficulty {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.difficulty
}

// IsThinking is true from the start of MakeMove until it returns.
func (o *Opponent) IsThinking() bool {
	return o.thinking.Load() > 0
}

// LastMetric returns the search metric of the last completed move. It is
// empty unless the opponent was built WithMetrics.
func (o *Opponent) LastMetric() metrics.SearchMetric {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.last
}

// MakeMove waits out the thinking delay, then asks the strategy for a move on
// a clone of g. It returns false when the side has no legal move. The delay
// is abandoned with ctx.Err() when ctx ends and with ErrCanceled on Cancel or
// ChangeDifficulty; the search itself always runs to completion with the
// strategy held when MakeMove was called.
func (o *Opponent) MakeMove(ctx context.Context, g *game.Game) (game.Move, bool, error) {
	o.mu.Lock()
	if o.inflight != nil {
		o.inflight.cancel()
	}
	ctx, cancel := context.WithCancelCause(ctx)
	c := &call{cancel: func() { cancel(ErrCanceled) }}
	o.inflight = c
	strategy := o.strategy
	delay := o.delays[o.difficulty]
	o.thinking.Add(1)
	o.mu.Unlock()

	defer o.thinking.Add(-1)
	defer func() {
		o.mu.Lock()
		if o.inflight == c {
			o.inflight = nil
		}
		o.mu.Unlock()
		cancel(nil)
	}()

	if err := wait(ctx, delay); err != nil {
		log.Debug().Msgf("%v opponent stopped thinking: %v", o.color, err)
		return game.Move{}, false, err
	}

	snapshot := g.Clone()
	o.metrics.Start(strategy.Name())
	move, ok := strategy.FindMove(snapshot)
	metric := o.metrics.Complete()

	o.mu.Lock()
	o.last = metric
	o.mu.Unlock()

	log.Debug().Msgf("%v opponent (%s) chose %v", o.color, strategy.Name(), move)
	return move, ok, nil
}

// wait sleeps for delay unless ctx ends first, returning the cause of the end.
func wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		if ctx.Err() != nil {
			return context.Cause(ctx)
		}
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return context.Cause(ctx)
	}
}

// ChangeDifficulty swaps the strategy. A move still in its thinking delay is
// canceled; a search already running keeps its old strategy.
func (o *Opponent) ChangeDifficulty(d searcher.Difficulty) {
	strategy := o.newStrategy(d)

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.inflight != nil {
		o.inflight.cancel()
	}
	o.difficulty = d
	o.strategy = strategy
}

// Cancel aborts a move that is still in its thinking delay.
func (o *Opponent) Cancel() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.inflight != nil {
		o.inflight.cancel()
	}
}
