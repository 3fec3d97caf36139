// meta/meta.go
package meta

import "time"

// MAX_TURNS caps a local game; reaching it is a draw.
const MAX_TURNS = 300

// GAMES_PER_MATCHUP is the number of games played per experiment match-up.
const GAMES_PER_MATCHUP = 10

// Artificial thinking latency per AI difficulty. Pacing only, not search cost.
const (
	EASY_DELAY   = 500 * time.Millisecond
	MEDIUM_DELAY = 1 * time.Second
	HARD_DELAY   = 2 * time.Second
)
