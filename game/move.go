package game

// MoveRecord describes one applied move, in the shape handed to persistence
// and UI observers.
type MoveRecord struct {
	Index     int      `json:"index"` // 1-based move number within the game
	Color     Color    `json:"color"`
	From      Position `json:"from"`
	To        Position `json:"to"`
	Kind      Kind     `json:"kind"` // kind of the moving piece before promotion
	Capture   bool     `json:"capture"`
	Captured  Position `json:"captured"`
	Promotion bool     `json:"promotion"`
}

// Move returns the square pair of the record.
func (r MoveRecord) Move() Move {
	return Move{From: r.From, To: r.To}
}
