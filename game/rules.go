package game

// Rules holds the optional rule variants a Game is played with.
type Rules struct {
	// MandatoryCapture rejects non-capturing moves while the side to move has
	// any capture available.
	MandatoryCapture bool
}

// StandardRules leaves captures optional: the capture chain finder only biases
// move suggestions towards the longest chain.
func StandardRules() Rules {
	return Rules{}
}

func ForcedCaptureRules() Rules {
	return Rules{MandatoryCapture: true}
}
