package heuristics

// DeliveryMetrics carries the optional delivery measurements attached to an
// answer. Nil fields mean the client did not measure that dimension.
type DeliveryMetrics struct {
	SpeakingRate *float64 // words per minute
	PauseRatio   *float64 // 0..1
	Gaze         *float64 // percent of time on camera, 0..100
	Fillers      *int
}

// Tip is one coaching suggestion.
type Tip struct {
	Summary string
	Detail  string
}
