package detect

// Detection pairs a detected value with a heuristic confidence in [0,1].
// Confidence indicates how specific the matching rule was, not a probability.
type Detection[T any] struct {
	Value      T
	Confidence float64
}
