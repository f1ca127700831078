package randsource

// ShouldSampleWithRate draws a random float64 in [0, 1) from src and
// checks it against rate.
//
// rate should be in the range of [0, 1].
// When rate <= 0 this function always returns false;
// when rate >= 1 this function always returns true.
func ShouldSampleWithRate(src Source, rate float64) bool {
	return src.Float64() < rate
}
