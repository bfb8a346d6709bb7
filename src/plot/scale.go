package plot

// Scale divides every element of series by the given unit factor and
// returns the scaled copy. A nil factor means "no scaling" and returns
// the input slice unchanged; callers must not rely on whether the
// result aliases the input. A zero factor returns ErrZeroFactor.
func Scale(series []float64, factor *float64) ([]float64, error) {
	if factor == nil {
		return series, nil
	}
	if *factor == 0 {
		return nil, ErrZeroFactor
	}
	out := make([]float64, len(series))
	for i, v := range series {
		out[i] = v / *factor
	}
	return out, nil
}
