package plot

// validateOverlayLabels checks a caller-supplied legend-label list
// against the overlay cardinality. nil labels are always valid (the
// legend is optional). Every plot operation runs this before its first
// DataSource call so that a bad label list never costs a dataset read
// and never produces a partial chart.
func validateOverlayLabels(want int, labels []string) error {
	if labels == nil {
		return nil
	}
	if len(labels) != want {
		return &InvalidLabelsError{Want: want, Got: len(labels)}
	}
	return nil
}

// overrideAt returns the i-th legend label as an override pointer, or
// nil when no labels were supplied.
func overrideAt(labels []string, i int) *string {
	if labels == nil {
		return nil
	}
	return &labels[i]
}
