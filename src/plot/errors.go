package plot

import (
	"errors"
	"fmt"
)

// ErrZeroFactor is returned by Scale when a unit-scale divisor is
// exactly zero.
var ErrZeroFactor = errors.New("scale factor is zero")

// InvalidLabelsError reports a legend-label list whose length does not
// match the number of series in the overlay. It is returned before any
// dataset access happens, so a failing call never draws a partial
// chart.
type InvalidLabelsError struct {
	Want int // number of series in the overlay
	Got  int // len of the supplied label list
}

func (e *InvalidLabelsError) Error() string {
	return fmt.Sprintf("invalid legend labels: got %d labels for %d series", e.Got, e.Want)
}
