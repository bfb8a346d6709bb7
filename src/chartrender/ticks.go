package chartrender

import (
	"math"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
)

const (
	defaultWidth  = 1024
	defaultHeight = 512
)

// ClampDimensions resolves requested chart dimensions: zero or
// negative values pick the defaults, and the result is clamped to a
// range that keeps axis text legible without producing absurd images.
func ClampDimensions(w, h int) (int, int) {
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	clamp := func(v, lo, hi int) int {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}
	return clamp(w, 320, 4096), clamp(h, 240, 2160)
}

// NiceAxisBounds expands [min,max] by a small margin and rounds both
// ends outward to the span's order of magnitude, so axis ends land on
// round numbers.
func NiceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	pad := span * 0.05
	a, b := min-pad, max+pad
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if mag > 0 && !math.IsInf(mag, 0) {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	return a, b
}

// NiceTicks generates close to n tick marks spanning [min,max] using
// steps from the 1, 2, 2.5, 5 pattern scaled by powers of ten.
func NiceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	step := mag
	best := math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		s := c * mag
		count := math.Ceil(span / s)
		if count < 2 {
			count = 2
		}
		if d := math.Abs(count - float64(n)); d < best {
			best = d
			step = s
		}
	}
	start := math.Floor(min/step) * step
	end := math.Ceil(max/step) * step
	var ticks []chart.Tick
	for v := start; v <= end+step/2; v += step {
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return strconv.FormatFloat(v, 'f', 0, 64)
	case av >= 10:
		return strconv.FormatFloat(v, 'f', 1, 64)
	case av >= 0.01:
		return strconv.FormatFloat(v, 'f', 2, 64)
	default:
		return strconv.FormatFloat(v, 'g', 3, 64)
	}
}
