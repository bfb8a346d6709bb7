// Package chartrender draws assembled figures to PNG using go-chart.
// It is the rendering collaborator of src/plot: by the time a Figure
// arrives here every series is scaled and labeled, so this package is
// only concerned with pixels, axes and legends.
package chartrender

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/ndavila/wnutils/src/plot"
)

// PNG renders figures as PNG images to Out. Zero Width/Height pick a
// default size; out-of-range values are clamped by ClampDimensions.
// An optional Caption is stamped onto the bottom edge of the image.
type PNG struct {
	Width   int
	Height  int
	Caption string
	Out     io.Writer
}

// Render draws the figure and writes the encoded PNG to r.Out. The
// only extra options this backend recognizes are "xscale" and
// "yscale" with value "log"; any other extra key is rejected so that
// a misspelled option fails loudly instead of being dropped.
func (r *PNG) Render(fig plot.Figure) error {
	if r.Out == nil {
		return errors.New("chartrender: no output writer configured")
	}
	if len(fig.Series) == 0 {
		return errors.New("chartrender: figure has no series")
	}
	for k := range fig.Extra {
		if k != "xscale" && k != "yscale" {
			return fmt.Errorf("chartrender: unknown option %q", k)
		}
	}

	series := make([]chart.Series, 0, len(fig.Series))
	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for i, s := range fig.Series {
		x := s.X
		if x == nil {
			x = stepIndex(len(s.Y))
		}
		x, y := padSinglePoint(x, s.Y)
		xMin, xMax = extend(xMin, xMax, x)
		yMin, yMax = extend(yMin, yMax, y)
		series = append(series, chart.ContinuousSeries{
			Name:    s.Label,
			XValues: x,
			YValues: y,
			Style:   lineStyle(i),
		})
	}

	w, h := ClampDimensions(r.Width, r.Height)
	padBottom := 28
	if r.Caption != "" {
		padBottom += 18
	}
	xRange, xTicks := axisLayout(fig.XLim, fig.Extra["xscale"], xMin, xMax)
	yRange, yTicks := axisLayout(fig.YLim, fig.Extra["yscale"], yMin, yMax)
	ch := chart.Chart{
		Title:      fig.Title,
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: padBottom}},
		XAxis: chart.XAxis{
			Name:  fig.XLabel,
			Range: xRange,
			Ticks: xTicks,
		},
		YAxis: chart.YAxis{
			Name:  fig.YLabel,
			Range: yRange,
			Ticks: yTicks,
		},
		Series: series,
	}
	if fig.Legend {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return fmt.Errorf("chartrender: %v", err)
	}
	if r.Caption == "" {
		_, err := r.Out.Write(buf.Bytes())
		return err
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return fmt.Errorf("chartrender: %v", err)
	}
	return png.Encode(r.Out, stampCaption(img, r.Caption))
}

func lineStyle(i int) chart.Style {
	return chart.Style{
		StrokeWidth: 2,
		StrokeColor: chart.GetDefaultColor(i),
	}
}

func stepIndex(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// padSinglePoint widens a one-point series into a flat two-point
// segment; go-chart cannot lay out an axis over an empty x range.
func padSinglePoint(x, y []float64) ([]float64, []float64) {
	if len(x) != 1 {
		return x, y
	}
	return []float64{x[0], x[0] + 1}, []float64{y[0], y[0]}
}

// axisLayout resolves one axis to a range and precomputed tick marks.
// Caller limits pin the bounds exactly; otherwise a linear axis gets
// bounds rounded outward from the data extent via NiceAxisBounds, and
// NiceTicks spans whichever bounds were chosen. Log axes are left to
// go-chart's own decade layout.
func axisLayout(lim *plot.Range, scale string, dataMin, dataMax float64) (chart.Range, []chart.Tick) {
	if scale == "log" {
		if lim == nil {
			return &chart.LogarithmicRange{}, nil
		}
		return &chart.LogarithmicRange{Min: lim.Min, Max: lim.Max}, nil
	}
	min, max := dataMin, dataMax
	if lim != nil {
		min, max = lim.Min, lim.Max
	} else {
		if math.IsInf(min, 0) || math.IsInf(max, 0) {
			return nil, nil
		}
		min, max = NiceAxisBounds(min, max)
	}
	return &chart.ContinuousRange{Min: min, Max: max}, NiceTicks(min, max, 6)
}

func extend(lo, hi float64, vs []float64) (float64, float64) {
	for _, v := range vs {
		if math.IsNaN(v) {
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
