package chartrender

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/ndavila/wnutils/src/plot"
)

var _ plot.Renderer = (*PNG)(nil)

func twoSeriesFigure() plot.Figure {
	return plot.Figure{
		Title: "test",
		Series: []plot.Series{
			{Label: "c12", X: []float64{0, 1, 2}, Y: []float64{0.1, 0.2, 0.3}},
			{Label: "o16", X: []float64{0, 1, 2}, Y: []float64{0.5, 0.4, 0.3}},
		},
		XLabel: "time",
		YLabel: "Mass Fraction",
		Legend: true,
	}
}

func TestRenderWritesPNG(t *testing.T) {
	var buf bytes.Buffer
	r := &PNG{Out: &buf}
	if err := r.Render(twoSeriesFigure()); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Fatal("output is not a PNG")
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	w, h := ClampDimensions(0, 0)
	if img.Bounds().Dx() != w || img.Bounds().Dy() != h {
		t.Fatalf("unexpected dimensions %v", img.Bounds())
	}
}

func TestRenderIndexBasedSeries(t *testing.T) {
	var buf bytes.Buffer
	r := &PNG{Out: &buf}
	fig := plot.Figure{
		Series: []plot.Series{{Label: "t9", Y: []float64{9, 6, 3}}},
		XLabel: "step",
		YLabel: "t9",
	}
	if err := r.Render(fig); err != nil {
		t.Fatalf("render: %v", err)
	}
}

func TestRenderSinglePointSeries(t *testing.T) {
	var buf bytes.Buffer
	r := &PNG{Out: &buf}
	fig := plot.Figure{
		Series: []plot.Series{{Label: "one", X: []float64{5}, Y: []float64{1}}},
	}
	if err := r.Render(fig); err != nil {
		t.Fatalf("single-point series must render: %v", err)
	}
}

func TestRenderCaption(t *testing.T) {
	var buf bytes.Buffer
	r := &PNG{Out: &buf, Caption: "run1.xml"}
	if err := r.Render(twoSeriesFigure()); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Fatalf("captioned output is not a decodable PNG: %v", err)
	}
}

func TestRenderRejectsUnknownOption(t *testing.T) {
	var buf bytes.Buffer
	r := &PNG{Out: &buf}
	fig := twoSeriesFigure()
	fig.Extra = map[string]string{"zscale": "log"}
	err := r.Render(fig)
	if err == nil || !strings.Contains(err.Error(), "zscale") {
		t.Fatalf("expected unknown-option error, got %v", err)
	}
}

func TestRenderLogScale(t *testing.T) {
	var buf bytes.Buffer
	r := &PNG{Out: &buf}
	fig := plot.Figure{
		Series: []plot.Series{{Label: "c12", X: []float64{1, 2, 3}, Y: []float64{1e-6, 1e-3, 0.1}}},
		Extra:  map[string]string{"yscale": "log"},
	}
	if err := r.Render(fig); err != nil {
		t.Fatalf("log-scale render: %v", err)
	}
}

func TestRenderNoSeries(t *testing.T) {
	var buf bytes.Buffer
	r := &PNG{Out: &buf}
	if err := r.Render(plot.Figure{}); err == nil {
		t.Fatal("empty figure must be rejected")
	}
}

func TestAxisLayoutNiceBoundsFromData(t *testing.T) {
	r, ticks := axisLayout(nil, "", 12, 87)
	cr, ok := r.(*chart.ContinuousRange)
	if !ok {
		t.Fatalf("expected continuous range, got %T", r)
	}
	wantMin, wantMax := NiceAxisBounds(12, 87)
	if cr.Min != wantMin || cr.Max != wantMax {
		t.Fatalf("bounds [%g,%g] not the nice bounds [%g,%g]", cr.Min, cr.Max, wantMin, wantMax)
	}
	if cr.Min > 12 || cr.Max < 87 {
		t.Fatalf("bounds [%g,%g] do not contain the data", cr.Min, cr.Max)
	}
	if len(ticks) < 2 {
		t.Fatalf("too few ticks: %v", ticks)
	}
	if ticks[0].Value > cr.Min || ticks[len(ticks)-1].Value < cr.Max {
		t.Fatalf("ticks %v do not span bounds [%g,%g]", ticks, cr.Min, cr.Max)
	}
}

func TestAxisLayoutCallerLimitsWin(t *testing.T) {
	r, ticks := axisLayout(&plot.Range{Min: 0, Max: 10}, "", -5, 500)
	cr, ok := r.(*chart.ContinuousRange)
	if !ok {
		t.Fatalf("expected continuous range, got %T", r)
	}
	if cr.Min != 0 || cr.Max != 10 {
		t.Fatalf("caller limits not honored: [%g,%g]", cr.Min, cr.Max)
	}
	if ticks == nil {
		t.Fatal("pinned linear axis should still get ticks")
	}
}

func TestAxisLayoutLog(t *testing.T) {
	r, ticks := axisLayout(nil, "log", 1, 100)
	if _, ok := r.(*chart.LogarithmicRange); !ok {
		t.Fatalf("expected logarithmic range, got %T", r)
	}
	if ticks != nil {
		t.Fatalf("log axis must keep go-chart tick layout, got %v", ticks)
	}
}

func TestRenderNoWriter(t *testing.T) {
	r := &PNG{}
	if err := r.Render(twoSeriesFigure()); err == nil {
		t.Fatal("missing writer must be rejected")
	}
}
