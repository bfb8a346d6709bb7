package plot

import (
	"errors"
	"fmt"
)

// Every operation below is one linear pipeline: validate the overlay,
// pull data through the DataSource, scale and label each series,
// compute default captions, render. Nothing is retried and nothing is
// cached; a failure anywhere aborts the call before the renderer runs.

// Property plots a single zone property against zone step. The
// property values land on the y axis, so YFactor scales them; when
// YFactor is unset, XFactor is accepted as an alias for callers used
// to scaling this plot's values through an x factor.
func (p *Plotter) Property(file, prop string, opts Options) error {
	if err := validateOverlayLabels(1, opts.LegendLabels); err != nil {
		return err
	}
	props, err := p.Source.PropertiesInZones(file, []string{prop})
	if err != nil {
		return err
	}
	raw, err := seriesFrom(props, file, prop)
	if err != nil {
		return err
	}
	factor := opts.YFactor
	if factor == nil && opts.XFactor != nil {
		factor = opts.XFactor
		Debugf("property %q: scaling values by XFactor", prop)
	}
	y, err := Scale(raw, factor)
	if err != nil {
		return err
	}
	label, err := ResolveLabel(prop, overrideAt(opts.LegendLabels, 0), false, nil)
	if err != nil {
		return err
	}
	fig := figureFrom(opts, []Series{{Label: label, Y: y}})
	fig.XLabel = stringOr(opts.XLabel, "step")
	fig.YLabel = stringOr(opts.YLabel, prop)
	Debugf("property %q: %d zones from %s", prop, len(y), file)
	return p.Renderer.Render(fig)
}

// PropertyVsProperty plots one zone property against another. Both
// properties are fetched from the dataset in a single call. XFactor
// scales xProp, YFactor scales yProp.
func (p *Plotter) PropertyVsProperty(file, xProp, yProp string, opts Options) error {
	if err := validateOverlayLabels(1, opts.LegendLabels); err != nil {
		return err
	}
	props, err := p.Source.PropertiesInZones(file, []string{xProp, yProp})
	if err != nil {
		return err
	}
	rawX, err := seriesFrom(props, file, xProp)
	if err != nil {
		return err
	}
	rawY, err := seriesFrom(props, file, yProp)
	if err != nil {
		return err
	}
	x, err := Scale(rawX, opts.XFactor)
	if err != nil {
		return err
	}
	y, err := Scale(rawY, opts.YFactor)
	if err != nil {
		return err
	}
	if err := checkSeriesLen(file, yProp, len(y), len(x)); err != nil {
		return err
	}
	label, err := ResolveLabel(yProp, overrideAt(opts.LegendLabels, 0), false, nil)
	if err != nil {
		return err
	}
	fig := figureFrom(opts, []Series{{Label: label, X: x, Y: y}})
	fig.XLabel = stringOr(opts.XLabel, xProp)
	fig.YLabel = stringOr(opts.YLabel, yProp)
	return p.Renderer.Render(fig)
}

// MassFractions plots the mass fraction of each requested species
// against zone step, one series per species in request order.
func (p *Plotter) MassFractions(file string, species []string, opts Options) error {
	if err := validateOverlayLabels(len(species), opts.LegendLabels); err != nil {
		return err
	}
	m, err := p.Source.MassFractionsInZones(file, species)
	if err != nil {
		return err
	}
	names, err := p.symbolicNames(species, opts.UseSymbolicNames)
	if err != nil {
		return err
	}
	series := make([]Series, 0, len(species))
	for i, sp := range species {
		raw, err := seriesFrom(m, file, sp)
		if err != nil {
			return err
		}
		y, err := Scale(raw, opts.YFactor)
		if err != nil {
			return err
		}
		label, err := ResolveLabel(sp, overrideAt(opts.LegendLabels, i), opts.UseSymbolicNames, mapLookup(names))
		if err != nil {
			return err
		}
		series = append(series, Series{Label: label, Y: y})
	}
	fig := figureFrom(opts, series)
	fig.XLabel = stringOr(opts.XLabel, "step")
	fig.YLabel, err = massFractionCaption(species, names, opts)
	if err != nil {
		return err
	}
	Debugf("mass fractions: %d series from %s", len(series), file)
	return p.Renderer.Render(fig)
}

// MassFractionsVsProperty plots the mass fraction of each requested
// species against a zone property, one series per species in request
// order. XFactor scales the property, YFactor the mass fractions.
func (p *Plotter) MassFractionsVsProperty(file, prop string, species []string, opts Options) error {
	if err := validateOverlayLabels(len(species), opts.LegendLabels); err != nil {
		return err
	}
	props, err := p.Source.PropertiesInZones(file, []string{prop})
	if err != nil {
		return err
	}
	rawX, err := seriesFrom(props, file, prop)
	if err != nil {
		return err
	}
	x, err := Scale(rawX, opts.XFactor)
	if err != nil {
		return err
	}
	m, err := p.Source.MassFractionsInZones(file, species)
	if err != nil {
		return err
	}
	names, err := p.symbolicNames(species, opts.UseSymbolicNames)
	if err != nil {
		return err
	}
	series := make([]Series, 0, len(species))
	for i, sp := range species {
		raw, err := seriesFrom(m, file, sp)
		if err != nil {
			return err
		}
		if err := checkSeriesLen(file, sp, len(raw), len(x)); err != nil {
			return err
		}
		y, err := Scale(raw, opts.YFactor)
		if err != nil {
			return err
		}
		label, err := ResolveLabel(sp, overrideAt(opts.LegendLabels, i), opts.UseSymbolicNames, mapLookup(names))
		if err != nil {
			return err
		}
		series = append(series, Series{Label: label, X: x, Y: y})
	}
	fig := figureFrom(opts, series)
	fig.XLabel = stringOr(opts.XLabel, prop)
	fig.YLabel, err = massFractionCaption(species, names, opts)
	if err != nil {
		return err
	}
	Debugf("mass fractions vs %q: %d series from %s", prop, len(series), file)
	return p.Renderer.Render(fig)
}

// MassFractionVsPropertyInFiles overlays one species' mass fraction
// against a property across several datasets, one series per file in
// the caller's file order. Files are read sequentially; a failure on
// any file aborts the whole overlay before anything is rendered.
// LegendLabels, when supplied, must have one entry per file and is
// checked before the first dataset is touched.
func (p *Plotter) MassFractionVsPropertyInFiles(files []string, prop, species string, opts Options) error {
	if err := validateOverlayLabels(len(files), opts.LegendLabels); err != nil {
		return err
	}
	names, err := p.symbolicNames([]string{species}, opts.UseSymbolicNames)
	if err != nil {
		return err
	}
	series := make([]Series, 0, len(files))
	for i, file := range files {
		props, err := p.Source.PropertiesInZones(file, []string{prop})
		if err != nil {
			return err
		}
		rawX, err := seriesFrom(props, file, prop)
		if err != nil {
			return err
		}
		x, err := Scale(rawX, opts.XFactor)
		if err != nil {
			return err
		}
		m, err := p.Source.MassFractionsInZones(file, []string{species})
		if err != nil {
			return err
		}
		rawY, err := seriesFrom(m, file, species)
		if err != nil {
			return err
		}
		if err := checkSeriesLen(file, species, len(rawY), len(x)); err != nil {
			return err
		}
		y, err := Scale(rawY, opts.YFactor)
		if err != nil {
			return err
		}
		label, err := ResolveLabel(file, overrideAt(opts.LegendLabels, i), false, nil)
		if err != nil {
			return err
		}
		series = append(series, Series{Label: label, X: x, Y: y})
	}
	fig := figureFrom(opts, series)
	fig.XLabel = stringOr(opts.XLabel, prop)
	fig.YLabel, err = massFractionCaption([]string{species}, names, opts)
	if err != nil {
		return err
	}
	Debugf("%q vs %q: %d files overlaid", species, prop, len(series))
	return p.Renderer.Render(fig)
}

// AbundancesVsNucleonNumber plots abundances summed over a nucleon
// number ("z", "n" or "a") against that nucleon number. The dataset
// returns one distribution per selected zone but only the FIRST
// selected zone is drawn; narrow zoneXPath to pick a different zone.
// This mirrors the historical behavior and is a known limitation.
func (p *Plotter) AbundancesVsNucleonNumber(file, nucleon, zoneXPath string, opts Options) error {
	if err := validateOverlayLabels(1, opts.LegendLabels); err != nil {
		return err
	}
	rows, err := p.Source.AbundancesVsNucleonNumber(file, nucleon, zoneXPath)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("%s: no zones selected", file)
	}
	if len(rows) > 1 {
		Warnf("%s: %d zones selected, plotting the first only", file, len(rows))
	}
	y, err := Scale(rows[0], opts.YFactor)
	if err != nil {
		return err
	}
	label, err := ResolveLabel(nucleon, overrideAt(opts.LegendLabels, 0), false, nil)
	if err != nil {
		return err
	}
	fig := figureFrom(opts, []Series{{Label: label, Y: y}})
	fig.XLabel = stringOr(opts.XLabel, nucleon)
	fig.YLabel = stringOr(opts.YLabel, "Abundance")
	return p.Renderer.Render(fig)
}

// figureFrom carries the pass-through parts of Options into a Figure
// and applies the legend rule: a legend is drawn when the overlay has
// more than one series, or when the caller supplied explicit labels.
func figureFrom(opts Options, series []Series) Figure {
	return Figure{
		Title:  opts.Title,
		Series: series,
		XLim:   opts.XLim,
		YLim:   opts.YLim,
		Extra:  opts.Extra,
		Legend: len(series) > 1 || opts.LegendLabels != nil,
	}
}

// massFractionCaption computes the default y caption for mass-fraction
// plots: a generic caption for a multi-species overlay, a per-species
// one when exactly one species is drawn. Legend overrides do not leak
// into the axis caption; only symbolic naming does.
func massFractionCaption(species []string, names map[string]string, opts Options) (string, error) {
	if opts.YLabel != nil {
		return *opts.YLabel, nil
	}
	if len(species) != 1 {
		return "Mass Fraction", nil
	}
	label, err := ResolveLabel(species[0], nil, opts.UseSymbolicNames, mapLookup(names))
	if err != nil {
		return "", err
	}
	return "X(" + label + ")", nil
}

func (p *Plotter) symbolicNames(species []string, use bool) (map[string]string, error) {
	if !use {
		return nil, nil
	}
	if p.Names == nil {
		return nil, errors.New("symbolic names requested but no name resolver is configured")
	}
	return p.Names.SymbolicNames(species)
}

func seriesFrom(m map[string][]float64, file, name string) ([]float64, error) {
	v, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("%s: no data returned for %q", file, name)
	}
	return v, nil
}

func checkSeriesLen(file, name string, got, want int) error {
	if got != want {
		return fmt.Errorf("%s: series %q has %d values for %d zones", file, name, got, want)
	}
	return nil
}

func stringOr(p *string, def string) string {
	if p != nil {
		return *p
	}
	return def
}
