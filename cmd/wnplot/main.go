// Command wnplot renders plots from webnucleo network-output XML
// files: zone properties, species mass fractions and nucleon-number
// abundance distributions, across one or several files.
//
// Examples:
//
//	wnplot -files out.xml -op mass-fractions-vs-property -prop time \
//	    -species n,he4,c12 -symbolic-names -logy -o x.png
//	wnplot -files a.xml,b.xml,c.xml -op mass-fraction-in-files \
//	    -prop time -species o16 -labels run-a,run-b,run-c -o o16.png
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ndavila/wnutils/src/chartrender"
	"github.com/ndavila/wnutils/src/plot"
	"github.com/ndavila/wnutils/src/webnucleo"
)

func main() {
	var (
		filesFlag   = flag.String("files", "", "comma-separated webnucleo XML files; single-file plots use the first")
		op          = flag.String("op", "mass-fractions", "one of: property, property-vs-property, mass-fractions, mass-fractions-vs-property, mass-fraction-in-files, abundances")
		prop        = flag.String("prop", "", "property name (the x axis where the plot has one)")
		prop2       = flag.String("prop2", "", "second property (the y axis of property-vs-property)")
		speciesFlag = flag.String("species", "", "comma-separated species, e.g. n,he4,c12")
		nucleon     = flag.String("nucleon", "a", "nucleon axis for -op abundances: z, n or a")
		zones       = flag.String("zones", "", "XPath predicate selecting zones, e.g. '[position() > last() - 10]'")
		xfactor     = flag.String("xfactor", "", "divide x values by this factor")
		yfactor     = flag.String("yfactor", "", "divide y values by this factor")
		symbolic    = flag.Bool("symbolic-names", false, "label species with formatted names (¹²C) instead of identifiers")
		labelsFlag  = flag.String("labels", "", "comma-separated legend labels, one per series")
		xlabel      = flag.String("xlabel", "", "x axis caption (default computed)")
		ylabel      = flag.String("ylabel", "", "y axis caption (default computed)")
		title       = flag.String("title", "", "chart title")
		xlim        = flag.String("xlim", "", "x axis bounds as min:max")
		ylim        = flag.String("ylim", "", "y axis bounds as min:max")
		logx        = flag.Bool("logx", false, "logarithmic x axis")
		logy        = flag.Bool("logy", false, "logarithmic y axis")
		outPath     = flag.String("o", "plot.png", "output PNG file")
		width       = flag.Int("width", 0, "chart width in pixels (0 = default)")
		height      = flag.Int("height", 0, "chart height in pixels (0 = default)")
		caption     = flag.String("caption", "", "caption stamped under the chart")
		logLevel    = flag.String("loglevel", "warn", "log level: debug, info, warn, error")
	)
	flag.Parse()
	plot.SetLogLevel(*logLevel)

	files := splitList(*filesFlag)
	if len(files) == 0 {
		fatalf("no input files (use -files)")
	}
	species := splitList(*speciesFlag)

	opts, err := buildOptions(*xfactor, *yfactor, *xlim, *ylim, *xlabel, *ylabel, *title, *labelsFlag, *symbolic, *logx, *logy)
	if err != nil {
		fatalf("%v", err)
	}

	out, err := os.Create(*outPath)
	if err != nil {
		fatalf("%v", err)
	}
	defer out.Close()

	p := &plot.Plotter{
		Source:   webnucleo.Reader{ZoneXPath: *zones},
		Names:    webnucleo.Names{},
		Renderer: &chartrender.PNG{Width: *width, Height: *height, Caption: *caption, Out: out},
	}

	switch *op {
	case "property":
		requireOne(files, "property")
		requireProp(*prop)
		err = p.Property(files[0], *prop, opts)
	case "property-vs-property":
		requireOne(files, "property-vs-property")
		requireProp(*prop)
		if *prop2 == "" {
			fatalf("property-vs-property needs -prop2")
		}
		err = p.PropertyVsProperty(files[0], *prop, *prop2, opts)
	case "mass-fractions":
		requireOne(files, "mass-fractions")
		requireSpecies(species)
		err = p.MassFractions(files[0], species, opts)
	case "mass-fractions-vs-property":
		requireOne(files, "mass-fractions-vs-property")
		requireProp(*prop)
		requireSpecies(species)
		err = p.MassFractionsVsProperty(files[0], *prop, species, opts)
	case "mass-fraction-in-files":
		requireProp(*prop)
		if len(species) != 1 {
			fatalf("mass-fraction-in-files plots exactly one species")
		}
		err = p.MassFractionVsPropertyInFiles(files, *prop, species[0], opts)
	case "abundances":
		requireOne(files, "abundances")
		err = p.AbundancesVsNucleonNumber(files[0], *nucleon, *zones, opts)
	default:
		fatalf("unknown -op %q", *op)
	}
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Printf("wrote %s\n", *outPath)
}

func buildOptions(xfactor, yfactor, xlim, ylim, xlabel, ylabel, title, labels string, symbolic, logx, logy bool) (plot.Options, error) {
	var opts plot.Options
	var err error
	if opts.XFactor, err = parseFactor(xfactor); err != nil {
		return opts, fmt.Errorf("-xfactor: %v", err)
	}
	if opts.YFactor, err = parseFactor(yfactor); err != nil {
		return opts, fmt.Errorf("-yfactor: %v", err)
	}
	if opts.XLim, err = parseRange(xlim); err != nil {
		return opts, fmt.Errorf("-xlim: %v", err)
	}
	if opts.YLim, err = parseRange(ylim); err != nil {
		return opts, fmt.Errorf("-ylim: %v", err)
	}
	opts.UseSymbolicNames = symbolic
	opts.XLabel = optString(xlabel)
	opts.YLabel = optString(ylabel)
	opts.Title = title
	opts.LegendLabels = splitList(labels)
	if logx || logy {
		opts.Extra = map[string]string{}
		if logx {
			opts.Extra["xscale"] = "log"
		}
		if logy {
			opts.Extra["yscale"] = "log"
		}
	}
	return opts, nil
}

// splitList splits a comma-separated flag value, trimming blanks. An
// empty value yields nil, which downstream means "not supplied".
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func parseFactor(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// parseRange parses "min:max" axis bounds.
func parseRange(s string) (*plot.Range, error) {
	if s == "" {
		return nil, nil
	}
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf("want min:max, got %q", s)
	}
	min, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return nil, err
	}
	max, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return nil, err
	}
	if max <= min {
		return nil, fmt.Errorf("empty range %q", s)
	}
	return &plot.Range{Min: min, Max: max}, nil
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func requireOne(files []string, op string) {
	if len(files) != 1 {
		fatalf("%s plots a single file, got %d", op, len(files))
	}
}

func requireProp(prop string) {
	if prop == "" {
		fatalf("this operation needs -prop")
	}
}

func requireSpecies(species []string) {
	if len(species) == 0 {
		fatalf("this operation needs -species")
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "wnplot: "+format+"\n", args...)
	os.Exit(1)
}
