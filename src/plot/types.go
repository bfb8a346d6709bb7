// Package plot assembles named numeric series from a webnucleo-style
// dataset and hands them, together with axis and legend metadata, to a
// rendering backend. It contains the branching logic of the plotting
// layer (unit scaling, label precedence, overlay validation, default
// axis captions); reading datasets and drawing pixels are collaborator
// concerns behind the DataSource and Renderer interfaces.
package plot

// DataSource is the dataset collaborator. Implementations resolve a
// dataset reference (typically a file path) and return one ordered
// value per zone for each requested name. Zone order must be stable
// across calls against the same dataset.
type DataSource interface {
	// PropertiesInZones returns the named scalar properties, one value
	// per zone, for every requested property in a single call.
	PropertiesInZones(file string, props []string) (map[string][]float64, error)
	// MassFractionsInZones returns per-zone mass fractions for every
	// requested species in a single call.
	MassFractionsInZones(file string, species []string) (map[string][]float64, error)
	// AbundancesVsNucleonNumber returns abundances summed over the
	// given nucleon number ("z", "n" or "a"), one row per selected
	// zone. zoneXPath is an optional zone-selection expression; empty
	// selects all zones.
	AbundancesVsNucleonNumber(file, nucleon, zoneXPath string) ([][]float64, error)
}

// NameResolver is the symbolic-name collaborator: it maps raw species
// identifiers (e.g. "c12") to display names. Unknown identifiers are
// an error, not an empty string.
type NameResolver interface {
	SymbolicNames(species []string) (map[string]string, error)
}

// Series is one assembled line of a figure. A nil X means the values
// are drawn against their zone step index.
type Series struct {
	Label string
	X     []float64
	Y     []float64
}

// Range is a closed axis interval passed through to the renderer.
type Range struct {
	Min float64
	Max float64
}

// Figure is the fully assembled input to a Renderer: the overlay set
// plus all presentation metadata. By the time a Figure reaches the
// renderer every series has been scaled and labeled and the overlay
// has been validated.
type Figure struct {
	Title  string
	Series []Series
	XLabel string
	YLabel string
	XLim   *Range
	YLim   *Range
	// Legend reports whether the renderer should draw a legend.
	Legend bool
	// Extra carries caller options this package does not recognize,
	// forwarded verbatim. The renderer decides what to reject.
	Extra map[string]string
}

// Renderer is the drawing collaborator.
type Renderer interface {
	Render(fig Figure) error
}

// Options configures a single plot call. The zero value asks for all
// defaults. Options values are never retained or mutated by this
// package; computed defaults go into the Figure, not back into the
// caller's Options.
type Options struct {
	// XFactor and YFactor are unit-scale divisors applied once to the
	// x and y series. nil leaves the series unchanged; zero is an
	// error (ErrZeroFactor) rather than silent Inf propagation.
	XFactor *float64
	YFactor *float64

	// UseSymbolicNames selects resolver-formatted species names for
	// series labels and axis captions instead of raw identifiers.
	UseSymbolicNames bool

	// XLabel and YLabel override the computed default axis captions.
	XLabel *string
	YLabel *string

	// XLim and YLim are passed through to the renderer verbatim.
	XLim *Range
	YLim *Range

	// LegendLabels overrides per-series labels. When supplied its
	// length must equal the number of series in the overlay; this is
	// checked before any dataset access.
	LegendLabels []string

	Title string

	// Extra is forwarded to the renderer unchanged.
	Extra map[string]string
}

// Plotter binds the three collaborators and exposes the plot
// operations. All state is per-call; a Plotter may be reused and is
// safe for concurrent use if its collaborators are.
type Plotter struct {
	Source   DataSource
	Names    NameResolver
	Renderer Renderer
}
