package plot

// ResolveLabel decides the display label for one series. Precedence is
// fixed across all plot operations: an explicit override wins, then
// the symbolic lookup when symbolic naming was requested, then the raw
// identifier. A lookup failure (unknown identifier) propagates; it is
// not swallowed into the raw fallback.
func ResolveLabel(id string, override *string, useSymbolic bool, lookup func(string) (string, error)) (string, error) {
	if override != nil {
		return *override, nil
	}
	if useSymbolic {
		return lookup(id)
	}
	return id, nil
}

// mapLookup adapts a batched resolver result to the per-identifier
// lookup ResolveLabel expects. Identifiers missing from the map are
// reported, not defaulted.
func mapLookup(names map[string]string) func(string) (string, error) {
	return func(id string) (string, error) {
		name, ok := names[id]
		if !ok {
			return "", &unknownNameError{id}
		}
		return name, nil
	}
}

type unknownNameError struct {
	id string
}

func (e *unknownNameError) Error() string {
	return "no symbolic name for " + e.id
}
