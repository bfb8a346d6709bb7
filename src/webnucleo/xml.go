// Package webnucleo reads webnucleo network-output XML files: per-zone
// scalar properties, per-zone species mass fractions and abundance
// distributions summed over a nucleon number. Zone selection uses
// XPath predicates, the selection language the files were designed
// for. The package implements the dataset and symbolic-name
// collaborator interfaces of src/plot.
package webnucleo

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
)

// Reader implements plot.DataSource. ZoneXPath is an XPath predicate
// appended to the zone selection for every query (for example
// "[position() > last() - 10]"); empty selects all zones.
type Reader struct {
	ZoneXPath string
}

func (r Reader) PropertiesInZones(file string, props []string) (map[string][]float64, error) {
	return PropertiesInZones(file, props, r.ZoneXPath)
}

func (r Reader) MassFractionsInZones(file string, species []string) (map[string][]float64, error) {
	return MassFractionsInZones(file, species, r.ZoneXPath)
}

func (r Reader) AbundancesVsNucleonNumber(file, nucleon, zoneXPath string) ([][]float64, error) {
	if zoneXPath == "" {
		zoneXPath = r.ZoneXPath
	}
	return AbundancesVsNucleonNumber(file, nucleon, zoneXPath)
}

// PropertiesInZones returns the requested properties, one value per
// selected zone in document order. A property is addressed as "name"
// or "name, tag1[, tag2]" matching how the files qualify a property
// with up to two tag attributes. A property absent from the selection
// is an error.
func PropertiesInZones(file string, props []string, zoneXPath string) (map[string][]float64, error) {
	doc, err := parseFile(file)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]float64, len(props))
	for _, prop := range props {
		path, err := propertyPath(zoneXPath, prop)
		if err != nil {
			return nil, err
		}
		nodes, err := xmlquery.QueryAll(doc, path)
		if err != nil {
			return nil, fmt.Errorf("%s: zone selection %q: %v", file, zoneXPath, err)
		}
		if len(nodes) == 0 {
			return nil, fmt.Errorf("%s: property %q not found", file, prop)
		}
		vals := make([]float64, 0, len(nodes))
		for _, n := range nodes {
			v, err := strconv.ParseFloat(strings.TrimSpace(n.InnerText()), 64)
			if err != nil {
				return nil, fmt.Errorf("%s: property %q: %v", file, prop, err)
			}
			vals = append(vals, v)
		}
		out[prop] = vals
	}
	return out, nil
}

// MassFractionsInZones returns the mass fraction of each requested
// species, one value per selected zone in document order. A species
// absent from a zone's mass_fractions block contributes 0.
func MassFractionsInZones(file string, species []string, zoneXPath string) (map[string][]float64, error) {
	doc, err := parseFile(file)
	if err != nil {
		return nil, err
	}
	zones, err := selectZones(doc, file, zoneXPath)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]float64, len(species))
	for _, sp := range species {
		out[sp] = make([]float64, 0, len(zones))
	}
	for _, zone := range zones {
		for _, sp := range species {
			n, err := xmlquery.Query(zone, fmt.Sprintf("mass_fractions/nuclide[@name=%q]/x", sp))
			if err != nil {
				return nil, fmt.Errorf("%s: species %q: %v", file, sp, err)
			}
			if n == nil {
				out[sp] = append(out[sp], 0)
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(n.InnerText()), 64)
			if err != nil {
				return nil, fmt.Errorf("%s: species %q: %v", file, sp, err)
			}
			out[sp] = append(out[sp], v)
		}
	}
	return out, nil
}

// AbundancesVsNucleonNumber sums each selected zone's abundances
// (x divided by mass number) over the given nucleon number: proton
// number "z", neutron number "n" or mass number "a". It returns one
// row per zone; row index i holds the summed abundance at nucleon
// value i, so a row spans 0..max observed value.
func AbundancesVsNucleonNumber(file, nucleon, zoneXPath string) ([][]float64, error) {
	if nucleon != "z" && nucleon != "n" && nucleon != "a" {
		return nil, fmt.Errorf(`nucleon must be "z", "n" or "a", got %q`, nucleon)
	}
	doc, err := parseFile(file)
	if err != nil {
		return nil, err
	}
	zones, err := selectZones(doc, file, zoneXPath)
	if err != nil {
		return nil, err
	}
	rows := make([][]float64, 0, len(zones))
	for _, zone := range zones {
		nuclides, err := xmlquery.QueryAll(zone, "mass_fractions/nuclide")
		if err != nil {
			return nil, fmt.Errorf("%s: %v", file, err)
		}
		max := 0
		type entry struct {
			value int
			a     int
			x     float64
		}
		entries := make([]entry, 0, len(nuclides))
		for _, nd := range nuclides {
			z, err := childInt(nd, "z")
			if err != nil {
				return nil, fmt.Errorf("%s: %v", file, err)
			}
			a, err := childInt(nd, "a")
			if err != nil {
				return nil, fmt.Errorf("%s: %v", file, err)
			}
			x, err := childFloat(nd, "x")
			if err != nil {
				return nil, fmt.Errorf("%s: %v", file, err)
			}
			var v int
			switch nucleon {
			case "z":
				v = z
			case "n":
				v = a - z
			case "a":
				v = a
			}
			if v > max {
				max = v
			}
			entries = append(entries, entry{value: v, a: a, x: x})
		}
		row := make([]float64, max+1)
		for _, e := range entries {
			row[e.value] += e.x / float64(e.a)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// AllPropertiesInZone returns every optional property of exactly one
// selected zone, as raw strings keyed by "name[, tag1[, tag2]]". The
// zone selection must match a single zone.
func AllPropertiesInZone(file, zoneXPath string) (map[string]string, error) {
	doc, err := parseFile(file)
	if err != nil {
		return nil, err
	}
	zones, err := selectZones(doc, file, zoneXPath)
	if err != nil {
		return nil, err
	}
	if len(zones) != 1 {
		return nil, fmt.Errorf("%s: zone selection %q matches %d zones, want exactly 1", file, zoneXPath, len(zones))
	}
	props, err := xmlquery.QueryAll(zones[0], "optional_properties/property")
	if err != nil {
		return nil, fmt.Errorf("%s: %v", file, err)
	}
	out := make(map[string]string, len(props))
	for _, p := range props {
		key := p.SelectAttr("name")
		if t1 := p.SelectAttr("tag1"); t1 != "" {
			key += ", " + t1
		}
		if t2 := p.SelectAttr("tag2"); t2 != "" {
			key += ", " + t2
		}
		out[key] = p.InnerText()
	}
	return out, nil
}

// Nuclide is one entry of a file's nuclear data block.
type Nuclide struct {
	Z int
	A int
	N int
}

// NuclideData returns the file's nuclear data keyed by species name
// (element symbol plus mass number, e.g. "c12"; the bare neutron is
// "n").
func NuclideData(file string) (map[string]Nuclide, error) {
	doc, err := parseFile(file)
	if err != nil {
		return nil, err
	}
	nodes, err := xmlquery.QueryAll(doc, "//nuclear_data/nuclide")
	if err != nil {
		return nil, fmt.Errorf("%s: %v", file, err)
	}
	out := make(map[string]Nuclide, len(nodes))
	for _, nd := range nodes {
		z, err := childInt(nd, "z")
		if err != nil {
			return nil, fmt.Errorf("%s: %v", file, err)
		}
		a, err := childInt(nd, "a")
		if err != nil {
			return nil, fmt.Errorf("%s: %v", file, err)
		}
		name, err := SpeciesName(z, a)
		if err != nil {
			return nil, fmt.Errorf("%s: %v", file, err)
		}
		out[name] = Nuclide{Z: z, A: a, N: a - z}
	}
	return out, nil
}

func parseFile(file string) (*xmlquery.Node, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := xmlquery.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", file, err)
	}
	return doc, nil
}

func selectZones(doc *xmlquery.Node, file, zoneXPath string) ([]*xmlquery.Node, error) {
	zones, err := xmlquery.QueryAll(doc, "//zone"+zoneXPath)
	if err != nil {
		return nil, fmt.Errorf("%s: zone selection %q: %v", file, zoneXPath, err)
	}
	return zones, nil
}

func propertyPath(zoneXPath, prop string) (string, error) {
	parts := strings.Split(prop, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	path := "//zone" + zoneXPath + "/optional_properties/property"
	switch len(parts) {
	case 1:
		path += fmt.Sprintf("[@name=%q]", parts[0])
	case 2:
		path += fmt.Sprintf("[@name=%q and @tag1=%q]", parts[0], parts[1])
	case 3:
		path += fmt.Sprintf("[@name=%q and @tag1=%q and @tag2=%q]", parts[0], parts[1], parts[2])
	default:
		return "", fmt.Errorf("property %q has more than two tags", prop)
	}
	return path, nil
}

func childInt(n *xmlquery.Node, name string) (int, error) {
	c := xmlquery.FindOne(n, name)
	if c == nil {
		return 0, fmt.Errorf("nuclide is missing %q", name)
	}
	v, err := strconv.Atoi(strings.TrimSpace(c.InnerText()))
	if err != nil {
		return 0, fmt.Errorf("nuclide %q: %v", name, err)
	}
	return v, nil
}

func childFloat(n *xmlquery.Node, name string) (float64, error) {
	c := xmlquery.FindOne(n, name)
	if c == nil {
		return 0, fmt.Errorf("nuclide is missing %q", name)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(c.InnerText()), 64)
	if err != nil {
		return 0, fmt.Errorf("nuclide %q: %v", name, err)
	}
	return v, nil
}
