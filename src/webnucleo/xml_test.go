package webnucleo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ndavila/wnutils/src/plot"
)

var _ plot.DataSource = Reader{}
var _ plot.NameResolver = Names{}

const fixture = `<?xml version="1.0" encoding="UTF-8"?>
<libnucnet_input>
  <nuclear_data>
    <nuclide><z>2</z><a>4</a></nuclide>
    <nuclide><z>6</z><a>12</a></nuclide>
  </nuclear_data>
  <zone_data>
    <zone>
      <optional_properties>
        <property name="time">0.0</property>
        <property name="t9">9.0</property>
        <property name="exposure" tag1="n">1.5</property>
      </optional_properties>
      <mass_fractions>
        <nuclide name="he4"><z>2</z><a>4</a><x>0.4</x></nuclide>
        <nuclide name="c12"><z>6</z><a>12</a><x>0.6</x></nuclide>
      </mass_fractions>
    </zone>
    <zone>
      <optional_properties>
        <property name="time">1.0</property>
        <property name="t9">6.0</property>
        <property name="exposure" tag1="n">2.5</property>
      </optional_properties>
      <mass_fractions>
        <nuclide name="he4"><z>2</z><a>4</a><x>0.3</x></nuclide>
        <nuclide name="c12"><z>6</z><a>12</a><x>0.7</x></nuclide>
      </mass_fractions>
    </zone>
    <zone>
      <optional_properties>
        <property name="time">2.0</property>
        <property name="t9">3.0</property>
        <property name="exposure" tag1="n">3.5</property>
      </optional_properties>
      <mass_fractions>
        <nuclide name="he4"><z>2</z><a>4</a><x>1.0</x></nuclide>
      </mass_fractions>
    </zone>
  </zone_data>
</libnucnet_input>
`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out.xml")
	if err := os.WriteFile(path, []byte(fixture), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestPropertiesInZones(t *testing.T) {
	file := writeFixture(t)
	props, err := PropertiesInZones(file, []string{"time", "t9"}, "")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	wantTime := []float64{0, 1, 2}
	for i, v := range wantTime {
		if props["time"][i] != v {
			t.Fatalf("time[%d] = %g want %g", i, props["time"][i], v)
		}
	}
	if props["t9"][0] != 9 || props["t9"][2] != 3 {
		t.Fatalf("t9 wrong: %v", props["t9"])
	}
}

func TestPropertiesWithTag(t *testing.T) {
	file := writeFixture(t)
	props, err := PropertiesInZones(file, []string{"exposure, n"}, "")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	vals := props["exposure, n"]
	if len(vals) != 3 || vals[1] != 2.5 {
		t.Fatalf("tagged property wrong: %v", vals)
	}
}

func TestPropertyNotFound(t *testing.T) {
	file := writeFixture(t)
	_, err := PropertiesInZones(file, []string{"rho"}, "")
	if err == nil || !strings.Contains(err.Error(), `"rho"`) {
		t.Fatalf("expected not-found error naming the property, got %v", err)
	}
}

func TestPropertyTooManyTags(t *testing.T) {
	file := writeFixture(t)
	if _, err := PropertiesInZones(file, []string{"a, b, c, d"}, ""); err == nil {
		t.Fatal("expected error for more than two tags")
	}
}

func TestMassFractionsAbsentSpeciesIsZero(t *testing.T) {
	file := writeFixture(t)
	m, err := MassFractionsInZones(file, []string{"he4", "c12"}, "")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if m["he4"][2] != 1.0 {
		t.Fatalf("he4 wrong: %v", m["he4"])
	}
	// c12 vanishes from the last zone
	want := []float64{0.6, 0.7, 0}
	for i, v := range want {
		if m["c12"][i] != v {
			t.Fatalf("c12[%d] = %g want %g", i, m["c12"][i], v)
		}
	}
}

func TestZoneSelection(t *testing.T) {
	file := writeFixture(t)
	props, err := PropertiesInZones(file, []string{"time"}, "[position() > 1]")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(props["time"]) != 2 || props["time"][0] != 1 {
		t.Fatalf("zone selection wrong: %v", props["time"])
	}
	m, err := MassFractionsInZones(file, []string{"c12"}, "[last()]")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(m["c12"]) != 1 || m["c12"][0] != 0 {
		t.Fatalf("last-zone selection wrong: %v", m["c12"])
	}
}

func TestAbundancesVsNucleonNumber(t *testing.T) {
	file := writeFixture(t)
	rows, err := AbundancesVsNucleonNumber(file, "z", "")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected one row per zone, got %d", len(rows))
	}
	first := rows[0]
	if len(first) != 7 {
		t.Fatalf("row should span z=0..6, got len %d", len(first))
	}
	// he4: 0.4/4 at z=2; c12: 0.6/12 at z=6
	if first[2] != 0.1 || first[6] != 0.05 {
		t.Fatalf("abundances wrong: %v", first)
	}
	// last zone has only he4
	if rows[2][2] != 0.25 || len(rows[2]) != 3 {
		t.Fatalf("last zone wrong: %v", rows[2])
	}
}

func TestAbundancesNucleonValidation(t *testing.T) {
	file := writeFixture(t)
	if _, err := AbundancesVsNucleonNumber(file, "q", ""); err == nil {
		t.Fatal("expected error for bad nucleon axis")
	}
}

func TestAllPropertiesInZone(t *testing.T) {
	file := writeFixture(t)
	props, err := AllPropertiesInZone(file, "[1]")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if props["time"] != "0.0" {
		t.Fatalf("time wrong: %q", props["time"])
	}
	if props["exposure, n"] != "1.5" {
		t.Fatalf("tagged key wrong: %v", props)
	}
	if _, err := AllPropertiesInZone(file, ""); err == nil {
		t.Fatal("multi-zone selection must be rejected")
	}
}

func TestNuclideData(t *testing.T) {
	file := writeFixture(t)
	data, err := NuclideData(file)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	c12, ok := data["c12"]
	if !ok {
		t.Fatalf("c12 missing: %v", data)
	}
	if c12.Z != 6 || c12.A != 12 || c12.N != 6 {
		t.Fatalf("c12 wrong: %+v", c12)
	}
}

func TestReaderZoneXPath(t *testing.T) {
	file := writeFixture(t)
	r := Reader{ZoneXPath: "[position() > 2]"}
	props, err := r.PropertiesInZones(file, []string{"time"})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(props["time"]) != 1 || props["time"][0] != 2 {
		t.Fatalf("reader zone scope ignored: %v", props["time"])
	}
}

func TestBadZoneXPath(t *testing.T) {
	file := writeFixture(t)
	if _, err := PropertiesInZones(file, []string{"time"}, "[position("); err == nil {
		t.Fatal("expected error for malformed zone selection")
	}
}

func TestMissingFile(t *testing.T) {
	if _, err := PropertiesInZones("no-such-file.xml", []string{"time"}, ""); err == nil {
		t.Fatal("expected error for missing file")
	}
}
