package webnucleo

import (
	"fmt"
	"strconv"
	"strings"
)

// Names implements plot.NameResolver by parsing species identifiers,
// no dataset required.
type Names struct{}

func (Names) SymbolicNames(species []string) (map[string]string, error) {
	out := make(map[string]string, len(species))
	for _, sp := range species {
		name, err := SymbolicName(sp)
		if err != nil {
			return nil, err
		}
		out[sp] = name
	}
	return out, nil
}

// SymbolicName formats a species identifier such as "c12" as a
// display name with a superscripted mass number, "¹²C". The bare
// neutron "n" is returned unchanged. Identifiers that do not parse as
// element symbol plus mass number, or that name an unknown element,
// are an error.
func SymbolicName(id string) (string, error) {
	if id == "n" {
		return "n", nil
	}
	i := 0
	for i < len(id) && (id[i] < '0' || id[i] > '9') {
		i++
	}
	elem, mass := id[:i], id[i:]
	if elem == "" || mass == "" {
		return "", fmt.Errorf("species %q is not element symbol plus mass number", id)
	}
	z, ok := zBySymbol[strings.ToLower(elem)]
	if !ok {
		return "", fmt.Errorf("species %q names an unknown element", id)
	}
	if _, err := strconv.Atoi(mass); err != nil {
		return "", fmt.Errorf("species %q has a malformed mass number", id)
	}
	return superscript(mass) + elementSymbols[z], nil
}

// SpeciesName is the inverse direction: the canonical identifier for
// a nuclide with the given proton and mass numbers ("c12"; the bare
// neutron is "n").
func SpeciesName(z, a int) (string, error) {
	if z == 0 && a == 1 {
		return "n", nil
	}
	if z < 1 || z >= len(elementSymbols) {
		return "", fmt.Errorf("no element with z=%d", z)
	}
	return strings.ToLower(elementSymbols[z]) + strconv.Itoa(a), nil
}

var superscriptDigits = [...]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}

func superscript(digits string) string {
	var b strings.Builder
	for _, d := range digits {
		b.WriteRune(superscriptDigits[d-'0'])
	}
	return b.String()
}

// elementSymbols is indexed by proton number; index 0 is the neutron.
var elementSymbols = [...]string{
	"n",
	"H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca",
	"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr", "Rb", "Sr", "Y", "Zr",
	"Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn",
	"Sb", "Te", "I", "Xe", "Cs", "Ba", "La", "Ce", "Pr", "Nd",
	"Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb",
	"Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn", "Fr", "Ra", "Ac", "Th",
	"Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm",
	"Md", "No", "Lr", "Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds",
	"Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

var zBySymbol = func() map[string]int {
	m := make(map[string]int, len(elementSymbols))
	for z := 1; z < len(elementSymbols); z++ {
		m[strings.ToLower(elementSymbols[z])] = z
	}
	return m
}()
