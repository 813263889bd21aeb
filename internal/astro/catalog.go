package astro

import "strings"

// CatalogEntry is a named fixed source with J2000 coordinates.
type CatalogEntry struct {
	Name    string   // Canonical name (e.g., "Cyg A", "Vega")
	Aliases []string // Alternative names (e.g., "Cygnus A", "3C 405")
	RAdeg   float64
	DecDeg  float64
}

// LookupSource resolves a source name against the built-in catalog.
// Matching is case-insensitive and tolerant of extra whitespace.
func LookupSource(name string) (Fixed, bool) {
	entry, ok := catalogByName[normalizeName(name)]
	if !ok {
		return Fixed{}, false
	}
	return Fixed{
		Name:  entry.Name,
		Coord: Equatorial{RAdeg: entry.RAdeg, DecDeg: entry.DecDeg},
	}, true
}

// CatalogNames lists the canonical names of all catalog sources.
func CatalogNames() []string {
	names := make([]string, len(catalog))
	for i, e := range catalog {
		names[i] = e.Name
	}
	return names
}

// catalog holds the built-in fixed sources: the strong low-frequency
// radio sources first (the usual calibrators for transit observations),
// then bright optical stars.
var catalog = []CatalogEntry{
	// A-team radio sources
	{Name: "Cyg A", Aliases: []string{"Cygnus A", "3C 405"}, RAdeg: 299.868, DecDeg: 40.734},
	{Name: "Cas A", Aliases: []string{"Cassiopeia A", "3C 461"}, RAdeg: 350.850, DecDeg: 58.815},
	{Name: "Tau A", Aliases: []string{"Taurus A", "Crab", "3C 144"}, RAdeg: 83.633, DecDeg: 22.015},
	{Name: "Vir A", Aliases: []string{"Virgo A", "M87", "3C 274"}, RAdeg: 187.706, DecDeg: 12.391},
	{Name: "Her A", Aliases: []string{"Hercules A", "3C 348"}, RAdeg: 252.784, DecDeg: 4.993},
	{Name: "Hya A", Aliases: []string{"Hydra A", "3C 218"}, RAdeg: 139.524, DecDeg: -12.096},

	// Other common calibrators
	{Name: "3C 123", RAdeg: 69.268, DecDeg: 29.670},
	{Name: "3C 196", RAdeg: 123.400, DecDeg: 48.217},
	{Name: "3C 273", RAdeg: 187.278, DecDeg: 2.052},
	{Name: "3C 295", RAdeg: 212.836, DecDeg: 52.203},
	{Name: "3C 380", RAdeg: 277.382, DecDeg: 48.746},

	// Bright stars (J2000, Yale Bright Star Catalog)
	{Name: "Sirius", RAdeg: 101.287, DecDeg: -16.716},
	{Name: "Canopus", RAdeg: 95.988, DecDeg: -52.696},
	{Name: "Arcturus", RAdeg: 213.915, DecDeg: 19.182},
	{Name: "Vega", RAdeg: 279.235, DecDeg: 38.784},
	{Name: "Capella", RAdeg: 79.172, DecDeg: 45.998},
	{Name: "Rigel", RAdeg: 78.634, DecDeg: -8.202},
	{Name: "Procyon", RAdeg: 114.826, DecDeg: 5.225},
	{Name: "Achernar", RAdeg: 24.429, DecDeg: -57.237},
	{Name: "Betelgeuse", RAdeg: 88.793, DecDeg: 7.407},
	{Name: "Altair", RAdeg: 297.696, DecDeg: 8.868},
	{Name: "Aldebaran", RAdeg: 68.980, DecDeg: 16.509},
	{Name: "Antares", RAdeg: 247.352, DecDeg: -26.432},
	{Name: "Spica", RAdeg: 201.298, DecDeg: -11.161},
	{Name: "Pollux", RAdeg: 116.329, DecDeg: 28.026},
	{Name: "Fomalhaut", RAdeg: 344.413, DecDeg: -29.622},
	{Name: "Deneb", RAdeg: 310.358, DecDeg: 45.280},
	{Name: "Regulus", RAdeg: 152.093, DecDeg: 11.967},
	{Name: "Castor", RAdeg: 113.650, DecDeg: 31.889},
	{Name: "Polaris", RAdeg: 37.954, DecDeg: 89.264},
}

// catalogByName indexes the catalog by normalized name and alias.
var catalogByName = func() map[string]CatalogEntry {
	m := make(map[string]CatalogEntry, len(catalog)*2)
	for _, e := range catalog {
		m[normalizeName(e.Name)] = e
		for _, alias := range e.Aliases {
			m[normalizeName(alias)] = e
		}
	}
	return m
}()

// normalizeName lowercases a name and collapses interior whitespace.
func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
