// Package catalog holds the content the offline generator draws from:
// theaters with their coordinate bounds, faction sets, and narrative templates.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yaml
var defaultCatalogYAML []byte

// GlobalRegion is the entry used when a requested region is unknown.
const GlobalRegion = "Global"

// TemplateKind identifies a narrative template family.
type TemplateKind string

const (
	KindBattle        TemplateKind = "battle"
	KindCovert        TemplateKind = "covert"
	KindDiplomatic    TemplateKind = "diplomatic"
	KindTechnological TemplateKind = "technological"
	KindUprising      TemplateKind = "uprising"
)

// UsesCodeName reports whether titles of this kind embed a generated code
// instead of the location name.
func (k TemplateKind) UsesCodeName() bool {
	return k == KindCovert || k == KindTechnological
}

// RegionEntry bounds a theater and lists its named locations.
type RegionEntry struct {
	LatRange  [2]float64 `yaml:"lat_range"`
	LngRange  [2]float64 `yaml:"lng_range"`
	Locations []string   `yaml:"locations"`
}

// Template supplies title prefixes and description patterns for one kind.
// Descriptions may reference {actorA}, {actorB} and {location}.
type Template struct {
	Kind          TemplateKind `yaml:"kind"`
	TitlePrefixes []string     `yaml:"title_prefixes"`
	Descriptions  []string     `yaml:"descriptions"`
}

// Describe renders description pattern i for the given actors and location.
func (t Template) Describe(i int, actorA, actorB, location string) string {
	r := strings.NewReplacer("{actorA}", actorA, "{actorB}", actorB, "{location}", location)
	return r.Replace(t.Descriptions[i])
}

// Catalog is the complete content pack.
type Catalog struct {
	Months      []string               `yaml:"months"`
	Regions     map[string]RegionEntry `yaml:"regions"`
	FactionSets [][3]string            `yaml:"faction_sets"`
	Templates   []Template             `yaml:"templates"`
}

// Region resolves name to its entry, falling back to the Global entry.
func (c *Catalog) Region(name string) RegionEntry {
	if entry, ok := c.Regions[name]; ok {
		return entry
	}
	return c.Regions[GlobalRegion]
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalogYAML)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}

// Load reads a catalog from a YAML file. An empty path yields the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if errs := c.Validate(); len(errs) > 0 {
		msg := fmt.Sprintf("catalog validation failed (%d errors):", len(errs))
		for _, e := range errs {
			msg += "\n  - " + e.Error()
		}
		return nil, fmt.Errorf("%s", msg)
	}
	return &c, nil
}

// Validate checks that every draw the generator makes has something to draw from.
func (c *Catalog) Validate() []error {
	var errs []error

	if len(c.Months) == 0 {
		errs = append(errs, fmt.Errorf("months must not be empty"))
	}
	if _, ok := c.Regions[GlobalRegion]; !ok {
		errs = append(errs, fmt.Errorf("regions must include %q", GlobalRegion))
	}
	for name, r := range c.Regions {
		if len(r.Locations) == 0 {
			errs = append(errs, fmt.Errorf("regions.%s.locations must not be empty", name))
		}
		if r.LatRange[0] > r.LatRange[1] {
			errs = append(errs, fmt.Errorf("regions.%s.lat_range is inverted", name))
		}
		if r.LngRange[0] > r.LngRange[1] {
			errs = append(errs, fmt.Errorf("regions.%s.lng_range is inverted", name))
		}
		if r.LatRange[0] < -90 || r.LatRange[1] > 90 {
			errs = append(errs, fmt.Errorf("regions.%s.lat_range must lie within [-90, 90]", name))
		}
		if r.LngRange[0] < -180 || r.LngRange[1] > 180 {
			errs = append(errs, fmt.Errorf("regions.%s.lng_range must lie within [-180, 180]", name))
		}
	}
	if len(c.FactionSets) == 0 {
		errs = append(errs, fmt.Errorf("faction_sets must not be empty"))
	}
	if len(c.Templates) == 0 {
		errs = append(errs, fmt.Errorf("templates must not be empty"))
	}
	for i, t := range c.Templates {
		if t.Kind == "" {
			errs = append(errs, fmt.Errorf("templates[%d].kind is required", i))
		}
		if len(t.TitlePrefixes) == 0 {
			errs = append(errs, fmt.Errorf("templates[%d].title_prefixes must not be empty", i))
		}
		if len(t.Descriptions) == 0 {
			errs = append(errs, fmt.Errorf("templates[%d].descriptions must not be empty", i))
		}
	}

	return errs
}
