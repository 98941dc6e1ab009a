// Package generation synthesizes scenarios offline from the content catalog.
// Every random draw goes through the injected RNG so a seeded stream
// reproduces the same scenario.
package generation

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/chronos/internal/catalog"
	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/google/uuid"
)

const (
	// protagonistBias is the chance that the protagonist, rather than the
	// wildcard, leads an event.
	protagonistBias = 0.7

	impactBaseMin  = 3
	impactBaseSpan = 5 // base impact is drawn from [3, 7]
	kindBonus      = 2
	climaxProgress = 0.8
	climaxBonus    = 1

	maxTitleAttempts  = 3
	overviewEchoLimit = 120

	OverviewPrefix = "[OFFLINE SIMULATION]"
)

// Generator builds scenarios from a catalog. It is safe for concurrent use;
// all per-call state lives in the RNG passed to Generate.
type Generator struct {
	catalog *catalog.Catalog
}

// NewGenerator creates a Generator over c.
func NewGenerator(c *catalog.Catalog) *Generator {
	return &Generator{catalog: c}
}

// Generate is shorthand for NewGenerator(c).Generate(input, rng).
func Generate(input domain.ScenarioInput, c *catalog.Catalog, rng RNG) domain.GenerationResult {
	return NewGenerator(c).Generate(input, rng)
}

// Generate synthesizes a scenario. It never fails.
func (g *Generator) Generate(input domain.ScenarioInput, rng RNG) domain.GenerationResult {
	startYear, _, yearRange := YearBounds(input.StartYear, input.EndYear)
	region := g.catalog.Region(string(input.Region))

	factions := pick(rng, g.catalog.FactionSets)
	protagonist, antagonist, wildcard := factions[0], factions[1], factions[2]

	usedTitles := make(map[string]bool, input.EventCount)
	events := make([]domain.WarEvent, 0, max(input.EventCount, 0))

	for i := 0; i < input.EventCount; i++ {
		progress := float64(i) / float64(max(1, input.EventCount-1))
		year := startYear + int(math.Floor(progress*float64(yearRange)))

		month := pick(rng, g.catalog.Months)
		tmpl := pick(rng, g.catalog.Templates)
		location := pick(rng, region.Locations)
		lat := uniform(rng, region.LatRange)
		lng := uniform(rng, region.LngRange)

		title := uniqueTitle(rng, composeTitle(rng, tmpl, location), usedTitles)

		actorA := wildcard
		if rng.Float64() < protagonistBias {
			actorA = protagonist
		}
		description := tmpl.Describe(rng.Intn(len(tmpl.Descriptions)), actorA, antagonist, location)

		events = append(events, domain.WarEvent{
			ID:               eventID(rng, i),
			Date:             fmt.Sprintf("%s %d", month, year),
			Title:            title,
			Description:      description,
			StrategicImpact:  strategicImpact(rng, tmpl.Kind, progress),
			FactionsInvolved: []string{actorA, antagonist},
			Location:         location,
			Latitude:         lat,
			Longitude:        lng,
		})
	}

	return domain.GenerationResult{
		ScenarioName: input.Name,
		Overview:     overview(input),
		Events:       events,
		Source:       domain.SourceProcedural,
	}
}

// composeTitle joins a prefix with the location, or with a letter+number
// code name for covert and technological events.
func composeTitle(rng RNG, tmpl catalog.Template, location string) string {
	prefix := pick(rng, tmpl.TitlePrefixes)
	if tmpl.Kind.UsesCodeName() {
		letter := rune('A' + rng.Intn(26))
		number := 10 + rng.Intn(90)
		return fmt.Sprintf("%s %c-%d", prefix, letter, number)
	}
	return prefix + " " + location
}

// uniqueTitle retries a bounded number of times to avoid a title already
// used in this run. Duplicates survive once the attempts run out.
func uniqueTitle(rng RNG, base string, used map[string]bool) string {
	title := base
	for attempt := 0; used[title] && attempt < maxTitleAttempts; attempt++ {
		title = fmt.Sprintf("%s (Phase %d)", base, 2+rng.Intn(8))
	}
	used[title] = true
	return title
}

func strategicImpact(rng RNG, kind catalog.TemplateKind, progress float64) float64 {
	impact := impactBaseMin + rng.Intn(impactBaseSpan)
	if kind == catalog.KindBattle || kind == catalog.KindTechnological {
		impact += kindBonus
	}
	if progress > climaxProgress {
		impact += climaxBonus
	}
	return domain.ClampFloat(float64(impact), domain.MinStrategicImpact, domain.MaxStrategicImpact)
}

func eventID(rng RNG, index int) string {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return fmt.Sprintf("event-%d", index)
	}
	return id.String()
}

func overview(input domain.ScenarioInput) string {
	region := domain.CoalesceStr(string(input.Region), catalog.GlobalRegion)
	premise := truncate(strings.TrimSpace(input.Description), overviewEchoLimit)

	var b strings.Builder
	fmt.Fprintf(&b, "%s Procedurally generated conflict %q across %s.", OverviewPrefix, input.Name, region)
	if premise != "" {
		b.WriteString(" Premise: ")
		b.WriteString(premise)
	}
	return b.String()
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
