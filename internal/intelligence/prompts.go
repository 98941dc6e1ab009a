package intelligence

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/chronos/internal/domain"
)

// scenarioSystemPrompt frames the remote model as a scenario author.
const scenarioSystemPrompt = `You are a military historian and strategist writing alternate history war scenarios.
You produce structured intelligence reports as JSON.

CRITICAL RULES:
1. Output ONLY the JSON object described by the response schema
2. Events are listed in chronological order
3. strategicImpact is a number from 1 to 10
4. latitude is within [-90, 90] and longitude within [-180, 180]
5. Every event names the factions involved, most prominent first`

// buildScenarioPrompt embeds every input field and the exact event count.
func buildScenarioPrompt(input domain.ScenarioInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a detailed alternate history/war scenario titled %q.\n", input.Name)
	fmt.Fprintf(&b, "Continent: %s\n", input.Region)
	fmt.Fprintf(&b, "Historical Timeframe: From %s to %s.\n", input.StartYear, input.EndYear)
	fmt.Fprintf(&b, "Premise: %s\n", input.Description)
	fmt.Fprintf(&b, "Additional Context: %s\n", input.AdditionalContext)
	fmt.Fprintf(&b, "Required Events: Exactly %d chronological events.\n\n", input.EventCount)
	b.WriteString(`For each event, provide:
1. A specific date.
2. A title.
3. A detailed military/geopolitical description.
4. A strategic impact score (1-10).
5. Key factions.
6. Specific location name.
7. Approximate geographic coordinates (latitude and longitude) for the location.

IMPORTANT: Return the response strictly as JSON.`)
	return b.String()
}
