package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
)

// FormatTimeline renders a scenario's events in their stored order.
func FormatTimeline(result domain.GenerationResult) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(result.ScenarioName))
	if result.Source != "" {
		b.WriteString("  " + SourceBadge(result.Source))
	}
	b.WriteString("\n")
	if result.Overview != "" {
		b.WriteString(Dim(result.Overview) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(Header("Timeline"))
	b.WriteString("\n")

	if len(result.Events) == 0 {
		b.WriteString(Dim("  No events.") + "\n")
		return b.String()
	}
	for i, e := range result.Events {
		fmt.Fprintf(&b, "%s  %s  %s\n", StyleYellow.Render(fmt.Sprintf("%-10s", e.Date)), Bold(e.Title), RenderImpact(e.StrategicImpact))
		fmt.Fprintf(&b, "%s%s  %s\n", strings.Repeat(" ", 12), StyleBlue.Render(e.Location), Dim(fmt.Sprintf("(%.2f, %.2f)", e.Latitude, e.Longitude)))
		fmt.Fprintf(&b, "%s%s\n", strings.Repeat(" ", 12), Factions(e.FactionsInvolved))
		if e.Description != "" {
			fmt.Fprintf(&b, "%s%s\n", strings.Repeat(" ", 12), e.Description)
		}
		if i < len(result.Events)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatScenarioList renders the saved library inside a bordered box.
func FormatScenarioList(list []*domain.SavedScenario, now time.Time) string {
	headers := []string{"ID", "NAME", "REGION", "EVENTS", "PERIOD", "SAVED"}
	rows := make([][]string, 0, len(list))
	for _, s := range list {
		rows = append(rows, []string{
			TruncID(s.ID),
			Bold(s.ScenarioName),
			StylePurple.Render(string(s.Input.Region)),
			strconv.Itoa(len(s.Events)),
			Dim(period(s.Input)),
			HumanTimestamp(s.SavedAt(), now),
		})
	}
	return RenderBox("Saved Scenarios", RenderTable(headers, rows))
}

// FormatScenarioShow renders a saved scenario's parameters and timeline.
func FormatScenarioShow(s *domain.SavedScenario) string {
	var b strings.Builder

	b.WriteString(Header("Parameters"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s  %s\n", StyleDim.Render("ID     "), s.ID)
	fmt.Fprintf(&b, "  %s  %s\n", StyleDim.Render("REGION "), StylePurple.Render(string(s.Input.Region)))
	fmt.Fprintf(&b, "  %s  %s\n", StyleDim.Render("PERIOD "), period(s.Input))
	fmt.Fprintf(&b, "  %s  %s\n", StyleDim.Render("SAVED  "), s.SavedAt().Format(time.DateTime))
	if s.Input.AdditionalContext != "" {
		fmt.Fprintf(&b, "  %s  %s\n", StyleDim.Render("CONTEXT"), s.Input.AdditionalContext)
	}
	b.WriteString("\n")
	b.WriteString(FormatTimeline(s.GenerationResult))

	return RenderBox("", b.String())
}

func period(in domain.ScenarioInput) string {
	start := domain.CoalesceStr(in.StartYear, "?")
	end := domain.CoalesceStr(in.EndYear, "?")
	return start + " → " + end
}
