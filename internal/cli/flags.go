package cli

import (
	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/spf13/pflag"
)

// inputFlags binds ScenarioInput fields to command-line flags.
type inputFlags struct {
	name        string
	description string
	region      string
	context     string
	events      int
	start       string
	end         string
}

func (f *inputFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "scenario name (required)")
	fs.StringVar(&f.description, "description", "", "scenario premise")
	fs.StringVar(&f.region, "region", string(domain.RegionEurope), "theater of operations")
	fs.StringVar(&f.context, "context", "", "additional context for the generator")
	fs.IntVar(&f.events, "events", 15, "number of events (1-100)")
	fs.StringVar(&f.start, "start", "1939 AD", "start year label")
	fs.StringVar(&f.end, "end", "1945 AD", "end year label")
}

func (f *inputFlags) input() domain.ScenarioInput {
	return domain.ScenarioInput{
		Name:              f.name,
		Description:       f.description,
		Region:            domain.Region(f.region),
		AdditionalContext: f.context,
		EventCount:        f.events,
		StartYear:         f.start,
		EndYear:           f.end,
	}
}
