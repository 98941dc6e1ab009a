package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/chronos/internal/intelligence"
	"github.com/alexanderramin/chronos/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and settings CLI commands run against.
type App struct {
	Scenarios intelligence.ScenarioService
	// SeededScenarios builds a service whose procedural fallback is fixed by
	// seed. Nil disables --seed.
	SeededScenarios func(seed int64) intelligence.ScenarioService
	Library         service.ScenarioLibrary

	ClusterThreshold float64
	HTTPAddr         string
	Logger           *slog.Logger

	// IsTerminal reports whether stdout is a terminal. Styled output is only
	// produced for terminals; otherwise commands print JSON.
	IsTerminal func() bool
	Now        func() time.Time
}

// NewRootCmd creates the top-level "chronos" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "chronos",
		Short:         "Generate, store and map alternate-history war scenarios",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newGenerateCmd(app),
		newScenarioCmd(app),
		newClustersCmd(app),
		newServeCmd(app),
	)

	return root
}

func (a *App) styled(jsonFlag bool) bool {
	return !jsonFlag && a.IsTerminal != nil && a.IsTerminal()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
