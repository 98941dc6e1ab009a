package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/chronos/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newScenarioCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "scenario",
		Aliases: []string{"s"},
		Short:   "Manage saved scenarios",
	}

	cmd.AddCommand(
		newScenarioListCmd(app),
		newScenarioShowCmd(app),
		newScenarioDeleteCmd(app),
		newScenarioImportCmd(app),
		newScenarioExportCmd(app),
	)

	return cmd
}

func newScenarioListCmd(app *App) *cobra.Command {
	var jsonFlag bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved scenarios, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Library.List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !app.styled(jsonFlag) {
				return printJSON(out, list)
			}
			if len(list) == 0 {
				fmt.Fprintln(out, "No saved scenarios.")
				return nil
			}
			fmt.Fprintln(out, formatter.FormatScenarioList(list, app.now()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "print JSON even on a terminal")
	return cmd
}

func newScenarioShowCmd(app *App) *cobra.Command {
	var jsonFlag bool
	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show a saved scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := app.Library.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !app.styled(jsonFlag) {
				return printJSON(cmd.OutOrStdout(), saved)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatScenarioShow(saved))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "print JSON even on a terminal")
	return cmd
}

func newScenarioDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a saved scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Library.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func newScenarioImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a scenario file into the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := app.Library.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %q as %s (%d events)\n", saved.ScenarioName, saved.ID, len(saved.Events))
			return nil
		},
	}
}

func newScenarioExportCmd(app *App) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export ID",
		Short: "Export a saved scenario as a JSON file",
		Long:  "Export a saved scenario. Without -o the file is written to the current\ndirectory as <name>_INTEL.json; -o - prints it to stdout.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, name, err := app.Library.Export(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if output == "-" {
				_, err := cmd.OutOrStdout().Write(append(data, '\n'))
				return err
			}
			if output == "" {
				output = name
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, or - for stdout")
	return cmd
}
