package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/chronos/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newGenerateCmd(app *App) *cobra.Command {
	var (
		flags    inputFlags
		seed     int64
		save     bool
		jsonFlag bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a scenario",
		Long: "Generate a scenario from the remote model when a credential is configured,\n" +
			"falling back to the offline generator on any failure.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := flags.input()
			if errs := input.Validate(); len(errs) > 0 {
				return errors.Join(errs...)
			}

			scenarios := app.Scenarios
			if cmd.Flags().Changed("seed") {
				if app.SeededScenarios == nil {
					return fmt.Errorf("--seed is not supported in this build")
				}
				scenarios = app.SeededScenarios(seed)
			}

			result := scenarios.Generate(cmd.Context(), input)
			out := cmd.OutOrStdout()

			if save {
				saved, err := app.Library.Save(cmd.Context(), result, &input)
				if err != nil {
					return err
				}
				if !app.styled(jsonFlag) {
					return printJSON(out, saved)
				}
				fmt.Fprintln(out, formatter.FormatTimeline(result))
				fmt.Fprintf(out, "\n%s %s\n", formatter.StyleGreen.Render("Saved"), saved.ID)
				return nil
			}

			if !app.styled(jsonFlag) {
				return printJSON(out, result)
			}
			fmt.Fprintln(out, formatter.FormatTimeline(result))
			return nil
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().Int64Var(&seed, "seed", 0, "fix the offline generator's random seed")
	cmd.Flags().BoolVar(&save, "save", false, "store the result in the library")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "print JSON even on a terminal")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
