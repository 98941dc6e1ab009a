package cli

import (
	"fmt"
	"math"

	"github.com/alexanderramin/chronos/internal/cli/formatter"
	"github.com/alexanderramin/chronos/internal/geo"
	"github.com/spf13/cobra"
)

func newClustersCmd(app *App) *cobra.Command {
	var (
		threshold float64
		jsonFlag  bool
	)
	cmd := &cobra.Command{
		Use:   "clusters ID",
		Short: "Group a saved scenario's events by map proximity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("threshold") {
				if !validThreshold(threshold) {
					return fmt.Errorf("--threshold must be a positive number, got %v", threshold)
				}
			} else {
				threshold = app.ClusterThreshold
				if !validThreshold(threshold) {
					threshold = geo.DefaultThreshold
				}
			}

			saved, err := app.Library.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			clusters := geo.NewClusterer(geo.DefaultProjector()).Cluster(saved.Events, threshold)

			if !app.styled(jsonFlag) {
				return printJSON(cmd.OutOrStdout(), clusters)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatClusters(clusters, threshold))
			return nil
		},
	}
	cmd.Flags().Float64Var(&threshold, "threshold", geo.DefaultThreshold, "merge distance on the 800x400 canvas")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "print JSON even on a terminal")
	return cmd
}

func validThreshold(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
