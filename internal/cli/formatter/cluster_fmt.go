package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/chronos/internal/geo"
)

// ClusterLabel is the map marker caption: the location of a lone event, or a
// member count for a group.
func ClusterLabel(c *geo.Cluster) string {
	if c.IsSingle && len(c.Members) > 0 {
		return strings.ToUpper(c.Members[0].Location)
	}
	return fmt.Sprintf("%d EVENTS IN REGION", c.Len())
}

// FormatClusters tabulates clusters with their canvas centroids.
func FormatClusters(clusters []*geo.Cluster, threshold float64) string {
	headers := []string{"#", "LABEL", "X", "Y", "EVENTS"}
	rows := make([][]string, 0, len(clusters))
	for i, c := range clusters {
		titles := make([]string, 0, len(c.Members))
		for _, m := range c.Members {
			titles = append(titles, m.Title)
		}
		label := StyleBlue.Render(ClusterLabel(c))
		if !c.IsSingle {
			label = StyleYellow.Render(ClusterLabel(c))
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			label,
			fmt.Sprintf("%.1f", c.Centroid.X),
			fmt.Sprintf("%.1f", c.Centroid.Y),
			strings.Join(titles, Dim(", ")),
		})
	}
	title := fmt.Sprintf("Clusters (threshold %g)", threshold)
	return RenderBox(title, RenderTable(headers, rows))
}
