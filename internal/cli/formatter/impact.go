package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/chronos/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderImpact draws a strategic impact score as a ten-cell bar, e.g.
// [██████░░░░] 6.0/10.
func RenderImpact(impact float64) string {
	clamped := domain.ClampFloat(impact, 0, domain.MaxStrategicImpact)
	const width = 10
	filled := int(math.Round(clamped / domain.MaxStrategicImpact * width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("[%s] %.1f/10", ImpactStyle(impact).Render(bar), impact)
}
