package render

import (
	"fmt"
	"strings"

	"WooPulse/internal/domain/models"
)

// SummaryBox renders the headline figures in the same boxed style as the
// chart legend.
func SummaryBox(s models.Summary) string {
	revenue := s.Revenue.StringFixed(2)
	if s.Currency != "" {
		revenue += " " + s.Currency
	}
	peak := "n/a"
	if s.PeakDate != "" {
		peak = fmt.Sprintf("%s (%d orders)", s.PeakDate, s.PeakCount)
	}

	lines := []string{
		fmt.Sprintf("Orders     : %d", s.Orders),
		fmt.Sprintf("Revenue    : %s", revenue),
		fmt.Sprintf("Mean / day : %.2f", s.MeanPerDay),
		fmt.Sprintf("Peak day   : %s", peak),
	}

	out := make([]string, 0, len(lines)+2)
	out = append(out, "╔════ SUMMARY "+strings.Repeat("═", legendWidth-15)+"╗")
	for _, l := range lines {
		if len(l) > legendWidth-4 {
			l = l[:legendWidth-4]
		}
		out = append(out, fmt.Sprintf("║ %-*s ║", legendWidth-4, l))
	}
	out = append(out, "╚"+strings.Repeat("═", legendWidth-2)+"╝")
	return strings.Join(out, "\n")
}
