package formatter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mbrenner/velocity/internal/service"
)

// FormatForecast renders a forecast as a per-group table followed by the
// projected total. Groups come out sorted by label; groups without
// history are dimmed since their projection is the zero default.
func FormatForecast(fc *service.Forecast, futureDays map[string]int) string {
	labels := make([]string, 0, len(fc.Projection.Points))
	for label := range fc.Projection.Points {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	rows := make([][]string, 0, len(labels))
	for _, label := range labels {
		ratio, known := fc.Ratios[label]
		row := []string{
			label,
			strconv.Itoa(futureDays[label]),
			fmt.Sprintf("%.2f", ratio),
			strconv.Itoa(fc.Projection.Points[label]),
		}
		if !known {
			for i, cell := range row {
				row[i] = Dim(cell)
			}
		}
		rows = append(rows, row)
	}

	var b strings.Builder
	b.WriteString(RenderTable([]string{"GROUP", "DAYS", "RATIO", "POINTS"}, rows))
	b.WriteString(fmt.Sprintf("%s %s  %s\n",
		Bold("="),
		Bold(strconv.Itoa(fc.Projection.Total)),
		Dim(fmt.Sprintf("(from %d sprints)", fc.SprintCount)),
	))
	return b.String()
}
