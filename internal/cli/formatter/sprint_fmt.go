package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mbrenner/velocity/internal/domain"
)

// FormatSprintList renders recorded sprints, one row per group, with the
// week date shown on each sprint's first row.
func FormatSprintList(sprints []domain.Sprint) string {
	var rows [][]string
	for _, s := range sprints {
		_, isoWeek := s.Date.ISOWeek()
		week := fmt.Sprintf("%d (%s)", isoWeek, s.Date.Format("2006-01-02"))

		if len(s.Groups) == 0 {
			rows = append(rows, []string{Bold(week), Dim("(no groups)"), "", ""})
			continue
		}
		for i, g := range s.Groups {
			cell := ""
			if i == 0 {
				cell = Bold(week)
			}
			rows = append(rows, []string{
				cell,
				g.Label,
				strconv.Itoa(g.Points),
				strconv.Itoa(g.Days),
			})
		}
	}

	var b strings.Builder
	b.WriteString(RenderTable([]string{"WEEK", "GROUP", "POINTS", "DAYS"}, rows))
	return b.String()
}
