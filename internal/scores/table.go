package scores

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd33d"))
	styleHead  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
	styleRow   = lipgloss.NewStyle().Foreground(lipgloss.Color("#d0d7de"))
	styleFirst = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7ee787"))
)

// Table renders records as a styled terminal table.
func Table(records []Record) string {
	if len(records) == 0 {
		return styleHead.Render("no scores yet")
	}
	var b strings.Builder
	b.WriteString(styleTitle.Render("High scores"))
	b.WriteByte('\n')
	b.WriteString(styleHead.Render(fmt.Sprintf("%-3s %-16s %6s  %-8s %s", "#", "name", "score", "level", "date")))
	for i, r := range records {
		row := fmt.Sprintf("%-3d %-16s %6d  %-8s %s", i+1, clip(r.Name, 16), r.Score, r.Difficulty, r.At.Format("2006-01-02"))
		st := styleRow
		if i == 0 {
			st = styleFirst
		}
		b.WriteByte('\n')
		b.WriteString(st.Render(row))
	}
	return b.String()
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
