package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"appraisal/internal/domain/notifications"
	"appraisal/internal/domain/rankings"
)

func renderTable(w io.Writer, title string, headers []string, rows [][]string) {
	if title != "" {
		fmt.Fprintln(w, title)
		fmt.Fprintln(w)
	}
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
			},
			Row: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
	)
	table.Header(headers)
	for _, row := range rows {
		_ = table.Append(row)
	}
	_ = table.Render()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func pct(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func priorityLabel(p int) string {
	switch p {
	case notifications.PriorityUrgent:
		return color.RedString("urgent")
	case notifications.PriorityHigh:
		return color.YellowString("high")
	case notifications.PriorityNormal:
		return "normal"
	default:
		return color.HiBlackString("low")
	}
}

func trendLabel(t rankings.Trend) string {
	switch t {
	case rankings.TrendImproving:
		return color.GreenString(string(t))
	case rankings.TrendDeclining:
		return color.RedString(string(t))
	default:
		return string(t)
	}
}
