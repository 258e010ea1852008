package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// duration marshals as a Go duration string.
type duration time.Duration

func (d duration) String() string { return time.Duration(d).Round(time.Microsecond).String() }

// MarshalJSON implements json.Marshaler.
func (d duration) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	totalStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

func writeSolve(w io.Writer, format string, rep solveReport) error {
	switch format {
	case "json":
		return writeJSON(w, rep)
	case "pretty":
		_, err := fmt.Fprintln(w, prettySolve(rep))
		return err
	default:
		if _, err := fmt.Fprintf(w, "Max flow: %d (%s)\n", rep.Total, rep.Elapsed); err != nil {
			return err
		}
		if rep.Team != nil {
			if _, err := fmt.Fprintf(w, "Team flow: %d (%s)\n", rep.Team.Total, rep.Team.Elapsed); err != nil {
				return err
			}
		}

		return nil
	}
}

func prettySolve(rep solveReport) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Solo from %s, %d units", rep.Start, rep.Budget)))
	b.WriteString("\n")
	b.WriteString(planLines(rep.Plan))
	b.WriteString("total " + totalStyle.Render(strconv.Itoa(rep.Total)) + dimStyle.Render(" in "+rep.Elapsed.String()))

	if rep.Team != nil {
		b.WriteString("\n\n")
		b.WriteString(titleStyle.Render(fmt.Sprintf("Pair from %s, %d units each", rep.Start, rep.Team.Budget)))
		for i, plan := range rep.Team.Plans {
			b.WriteString(fmt.Sprintf("\nactor %d\n", i+1))
			b.WriteString(planLines(plan))
		}
		b.WriteString("total " + totalStyle.Render(strconv.Itoa(rep.Team.Total)) + dimStyle.Render(" in "+rep.Team.Elapsed.String()))
	}

	return boxStyle.Render(b.String())
}

func planLines(plan []planStep) string {
	if len(plan) == 0 {
		return dimStyle.Render("  (nothing worth opening)") + "\n"
	}
	var b strings.Builder
	for _, s := range plan {
		fmt.Fprintf(&b, "  minute %2d  %-4s +%d\n", s.Minute, s.Node, s.Gain)
	}

	return b.String()
}

// formatTable prints headers and rows as aligned columns.
func formatTable(w io.Writer, headers []string, rows [][]string) error {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	printRow := func(cells []string) error {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = fmt.Sprintf("%*s", widths[i], cell)
		}
		_, err := fmt.Fprintln(w, strings.Join(parts, "  "))
		return err
	}

	if err := printRow(headers); err != nil {
		return err
	}
	for _, row := range rows {
		if err := printRow(row); err != nil {
			return err
		}
	}

	return nil
}
