package scenario

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	viewStyle   = cellStyle.Foreground(lipgloss.Color("42"))
	copyStyle   = cellStyle.Foreground(lipgloss.Color("214"))
	errStyle    = cellStyle.Foreground(lipgloss.Color("196"))
)

// Cell values for the aliasing columns.
const (
	CellView = "view"
	CellCopy = "copy"
)

// Headers returns the table headers for the report.
func (r *Report) Headers() []string {
	headers := []string{"fixture", "scenario", "shape"}
	headers = append(headers, r.Components...)
	return append(headers, "d/ds", "error")
}

// Rows returns the report as plain table rows matching Headers.
func (r *Report) Rows() [][]string {
	rows := make([][]string, len(r.Results))
	for i, res := range r.Results {
		row := []string{res.Fixture, res.Scenario, res.Shape.String()}
		for j := range r.Components {
			row = append(row, aliasCell(j < len(res.Shared) && res.Shared[j]))
		}
		row = append(row, aliasCell(res.DiffShared))
		errText := ""
		if res.Err != nil {
			errText = res.Err.Error()
		}
		rows[i] = append(row, errText)
	}
	return rows
}

// Render returns the report as a styled table headed by the run ID.
func (r *Report) Render() string {
	rows := r.Rows()
	errCol := len(r.Headers()) - 1
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(r.Headers()...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row < 0 || row >= len(rows) {
				return cellStyle
			}
			switch cell := rows[row][col]; {
			case col == errCol && cell != "":
				return errStyle
			case cell == CellView:
				return viewStyle
			case cell == CellCopy:
				return copyStyle
			}
			return cellStyle
		})

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("repshape run " + r.RunID))
	sb.WriteString("\n")
	sb.WriteString(t.String())
	sb.WriteString("\n")
	return sb.String()
}

func aliasCell(shared bool) string {
	if shared {
		return CellView
	}
	return CellCopy
}
