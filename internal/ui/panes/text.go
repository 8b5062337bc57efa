package panes

import (
	"github.com/ja-he/jot/internal/control/app"
)

const ellipsis = '…'

// truncateRight truncates the text to fit into the given number of cells,
// marking a truncation with an ellipsis at the end.
func truncateRight(text string, cells int) string {
	runes := []rune(text)
	if app.CellsWidth(runes) <= cells {
		return text
	}
	if cells <= 0 {
		return ""
	}
	col := app.ColumnAtCell(runes, cells-1)
	return string(runes[:col]) + string(ellipsis)
}

// truncateLeft truncates the text to fit into the given number of cells,
// keeping its end and marking a truncation with an ellipsis at the start.
func truncateLeft(text string, cells int) string {
	runes := []rune(text)
	if app.CellsWidth(runes) <= cells {
		return text
	}
	if cells <= 0 {
		return ""
	}
	start, width := len(runes), 0
	for start > 0 && width+app.CellWidth(runes[start-1]) <= cells-1 {
		start--
		width += app.CellWidth(runes[start])
	}
	return string(ellipsis) + string(runes[start:])
}
