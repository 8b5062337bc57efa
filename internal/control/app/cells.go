package app

import (
	"github.com/mattn/go-runewidth"
)

// CellWidth returns the number of terminal cells the rune is displayed in.
// Runes without a display width of their own (e.g. tabs and other control
// characters) are displayed as a single blank cell.
func CellWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

// CellsWidth returns the number of terminal cells the runes are displayed in.
func CellsWidth(runes []rune) int {
	w := 0
	for _, r := range runes {
		w += CellWidth(r)
	}
	return w
}

// ColumnAtCell returns the index of the rune displayed at the given cell
// offset, for runes displayed from the first cell on.
// Offsets past the runes give len(runes).
func ColumnAtCell(runes []rune, cell int) int {
	acc := 0
	for i, r := range runes {
		w := CellWidth(r)
		if acc+w > cell {
			return i
		}
		acc += w
	}
	return len(runes)
}
