package panes

import (
	"fmt"
	"strconv"

	"github.com/ja-he/jot/internal/control/app"
	"github.com/ja-he/jot/internal/model"
	"github.com/ja-he/jot/internal/styling"
	"github.com/ja-he/jot/internal/ui"
)

// EditorPane shows the active page, with line numbers in a gutter on the left.
// While finding, the matches are highlighted.
type EditorPane struct {
	ui.LeafPane

	app    *app.App
	cursor *ui.CursorWrangler
}

// GutterWidth returns the width of the line number gutter for a document of
// the given number of lines.
func GutterWidth(lineCount int) int {
	return len(strconv.Itoa(max(lineCount, 1))) + 1
}

// TextWidth returns the number of cells available for text.
func (p *EditorPane) TextWidth() int {
	_, _, w, _ := p.Dimensions()
	page := p.app.ActivePage()
	if page == nil {
		return w
	}
	return max(w-GutterWidth(page.LineCount()), 0)
}

// Draw draws this pane.
func (p *EditorPane) Draw() {
	if !p.IsVisible() {
		return
	}
	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Normal)

	page := p.app.ActivePage()
	if page == nil {
		hint := "No open buffer."
		p.Renderer.DrawText(x+(w-len(hint))/2, y+h/2, len(hint), 1, p.Stylesheet.Normal.DefaultDimmed(), hint)
		return
	}

	lines := page.AllLines()
	gutter := GutterWidth(len(lines))
	textX := x + gutter
	highlights := p.matchHighlights()

	for row := 0; row < h; row++ {
		docRow := page.ScrollOffset + row
		if docRow >= len(lines) {
			break
		}
		p.Renderer.DrawText(x, y+row, gutter-1, 1, p.Stylesheet.LineNumber, fmt.Sprintf("%*d", gutter-1, docRow+1))

		runes := []rune(lines[docRow])
		cell := 0
		for col := page.HorizontalScrollOffset; col < len(runes); col++ {
			cw := app.CellWidth(runes[col])
			if textX+cell+cw > x+w {
				break
			}
			style := p.Stylesheet.Normal
			if hl, ok := highlights[model.Position{Row: docRow, Col: col}]; ok {
				style = hl
			}
			p.Renderer.DrawText(textX+cell, y+row, cw, 1, style, string(runes[col]))
			cell += cw
		}
	}

	if p.app.ActivePane == app.PaneEditor {
		if _, editing := p.app.Mode().(app.EditMode); editing {
			p.putCursor(page, textX, y, h)
		}
	}
}

func (p *EditorPane) putCursor(page *model.Page, textX, y, h int) {
	row := page.CursorRow() - page.ScrollOffset
	if row < 0 || row >= h {
		return
	}
	runes := []rune(page.CurrentLine())
	col := page.CursorColumn()
	if col < page.HorizontalScrollOffset {
		return
	}
	cell := app.CellsWidth(runes[page.HorizontalScrollOffset:col])
	if cell >= p.TextWidth() {
		return
	}
	p.cursor.Put(ui.CursorLocation{X: textX + cell, Y: y + row}, p.ID)
}

// matchHighlights maps the positions of all runes belonging to a find match to
// their styling.
func (p *EditorPane) matchHighlights() map[model.Position]styling.DrawStyling {
	if _, finding := p.app.Mode().(app.FindMode); !finding {
		return nil
	}
	find := p.app.Find
	length := len([]rune(find.Query))
	result := map[model.Position]styling.DrawStyling{}
	for i, match := range find.Matches {
		style := p.Stylesheet.FindMatch
		if i == find.Current {
			style = p.Stylesheet.FindCurrentMatch
		}
		for col := match.Col; col < match.Col+length; col++ {
			result[model.Position{Row: match.Row, Col: col}] = style
		}
	}
	return result
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *EditorPane) GetPositionInfo(x, y int) ui.PositionInfo {
	px, py, _, _ := p.Dimensions()
	page := p.app.ActivePage()
	if page == nil {
		return &ui.NoPanePositionInfo{}
	}

	lines := page.AllLines()
	row := max(min(page.ScrollOffset+(y-py), len(lines)-1), 0)
	cell := x - px - GutterWidth(len(lines))
	if cell < 0 {
		return &ui.EditorPanePositionInfo{Row: row, Col: 0, Gutter: true}
	}

	runes := []rune(lines[row])
	col := len(runes)
	if page.HorizontalScrollOffset < len(runes) {
		col = page.HorizontalScrollOffset + app.ColumnAtCell(runes[page.HorizontalScrollOffset:], cell)
	}
	return &ui.EditorPanePositionInfo{Row: row, Col: col}
}

// NewEditorPane constructs and returns a new EditorPane.
func NewEditorPane(
	renderer ui.ConstrainedRenderer,
	stylesheet *styling.Stylesheet,
	cursor *ui.CursorWrangler,
	a *app.App,
) *EditorPane {
	return &EditorPane{
		LeafPane: ui.LeafPane{
			ID:         ui.GeneratePaneID(),
			Renderer:   renderer,
			Stylesheet: stylesheet,
		},
		app:    a,
		cursor: cursor,
	}
}
