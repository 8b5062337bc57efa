package panes

import (
	"github.com/ja-he/jot/internal/control/app"
	"github.com/ja-he/jot/internal/styling"
	"github.com/ja-he/jot/internal/ui"
)

// TreePane shows the browsed directory: a header with its path and below it
// the entries, with the selected one highlighted.
type TreePane struct {
	ui.LeafPane

	app *app.App
}

// Draw draws this pane.
func (p *TreePane) Draw() {
	if !p.IsVisible() {
		return
	}
	x, y, w, h := p.Dimensions()
	focussed := p.app.ActivePane == app.PaneFileTree

	normal := p.style(p.Stylesheet.TreeNormal, focussed)
	p.Renderer.DrawBox(x, y, w, h, normal)

	dir := p.app.Directory
	if dir == nil {
		return
	}

	header := p.style(p.Stylesheet.TreeHeader, focussed)
	p.Renderer.DrawBox(x, y, w, 1, header)
	p.Renderer.DrawText(x, y, w, 1, header, truncateLeft(dir.Path, w))

	for row := 0; row < h-1; row++ {
		index := dir.ScrollOffset + row
		if index >= len(dir.Entries) {
			break
		}
		entry := dir.Entries[index]

		name, style := entry.Name, normal
		if entry.IsDir {
			name += "/"
			style = p.style(p.Stylesheet.TreeDirectory, focussed)
		}
		if index == dir.SelectedIndex {
			style = p.style(p.Stylesheet.TreeSelected, focussed)
			p.Renderer.DrawBox(x, y+1+row, w, 1, style)
		}
		p.Renderer.DrawText(x+1, y+1+row, w-1, 1, style, truncateRight(name, w-1))
	}
}

// style returns the styling emphasized or dimmed, depending on focus.
func (p *TreePane) style(s styling.DrawStyling, focussed bool) styling.DrawStyling {
	if focussed {
		return s
	}
	return s.DefaultDimmed()
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *TreePane) GetPositionInfo(x, y int) ui.PositionInfo {
	_, py, _, _ := p.Dimensions()
	dir := p.app.Directory
	row := y - py - 1
	if dir == nil || row < 0 {
		return &ui.TreePanePositionInfo{Index: -1}
	}
	index := dir.ScrollOffset + row
	if index >= len(dir.Entries) {
		index = -1
	}
	return &ui.TreePanePositionInfo{Index: index}
}

// EntriesHeight returns the number of entries that fit into this pane.
func (p *TreePane) EntriesHeight() int {
	_, _, _, h := p.Dimensions()
	return max(h-1, 0)
}

// NewTreePane constructs and returns a new TreePane.
func NewTreePane(
	renderer ui.ConstrainedRenderer,
	stylesheet *styling.Stylesheet,
	a *app.App,
) *TreePane {
	return &TreePane{
		LeafPane: ui.LeafPane{
			ID:         ui.GeneratePaneID(),
			Renderer:   renderer,
			Stylesheet: stylesheet,
		},
		app: a,
	}
}
