package ui

import (
	"github.com/ja-he/jot/internal/styling"
)

// LeafPane is a simple set of data and implementation of a "leaf pane", i.E. a
// pane that does not have subpanes but instead makes actual draw calls.
type LeafPane struct {
	ID         PaneID
	Renderer   ConstrainedRenderer
	Stylesheet *styling.Stylesheet
	Visible    func() bool
}

// Dimensions returns the dimensions of the pane, which are those of its
// renderer.
func (p *LeafPane) Dimensions() (x, y, w, h int) {
	return p.Renderer.Dimensions()
}

// IsVisible indicates whether the pane is visible, which it is not if it has
// no space to draw in.
func (p *LeafPane) IsVisible() bool {
	_, _, w, h := p.Dimensions()
	if w <= 0 || h <= 0 {
		return false
	}
	return p.Visible == nil || p.Visible()
}
