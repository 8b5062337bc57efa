package panes

import (
	"github.com/ja-he/jot/internal/control/app"
	"github.com/ja-he/jot/internal/styling"
	"github.com/ja-he/jot/internal/ui"
)

// TabBarPane shows one tab per open page, by the page's file name.
type TabBarPane struct {
	ui.LeafPane

	app *app.App
}

type tabSegment struct {
	label string
	x     int
	w     int
}

// segments lays out the tabs from the given x offset on.
func (p *TabBarPane) segments(x int) []tabSegment {
	result := make([]tabSegment, 0, len(p.app.Tabs))
	for _, page := range p.app.Tabs {
		label := " " + page.Name() + " "
		w := app.CellsWidth([]rune(label))
		result = append(result, tabSegment{label: label, x: x, w: w})
		x += w + 1
	}
	return result
}

// Draw draws this pane.
func (p *TabBarPane) Draw() {
	if !p.IsVisible() {
		return
	}
	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.TabInactive.DarkenedBG(20))

	for i, segment := range p.segments(x) {
		style := p.Stylesheet.TabInactive
		if i == p.app.ActiveTab {
			style = p.Stylesheet.TabActive
			if p.app.ActivePane == app.PaneEditor {
				style = style.Bolded()
			}
		}
		p.Renderer.DrawBox(segment.x, y, segment.w, 1, style)
		p.Renderer.DrawText(segment.x, y, segment.w, 1, style, segment.label)
	}
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *TabBarPane) GetPositionInfo(x, _ int) ui.PositionInfo {
	px, _, _, _ := p.Dimensions()
	for i, segment := range p.segments(px) {
		if x >= segment.x && x < segment.x+segment.w {
			return &ui.TabBarPositionInfo{Tab: i}
		}
	}
	return &ui.TabBarPositionInfo{Tab: -1}
}

// NewTabBarPane constructs and returns a new TabBarPane.
func NewTabBarPane(
	renderer ui.ConstrainedRenderer,
	stylesheet *styling.Stylesheet,
	a *app.App,
) *TabBarPane {
	return &TabBarPane{
		LeafPane: ui.LeafPane{
			ID:         ui.GeneratePaneID(),
			Renderer:   renderer,
			Stylesheet: stylesheet,
		},
		app: a,
	}
}
