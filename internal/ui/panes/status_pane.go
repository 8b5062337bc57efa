package panes

import (
	"fmt"

	"github.com/ja-he/jot/internal/control/app"
	"github.com/ja-he/jot/internal/styling"
	"github.com/ja-he/jot/internal/ui"
)

// StatusPane is a status bar that displays the status message or, without
// one, the prompt of the current mode. On the right it shows the cursor
// position in the active page.
type StatusPane struct {
	ui.LeafPane

	app *app.App
}

// Draw draws this pane.
func (p *StatusPane) Draw() {
	if !p.IsVisible() {
		return
	}
	x, y, w, h := p.Dimensions()

	bgStyle := p.Stylesheet.Status
	p.Renderer.DrawBox(x, y, w, h, bgStyle)

	positionStr := ""
	if page := p.app.ActivePage(); page != nil {
		positionStr = fmt.Sprintf("%d:%d", page.CursorRow()+1, page.CursorColumn()+1)
	}
	positionW := len(positionStr)
	if positionW > 0 {
		positionW += 2
		p.Renderer.DrawText(x+w-positionW+1, y, positionW-2, 1, bgStyle.DefaultEmphasized(), positionStr)
	}

	textStyle := bgStyle
	if p.app.StatusMessage != "" {
		textStyle = p.Stylesheet.StatusMessage
	}
	textW := w - positionW
	p.Renderer.DrawText(x, y, textW, 1, textStyle, truncateRight(p.app.StatusLine(), textW))
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *StatusPane) GetPositionInfo(_, _ int) ui.PositionInfo {
	return &ui.StatusPanePositionInfo{}
}

// NewStatusPane constructs and returns a new StatusPane.
func NewStatusPane(
	renderer ui.ConstrainedRenderer,
	stylesheet *styling.Stylesheet,
	a *app.App,
) *StatusPane {
	return &StatusPane{
		LeafPane: ui.LeafPane{
			ID:         ui.GeneratePaneID(),
			Renderer:   renderer,
			Stylesheet: stylesheet,
		},
		app: a,
	}
}
