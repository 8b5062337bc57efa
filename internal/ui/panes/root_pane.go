package panes

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/jot/internal/control/app"
	"github.com/ja-he/jot/internal/styling"
	"github.com/ja-he/jot/internal/ui"
)

// RootPane acts as the root UI pane, wrapping all subpanes, managing the
// render cycle, invoking the subpanes' rendering, etc.
type RootPane struct {
	ID ui.PaneID

	renderer       ui.RenderOrchestratorControl
	cursorWrangler *ui.CursorWrangler

	dimensions func() (x, y, w, h int)

	tree   *TreePane
	tabs   *TabBarPane
	editor *EditorPane
	status *StatusPane

	log zerolog.Logger
}

// Dimensions gives the dimensions (x-axis offset, y-axis offset, width,
// height) for this pane.
func (p *RootPane) Dimensions() (x, y, w, h int) {
	return p.dimensions()
}

// IsVisible returns true, the root pane is always visible.
func (p *RootPane) IsVisible() bool { return true }

func (p *RootPane) subpanes() []ui.Pane {
	return []ui.Pane{p.tree, p.tabs, p.editor, p.status}
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *RootPane) GetPositionInfo(x, y int) ui.PositionInfo {
	for _, pane := range p.subpanes() {
		var r ui.Rect
		r.X, r.Y, r.W, r.H = pane.Dimensions()
		if pane.IsVisible() && r.Contains(x, y) {
			return pane.GetPositionInfo(x, y)
		}
	}
	return &ui.NoPanePositionInfo{}
}

// Viewport returns the space the panes currently have for the editor text
// and the directory entries.
func (p *RootPane) Viewport() app.Viewport {
	_, _, _, editorH := p.editor.Dimensions()
	return app.Viewport{
		EditorHeight: editorH,
		EditorWidth:  p.editor.TextWidth(),
		TreeHeight:   p.tree.EntriesHeight(),
	}
}

// Draw draws this pane.
func (p *RootPane) Draw() {
	p.renderer.Clear()

	for _, pane := range p.subpanes() {
		pane.Draw()
	}

	// After all drawing draw or hide the cursor, depending on what is requested
	// during the draw of subpanes.
	p.cursorWrangler.Enact()

	p.renderer.Show()
	p.log.Trace().Msg("drew")
}

// NewRootPane constructs and returns a new RootPane, along with its subpanes,
// laid out by the given layout function.
func NewRootPane(
	renderer interface {
		ui.Renderer
		ui.RenderOrchestratorControl
	},
	cursorWrangler *ui.CursorWrangler,
	dimensions func() (x, y, w, h int),
	layout func() ui.Layout,
	stylesheet *styling.Stylesheet,
	a *app.App,
) *RootPane {
	constrained := func(rect func(ui.Layout) ui.Rect) *ui.CR {
		return ui.NewConstrainedRenderer(renderer, func() (x, y, w, h int) {
			return rect(layout()).Dimensions()
		})
	}

	rootPane := &RootPane{
		ID:             ui.GeneratePaneID(),
		renderer:       renderer,
		cursorWrangler: cursorWrangler,
		dimensions:     dimensions,
		tree:           NewTreePane(constrained(func(l ui.Layout) ui.Rect { return l.Tree }), stylesheet, a),
		tabs:           NewTabBarPane(constrained(func(l ui.Layout) ui.Rect { return l.Tabs }), stylesheet, a),
		editor:         NewEditorPane(constrained(func(l ui.Layout) ui.Rect { return l.Editor }), stylesheet, cursorWrangler, a),
		status:         NewStatusPane(constrained(func(l ui.Layout) ui.Rect { return l.Status }), stylesheet, a),
		log:            log.With().Str("component", "root-pane").Logger(),
	}
	rootPane.log.Trace().Msgf("created root pane with id '%d'", rootPane.ID)

	return rootPane
}
