package cli

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/jot/internal/config"
	"github.com/ja-he/jot/internal/control/app"
	"github.com/ja-he/jot/internal/input"
	"github.com/ja-he/jot/internal/storage"
	"github.com/ja-he/jot/internal/styling"
	"github.com/ja-he/jot/internal/tui"
	"github.com/ja-he/jot/internal/ui"
	"github.com/ja-he/jot/internal/ui/panes"
)

// Controller is the struct for the TUI controller.
// It feeds terminal events and directory changes to the App, one at a time,
// and redraws after each.
type Controller struct {
	app      *app.App
	rootPane *panes.RootPane

	screen *tui.ScreenHandler

	watcher     *storage.DirectoryWatcher
	watchedPath string
}

// NewController creates a new Controller, initializing the terminal screen.
func NewController(
	a *app.App,
	stylesheet *styling.Stylesheet,
	settings config.Settings,
) (*Controller, error) {
	screen, err := tui.NewTUIScreenHandler()
	if err != nil {
		return nil, err
	}
	return newController(a, screen, stylesheet, settings), nil
}

func newController(
	a *app.App,
	screen *tui.ScreenHandler,
	stylesheet *styling.Stylesheet,
	settings config.Settings,
) *Controller {
	controller := &Controller{
		app:    a,
		screen: screen,
	}

	layout := func() ui.Layout {
		_, _, w, h := screen.Dimensions()
		return ui.ComputeLayout(w, h, settings.TreeWidthPercent)
	}
	controller.rootPane = panes.NewRootPane(
		screen,
		ui.NewCursorWrangler(screen),
		screen.Dimensions,
		layout,
		stylesheet,
		a,
	)

	if settings.WatchDirectoryEnabled() {
		watcher, err := storage.NewDirectoryWatcher()
		if err != nil {
			log.Warn().Err(err).Msg("could not set up directory watcher, listing will not refresh on outside changes")
		} else {
			controller.watcher = watcher
		}
	}

	return controller
}

// Run runs the editor until it is quit, then restores the terminal.
func (c *Controller) Run() error {
	log.Info().Msg("jot TUI started")
	defer c.screen.Fini()
	if c.watcher != nil {
		defer func() {
			if err := c.watcher.Close(); err != nil {
				log.Warn().Err(err).Msg("could not close directory watcher")
			}
		}()
	}

	done := make(chan struct{})
	defer close(done)
	screenEvents := make(chan tcell.Event, 32)
	go pollEvents(c.screen.GetEventPollable(), screenEvents, done)

	var directoryChanges <-chan string
	if c.watcher != nil {
		directoryChanges = c.watcher.Changes()
	}

	c.syncWatch()
	c.draw()
	for !c.app.ShouldQuit {
		select {
		case ev, ok := <-screenEvents:
			if !ok {
				return fmt.Errorf("terminal event stream ended")
			}
			c.handleEvent(ev)
		case path := <-directoryChanges:
			log.Debug().Str("path", path).Msg("directory changed")
			c.app.DirectoryChanged(path)
		}
		c.syncWatch()
		c.draw()
	}

	log.Info().Msg("jot TUI exiting")
	return nil
}

// pollEvents forwards the screen's events until the screen is finalized or
// done is closed.
func pollEvents(screen tui.EventPollable, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (c *Controller) draw() {
	c.app.ClampViewport(c.rootPane.Viewport())
	c.rootPane.Draw()
}

// syncWatch watches the browsed directory, if it changed.
func (c *Controller) syncWatch() {
	if c.watcher == nil || c.app.Directory == nil || c.app.Directory.Path == c.watchedPath {
		return
	}
	c.watchedPath = c.app.Directory.Path
	if err := c.watcher.Watch(c.watchedPath); err != nil {
		log.Warn().Err(err).Str("path", c.watchedPath).Msg("could not watch directory")
	}
}

func (c *Controller) handleEvent(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		key := input.KeyFromTcellEvent(e)
		if !c.app.HandleKey(key) {
			log.Debug().Str("key", key.ToDebugString()).Str("mode", c.app.Mode().String()).Msg("could not apply key input")
		}

	case *tcell.EventMouse:
		c.handleMouseEvent(e)

	case *tcell.EventResize:
		c.screen.NeedsSync()
	}
}

func (c *Controller) handleMouseEvent(e *tcell.EventMouse) {
	// motion and release
	if e.Buttons() == tcell.ButtonNone {
		return
	}
	c.app.HandleMouse(c.mouseOperation(e))
}

// mouseOperation maps a mouse event to the App operation for the position it
// happened at, or nil if there is none.
func (c *Controller) mouseOperation(e *tcell.EventMouse) func() {
	x, y := e.Position()
	buttons := e.Buttons()

	switch positionInfo := c.rootPane.GetPositionInfo(x, y).(type) {
	case *ui.TreePanePositionInfo:
		switch {
		case buttons&tcell.WheelUp != 0:
			return func() { c.app.ScrollTree(-1) }
		case buttons&tcell.WheelDown != 0:
			return func() { c.app.ScrollTree(1) }
		case buttons&tcell.Button1 != 0 && positionInfo.Index >= 0:
			return func() { c.app.SelectTreeEntry(positionInfo.Index) }
		}

	case *ui.TabBarPositionInfo:
		if buttons&tcell.Button1 != 0 && positionInfo.Tab >= 0 {
			return func() { c.app.SelectTab(positionInfo.Tab) }
		}

	case *ui.EditorPanePositionInfo:
		switch {
		case buttons&tcell.WheelUp != 0:
			return func() { c.app.ScrollEditor(-1) }
		case buttons&tcell.WheelDown != 0:
			return func() { c.app.ScrollEditor(1) }
		case buttons&tcell.Button1 != 0:
			return func() { c.app.ClickEditor(positionInfo.Row, positionInfo.Col) }
		}

	case *ui.StatusPanePositionInfo, *ui.NoPanePositionInfo:

	default:
		log.Warn().Interface("info", positionInfo).Msg("unhandled position info")
	}
	return nil
}
