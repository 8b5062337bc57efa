// Package app implements the editor session: open pages, the browsed
// directory and the modal state machine that routes input between them.
package app

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/jot/internal/input"
	"github.com/ja-he/jot/internal/input/processors"
	"github.com/ja-he/jot/internal/model"
	"github.com/ja-he/jot/internal/storage"
)

// App is the state of an editor session.
//
// An App is not safe for concurrent use; all calls are expected to come from
// a single goroutine (the controller's main loop).
type App struct {
	Tabs      []*model.Page
	ActiveTab int

	Directory  *model.DirectoryView
	ActivePane Pane

	// CommandBuffer is the scratch buffer shared by the command line, the
	// directory commands and all prompts.
	CommandBuffer string
	StatusMessage string
	Find          FindState

	ShouldQuit bool

	mode Mode

	fs        storage.FS
	clipboard Clipboard
	tabWidth  int
	viewport  Viewport

	input         *processors.ModalInputProcessor
	editorInput   input.SimpleInputProcessor
	commandInput  input.SimpleInputProcessor
	findInput     input.SimpleInputProcessor
	promptInput   input.SimpleInputProcessor
	fileTreeInput input.SimpleInputProcessor
	confirmInput  input.SimpleInputProcessor
}

// FindState is the state of a search in the active page.
type FindState struct {
	Query   string
	Matches []model.Position
	// Current is the index of the selected match in Matches.
	Current int
	// Navigating is set once the query is committed; 'n' and 'N' then move
	// between matches instead of extending the query.
	Navigating bool
}

// Options configure a new App.
type Options struct {
	// FS is the file system to operate on, the OS's if nil.
	FS storage.FS
	// Clipboard is used for copying and pasting, the system's if nil.
	Clipboard Clipboard
	// Keys are the key mappings for all input targets.
	Keys input.InputConfig
	// TabWidth is the number of spaces inserted for indentation.
	TabWidth int
	// Directory is the directory to browse initially, the working directory
	// if empty.
	Directory string
	// File is a file to open initially (may be empty).
	File string
}

// NewApp returns a pointer to a new App as configured by the given options.
//
// Without a file to open, the App starts in the file tree; otherwise the file
// is opened in the first tab, ready for editing.
func NewApp(opts Options) (*App, error) {
	a := &App{
		fs:        opts.FS,
		clipboard: opts.Clipboard,
		tabWidth:  opts.TabWidth,
		mode:      CommandMode{},
		Tabs:      []*model.Page{},
	}
	if a.fs == nil {
		a.fs = storage.NewOSFS()
	}
	if a.clipboard == nil {
		a.clipboard = SystemClipboard{}
	}
	if a.tabWidth <= 0 {
		a.tabWidth = 4
	}

	if err := a.buildInput(opts.Keys); err != nil {
		return nil, fmt.Errorf("could not construct input processing (%w)", err)
	}

	dir := opts.Directory
	if dir == "" {
		dir = "."
	}
	directory, err := storage.ReadDirectory(a.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("could not read directory '%s' (%w)", dir, err)
	}
	a.Directory = directory

	if opts.File != "" {
		path, err := filepath.Abs(opts.File)
		if err != nil {
			return nil, fmt.Errorf("could not resolve '%s' (%w)", opts.File, err)
		}
		a.openFile(path)
	} else {
		a.ActivePane = PaneFileTree
		a.setMode(FileTreeMode{})
	}

	log.Debug().Str("directory", a.Directory.Path).Int("tabs", len(a.Tabs)).Msg("session started")
	return a, nil
}

// Mode returns the current mode.
func (a *App) Mode() Mode { return a.mode }

// ActivePage returns the page of the active tab or nil, if there are no tabs.
func (a *App) ActivePage() *model.Page {
	if a.ActiveTab < 0 || a.ActiveTab >= len(a.Tabs) {
		return nil
	}
	return a.Tabs[a.ActiveTab]
}

// PathToDelete returns the path pending deletion, if any.
func (a *App) PathToDelete() (string, bool) {
	m, ok := a.mode.(ConfirmDeleteMode)
	return m.Path, ok
}

// PathToRename returns the path pending renaming, if any.
func (a *App) PathToRename() (string, bool) {
	m, ok := a.mode.(PromptRenameMode)
	return m.Path, ok
}

// HandleKey processes a single key of input.
// Returns whether the key applied to the current mode.
func (a *App) HandleKey(key input.Key) bool {
	a.beginInput()
	applied := a.input.ProcessInput(key)
	if !applied {
		log.Debug().Str("key", key.ToDebugString()).Str("pane", a.ActivePane.String()).Str("mode", a.mode.String()).Msg("key not applied")
	}
	return applied
}

// HandleMouse processes a single mouse input, given as the operation (e.g.
// SelectTreeEntry) the position and button map to. op may be nil, for input
// that has no effect beyond starting a new event.
func (a *App) HandleMouse(op func()) {
	a.beginInput()
	if op != nil {
		op()
	}
}

// beginInput starts the handling of an input event.
func (a *App) beginInput() {
	a.StatusMessage = ""
}

// GetHelp returns the key help for the current mode.
func (a *App) GetHelp() input.Help {
	return a.input.GetHelp()
}

// setMode is the only place the mode is changed.
// Dialog modes are overlaid on the input processing and removed again when
// leaving them; leaving find mode drops the search.
func (a *App) setMode(m Mode) {
	if _, wasFind := a.mode.(FindMode); wasFind {
		if _, isFind := m.(FindMode); !isFind {
			a.Find = FindState{}
		}
	}

	switch m.(type) {
	case ConfirmDeleteMode:
		a.input.SetOverlay(a.confirmInput)
	case PromptNewFileMode, PromptNewDirectoryMode, PromptRenameMode:
		a.input.SetOverlay(a.promptInput)
	default:
		a.input.SetOverlay(nil)
	}

	log.Debug().Str("from", a.mode.String()).Str("to", m.String()).Msg("mode change")
	a.mode = m
}

// focus switches pane and mode together.
func (a *App) focus(pane Pane, m Mode) {
	a.ActivePane = pane
	a.setMode(m)
}

// editModeIfTabs returns EditMode if there is a page to edit, CommandMode
// otherwise.
func (a *App) editModeIfTabs() Mode {
	if len(a.Tabs) > 0 {
		return EditMode{}
	}
	return CommandMode{}
}

// resolve resolves a path as typed against the browsed directory.
func (a *App) resolve(name string) string {
	if filepath.IsAbs(name) || a.Directory == nil {
		return filepath.Clean(name)
	}
	return filepath.Join(a.Directory.Path, name)
}

// clampActiveTab keeps the active tab index within the tabs.
func (a *App) clampActiveTab() {
	if a.ActiveTab >= len(a.Tabs) {
		a.ActiveTab = len(a.Tabs) - 1
	}
	if a.ActiveTab < 0 {
		a.ActiveTab = 0
	}
}

// closeTab closes the tab at the given index.
func (a *App) closeTab(index int) {
	if index < 0 || index >= len(a.Tabs) {
		return
	}
	log.Debug().Str("page", a.Tabs[index].ID).Str("path", a.Tabs[index].FilePath).Msg("closing tab")
	a.Tabs = append(a.Tabs[:index], a.Tabs[index+1:]...)
	if index < a.ActiveTab {
		a.ActiveTab--
	}
	a.clampActiveTab()
	if len(a.Tabs) == 0 {
		if _, editing := a.mode.(EditMode); editing {
			a.setMode(CommandMode{})
		}
	}
}

// openFile focuses the tab for the given path, opening a new one if there is
// none, and switches to editing it.
func (a *App) openFile(path string) {
	for i, page := range a.Tabs {
		if page.FilePath == path {
			a.ActiveTab = i
			a.focus(PaneEditor, EditMode{})
			return
		}
	}
	page := storage.LoadPage(a.fs, path)
	a.Tabs = append(a.Tabs, page)
	a.ActiveTab = len(a.Tabs) - 1
	a.focus(PaneEditor, EditMode{})
}

// refreshDirectory rebuilds the directory snapshot, keeping the previous one
// if the directory can't be read.
func (a *App) refreshDirectory() {
	refreshed, err := storage.RefreshDirectory(a.fs, a.Directory)
	if err != nil {
		log.Warn().Err(err).Str("path", a.Directory.Path).Msg("could not refresh directory")
		return
	}
	a.Directory = refreshed
}

// DirectoryChanged notifies the App about an external change to a directory.
func (a *App) DirectoryChanged(path string) {
	if a.Directory == nil || filepath.Clean(path) != a.Directory.Path {
		return
	}
	log.Debug().Str("path", path).Msg("browsed directory changed externally")
	a.refreshDirectory()
}

// withPage runs f on the active page, or sets a status message if there is
// none.
func (a *App) withPage(f func(p *model.Page)) {
	page := a.ActivePage()
	if page == nil {
		a.StatusMessage = "No open buffer."
		return
	}
	f(page)
}

// router routes input by (pane, mode) to the respective input processor.
type router struct{ app *App }

func (r *router) target() input.SimpleInputProcessor {
	a := r.app
	switch a.ActivePane {
	case PaneEditor:
		switch a.mode.(type) {
		case EditMode:
			return a.editorInput
		case CommandMode:
			return a.commandInput
		case FindMode:
			return a.findInput
		case PromptSaveMode, PromptSaveAndQuitMode:
			return a.promptInput
		}
	case PaneFileTree:
		switch a.mode.(type) {
		case FileTreeMode:
			return a.fileTreeInput
		}
	}
	return nil
}

func (r *router) CapturesInput() bool {
	t := r.target()
	return t != nil && t.CapturesInput()
}

func (r *router) ProcessInput(key input.Key) bool {
	t := r.target()
	if t == nil {
		log.Warn().Str("pane", r.app.ActivePane.String()).Str("mode", r.app.mode.String()).Msg("no input handling for pane and mode")
		return false
	}
	return t.ProcessInput(key)
}

func (r *router) GetHelp() input.Help {
	t := r.target()
	if t == nil {
		return input.Help{}
	}
	return t.GetHelp()
}
