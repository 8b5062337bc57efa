package app

import (
	"github.com/rs/zerolog/log"

	"github.com/ja-he/jot/internal/model"
	"github.com/ja-he/jot/internal/storage"
)

// confirmPrompt performs what the current prompt asks for with the name in
// the command buffer.
func (a *App) confirmPrompt() {
	name := a.CommandBuffer
	switch m := a.mode.(type) {
	case PromptSaveMode:
		a.saveAs(name, false)
	case PromptSaveAndQuitMode:
		a.saveAs(name, true)
	case PromptNewFileMode:
		if name == "" {
			a.StatusMessage = "File name must not be empty."
			return
		}
		a.CommandBuffer = ""
		a.createFile(a.resolve(name), name)
	case PromptNewDirectoryMode:
		if name == "" {
			a.StatusMessage = "Directory name must not be empty."
			return
		}
		a.CommandBuffer = ""
		a.createDirectory(a.resolve(name), name)
	case PromptRenameMode:
		if name == "" {
			a.StatusMessage = "New name must not be empty."
			return
		}
		a.CommandBuffer = ""
		a.rename(m.Path, a.resolve(name), name)
	default:
		log.Warn().Str("mode", a.mode.String()).Msg("prompt confirmed outside of a prompt mode")
	}
}

// cancelPrompt leaves the current prompt without doing anything.
func (a *App) cancelPrompt() {
	a.CommandBuffer = ""
	switch a.mode.(type) {
	case PromptSaveMode, PromptSaveAndQuitMode:
		a.StatusMessage = "Save cancelled."
		a.setMode(CommandMode{})
	default:
		a.focus(PaneFileTree, FileTreeMode{})
	}
}

// saveAs saves the active page to the named file.
// On failure, the prompt stays open with the name kept for another attempt.
func (a *App) saveAs(name string, quit bool) {
	if name == "" {
		return
	}
	page := a.ActivePage()
	if page == nil {
		a.StatusMessage = "No open buffer."
		a.CommandBuffer = ""
		a.setMode(CommandMode{})
		return
	}
	path := a.resolve(name)
	if err := storage.SavePage(a.fs, page, path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("could not save page")
		a.StatusMessage = "Error: " + err.Error()
		return
	}
	a.StatusMessage = "Saved to " + name
	a.CommandBuffer = ""
	a.setMode(CommandMode{})
	if quit {
		a.ShouldQuit = true
	}
}

// pageOpenFor returns whether the page is backed by the path or by something
// under it.
func pageOpenFor(p *model.Page, path string) bool {
	return p.FilePath != "" && isAtOrUnder(p.FilePath, path)
}
