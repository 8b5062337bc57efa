package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/jot/internal/input"
	"github.com/ja-he/jot/internal/storage"
)

const treeHelpMessage = "Commands: d(elete), nf (new file), nd (new directory), rn (rename), h(elp)"

// executeTreeCommand opens the selected entry or, if a directory command was
// typed, starts that command.
func (a *App) executeTreeCommand() {
	command := strings.TrimSpace(a.CommandBuffer)
	a.CommandBuffer = ""

	switch command {
	case "":
		a.openSelected()
	case "d":
		if entry, ok := a.Directory.Selected(); ok {
			a.setMode(ConfirmDeleteMode{Path: entry.Path})
		} else {
			a.StatusMessage = "Nothing selected."
		}
	case "nf":
		a.setMode(PromptNewFileMode{})
	case "nd":
		a.setMode(PromptNewDirectoryMode{})
	case "rn":
		if entry, ok := a.Directory.Selected(); ok {
			a.setMode(PromptRenameMode{Path: entry.Path})
		} else {
			a.StatusMessage = "Nothing selected."
		}
	case "h":
		a.StatusMessage = treeHelpMessage + " | Keys: " + input.FormatHelp(a.GetHelp())
	default:
		a.StatusMessage = "Unknown command: " + command
	}
}

// openSelected descends into the selected directory or opens the selected
// file.
func (a *App) openSelected() {
	entry, ok := a.Directory.Selected()
	if !ok {
		return
	}
	if entry.IsDir {
		a.changeDirectory(entry.Path, "")
		return
	}
	a.openFile(entry.Path)
}

// goToParent browses the parent directory, selecting the directory that was
// browsed before.
func (a *App) goToParent() {
	parent := filepath.Dir(a.Directory.Path)
	if parent == a.Directory.Path {
		return
	}
	a.changeDirectory(parent, a.Directory.Path)
}

// changeDirectory browses the given directory, selecting the entry with the
// given path if there is one.
func (a *App) changeDirectory(path string, selectPath string) {
	view, err := storage.ReadDirectory(a.fs, path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("could not read directory")
		a.StatusMessage = "Error: " + err.Error()
		return
	}
	for i, e := range view.Entries {
		if e.Path == selectPath {
			view.Select(i)
			break
		}
	}
	a.Directory = view
	log.Debug().Str("path", view.Path).Int("entries", len(view.Entries)).Msg("browsing directory")
}

func (a *App) confirmDelete() {
	path, ok := a.PathToDelete()
	if !ok {
		return
	}
	a.deletePath(path)
	a.refreshDirectory()
	a.focus(PaneFileTree, FileTreeMode{})
}

func (a *App) cancelDelete() {
	a.focus(PaneFileTree, FileTreeMode{})
}

// deletePath deletes the path (recursively for directories) and closes all
// tabs for it or anything under it.
func (a *App) deletePath(path string) {
	info, err := a.fs.Stat(path)
	if err == nil && info.IsDir() {
		err = a.fs.RemoveAll(path)
	} else {
		err = a.fs.Remove(path)
	}
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("could not delete")
		a.StatusMessage = "Error: " + err.Error()
		return
	}

	for i := len(a.Tabs) - 1; i >= 0; i-- {
		if pageOpenFor(a.Tabs[i], path) {
			a.closeTab(i)
		}
	}
	a.StatusMessage = "Deleted " + filepath.Base(path)
	log.Debug().Str("path", path).Msg("deleted")
}

// createFile creates the (new) file and opens it for editing.
func (a *App) createFile(path string, name string) {
	err := a.fs.CreateFile(path)
	a.refreshDirectory()
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("could not create file")
		a.StatusMessage = "Error: " + err.Error()
		a.focus(PaneFileTree, FileTreeMode{})
		return
	}
	a.openFile(path)
	a.StatusMessage = "Created " + name
}

// createDirectory creates the (new) directory.
func (a *App) createDirectory(path string, name string) {
	err := a.fs.Mkdir(path)
	a.refreshDirectory()
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("could not create directory")
		a.StatusMessage = "Error: " + err.Error()
	} else {
		a.StatusMessage = "Created directory " + name
	}
	a.focus(PaneFileTree, FileTreeMode{})
}

// rename renames the path and repoints all tabs for it or anything under it.
func (a *App) rename(from, to string, name string) {
	err := a.fs.Rename(from, to)
	a.refreshDirectory()
	if err != nil {
		log.Warn().Err(err).Str("path", from).Str("to", to).Msg("could not rename")
		a.StatusMessage = "Error: " + err.Error()
		a.focus(PaneFileTree, FileTreeMode{})
		return
	}

	for _, p := range a.Tabs {
		if pageOpenFor(p, from) {
			p.FilePath = to + strings.TrimPrefix(p.FilePath, from)
		}
	}
	a.StatusMessage = "Renamed " + filepath.Base(from) + " to " + name
	a.focus(PaneFileTree, FileTreeMode{})
}

// isAtOrUnder returns whether path is base itself or lies under it.
func isAtOrUnder(path, base string) bool {
	if path == base {
		return true
	}
	return strings.HasPrefix(path, strings.TrimSuffix(base, string(os.PathSeparator))+string(os.PathSeparator))
}
