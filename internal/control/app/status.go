package app

import (
	"fmt"
	"path/filepath"
)

// StatusLine returns the text for the status bar: the status message, if
// there is one, else a prompt for the current mode.
func (a *App) StatusLine() string {
	if a.StatusMessage != "" {
		return a.StatusMessage
	}
	return a.Prompt()
}

// Prompt returns the prompt for the current mode, including what has been
// typed so far.
func (a *App) Prompt() string {
	switch m := a.mode.(type) {
	case CommandMode:
		return ":" + a.CommandBuffer
	case EditMode:
		return "-- EDIT --"
	case FileTreeMode:
		return "tree> " + a.CommandBuffer
	case FindMode:
		if a.Find.Navigating && len(a.Find.Matches) > 0 {
			return fmt.Sprintf("/%s [%d/%d] (n/N)", a.Find.Query, a.Find.Current+1, len(a.Find.Matches))
		}
		if a.Find.Query != "" && len(a.Find.Matches) == 0 {
			return "/" + a.Find.Query + " [no matches]"
		}
		return "/" + a.Find.Query
	case ConfirmDeleteMode:
		return fmt.Sprintf("Delete %s? (y/n)", filepath.Base(m.Path))
	case PromptSaveMode:
		return "Save as: " + a.CommandBuffer
	case PromptSaveAndQuitMode:
		return "Save as (then quit): " + a.CommandBuffer
	case PromptNewFileMode:
		return "New file: " + a.CommandBuffer
	case PromptNewDirectoryMode:
		return "New directory: " + a.CommandBuffer
	case PromptRenameMode:
		return fmt.Sprintf("Rename %s to: %s", filepath.Base(m.Path), a.CommandBuffer)
	default:
		return ""
	}
}
