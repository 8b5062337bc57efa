package app

// Pane is a part of the screen that can have focus.
type Pane int

const (
	// PaneEditor is the tab bar and editor view.
	PaneEditor Pane = iota
	// PaneFileTree is the directory listing.
	PaneFileTree
)

func (p Pane) String() string {
	switch p {
	case PaneEditor:
		return "editor"
	case PaneFileTree:
		return "file-tree"
	default:
		return "unknown"
	}
}

// Mode is the input mode of the editor.
//
// It is implemented by exactly the mode types of this package.
// Modes that need to remember a path (which entry to delete or rename) carry
// it, so that a pending path can't exist without its mode.
type Mode interface {
	String() string
	isMode()
}

// CommandMode takes a command line (e.g. "w notes.txt") for the editor.
type CommandMode struct{}

// EditMode inserts typed text into the active page.
type EditMode struct{}

// FileTreeMode navigates the directory listing and takes directory commands.
type FileTreeMode struct{}

// FindMode searches the active page.
type FindMode struct{}

// ConfirmDeleteMode asks whether Path should be deleted.
type ConfirmDeleteMode struct{ Path string }

// PromptSaveMode asks for a file name to save the active page to.
type PromptSaveMode struct{}

// PromptSaveAndQuitMode asks for a file name to save the active page to
// before quitting.
type PromptSaveAndQuitMode struct{}

// PromptNewFileMode asks for the name of a file to create.
type PromptNewFileMode struct{}

// PromptNewDirectoryMode asks for the name of a directory to create.
type PromptNewDirectoryMode struct{}

// PromptRenameMode asks for the new name of Path.
type PromptRenameMode struct{ Path string }

func (CommandMode) isMode()            {}
func (EditMode) isMode()               {}
func (FileTreeMode) isMode()           {}
func (FindMode) isMode()               {}
func (ConfirmDeleteMode) isMode()      {}
func (PromptSaveMode) isMode()         {}
func (PromptSaveAndQuitMode) isMode()  {}
func (PromptNewFileMode) isMode()      {}
func (PromptNewDirectoryMode) isMode() {}
func (PromptRenameMode) isMode()       {}

func (CommandMode) String() string            { return "command" }
func (EditMode) String() string               { return "edit" }
func (FileTreeMode) String() string           { return "file-tree" }
func (FindMode) String() string               { return "find" }
func (ConfirmDeleteMode) String() string      { return "confirm-delete" }
func (PromptSaveMode) String() string         { return "prompt-save" }
func (PromptSaveAndQuitMode) String() string  { return "prompt-save-and-quit" }
func (PromptNewFileMode) String() string      { return "prompt-new-file" }
func (PromptNewDirectoryMode) String() string { return "prompt-new-directory" }
func (PromptRenameMode) String() string       { return "prompt-rename" }

// IsDialog returns whether the mode is a modal dialog, i.E. one whose input
// handling does not depend on the focused pane.
func IsDialog(m Mode) bool {
	switch m.(type) {
	case ConfirmDeleteMode, PromptNewFileMode, PromptNewDirectoryMode, PromptRenameMode:
		return true
	default:
		return false
	}
}
