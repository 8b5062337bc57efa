package app

import (
	"fmt"

	"github.com/ja-he/jot/internal/control/action"
	"github.com/ja-he/jot/internal/input"
	"github.com/ja-he/jot/internal/input/processors"
)

// buildInput constructs the input processors for every input target from the
// given key mappings.
// A mapping to an action that is unknown for its target is an error.
func (a *App) buildInput(keys input.InputConfig) error {
	var err error

	a.editorInput, err = textProcessor("editor", keys.Editor, a.editorActions(), a.insertRune)
	if err != nil {
		return err
	}
	a.commandInput, err = textProcessor("command", keys.Command, a.commandActions(), a.appendToCommandBuffer)
	if err != nil {
		return err
	}
	a.findInput, err = textProcessor("find", keys.Find, a.findActions(), a.findRune)
	if err != nil {
		return err
	}
	a.promptInput, err = textProcessor("prompt", keys.Prompt, a.promptActions(), a.appendToCommandBuffer)
	if err != nil {
		return err
	}
	a.fileTreeInput, err = textProcessor("file-tree", keys.FileTree, a.fileTreeActions(), a.appendToCommandBuffer)
	if err != nil {
		return err
	}

	confirmMappings, err := resolveActions("confirm", keys.Confirm, a.confirmActions())
	if err != nil {
		return err
	}
	a.confirmInput, err = input.ConstructInputTree(confirmMappings)
	if err != nil {
		return fmt.Errorf("invalid confirm mappings (%w)", err)
	}

	a.input = processors.NewModalInputProcessor(&router{app: a})
	return nil
}

// targetInput returns the input processor for the named target, as named in
// the key configuration.
func (a *App) targetInput(target string) (input.SimpleInputProcessor, bool) {
	switch target {
	case "editor":
		return a.editorInput, true
	case "command":
		return a.commandInput, true
	case "find":
		return a.findInput, true
	case "prompt":
		return a.promptInput, true
	case "file-tree":
		return a.fileTreeInput, true
	case "confirm":
		return a.confirmInput, true
	default:
		return nil, false
	}
}

func textProcessor(
	target string,
	keys map[input.Keyspec]input.Actionspec,
	actions map[input.Actionspec]action.Action,
	runeCallback func(rune),
) (input.SimpleInputProcessor, error) {
	mappings, err := resolveActions(target, keys, actions)
	if err != nil {
		return nil, err
	}
	p, err := processors.NewTextInputProcessor(mappings, runeCallback)
	if err != nil {
		return nil, fmt.Errorf("invalid %s mappings (%w)", target, err)
	}
	return p, nil
}

func resolveActions(
	target string,
	keys map[input.Keyspec]input.Actionspec,
	actions map[input.Actionspec]action.Action,
) (map[input.Keyspec]action.Action, error) {
	result := make(map[input.Keyspec]action.Action, len(keys))
	for keyspec, actionspec := range keys {
		a, ok := actions[actionspec]
		if !ok {
			return nil, fmt.Errorf("unknown %s action '%s' (mapped to '%s')", target, actionspec, keyspec)
		}
		result[keyspec] = a
	}
	return result, nil
}

func (a *App) editorActions() map[input.Actionspec]action.Action {
	return map[input.Actionspec]action.Action{
		"insert-newline":            action.Named("insert newline", func() { a.withPage(pageInsertNewline) }),
		"backspace":                 action.Named("delete backwards", func() { a.withPage(pageDelete) }),
		"move-cursor-left":          action.Named("move cursor left", a.moveCursorLeft),
		"move-cursor-right":         action.Named("move cursor right", a.moveCursorRight),
		"move-cursor-up":            action.Named("move cursor up", a.moveCursorUp),
		"move-cursor-down":          action.Named("move cursor down", a.moveCursorDown),
		"move-cursor-to-line-start": action.Named("move cursor to line start", func() { a.withPage(pageMoveToLineStart) }),
		"move-cursor-to-line-end":   action.Named("move cursor to line end", func() { a.withPage(pageMoveToLineEnd) }),
		"scroll-up":                 action.Named("scroll up a page", func() { a.ScrollEditor(-a.pageHeight()) }),
		"scroll-down":               action.Named("scroll down a page", func() { a.ScrollEditor(a.pageHeight()) }),
		"insert-indentation":        action.Named("insert indentation", a.insertIndentation),
		"enter-command-mode":        action.Named("enter command mode", func() { a.setMode(CommandMode{}) }),
		"copy-line":                 action.Named("copy line", a.copyLine),
		"paste":                     action.Named("paste", a.paste),
	}
}

func (a *App) commandActions() map[input.Actionspec]action.Action {
	return map[input.Actionspec]action.Action{
		"backspace":         action.Named("delete backwards", a.popCommandBuffer),
		"execute":           action.Named("execute command", a.executeCommand),
		"enter-edit-mode":   action.Named("enter edit mode", a.leaveCommandMode),
		"focus-file-tree":   action.Named("focus file tree", a.focusFileTree),
		"move-cursor-left":  action.Named("move cursor left", a.moveCursorLeft),
		"move-cursor-right": action.Named("move cursor right", a.moveCursorRight),
		"move-cursor-up":    action.Named("move cursor up", a.moveCursorUp),
		"move-cursor-down":  action.Named("move cursor down", a.moveCursorDown),
	}
}

func (a *App) findActions() map[input.Actionspec]action.Action {
	return map[input.Actionspec]action.Action{
		"backspace": action.Named("delete backwards", a.findBackspace),
		"navigate":  action.Named("navigate matches", a.commitFind),
		"exit":      action.Named("exit find", func() { a.setMode(CommandMode{}) }),
	}
}

func (a *App) promptActions() map[input.Actionspec]action.Action {
	return map[input.Actionspec]action.Action{
		"backspace": action.Named("delete backwards", a.popCommandBuffer),
		"confirm":   action.Named("confirm", a.confirmPrompt),
		"cancel":    action.Named("cancel", a.cancelPrompt),
	}
}

func (a *App) fileTreeActions() map[input.Actionspec]action.Action {
	return map[input.Actionspec]action.Action{
		"backspace":            action.Named("delete backwards", a.popCommandBuffer),
		"select-previous":      action.Named("select previous entry", func() { a.Directory.MoveUp() }),
		"select-next":          action.Named("select next entry", func() { a.Directory.MoveDown() }),
		"go-to-parent":         action.Named("go to parent directory", a.goToParent),
		"execute":              action.Named("open entry or execute command", a.executeTreeCommand),
		"focus-editor-command": action.Named("focus editor command line", a.focusEditorCommand),
		"focus-editor":         action.Named("focus editor", a.focusEditor),
	}
}

func (a *App) confirmActions() map[input.Actionspec]action.Action {
	return map[input.Actionspec]action.Action{
		"confirm": action.Named("delete", a.confirmDelete),
		"cancel":  action.Named("cancel", a.cancelDelete),
	}
}
