package app

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/jot/internal/model"
)

func pageInsertNewline(p *model.Page)   { p.InsertNewline() }
func pageDelete(p *model.Page)          { p.Delete() }
func pageMoveToLineStart(p *model.Page) { p.MoveToLineStart() }
func pageMoveToLineEnd(p *model.Page)   { p.MoveToLineEnd() }

func (a *App) insertRune(r rune) {
	a.withPage(func(p *model.Page) { p.InsertRune(r) })
}

func (a *App) insertIndentation() {
	a.withPage(func(p *model.Page) { p.InsertText(strings.Repeat(" ", a.tabWidth)) })
}

func (a *App) moveCursorLeft()  { a.withPage(func(p *model.Page) { p.MoveLeft() }) }
func (a *App) moveCursorRight() { a.withPage(func(p *model.Page) { p.MoveRight() }) }
func (a *App) moveCursorUp()    { a.withPage(func(p *model.Page) { p.MoveUp() }) }
func (a *App) moveCursorDown()  { a.withPage(func(p *model.Page) { p.MoveDown() }) }

func (a *App) copyLine() {
	a.withPage(func(p *model.Page) {
		if err := a.clipboard.WriteAll(p.CurrentLine()); err != nil {
			log.Warn().Err(err).Msg("could not write to clipboard")
			a.StatusMessage = "Error: " + err.Error()
			return
		}
		a.StatusMessage = "Copied line."
	})
}

func (a *App) paste() {
	a.withPage(func(p *model.Page) {
		text, err := a.clipboard.ReadAll()
		if err != nil {
			log.Warn().Err(err).Msg("could not read from clipboard")
			a.StatusMessage = "Error: " + err.Error()
			return
		}
		p.InsertText(text)
	})
}

// leaveCommandMode returns to editing, if there is anything to edit.
func (a *App) leaveCommandMode() {
	if len(a.Tabs) == 0 {
		return
	}
	a.setMode(EditMode{})
}

func (a *App) focusFileTree() {
	a.CommandBuffer = ""
	a.focus(PaneFileTree, FileTreeMode{})
}

func (a *App) focusEditorCommand() {
	a.CommandBuffer = ""
	a.focus(PaneEditor, CommandMode{})
}

func (a *App) focusEditor() {
	a.CommandBuffer = ""
	a.focus(PaneEditor, a.editModeIfTabs())
}

func (a *App) appendToCommandBuffer(r rune) {
	a.CommandBuffer += string(r)
}

func (a *App) popCommandBuffer() {
	runes := []rune(a.CommandBuffer)
	if len(runes) > 0 {
		a.CommandBuffer = string(runes[:len(runes)-1])
	}
}
