package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/jot/internal/input"
	"github.com/ja-he/jot/internal/model"
	"github.com/ja-he/jot/internal/storage"
)

const helpMessage = "Commands: n(ew), f(ind), q(uit), x/exit, w(rite) [path], wq [path], wx, r(evert), h(elp) [keys|<target>]"

// executeCommand executes the command line in the command buffer.
func (a *App) executeCommand() {
	line := a.CommandBuffer
	a.CommandBuffer = ""

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	command, arg := fields[0], ""
	if len(fields) > 1 {
		arg = fields[1]
	}
	log.Debug().Str("command", command).Str("arg", arg).Msg("executing command")

	switch command {
	case "n", "new":
		a.openNewPage()
	case "f", "find":
		a.withPage(func(*model.Page) { a.setMode(FindMode{}) })
	case "q", "quit":
		a.withPage(func(*model.Page) { a.closeTab(a.ActiveTab) })
	case "x", "exit":
		a.ShouldQuit = true
	case "wx":
		a.writeAllAndQuit()
	case "h", "help":
		a.help(arg)
	case "r", "revert":
		a.withPage(a.revert)
	case "w", "write":
		a.withPage(func(p *model.Page) { a.write(p, arg, false) })
	case "wq":
		a.withPage(func(p *model.Page) { a.write(p, arg, true) })
	default:
		a.StatusMessage = "Unknown command: " + line
	}
}

// help shows the command help or, given a target, the keys mapped for that
// target. "keys" are those of the current input target, the command line.
func (a *App) help(target string) {
	switch target {
	case "":
		a.StatusMessage = helpMessage
	case "keys":
		a.StatusMessage = "Keys: " + input.FormatHelp(a.GetHelp())
	default:
		processor, ok := a.targetInput(target)
		if !ok {
			a.StatusMessage = "Unknown help target: " + target
			return
		}
		a.StatusMessage = fmt.Sprintf("Keys (%s): %s", target, input.FormatHelp(processor.GetHelp()))
	}
}

// openNewPage opens a new, empty and pathless page for editing.
func (a *App) openNewPage() {
	a.Tabs = append(a.Tabs, model.NewPage())
	a.ActiveTab = len(a.Tabs) - 1
	a.setMode(EditMode{})
}

// write saves the page to the path as typed or, without one, its own path.
// Without any path it prompts for one.
func (a *App) write(p *model.Page, arg string, closeAfter bool) {
	display, path := arg, ""
	switch {
	case arg != "":
		path = a.resolve(arg)
	case p.FilePath != "":
		display, path = p.FilePath, p.FilePath
	default:
		if closeAfter {
			a.setMode(PromptSaveAndQuitMode{})
		} else {
			a.setMode(PromptSaveMode{})
		}
		return
	}

	if err := storage.SavePage(a.fs, p, path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("could not save page")
		a.StatusMessage = "Error: " + err.Error()
		return
	}
	a.StatusMessage = "Saved to " + display
	if closeAfter {
		a.closeTab(a.ActiveTab)
	}
}

// writeAllAndQuit saves every page with a path and quits, even if saving
// failed for some of them.
func (a *App) writeAllAndQuit() {
	var errs []string
	saved := 0
	for _, p := range a.Tabs {
		if p.FilePath == "" {
			continue
		}
		if err := storage.SavePage(a.fs, p, p.FilePath); err != nil {
			log.Warn().Err(err).Str("path", p.FilePath).Msg("could not save page")
			errs = append(errs, fmt.Sprintf("%s: %s", p.FilePath, err.Error()))
			continue
		}
		saved++
	}
	if len(errs) > 0 {
		a.StatusMessage = "Errors saving: " + strings.Join(errs, "; ")
	} else {
		a.StatusMessage = fmt.Sprintf("Saved %d file(s).", saved)
	}
	a.ShouldQuit = true
}

func (a *App) revert(p *model.Page) {
	err := storage.RevertPage(a.fs, p)
	switch {
	case errors.Is(err, storage.ErrNoPath):
		a.StatusMessage = "No file to revert from."
	case err != nil:
		log.Warn().Err(err).Str("path", p.FilePath).Msg("could not revert page")
		a.StatusMessage = "Error reading file: " + p.FilePath
	default:
		a.StatusMessage = "Reverted to saved version."
	}
}
