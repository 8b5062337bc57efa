package config

import (
	"github.com/ja-he/jot/internal/input"
)

// Default returns the default configuration for the given colorscheme type
// (light or dark).
func Default(colorschemeType ColorschemeType) Config {
	watch := true
	return Config{
		Stylesheet: defaultStylesheet(colorschemeType),
		Settings: Settings{
			TreeWidthPercent: 25,
			TabWidth:         4,
			WatchDirectory:   &watch,
		},
		Keys: DefaultKeys(),
	}
}

// DefaultKeys returns the default key mappings for every input target.
func DefaultKeys() input.InputConfig {
	return input.InputConfig{
		Editor: map[input.Keyspec]input.Actionspec{
			"<cr>":    "insert-newline",
			"<bs>":    "backspace",
			"<c-bs>":  "backspace",
			"<left>":  "move-cursor-left",
			"<right>": "move-cursor-right",
			"<up>":    "move-cursor-up",
			"<down>":  "move-cursor-down",
			"<home>":  "move-cursor-to-line-start",
			"<end>":   "move-cursor-to-line-end",
			"<pgup>":  "scroll-up",
			"<pgdn>":  "scroll-down",
			"<tab>":   "insert-indentation",
			"<esc>":   "enter-command-mode",
			"<c-c>":   "copy-line",
			"<c-v>":   "paste",
		},
		Command: map[input.Keyspec]input.Actionspec{
			"<bs>":    "backspace",
			"<cr>":    "execute",
			"<esc>":   "enter-edit-mode",
			"<tab>":   "focus-file-tree",
			"<left>":  "move-cursor-left",
			"<right>": "move-cursor-right",
			"<up>":    "move-cursor-up",
			"<down>":  "move-cursor-down",
		},
		Find: map[input.Keyspec]input.Actionspec{
			"<bs>":  "backspace",
			"<cr>":  "navigate",
			"<esc>": "exit",
		},
		Prompt: map[input.Keyspec]input.Actionspec{
			"<bs>":  "backspace",
			"<cr>":  "confirm",
			"<esc>": "cancel",
		},
		FileTree: map[input.Keyspec]input.Actionspec{
			"<bs>":   "backspace",
			"<up>":   "select-previous",
			"<down>": "select-next",
			"<left>": "go-to-parent",
			"<cr>":   "execute",
			"<esc>":  "focus-editor-command",
			"<tab>":  "focus-editor",
		},
		Confirm: map[input.Keyspec]input.Actionspec{
			"y":     "confirm",
			"Y":     "confirm",
			"n":     "cancel",
			"N":     "cancel",
			"<esc>": "cancel",
		},
	}
}

func defaultStylesheet(colorschemeType ColorschemeType) Stylesheet {
	if colorschemeType == Dark {
		return Stylesheet{
			Normal:           Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
			LineNumber:       Styling{Fg: "#808080", Bg: "#101010", Style: &FontStyle{}},
			TreeNormal:       Styling{Fg: "#f0f0f0", Bg: "#202020", Style: &FontStyle{}},
			TreeDirectory:    Styling{Fg: "#ccebff", Bg: "#202020", Style: &FontStyle{Bold: true}},
			TreeSelected:     Styling{Fg: "#000000", Bg: "#ccebff", Style: &FontStyle{}},
			TreeHeader:       Styling{Fg: "#f0f0f0", Bg: "#404040", Style: &FontStyle{Bold: true}},
			TabActive:        Styling{Fg: "#ffffff", Bg: "#0065a3", Style: &FontStyle{Bold: true}},
			TabInactive:      Styling{Fg: "#c0c0c0", Bg: "#303030", Style: &FontStyle{}},
			Status:           Styling{Fg: "#f0f0f0", Bg: "#404040", Style: &FontStyle{}},
			StatusMessage:    Styling{Fg: "#fff0cc", Bg: "#404040", Style: &FontStyle{Bold: true}},
			FindMatch:        Styling{Fg: "#000000", Bg: "#cc8f00", Style: &FontStyle{}},
			FindCurrentMatch: Styling{Fg: "#ffffff", Bg: "#cc0000", Style: &FontStyle{Bold: true}},
		}
	} else {
		return Stylesheet{
			Normal:           Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			LineNumber:       Styling{Fg: "#808080", Bg: "#f0f0f0", Style: &FontStyle{}},
			TreeNormal:       Styling{Fg: "#202020", Bg: "#f8f8f8", Style: &FontStyle{}},
			TreeDirectory:    Styling{Fg: "#0065a3", Bg: "#f8f8f8", Style: &FontStyle{Bold: true}},
			TreeSelected:     Styling{Fg: "#ffffff", Bg: "#0065a3", Style: &FontStyle{}},
			TreeHeader:       Styling{Fg: "#000000", Bg: "#d0d0d0", Style: &FontStyle{Bold: true}},
			TabActive:        Styling{Fg: "#ffffff", Bg: "#0065a3", Style: &FontStyle{Bold: true}},
			TabInactive:      Styling{Fg: "#404040", Bg: "#e0e0e0", Style: &FontStyle{}},
			Status:           Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			StatusMessage:    Styling{Fg: "#882222", Bg: "#f0f0f0", Style: &FontStyle{Bold: true}},
			FindMatch:        Styling{Fg: "#000000", Bg: "#fff0cc", Style: &FontStyle{}},
			FindCurrentMatch: Styling{Fg: "#ffffff", Bg: "#ff0000", Style: &FontStyle{Bold: true}},
		}
	}
}
