package styling

import (
	"fmt"

	"github.com/ja-he/jot/internal/config"
)

// Stylesheet represents all styles used by the application for rendering.
type Stylesheet struct {
	Normal     DrawStyling
	LineNumber DrawStyling

	TreeNormal    DrawStyling
	TreeDirectory DrawStyling
	TreeSelected  DrawStyling
	TreeHeader    DrawStyling

	TabActive   DrawStyling
	TabInactive DrawStyling

	Status        DrawStyling
	StatusMessage DrawStyling

	FindMatch        DrawStyling
	FindCurrentMatch DrawStyling
}

// NewStylesheetFromConfig constructs a new stylesheet from a given config
// stylesheet.
func NewStylesheetFromConfig(cfg config.Stylesheet) (*Stylesheet, error) {
	stylesheet := Stylesheet{}

	for _, entry := range []struct {
		name   string
		target *DrawStyling
		source config.Styling
	}{
		{"normal", &stylesheet.Normal, cfg.Normal},
		{"line-number", &stylesheet.LineNumber, cfg.LineNumber},
		{"tree-normal", &stylesheet.TreeNormal, cfg.TreeNormal},
		{"tree-directory", &stylesheet.TreeDirectory, cfg.TreeDirectory},
		{"tree-selected", &stylesheet.TreeSelected, cfg.TreeSelected},
		{"tree-header", &stylesheet.TreeHeader, cfg.TreeHeader},
		{"tab-active", &stylesheet.TabActive, cfg.TabActive},
		{"tab-inactive", &stylesheet.TabInactive, cfg.TabInactive},
		{"status", &stylesheet.Status, cfg.Status},
		{"status-message", &stylesheet.StatusMessage, cfg.StatusMessage},
		{"find-match", &stylesheet.FindMatch, cfg.FindMatch},
		{"find-current-match", &stylesheet.FindCurrentMatch, cfg.FindCurrentMatch},
	} {
		styling, err := StyleFromConfig(entry.source)
		if err != nil {
			return nil, fmt.Errorf("invalid styling '%s' (%w)", entry.name, err)
		}
		*entry.target = styling
	}

	return &stylesheet, nil
}

// StyleFromConfig constructs a DrawStyling from a config styling.
func StyleFromConfig(cfg config.Styling) (DrawStyling, error) {
	style, err := StyleFromHex(cfg.Fg, cfg.Bg)
	if err != nil {
		return nil, err
	}
	if cfg.Style != nil {
		style.bold = cfg.Style.Bold
		style.italic = cfg.Style.Italic
		style.underlined = cfg.Style.Underlined
	}
	return style, nil
}
