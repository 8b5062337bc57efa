// Package config implements the configuration file format of jot and the
// defaults it augments.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/ja-he/jot/internal/input"
)

// Config is the configuration data as present in a config file at
// '${JOT_HOME}/config.yaml' (or 'config.toml').
type Config struct {
	Stylesheet Stylesheet        `yaml:"stylesheet" toml:"stylesheet"`
	Settings   Settings          `yaml:"settings" toml:"settings"`
	Keys       input.InputConfig `yaml:"keys" toml:"keys"`
}

// Settings are the behavioral settings of the editor.
type Settings struct {
	// TreeWidthPercent is the share of the terminal width taken by the file
	// tree pane.
	TreeWidthPercent int `yaml:"tree-width-percent,omitempty" toml:"tree-width-percent,omitempty"`
	// TabWidth is the number of spaces inserted for <tab> in the editor.
	TabWidth int `yaml:"tab-width,omitempty" toml:"tab-width,omitempty"`
	// WatchDirectory enables refreshing the file tree on external changes.
	WatchDirectory *bool `yaml:"watch-directory,omitempty" toml:"watch-directory,omitempty"`
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Normal           Styling `yaml:"normal" toml:"normal"`
	LineNumber       Styling `yaml:"line-number" toml:"line-number"`
	TreeNormal       Styling `yaml:"tree-normal" toml:"tree-normal"`
	TreeDirectory    Styling `yaml:"tree-directory" toml:"tree-directory"`
	TreeSelected     Styling `yaml:"tree-selected" toml:"tree-selected"`
	TreeHeader       Styling `yaml:"tree-header" toml:"tree-header"`
	TabActive        Styling `yaml:"tab-active" toml:"tab-active"`
	TabInactive      Styling `yaml:"tab-inactive" toml:"tab-inactive"`
	Status           Styling `yaml:"status" toml:"status"`
	StatusMessage    Styling `yaml:"status-message" toml:"status-message"`
	FindMatch        Styling `yaml:"find-match" toml:"find-match"`
	FindCurrentMatch Styling `yaml:"find-current-match" toml:"find-current-match"`
}

// A Styling is a styling as defined in a config file.
// It must contain fore- and background colors and can optionally specify font
// style (bold, italic, underlined).
type Styling struct {
	Fg    string     `yaml:"fg" toml:"fg"`
	Bg    string     `yaml:"bg" toml:"bg"`
	Style *FontStyle `yaml:"style" toml:"style"`
}

// A FontStyle can be any combination of bold, italic, and underlined.
type FontStyle struct {
	Bold       bool `yaml:"bold,omitempty" toml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty" toml:"italic,omitempty"`
	Underlined bool `yaml:"underlined,omitempty" toml:"underlined,omitempty"`
}

// Format is a config file format.
type Format int

const (
	_ Format = iota
	// YAML is the default format, 'config.yaml'.
	YAML
	// TOML is the alternative format, 'config.toml'.
	TOML
)

// FormatFromPath infers the config format from a file name, defaulting to
// YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return TOML
	}
	return YAML
}

// ParseConfigAugmentDefaults parses the configuration specified in data of the
// given format and uses it to augment a given default configuration.
func ParseConfigAugmentDefaults(defaultTheme ColorschemeType, format Format, data []byte) (Config, error) {
	defaultConfig := Default(defaultTheme)

	parsedConfig := Config{}
	var err error
	switch format {
	case TOML:
		err = toml.Unmarshal(data, &parsedConfig)
	default:
		err = yaml.Unmarshal(data, &parsedConfig)
	}
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling config (%s)", err)
	}

	return defaultConfig.augmentWith(parsedConfig), nil
}

// WatchDirectoryEnabled returns whether the directory watcher is enabled.
func (s Settings) WatchDirectoryEnabled() bool {
	return s.WatchDirectory == nil || *s.WatchDirectory
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)
	result.Settings = base.Settings.augmentWith(augment.Settings)
	result.Keys = augmentKeys(base.Keys, augment.Keys)

	return result
}

func (base Settings) augmentWith(augment Settings) Settings {
	result := base
	if augment.TreeWidthPercent > 0 && augment.TreeWidthPercent < 100 {
		result.TreeWidthPercent = augment.TreeWidthPercent
	}
	if augment.TabWidth > 0 {
		result.TabWidth = augment.TabWidth
	}
	if augment.WatchDirectory != nil {
		watch := *augment.WatchDirectory
		result.WatchDirectory = &watch
	}
	return result
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	result.Normal.overwriteIfDefined(augment.Normal)
	result.LineNumber.overwriteIfDefined(augment.LineNumber)
	result.TreeNormal.overwriteIfDefined(augment.TreeNormal)
	result.TreeDirectory.overwriteIfDefined(augment.TreeDirectory)
	result.TreeSelected.overwriteIfDefined(augment.TreeSelected)
	result.TreeHeader.overwriteIfDefined(augment.TreeHeader)
	result.TabActive.overwriteIfDefined(augment.TabActive)
	result.TabInactive.overwriteIfDefined(augment.TabInactive)
	result.Status.overwriteIfDefined(augment.Status)
	result.StatusMessage.overwriteIfDefined(augment.StatusMessage)
	result.FindMatch.overwriteIfDefined(augment.FindMatch)
	result.FindCurrentMatch.overwriteIfDefined(augment.FindCurrentMatch)

	return result
}

func (s *Styling) overwriteIfDefined(augment Styling) {
	if augment.Fg != "" && augment.Bg != "" {
		s.Fg = augment.Fg
		s.Bg = augment.Bg
	}
	if augment.Style != nil {
		style := *augment.Style
		s.Style = &style
	}
}

// augmentKeys adds the augmenting mappings to (copies of) the base mappings,
// replacing base mappings for the same keys.
func augmentKeys(base, augment input.InputConfig) input.InputConfig {
	merge := func(b, a map[input.Keyspec]input.Actionspec) map[input.Keyspec]input.Actionspec {
		result := make(map[input.Keyspec]input.Actionspec, len(b)+len(a))
		for k, v := range b {
			result[k] = v
		}
		for k, v := range a {
			result[k] = v
		}
		return result
	}
	return input.InputConfig{
		Editor:   merge(base.Editor, augment.Editor),
		Command:  merge(base.Command, augment.Command),
		Find:     merge(base.Find, augment.Find),
		Prompt:   merge(base.Prompt, augment.Prompt),
		FileTree: merge(base.FileTree, augment.FileTree),
		Confirm:  merge(base.Confirm, augment.Confirm),
	}
}

// A ColorschemeType can either be light or dark.
type ColorschemeType = int

const (
	_ ColorschemeType = iota
	Dark
	Light
)
