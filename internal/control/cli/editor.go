package cli

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/jot/internal/config"
	"github.com/ja-he/jot/internal/control/app"
	"github.com/ja-he/jot/internal/potatolog"
	"github.com/ja-he/jot/internal/styling"
)

// EditorCommand runs the editor in the terminal.
type EditorCommand struct {
	Theme         string `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in the config file)"`
	Config        string `short:"c" long:"config" description:"Specify the config file (.yaml or .toml), instead of the one in $JOT_HOME" value-name:"<file>"`
	Directory     string `short:"d" long:"directory" description:"Specify the directory to browse initially" value-name:"<dir>"`
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs dropped)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`
}

// Execute runs the editor, opening the file given as the first argument, if
// any.
func (command *EditorCommand) Execute(args []string) error {
	// set up stderr logger until TUI set up
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// create TUI logger
	var logWriter io.Writer
	if command.LogOutputFile != "" {
		var fileLogger io.Writer
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			stderrLogger.Fatal().Err(err).Str("file", command.LogOutputFile).Msg("could not open file for logging")
		}
		defer file.Close()
		if command.LogPretty {
			fileLogger = zerolog.ConsoleWriter{Out: file, NoColor: true}
		} else {
			fileLogger = file
		}
		logWriter = zerolog.MultiLevelWriter(fileLogger, &potatolog.GlobalMemoryLogReaderWriter)
	} else {
		logWriter = &potatolog.GlobalMemoryLogReaderWriter
	}
	tuiLogger := zerolog.New(logWriter).With().Timestamp().Caller().Logger()

	// temporarily log to both (in case the TUI doesn't get set we want the info
	// on the stderr logger, otherwise the TUI logger is relevant)
	log.Logger = log.Output(zerolog.MultiLevelWriter(stderrLogger, tuiLogger))

	var theme config.ColorschemeType
	switch command.Theme {
	case "light":
		theme = config.Light
	default:
		theme = config.Dark
	}

	// read config from file
	configPath := command.Config
	if configPath == "" {
		configPath = findConfigFile(jotHome())
	}
	configFileData := []byte{}
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			configFileData = data
		case command.Config != "":
			stderrLogger.Fatal().Err(err).Str("file", configPath).Msg("can't read given config file")
		default:
			log.Warn().Err(err).Str("file", configPath).Msg("can't read config file, using defaults")
		}
	}
	configData, err := config.ParseConfigAugmentDefaults(theme, config.FormatFromPath(configPath), configFileData)
	if err != nil {
		stderrLogger.Fatal().Err(err).Str("file", configPath).Msg("can't parse config data")
	}

	stylesheet, err := styling.NewStylesheetFromConfig(configData.Stylesheet)
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("invalid stylesheet")
	}

	file := ""
	if len(args) > 0 {
		file = args[0]
	}
	a, err := app.NewApp(app.Options{
		Keys:      configData.Keys,
		TabWidth:  configData.Settings.TabWidth,
		Directory: command.Directory,
		File:      file,
	})
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("could not start editor")
	}

	controller, err := NewController(a, stylesheet, configData.Settings)
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("could not set up terminal")
	}

	// now that the screen is initialized, we'll always want the TUI logger, so
	// we're making it the global logger
	log.Logger = tuiLogger

	runErr := controller.Run()

	// the terminal is restored, so what went wrong during the session can be
	// shown
	log.Logger = stderrLogger
	echoLog(stderrLogger, potatolog.GlobalMemoryLogReaderWriter.AtLeast(zerolog.WarnLevel))

	return runErr
}

// jotHome returns the directory holding jot's configuration.
func jotHome() string {
	if home := os.Getenv("JOT_HOME"); home != "" {
		return strings.TrimRight(home, "/")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "jot")
}

// findConfigFile returns the path of the config file in the given directory,
// preferring YAML over TOML, or "" if there is none.
func findConfigFile(dir string) string {
	for _, name := range []string{"config.yaml", "config.yml", "config.toml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		} else if !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Str("file", path).Msg("can't access config file")
		}
	}
	return ""
}

// echoLog writes the given log entries to the given logger.
func echoLog(logger zerolog.Logger, entries []potatolog.LogEntry) {
	for _, entry := range entries {
		level, err := zerolog.ParseLevel(potatolog.LevelOf(entry))
		if err != nil {
			level = zerolog.NoLevel
		}
		event := logger.WithLevel(level)
		for k, v := range entry {
			switch k {
			case zerolog.LevelFieldName, zerolog.MessageFieldName, zerolog.TimestampFieldName, zerolog.CallerFieldName:
			default:
				event = event.Interface(k, v)
			}
		}
		event.Msg(potatolog.MessageOf(entry))
	}
}
