// Package cli provides the command-line interface for jot.
package cli

// CommandLineOpts are the options of the jot command line.
type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	EditorCommand EditorCommand `group:"Editor Options"`

	Args struct {
		File string `positional-arg-name:"FILE" description:"File to open in the first tab"`
	} `positional-args:"yes"`
}

// Opts are the parsed command line options.
var Opts CommandLineOpts
