package cli

import (
	"fmt"
	"runtime/debug"
)

// version is set at build time, e.g. via
// `-ldflags "-X github.com/ja-he/jot/internal/control/cli.version=v1.0.0"`.
var version = ""

// VersionCommand prints the program version.
type VersionCommand struct{}

// Execute prints the version.
func (command *VersionCommand) Execute(_ []string) error {
	fmt.Println("jot", Version())
	return nil
}

// Version returns the program version, falling back to the module version
// from the build info.
func Version() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}
