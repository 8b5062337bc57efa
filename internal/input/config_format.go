package input

// Keyspec is a key sequence as written in configuration, e.g. "<c-v>" or "y".
type Keyspec string

// Actionspec names an action as written in configuration, e.g. "delete".
type Actionspec string

// InputConfig holds the key mappings for every input target of the editor.
//
// Targets that accept text (editor, command, find, prompt, file-tree) only
// take single-key mappings; runes that are not mapped are taken as text.
type InputConfig struct {
	Editor   map[Keyspec]Actionspec `yaml:"editor" toml:"editor"`
	Command  map[Keyspec]Actionspec `yaml:"command" toml:"command"`
	Find     map[Keyspec]Actionspec `yaml:"find" toml:"find"`
	Prompt   map[Keyspec]Actionspec `yaml:"prompt" toml:"prompt"`
	FileTree map[Keyspec]Actionspec `yaml:"file-tree" toml:"file-tree"`
	Confirm  map[Keyspec]Actionspec `yaml:"confirm" toml:"confirm"`
}
