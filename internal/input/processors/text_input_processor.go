package processors

import (
	"fmt"

	"github.com/ja-he/jot/internal/control/action"
	"github.com/ja-he/jot/internal/input"
)

// TextInputProcessor is a SimpleInputProcessor specifically for text input,
// such as typing into a page or a prompt.
// Keys it has a mapping for (e.g. <esc> to cancel) do the mapped action; any
// other rune is given to the rune callback, which could, e.g., insert it.
type TextInputProcessor struct {
	mappings map[input.Key]action.Action

	runeCallback func(r rune)
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. the processor performed
// an action based on the input.
// Mappings take precedence over the rune callback.
func (p *TextInputProcessor) ProcessInput(key input.Key) bool {
	if action, ok := p.mappings[key]; ok {
		action.Do()
		return true
	}
	if key.IsRune() {
		p.runeCallback(key.Ch)
		return true
	}
	return false
}

// CapturesInput returns true; text input always takes precedence.
func (p *TextInputProcessor) CapturesInput() bool {
	return true
}

// GetHelp returns the input help map for this processor.
func (p *TextInputProcessor) GetHelp() input.Help {
	result := input.Help{}
	for k, a := range p.mappings {
		result[input.ToConfigIdentifierString(k)] = a.Explain()
	}
	return result
}

// NewTextInputProcessor returns a pointer to a new TextInputProcessor.
// Every given keyspec must be a single key.
func NewTextInputProcessor(
	mappings map[input.Keyspec]action.Action,
	runeCallback func(r rune),
) (*TextInputProcessor, error) {
	keyMappings := map[input.Key]action.Action{}
	for keyspec, action := range mappings {
		keys, err := input.ConfigKeyspecToKeys(keyspec)
		if err != nil {
			return nil, fmt.Errorf("could not convert '%s' to keys (%w)", keyspec, err)
		}
		if len(keys) != 1 {
			return nil, fmt.Errorf("keyspec '%s' for text processor has not exactly one key (but %d)", keyspec, len(keys))
		}
		keyMappings[keys[0]] = action
	}
	return &TextInputProcessor{
		mappings:     keyMappings,
		runeCallback: runeCallback,
	}, nil
}
