package input

// SimpleInputProcessor processes keys for one input target (e.g. the editor
// or a prompt) and describes its mappings as help.
type SimpleInputProcessor interface {

	// CapturesInput returns whether this processor "captures" input, i.E. whether
	// it ought to take priority in processing over other processors, e.g. in the
	// middle of a key sequence.
	CapturesInput() bool

	// ProcessInput attempts to process the provided input.
	// Returns whether the provided input "applied", i.E. the processor performed
	// an action based on the input.
	ProcessInput(key Key) bool

	// GetHelp returns the input help map for this processor.
	GetHelp() Help
}

// Resetter is implemented by processors that keep partial input (such as the
// first keys of a sequence), which Reset drops.
type Resetter interface {
	Reset()
}

// ResetIfPossible resets the processor, if it keeps partial input.
func ResetIfPossible(p SimpleInputProcessor) {
	if r, ok := p.(Resetter); ok {
		r.Reset()
	}
}
