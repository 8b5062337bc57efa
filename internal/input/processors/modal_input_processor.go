package processors

import (
	"github.com/ja-he/jot/internal/input"
)

// ModalInputProcessor is an input processor that can be overlaid by a modal
// processor (e.g. for a dialog), which then processes all input in place of
// the base processor.
type ModalInputProcessor struct {
	base    input.SimpleInputProcessor
	overlay input.SimpleInputProcessor
}

// NewModalInputProcessor returns a pointer to a new ModalInputProcessor with
// the given base processor and no overlay.
func NewModalInputProcessor(base input.SimpleInputProcessor) *ModalInputProcessor {
	return &ModalInputProcessor{base: base}
}

// CapturesInput returns whether the applicable processor captures input.
func (p *ModalInputProcessor) CapturesInput() bool {
	return p.getApplicableProcessor().CapturesInput()
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. the processor performed
// an action based on the input.
// ModalInputProcessor delegates input processing to its overlay or, without
// one, its base processor.
func (p *ModalInputProcessor) ProcessInput(key input.Key) bool {
	return p.getApplicableProcessor().ProcessInput(key)
}

// SetOverlay overlays the given processor, replacing any previous overlay,
// whose partial input is dropped. A nil overlay removes the overlay.
func (p *ModalInputProcessor) SetOverlay(overlay input.SimpleInputProcessor) {
	if p.overlay != nil && p.overlay != overlay {
		input.ResetIfPossible(p.overlay)
	}
	if overlay != nil && overlay != p.overlay {
		input.ResetIfPossible(overlay)
	}
	p.overlay = overlay
}

// HasOverlay returns whether an overlay is applied.
func (p *ModalInputProcessor) HasOverlay() bool {
	return p.overlay != nil
}

func (p *ModalInputProcessor) getApplicableProcessor() input.SimpleInputProcessor {
	if p.overlay != nil {
		return p.overlay
	}
	return p.base
}

// GetHelp returns the input help map for this processor.
func (p *ModalInputProcessor) GetHelp() input.Help {
	return p.getApplicableProcessor().GetHelp()
}
