package ui

import "github.com/ja-he/jot/internal/styling"

// CR is a constrained renderer for a TUI.
// It only allows rendering using the underlying screen handler within the set
// dimension constraint.
//
// Non-conforming rendering requests are corrected to be within the bounds.
type CR struct {
	renderer Renderer

	constraint func() (x, y, w, h int)
}

// NewConstrainedRenderer returns a pointer to a new CR drawing via the given
// renderer, within the (possibly changing) constraint.
func NewConstrainedRenderer(
	renderer Renderer,
	constraint func() (x, y, w, h int),
) *CR {
	return &CR{
		renderer:   renderer,
		constraint: constraint,
	}
}

// Dimensions returns the current constraint.
func (r *CR) Dimensions() (x, y, w, h int) {
	return r.constraint()
}

// DrawText draws the given text, within the given dimensions, constrained by
// the set constraint, in the given style.
// Text starting left of the constraint is not shifted, it is left undrawn.
func (r *CR) DrawText(x, y, w, h int, styling styling.DrawStyling, text string) {
	cx, cy, cw, ch := r.constrain(x, y, w, h)
	if cw <= 0 || ch <= 0 || cx != x {
		return
	}

	r.renderer.DrawText(cx, cy, cw, ch, styling, text)
}

// DrawBox draws a box of the given dimensions, constrained by the set
// constraint, in the given style.
func (r *CR) DrawBox(x, y, w, h int, sty styling.DrawStyling) {
	cx, cy, cw, ch := r.constrain(x, y, w, h)
	if cw <= 0 || ch <= 0 {
		return
	}
	r.renderer.DrawBox(cx, cy, cw, ch, sty)
}

func (r *CR) constrain(rawX, rawY, rawW, rawH int) (constrainedX, constrainedY, constrainedW, constrainedH int) {
	bounds := Rect{}
	bounds.X, bounds.Y, bounds.W, bounds.H = r.constraint()

	constrainedX, constrainedW = clampSpan(rawX, rawW, bounds.X, bounds.W)
	constrainedY, constrainedH = clampSpan(rawY, rawH, bounds.Y, bounds.H)
	return constrainedX, constrainedY, constrainedW, constrainedH
}

// clampSpan clamps the span [start, start+length) to [min, min+limit).
func clampSpan(start, length, min, limit int) (int, int) {
	if start < min {
		length -= min - start
		start = min
	}
	if maxLength := min + limit - start; length > maxLength {
		length = maxLength
	}
	return start, length
}
