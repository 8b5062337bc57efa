package ui

import (
	"github.com/rs/zerolog/log"
)

// CursorWrangler collects the request to place the (text/terminal) cursor on
// the screen during a draw and enacts it afterwards.
//
// Without a request during a draw, the cursor is hidden.
type CursorWrangler struct {
	cc TextCursorController

	desiredLocation *CursorLocation
	requester       PaneID
}

// NewCursorWrangler creates a new CursorWrangler.
func NewCursorWrangler(controller TextCursorController) *CursorWrangler {
	return &CursorWrangler{cc: controller}
}

// Put requests the cursor at the given location.
func (w *CursorWrangler) Put(l CursorLocation, requester PaneID) {
	if w.desiredLocation != nil && w.requester != requester {
		log.Warn().Msgf("pane %d puts cursor at %s, overriding pane %d's request (at %s)", requester, l, w.requester, w.desiredLocation)
	}
	w.desiredLocation = &l
	w.requester = requester
}

// Location returns the currently requested location, if any.
func (w *CursorWrangler) Location() (CursorLocation, bool) {
	if w.desiredLocation == nil {
		return CursorLocation{}, false
	}
	return *w.desiredLocation, true
}

// Enact shows the cursor at the requested location or hides it, then resets
// the request for the next draw.
func (w *CursorWrangler) Enact() {
	if w.desiredLocation != nil {
		w.cc.ShowCursor(*w.desiredLocation)
	} else {
		w.cc.HideCursor()
	}
	w.desiredLocation = nil
	w.requester = NonePaneID
}
