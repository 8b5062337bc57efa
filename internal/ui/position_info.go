package ui

// PositionInfo describes a position in the user interface.
//
// Retrievers should initially check for the type of pane they are receiving
// information on and can then retrieve the relevant additional information from
// whatever they got.
type PositionInfo interface{}

// NoPanePositionInfo is (no) information about no position, e.g. for a
// position in padding space.
type NoPanePositionInfo struct{}

// TreePanePositionInfo provides information on a position in the file tree
// pane.
type TreePanePositionInfo struct {
	// Index is the index of the directory entry at the position, or -1 if
	// there is none (e.g. on the header or below the last entry).
	Index int
}

// TabBarPositionInfo provides information on a position in the tab bar.
type TabBarPositionInfo struct {
	// Tab is the index of the tab at the position, or -1.
	Tab int
}

// EditorPanePositionInfo provides information on a position in the editor
// pane, as a document position.
//
// Row and Col need not exist in the document; the receiver clamps them.
type EditorPanePositionInfo struct {
	Row int
	Col int
	// Gutter is set for positions on the line numbers.
	Gutter bool
}

// StatusPanePositionInfo provides information on a position in a status pane.
type StatusPanePositionInfo struct{}
