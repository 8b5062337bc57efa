package model

import (
	"sort"
	"strings"
)

// DirectoryEntry is a single entry in a directory listing.
type DirectoryEntry struct {
	Name  string
	Path  string
	IsDir bool
}

// DirectoryView is a snapshot of a directory's listing with a selection.
//
// A snapshot is never patched; whenever the directory may have changed it is
// read anew (see storage.ReadDirectory).
type DirectoryView struct {
	Path    string
	Entries []DirectoryEntry

	SelectedIndex int
	ScrollOffset  int
}

// NewDirectoryView returns a pointer to a new view of the given (already
// listed) entries, which it sorts.
func NewDirectoryView(path string, entries []DirectoryEntry) *DirectoryView {
	SortEntries(entries)
	return &DirectoryView{
		Path:    path,
		Entries: entries,
	}
}

// SortEntries sorts entries directories first, then files, both in ascending
// case-insensitive order of their names.
func SortEntries(entries []DirectoryEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		la, lb := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if la != lb {
			return la < lb
		}
		return a.Name < b.Name
	})
}

// MoveUp moves the selection up by one entry.
func (v *DirectoryView) MoveUp() {
	if v.SelectedIndex > 0 {
		v.SelectedIndex--
	}
}

// MoveDown moves the selection down by one entry.
func (v *DirectoryView) MoveDown() {
	if v.SelectedIndex+1 < len(v.Entries) {
		v.SelectedIndex++
	}
}

// Select selects the entry at the given index, clamped to the listing.
func (v *DirectoryView) Select(index int) {
	v.SelectedIndex = index
	v.clampSelection()
}

// Selected returns the selected entry; ok is false if the listing is empty.
func (v *DirectoryView) Selected() (entry DirectoryEntry, ok bool) {
	if len(v.Entries) == 0 {
		return DirectoryEntry{}, false
	}
	return v.Entries[v.SelectedIndex], true
}

// Scroll scrolls the listing by delta entries, for a view of the given height.
func (v *DirectoryView) Scroll(delta int, height int) {
	v.ScrollOffset += delta
	maxOffset := len(v.Entries) - height
	if v.ScrollOffset > maxOffset {
		v.ScrollOffset = maxOffset
	}
	if v.ScrollOffset < 0 {
		v.ScrollOffset = 0
	}
}

// KeepSelectionOf takes over the selection and scroll state of a previous
// snapshot (e.g. of the same directory), clamped to this listing.
func (v *DirectoryView) KeepSelectionOf(previous *DirectoryView) {
	if previous == nil {
		return
	}
	v.SelectedIndex = previous.SelectedIndex
	v.ScrollOffset = previous.ScrollOffset
	v.clampSelection()
}

func (v *DirectoryView) clampSelection() {
	if v.SelectedIndex >= len(v.Entries) {
		v.SelectedIndex = len(v.Entries) - 1
	}
	if v.SelectedIndex < 0 {
		v.SelectedIndex = 0
	}
}
