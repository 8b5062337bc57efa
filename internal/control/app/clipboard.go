package app

import (
	"github.com/atotto/clipboard"
)

// Clipboard is a store for copied text.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemClipboard is the clipboard of the operating system.
type SystemClipboard struct{}

// ReadAll returns the text in the system clipboard.
func (SystemClipboard) ReadAll() (string, error) { return clipboard.ReadAll() }

// WriteAll puts the text into the system clipboard.
func (SystemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }
