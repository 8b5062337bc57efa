package model

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Position is a location in a document, as row (line index) and column (rune
// index in the line), both starting at 0.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// Page is a document open for editing.
//
// The document is held as a zipper of lines: the completed lines above the
// cursor, the cursor's line itself (a Zipper) and the completed lines below.
//
// NOTE: before ++ [current] ++ after is always the full document, the cursor
// row is len(before).
type Page struct {
	// ID identifies the page for its lifetime, independently of its position
	// among tabs or its (possibly changing) file path.
	ID string

	// FilePath is the path the page is backed by, or empty if the page has
	// never been written.
	FilePath string

	// ScrollOffset is the first document row in the view.
	ScrollOffset int
	// HorizontalScrollOffset is the first rune column in the view.
	HorizontalScrollOffset int

	before  []string
	current *Zipper
	after   []string
}

// NewPage returns a pointer to a new page holding an empty document.
func NewPage() *Page {
	return &Page{
		ID:      uuid.NewString(),
		current: NewZipper(),
		before:  []string{},
		after:   []string{},
	}
}

// NewPageFromText returns a pointer to a new page holding the given text.
func NewPageFromText(text string) *Page {
	p := NewPage()
	p.LoadFromText(text)
	return p
}

// Name returns a short name for the page, e.g. for a tab.
func (p *Page) Name() string {
	if p.FilePath == "" {
		return "[No Name]"
	}
	return filepath.Base(p.FilePath)
}

// LoadFromText replaces the document by the given text, which is split into
// lines on '\n'.
// The cursor is placed at the start of the first line. Any previous contents
// are lost.
func (p *Page) LoadFromText(text string) {
	p.before = []string{}
	p.after = []string{}
	if text == "" {
		p.current = NewZipper()
		return
	}
	lines := strings.Split(text, "\n")
	p.current = NewZipperFromString(lines[0])
	p.after = append(p.after, lines[1:]...)
}

// Text returns the document as a single string, lines joined by '\n'.
func (p *Page) Text() string {
	return strings.Join(p.AllLines(), "\n")
}

// AllLines returns all lines of the document in order.
func (p *Page) AllLines() []string {
	lines := make([]string, 0, p.LineCount())
	lines = append(lines, p.before...)
	lines = append(lines, p.current.String())
	lines = append(lines, p.after...)
	return lines
}

// LineCount returns the number of lines in the document (at least 1).
func (p *Page) LineCount() int {
	return len(p.before) + 1 + len(p.after)
}

// CursorRow returns the row of the cursor.
func (p *Page) CursorRow() int {
	return len(p.before)
}

// CursorColumn returns the column of the cursor.
func (p *Page) CursorColumn() int {
	return p.current.CursorColumn()
}

// CursorPosition returns the position of the cursor.
func (p *Page) CursorPosition() Position {
	return Position{Row: p.CursorRow(), Col: p.CursorColumn()}
}

// CurrentLine returns the text of the cursor's line.
func (p *Page) CurrentLine() string {
	return p.current.String()
}

// MoveUp moves the cursor to the previous line, keeping its column as far as
// the previous line's length allows.
func (p *Page) MoveUp() {
	if len(p.before) == 0 {
		return
	}
	col := p.current.CursorColumn()
	prev := p.before[len(p.before)-1]
	p.before = p.before[:len(p.before)-1]
	p.after = append([]string{p.current.String()}, p.after...)
	p.current = NewZipperFromString(prev)
	p.current.SetCursorColumn(col)
}

// MoveDown moves the cursor to the next line, keeping its column as far as the
// next line's length allows.
func (p *Page) MoveDown() {
	if len(p.after) == 0 {
		return
	}
	col := p.current.CursorColumn()
	next := p.after[0]
	p.after = p.after[1:]
	p.before = append(p.before, p.current.String())
	p.current = NewZipperFromString(next)
	p.current.SetCursorColumn(col)
}

// MoveLeft moves the cursor one rune to the left within the line.
func (p *Page) MoveLeft() { p.current.MoveLeft() }

// MoveRight moves the cursor one rune to the right within the line.
func (p *Page) MoveRight() { p.current.MoveRight() }

// MoveToLineStart moves the cursor to the start of the line.
func (p *Page) MoveToLineStart() { p.current.MoveToStart() }

// MoveToLineEnd moves the cursor to the end of the line.
func (p *Page) MoveToLineEnd() { p.current.MoveToEnd() }

// InsertRune inserts the rune at the cursor.
func (p *Page) InsertRune(r rune) { p.current.Insert(r) }

// InsertText inserts the text at the cursor, breaking lines on '\n'.
func (p *Page) InsertText(text string) {
	for _, r := range text {
		switch r {
		case '\n':
			p.InsertNewline()
		case '\r':
		default:
			p.current.Insert(r)
		}
	}
}

// InsertNewline splits the line at the cursor and moves the cursor to the
// start of the new (second) line.
func (p *Page) InsertNewline() {
	runes := []rune(p.current.String())
	col := p.current.CursorColumn()
	left, right := string(runes[:col]), string(runes[col:])

	p.current = NewZipperFromString(left)
	p.after = append([]string{right}, p.after...)
	p.MoveDown()
	p.current.SetCursorColumn(0)
}

// Delete removes the rune left of the cursor, joining the line with the
// previous one if the cursor is at its start.
func (p *Page) Delete() {
	if p.current.CursorColumn() == 0 && len(p.before) > 0 {
		prev := p.before[len(p.before)-1]
		p.before = p.before[:len(p.before)-1]
		p.current = NewZipperFromString(prev + p.current.String())
		p.current.SetCursorColumn(len([]rune(prev)))
		return
	}
	p.current.Delete()
}

// MoveCursorTo moves the cursor to the given position.
// The row is clamped to the document, the column to the target line.
func (p *Page) MoveCursorTo(row, col int) {
	lines := p.AllLines()
	if row >= len(lines) {
		row = len(lines) - 1
	}
	if row < 0 {
		row = 0
	}

	p.before = append([]string{}, lines[:row]...)
	p.after = append([]string{}, lines[row+1:]...)
	p.current = NewZipperFromString(lines[row])
	p.current.SetCursorColumn(col)
}
