package model

// Zipper is a single line of text with a cursor in it.
//
// The runes left of the cursor are kept in document order in before, the runes
// right of the cursor are kept in reverse (nearest to the cursor last) in
// after, so that insertion, deletion and single-step movement at the cursor
// only ever touch the ends of the two slices.
//
//	text:   "hello"   cursor at column 2
//	before: ['h','e']
//	after:  ['o','l','l']
type Zipper struct {
	before []rune
	after  []rune
}

// NewZipper returns a pointer to a new, empty Zipper.
func NewZipper() *Zipper {
	return &Zipper{}
}

// NewZipperFromString returns a Zipper holding the given text with the cursor
// at column 0.
func NewZipperFromString(text string) *Zipper {
	runes := []rune(text)
	after := make([]rune, len(runes))
	for i, r := range runes {
		after[len(runes)-1-i] = r
	}
	return &Zipper{after: after}
}

// Insert inserts the rune at the cursor, advancing the cursor.
func (z *Zipper) Insert(r rune) {
	z.before = append(z.before, r)
}

// Delete removes the rune left of the cursor.
// Does nothing at column 0.
func (z *Zipper) Delete() {
	if len(z.before) > 0 {
		z.before = z.before[:len(z.before)-1]
	}
}

// MoveLeft moves the cursor one rune to the left.
func (z *Zipper) MoveLeft() {
	if len(z.before) > 0 {
		r := z.before[len(z.before)-1]
		z.before = z.before[:len(z.before)-1]
		z.after = append(z.after, r)
	}
}

// MoveRight moves the cursor one rune to the right.
func (z *Zipper) MoveRight() {
	if len(z.after) > 0 {
		r := z.after[len(z.after)-1]
		z.after = z.after[:len(z.after)-1]
		z.before = append(z.before, r)
	}
}

// MoveToStart moves the cursor to column 0.
func (z *Zipper) MoveToStart() { z.SetCursorColumn(0) }

// MoveToEnd moves the cursor past the last rune.
func (z *Zipper) MoveToEnd() { z.SetCursorColumn(z.Len()) }

// CursorColumn returns the cursor's column, counted in runes.
func (z *Zipper) CursorColumn() int {
	return len(z.before)
}

// SetCursorColumn puts the cursor at the given column, clamped to the line.
func (z *Zipper) SetCursorColumn(col int) {
	content := z.runes()
	if col > len(content) {
		col = len(content)
	}
	if col < 0 {
		col = 0
	}

	z.before = append([]rune{}, content[:col]...)
	rest := content[col:]
	z.after = make([]rune, len(rest))
	for i, r := range rest {
		z.after[len(rest)-1-i] = r
	}
}

// Len returns the length of the line in runes.
func (z *Zipper) Len() int {
	return len(z.before) + len(z.after)
}

// String returns the full text of the line.
func (z *Zipper) String() string {
	return string(z.runes())
}

func (z *Zipper) runes() []rune {
	result := make([]rune, 0, z.Len())
	result = append(result, z.before...)
	for i := len(z.after) - 1; i >= 0; i-- {
		result = append(result, z.after[i])
	}
	return result
}
