package panes_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ja-he/jot/internal/config"
	"github.com/ja-he/jot/internal/control/app"
	"github.com/ja-he/jot/internal/input"
	"github.com/ja-he/jot/internal/styling"
	"github.com/ja-he/jot/internal/ui"
	"github.com/ja-he/jot/internal/ui/panes"
)

type cell struct {
	r     rune
	style styling.DrawStyling
}

type fakeScreen struct {
	w, h   int
	cells  map[ui.CursorLocation]cell
	cursor *ui.CursorLocation
	shown  int
}

func newFakeScreen(w, h int) *fakeScreen {
	return &fakeScreen{w: w, h: h, cells: map[ui.CursorLocation]cell{}}
}

func (s *fakeScreen) Dimensions() (x, y, w, h int) { return 0, 0, s.w, s.h }
func (s *fakeScreen) Clear()                       { s.cells = map[ui.CursorLocation]cell{} }
func (s *fakeScreen) Show()                        { s.shown++ }
func (s *fakeScreen) HideCursor()                  { s.cursor = nil }
func (s *fakeScreen) ShowCursor(l ui.CursorLocation) {
	s.cursor = &l
}

func (s *fakeScreen) DrawBox(x, y, w, h int, style styling.DrawStyling) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.cells[ui.CursorLocation{X: col, Y: row}] = cell{' ', style}
		}
	}
}

func (s *fakeScreen) DrawText(x, y, w, h int, style styling.DrawStyling, text string) {
	col, row := x, y
	for _, r := range text {
		cw := app.CellWidth(r)
		if col+cw > x+w {
			row++
			col = x
		}
		if row >= y+h {
			return
		}
		s.cells[ui.CursorLocation{X: col, Y: row}] = cell{r, style}
		if cw == 2 {
			s.cells[ui.CursorLocation{X: col + 1, Y: row}] = cell{0, style}
		}
		col += cw
	}
}

// text returns the runes displayed in the given row from x on, for w cells.
func (s *fakeScreen) text(x, y, w int) string {
	var b strings.Builder
	for col := x; col < x+w; col++ {
		c, ok := s.cells[ui.CursorLocation{X: col, Y: y}]
		switch {
		case !ok:
			b.WriteRune(' ')
		case c.r != 0:
			b.WriteRune(c.r)
		}
	}
	return b.String()
}

func (s *fakeScreen) styleAt(x, y int) styling.DrawStyling {
	return s.cells[ui.CursorLocation{X: x, Y: y}].style
}

type setup struct {
	app        *app.App
	screen     *fakeScreen
	root       *panes.RootPane
	stylesheet *styling.Stylesheet
}

func newSetup(t *testing.T, content string) *setup {
	t.Helper()

	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	a, err := app.NewApp(app.Options{
		Keys:      config.DefaultKeys(),
		Directory: dir,
		File:      path,
	})
	if err != nil {
		t.Fatal("could not create app:", err.Error())
	}
	stylesheet, err := styling.NewStylesheetFromConfig(config.Default(config.Dark).Stylesheet)
	if err != nil {
		t.Fatal("could not create stylesheet:", err.Error())
	}

	screen := newFakeScreen(40, 10)
	root := panes.NewRootPane(
		screen,
		ui.NewCursorWrangler(screen),
		screen.Dimensions,
		func() ui.Layout { return ui.ComputeLayout(screen.w, screen.h, 25) },
		stylesheet,
		a,
	)
	return &setup{app: a, screen: screen, root: root, stylesheet: stylesheet}
}

func (s *setup) draw() {
	s.app.ClampViewport(s.root.Viewport())
	s.root.Draw()
}

func (s *setup) press(t *testing.T, spec string) {
	t.Helper()
	keys, err := input.ConfigKeyspecToKeys(input.Keyspec(spec))
	if err != nil {
		t.Fatalf("invalid key sequence '%s': %s", spec, err.Error())
	}
	for _, k := range keys {
		s.app.HandleKey(k)
	}
}

func TestComputeLayout(t *testing.T) {
	t.Run("partition", func(t *testing.T) {
		l := ui.ComputeLayout(40, 10, 25)
		expected := ui.Layout{
			Tree:   ui.Rect{X: 0, Y: 0, W: 10, H: 9},
			Tabs:   ui.Rect{X: 10, Y: 0, W: 30, H: 1},
			Editor: ui.Rect{X: 10, Y: 1, W: 30, H: 8},
			Status: ui.Rect{X: 0, Y: 9, W: 40, H: 1},
		}
		if l != expected {
			t.Errorf("layout %+v instead of %+v", l, expected)
		}
	})
	t.Run("invalid percentage falls back to default", func(t *testing.T) {
		if l := ui.ComputeLayout(40, 10, 0); l.Tree.W != 10 {
			t.Errorf("tree width %d instead of 10", l.Tree.W)
		}
	})
	t.Run("empty screen", func(t *testing.T) {
		l := ui.ComputeLayout(0, 0, 25)
		for _, r := range []ui.Rect{l.Tree, l.Tabs, l.Editor, l.Status} {
			if r.W*r.H != 0 {
				t.Errorf("non-empty rect %+v on empty screen", r)
			}
		}
	})
}

func TestDraw(t *testing.T) {
	s := newSetup(t, "hello\nworld")
	s.draw()

	if s.screen.shown != 1 {
		t.Errorf("shown %d times instead of once", s.screen.shown)
	}

	for _, expectation := range []struct {
		name     string
		x, y, w  int
		expected string
	}{
		{"first line", 10, 1, 7, "1 hello"},
		{"second line", 10, 2, 7, "2 world"},
		{"tab", 10, 0, 11, " notes.txt "},
		{"directory entry", 0, 1, 5, " sub/"},
		{"file entry", 0, 2, 10, " notes.txt"},
		{"status prompt", 0, 9, 10, "-- EDIT --"},
		{"cursor position", 36, 9, 3, "1:1"},
	} {
		t.Run(expectation.name, func(t *testing.T) {
			if text := s.screen.text(expectation.x, expectation.y, expectation.w); text != expectation.expected {
				t.Errorf("'%s' instead of '%s'", text, expectation.expected)
			}
		})
	}

	t.Run("long path header is truncated at the start", func(t *testing.T) {
		header := s.screen.text(0, 0, 10)
		if !strings.HasPrefix(header, "…") {
			t.Errorf("header '%s' not truncated", header)
		}
	})

	t.Run("cursor shown while editing", func(t *testing.T) {
		if s.screen.cursor == nil || *s.screen.cursor != (ui.CursorLocation{X: 12, Y: 1}) {
			t.Errorf("cursor at %v instead of 12:1", s.screen.cursor)
		}
	})

	t.Run("cursor hidden in command mode", func(t *testing.T) {
		s.press(t, "<esc>")
		s.draw()
		if s.screen.cursor != nil {
			t.Errorf("cursor shown at %v", s.screen.cursor)
		}
		if text := s.screen.text(0, 9, 1); text != ":" {
			t.Errorf("prompt '%s' instead of ':'", text)
		}
	})

	t.Run("find matches are highlighted", func(t *testing.T) {
		s.press(t, "f<cr>o")
		s.draw()
		if style := s.screen.styleAt(16, 1); style != s.stylesheet.FindCurrentMatch {
			t.Errorf("current match not highlighted as such")
		}
		if style := s.screen.styleAt(13, 2); style != s.stylesheet.FindMatch {
			t.Errorf("other match not highlighted as such")
		}
		if style := s.screen.styleAt(12, 1); style != s.stylesheet.Normal {
			t.Errorf("non-match highlighted")
		}
	})
}

func TestDrawWithoutTabs(t *testing.T) {
	s := newSetup(t, "")
	s.press(t, "<esc>q<cr>")
	if len(s.app.Tabs) != 0 {
		t.Fatalf("%d tabs left open", len(s.app.Tabs))
	}
	s.draw()
	if s.screen.cursor != nil {
		t.Errorf("cursor shown at %v", s.screen.cursor)
	}
	if !strings.Contains(s.screen.text(10, 5, 30), "No open buffer.") {
		t.Errorf("no hint drawn, got '%s'", s.screen.text(10, 5, 30))
	}
}

func TestGetPositionInfo(t *testing.T) {
	s := newSetup(t, "hello\nworld\n日本x")
	s.draw()

	for _, tc := range []struct {
		name     string
		x, y     int
		expected ui.PositionInfo
	}{
		{"editor text", 15, 2, &ui.EditorPanePositionInfo{Row: 1, Col: 3}},
		{"editor gutter", 10, 1, &ui.EditorPanePositionInfo{Row: 0, Col: 0, Gutter: true}},
		{"editor past line end", 30, 1, &ui.EditorPanePositionInfo{Row: 0, Col: 5}},
		{"editor below document", 14, 7, &ui.EditorPanePositionInfo{Row: 2, Col: 1}},
		{"editor wide runes", 15, 3, &ui.EditorPanePositionInfo{Row: 2, Col: 1}},
		{"tree entry", 2, 1, &ui.TreePanePositionInfo{Index: 0}},
		{"tree header", 2, 0, &ui.TreePanePositionInfo{Index: -1}},
		{"tree below entries", 2, 6, &ui.TreePanePositionInfo{Index: -1}},
		{"tab", 11, 0, &ui.TabBarPositionInfo{Tab: 0}},
		{"tab bar past tabs", 35, 0, &ui.TabBarPositionInfo{Tab: -1}},
		{"status", 5, 9, &ui.StatusPanePositionInfo{}},
		{"off screen", 50, 50, &ui.NoPanePositionInfo{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			info := s.root.GetPositionInfo(tc.x, tc.y)
			if !equalInfo(info, tc.expected) {
				t.Errorf("%#v instead of %#v", info, tc.expected)
			}
		})
	}

	t.Run("horizontal scroll", func(t *testing.T) {
		page := s.app.ActivePage()
		page.MoveCursorTo(0, 2)
		page.HorizontalScrollOffset = 2
		info := s.root.GetPositionInfo(13, 1)
		if !equalInfo(info, &ui.EditorPanePositionInfo{Row: 0, Col: 3}) {
			t.Errorf("%#v instead of column 3", info)
		}
	})
}

func equalInfo(a, b ui.PositionInfo) bool {
	switch a := a.(type) {
	case *ui.EditorPanePositionInfo:
		b, ok := b.(*ui.EditorPanePositionInfo)
		return ok && *a == *b
	case *ui.TreePanePositionInfo:
		b, ok := b.(*ui.TreePanePositionInfo)
		return ok && *a == *b
	case *ui.TabBarPositionInfo:
		b, ok := b.(*ui.TabBarPositionInfo)
		return ok && *a == *b
	case *ui.StatusPanePositionInfo:
		_, ok := b.(*ui.StatusPanePositionInfo)
		return ok
	case *ui.NoPanePositionInfo:
		_, ok := b.(*ui.NoPanePositionInfo)
		return ok
	}
	return false
}

func TestGutterWidth(t *testing.T) {
	for lines, expected := range map[int]int{0: 2, 1: 2, 9: 2, 10: 3, 999: 4, 1000: 5} {
		if w := panes.GutterWidth(lines); w != expected {
			t.Errorf("gutter width %d instead of %d for %d lines", w, expected, lines)
		}
	}
}
