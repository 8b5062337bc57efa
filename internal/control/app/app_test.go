package app_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ja-he/jot/internal/config"
	"github.com/ja-he/jot/internal/control/app"
	"github.com/ja-he/jot/internal/input"
	"github.com/ja-he/jot/internal/model"
)

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) ReadAll() (string, error) { return c.text, c.err }
func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func newApp(t *testing.T, dir string, file string) *app.App {
	t.Helper()
	a, err := app.NewApp(app.Options{
		Clipboard: &fakeClipboard{},
		Keys:      config.DefaultKeys(),
		TabWidth:  4,
		Directory: dir,
		File:      file,
	})
	if err != nil {
		t.Fatal("could not create app:", err.Error())
	}
	return a
}

func press(t *testing.T, a *app.App, spec string) {
	t.Helper()
	keys, err := input.ConfigKeyspecToKeys(input.Keyspec(spec))
	if err != nil {
		t.Fatalf("invalid key sequence '%s': %s", spec, err.Error())
	}
	for _, k := range keys {
		a.HandleKey(k)
	}
}

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal("could not write test file:", err.Error())
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal("could not read file:", err.Error())
	}
	return string(data)
}

func expectState(t *testing.T, a *app.App, pane app.Pane, mode app.Mode) {
	t.Helper()
	if a.ActivePane != pane || a.Mode() != mode {
		t.Errorf("state is (%s, %s) instead of (%s, %s)", a.ActivePane, a.Mode(), pane, mode)
	}
}

func entryNames(a *app.App) []string {
	names := []string{}
	for _, e := range a.Directory.Entries {
		names = append(names, e.Name)
	}
	return names
}

func selectEntry(t *testing.T, a *app.App, name string) {
	t.Helper()
	for i, e := range a.Directory.Entries {
		if e.Name == name {
			a.SelectTreeEntry(i)
			return
		}
	}
	t.Fatalf("no entry '%s' in %q", name, entryNames(a))
}

func TestNewApp(t *testing.T) {

	t.Run("no file", func(t *testing.T) {
		a := newApp(t, t.TempDir(), "")
		if len(a.Tabs) != 0 {
			t.Errorf("%d tabs instead of none", len(a.Tabs))
		}
		expectState(t, a, app.PaneFileTree, app.FileTreeMode{})
		if a.ActivePage() != nil {
			t.Error("active page without tabs")
		}
		if a.StatusLine() != "tree> " {
			t.Errorf("status line is '%s'", a.StatusLine())
		}
	})

	t.Run("file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "notes.txt")
		writeFile(t, path, "a\nb")
		a := newApp(t, dir, path)
		if len(a.Tabs) != 1 {
			t.Fatalf("%d tabs instead of 1", len(a.Tabs))
		}
		expectState(t, a, app.PaneEditor, app.EditMode{})
		if a.ActivePage().Text() != "a\nb" {
			t.Errorf("page holds %q", a.ActivePage().Text())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "new.txt")
		a := newApp(t, dir, path)
		if len(a.Tabs) != 1 || a.ActivePage().Text() != "" || a.ActivePage().FilePath != path {
			t.Error("missing file not opened as empty page for its path")
		}
	})

	t.Run("unreadable directory", func(t *testing.T) {
		_, err := app.NewApp(app.Options{Keys: config.DefaultKeys(), Directory: filepath.Join(t.TempDir(), "nope")})
		if err == nil {
			t.Error("expected error for missing directory")
		}
	})

	t.Run("unknown action", func(t *testing.T) {
		keys := config.DefaultKeys()
		keys.Editor["<c-x>"] = "explode"
		_, err := app.NewApp(app.Options{Keys: keys, Directory: t.TempDir()})
		if err == nil {
			t.Error("expected error for unknown action")
		}
	})

	t.Run("sequence in text target", func(t *testing.T) {
		keys := config.DefaultKeys()
		keys.Command["<c-x><c-s>"] = "execute"
		_, err := app.NewApp(app.Options{Keys: keys, Directory: t.TempDir()})
		if err == nil {
			t.Error("expected error for multi-key mapping in command target")
		}
	})
}

func TestTransitions(t *testing.T) {

	t.Run("file tree escape and tab", func(t *testing.T) {
		a := newApp(t, t.TempDir(), "")
		press(t, a, "xy<esc>")
		expectState(t, a, app.PaneEditor, app.CommandMode{})
		if a.CommandBuffer != "" {
			t.Errorf("command buffer '%s' not cleared", a.CommandBuffer)
		}
		press(t, a, "<tab>")
		expectState(t, a, app.PaneFileTree, app.FileTreeMode{})
		press(t, a, "ab<tab>")
		expectState(t, a, app.PaneEditor, app.CommandMode{})
		if a.CommandBuffer != "" {
			t.Errorf("command buffer '%s' not cleared", a.CommandBuffer)
		}
	})

	t.Run("command escape needs a tab", func(t *testing.T) {
		a := newApp(t, t.TempDir(), "")
		press(t, a, "<esc>")
		press(t, a, "<esc>")
		expectState(t, a, app.PaneEditor, app.CommandMode{})
		press(t, a, "new<cr>")
		expectState(t, a, app.PaneEditor, app.EditMode{})
		press(t, a, "<esc>")
		expectState(t, a, app.PaneEditor, app.CommandMode{})
		press(t, a, "<esc>")
		expectState(t, a, app.PaneEditor, app.EditMode{})
		press(t, a, "<esc><tab><tab>")
		expectState(t, a, app.PaneEditor, app.EditMode{})
	})

	t.Run("status message cleared by next key", func(t *testing.T) {
		a := newApp(t, t.TempDir(), "")
		press(t, a, "<esc>h<cr>")
		if !strings.HasPrefix(a.StatusMessage, "Commands:") {
			t.Errorf("status message is '%s'", a.StatusMessage)
		}
		if a.StatusLine() != a.StatusMessage {
			t.Error("status line does not show the message")
		}
		press(t, a, "x")
		if a.StatusMessage != "" {
			t.Errorf("status message '%s' not cleared", a.StatusMessage)
		}
		if a.StatusLine() != ":x" {
			t.Errorf("status line is '%s'", a.StatusLine())
		}
	})
}

func TestEditing(t *testing.T) {
	a := newApp(t, t.TempDir(), "")
	press(t, a, "<esc>new<cr>")
	press(t, a, "helo<left>l<end><cr>wörld<bs><bs><tab>x<up><home>!")

	expected := []string{"!hello", "wör    x"}
	if lines := a.ActivePage().AllLines(); !reflect.DeepEqual(lines, expected) {
		t.Errorf("lines are %q instead of %q", lines, expected)
	}

	t.Run("arrows move the cursor in command mode", func(t *testing.T) {
		press(t, a, "<esc><down><right>")
		if pos := a.ActivePage().CursorPosition(); pos != (model.Position{Row: 1, Col: 2}) {
			t.Errorf("cursor at %s instead of 1:2", pos)
		}
		if a.CommandBuffer != "" {
			t.Errorf("arrows changed command buffer to '%s'", a.CommandBuffer)
		}
	})
}

func TestClipboard(t *testing.T) {
	clip := &fakeClipboard{}
	dir := t.TempDir()
	a, err := app.NewApp(app.Options{Clipboard: clip, Keys: config.DefaultKeys(), Directory: dir})
	if err != nil {
		t.Fatal(err)
	}
	press(t, a, "<esc>new<cr>")
	press(t, a, "first<c-c>")
	if clip.text != "first" {
		t.Errorf("clipboard holds '%s'", clip.text)
	}
	if a.StatusMessage != "Copied line." {
		t.Errorf("status message is '%s'", a.StatusMessage)
	}
	clip.text = " a\nb"
	press(t, a, "<c-v>")
	if lines := a.ActivePage().AllLines(); !reflect.DeepEqual(lines, []string{"first a", "b"}) {
		t.Errorf("lines are %q", lines)
	}
	clip.err = errors.New("no clipboard")
	press(t, a, "<c-v>")
	if a.StatusMessage != "Error: no clipboard" {
		t.Errorf("status message is '%s'", a.StatusMessage)
	}
}

func TestCommands(t *testing.T) {

	t.Run("write to new path", func(t *testing.T) {
		dir := t.TempDir()
		a := newApp(t, dir, "")
		press(t, a, "<esc>new<cr>hello<esc>")
		press(t, a, "w report.txt<cr>")
		path := filepath.Join(dir, "report.txt")
		if content := readFile(t, path); content != "hello" {
			t.Errorf("file contains %q", content)
		}
		if a.ActivePage().FilePath != path {
			t.Errorf("page path is '%s'", a.ActivePage().FilePath)
		}
		if a.StatusMessage != "Saved to report.txt" {
			t.Errorf("status message is '%s'", a.StatusMessage)
		}
		expectState(t, a, app.PaneEditor, app.CommandMode{})
	})

	t.Run("write to own path", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "a.txt")
		writeFile(t, path, "old")
		a := newApp(t, dir, path)
		press(t, a, "<end>er<esc>write<cr>")
		if content := readFile(t, path); content != "older" {
			t.Errorf("file contains %q", content)
		}
		if a.StatusMessage != "Saved to "+path {
			t.Errorf("status message is '%s'", a.StatusMessage)
		}
	})

	t.Run("write error", func(t *testing.T) {
		dir := t.TempDir()
		a := newApp(t, dir, "")
		press(t, a, "<esc>new<cr>x<esc>w missing/x.txt<cr>")
		if !strings.HasPrefix(a.StatusMessage, "Error: ") {
			t.Errorf("status message is '%s'", a.StatusMessage)
		}
		if a.ActivePage().FilePath != "" {
			t.Error("path assigned despite failure")
		}
	})

	t.Run("write pathless prompts", func(t *testing.T) {
		dir := t.TempDir()
		a := newApp(t, dir, "")
		press(t, a, "<esc>new<cr>text<esc>w<cr>")
		expectState(t, a, app.PaneEditor, app.PromptSaveMode{})
		press(t, a, "out.txt")
		if a.StatusLine() != "Save as: out.txt" {
			t.Errorf("status line is '%s'", a.StatusLine())
		}
		press(t, a, "<cr>")
		if content := readFile(t, filepath.Join(dir, "out.txt")); content != "text" {
			t.Errorf("file contains %q", content)
		}
		expectState(t, a, app.PaneEditor, app.CommandMode{})
		if a.ShouldQuit {
			t.Error("quitting after plain save")
		}
	})

	t.Run("save prompt cancel and errors", func(t *testing.T) {
		dir := t.TempDir()
		a := newApp(t, dir, "")
		press(t, a, "<esc>new<cr>text<esc>w<cr><cr>")
		expectState(t, a, app.PaneEditor, app.PromptSaveMode{})
		press(t, a, "nope/out.txt<cr>")
		expectState(t, a, app.PaneEditor, app.PromptSaveMode{})
		if !strings.HasPrefix(a.StatusMessage, "Error: ") {
			t.Errorf("status message is '%s'", a.StatusMessage)
		}
		if a.CommandBuffer != "nope/out.txt" {
			t.Errorf("typed name lost, buffer is '%s'", a.CommandBuffer)
		}
		press(t, a, "<esc>")
		expectState(t, a, app.PaneEditor, app.CommandMode{})
		if a.StatusMessage != "Save cancelled." || a.CommandBuffer != "" {
			t.Errorf("cancel left message '%s' and buffer '%s'", a.StatusMessage, a.CommandBuffer)
		}
	})

	t.Run("wq", func(t *testing.T) {
		dir := t.TempDir()
		a := newApp(t, dir, "")
		press(t, a, "<esc>new<cr>one<esc>new<cr>two<esc>")
		press(t, a, "wq two.txt<cr>")
		if len(a.Tabs) != 1 || a.ActivePage().Text() != "one" {
			t.Error("saved tab not closed")
		}
		press(t, a, "wq<cr>")
		expectState(t, a, app.PaneEditor, app.PromptSaveAndQuitMode{})
		if a.StatusLine() != "Save as (then quit): " {
			t.Errorf("status line is '%s'", a.StatusLine())
		}
		press(t, a, "one.txt<cr>")
		if !a.ShouldQuit {
			t.Error("not quitting")
		}
		if content := readFile(t, filepath.Join(dir, "one.txt")); content != "one" {
			t.Errorf("file contains %q", content)
		}
	})

	t.Run("wq failure keeps tab", func(t *testing.T) {
		a := newApp(t, t.TempDir(), "")
		press(t, a, "<esc>new<cr>one<esc>wq nope/one.txt<cr>")
		if len(a.Tabs) != 1 {
			t.Error("tab closed despite failed save")
		}
	})

	t.Run("quit", func(t *testing.T) {
		a := newApp(t, t.TempDir(), "")
		press(t, a, "<esc>new<cr>a<esc>new<cr>b<esc>new<cr>c<esc>")
		a.SelectTab(1)
		press(t, a, "q<cr>")
		if len(a.Tabs) != 2 || a.ActivePage().Text() != "c" {
			t.Errorf("after closing middle tab: %d tabs, active holds %q", len(a.Tabs), a.ActivePage().Text())
		}
		press(t, a, "quit<cr>")
		if len(a.Tabs) != 1 || a.ActivePage().Text() != "a" {
			t.Error("active index not clamped after closing last tab")
		}
		press(t, a, "q<cr>")
		if len(a.Tabs) != 0 {
			t.Errorf("%d tabs left", len(a.Tabs))
		}
		expectState(t, a, app.PaneEditor, app.CommandMode{})
		if a.ShouldQuit {
			t.Error("closing the last tab quits")
		}
		press(t, a, "q<cr>")
		if a.StatusMessage != "No open buffer." {
			t.Errorf("status message is '%s'", a.StatusMessage)
		}
	})

	t.Run("exit", func(t *testing.T) {
		for _, cmd := range []string{"x", "exit"} {
			a := newApp(t, t.TempDir(), "")
			press(t, a, "<esc>"+cmd+"<cr>")
			if !a.ShouldQuit {
				t.Errorf("'%s' does not quit", cmd)
			}
		}
	})

	t.Run("wx", func(t *testing.T) {
		dir := t.TempDir()
		pathA := filepath.Join(dir, "a.txt")
		writeFile(t, pathA, "a")
		a := newApp(t, dir, pathA)
		press(t, a, "<end>1<esc>new<cr>pathless<esc>wx<cr>")
		if !a.ShouldQuit {
			t.Error("not quitting")
		}
		if content := readFile(t, pathA); content != "a1" {
			t.Errorf("file contains %q", content)
		}
		if a.StatusMessage != "Saved 1 file(s)." {
			t.Errorf("status message is '%s'", a.StatusMessage)
		}
	})

	t.Run("wx with errors still quits", func(t *testing.T) {
		dir := t.TempDir()
		a := newApp(t, dir, filepath.Join(dir, "gone", "a.txt"))
		press(t, a, "x<esc>wx<cr>")
		if !a.ShouldQuit {
			t.Error("not quitting")
		}
		if !strings.HasPrefix(a.StatusMessage, "Errors saving: ") {
			t.Errorf("status message is '%s'", a.StatusMessage)
		}
	})

	t.Run("revert", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "a.txt")
		writeFile(t, path, "saved")
		a := newApp(t, dir, path)
		press(t, a, "changed<esc>r<cr>")
		if a.ActivePage().Text() != "saved" {
			t.Errorf("page holds %q", a.ActivePage().Text())
		}
		if a.StatusMessage != "Reverted to saved version." {
			t.Errorf("status message is '%s'", a.StatusMessage)
		}

		if err := os.Remove(path); err != nil {
			t.Fatal(err)
		}
		press(t, a, "revert<cr>")
		if a.StatusMessage != "Error reading file: "+path {
			t.Errorf("status message is '%s'", a.StatusMessage)
		}

		press(t, a, "new<cr>x<esc>r<cr>")
		if a.StatusMessage != "No file to revert from." {
			t.Errorf("status message is '%s'", a.StatusMessage)
		}
		if a.ActivePage().Text() != "x" {
			t.Error("pathless page changed by revert")
		}
	})

	t.Run("unknown and empty", func(t *testing.T) {
		a := newApp(t, t.TempDir(), "")
		press(t, a, "<esc>frobnicate now<cr>")
		if a.StatusMessage != "Unknown command: frobnicate now" {
			t.Errorf("status message is '%s'", a.StatusMessage)
		}
		press(t, a, "<cr>")
		if a.StatusMessage != "" {
			t.Errorf("empty command set message '%s'", a.StatusMessage)
		}
		press(t, a, "   <cr>")
		if a.StatusMessage != "" {
			t.Errorf("blank command set message '%s'", a.StatusMessage)
		}
		expectState(t, a, app.PaneEditor, app.CommandMode{})
	})

	t.Run("backspace in command line", func(t *testing.T) {
		a := newApp(t, t.TempDir(), "")
		press(t, a, "<esc>wö<bs><bs><bs>x")
		if a.CommandBuffer != "x" {
			t.Errorf("command buffer is '%s'", a.CommandBuffer)
		}
	})

	t.Run("help for keys", func(t *testing.T) {
		a := newApp(t, t.TempDir(), "")
		for command, expected := range map[string]string{
			"h confirm": "Keys (confirm): <esc>/N/n: cancel, Y/y: delete",
			"h find":    "Keys (find): <bs>: delete backwards, <esc>: exit find, <cr>: navigate matches",
			"h bogus":   "Unknown help target: bogus",
		} {
			press(t, a, "<esc>"+command+"<cr>")
			if a.StatusMessage != expected {
				t.Errorf("'%s' shows '%s' instead of '%s'", command, a.StatusMessage, expected)
			}
		}
		press(t, a, "<esc>h keys<cr>")
		if !strings.HasPrefix(a.StatusMessage, "Keys: ") || !strings.Contains(a.StatusMessage, "<cr>: execute command") {
			t.Errorf("command line keys shown as '%s'", a.StatusMessage)
		}
	})
}

func TestFind(t *testing.T) {
	newFindApp := func(t *testing.T, content string) *app.App {
		dir := t.TempDir()
		path := filepath.Join(dir, "f.txt")
		writeFile(t, path, content)
		a := newApp(t, dir, path)
		press(t, a, "<esc>f<cr>")
		expectState(t, a, app.PaneEditor, app.FindMode{})
		return a
	}
	cursor := func(a *app.App) model.Position { return a.ActivePage().CursorPosition() }

	t.Run("incremental and navigation", func(t *testing.T) {
		a := newFindApp(t, "foobar\nxfoo")
		press(t, a, "foo")
		expected := []model.Position{{Row: 0, Col: 0}, {Row: 1, Col: 1}}
		if !reflect.DeepEqual(a.Find.Matches, expected) {
			t.Errorf("matches are %v instead of %v", a.Find.Matches, expected)
		}
		if cursor(a) != (model.Position{Row: 0, Col: 0}) {
			t.Errorf("cursor at %s", cursor(a))
		}
		press(t, a, "<cr>n")
		if cursor(a) != (model.Position{Row: 1, Col: 1}) {
			t.Errorf("cursor at %s instead of 1:1", cursor(a))
		}
		if a.StatusLine() != "/foo [2/2] (n/N)" {
			t.Errorf("status line is '%s'", a.StatusLine())
		}
		press(t, a, "n")
		if cursor(a) != (model.Position{Row: 0, Col: 0}) {
			t.Errorf("cursor at %s instead of 0:0", cursor(a))
		}
		press(t, a, "N")
		if cursor(a) != (model.Position{Row: 1, Col: 1}) {
			t.Errorf("cursor at %s instead of 1:1", cursor(a))
		}
	})

	t.Run("typing leaves navigation", func(t *testing.T) {
		a := newFindApp(t, "foobar\nxfoo")
		press(t, a, "foo<cr>b")
		if a.Find.Navigating {
			t.Error("still navigating")
		}
		if a.Find.Query != "foob" {
			t.Errorf("query is '%s'", a.Find.Query)
		}
		if !reflect.DeepEqual(a.Find.Matches, []model.Position{{Row: 0, Col: 0}}) {
			t.Errorf("matches are %v", a.Find.Matches)
		}
		press(t, a, "n")
		if a.Find.Query != "foobn" || len(a.Find.Matches) != 0 {
			t.Errorf("'n' outside navigation gave query '%s' with %d matches", a.Find.Query, len(a.Find.Matches))
		}
		if a.StatusLine() != "/foobn [no matches]" {
			t.Errorf("status line is '%s'", a.StatusLine())
		}
	})

	t.Run("enter without matches keeps typing", func(t *testing.T) {
		a := newFindApp(t, "needle")
		press(t, a, "<cr><cr>needle")
		if a.Find.Query != "needle" {
			t.Errorf("query is '%s' instead of 'needle'", a.Find.Query)
		}
		if !reflect.DeepEqual(a.Find.Matches, []model.Position{{Row: 0, Col: 0}}) {
			t.Errorf("matches are %v", a.Find.Matches)
		}
		press(t, a, "x<cr>n")
		if a.Find.Navigating || a.Find.Query != "needlexn" {
			t.Errorf("after enter on no matches: navigating %t, query '%s'", a.Find.Navigating, a.Find.Query)
		}
	})

	t.Run("backspace", func(t *testing.T) {
		a := newFindApp(t, "ab\nab")
		a.ActivePage().MoveCursorTo(1, 2)
		press(t, a, "b<cr>n<bs>")
		if a.Find.Navigating || a.Find.Query != "" || a.Find.Matches != nil {
			t.Errorf("find state after erasing: %+v", a.Find)
		}
		if cursor(a) != (model.Position{Row: 1, Col: 1}) {
			t.Errorf("cursor moved to %s on empty query", cursor(a))
		}
	})

	t.Run("escape clears", func(t *testing.T) {
		a := newFindApp(t, "aaa")
		press(t, a, "a<esc>")
		expectState(t, a, app.PaneEditor, app.CommandMode{})
		if a.Find.Query != "" || a.Find.Matches != nil {
			t.Errorf("find state kept: %+v", a.Find)
		}
	})

	t.Run("requires a buffer", func(t *testing.T) {
		a := newApp(t, t.TempDir(), "")
		press(t, a, "<esc>find<cr>")
		expectState(t, a, app.PaneEditor, app.CommandMode{})
		if a.StatusMessage != "No open buffer." {
			t.Errorf("status message is '%s'", a.StatusMessage)
		}
	})
}

func TestFindMatches(t *testing.T) {
	for name, tc := range map[string]struct {
		lines    []string
		query    string
		expected []model.Position
	}{
		"empty query":     {[]string{"abc"}, "", nil},
		"no match":        {[]string{"abc"}, "x", nil},
		"non-overlapping": {[]string{"aaaa"}, "aa", []model.Position{{Row: 0, Col: 0}, {Row: 0, Col: 2}}},
		"rune columns":    {[]string{"日本x日本"}, "日本", []model.Position{{Row: 0, Col: 0}, {Row: 0, Col: 3}}},
		"rows":            {[]string{"", "b", "ab"}, "b", []model.Position{{Row: 1, Col: 0}, {Row: 2, Col: 1}}},
	} {
		t.Run(name, func(t *testing.T) {
			if actual := app.FindMatches(tc.lines, tc.query); !reflect.DeepEqual(actual, tc.expected) {
				t.Errorf("matches are %v instead of %v", actual, tc.expected)
			}
		})
	}
}

func TestFileTree(t *testing.T) {
	setup := func(t *testing.T) (string, *app.App) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "notes.txt"), "notes")
		writeFile(t, filepath.Join(dir, "other.txt"), "other")
		if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
			t.Fatal(err)
		}
		writeFile(t, filepath.Join(dir, "sub", "inner.txt"), "inner")
		return dir, newApp(t, dir, "")
	}

	t.Run("open file and directory", func(t *testing.T) {
		dir, a := setup(t)
		if names := entryNames(a); !reflect.DeepEqual(names, []string{"sub", "notes.txt", "other.txt"}) {
			t.Fatalf("entries are %q", names)
		}
		press(t, a, "<down><cr>")
		expectState(t, a, app.PaneEditor, app.EditMode{})
		if len(a.Tabs) != 1 || a.ActivePage().Text() != "notes" {
			t.Fatal("notes.txt not opened")
		}

		press(t, a, "<esc><tab><cr>")
		if len(a.Tabs) != 1 {
			t.Error("opening an already open file opened another tab")
		}

		press(t, a, "<esc><tab><up><up><cr>")
		if a.Directory.Path != filepath.Join(dir, "sub") {
			t.Errorf("browsing '%s'", a.Directory.Path)
		}
		expectState(t, a, app.PaneFileTree, app.FileTreeMode{})
		press(t, a, "<left>")
		if a.Directory.Path != dir {
			t.Errorf("browsing '%s' after going up", a.Directory.Path)
		}
		if e, _ := a.Directory.Selected(); e.Name != "sub" {
			t.Errorf("selected '%s' instead of the directory we came from", e.Name)
		}
	})

	t.Run("unknown command", func(t *testing.T) {
		_, a := setup(t)
		press(t, a, "zz<cr>")
		if a.StatusMessage != "Unknown command: zz" {
			t.Errorf("status message is '%s'", a.StatusMessage)
		}
		expectState(t, a, app.PaneFileTree, app.FileTreeMode{})
	})

	t.Run("help", func(t *testing.T) {
		_, a := setup(t)
		press(t, a, "h<cr>")
		if !strings.HasPrefix(a.StatusMessage, "Commands: d(elete)") {
			t.Errorf("status message is '%s'", a.StatusMessage)
		}
		if !strings.Contains(a.StatusMessage, "Keys: ") || !strings.Contains(a.StatusMessage, "<left>: go to parent directory") {
			t.Errorf("tree keys missing from '%s'", a.StatusMessage)
		}
		expectState(t, a, app.PaneFileTree, app.FileTreeMode{})
	})

	t.Run("delete file with open tab", func(t *testing.T) {
		dir, a := setup(t)
		selectEntry(t, a, "notes.txt")
		press(t, a, "<cr>")
		press(t, a, "<esc><tab>")
		selectEntry(t, a, "notes.txt")
		press(t, a, "d<cr>")
		if _, ok := a.Mode().(app.ConfirmDeleteMode); !ok {
			t.Fatalf("mode is %s", a.Mode())
		}
		if path, ok := a.PathToDelete(); !ok || path != filepath.Join(dir, "notes.txt") {
			t.Errorf("pending deletion of '%s' (%t)", path, ok)
		}
		if a.StatusLine() != "Delete notes.txt? (y/n)" {
			t.Errorf("status line is '%s'", a.StatusLine())
		}
		press(t, a, "y")
		if _, err := os.Stat(filepath.Join(dir, "notes.txt")); !errors.Is(err, os.ErrNotExist) {
			t.Error("file still exists")
		}
		if len(a.Tabs) != 0 {
			t.Error("tab not closed")
		}
		if names := entryNames(a); !reflect.DeepEqual(names, []string{"sub", "other.txt"}) {
			t.Errorf("entries are %q", names)
		}
		expectState(t, a, app.PaneFileTree, app.FileTreeMode{})
		if _, ok := a.PathToDelete(); ok {
			t.Error("deletion still pending")
		}
		if a.StatusMessage != "Deleted notes.txt" {
			t.Errorf("status message is '%s'", a.StatusMessage)
		}
	})

	t.Run("delete directory closes tabs under it", func(t *testing.T) {
		dir, a := setup(t)
		press(t, a, "<cr><cr>")
		if a.ActivePage() == nil || a.ActivePage().Text() != "inner" {
			t.Fatal("inner.txt not opened")
		}
		press(t, a, "<esc><tab><left>")
		selectEntry(t, a, "other.txt")
		press(t, a, "<cr><esc><tab>")
		selectEntry(t, a, "sub")
		press(t, a, "d<cr>Y")
		if _, err := os.Stat(filepath.Join(dir, "sub")); !errors.Is(err, os.ErrNotExist) {
			t.Error("directory still exists")
		}
		if len(a.Tabs) != 1 || a.ActivePage().Text() != "other" || a.ActiveTab != 0 {
			t.Errorf("tabs after deletion: %d, active %d", len(a.Tabs), a.ActiveTab)
		}
	})

	t.Run("cancel delete", func(t *testing.T) {
		dir, a := setup(t)
		for _, cancel := range []string{"n", "N", "<esc>"} {
			selectEntry(t, a, "notes.txt")
			press(t, a, "d<cr>q"+cancel)
			expectState(t, a, app.PaneFileTree, app.FileTreeMode{})
			if _, err := os.Stat(filepath.Join(dir, "notes.txt")); err != nil {
				t.Error("file deleted despite cancelling with", cancel)
			}
		}
	})

	t.Run("dialog ignores pane and mouse", func(t *testing.T) {
		_, a := setup(t)
		selectEntry(t, a, "notes.txt")
		press(t, a, "d<cr>")
		a.ActivePane = app.PaneEditor
		a.SelectTreeEntry(0)
		a.ScrollTree(1)
		if e, _ := a.Directory.Selected(); e.Name != "notes.txt" {
			t.Error("mouse selection applied during dialog")
		}
		if a.HandleKey(input.RuneKey('x')) {
			t.Error("unmapped key applied in dialog")
		}
		press(t, a, "n")
		expectState(t, a, app.PaneFileTree, app.FileTreeMode{})
	})

	t.Run("new file", func(t *testing.T) {
		dir, a := setup(t)
		press(t, a, "nf<cr>")
		expectState(t, a, app.PaneFileTree, app.PromptNewFileMode{})
		press(t, a, "<cr>")
		expectState(t, a, app.PaneFileTree, app.PromptNewFileMode{})
		if a.StatusMessage == "" {
			t.Error("no message for empty name")
		}
		press(t, a, "fresh.txt<cr>")
		expectState(t, a, app.PaneEditor, app.EditMode{})
		if len(a.Tabs) != 1 || a.ActivePage().FilePath != filepath.Join(dir, "fresh.txt") {
			t.Error("new file not opened")
		}
		if a.StatusMessage != "Created fresh.txt" {
			t.Errorf("status message is '%s'", a.StatusMessage)
		}
		if names := entryNames(a); !reflect.DeepEqual(names, []string{"sub", "fresh.txt", "notes.txt", "other.txt"}) {
			t.Errorf("entries are %q", names)
		}
	})

	t.Run("new file exists", func(t *testing.T) {
		_, a := setup(t)
		press(t, a, "nf<cr>notes.txt<cr>")
		expectState(t, a, app.PaneFileTree, app.FileTreeMode{})
		if !strings.HasPrefix(a.StatusMessage, "Error: ") {
			t.Errorf("status message is '%s'", a.StatusMessage)
		}
		if len(a.Tabs) != 0 {
			t.Error("tab opened despite failure")
		}
	})

	t.Run("new directory", func(t *testing.T) {
		dir, a := setup(t)
		press(t, a, "nd<cr>fresh<cr>")
		expectState(t, a, app.PaneFileTree, app.FileTreeMode{})
		if info, err := os.Stat(filepath.Join(dir, "fresh")); err != nil || !info.IsDir() {
			t.Error("directory not created")
		}
		if a.StatusMessage != "Created directory fresh" {
			t.Errorf("status message is '%s'", a.StatusMessage)
		}
	})

	t.Run("cancel prompt", func(t *testing.T) {
		dir, a := setup(t)
		press(t, a, "nd<cr>fresh<esc>")
		expectState(t, a, app.PaneFileTree, app.FileTreeMode{})
		if a.CommandBuffer != "" {
			t.Errorf("buffer '%s' kept", a.CommandBuffer)
		}
		if _, err := os.Stat(filepath.Join(dir, "fresh")); err == nil {
			t.Error("directory created despite cancelling")
		}
	})

	t.Run("rename repoints tabs", func(t *testing.T) {
		dir, a := setup(t)
		press(t, a, "<cr><cr>")
		press(t, a, "<esc><tab><left>")
		selectEntry(t, a, "sub")
		press(t, a, "rn<cr>")
		if path, ok := a.PathToRename(); !ok || path != filepath.Join(dir, "sub") {
			t.Errorf("pending rename of '%s' (%t)", path, ok)
		}
		if a.StatusLine() != "Rename sub to: " {
			t.Errorf("status line is '%s'", a.StatusLine())
		}
		press(t, a, "moved<cr>")
		expectState(t, a, app.PaneFileTree, app.FileTreeMode{})
		if len(a.Tabs) != 1 {
			t.Fatal("rename closed a tab")
		}
		if a.ActivePage().FilePath != filepath.Join(dir, "moved", "inner.txt") {
			t.Errorf("tab path is '%s'", a.ActivePage().FilePath)
		}
		if a.StatusMessage != "Renamed sub to moved" {
			t.Errorf("status message is '%s'", a.StatusMessage)
		}
		if names := entryNames(a); !reflect.DeepEqual(names, []string{"moved", "notes.txt", "other.txt"}) {
			t.Errorf("entries are %q", names)
		}
	})

	t.Run("rename does not touch similarly named paths", func(t *testing.T) {
		dir, a := setup(t)
		writeFile(t, filepath.Join(dir, "notes.txt.bak"), "bak")
		a.DirectoryChanged(dir)
		selectEntry(t, a, "notes.txt.bak")
		press(t, a, "<cr><esc><tab>")
		selectEntry(t, a, "notes.txt")
		press(t, a, "rn<cr>renamed.txt<cr>")
		if a.ActivePage().FilePath != filepath.Join(dir, "notes.txt.bak") {
			t.Errorf("unrelated tab repointed to '%s'", a.ActivePage().FilePath)
		}
	})
}

func TestDirectoryChanged(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a"), "")
	a := newApp(t, dir, "")
	writeFile(t, filepath.Join(dir, "b"), "")

	a.DirectoryChanged(filepath.Join(dir, "elsewhere"))
	if len(a.Directory.Entries) != 1 {
		t.Error("refreshed for another directory")
	}
	a.DirectoryChanged(dir)
	if names := entryNames(a); !reflect.DeepEqual(names, []string{"a", "b"}) {
		t.Errorf("entries are %q", names)
	}
}

func TestMouse(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		writeFile(t, filepath.Join(dir, name), name+"\n"+name)
	}
	a := newApp(t, dir, filepath.Join(dir, "a"))
	a.ClampViewport(app.Viewport{EditorHeight: 1, EditorWidth: 10, TreeHeight: 2})

	t.Run("tree", func(t *testing.T) {
		a.SelectTreeEntry(3)
		expectState(t, a, app.PaneFileTree, app.FileTreeMode{})
		if a.Directory.SelectedIndex != 3 {
			t.Errorf("selection at %d", a.Directory.SelectedIndex)
		}
		a.ScrollTree(-5)
		if a.Directory.ScrollOffset != 0 || a.Directory.SelectedIndex != 1 {
			t.Errorf("after scrolling up: offset %d, selection %d", a.Directory.ScrollOffset, a.Directory.SelectedIndex)
		}
		a.ScrollTree(10)
		if a.Directory.ScrollOffset != 3 || a.Directory.SelectedIndex != 3 {
			t.Errorf("after scrolling down: offset %d, selection %d", a.Directory.ScrollOffset, a.Directory.SelectedIndex)
		}
	})

	t.Run("editor click focuses", func(t *testing.T) {
		a.ClickEditor(1, 5)
		expectState(t, a, app.PaneEditor, app.EditMode{})
		if pos := a.ActivePage().CursorPosition(); pos != (model.Position{Row: 1, Col: 1}) {
			t.Errorf("cursor at %s", pos)
		}
	})

	t.Run("editor scroll moves cursor along", func(t *testing.T) {
		a.ScrollEditor(-1)
		if a.ActivePage().ScrollOffset != 0 || a.ActivePage().CursorRow() != 0 {
			t.Errorf("offset %d, cursor row %d", a.ActivePage().ScrollOffset, a.ActivePage().CursorRow())
		}
	})

	t.Run("tabs", func(t *testing.T) {
		a.SelectTreeEntry(1)
		press(t, a, "<cr><esc>f<cr>")
		expectState(t, a, app.PaneEditor, app.FindMode{})
		a.SelectTab(0)
		if a.ActiveTab != 0 {
			t.Errorf("active tab %d", a.ActiveTab)
		}
		expectState(t, a, app.PaneEditor, app.CommandMode{})
		a.SelectTab(7)
		if a.ActiveTab != 0 {
			t.Error("out of range tab selected")
		}
	})

	t.Run("input clears status message", func(t *testing.T) {
		a.StatusMessage = "Error: something"
		a.HandleMouse(func() { a.ScrollEditor(1) })
		if a.StatusMessage != "" {
			t.Errorf("status message '%s' after mouse input", a.StatusMessage)
		}
		a.StatusMessage = "Error: something"
		a.HandleMouse(nil)
		if a.StatusMessage != "" {
			t.Errorf("status message '%s' after mouse input without operation", a.StatusMessage)
		}
	})
}

func TestClampViewport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "long.txt")
	lines := []string{}
	for i := 0; i < 50; i++ {
		lines = append(lines, strings.Repeat("x", i))
	}
	writeFile(t, path, strings.Join(lines, "\n"))
	a := newApp(t, dir, path)
	page := a.ActivePage()

	page.MoveCursorTo(30, 30)
	a.ClampViewport(app.Viewport{EditorHeight: 10, EditorWidth: 20, TreeHeight: 5})
	if page.ScrollOffset != 21 {
		t.Errorf("scroll offset %d instead of 21", page.ScrollOffset)
	}
	if page.HorizontalScrollOffset != 11 {
		t.Errorf("horizontal scroll offset %d instead of 11", page.HorizontalScrollOffset)
	}

	page.MoveCursorTo(5, 0)
	a.ClampViewport(app.Viewport{EditorHeight: 10, EditorWidth: 20, TreeHeight: 5})
	if page.ScrollOffset != 5 || page.HorizontalScrollOffset != 0 {
		t.Errorf("scroll offsets %d, %d instead of 5, 0", page.ScrollOffset, page.HorizontalScrollOffset)
	}

	t.Run("wide runes", func(t *testing.T) {
		p := model.NewPageFromText("日本語日本語")
		a.Tabs = append(a.Tabs, p)
		a.ActiveTab = len(a.Tabs) - 1
		p.MoveToLineEnd()
		a.ClampViewport(app.Viewport{EditorHeight: 10, EditorWidth: 5, TreeHeight: 5})
		if p.HorizontalScrollOffset != 4 {
			t.Errorf("horizontal scroll offset %d instead of 4", p.HorizontalScrollOffset)
		}
	})
}

func TestCells(t *testing.T) {
	runes := []rune("a日\tb")
	if w := app.CellsWidth(runes); w != 5 {
		t.Errorf("width %d instead of 5", w)
	}
	for cell, expected := range map[int]int{0: 0, 1: 1, 2: 1, 3: 2, 4: 3, 5: 4, 9: 4} {
		if col := app.ColumnAtCell(runes, cell); col != expected {
			t.Errorf("cell %d gives column %d instead of %d", cell, col, expected)
		}
	}
}
