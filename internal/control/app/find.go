package app

import (
	"strings"
	"unicode/utf8"

	"github.com/ja-he/jot/internal/model"
)

// FindMatches returns the positions of all non-overlapping occurrences of
// query in the lines, row by row and left to right. Columns count runes.
func FindMatches(lines []string, query string) []model.Position {
	if query == "" {
		return nil
	}
	var matches []model.Position
	for row, line := range lines {
		col, rest := 0, line
		for {
			i := strings.Index(rest, query)
			if i < 0 {
				break
			}
			col += utf8.RuneCountInString(rest[:i])
			matches = append(matches, model.Position{Row: row, Col: col})
			col += utf8.RuneCountInString(query)
			rest = rest[i+len(query):]
		}
	}
	return matches
}

// findRune extends the query or, while navigating, moves between matches on
// 'n' (next) and 'N' (previous).
func (a *App) findRune(r rune) {
	if a.Find.Navigating {
		switch r {
		case 'n':
			a.stepMatch(1)
			return
		case 'N':
			a.stepMatch(-1)
			return
		}
		a.Find.Navigating = false
	}
	a.Find.Query += string(r)
	a.updateMatches()
}

func (a *App) findBackspace() {
	a.Find.Navigating = false
	runes := []rune(a.Find.Query)
	if len(runes) > 0 {
		a.Find.Query = string(runes[:len(runes)-1])
	}
	a.updateMatches()
}

// commitFind starts navigating the matches of the query. Without matches
// there is nothing to navigate and typing continues the query.
func (a *App) commitFind() {
	if len(a.Find.Matches) == 0 {
		return
	}
	a.Find.Navigating = true
	a.jumpToMatch()
}

// updateMatches recomputes the matches for the query and selects the first.
func (a *App) updateMatches() {
	page := a.ActivePage()
	if page == nil {
		a.Find.Matches = nil
		return
	}
	a.Find.Matches = FindMatches(page.AllLines(), a.Find.Query)
	a.Find.Current = 0
	a.jumpToMatch()
}

func (a *App) stepMatch(delta int) {
	n := len(a.Find.Matches)
	if n == 0 {
		return
	}
	a.Find.Current = ((a.Find.Current+delta)%n + n) % n
	a.jumpToMatch()
}

// jumpToMatch moves the cursor to the current match, if any.
func (a *App) jumpToMatch() {
	page := a.ActivePage()
	if page == nil || len(a.Find.Matches) == 0 {
		return
	}
	m := a.Find.Matches[a.Find.Current]
	page.MoveCursorTo(m.Row, m.Col)
}
