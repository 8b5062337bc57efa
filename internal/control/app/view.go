package app

// Viewport describes the space available for the editor text and the
// directory entries, in terminal cells.
type Viewport struct {
	EditorHeight int
	EditorWidth  int
	TreeHeight   int
}

// ClampViewport scrolls the active page and the directory listing so that the
// cursor and the selection are visible in the given viewport.
// It is to be called before drawing, so that drawing only reads state.
func (a *App) ClampViewport(v Viewport) {
	a.viewport = v

	if page := a.ActivePage(); page != nil {
		if v.EditorHeight > 0 {
			row := page.CursorRow()
			if row < page.ScrollOffset {
				page.ScrollOffset = row
			}
			if row >= page.ScrollOffset+v.EditorHeight {
				page.ScrollOffset = row - v.EditorHeight + 1
			}
			if maxOffset := page.LineCount() - 1; page.ScrollOffset > maxOffset {
				page.ScrollOffset = maxOffset
			}
		}
		if v.EditorWidth > 0 {
			runes := []rune(page.CurrentLine())
			col := page.CursorColumn()
			if col < page.HorizontalScrollOffset {
				page.HorizontalScrollOffset = col
			}
			// the cursor cell itself has to fit as well
			for page.HorizontalScrollOffset < col &&
				CellsWidth(runes[page.HorizontalScrollOffset:col])+1 > v.EditorWidth {
				page.HorizontalScrollOffset++
			}
		}
	}

	if a.Directory != nil && v.TreeHeight > 0 {
		d := a.Directory
		if d.SelectedIndex < d.ScrollOffset {
			d.ScrollOffset = d.SelectedIndex
		}
		if d.SelectedIndex >= d.ScrollOffset+v.TreeHeight {
			d.ScrollOffset = d.SelectedIndex - v.TreeHeight + 1
		}
		d.Scroll(0, v.TreeHeight)
	}
}

// pageHeight is the editor height of the last viewport, at least 1.
func (a *App) pageHeight() int {
	if a.viewport.EditorHeight > 0 {
		return a.viewport.EditorHeight
	}
	return 1
}

// SelectTreeEntry selects the directory entry at the given index and focuses
// the file tree.
func (a *App) SelectTreeEntry(index int) {
	if IsDialog(a.mode) {
		return
	}
	a.Directory.Select(index)
	if a.ActivePane != PaneFileTree {
		a.CommandBuffer = ""
		a.focus(PaneFileTree, FileTreeMode{})
	}
}

// ScrollTree scrolls the directory listing by delta entries, keeping the
// selection in view.
func (a *App) ScrollTree(delta int) {
	if IsDialog(a.mode) {
		return
	}
	d := a.Directory
	height := a.viewport.TreeHeight
	if height <= 0 {
		height = 1
	}
	d.Scroll(delta, height)
	if d.SelectedIndex < d.ScrollOffset {
		d.Select(d.ScrollOffset)
	}
	if d.SelectedIndex >= d.ScrollOffset+height {
		d.Select(d.ScrollOffset + height - 1)
	}
}

// SelectTab makes the tab at the given index the active one.
func (a *App) SelectTab(index int) {
	if IsDialog(a.mode) || index < 0 || index >= len(a.Tabs) {
		return
	}
	a.ActiveTab = index
	switch a.mode.(type) {
	case FindMode, PromptSaveMode, PromptSaveAndQuitMode:
		a.CommandBuffer = ""
		a.setMode(CommandMode{})
	}
}

// ClickEditor moves the cursor of the active page to the given document
// position, focusing the editor if the file tree had focus.
func (a *App) ClickEditor(row, col int) {
	if IsDialog(a.mode) {
		return
	}
	page := a.ActivePage()
	if page == nil {
		return
	}
	if a.ActivePane == PaneFileTree {
		a.CommandBuffer = ""
		a.focus(PaneEditor, EditMode{})
	}
	page.MoveCursorTo(row, col)
}

// ScrollEditor scrolls the active page by delta rows, moving the cursor along
// if it would leave the view.
func (a *App) ScrollEditor(delta int) {
	if IsDialog(a.mode) {
		return
	}
	page := a.ActivePage()
	if page == nil {
		return
	}
	height := a.pageHeight()

	page.ScrollOffset += delta
	if maxOffset := page.LineCount() - height; page.ScrollOffset > maxOffset {
		page.ScrollOffset = maxOffset
	}
	if page.ScrollOffset < 0 {
		page.ScrollOffset = 0
	}

	row, col := page.CursorRow(), page.CursorColumn()
	switch {
	case row < page.ScrollOffset:
		page.MoveCursorTo(page.ScrollOffset, col)
	case row >= page.ScrollOffset+height:
		page.MoveCursorTo(page.ScrollOffset+height-1, col)
	}
}
