package ui

// Layout is the partition of the screen into the editor's panes.
//
//	+------+----------------+
//	| tree | tabs           |
//	|      +----------------+
//	|      | editor         |
//	|      |                |
//	+------+----------------+
//	| status                |
//	+-----------------------+
type Layout struct {
	Tree   Rect
	Tabs   Rect
	Editor Rect
	Status Rect
}

// ComputeLayout partitions a screen of the given size, giving the tree the
// given percentage (1 to 99) of the width.
func ComputeLayout(screenW, screenH int, treeWidthPercent int) Layout {
	if screenW < 0 {
		screenW = 0
	}
	if screenH < 0 {
		screenH = 0
	}
	if treeWidthPercent < 1 || treeWidthPercent > 99 {
		treeWidthPercent = 25
	}

	statusH := min(1, screenH)
	mainH := screenH - statusH
	treeW := screenW * treeWidthPercent / 100
	rightW := screenW - treeW
	tabsH := min(1, mainH)

	return Layout{
		Tree:   Rect{X: 0, Y: 0, W: treeW, H: mainH},
		Tabs:   Rect{X: treeW, Y: 0, W: rightW, H: tabsH},
		Editor: Rect{X: treeW, Y: tabsH, W: rightW, H: mainH - tabsH},
		Status: Rect{X: 0, Y: mainH, W: screenW, H: statusH},
	}
}
