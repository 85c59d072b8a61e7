// Package layout provides pure functions for UI dimension calculations.
//
// The screen is a header row, a stage holding the drop zone and the
// turntable, three rows under the turntable (controls, progress, now
// playing) and a status row and help row at the bottom. Every region is a
// rectangle in cells so the same values drive rendering and hit testing.
package layout

import (
	"github.com/llehouerou/turntable/internal/dragdrop"
	"github.com/llehouerou/turntable/internal/turntable"
)

const (
	HeaderHeight = 1
	FooterHeight = 2 // status row + help row

	DropZoneWidth = 30
	StageGap      = 4

	// RecordWidth and RecordHeight are the loose record slot inside the drop zone.
	RecordWidth  = 5
	RecordHeight = 3
)

// NarrowThreshold is the terminal width below which the drop zone is stacked
// above the turntable instead of beside it.
const NarrowThreshold = DropZoneWidth + StageGap + turntable.Width

// Layout holds the screen regions for one window size.
type Layout struct {
	Width, Height int
	Narrow        bool

	Header    dragdrop.Rect
	DropZone  dragdrop.Rect
	Record    dragdrop.Rect
	Turntable dragdrop.Rect
	Controls  dragdrop.Rect
	Progress  dragdrop.Rect
	Playing   dragdrop.Rect
	Status    dragdrop.Rect
	Help      dragdrop.Rect
}

// IsNarrowMode returns true if the terminal width is below the narrow threshold.
func IsNarrowMode(width int) bool {
	return width < NarrowThreshold
}

// Calculate lays out a width x height window.
func Calculate(width, height int) Layout {
	l := Layout{
		Width:  width,
		Height: height,
		Narrow: IsNarrowMode(width),
		Header: dragdrop.Rect{X: 0, Y: 0, W: width, H: HeaderHeight},
	}

	stageTop := HeaderHeight + 1
	dzWidth := min(DropZoneWidth, width)
	dzHeight := turntable.Height

	if l.Narrow {
		l.DropZone = dragdrop.Rect{X: 0, Y: stageTop, W: dzWidth, H: dzHeight}
		l.Turntable = dragdrop.Rect{X: 0, Y: stageTop + dzHeight + 1, W: turntable.Width, H: turntable.Height}
	} else {
		stageWidth := NarrowThreshold
		left := (width - stageWidth) / 2
		l.DropZone = dragdrop.Rect{X: left, Y: stageTop, W: dzWidth, H: dzHeight}
		l.Turntable = dragdrop.Rect{
			X: left + dzWidth + StageGap,
			Y: stageTop,
			W: turntable.Width,
			H: turntable.Height,
		}
	}

	// The record slot sits centered in the lower half of the drop zone,
	// under the drop hint text.
	l.Record = dragdrop.Rect{
		X: l.DropZone.X + (l.DropZone.W-RecordWidth)/2,
		Y: l.DropZone.Y + l.DropZone.H - RecordHeight - 2,
		W: RecordWidth,
		H: RecordHeight,
	}

	l.Controls = dragdrop.Rect{X: l.Turntable.X, Y: l.Turntable.Bottom() + 1, W: l.Turntable.W, H: 1}
	l.Progress = dragdrop.Rect{X: l.Turntable.X, Y: l.Controls.Bottom() + 1, W: l.Turntable.W, H: 1}
	l.Playing = dragdrop.Rect{X: l.Turntable.X, Y: l.Progress.Bottom() + 1, W: l.Turntable.W, H: 1}

	l.Status = dragdrop.Rect{X: 0, Y: height - FooterHeight, W: width, H: 1}
	l.Help = dragdrop.Rect{X: 0, Y: height - 1, W: width, H: 1}
	return l
}

// MinHeight is the smallest window that shows every region.
func MinHeight(narrow bool) int {
	stage := turntable.Height
	if narrow {
		stage = 2*turntable.Height + 1
	}
	return HeaderHeight + 1 + stage + 3 + FooterHeight
}
