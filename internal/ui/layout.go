package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"LocalSketch/internal/config"
)

// viewportLayout places the toolbar across the top and centres a square
// board sized from the whole viewport, shrunk when needed to fit below the
// toolbar.
type viewportLayout struct {
	cfg config.Config
}

var _ fyne.Layout = (*viewportLayout)(nil)

// NewContent returns the window content: toolbar above the board.
func NewContent(cfg config.Config, toolbar *Toolbar, board *Board) *fyne.Container {
	return container.New(&viewportLayout{cfg: cfg}, toolbar.Object(), board)
}

func (l *viewportLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}
	bar, board := objects[0], objects[1]

	barHeight := bar.MinSize().Height
	bar.Move(fyne.NewPos(0, 0))
	bar.Resize(fyne.NewSize(size.Width, barHeight))

	edge := min(l.cfg.SquareEdge(size.Width, size.Height), max(0, size.Height-barHeight))
	board.Resize(fyne.NewSquareSize(edge))
	board.Move(fyne.NewPos(
		(size.Width-edge)/2,
		barHeight+max(0, (size.Height-barHeight-edge)/2),
	))
}

func (l *viewportLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 2 {
		return fyne.NewSize(0, 0)
	}
	bar, board := objects[0].MinSize(), objects[1].MinSize()
	return fyne.NewSize(max(bar.Width, board.Width), bar.Height+board.Height)
}
