package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"LocalSketch/internal/state"
)

// Toolbar holds the pen, eraser, clear and export controls. Exactly one of
// the two tool buttons is shown as active.
type Toolbar struct {
	Pen    *widget.Button
	Eraser *widget.Button
	Clear  *widget.Button
	Export *widget.Button

	box *fyne.Container
}

// NewToolbar wires the controls to board. A nil onExport disables export.
func NewToolbar(board *Board, onExport func()) *Toolbar {
	t := &Toolbar{
		Pen:    widget.NewButtonWithIcon("Pen", theme.DocumentCreateIcon(), board.SelectPen),
		Eraser: widget.NewButtonWithIcon("Eraser", theme.ContentRemoveIcon(), board.SelectEraser),
		Clear:  widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), board.Clear),
		Export: widget.NewButtonWithIcon("Export", theme.DocumentSaveIcon(), onExport),
	}
	if onExport == nil {
		t.Export.Disable()
	}
	board.OnToolChanged = t.SetActive
	t.SetActive(board.Tool())

	t.box = container.NewHBox(
		widget.NewLabel("Tool:"),
		t.Pen,
		t.Eraser,
		widget.NewSeparator(),
		t.Clear,
		layout.NewSpacer(),
		t.Export,
	)
	return t
}

// SetActive highlights the button of tool and resets the other one.
func (t *Toolbar) SetActive(tool state.Tool) {
	highlight(t.Pen, tool == state.ToolPen)
	highlight(t.Eraser, tool == state.ToolEraser)
}

func highlight(b *widget.Button, active bool) {
	imp := widget.MediumImportance
	if active {
		imp = widget.HighImportance
	}
	if b.Importance == imp {
		return
	}
	b.Importance = imp
	b.Refresh()
}

func (t *Toolbar) Object() fyne.CanvasObject { return t.box }
