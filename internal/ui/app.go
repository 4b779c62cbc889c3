package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"LocalSketch/internal/config"
	"LocalSketch/internal/snapshot"
)

// RunApp builds the window and blocks until it is closed.
func RunApp(cfg config.Config) error {
	myApp := app.NewWithID(cfg.AppID)
	myWindow := myApp.NewWindow("Local Sketch")
	myWindow.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))

	store, err := snapshot.NewStore(myApp.Preferences(), cfg.StorageKey)
	if err != nil {
		return fmt.Errorf("open snapshot store: %w", err)
	}

	board := NewBoard(store, cfg)
	toolbar := NewToolbar(board, func() { showExportDialog(myWindow, board) })
	board.SelectPen()

	myWindow.SetContent(NewContent(cfg, toolbar, board))
	myWindow.ShowAndRun()
	return nil
}

func showExportDialog(win fyne.Window, board *Board) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return
		}
		uri := writer.URI()
		if err := board.ExportPNG(writer); err != nil {
			log.Printf("[BOARD] Export to %s failed: %v", uri, err)
			dialog.ShowError(err, win)
			return
		}
		log.Printf("[BOARD] Exported drawing to %s", uri)
	}, win)
	d.SetFileName("drawing.png")
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png"}))
	d.Show()
}
