package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"

	"LocalSketch/internal/config"
)

func TestViewportLayoutSizesSquareBoard(t *testing.T) {
	cfg := config.Default()
	b := newTestBoard(t, newCountingPrefs())
	tb := NewToolbar(b, nil)
	content := NewContent(cfg, tb, b)

	content.Resize(fyne.NewSize(1024, 768))
	assert.InDelta(t, 768*0.7, b.Size().Width, 0.01)
	assert.Equal(t, b.Size().Width, b.Size().Height)
	assert.InDelta(t, (1024-b.Size().Width)/2, b.Position().X, 0.01)
	assert.GreaterOrEqual(t, b.Position().Y, tb.Object().MinSize().Height)
	w, h := b.surfaceSize()
	assert.InDelta(t, 537, w, 1)
	assert.Equal(t, w, h)

	content.Resize(fyne.NewSize(600, 800))
	assert.InDelta(t, 600*0.9, b.Size().Width, 0.01)
	w, _ = b.surfaceSize()
	assert.InDelta(t, 540, w, 1)
}

func TestViewportLayoutFitsBoardBelowToolbar(t *testing.T) {
	b := newTestBoard(t, newCountingPrefs())
	tb := NewToolbar(b, nil)
	content := NewContent(config.Default(), tb, b)

	content.Resize(fyne.NewSize(500, 200))
	bar := tb.Object().MinSize().Height
	assert.InDelta(t, 200-bar, b.Size().Height, 0.01)
	assert.Equal(t, b.Size().Width, b.Size().Height)
	assert.LessOrEqual(t, b.Position().Y+b.Size().Height, float32(200))
	assert.GreaterOrEqual(t, b.Position().Y, bar)
}

func TestViewportLayoutMinSize(t *testing.T) {
	b := newTestBoard(t, newCountingPrefs())
	tb := NewToolbar(b, nil)
	l := &viewportLayout{cfg: config.Default()}

	got := l.MinSize([]fyne.CanvasObject{tb.Object(), b})
	assert.Equal(t, tb.Object().MinSize().Height+100, got.Height)
	assert.Equal(t, fyne.NewSize(0, 0), l.MinSize(nil))
}
