package ui

import (
	"image"
	"image/color"
	"io"
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"LocalSketch/internal/config"
	"LocalSketch/internal/export"
	"LocalSketch/internal/snapshot"
	"LocalSketch/internal/state"
	"LocalSketch/internal/surface"
)

// Board is the drawing surface widget. It turns pointer and touch input into
// pen or eraser segments and persists the flattened raster after every one.
type Board struct {
	widget.BaseWidget

	mu      sync.Mutex
	surface *surface.Surface
	tool    state.Tool
	stroke  state.Stroke

	// restoreGen invalidates pending snapshot decodes on clear and on
	// every newer restore. drawnSinceRestore marks segments that a pending
	// decode has to keep on top of the restored image.
	restoreGen        uint64
	drawnSinceRestore bool

	store  *snapshot.Store
	raster *canvas.Raster

	OnToolChanged func(state.Tool)

	origin   func() state.Point
	dispatch func(func())
}

var _ fyne.Widget = (*Board)(nil)
var _ fyne.Draggable = (*Board)(nil)
var _ desktop.Mouseable = (*Board)(nil)
var _ desktop.Hoverable = (*Board)(nil)
var _ desktop.Cursorable = (*Board)(nil)
var _ mobile.Touchable = (*Board)(nil)

func NewBoard(store *snapshot.Store, cfg config.Config) *Board {
	b := &Board{
		surface:  surface.New(cfg.InkColor, cfg.LineWidth),
		tool:     state.ToolPen,
		store:    store,
		dispatch: fyne.Do,
	}
	b.origin = b.absoluteOrigin
	b.raster = canvas.NewRaster(b.render)
	b.ExtendBaseWidget(b)
	return b
}

func (b *Board) absoluteOrigin() state.Point {
	a := fyne.CurrentApp()
	if a == nil || a.Driver() == nil {
		return state.Point{}
	}
	return toPoint(a.Driver().AbsolutePositionForObject(b))
}

func (b *Board) render(_, _ int) image.Image {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.surface.Image()
}

func toPoint(p fyne.Position) state.Point {
	return state.Point{X: p.X, Y: p.Y}
}

// --- Tools ---

func (b *Board) SelectPen() { b.setTool(state.ToolPen) }

func (b *Board) SelectEraser() { b.setTool(state.ToolEraser) }

func (b *Board) setTool(t state.Tool) {
	b.mu.Lock()
	b.tool = t
	b.mu.Unlock()
	if b.OnToolChanged != nil {
		b.OnToolChanged(t)
	}
}

func (b *Board) Tool() state.Tool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tool
}

// --- Stroke lifecycle ---

func (b *Board) begin(in state.Input) {
	b.mu.Lock()
	p := state.Normalize(in, b.origin())
	b.stroke.Begin(p)
	id, at, tool := b.stroke.ID(), b.stroke.Last(), b.tool
	b.mu.Unlock()
	log.Printf("[BOARD] Stroke %s started at %v with %s", id, at, tool)
}

func (b *Board) move(in state.Input) {
	b.mu.Lock()
	if !b.stroke.Active() {
		b.mu.Unlock()
		return
	}
	from, to, ok := b.stroke.Advance(state.Normalize(in, b.origin()))
	if !ok {
		b.mu.Unlock()
		return
	}
	b.surface.Segment(from, to, b.tool)
	b.drawnSinceRestore = true
	img := b.surface.Image()
	b.mu.Unlock()

	b.persist(img)
	b.raster.Refresh()
}

func (b *Board) end(reason string) {
	b.mu.Lock()
	was := b.stroke.End()
	id := b.stroke.ID()
	b.mu.Unlock()
	if was {
		log.Printf("[BOARD] Stroke %s ended (%s)", id, reason)
	}
}

func (b *Board) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.begin(state.Input{Client: toPoint(e.AbsolutePosition)})
}

func (b *Board) MouseUp(*desktop.MouseEvent) { b.end("mouse up") }

func (b *Board) MouseIn(*desktop.MouseEvent) {}

func (b *Board) MouseMoved(e *desktop.MouseEvent) {
	b.move(state.Input{Client: toPoint(e.AbsolutePosition)})
}

func (b *Board) MouseOut() { b.end("mouse out") }

func (b *Board) TouchDown(e *mobile.TouchEvent) { b.begin(touchInput(e)) }

func (b *Board) TouchUp(*mobile.TouchEvent) { b.end("touch up") }

func (b *Board) TouchCancel(*mobile.TouchEvent) { b.end("touch cancel") }

// Dragged carries touch moves on mobile and button-held moves on desktop.
func (b *Board) Dragged(e *fyne.DragEvent) {
	b.move(state.Input{Client: toPoint(e.AbsolutePosition)})
}

func (b *Board) DragEnd() { b.end("drag end") }

func (b *Board) Cursor() desktop.Cursor { return desktop.CrosshairCursor }

func touchInput(e *mobile.TouchEvent) state.Input {
	p := toPoint(e.AbsolutePosition)
	return state.Input{Client: p, Touches: []state.Point{p}}
}

// --- Surface operations ---

// Clear blanks the surface and persists the blank state explicitly.
func (b *Board) Clear() {
	b.mu.Lock()
	b.surface.Clear()
	b.restoreGen++
	b.drawnSinceRestore = false
	img := b.surface.Image()
	b.mu.Unlock()

	b.store.Remove()
	b.persist(img)
	b.raster.Refresh()
	log.Println("[BOARD] Cleared")
}

// ResizeSurface reallocates the raster, which blanks it, and restores the
// persisted snapshot at the new size. The returned channel closes once the
// restore has been applied or skipped.
func (b *Board) ResizeSurface(width, height int) <-chan struct{} {
	b.mu.Lock()
	b.surface.Resize(width, height)
	b.mu.Unlock()
	b.raster.Refresh()
	return b.Restore()
}

func (b *Board) surfaceSize() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.surface.Size()
}

// Restore decodes the persisted snapshot off the UI goroutine and then
// redraws the surface from it. Without a snapshot the surface is left as is.
// Segments drawn while the decode is pending stay on top of the restored
// image. A decode superseded by a clear or a newer restore is dropped.
func (b *Board) Restore() <-chan struct{} {
	done := make(chan struct{})
	uri, ok := b.store.Load()

	b.mu.Lock()
	b.restoreGen++
	gen := b.restoreGen
	b.drawnSinceRestore = false
	b.mu.Unlock()
	dispatch := b.dispatch

	if !ok {
		close(done)
		return done
	}
	go func() {
		img, err := snapshot.Decode(uri)
		dispatch(func() {
			defer close(done)
			if err != nil {
				log.Printf("[BOARD] Warning: ignoring unreadable snapshot %q: %v", b.store.Key(), err)
				return
			}
			b.applySnapshot(gen, img)
		})
	}()
	return done
}

func (b *Board) applySnapshot(gen uint64, img image.Image) {
	b.mu.Lock()
	if gen != b.restoreGen {
		b.mu.Unlock()
		log.Println("[BOARD] Dropped superseded snapshot restore")
		return
	}
	drawn := b.drawnSinceRestore
	b.drawnSinceRestore = false
	if !drawn {
		b.surface.Restore(img)
		b.mu.Unlock()
		b.raster.Refresh()
		return
	}
	strokes := b.surface.Image()
	b.surface.Restore(img)
	b.surface.Overlay(strokes)
	merged := b.surface.Image()
	b.mu.Unlock()

	b.persist(merged)
	b.raster.Refresh()
}

func (b *Board) persist(img image.Image) {
	if err := b.store.Save(img); err != nil {
		log.Printf("[BOARD] Warning: snapshot not saved: %v", err)
	}
}

// ExportPNG writes the current surface as PNG and closes w.
func (b *Board) ExportPNG(w io.WriteCloser) error {
	b.mu.Lock()
	img := b.surface.Image()
	b.mu.Unlock()
	return export.WritePNG(w, img)
}

// --- Rendering ---

func (b *Board) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	return r
}

type boardRenderer struct {
	board      *Board
	background *canvas.Rectangle
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.board.raster}
}

// Layout follows the widget size; the surface is only reallocated when its
// pixel dimensions change.
func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.board.raster.Resize(size)

	w, h := int(size.Width), int(size.Height)
	if cw, ch := r.board.surfaceSize(); cw == w && ch == h {
		return
	}
	r.board.ResizeSurface(w, h)
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(100, 100)
}

func (r *boardRenderer) Refresh() {
	r.board.raster.Refresh()
}

func (r *boardRenderer) Destroy() {}
