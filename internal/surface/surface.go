// Package surface holds the raster the board draws on.
package surface

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"

	"LocalSketch/internal/state"
)

// Surface is a premultiplied RGBA buffer with pen and eraser segment
// rendering. It is not safe for concurrent use.
type Surface struct {
	img       *image.RGBA
	ink       string
	lineWidth float64
}

// New returns an empty 0x0 surface that strokes with the given hex ink color
// and line width.
func New(ink string, lineWidth float64) *Surface {
	return &Surface{
		img:       image.NewRGBA(image.Rect(0, 0, 0, 0)),
		ink:       ink,
		lineWidth: lineWidth,
	}
}

// Resize reallocates the buffer, which discards its contents even when the
// dimensions are unchanged.
func (s *Surface) Resize(width, height int) {
	s.img = image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
}

func (s *Surface) Size() (width, height int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) empty() bool {
	return s.img.Bounds().Empty()
}

// Segment renders a round-capped line from one point to another. The pen
// paints ink over existing pixels, the eraser removes coverage from them.
func (s *Surface) Segment(from, to state.Point, tool state.Tool) {
	if s.empty() {
		return
	}
	if tool == state.ToolEraser {
		w, h := s.Size()
		mask := gg.NewContext(w, h)
		mask.SetRGBA(0, 0, 0, 1)
		s.strokeLine(mask, from, to)
		destinationOut(s.img, mask.AsMask())
		return
	}
	dc := gg.NewContextForRGBA(s.img)
	dc.SetHexColor(s.ink)
	s.strokeLine(dc, from, to)
}

func (s *Surface) strokeLine(dc *gg.Context, from, to state.Point) {
	dc.SetLineWidth(s.lineWidth)
	dc.SetLineCapRound()
	dc.DrawLine(float64(from.X), float64(from.Y), float64(to.X), float64(to.Y))
	dc.Stroke()
}

// destinationOut scales every pixel of dst by the inverse of the mask
// coverage at the same position. Both images share origin and size.
func destinationOut(dst *image.RGBA, mask *image.Alpha) {
	b := dst.Bounds().Intersect(mask.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		d := dst.Pix[dst.PixOffset(b.Min.X, y):]
		m := mask.Pix[mask.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			ma := uint32(m[x])
			if ma == 0 {
				continue
			}
			keep := 255 - ma
			px := d[x*4 : x*4+4 : x*4+4]
			for i := range px {
				px[i] = uint8((uint32(px[i])*keep + 127) / 255)
			}
		}
	}
}

// Clear makes every pixel fully transparent.
func (s *Surface) Clear() {
	clear(s.img.Pix)
}

// Restore clears the surface and draws img stretched to fill it.
func (s *Surface) Restore(img image.Image) {
	s.Clear()
	if s.empty() || img.Bounds().Empty() {
		return
	}
	if img.Bounds().Size() == s.img.Bounds().Size() {
		draw.Draw(s.img, s.img.Bounds(), img, img.Bounds().Min, draw.Src)
		return
	}
	xdraw.BiLinear.Scale(s.img, s.img.Bounds(), img, img.Bounds(), draw.Src, nil)
}

// Overlay composites img over the current pixels, anchored at the origin.
func (s *Surface) Overlay(img image.Image) {
	if s.empty() {
		return
	}
	draw.Draw(s.img, s.img.Bounds(), img, img.Bounds().Min, draw.Over)
}

// Image returns a copy of the current pixels.
func (s *Surface) Image() *image.RGBA {
	out := image.NewRGBA(s.img.Bounds())
	copy(out.Pix, s.img.Pix)
	return out
}

// At reports the premultiplied color at (x, y).
func (s *Surface) At(x, y int) color.RGBA {
	return s.img.RGBAAt(x, y)
}
