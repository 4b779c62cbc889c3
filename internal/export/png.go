package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
)

// WritePNG encodes img to w and closes it. The close error is reported when
// encoding succeeded.
func WritePNG(w io.WriteCloser, img image.Image) (err error) {
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export: close: %w", cerr)
		}
	}()
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}
	return nil
}
