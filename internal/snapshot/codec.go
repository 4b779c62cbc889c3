// Package snapshot encodes the drawing surface as a self-describing image
// string and keeps it under one key of a preference store.
package snapshot

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/h2non/filetype"
)

const pngPrefix = "data:image/png;base64,"

var (
	ErrNotDataURI = errors.New("snapshot: not a base64 data URI")
	ErrNotImage   = errors.New("snapshot: payload is not an image")
)

// Encode returns img as a PNG data URI.
func Encode(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("snapshot: encode png: %w", err)
	}
	return pngPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode parses a base64 data URI produced by Encode, or any other base64
// image data URI whose format is registered with the image package.
func Decode(uri string) (image.Image, error) {
	header, payload, ok := strings.Cut(uri, ",")
	if !ok || !strings.HasPrefix(header, "data:") || !strings.HasSuffix(header, ";base64") {
		return nil, ErrNotDataURI
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotDataURI, err)
	}
	if !filetype.IsImage(raw) {
		return nil, ErrNotImage
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("snapshot: decode image: %w", err)
	}
	return img, nil
}
