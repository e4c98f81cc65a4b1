package spherecast

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// FormatFromPath guesses the image format from the file extension.
// Unknown extensions fall back to png.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	default:
		return "png"
	}
}

// EncodeImage writes img to w in the given format (png, bmp or tiff).
func EncodeImage(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "png":
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		return enc.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff", "tif":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return opErrorf(opSave, fmt.Errorf("%q: %w", format, ErrUnknownFormat))
}

// SaveImage renders fb with the given colors and writes it to path.
// An empty format is derived from the path extension.
func SaveImage(fb *Framebuffer, path, format string, hit, miss RGB8) error {
	if format == "" {
		format = FormatFromPath(path)
	}
	switch strings.ToLower(format) {
	case "png", "bmp", "tiff", "tif":
	default:
		return opErrorf(opSave, fmt.Errorf("%q: %w", format, ErrUnknownFormat))
	}
	img := fb.Image(hit, miss)

	if err := writeFile(path, func(w io.Writer) error { return EncodeImage(w, img, format) }); err != nil {
		return err
	}
	DebugLog("Saved %dx%d %s image: %s", fb.Width, fb.Height, format, path)
	return nil
}

// writeFile creates path and fills it with encode. On failure the partial
// file is removed.
func writeFile(path string, encode func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return err
	}
	return nil
}
