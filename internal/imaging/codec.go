package imaging

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gen2brain/webp"
)

// EncodeOptions are the WebP encoder settings.
type EncodeOptions struct {
	Quality int
	// Method trades speed for size, 0 (fast) to 6 (smallest).
	Method int
}

// DefaultEncodeOptions matches the quality 85, effort 6 lossy profile.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{Quality: DefaultQuality, Method: 6}
}

func (o EncodeOptions) webp() webp.Options {
	q := o.Quality
	if q <= 0 || q > 100 {
		q = DefaultQuality
	}
	m := o.Method
	if m < 0 || m > 6 {
		m = 6
	}
	return webp.Options{Quality: q, Method: m, Lossless: false}
}

// Open decodes an image file. WebP goes through the WebP decoder, everything
// else through imaging with EXIF orientation applied.
func Open(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return decode(f, path)
}

func decode(r io.Reader, name string) (image.Image, error) {
	var (
		img image.Image
		err error
	)
	if strings.EqualFold(filepath.Ext(name), ".webp") {
		img, err = webp.Decode(r)
	} else {
		img, err = imaging.Decode(r, imaging.AutoOrientation(true))
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return img, nil
}

// Encode writes img as WebP.
func Encode(w io.Writer, img image.Image, o EncodeOptions) error {
	if err := webp.Encode(w, img, o.webp()); err != nil {
		return fmt.Errorf("encoding webp: %w", err)
	}
	return nil
}

// writeFile encodes img to a temp file next to path, then renames it into
// place, so a failed encode never leaves a truncated file behind.
func writeFile(path string, img image.Image, o EncodeOptions) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if err := Encode(tmp, img, o); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming %s: %w", tmpName, err)
	}
	return nil
}
