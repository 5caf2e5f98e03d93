package imaging

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
)

// ResizeResult describes one generated variant.
type ResizeResult struct {
	Source  string
	Output  string
	Size    Size
	Bytes   int64
	Skipped bool
}

// FitCover scales img to cover a width×height box and crops the overflow
// around the center. Images smaller than the box are never enlarged: the box
// shrinks to the largest one with the same aspect ratio that fits inside img.
func FitCover(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	w, h := width, height
	if b.Dx() < w || b.Dy() < h {
		rx := float64(b.Dx()) / float64(w)
		ry := float64(b.Dy()) / float64(h)
		r := rx
		if ry < r {
			r = ry
		}
		w = max(1, int(float64(w)*r))
		h = max(1, int(float64(h)*r))
	}
	return imaging.Fill(img, w, h, imaging.Center, imaging.Lanczos)
}

// Resize writes every variant of src that does not exist yet.
func Resize(src string, sizes []Size, o EncodeOptions) ([]ResizeResult, error) {
	var (
		img     image.Image
		results []ResizeResult
	)
	for _, s := range sizes {
		out := VariantPath(src, s)
		if _, err := os.Stat(out); err == nil {
			results = append(results, ResizeResult{Source: src, Output: out, Size: s, Skipped: true})
			continue
		}

		if img == nil {
			var err error
			if img, err = Open(src); err != nil {
				return results, err
			}
		}
		if err := writeFile(out, FitCover(img, s.Width, s.Height), o); err != nil {
			return results, fmt.Errorf("writing %s variant of %s: %w", s.Name, src, err)
		}
		n, err := fileSize(out)
		if err != nil {
			return results, err
		}
		results = append(results, ResizeResult{Source: src, Output: out, Size: s, Bytes: n})
	}
	return results, nil
}
