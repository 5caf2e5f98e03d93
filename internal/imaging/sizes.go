// Package imaging produces the responsive WebP variants of product photos
// and recompresses originals in place.
package imaging

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// Size is one responsive variant.
type Size struct {
	Name   string
	Width  int
	Height int
	Suffix string
}

// Sizes are the variants generated for each product photo, smallest first.
var Sizes = []Size{
	{Name: "thumbnail", Width: 200, Height: 200, Suffix: "-thumb"},
	{Name: "small", Width: 600, Height: 800, Suffix: "-small"},
	{Name: "medium", Width: 900, Height: 1200, Suffix: "-medium"},
	{Name: "large", Width: 1200, Height: 1600, Suffix: "-large"},
	{Name: "xlarge", Width: 1800, Height: 2400, Suffix: "-xlarge"},
}

// DefaultQuality is the WebP quality of generated files.
const DefaultQuality = 85

// BackupSuffix marks the copy kept by Compress.
const BackupSuffix = ".backup"

// SizeByName returns the named variant.
func SizeByName(name string) (Size, bool) {
	for _, s := range Sizes {
		if s.Name == name {
			return s, true
		}
	}
	return Size{}, false
}

// VariantPath is the file a variant of src is written to: the suffix is
// appended to the base name and the extension becomes .webp.
func VariantPath(src string, s Size) string {
	ext := filepath.Ext(src)
	return strings.TrimSuffix(src, ext) + s.Suffix + ".webp"
}

// IsVariant reports whether name is a generated variant.
func IsVariant(name string) bool {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	for _, s := range Sizes {
		if strings.HasSuffix(base, s.Suffix) {
			return true
		}
	}
	return false
}

// IsBackup reports whether name is a backup left by Compress, or lives in a
// backup directory.
func IsBackup(name string) bool {
	return strings.Contains(filepath.ToSlash(name), "backup")
}

// SrcSet builds the srcset attribute of an image URL from its variants,
// largest first. Descriptors are the variant widths.
func SrcSet(src string) string {
	ext := path.Ext(src)
	base := strings.TrimSuffix(src, ext)

	parts := make([]string, 0, len(Sizes))
	for i := len(Sizes) - 1; i >= 0; i-- {
		s := Sizes[i]
		parts = append(parts, fmt.Sprintf("%s%s.webp %dw", base, s.Suffix, s.Width))
	}
	return strings.Join(parts, ", ")
}

// DefaultSizes is the sizes attribute for an aspect ratio such as "3/4" or
// "16/9".
func DefaultSizes(aspectRatio string) string {
	if aspectRatio == "16/9" {
		return "(max-width: 768px) 100vw, 1920px"
	}
	return "(max-width: 640px) 600px, (max-width: 1024px) 900px, 1200px"
}
