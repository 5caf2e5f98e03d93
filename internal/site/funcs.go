package site

import (
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/heritage-alg/heritage/internal/booking"
	"github.com/heritage-alg/heritage/internal/catalog"
	"github.com/heritage-alg/heritage/internal/imaging"
)

// stars is a rating split for display.
type stars struct {
	Full  []struct{}
	Half  bool
	Empty []struct{}
}

func starsFor(rating float64) stars {
	full := int(rating)
	half := rating-float64(full) >= 0.5
	empty := 5 - full
	if half {
		empty--
	}
	return stars{
		Full:  make([]struct{}, max(0, full)),
		Half:  half,
		Empty: make([]struct{}, max(0, empty)),
	}
}

var stepLabels = map[int]string{
	booking.StepContact: "Vos informations",
	booking.StepDate:    "Date",
	booking.StepDress:   "Tenue",
	booking.StepDone:    "Confirmation",
}

func (s *Site) funcs() template.FuncMap {
	return template.FuncMap{
		"formatPrice":   func(d decimal.Decimal) string { return catalog.FormatPrice(d) },
		"dressTypeName": catalog.DressTypeName,
		"formatDate":    catalog.FormatDate,
		"srcset":        s.srcset,
		"sizes":         imaging.DefaultSizes,
		"stars":         starsFor,
		"stepLabel":     func(step int) string { return stepLabels[step] },
	}
}

// srcset is the srcset of an asset URL, or "" when its variants have not
// been generated.
func (s *Site) srcset(src string) string {
	rel, ok := strings.CutPrefix(src, "/assets/")
	if !ok || s.cfg.AssetsDir == "" {
		return ""
	}
	local := filepath.Join(s.cfg.AssetsDir, filepath.FromSlash(rel))
	thumb, _ := imaging.SizeByName("thumbnail")
	if _, err := os.Stat(imaging.VariantPath(local, thumb)); err != nil {
		return ""
	}
	return imaging.SrcSet(src)
}
