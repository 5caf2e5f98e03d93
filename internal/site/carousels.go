package site

import (
	"context"
	"html/template"
	"math"
	"net/url"
	"strconv"

	"github.com/go-faster/errors"

	"github.com/heritage-alg/heritage/internal/carousel"
	"github.com/heritage-alg/heritage/internal/catalog"
	"github.com/heritage-alg/heritage/internal/content"
)

// Carousel names accepted by the frame endpoint and the live sessions.
const (
	CarouselTestimonials = "testimonials"
	CarouselProducts     = "products"
	CarouselSimilar      = "similar"
)

// Nominal layout used when a request carries no measurement, so pages
// rendered without JavaScript still get a looping carousel.
const (
	NominalContainerWidth = 1152
	NominalViewportWidth  = 1280
)

// driver is the type-erased side of a Carousel that handlers drive.
type driver interface {
	Resize(containerWidth, viewportWidth float64) carousel.Geometry
	Advance() bool
	Retreat() bool
	Reset()
	Restore(index int)
	TouchStart(x float64, onButton bool)
	TouchEnd(x float64) carousel.SwipeDirection
	Index() int
	CanScroll() bool
	frame() any
}

type erased[T any] struct {
	*carousel.Carousel[T]
}

func (e erased[T]) frame() any { return e.Frame() }

// similarItems is what the detail page scroller shows: every product of the
// same type, without the product itself.
func similarItems(products []catalog.Product, p catalog.Product) []catalog.Product {
	return catalog.Similar(products, p, -1)
}

// newDriver builds the named carousel at its initial, unmeasured state. The
// similar scroller needs the product id in q ("robe").
func (s *Site) newDriver(ctx context.Context, name string, q url.Values) (driver, error) {
	switch name {
	case CarouselTestimonials:
		return erased[content.Testimonial]{carousel.New(content.Testimonials, s.cfg.Carousel.TestimonialOptions())}, nil
	case CarouselProducts:
		return erased[catalog.Product]{carousel.New(s.catalog.All(ctx), s.cfg.Carousel.Options())}, nil
	case CarouselSimilar:
		p, err := s.catalog.DressByID(ctx, q.Get("robe"))
		if err != nil {
			return nil, err
		}
		items := similarItems(s.catalog.All(ctx), p)
		return erased[catalog.Product]{carousel.New(items, s.cfg.Carousel.Options())}, nil
	}
	return nil, errors.Wrapf(catalog.ErrNotFound, "carousel %q", name)
}

// measurement is the carousel state a request carries in its query string.
type measurement struct {
	Index    int
	Width    float64
	Viewport float64
}

// nominal is the fallback measurement of server-rendered pages.
var nominal = measurement{Width: NominalContainerWidth, Viewport: NominalViewportWidth}

// readMeasurement reads index (indexKey), width and viewport from q. Missing
// or invalid widths keep the fallback's. A width without a viewport is taken
// as the viewport too.
func readMeasurement(q url.Values, indexKey string, fallback measurement) measurement {
	m := fallback
	m.Index = 0
	if v, err := strconv.Atoi(q.Get(indexKey)); err == nil {
		m.Index = v
	}
	if v, err := strconv.ParseFloat(q.Get("width"), 64); err == nil && v >= 0 && !math.IsInf(v, 0) {
		m.Width = v
		m.Viewport = v
	}
	if v, err := strconv.ParseFloat(q.Get("viewport"), 64); err == nil && v > 0 && !math.IsInf(v, 0) {
		m.Viewport = v
	}
	return m
}

// apply measures d and restores the index.
func (m measurement) apply(d driver) {
	d.Resize(m.Width, m.Viewport)
	d.Restore(m.Index)
}

// carouselView is one carousel as the page templates render it.
type carouselView struct {
	Name  string
	Frame any
	// Items is the logical list, rendered once as the pool live sessions
	// build their slots from.
	Items     any
	Looping   bool
	ItemWidth string
	Track     template.CSS
	PrevURL   string
	NextURL   string
	// LiveURL is the live session endpoint; empty in static exports.
	LiveURL string
}

// SlotStyle positions one slot on the track.
func (v carouselView) SlotStyle(left string) template.CSS {
	if !v.Looping {
		return template.CSS("width: " + v.ItemWidth)
	}
	return template.CSS("left: " + left + "; width: " + v.ItemWidth)
}

// buildView renders c for a page whose query is q. indexKey is the query key
// carrying this carousel's index, so several carousels can share a page.
func buildView[T any](name string, c *carousel.Carousel[T], q url.Values, indexKey, path string) carouselView {
	readMeasurement(q, indexKey, nominal).apply(erased[T]{c})
	f := c.Frame()

	v := carouselView{
		Name:      name,
		Frame:     f,
		Items:     c.Items(),
		Looping:   f.Looping,
		ItemWidth: f.ItemWidthCSS(),
		LiveURL:   "/ws/carousel/" + name,
	}
	if f.Looping {
		v.Track = template.CSS("transform: " + f.Transform() + "; transition: " + f.Transition())
		v.PrevURL = stepURL(path, q, indexKey, c.Index()-1)
		v.NextURL = stepURL(path, q, indexKey, c.Index()+1)
	} else {
		v.Track = template.CSS("padding-left: " + f.PaddingLeftCSS())
	}
	return v
}

// stepURL is path with q, indexKey set to index.
func stepURL(path string, q url.Values, indexKey string, index int) string {
	next := url.Values{}
	for k, vs := range q {
		next[k] = append([]string(nil), vs...)
	}
	next.Set(indexKey, strconv.Itoa(index))
	return path + "?" + next.Encode()
}
