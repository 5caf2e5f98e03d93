package carousel

import (
	"fmt"
	"strconv"
)

// Frame is a rendered carousel state, ready for a template or a JSON client.
type Frame[T any] struct {
	Index        int      `json:"index"`
	DisplayIndex int      `json:"display_index"`
	Strategy     Strategy `json:"strategy"`
	Looping      bool     `json:"looping"`
	Geometry     Geometry `json:"geometry"`
	// Offset is the horizontal translation of the track while looping.
	Offset float64 `json:"offset"`
	// PaddingLeft centers the single card of the static narrow layout.
	PaddingLeft float64   `json:"padding_left"`
	Slots       []Slot[T] `json:"slots"`

	HasCentered     bool `json:"has_centered"`
	Centered        T    `json:"centered"`
	CenteredLogical int  `json:"centered_logical"`

	// InRange is false when a tiled track no longer covers the visible
	// window. The modular strategy is always in range.
	InRange bool `json:"in_range"`
}

// Transform is the CSS transform of the track.
func (f Frame[T]) Transform() string {
	return fmt.Sprintf("translateX(%spx)", px(f.Offset))
}

// Transition is the CSS transition of the track.
func (f Frame[T]) Transition() string {
	return fmt.Sprintf("transform %ss %s", strconv.FormatFloat(TransitionDuration.Seconds(), 'f', -1, 64), TransitionEasing)
}

// ItemWidthCSS is the CSS width of one card. Unmeasured carousels fall back
// to the natural width.
func (f Frame[T]) ItemWidthCSS() string {
	if f.Geometry.ItemWidth <= 0 {
		return "auto"
	}
	return px(f.Geometry.ItemWidth) + "px"
}

// PaddingLeftCSS is the CSS left padding of the static track.
func (f Frame[T]) PaddingLeftCSS() string {
	if f.PaddingLeft <= 0 {
		return "0"
	}
	return px(f.PaddingLeft) + "px"
}

// LeftCSS is the CSS left offset of a slot.
func (s Slot[T]) LeftCSS() string { return px(s.Left) + "px" }

// px formats a pixel value without trailing zeros and without "-0".
func px(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// render turns the carousel state into a Frame.
func render[T any](items []T, g Geometry, index int, opts Options) Frame[T] {
	opts = opts.normalized()
	f := Frame[T]{
		Index:    index,
		Strategy: opts.Strategy,
		Geometry: g,
		InRange:  true,
	}
	n := len(items)

	if !Scrollable(n, g.VisibleCount, g.ItemWidth) {
		f.Index = 0
		f.PaddingLeft = g.CenteringOffset
		f.Slots = materializeStatic(items, g)
		if c := g.VisibleCount / 2; c < n {
			f.HasCentered = true
			f.Centered = items[c]
			f.CenteredLogical = c
		}
		return f
	}

	f.Looping = true
	switch opts.Strategy {
	case StrategyTiled:
		f.DisplayIndex = index + BaseOffset(n, opts.TileFactor)
		f.Slots = materializeTiled(items, g, f.DisplayIndex, opts.TileFactor)
		f.InRange = f.DisplayIndex >= 0 && f.DisplayIndex+g.VisibleCount <= len(f.Slots)
	default:
		f.DisplayIndex = index
		f.Slots = materializeModular(items, g, index, opts.Buffer)
	}

	f.Offset = -(float64(f.DisplayIndex) * g.Step()) + g.CenteringOffset
	f.CenteredLogical = mod(index+g.VisibleCount/2, n)
	f.Centered = items[f.CenteredLogical]
	f.HasCentered = true
	return f
}
