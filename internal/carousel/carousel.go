// Package carousel implements the geometry and index arithmetic behind the
// site's horizontal carousels: the generic product scroller and the
// testimonials carousel with touch-swipe support.
//
// A Carousel is plain single-owner state. It is not safe for concurrent use;
// callers apply events (resize, advance, retreat, touch) one at a time, as the
// live session handler in package site does.
package carousel

import "time"

const (
	// DefaultGap is the fixed spacing between two cards, in pixels.
	DefaultGap = 24

	// DefaultBreakpoint is the viewport width under which the responsive
	// variant shows a single centered card.
	DefaultBreakpoint = 768

	// NarrowWidthRatio is the share of the container a card takes on
	// narrow viewports.
	NarrowWidthRatio = 0.75

	// DefaultVisibleCount is the number of cards shown on wide viewports.
	DefaultVisibleCount = 3

	// NarrowVisibleCount is the number of cards shown under the breakpoint.
	NarrowVisibleCount = 1

	// MinSwipeDistance is the horizontal travel a touch must cover to count
	// as a swipe.
	MinSwipeDistance = 50

	// DefaultTileFactor is how many copies of the list the tiled strategy
	// lays out.
	DefaultTileFactor = 20

	// DefaultBuffer is the number of off-screen neighbours the modular
	// strategy materializes on each side of the visible window.
	DefaultBuffer = 1

	// TransitionDuration is the length of the slide animation.
	TransitionDuration = 500 * time.Millisecond

	// TransitionEasing is the CSS easing of the slide animation.
	TransitionEasing = "ease-in-out"
)

// Strategy selects how a looping carousel maps its unbounded index onto
// materialized slots.
type Strategy string

const (
	// StrategyModular wraps the index with modular arithmetic and only
	// materializes the visible window plus a small buffer.
	StrategyModular Strategy = "modular"

	// StrategyTiled repeats the list TileFactor times and anchors the index
	// in the middle of the tiled sequence.
	StrategyTiled Strategy = "tiled"
)

// Options configures a carousel.
type Options struct {
	Gap          float64
	Breakpoint   float64
	VisibleCount int
	// Responsive enables the breakpoint rule: one centered card at 75% of
	// the container under Breakpoint, VisibleCount cards otherwise.
	Responsive bool
	Strategy   Strategy
	TileFactor int
	Buffer     int
	MinSwipe   float64
}

// DefaultOptions returns the options of the generic product scroller.
func DefaultOptions() Options {
	return Options{
		Gap:          DefaultGap,
		Breakpoint:   DefaultBreakpoint,
		VisibleCount: DefaultVisibleCount,
		Strategy:     StrategyModular,
		TileFactor:   DefaultTileFactor,
		Buffer:       DefaultBuffer,
		MinSwipe:     MinSwipeDistance,
	}
}

// TestimonialOptions returns the options of the responsive testimonials
// carousel.
func TestimonialOptions() Options {
	o := DefaultOptions()
	o.Responsive = true
	return o
}

// normalized fills zero values with defaults and repairs values that would
// break the arithmetic.
func (o Options) normalized() Options {
	if o.Gap < 0 {
		o.Gap = 0
	}
	if o.Breakpoint <= 0 {
		o.Breakpoint = DefaultBreakpoint
	}
	if o.VisibleCount < 1 {
		o.VisibleCount = DefaultVisibleCount
	}
	if o.Strategy == "" {
		o.Strategy = StrategyModular
	}
	if o.TileFactor < 2 {
		o.TileFactor = DefaultTileFactor
	}
	if o.Buffer < 0 {
		o.Buffer = 0
	}
	if o.MinSwipe <= 0 {
		o.MinSwipe = MinSwipeDistance
	}
	return o
}

// Carousel is the state of one mounted carousel: its items, its measured
// geometry and its unbounded scroll index.
type Carousel[T any] struct {
	opts    Options
	items   []T
	visible int

	containerWidth float64
	viewportWidth  float64
	geom           Geometry

	tracker Tracker
	swipe   Swipe
}

// New creates a carousel over items. Its width is unmeasured until the first
// Resize, so it renders the static layout until then.
func New[T any](items []T, opts Options) *Carousel[T] {
	opts = opts.normalized()
	c := &Carousel[T]{
		opts:    opts,
		items:   items,
		visible: opts.VisibleCount,
		swipe:   Swipe{MinDistance: opts.MinSwipe},
	}
	c.geom = ComputeGeometry(0, 0, c.visible, opts)
	return c
}

// Options returns the normalized options of the carousel.
func (c *Carousel[T]) Options() Options { return c.opts }

// Items returns the logical item list.
func (c *Carousel[T]) Items() []T { return c.items }

// Index returns the current unbounded index.
func (c *Carousel[T]) Index() int { return c.tracker.Index() }

// VisibleCount returns the number of cards currently shown at once.
func (c *Carousel[T]) VisibleCount() int { return c.visible }

// Geometry returns the last computed geometry.
func (c *Carousel[T]) Geometry() Geometry { return c.geom }

// SetItems replaces the item list. A new list always starts from index 0.
func (c *Carousel[T]) SetItems(items []T) {
	c.items = items
	c.tracker.Reset()
}

// Resize records a new container and viewport measurement and recomputes the
// geometry. The index is reset when the visible count changes or when the
// carousel becomes measurable for the first time.
func (c *Carousel[T]) Resize(containerWidth, viewportWidth float64) Geometry {
	wasReady := c.geom.Ready()
	c.containerWidth = containerWidth
	c.viewportWidth = viewportWidth

	if c.opts.Responsive {
		if v := VisibleCountFor(viewportWidth, c.opts); v != c.visible {
			c.visible = v
			c.tracker.Reset()
		}
	}

	c.geom = ComputeGeometry(containerWidth, viewportWidth, c.visible, c.opts)
	if !wasReady && c.geom.Ready() {
		c.tracker.Reset()
	}
	return c.geom
}

// SetVisibleCount changes the number of cards shown at once. Responsive
// carousels derive it from the viewport and ignore this call.
func (c *Carousel[T]) SetVisibleCount(n int) {
	if c.opts.Responsive {
		return
	}
	if n < 1 {
		n = 1
	}
	if n == c.visible {
		return
	}
	c.visible = n
	c.tracker.Reset()
	c.geom = ComputeGeometry(c.containerWidth, c.viewportWidth, c.visible, c.opts)
}

// CanScroll reports whether the carousel loops: there are more items than
// visible cards and the width has been measured.
func (c *Carousel[T]) CanScroll() bool {
	return Scrollable(len(c.items), c.visible, c.geom.ItemWidth)
}

// Advance moves one card forward. It reports whether the index changed.
func (c *Carousel[T]) Advance() bool { return c.tracker.Advance(c.CanScroll()) }

// Retreat moves one card backward. It reports whether the index changed.
func (c *Carousel[T]) Retreat() bool { return c.tracker.Retreat(c.CanScroll()) }

// Reset moves the carousel back to its first position.
func (c *Carousel[T]) Reset() { c.tracker.Reset() }

// Restore positions a scrollable carousel at index. Stateless renderers use
// it to rebuild a carousel from an index carried in a URL.
func (c *Carousel[T]) Restore(index int) {
	if !c.CanScroll() {
		c.tracker.Reset()
		return
	}
	c.tracker.set(index)
}

// TouchStart records the beginning of a touch gesture.
func (c *Carousel[T]) TouchStart(x float64, onButton bool) {
	c.swipe.Start(x, onButton)
}

// TouchEnd completes a touch gesture and applies the resulting move, if any.
// It returns the direction that was applied.
func (c *Carousel[T]) TouchEnd(x float64) SwipeDirection {
	switch dir := c.swipe.End(x); dir {
	case SwipeNext:
		if c.Advance() {
			return dir
		}
	case SwipePrev:
		if c.Retreat() {
			return dir
		}
	}
	return SwipeNone
}

// Frame renders the current state.
func (c *Carousel[T]) Frame() Frame[T] {
	return render(c.items, c.geom, c.tracker.Index(), c.opts)
}
