package carousel

// Geometry is the measured layout of a carousel.
type Geometry struct {
	ContainerWidth  float64 `json:"container_width"`
	ViewportWidth   float64 `json:"viewport_width"`
	VisibleCount    int     `json:"visible_count"`
	Gap             float64 `json:"gap"`
	ItemWidth       float64 `json:"item_width"`
	CenteringOffset float64 `json:"centering_offset"`
	Narrow          bool    `json:"narrow"`
}

// Ready reports whether the container has been measured.
func (g Geometry) Ready() bool { return g.ItemWidth > 0 }

// Step is the horizontal distance between the left edges of two cards.
func (g Geometry) Step() float64 { return g.ItemWidth + g.Gap }

// ComputeGeometry derives the card width from the container width, the number
// of visible cards and the gap. With the responsive rule enabled, viewports
// under the breakpoint get a single card at 75% of the container, centered by
// CenteringOffset.
//
// A zero container width means "not laid out yet" and yields ItemWidth 0.
func ComputeGeometry(containerWidth, viewportWidth float64, visibleCount int, opts Options) Geometry {
	opts = opts.normalized()
	if visibleCount < 1 {
		visibleCount = 1
	}
	if containerWidth < 0 {
		containerWidth = 0
	}
	if viewportWidth <= 0 {
		viewportWidth = containerWidth
	}

	g := Geometry{
		ContainerWidth: containerWidth,
		ViewportWidth:  viewportWidth,
		VisibleCount:   visibleCount,
		Gap:            opts.Gap,
	}
	if containerWidth == 0 {
		return g
	}

	if opts.Responsive && viewportWidth < opts.Breakpoint {
		g.Narrow = true
		g.ItemWidth = containerWidth * NarrowWidthRatio
		g.CenteringOffset = (containerWidth - g.ItemWidth) / 2
		return g
	}

	w := (containerWidth - opts.Gap*float64(visibleCount-1)) / float64(visibleCount)
	if w < 0 {
		w = 0
	}
	g.ItemWidth = w
	return g
}

// VisibleCountFor applies the breakpoint rule of the responsive variant. An
// unknown viewport (0) counts as wide.
func VisibleCountFor(viewportWidth float64, opts Options) int {
	opts = opts.normalized()
	if opts.Responsive && viewportWidth > 0 && viewportWidth < opts.Breakpoint {
		return NarrowVisibleCount
	}
	return opts.VisibleCount
}
