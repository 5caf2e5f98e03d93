package carousel

// Slot is one materialized card.
type Slot[T any] struct {
	Item T `json:"item"`
	// Logical is the index of Item in the logical list.
	Logical int `json:"logical"`
	// Physical is the position of the slot on the track.
	Physical int `json:"physical"`
	// Left is the offset of the slot from the start of the track, in px.
	Left       float64 `json:"left"`
	Emphasized bool    `json:"emphasized"`
}

// mod is the non-negative remainder of a divided by n.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// Tile repeats items factor times: tiled[i] == items[i mod len(items)].
func Tile[T any](items []T, factor int) []T {
	if len(items) == 0 || factor < 1 {
		return nil
	}
	out := make([]T, 0, len(items)*factor)
	for i := 0; i < len(items)*factor; i++ {
		out = append(out, items[i%len(items)])
	}
	return out
}

// BaseOffset is the physical slot the tiled strategy anchors index 0 to. It
// is a multiple of n, so the logical position of any index is unchanged.
func BaseOffset(n, factor int) int {
	return n * (factor / 2)
}

// Tolerance is the number of consecutive retreats (back) and advances
// (forward) from index 0 that keep the whole visible window inside a tiled
// sequence of n items repeated factor times.
func Tolerance(n, factor, visible int) (back, forward int) {
	if n == 0 {
		return 0, 0
	}
	base := BaseOffset(n, factor)
	back = base
	forward = n*factor - base - visible
	if forward < 0 {
		forward = 0
	}
	return back, forward
}

// materializeStatic lays every item out once, with no looping.
func materializeStatic[T any](items []T, g Geometry) []Slot[T] {
	center := g.VisibleCount / 2
	slots := make([]Slot[T], len(items))
	for i, it := range items {
		slots[i] = Slot[T]{
			Item:       it,
			Logical:    i,
			Physical:   i,
			Left:       float64(i) * g.Step(),
			Emphasized: i == center,
		}
	}
	return slots
}

// materializeModular lays out only the visible window around index plus
// buffer neighbours on each side.
func materializeModular[T any](items []T, g Geometry, index, buffer int) []Slot[T] {
	n := len(items)
	center := index + g.VisibleCount/2
	start := index - buffer
	count := g.VisibleCount + 2*buffer
	slots := make([]Slot[T], count)
	for k := 0; k < count; k++ {
		p := start + k
		l := mod(p, n)
		slots[k] = Slot[T]{
			Item:       items[l],
			Logical:    l,
			Physical:   p,
			Left:       float64(p) * g.Step(),
			Emphasized: p == center,
		}
	}
	return slots
}

// materializeTiled lays out the whole tiled sequence. display is the physical
// slot of the current index.
func materializeTiled[T any](items []T, g Geometry, display, factor int) []Slot[T] {
	n := len(items)
	tiled := Tile(items, factor)
	center := display + g.VisibleCount/2
	slots := make([]Slot[T], len(tiled))
	for i, it := range tiled {
		slots[i] = Slot[T]{
			Item:       it,
			Logical:    i % n,
			Physical:   i,
			Left:       float64(i) * g.Step(),
			Emphasized: i == center,
		}
	}
	return slots
}
