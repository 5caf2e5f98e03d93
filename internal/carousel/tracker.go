package carousel

// Tracker holds the scroll position of a carousel. The index is never wrapped
// or clamped; materialization maps it onto the item list.
type Tracker struct {
	index int
}

// Scrollable reports whether a list of length items can loop with visible
// cards of the given width.
func Scrollable(length, visible int, itemWidth float64) bool {
	return length > visible && itemWidth > 0
}

// Index returns the current position.
func (t *Tracker) Index() int { return t.index }

// Advance moves one position forward when canScroll is true.
func (t *Tracker) Advance(canScroll bool) bool {
	if !canScroll {
		return false
	}
	t.index++
	return true
}

// Retreat moves one position backward when canScroll is true.
func (t *Tracker) Retreat(canScroll bool) bool {
	if !canScroll {
		return false
	}
	t.index--
	return true
}

// Reset returns to position 0.
func (t *Tracker) Reset() { t.index = 0 }

func (t *Tracker) set(index int) { t.index = index }
