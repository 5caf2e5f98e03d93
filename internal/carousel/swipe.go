package carousel

// SwipeDirection is the outcome of a touch gesture.
type SwipeDirection int

const (
	SwipeNone SwipeDirection = iota
	SwipeNext
	SwipePrev
)

func (d SwipeDirection) String() string {
	switch d {
	case SwipeNext:
		return "next"
	case SwipePrev:
		return "prev"
	default:
		return "none"
	}
}

// Swipe turns a touch-start/touch-end pair into at most one move.
type Swipe struct {
	MinDistance float64

	startX   float64
	active   bool
	onButton bool
}

// Start records where a touch began. A touch that starts on a navigation
// button never produces a swipe.
func (s *Swipe) Start(x float64, onButton bool) {
	s.startX = x
	s.active = true
	s.onButton = onButton
}

// End completes the gesture. A leftward swipe reveals the next card.
func (s *Swipe) End(x float64) SwipeDirection {
	if !s.active {
		return SwipeNone
	}
	s.active = false
	if s.onButton {
		return SwipeNone
	}

	threshold := s.MinDistance
	if threshold <= 0 {
		threshold = MinSwipeDistance
	}
	delta := s.startX - x
	switch {
	case delta >= threshold:
		return SwipeNext
	case -delta >= threshold:
		return SwipePrev
	default:
		return SwipeNone
	}
}
