package components

// SwipeDirection is the horizontal direction of a completed drag.
type SwipeDirection int

const (
	SwipeLeft SwipeDirection = iota
	SwipeRight
)

// Swipe turns a mouse press/release pair into a swipe gesture once the
// horizontal travel reaches Threshold cells.
type Swipe struct {
	Threshold int

	startX int
	active bool
}

// NewSwipe returns a tracker with the given threshold in cells.
func NewSwipe(threshold int) Swipe {
	return Swipe{Threshold: max(threshold, 1)}
}

// Press records the start of a drag.
func (s *Swipe) Press(x int) {
	s.startX = x
	s.active = true
}

// Active reports whether a drag is in progress.
func (s *Swipe) Active() bool {
	return s.active
}

// Release ends the drag. ok is false when no drag was in progress or the
// travel was below the threshold.
func (s *Swipe) Release(x int) (dir SwipeDirection, ok bool) {
	if !s.active {
		return 0, false
	}
	s.active = false

	dx := x - s.startX
	switch {
	case dx <= -s.Threshold:
		return SwipeLeft, true
	case dx >= s.Threshold:
		return SwipeRight, true
	default:
		return 0, false
	}
}
