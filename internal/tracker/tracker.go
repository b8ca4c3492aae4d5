// Package tracker keeps track of the slide being shown.
package tracker

// Tracker holds the index of the current slide and the number of slides.
// Every transition returns a new Tracker and leaves the receiver untouched.
type Tracker struct {
	current int
	total   int
}

// For returns a Tracker positioned on the first of total slides.
func For(total int) Tracker {
	if total < 0 {
		total = 0
	}

	return Tracker{total: total}
}

// Current returns the 0-based index of the current slide.
func (t Tracker) Current() int { return t.current }

// Total returns the number of slides.
func (t Tracker) Total() int { return t.total }

// Next moves to the following slide, staying put on the last one.
func (t Tracker) Next() Tracker {
	if t.current+1 < t.total {
		t.current++
	}

	return t
}

// Previous moves to the preceding slide, staying put on the first one.
func (t Tracker) Previous() Tracker {
	if t.current > 0 {
		t.current--
	}

	return t
}

func (t Tracker) First() Tracker {
	t.current = 0

	return t
}

func (t Tracker) Last() Tracker {
	t.current = max(t.total-1, 0)

	return t
}

// GoTo jumps to slide n. Indexes outside of the deck are ignored.
func (t Tracker) GoTo(n int) Tracker {
	if n >= 0 && n < t.total {
		t.current = n
	}

	return t
}

// Resize changes the number of slides, pulling the current index back inside
// the new range. Negative totals are ignored.
func (t Tracker) Resize(total int) Tracker {
	if total < 0 || total == t.total {
		return t
	}

	t.total = total
	t.current = max(min(t.current, total-1), 0)

	return t
}
