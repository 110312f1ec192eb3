package padmenu

// Window is the slice of items drawn in one frame.
type Window struct {
	First  int // Index of the first drawn item
	Offset int // Vertical pixel offset applied to the item rows
}

// Paginator keeps the selected item inside a window of Capacity items. The
// window only ever moves by one visible item per Step so the smooth variant can
// animate the shift.
type Paginator struct {
	Capacity int
	First    int

	// Smooth scroll state. shown trails First by at most one row per frame.
	Smooth     bool
	LineHeight int
	ScrollStep int
	offset     int
	shown      int
	primed     bool
}

func NewPaginator(capacity int) *Paginator {
	if capacity < 1 {
		capacity = 1
	}
	return &Paginator{Capacity: capacity}
}

// Reset places the window so it starts at first.
func (p *Paginator) Reset(first int) {
	p.First = first
	p.shown = first
	p.offset = 0
	p.primed = true
}

// Contains reports whether selected lies inside the current window.
func (p *Paginator) Contains(selected int) bool {
	return selected >= p.First && selected < p.First+p.Capacity
}

// Step moves the window one visible item toward selected. It returns false when
// selected was already inside the window.
func (p *Paginator) Step(store ItemStore, selected int) bool {
	switch {
	case selected < p.First:
		p.First = PrevVisible(store, p.First)
		return true
	case selected >= p.First+p.Capacity:
		p.First = NextVisible(store, p.First)
		return true
	default:
		return false
	}
}

// Frame steps the window until selected is inside it and returns the window to
// draw. Without smooth scrolling the drawn window is the converged one.
func (p *Paginator) Frame(store ItemStore, selected int) Window {
	if !p.primed {
		p.Reset(selected)
	}
	for p.Step(store, selected) {
	}
	if !p.Smooth {
		p.shown = p.First
		return Window{First: p.First}
	}
	return p.scroll()
}

// scroll nudges the pixel offset toward the converged window and commits a
// one row shift of the drawn window once a full line has been scrolled.
// Reversing the target before the shift completes walks the offset back.
func (p *Paginator) scroll() Window {
	step := p.ScrollStep
	if step < 1 {
		step = 1
	}
	height := p.LineHeight
	if height < 1 {
		height = 1
	}

	if p.shown != p.First {
		if p.shown > p.First {
			p.offset += step
			if p.offset > height {
				p.offset = 0
				p.shown--
			}
		} else {
			p.offset -= step
			if p.offset < -height {
				p.offset = 0
				p.shown++
			}
		}
	} else if p.offset != 0 {
		// Target reversed mid shift, settle back onto the row.
		if p.offset > 0 {
			p.offset = max(p.offset-step, 0)
		} else {
			p.offset = min(p.offset+step, 0)
		}
	}

	return Window{First: p.shown, Offset: p.offset}
}

// Settled reports whether the drawn window has caught up with the target window.
func (p *Paginator) Settled() bool {
	return p.shown == p.First && p.offset == 0
}
