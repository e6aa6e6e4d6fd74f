package snake

// Points is a score counter with an optional change callback.
type Points struct {
	value    int
	onChange func(int)
}

// OnChange registers fn to receive the new value after each change.
func (p *Points) OnChange(fn func(int)) {
	p.onChange = fn
}

// Add increments the counter by n.
func (p *Points) Add(n int) {
	p.value += n
	p.notify()
}

// Value returns the current count.
func (p *Points) Value() int {
	return p.value
}

// Reset zeroes the counter.
func (p *Points) Reset() {
	p.value = 0
	p.notify()
}

func (p *Points) notify() {
	if p.onChange != nil {
		p.onChange(p.value)
	}
}
