package quadrics

// fifo is the breadth-first work queue. Popped slots are cleared and the
// backing array is compacted once more than half of it is dead.
type fifo[T any] struct {
	items []T
	head  int
}

func (f *fifo[T]) pushBack(v T) {
	f.items = append(f.items, v)
}

func (f *fifo[T]) popFront() (T, bool) {
	var zero T
	if f.empty() {
		return zero, false
	}
	v := f.items[f.head]
	f.items[f.head] = zero
	f.head++
	if f.head == len(f.items) {
		f.items, f.head = f.items[:0], 0
	} else if f.head >= 1024 && f.head*2 >= len(f.items) {
		n := copy(f.items, f.items[f.head:])
		f.items, f.head = f.items[:n], 0
	}
	return v, true
}

func (f *fifo[T]) peekFront() (T, bool) {
	if f.empty() {
		var zero T
		return zero, false
	}
	return f.items[f.head], true
}

func (f *fifo[T]) empty() bool { return f.head == len(f.items) }

func (f *fifo[T]) len() int { return len(f.items) - f.head }

// reset drops every queued element.
func (f *fifo[T]) reset() {
	f.items, f.head = nil, 0
}
