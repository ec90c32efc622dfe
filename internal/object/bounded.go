package object

// Bounded is a fixed-capacity collection of entity values.
// The backing array is allocated once, so steady-state spawning and
// sweeping never reallocates. The zero value has no capacity and drops
// every push; use NewBounded.
type Bounded[T any] struct {
	items []T
}

// NewBounded creates an empty collection that holds at most capacity items.
func NewBounded[T any](capacity int) Bounded[T] {
	return Bounded[T]{items: make([]T, 0, capacity)}
}

// Push appends v unless the collection is full. Returns false if v was dropped.
func (b *Bounded[T]) Push(v T) bool {
	if len(b.items) == cap(b.items) {
		return false
	}
	b.items = append(b.items, v)
	return true
}

// Len returns the number of items.
func (b *Bounded[T]) Len() int {
	return len(b.items)
}

// Cap returns the fixed capacity.
func (b *Bounded[T]) Cap() int {
	return cap(b.items)
}

// At returns a pointer to the i-th item. The pointer is invalidated by
// SwapRemove and Clear.
func (b *Bounded[T]) At(i int) *T {
	return &b.items[i]
}

// Items returns the live items. The slice aliases the collection.
func (b *Bounded[T]) Items() []T {
	return b.items
}

// SwapRemove removes item i by moving the last item into its slot.
// Order among the remaining items is not preserved; callers iterating by
// index must not advance past i after a removal.
func (b *Bounded[T]) SwapRemove(i int) {
	last := len(b.items) - 1
	b.items[i] = b.items[last]
	var zero T
	b.items[last] = zero
	b.items = b.items[:last]
}

// Clear removes all items, keeping the capacity.
func (b *Bounded[T]) Clear() {
	clear(b.items)
	b.items = b.items[:0]
}

// Sweep removes every item for which remove returns true, using SwapRemove.
// The item swapped into a freed slot is checked before moving on, so each
// item is visited exactly once. Returns the number of items removed.
func (b *Bounded[T]) Sweep(remove func(*T) bool) int {
	removed := 0
	for i := 0; i < len(b.items); {
		if remove(&b.items[i]) {
			b.SwapRemove(i)
			removed++
			continue
		}
		i++
	}
	return removed
}
