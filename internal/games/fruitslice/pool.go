package fruitslice

// Pool is an ordered entity pool. Entities are updated in place by index
// and removed in a single compaction pass afterwards, so iteration order
// (and therefore draw order) is stable.
type Pool[T any] struct {
	items []T
}

// NewPool returns an empty pool with room for capacity entities.
func NewPool[T any](capacity int) *Pool[T] {
	return &Pool[T]{items: make([]T, 0, capacity)}
}

// Add appends an entity.
func (p *Pool[T]) Add(v T) {
	p.items = append(p.items, v)
}

// Len returns the number of live entities.
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// At returns a pointer to the i-th entity for in-place updates.
func (p *Pool[T]) At(i int) *T {
	return &p.items[i]
}

// Retain keeps entities for which keep returns true, preserving order,
// and returns how many were removed.
func (p *Pool[T]) Retain(keep func(*T) bool) int {
	n := 0
	for i := range p.items {
		if keep(&p.items[i]) {
			p.items[n] = p.items[i]
			n++
		}
	}
	removed := len(p.items) - n
	clear(p.items[n:])
	p.items = p.items[:n]
	return removed
}

// Clear removes every entity.
func (p *Pool[T]) Clear() {
	clear(p.items)
	p.items = p.items[:0]
}

// Snapshot returns a copy of the live entities.
func (p *Pool[T]) Snapshot() []T {
	out := make([]T, len(p.items))
	copy(out, p.items)
	return out
}
