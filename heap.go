package heap

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"golang.org/x/exp/constraints"
)

// Heap is an array-backed binary heap. It is not safe for concurrent use.
type Heap[T any] struct {
	items    []T
	cmpF     func(a, b T) int // natural three-way order of T
	polarity Polarity
}

// New creates an empty heap ordered by the natural order of T.
func New[T constraints.Ordered](opts ...Option) *Heap[T] {
	return NewFunc(cmp.Compare[T], opts...)
}

// From creates a heap holding a copy of items ordered by the natural order of T.
func From[T constraints.Ordered](items []T, opts ...Option) *Heap[T] {
	return FromFunc(items, cmp.Compare[T], opts...)
}

// NewFunc creates an empty heap ordered by compare, which must return a
// negative number when a < b, zero when a == b and a positive number when a > b.
func NewFunc[T any](compare func(a, b T) int, opts ...Option) *Heap[T] {
	if compare == nil {
		panic("heap: nil compare function")
	}
	o := buildOptions(opts)
	return &Heap[T]{
		items:    make([]T, 0, o.capacity),
		cmpF:     compare,
		polarity: o.polarity,
	}
}

// FromFunc creates a heap holding a copy of items ordered by compare.
func FromFunc[T any](items []T, compare func(a, b T) int, opts ...Option) *Heap[T] {
	h := NewFunc(compare, opts...)
	h.items = append(h.items, items...)
	h.heapify()
	return h
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return len(h.items)
}

// IsEmpty reports whether the heap has no elements.
func (h *Heap[T]) IsEmpty() bool {
	return len(h.items) == 0
}

// Polarity returns the polarity the heap was created with.
func (h *Heap[T]) Polarity() Polarity {
	return h.polarity
}

// Peek returns the root element without removing it.
func (h *Heap[T]) Peek() (T, error) {
	if len(h.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return h.items[0], nil
}

// Pop removes and returns the root element.
func (h *Heap[T]) Pop() (T, error) {
	var zero T
	if len(h.items) == 0 {
		return zero, ErrEmpty
	}

	root := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items[last] = zero
	h.items = h.items[:last]
	if last > 1 {
		h.down(0)
	}
	return root, nil
}

// Push adds item to the heap.
func (h *Heap[T]) Push(item T) {
	h.items = append(h.items, item)
	h.up(len(h.items) - 1)
}

// ChangeKey replaces the element at index with value and restores the heap
// order. Indexes refer to the heap's internal array order, as seen by Items.
func (h *Heap[T]) ChangeKey(index int, value T) error {
	if index < 0 || index >= len(h.items) {
		return fmt.Errorf("%w: index %d, len %d", ErrIndexOutOfRange, index, len(h.items))
	}

	old := h.items[index]
	h.items[index] = value
	if h.compare(value, old) < 0 {
		h.up(index)
	} else {
		h.down(index)
	}
	return nil
}

// Merge returns a new heap holding the elements of h followed by the elements
// of other, ordered by h's comparison and polarity. Neither operand is
// modified. The polarity of other is ignored.
func (h *Heap[T]) Merge(other *Heap[T]) *Heap[T] {
	n := len(h.items)
	if other != nil {
		n += len(other.items)
	}

	merged := make([]T, 0, n)
	merged = append(merged, h.items...)
	if other != nil {
		merged = append(merged, other.items...)
	}

	m := &Heap[T]{
		items:    merged,
		cmpF:     h.cmpF,
		polarity: h.polarity,
	}
	m.heapify()
	return m
}

// Items returns a copy of the elements in internal array order.
func (h *Heap[T]) Items() []T {
	out := make([]T, len(h.items))
	copy(out, h.items)
	return out
}

// All iterates the elements in internal array order. The heap must not be
// modified during iteration.
func (h *Heap[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range h.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Drain pops elements until the heap is empty, yielding them in extraction
// order. Elements not yet yielded when iteration stops remain in the heap.
func (h *Heap[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for len(h.items) > 0 {
			v, _ := h.Pop()
			if !yield(v) {
				return
			}
		}
	}
}

// String renders the elements in internal array order separated by ", ".
func (h *Heap[T]) String() string {
	var sb strings.Builder
	for i, item := range h.items {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, item)
	}
	return sb.String()
}

// compare orders a before b when the result is negative. For a max-heap the
// natural order is negated by swapping the operands.
func (h *Heap[T]) compare(a, b T) int {
	if h.polarity == MaxHeap {
		return h.cmpF(b, a)
	}
	return h.cmpF(a, b)
}

// heapify establishes the heap order over the whole backing slice.
func (h *Heap[T]) heapify() {
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.down(i)
	}
}

// swap swaps items at index i and j.
func (h *Heap[T]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

// up moves the element at index i up to its proper position.
func (h *Heap[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.compare(h.items[i], h.items[parent]) >= 0 {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// down moves the element at index i down to its proper position.
func (h *Heap[T]) down(i int) {
	n := len(h.items)
	for {
		best := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && h.compare(h.items[left], h.items[best]) < 0 {
			best = left
		}
		if right < n && h.compare(h.items[right], h.items[best]) < 0 {
			best = right
		}

		if best == i {
			break
		}

		h.swap(i, best)
		i = best
	}
}
