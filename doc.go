// Package heap implements a generic array-backed binary heap that can be
// configured at construction as either a min-heap or a max-heap.
//
// The heap keeps its elements in a slice laid out as a complete binary tree:
// the children of the element at index i live at 2i+1 and 2i+2. After every
// mutating call each element is no worse than its children under the active
// polarity, so the root is always the minimum (MinHeap) or the maximum
// (MaxHeap, the default).
//
// Key features:
//   - Natural ordering for any constraints.Ordered type via New and From
//   - Injected three-way comparison for any type via NewFunc and FromFunc
//   - Linear-time bulk construction
//   - O(log n) Push, Pop and ChangeKey
//   - Merge into a new, independent heap
//
// Basic usage:
//
//	// Build a min-heap from unordered values
//	h := heap.From([]int{5, 3, 8, 1, 9}, heap.Min())
//
//	h.Push(0)
//
//	// Peek and Pop return ErrEmpty on an empty heap
//	v, err := h.Pop()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(v) // 0
//
//	// Update the element stored at array index 2
//	if err := h.ChangeKey(2, 2); err != nil {
//	    log.Fatal(err)
//	}
//
// Merge concatenates the receiver's elements with the operand's and re-heapifies
// them under the receiver's polarity and comparison only:
//
//	a := heap.From([]int{1, 3, 5}, heap.Min())
//	b := heap.From([]int{2, 4, 6}, heap.Min())
//	merged := a.Merge(b) // a and b are left untouched
//
// A Heap is not safe for concurrent use. Callers sharing a heap between
// goroutines must guard every call, including Peek and Merge, with their own
// lock.
package heap
