package heap_test

import (
	"cmp"
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/stretchr/testify/require"

	"github.com/davidvella/heap"
)

// entry carries a unique id so duplicate values can live in the reference tree.
type entry struct {
	value int
	id    int
}

func entryLess(a, b entry) bool {
	if a.value != b.value {
		return a.value < b.value
	}
	return a.id < b.id
}

// model mirrors the heap in an ordered btree and answers what the root must be.
type model struct {
	tree     *btree.BTreeG[entry]
	polarity heap.Polarity
}

func newModel(p heap.Polarity) *model {
	return &model{
		tree:     btree.NewG[entry](2, entryLess),
		polarity: p,
	}
}

func (m *model) root() (entry, bool) {
	if m.polarity == heap.MinHeap {
		return m.tree.Min()
	}
	return m.tree.Max()
}

func TestHeapMatchesOrderedModel(t *testing.T) {
	for _, p := range []heap.Polarity{heap.MinHeap, heap.MaxHeap} {
		t.Run(p.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			m := newModel(p)
			h := heap.NewFunc(func(a, b entry) int {
				return cmp.Compare(a.value, b.value)
			}, heap.WithPolarity(p))

			nextID := 0
			for i := 0; i < 5000; i++ {
				switch rng.Intn(4) {
				case 0, 1:
					e := entry{value: rng.Intn(200), id: nextID}
					nextID++
					h.Push(e)
					m.tree.ReplaceOrInsert(e)
				case 2:
					got, err := h.Pop()
					want, ok := m.root()
					if !ok {
						require.ErrorIs(t, err, heap.ErrEmpty)
						continue
					}
					require.NoError(t, err)
					require.Equal(t, want.value, got.value)
					_, found := m.tree.Delete(got)
					require.True(t, found, "popped entry %v is unknown to the model", got)
				case 3:
					if h.IsEmpty() {
						continue
					}
					idx := rng.Intn(h.Len())
					old := h.Items()[idx]
					updated := entry{value: rng.Intn(200), id: old.id}
					require.NoError(t, h.ChangeKey(idx, updated))
					m.tree.Delete(old)
					m.tree.ReplaceOrInsert(updated)
				}

				require.Equal(t, m.tree.Len(), h.Len())
				if want, ok := m.root(); ok {
					got, err := h.Peek()
					require.NoError(t, err)
					require.Equal(t, want.value, got.value)
				}
			}
		})
	}
}

func TestMergeMatchesOrderedModel(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	m := btree.NewOrderedG[int](2)

	var left, right []int
	for i := 0; i < 300; i++ {
		v := rng.Int()
		m.ReplaceOrInsert(v)
		if i%2 == 0 {
			left = append(left, v)
		} else {
			right = append(right, v)
		}
	}

	merged := heap.From(left, heap.Min()).Merge(heap.From(right, heap.Max()))

	m.Ascend(func(want int) bool {
		got, err := merged.Pop()
		require.NoError(t, err)
		require.Equal(t, want, got)
		return true
	})
	require.True(t, merged.IsEmpty())
}
