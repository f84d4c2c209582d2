package heap

// Polarity selects which extreme of the order a heap surfaces at its root.
type Polarity int

const (
	// MaxHeap keeps the largest element at the root. It is the zero value.
	MaxHeap Polarity = iota
	// MinHeap keeps the smallest element at the root.
	MinHeap
)

func (p Polarity) String() string {
	switch p {
	case MaxHeap:
		return "max"
	case MinHeap:
		return "min"
	default:
		return "unknown"
	}
}

// options defines all configuration options for a heap.
type options struct {
	polarity Polarity // Fixed for the lifetime of the heap
	capacity int      // Initial capacity of the backing slice
}

// Option is a function that configures the heap options.
type Option func(*options)

// WithPolarity sets the polarity of the heap.
func WithPolarity(p Polarity) Option {
	return func(o *options) {
		o.polarity = p
	}
}

// Min configures a min-heap.
func Min() Option {
	return WithPolarity(MinHeap)
}

// Max configures a max-heap.
func Max() Option {
	return WithPolarity(MaxHeap)
}

// WithCapacity pre-sizes the backing slice. Negative values are ignored.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		polarity: MaxHeap,
		capacity: 0,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
