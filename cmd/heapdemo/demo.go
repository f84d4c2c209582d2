package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/davidvella/heap"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the min-heap, max-heap and merge walkthrough",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.log.Log(cmd.Context(), logrus.DebugLevel, "demo_started", "running heap walkthrough", nil)
			if err := runDemo(cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("demo failed: %w", err)
			}
			a.log.Log(cmd.Context(), logrus.InfoLevel, "demo_finished", "heap walkthrough complete", nil)
			return nil
		},
	}
}

func runDemo(w io.Writer) error {
	fmt.Fprintln(w, "Min-Heap:")
	minHeap := heap.From([]int{5, 3, 8, 1, 9}, heap.Min())
	fmt.Fprintf(w, "Heap: %v\n", minHeap)

	minimum, err := minHeap.Peek()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Minimum: %d\n", minimum)

	minHeap.Push(0)
	fmt.Fprintf(w, "After pushing 0: %v\n", minHeap)

	popped, err := minHeap.Pop()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Popped minimum: %d\n", popped)
	fmt.Fprintf(w, "After pop: %v\n", minHeap)

	if err := minHeap.ChangeKey(2, 2); err != nil {
		return err
	}
	fmt.Fprintf(w, "After changing key: %v\n", minHeap)

	fmt.Fprintln(w, "\nMax-Heap:")
	maxHeap := heap.From([]int{1, 5, 3, 7, 2})
	fmt.Fprintf(w, "Heap: %v\n", maxHeap)

	maximum, err := maxHeap.Peek()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Maximum: %d\n", maximum)

	maxHeap.Push(10)
	fmt.Fprintf(w, "After pushing 10: %v\n", maxHeap)

	heap1 := heap.From([]int{1, 3, 5}, heap.Min())
	heap2 := heap.From([]int{2, 4, 6}, heap.Min())
	merged := heap1.Merge(heap2)
	fmt.Fprintf(w, "\nMerge: %v + %v = %v\n", heap1, heap2, merged)

	return nil
}
