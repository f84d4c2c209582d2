package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/davidvella/heap"
)

func newSortCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort [values...]",
		Short: "Print integers in heap extraction order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValues(args)
			if err != nil {
				return err
			}

			polarity := heap.MaxHeap
			if a.config.GetBool("min") {
				polarity = heap.MinHeap
			}

			h := heap.From(values, heap.WithPolarity(polarity))
			a.log.Log(cmd.Context(), logrus.DebugLevel, "heap_built", "built heap from arguments", map[string]interface{}{
				"count":    h.Len(),
				"polarity": polarity.String(),
				"layout":   h.String(),
			})

			out := make([]string, 0, h.Len())
			for v := range h.Drain() {
				out = append(out, strconv.Itoa(v))
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, " "))
			return nil
		},
	}

	cmd.Flags().Bool("min", false, "extract in ascending order (min-heap)")
	_ = a.config.BindPFlag("min", cmd.Flags().Lookup("min"))

	return cmd
}

func parseValues(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("invalid value %q: %w", field, err)
			}
			values = append(values, v)
		}
	}
	return values, nil
}
