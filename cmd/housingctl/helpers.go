package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func table(cmd *cobra.Command) *tabwriter.Writer {
	return tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
}

type itemSpec struct {
	id       string
	quantity int
}

// parseItemSpecs parses repeated --item values of the form "id" or
// "id:quantity". Duplicate ids accumulate quantity.
func parseItemSpecs(raw []string) ([]itemSpec, error) {
	merged := make(map[string]int, len(raw))
	order := make([]string, 0, len(raw))
	for _, r := range raw {
		id, qtyStr, found := strings.Cut(r, ":")
		qty := 1
		if found {
			n, err := strconv.Atoi(qtyStr)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("invalid item spec %q: quantity must be a positive integer", r)
			}
			qty = n
		}
		if id == "" {
			return nil, fmt.Errorf("invalid item spec %q: missing item id", r)
		}
		if _, seen := merged[id]; !seen {
			order = append(order, id)
		}
		merged[id] += qty
	}

	specs := make([]itemSpec, 0, len(order))
	for _, id := range order {
		specs = append(specs, itemSpec{id: id, quantity: merged[id]})
	}
	return specs, nil
}
