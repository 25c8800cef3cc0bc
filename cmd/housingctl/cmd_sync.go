package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workerhousing/housing-client/internal/core/store"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch all resources from the server",
	Long:  "Hydrates every resource store. Failing resources are reported individually; a partial result is not an error.",
	RunE:  runSync,
}

func runSync(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	app.session.Start(ctx)

	out := cmd.OutOrStdout()
	if app.session.State() != store.StateReady {
		fmt.Fprintln(out, "Not authenticated. Run 'housingctl login' first.")
		return nil
	}

	type line struct {
		name  string
		count int
		err   error
	}
	lines := []line{
		{"maintenance requests", len(app.maintenance.Items()), app.maintenance.Err()},
		{"invoices", len(app.invoices.Items()), app.invoices.Err()},
		{"grocery items", len(app.items.Items()), app.items.Err()},
		{"grocery orders", len(app.orders.Items()), app.orders.Err()},
		{"users", len(app.users.Items()), app.users.Err()},
	}
	for _, l := range lines {
		if l.err != nil {
			fmt.Fprintf(out, "%-22s FAILED: %v\n", l.name, l.err)
			continue
		}
		fmt.Fprintf(out, "%-22s %d\n", l.name, l.count)
	}
	return nil
}
