package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workerhousing/housing-client/internal/core/ports"
	"github.com/workerhousing/housing-client/internal/core/store"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "View and place grocery orders",
}

var ordersListFlags struct {
	status string
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List grocery orders",
	RunE:  runOrdersList,
}

var ordersCheckoutFlags struct {
	room  string
	items []string
}

var ordersCheckoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Place an order from catalog items",
	Long:  "Builds a cart from --item flags (item id, or id:quantity) against the live catalog and submits it as an order.",
	RunE:  runOrdersCheckout,
}

var ordersStatusCmd = &cobra.Command{
	Use:   "set-status <id> <status>",
	Short: "Transition an order (staff)",
	Args:  cobra.ExactArgs(2),
	RunE:  runOrdersStatus,
}

func init() {
	ordersListCmd.Flags().StringVar(&ordersListFlags.status, "status", "", "filter by status")

	c := ordersCheckoutCmd.Flags()
	c.StringVar(&ordersCheckoutFlags.room, "room", "", "room number (required)")
	c.StringArrayVar(&ordersCheckoutFlags.items, "item", nil, "item to order, id or id:quantity (repeatable, required)")
	_ = ordersCheckoutCmd.MarkFlagRequired("room")
	_ = ordersCheckoutCmd.MarkFlagRequired("item")

	ordersCmd.AddCommand(ordersListCmd, ordersCheckoutCmd, ordersStatusCmd)
}

func runOrdersList(cmd *cobra.Command, _ []string) error {
	orders, err := app.orders.Fetch(cmd.Context(), ports.ListParams{Status: ordersListFlags.status})
	if err != nil {
		return err
	}
	w := table(cmd)
	fmt.Fprintln(w, "ID\tROOM\tITEMS\tTOTAL\tSTATUS")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%s\n", o.ID, o.RoomNumber, len(o.Items), o.Total, o.Status)
	}
	return w.Flush()
}

func runOrdersCheckout(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	specs, err := parseItemSpecs(ordersCheckoutFlags.items)
	if err != nil {
		return err
	}

	// The cart prices lines from the live catalog, not from user input.
	catalog, err := app.items.Fetch(ctx, ports.ListParams{})
	if err != nil {
		return err
	}
	byID := make(map[string]int, len(catalog))
	for i, it := range catalog {
		byID[it.ID] = i
	}

	cart := store.NewCart()
	for _, spec := range specs {
		idx, ok := byID[spec.id]
		if !ok {
			return fmt.Errorf("unknown grocery item %q", spec.id)
		}
		cart.Add(catalog[idx])
		cart.SetQuantity(spec.id, spec.quantity)
	}

	var userID string
	if u := app.session.Current(); u != nil {
		userID = u.ID
	}

	order, err := app.orders.Create(ctx, cart.OrderInput(ordersCheckoutFlags.room, userID))
	if err != nil {
		return err
	}
	cart.Clear()

	fmt.Fprintf(cmd.OutOrStdout(), "Order %s placed: %d items, total %.2f\n", order.ID, len(order.Items), order.Total)
	return nil
}

func runOrdersStatus(cmd *cobra.Command, args []string) error {
	updated, err := app.orders.UpdateStatus(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Order %s is now %s\n", updated.ID, updated.Status)
	return nil
}
