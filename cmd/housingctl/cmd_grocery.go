package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/workerhousing/housing-client/internal/core/ports"
)

var groceryCmd = &cobra.Command{
	Use:   "grocery",
	Short: "Manage the grocery catalog (admin)",
}

var groceryListFlags struct {
	category string
}

var groceryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List grocery items",
	RunE:  runGroceryList,
}

var groceryAddFlags struct {
	name     string
	category string
	price    float64
	stock    int
}

var groceryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a catalog item",
	RunE:  runGroceryAdd,
}

var groceryUpdateFlags struct {
	name     string
	category string
	price    float64
	stock    int
}

var groceryUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a catalog item (only supplied flags change)",
	Args:  cobra.ExactArgs(1),
	RunE:  runGroceryUpdate,
}

var groceryStockCmd = &cobra.Command{
	Use:   "set-stock <id> <stock>",
	Short: "Set an item's stock counter",
	Args:  cobra.ExactArgs(2),
	RunE:  runGroceryStock,
}

var groceryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a catalog item",
	Args:  cobra.ExactArgs(1),
	RunE:  runGroceryDelete,
}

func init() {
	groceryListCmd.Flags().StringVar(&groceryListFlags.category, "category", "", "filter by category")

	a := groceryAddCmd.Flags()
	a.StringVar(&groceryAddFlags.name, "name", "", "item name (required)")
	a.StringVar(&groceryAddFlags.category, "category", "", "item category (required)")
	a.Float64Var(&groceryAddFlags.price, "price", 0, "unit price (required)")
	a.IntVar(&groceryAddFlags.stock, "stock", 0, "initial stock")
	_ = groceryAddCmd.MarkFlagRequired("name")
	_ = groceryAddCmd.MarkFlagRequired("category")
	_ = groceryAddCmd.MarkFlagRequired("price")

	u := groceryUpdateCmd.Flags()
	u.StringVar(&groceryUpdateFlags.name, "name", "", "new name")
	u.StringVar(&groceryUpdateFlags.category, "category", "", "new category")
	u.Float64Var(&groceryUpdateFlags.price, "price", 0, "new unit price")
	u.IntVar(&groceryUpdateFlags.stock, "stock", 0, "new stock")

	groceryCmd.AddCommand(groceryListCmd, groceryAddCmd, groceryUpdateCmd, groceryStockCmd, groceryDeleteCmd)
}

func runGroceryList(cmd *cobra.Command, _ []string) error {
	items, err := app.items.Fetch(cmd.Context(), ports.ListParams{Category: groceryListFlags.category})
	if err != nil {
		return err
	}
	w := table(cmd)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK")
	for _, it := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%d\n", it.ID, it.Name, it.Category, it.Price, it.Stock)
	}
	return w.Flush()
}

func runGroceryAdd(cmd *cobra.Command, _ []string) error {
	created, err := app.items.Create(cmd.Context(), ports.CreateGroceryItemInput{
		Name:     groceryAddFlags.name,
		Category: groceryAddFlags.category,
		Price:    groceryAddFlags.price,
		Stock:    groceryAddFlags.stock,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s) at %.2f, stock %d\n", created.Name, created.ID, created.Price, created.Stock)
	return nil
}

func runGroceryUpdate(cmd *cobra.Command, args []string) error {
	var input ports.UpdateGroceryItemInput
	if cmd.Flags().Changed("name") {
		input.Name = &groceryUpdateFlags.name
	}
	if cmd.Flags().Changed("category") {
		input.Category = &groceryUpdateFlags.category
	}
	if cmd.Flags().Changed("price") {
		input.Price = &groceryUpdateFlags.price
	}
	if cmd.Flags().Changed("stock") {
		input.Stock = &groceryUpdateFlags.stock
	}

	updated, err := app.items.Update(cmd.Context(), args[0], input)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s at %.2f, stock %d\n", updated.ID, updated.Name, updated.Price, updated.Stock)
	return nil
}

func runGroceryStock(cmd *cobra.Command, args []string) error {
	stock, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid stock value %q", args[1])
	}
	updated, err := app.items.UpdateStock(cmd.Context(), args[0], stock)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s stock is now %d\n", updated.Name, updated.Stock)
	return nil
}

func runGroceryDelete(cmd *cobra.Command, args []string) error {
	if err := app.items.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
	return nil
}
