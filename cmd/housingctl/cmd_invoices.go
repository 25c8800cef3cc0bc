package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workerhousing/housing-client/internal/core/ports"
)

var invoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "View and pay invoices",
}

var invoicesListFlags struct {
	status string
	userID string
}

var invoicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List invoices",
	RunE:  runInvoicesList,
}

var invoicesPayFlags struct {
	proofImage string
	proofNotes string
}

var invoicesPayCmd = &cobra.Command{
	Use:   "pay <id>",
	Short: "Mark an invoice as paid, optionally attaching payment proof",
	Args:  cobra.ExactArgs(1),
	RunE:  runInvoicesPay,
}

func init() {
	f := invoicesListCmd.Flags()
	f.StringVar(&invoicesListFlags.status, "status", "", "filter by status (pending, paid)")
	f.StringVar(&invoicesListFlags.userID, "user", "", "filter by user id")

	p := invoicesPayCmd.Flags()
	p.StringVar(&invoicesPayFlags.proofImage, "proof-image", "", "payment proof image reference")
	p.StringVar(&invoicesPayFlags.proofNotes, "proof-notes", "", "payment proof notes")

	invoicesCmd.AddCommand(invoicesListCmd, invoicesPayCmd)
}

func runInvoicesList(cmd *cobra.Command, _ []string) error {
	items, err := app.invoices.Fetch(cmd.Context(), ports.ListParams{
		Status: invoicesListFlags.status,
		UserID: invoicesListFlags.userID,
	})
	if err != nil {
		return err
	}
	w := table(cmd)
	fmt.Fprintln(w, "ID\tNUMBER\tROOM\tAMOUNT\tTYPE\tSTATUS\tDUE")
	for _, inv := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\t%s\t%s\n",
			inv.ID, inv.InvoiceNumber, inv.RoomNumber, inv.Amount, inv.Type, inv.Status, inv.DueDate)
	}
	return w.Flush()
}

func runInvoicesPay(cmd *cobra.Command, args []string) error {
	var proof *ports.PaymentProofInput
	if invoicesPayFlags.proofImage != "" {
		proof = &ports.PaymentProofInput{
			Image: invoicesPayFlags.proofImage,
			Notes: invoicesPayFlags.proofNotes,
		}
	}

	updated, err := app.invoices.MarkPaid(cmd.Context(), args[0], proof)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Invoice %s marked %s\n", updated.InvoiceNumber, updated.Status)
	if updated.PaymentProof != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Proof attached: %s\n", updated.PaymentProof.Image)
	}
	return nil
}
