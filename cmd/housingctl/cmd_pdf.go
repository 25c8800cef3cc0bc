package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Generate documents server-side",
}

var pdfInvoiceCmd = &cobra.Command{
	Use:   "invoice <id>",
	Short: "Generate an invoice PDF and print its URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url, err := app.pdf.InvoicePDF(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), url)
		return nil
	},
}

var pdfOrderCmd = &cobra.Command{
	Use:   "order <id>",
	Short: "Generate an order receipt and print its URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url, err := app.pdf.OrderReceipt(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), url)
		return nil
	},
}

func init() {
	pdfCmd.AddCommand(pdfInvoiceCmd, pdfOrderCmd)
}
