package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Inspect billing invoices",
}

var invoiceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List invoices",
	RunE:  runInvoiceList,
}

var invoiceShowCmd = &cobra.Command{
	Use:   "show [invoice-id]",
	Short: "Show one invoice",
	Args:  cobra.ExactArgs(1),
	RunE:  runInvoiceShow,
}

func init() {
	invoiceCmd.AddCommand(invoiceListCmd)
	invoiceCmd.AddCommand(invoiceShowCmd)
	rootCmd.AddCommand(invoiceCmd)
}

func runInvoiceList(cmd *cobra.Command, _ []string) error {
	if adminService == nil {
		return errors.New("admin service not configured")
	}

	invoices, err := adminService.ListInvoices(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing invoices: %w", err)
	}
	if len(invoices) == 0 {
		cmd.Println("No invoices found.")
		return nil
	}
	for _, inv := range invoices {
		state := "unpaid"
		if inv.Paid {
			state = "paid"
		}
		cmd.Printf("%s  %-10s  %-6s  %10.2f %s  due %s\n",
			inv.ID, inv.Number, state, inv.Amount, inv.Currency, inv.DueAt.Format("2006-01-02"))
	}
	return nil
}

func runInvoiceShow(cmd *cobra.Command, args []string) error {
	if adminService == nil {
		return errors.New("admin service not configured")
	}

	inv, err := adminService.GetInvoice(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("loading invoice: %w", err)
	}

	cmd.Printf("ID:          %s\n", inv.ID)
	cmd.Printf("Number:      %s\n", inv.Number)
	cmd.Printf("Institution: %s\n", inv.InstitutionID)
	cmd.Printf("Amount:      %.2f %s\n", inv.Amount, inv.Currency)
	cmd.Printf("Paid:        %t\n", inv.Paid)
	cmd.Printf("Issued:      %s\n", inv.IssuedAt.Format("2006-01-02"))
	cmd.Printf("Due:         %s\n", inv.DueAt.Format("2006-01-02"))
	return nil
}
