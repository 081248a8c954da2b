package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
)

var paymentStatus string

var paymentCmd = &cobra.Command{
	Use:   "payment",
	Short: "Review submitted payments",
}

var paymentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List payments by review status",
	RunE:  runPaymentList,
}

var paymentApproveCmd = &cobra.Command{
	Use:   "approve [payment-id]",
	Short: "Approve a pending payment",
	Args:  cobra.ExactArgs(1),
	RunE:  runPaymentReview(true),
}

var paymentRejectCmd = &cobra.Command{
	Use:   "reject [payment-id]",
	Short: "Reject a pending payment",
	Args:  cobra.ExactArgs(1),
	RunE:  runPaymentReview(false),
}

func init() {
	paymentListCmd.Flags().StringVar(&paymentStatus, "status", "pending",
		"filter by review status (pending, approved, rejected, all)")

	paymentCmd.AddCommand(paymentListCmd)
	paymentCmd.AddCommand(paymentApproveCmd)
	paymentCmd.AddCommand(paymentRejectCmd)
	rootCmd.AddCommand(paymentCmd)
}

// reviewStatusFromFlag maps the --status flag to a domain value.
// "all" maps to the empty status, which the backend treats as no filter.
func reviewStatusFromFlag(flag string) (domain.ReviewStatus, error) {
	switch flag {
	case "all", "":
		return "", nil
	case string(domain.ReviewPending), string(domain.ReviewApproved), string(domain.ReviewRejected):
		return domain.ReviewStatus(flag), nil
	default:
		return "", fmt.Errorf("invalid status %q (want pending, approved, rejected or all)", flag)
	}
}

func runPaymentList(cmd *cobra.Command, _ []string) error {
	if adminService == nil {
		return errors.New("admin service not configured")
	}

	status, err := reviewStatusFromFlag(paymentStatus)
	if err != nil {
		return err
	}

	payments, err := adminService.ListPayments(cmd.Context(), status)
	if err != nil {
		return fmt.Errorf("listing payments: %w", err)
	}
	if len(payments) == 0 {
		cmd.Println("No payments found.")
		return nil
	}
	for _, p := range payments {
		cmd.Printf("%s  %-9s  %-12s  %10.2f %s  ref %s\n",
			p.ID, p.Status, p.Provider, p.Amount, p.Currency, p.Reference)
	}
	return nil
}

func runPaymentReview(approve bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if adminService == nil {
			return errors.New("admin service not configured")
		}

		if err := adminService.ReviewPayment(cmd.Context(), args[0], approve); err != nil {
			return fmt.Errorf("reviewing payment: %w", err)
		}
		if approve {
			cmd.Printf("Payment %s approved.\n", args[0])
		} else {
			cmd.Printf("Payment %s rejected.\n", args[0])
		}
		return nil
	}
}
