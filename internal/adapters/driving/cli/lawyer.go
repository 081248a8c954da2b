package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var lawyerStatus string

var lawyerCmd = &cobra.Command{
	Use:   "lawyer",
	Short: "Moderate the lawyer directory",
}

var lawyerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List lawyer profiles by review status",
	RunE:  runLawyerList,
}

var lawyerApproveCmd = &cobra.Command{
	Use:   "approve [profile-id]",
	Short: "Approve a lawyer profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runLawyerReview(true),
}

var lawyerRejectCmd = &cobra.Command{
	Use:   "reject [profile-id]",
	Short: "Reject a lawyer profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runLawyerReview(false),
}

func init() {
	lawyerListCmd.Flags().StringVar(&lawyerStatus, "status", "pending",
		"filter by review status (pending, approved, rejected, all)")

	lawyerCmd.AddCommand(lawyerListCmd)
	lawyerCmd.AddCommand(lawyerApproveCmd)
	lawyerCmd.AddCommand(lawyerRejectCmd)
	rootCmd.AddCommand(lawyerCmd)
}

func runLawyerList(cmd *cobra.Command, _ []string) error {
	if adminService == nil {
		return errors.New("admin service not configured")
	}

	status, err := reviewStatusFromFlag(lawyerStatus)
	if err != nil {
		return err
	}

	profiles, err := adminService.ListLawyerProfiles(cmd.Context(), status)
	if err != nil {
		return fmt.Errorf("listing lawyer profiles: %w", err)
	}
	if len(profiles) == 0 {
		cmd.Println("No lawyer profiles found.")
		return nil
	}
	for _, p := range profiles {
		cmd.Printf("%s  %-9s  %-24s  %s\n", p.ID, p.Status, p.FullName, p.Firm)
	}
	return nil
}

func runLawyerReview(approve bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if adminService == nil {
			return errors.New("admin service not configured")
		}

		if err := adminService.ReviewLawyerProfile(cmd.Context(), args[0], approve); err != nil {
			return fmt.Errorf("reviewing lawyer profile: %w", err)
		}
		if approve {
			cmd.Printf("Lawyer profile %s approved.\n", args[0])
		} else {
			cmd.Printf("Lawyer profile %s rejected.\n", args[0])
		}
		return nil
	}
}
