package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
)

// Flags for institution commands.
var (
	institutionJSON       bool
	institutionAddName    string
	institutionAddCountry string
	institutionAddEmail   string
)

var institutionCmd = &cobra.Command{
	Use:   "institution",
	Short: "Manage subscribing institutions",
}

var institutionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered institutions",
	RunE:  runInstitutionList,
}

var institutionShowCmd = &cobra.Command{
	Use:   "show [institution-id]",
	Short: "Show one institution",
	Args:  cobra.ExactArgs(1),
	RunE:  runInstitutionShow,
}

var institutionAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new institution",
	RunE:  runInstitutionAdd,
}

var subscriptionListCmd = &cobra.Command{
	Use:   "subscriptions [institution-id]",
	Short: "List subscriptions, optionally for one institution",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSubscriptionList,
}

func init() {
	institutionListCmd.Flags().BoolVar(&institutionJSON, "json", false, "output as JSON")
	institutionAddCmd.Flags().StringVar(&institutionAddName, "name", "", "Institution name (required)")
	institutionAddCmd.Flags().StringVar(&institutionAddCountry, "country", "", "Country")
	institutionAddCmd.Flags().StringVar(&institutionAddEmail, "email", "", "Contact email")

	institutionCmd.AddCommand(institutionListCmd)
	institutionCmd.AddCommand(institutionShowCmd)
	institutionCmd.AddCommand(institutionAddCmd)
	institutionCmd.AddCommand(subscriptionListCmd)
	rootCmd.AddCommand(institutionCmd)
}

func runInstitutionList(cmd *cobra.Command, _ []string) error {
	if adminService == nil {
		return errors.New("admin service not configured")
	}

	institutions, err := adminService.ListInstitutions(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing institutions: %w", err)
	}

	if institutionJSON {
		data, err := json.MarshalIndent(institutions, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling institutions: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(institutions) == 0 {
		cmd.Println("No institutions registered.")
		return nil
	}
	for _, inst := range institutions {
		state := "inactive"
		if inst.Active {
			state = "active"
		}
		cmd.Printf("%s  %-8s  %s\n", inst.ID, state, inst.Name)
	}
	return nil
}

func runInstitutionShow(cmd *cobra.Command, args []string) error {
	if adminService == nil {
		return errors.New("admin service not configured")
	}

	inst, err := adminService.GetInstitution(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("loading institution: %w", err)
	}

	cmd.Printf("ID:      %s\n", inst.ID)
	cmd.Printf("Name:    %s\n", inst.Name)
	cmd.Printf("Country: %s\n", inst.Country)
	cmd.Printf("Email:   %s\n", inst.Email)
	cmd.Printf("Active:  %t\n", inst.Active)
	return nil
}

func runInstitutionAdd(cmd *cobra.Command, _ []string) error {
	if adminService == nil {
		return errors.New("admin service not configured")
	}
	if institutionAddName == "" {
		return errors.New("--name is required")
	}

	created, err := adminService.CreateInstitution(cmd.Context(), &domain.Institution{
		Name:    institutionAddName,
		Country: institutionAddCountry,
		Email:   institutionAddEmail,
	})
	if err != nil {
		return fmt.Errorf("creating institution: %w", err)
	}
	cmd.Printf("Created institution %s (%s)\n", created.Name, created.ID)
	return nil
}

func runSubscriptionList(cmd *cobra.Command, args []string) error {
	if adminService == nil {
		return errors.New("admin service not configured")
	}

	institutionID := ""
	if len(args) > 0 {
		institutionID = args[0]
	}

	subs, err := adminService.ListSubscriptions(cmd.Context(), institutionID)
	if err != nil {
		return fmt.Errorf("listing subscriptions: %w", err)
	}
	if len(subs) == 0 {
		cmd.Println("No subscriptions found.")
		return nil
	}
	for _, sub := range subs {
		state := "expired"
		if sub.Active {
			state = "active"
		}
		cmd.Printf("%s  %-8s  %-20s  %d seats  expires %s\n",
			sub.ID, state, sub.Package, sub.Seats, sub.ExpiresAt.Format("2006-01-02"))
	}
	return nil
}
