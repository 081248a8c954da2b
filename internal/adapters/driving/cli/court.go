package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var courtCmd = &cobra.Command{
	Use:   "court",
	Short: "Browse the court register",
}

var courtListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered courts",
	RunE:  runCourtList,
}

func init() {
	courtCmd.AddCommand(courtListCmd)
	rootCmd.AddCommand(courtCmd)
}

func runCourtList(cmd *cobra.Command, _ []string) error {
	if adminService == nil {
		return errors.New("admin service not configured")
	}

	courts, err := adminService.ListCourts(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing courts: %w", err)
	}
	if len(courts) == 0 {
		cmd.Println("No courts registered.")
		return nil
	}
	for _, c := range courts {
		cmd.Printf("%s  %-6s  %-12s  %s\n", c.ID, c.Abbreviation, c.Level, c.Name)
	}
	return nil
}
