// Package cli implements the lawadmin command-line interface using cobra.
// Commands are thin: they parse flags, call the driving services and
// format output. All wiring happens in cmd/lawadmin.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/ports/driving"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services injected by the composition root. Commands check for nil so
// the package stays testable without a full stack.
var (
	sessionService   driving.SessionService
	assistantService driving.AssistantService
	adminService     driving.AdminService
)

// Services bundles the driving ports the CLI depends on.
type Services struct {
	Session   driving.SessionService
	Assistant driving.AssistantService
	Admin     driving.AdminService
}

// SetServices installs the driving services used by all commands.
func SetServices(s Services) {
	sessionService = s.Session
	assistantService = s.Assistant
	adminService = s.Admin
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "lawadmin",
	Short: "Admin console for the LawAfrica digital hub",
	Long: `lawadmin is the operations console for the LawAfrica legal content
platform. It manages institutions, subscriptions, invoices and payment
reviews, moderates the lawyer directory, and fronts the AI research
assistant for legal commentary and document summaries.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
