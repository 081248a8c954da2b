package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/ports/driven"
)

// configStore is injected by the composition root.
var configStore driven.ConfigStore

// SetConfigStore installs the config store used by the config commands.
func SetConfigStore(store driven.ConfigStore) {
	configStore = store
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change lawadmin configuration",
	Long: `Inspect and change lawadmin configuration.

Useful keys:
  api.origin                    Backend origin, e.g. https://api.lawafrica.digital
  gateway.throttle_window_ms    Duplicate-suppression window
  assistant.typewriter          Enable/disable the reveal effect (true/false)
  assistant.reveal_interval_ms  Reveal cadence
  assistant.reveal_chunk_size   Characters revealed per tick`,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	val, ok := configStore.Get(args[0])
	if !ok {
		return fmt.Errorf("key %q is not set", args[0])
	}
	cmd.Printf("%v\n", val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]

	// Store native types so numeric and boolean keys round-trip.
	var value any = raw
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		value = n
	} else if b, err := strconv.ParseBool(raw); err == nil {
		value = b
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	cmd.Printf("Set %s = %v\n", key, value)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}
	cmd.Println(configStore.Path())
	return nil
}
