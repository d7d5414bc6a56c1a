package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// rootFlags are the persistent flags every subcommand reads.
type rootFlags struct {
	configPath string
	logLevel   string
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:          "shiprate",
		Short:        "Shiprate: UPS rate shopping and address validation",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Client config file (optional; SHIPRATE_* env vars also apply)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Override the configured log level: debug|info|warn|error")

	cmd.AddCommand(ratesCmd(flags))
	cmd.AddCommand(validateAddressCmd(flags))
	cmd.AddCommand(versionCmd())
	return cmd
}
