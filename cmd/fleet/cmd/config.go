package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dimensionhq/fleet/internal/cargoconfig"
	"github.com/dimensionhq/fleet/internal/toolchain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the cargo configuration fleet would generate",
	Long: `Probe the toolchain and print the .cargo/config.toml that the next
'fleet build' or 'fleet run' will write. Nothing is written to disk.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	facts := toolchain.NewProber(newEnvironment(cfg), logger.Logger).Probe()
	data, err := cargoconfig.Synthesize(facts).Marshal()
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
