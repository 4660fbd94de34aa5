package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ecattools/drivertable/internal/errors"
	"github.com/ecattools/drivertable/internal/logger"
	"github.com/ecattools/drivertable/internal/matrix"
	"github.com/ecattools/drivertable/internal/output"
	"github.com/ecattools/drivertable/internal/scanner"
)

var (
	jsonOutput   bool
	verbose      bool
	catalogPath  string
	markdownPath string
	version      = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "drivertable <devices_dir>",
	Short: "Generate the EtherCAT network driver support table",
	Long: `drivertable scans a devices directory tree for patched network driver
sources named <prefix>-<major>.<minor>-ethercat.c and renders a markdown
table showing which driver is available for which kernel version.

By default the table is printed to stdout. With --markdown it is written
to a file instead.

Examples:
  drivertable ./devices
  drivertable --markdown drivers.md ./devices
  drivertable --json ./devices`,
	Args:          cobra.ExactArgs(1),
	RunE:          runRoot,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	// Initialize logger based on verbose flag (parsed by cobra)
	cobra.OnInitialize(func() {
		logger.Init(verbose)
	})

	if err := rootCmd.Execute(); err != nil {
		output.Error("%v", err)
		os.Exit(1)
	}
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging for debugging")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Load the driver catalog from a YAML file")
	rootCmd.Flags().StringVar(&markdownPath, "markdown", "", "Markdown output file")
}

func runRoot(cmd *cobra.Command, args []string) error {
	devicesDir := args[0]

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	logger.Info("Scanning %s", devicesDir)
	versions, err := scanner.Scan(devicesDir, cat)
	if err != nil {
		return err
	}

	table := matrix.Build(versions, cat.Drivers())
	logger.DebugFields("Table assembled", logger.Fields{
		"kernels": len(table.Rows),
		"drivers": len(table.Headers) - 1,
	})

	if markdownPath != "" {
		if err := os.WriteFile(markdownPath, []byte(table.Markdown()+"\n"), 0644); err != nil {
			return errors.WrapPath(errors.ErrCodeOutput, markdownPath, err)
		}
	}

	if jsonOutput {
		return output.JSON(table)
	}
	if markdownPath != "" {
		if len(table.Rows) == 0 {
			output.Warn("No driver sources found in %s", devicesDir)
		}
		output.Success("Driver table written to %s", markdownPath)
		return nil
	}
	output.Print("%s", table.Markdown())
	return nil
}
