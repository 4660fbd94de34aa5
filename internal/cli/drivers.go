package cli

import (
	"github.com/spf13/cobra"

	"github.com/ecattools/drivertable/internal/output"
	"github.com/ecattools/drivertable/internal/scanner"
)

var driversCmd = &cobra.Command{
	Use:   "drivers",
	Short: "List the drivers the scanner looks for",
	Long: `List the driver catalog: for each entry the driver name, the
subdirectory its sources live in, the filename prefix, and the pattern
matched against source files.

Examples:
  drivertable drivers
  drivertable drivers --catalog extra.yaml
  drivertable drivers --json`,
	RunE: runDrivers,
}

func init() {
	rootCmd.AddCommand(driversCmd)
}

type driverListItem struct {
	Driver  string `json:"driver"`
	Subdir  string `json:"subdir"`
	Prefix  string `json:"prefix"`
	Pattern string `json:"pattern"`
}

func runDrivers(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	items := make([]driverListItem, 0, len(cat.Entries))
	for _, e := range cat.Entries {
		items = append(items, driverListItem{
			Driver:  e.Driver,
			Subdir:  e.Subdir,
			Prefix:  e.Prefix,
			Pattern: scanner.SourcePattern(e.Prefix).String(),
		})
	}

	if jsonOutput {
		return output.JSON(items)
	}

	headers := []string{"DRIVER", "SUBDIR", "PREFIX", "PATTERN"}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{item.Driver, item.Subdir, item.Prefix, item.Pattern})
	}
	output.Table(headers, rows)
	return nil
}
