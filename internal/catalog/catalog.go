// Package catalog defines which driver sources the scanner looks for
// and where they live inside the devices tree.
package catalog

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ecattools/drivertable/internal/errors"
)

// RootDir marks entries whose sources live at the top of the devices tree.
const RootDir = "."

// Entry describes where the patched sources of one driver live.
type Entry struct {
	Subdir string `yaml:"subdir"` // directory under the devices tree, "." for the tree root
	Driver string `yaml:"driver"` // driver name, becomes a table column
	Prefix string `yaml:"prefix"` // source filename prefix
}

// Catalog is the list of driver source locations to scan.
type Catalog struct {
	Entries []Entry `yaml:"drivers"`
}

// Default returns the catalog of bundled network drivers.
func Default() *Catalog {
	return &Catalog{
		Entries: []Entry{
			{Subdir: RootDir, Driver: "8139too", Prefix: "8139too"},
			{Subdir: "stmmac", Driver: "dwmac-intel", Prefix: "dwmac-intel"},
			{Subdir: RootDir, Driver: "e100", Prefix: "e100"},
			{Subdir: "e1000", Driver: "e1000", Prefix: "e1000_main"},
			{Subdir: "e1000e", Driver: "e1000e", Prefix: "netdev"},
			{Subdir: "genet", Driver: "bcmgenet", Prefix: "bcmgenet"},
			{Subdir: "igb", Driver: "igb", Prefix: "igb_main"},
			{Subdir: "igc", Driver: "igc", Prefix: "igc_main"},
			{Subdir: RootDir, Driver: "r8169", Prefix: "r8169"},
			{Subdir: "r8169", Driver: "r8169", Prefix: "r8169_main"},
			{Subdir: "stmmac", Driver: "stmmac-pci", Prefix: "stmmac_pci"},
		},
	}
}

// Load reads a catalog from a YAML file and validates it.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCatalog, "failed to read catalog", err)
	}

	cat := &Catalog{}
	if err := yaml.Unmarshal(data, cat); err != nil {
		return nil, errors.Wrap(errors.ErrCodeCatalog, "failed to parse catalog", err)
	}

	// An omitted subdir means the tree root
	for i := range cat.Entries {
		if cat.Entries[i].Subdir == "" {
			cat.Entries[i].Subdir = RootDir
		}
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}

	return cat, nil
}

// Drivers returns the unique driver names in alphabetical order.
// These become the table columns.
func (c *Catalog) Drivers() []string {
	seen := make(map[string]bool)
	names := make([]string, 0, len(c.Entries))
	for _, e := range c.Entries {
		if !seen[e.Driver] {
			seen[e.Driver] = true
			names = append(names, e.Driver)
		}
	}
	sort.Strings(names)
	return names
}

// Validate checks that the catalog has entries and that each one is usable.
func (c *Catalog) Validate() error {
	if len(c.Entries) == 0 {
		return errors.ErrCatalogEmpty
	}
	for i, e := range c.Entries {
		if err := e.validate(); err != nil {
			return errors.Validation(fmt.Sprintf("entry %d: %v", i, err))
		}
	}
	return nil
}

// prefixPattern restricts prefixes to characters that are literal in the
// source filename match.
var prefixPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

func (e Entry) validate() error {
	if e.Driver == "" {
		return fmt.Errorf("driver name cannot be empty")
	}
	if e.Prefix == "" {
		return fmt.Errorf("prefix cannot be empty")
	}
	if !prefixPattern.MatchString(e.Prefix) {
		return fmt.Errorf("prefix %q contains invalid characters", e.Prefix)
	}
	if e.Subdir != RootDir {
		if e.Subdir == ".." || strings.ContainsAny(e.Subdir, `/\`) {
			return fmt.Errorf("subdir %q must be a single directory name", e.Subdir)
		}
	}
	return nil
}
