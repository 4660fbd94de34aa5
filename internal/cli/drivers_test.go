package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunDrivers(t *testing.T) {
	t.Run("bundled catalog table", func(t *testing.T) {
		jsonOutput = false
		catalogPath = ""

		var err error
		out := captureStdout(func() {
			err = runDrivers(nil, nil)
		})
		if err != nil {
			t.Fatalf("runDrivers failed: %v", err)
		}

		for _, header := range []string{"DRIVER", "SUBDIR", "PREFIX", "PATTERN"} {
			if !strings.Contains(out, header) {
				t.Errorf("output should contain header %s", header)
			}
		}
		for _, want := range []string{"e1000_main", "bcmgenet", "stmmac_pci", "dwmac-intel"} {
			if !strings.Contains(out, want) {
				t.Errorf("output should contain %q", want)
			}
		}
		if !strings.Contains(out, `-ethercat\.c$`) {
			t.Error("output should contain the source pattern")
		}
	})

	t.Run("json output", func(t *testing.T) {
		jsonOutput = true
		catalogPath = ""
		defer func() { jsonOutput = false }()

		var err error
		out := captureStdout(func() {
			err = runDrivers(nil, nil)
		})
		if err != nil {
			t.Fatalf("runDrivers failed: %v", err)
		}

		var items []driverListItem
		if err := json.Unmarshal([]byte(out), &items); err != nil {
			t.Fatalf("JSON output is invalid: %v", err)
		}

		if len(items) != 11 {
			t.Fatalf("expected 11 catalog entries, got %d", len(items))
		}
		if items[0].Driver != "8139too" || items[0].Subdir != "." {
			t.Errorf("unexpected first entry: %+v", items[0])
		}

		found := false
		for _, item := range items {
			if item.Driver == "igb" {
				found = true
				if item.Subdir != "igb" || item.Prefix != "igb_main" {
					t.Errorf("unexpected igb entry: %+v", item)
				}
				if !strings.HasPrefix(item.Pattern, "^igb_main-") {
					t.Errorf("unexpected igb pattern: %s", item.Pattern)
				}
			}
		}
		if !found {
			t.Error("igb entry missing")
		}
	})

	t.Run("custom catalog", func(t *testing.T) {
		catFile := filepath.Join(t.TempDir(), "catalog.yaml")
		content := `drivers:
  - subdir: "."
    driver: e100
    prefix: e100
`
		if err := os.WriteFile(catFile, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write catalog: %v", err)
		}

		jsonOutput = false
		catalogPath = catFile
		defer func() { catalogPath = "" }()

		var err error
		out := captureStdout(func() {
			err = runDrivers(nil, nil)
		})
		if err != nil {
			t.Fatalf("runDrivers failed: %v", err)
		}

		if !strings.Contains(out, "e100") {
			t.Error("output should contain e100")
		}
		if strings.Contains(out, "igb") {
			t.Error("bundled entries should not appear with a custom catalog")
		}
	})

	t.Run("missing catalog file", func(t *testing.T) {
		jsonOutput = false
		catalogPath = filepath.Join(t.TempDir(), "nonexistent.yaml")
		defer func() { catalogPath = "" }()

		if err := runDrivers(nil, nil); err == nil {
			t.Fatal("expected error for missing catalog")
		}
	})
}
