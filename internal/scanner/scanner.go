// Package scanner walks the devices tree and records which kernel
// versions each cataloged driver has sources for.
//
// Driver sources are flat files named <prefix>-<major>.<minor>-ethercat.c,
// either at the tree root or in one subdirectory per catalog entry.
// Nested directories are never descended into.
package scanner

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/ecattools/drivertable/internal/catalog"
	"github.com/ecattools/drivertable/internal/errors"
	"github.com/ecattools/drivertable/internal/kernel"
	"github.com/ecattools/drivertable/internal/logger"
)

// srcExtension is the filename extension of driver sources.
const srcExtension = "c"

// VersionMap records, per kernel version, the set of drivers that have
// sources for it.
type VersionMap map[kernel.Version]map[string]bool

// Versions returns the kernel versions present in the map, newest first.
func (m VersionMap) Versions() []kernel.Version {
	versions := make([]kernel.Version, 0, len(m))
	for v := range m {
		versions = append(versions, v)
	}
	kernel.SortDescending(versions)
	return versions
}

// Has reports whether driver has sources for version v.
func (m VersionMap) Has(v kernel.Version, driver string) bool {
	return m[v][driver]
}

func (m VersionMap) add(v kernel.Version, driver string) {
	if m[v] == nil {
		m[v] = make(map[string]bool)
	}
	m[v][driver] = true
}

// SourcePattern returns the pattern matching source filenames for prefix,
// capturing the major and minor kernel version.
func SourcePattern(prefix string) *regexp.Regexp {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `-(\d+)\.(\d+)-ethercat\.` + srcExtension + `$`)
}

// Scan reads the devices tree and returns which kernel versions each
// cataloged driver has sources for. The tree root is listed once and
// shared by all root entries; subdirectories are listed per entry.
func Scan(devicesDir string, cat *catalog.Catalog) (VersionMap, error) {
	rootFiles, err := listFiles(devicesDir)
	if err != nil {
		return nil, err
	}
	logger.Debug("Listed %d files in %s", len(rootFiles), devicesDir)

	table := make(VersionMap)
	for _, e := range cat.Entries {
		files := rootFiles
		if e.Subdir != catalog.RootDir {
			files, err = listFiles(filepath.Join(devicesDir, e.Subdir))
			if err != nil {
				return nil, err
			}
		}

		versions := filterVersions(files, e.Prefix)
		for _, v := range versions {
			table.add(v, e.Driver)
		}

		logger.DebugFields("Scanned driver sources", logger.Fields{
			"driver":   e.Driver,
			"subdir":   e.Subdir,
			"versions": len(versions),
		})
	}

	return table, nil
}

// listFiles returns the names of the non-directory entries in dir.
func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound(dir)
		}
		return nil, errors.WrapPath(errors.ErrCodeScan, dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// filterVersions extracts the kernel versions named by source files
// matching prefix. Duplicates collapse to one version.
func filterVersions(names []string, prefix string) []kernel.Version {
	re := SourcePattern(prefix)
	seen := make(map[kernel.Version]bool)
	var versions []kernel.Version

	for _, name := range names {
		m := re.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		major, errMajor := strconv.Atoi(m[1])
		minor, errMinor := strconv.Atoi(m[2])
		if errMajor != nil || errMinor != nil {
			continue
		}
		v := kernel.Version{Major: major, Minor: minor}
		if !seen[v] {
			seen[v] = true
			versions = append(versions, v)
		}
	}

	return versions
}
