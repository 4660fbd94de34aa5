// Package kernel defines the kernel release version extracted from driver
// source filenames and its ordering.
package kernel

import (
	"fmt"
	"sort"
)

// Version identifies a kernel release by its major and minor numbers, as
// encoded in driver source filenames like e100-5.15-ethercat.c.
type Version struct {
	Major int
	Minor int
}

// String returns the plain dotted form, e.g. "5.15".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Label returns the row caption used in the presence table. The minor number
// is left-aligned in a minimum width of 2, so 6.1 renders as "6.1 " with a
// trailing space while 5.15 renders as "5.15".
func (v Version) Label() string {
	return fmt.Sprintf("%d.%-2d", v.Major, v.Minor)
}

// Compare orders versions by (major, minor). It returns a negative value when
// v is older than o, zero when equal, and a positive value when newer.
func (v Version) Compare(o Version) int {
	if v.Major != o.Major {
		return v.Major - o.Major
	}
	return v.Minor - o.Minor
}

// SortDescending sorts versions in place, newest first.
func SortDescending(versions []Version) {
	sort.Slice(versions, func(i, j int) bool {
		return versions[i].Compare(versions[j]) > 0
	})
}
