// Package matrix builds the kernel/driver presence table and renders it
// as markdown.
package matrix

import (
	"fmt"
	"strings"

	"github.com/ecattools/drivertable/internal/scanner"
)

// Presence marks used in table cells.
const (
	markPresent = "X"
	markAbsent  = "-"
)

// kernelHeader labels the version column.
const kernelHeader = "Kernel"

// Table is the presence matrix. The first header cell labels the kernel
// column, the remaining headers are driver names. Each row starts with a
// kernel version label followed by one mark per driver.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Build assembles the presence table for the given drivers from scan
// results, newest kernel first.
func Build(m scanner.VersionMap, drivers []string) *Table {
	headers := make([]string, 0, len(drivers)+1)
	headers = append(headers, kernelHeader)
	headers = append(headers, drivers...)

	versions := m.Versions()
	rows := make([][]string, 0, len(versions))
	for _, v := range versions {
		row := make([]string, 0, len(headers))
		row = append(row, v.Label())
		for _, driver := range drivers {
			if m.Has(v, driver) {
				row = append(row, markPresent)
			} else {
				row = append(row, markAbsent)
			}
		}
		rows = append(rows, row)
	}

	return &Table{Headers: headers, Rows: rows}
}

// Markdown renders the table in the layout the documentation expects.
// Every column is as wide as the longest header cell; data cells wider
// than that are not truncated. Version labels are right aligned, driver
// marks centered. The result carries no trailing newline.
func (t *Table) Markdown() string {
	if len(t.Headers) == 0 {
		return ""
	}

	width := 0
	for _, cell := range t.Headers {
		if len(cell) > width {
			width = len(cell)
		}
	}

	var b strings.Builder

	fmt.Fprintf(&b, "| %-*s ", width, t.Headers[0])
	for _, cell := range t.Headers[1:] {
		b.WriteString("| " + center(cell, width) + " ")
	}

	b.WriteString("|\n|-" + strings.Repeat("-", width) + ":|")
	for i := 0; i < len(t.Headers)-1; i++ {
		b.WriteString(":" + strings.Repeat("-", width) + ":|")
	}

	for _, row := range t.Rows {
		b.WriteString("\n")
		fmt.Fprintf(&b, "| %*s ", width, row[0])
		for _, cell := range row[1:] {
			b.WriteString("| " + center(cell, width) + " ")
		}
		b.WriteString("|")
	}

	return b.String()
}

// center pads s to width w with the extra space on the right.
func center(s string, w int) string {
	if len(s) >= w {
		return s
	}
	left := (w - len(s)) / 2
	right := w - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
