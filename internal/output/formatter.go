// Package output prints user-facing results on stdout: colored status
// lines, the aligned driver listing, and JSON. Diagnostic logging lives
// in internal/logger and goes to stderr.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	warnColor    = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
)

// JSON writes v to stdout as indented JSON.
func JSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table prints headers and rows as left-aligned columns separated by two
// spaces, with a dashed line under the headers. Each column is as wide as
// its widest cell; the last column is not padded, so lines carry no
// trailing spaces.
func Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	widths := columnWidths(headers, rows)

	printRow(headers, widths)
	dashes := make([]string, len(widths))
	for i, w := range widths {
		dashes[i] = strings.Repeat("-", w)
	}
	printRow(dashes, widths)
	for _, row := range rows {
		printRow(row, widths)
	}
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

// printRow pads cells to their column widths. Missing cells print empty,
// extra cells are dropped.
func printRow(cells []string, widths []int) {
	var b strings.Builder
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if i > 0 {
			b.WriteString("  ")
		}
		if i == len(widths)-1 {
			b.WriteString(cell)
		} else {
			fmt.Fprintf(&b, "%-*s", w, cell)
		}
	}
	fmt.Println(b.String())
}

// Success prints a green confirmation line.
func Success(format string, args ...interface{}) {
	_, _ = successColor.Printf("✓ "+format+"\n", args...)
}

// Error prints a red failure line.
func Error(format string, args ...interface{}) {
	_, _ = errorColor.Printf("✗ "+format+"\n", args...)
}

// Warn prints a yellow warning line.
func Warn(format string, args ...interface{}) {
	_, _ = warnColor.Printf("! "+format+"\n", args...)
}

// Info prints a cyan informational line.
func Info(format string, args ...interface{}) {
	_, _ = infoColor.Printf("→ "+format+"\n", args...)
}

// Print prints a plain line without any glyph or color.
func Print(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}
