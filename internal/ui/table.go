package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	cellMaxWidth = 50
	cellEllipsis = "..."
	columnGap    = 2
)

// TableBuilder accumulates rows and renders them as a plain aligned
// table. Cells may carry ANSI color codes; alignment is computed on the
// visible characters only.
type TableBuilder struct {
	headers []string
	rows    [][]string
}

// NewTableBuilder returns a builder for a table with the given header
// row and an expected row count.
func NewTableBuilder(headers []string, capacity int) *TableBuilder {
	return &TableBuilder{headers: headers, rows: make([][]string, 0, capacity)}
}

// AddRow appends one row.
func (b *TableBuilder) AddRow(row []string) {
	b.rows = append(b.rows, row)
}

// String renders the table.
func (b *TableBuilder) String() string {
	widths := make([]int, len(b.headers))
	measure := func(row []string) {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := visibleWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(b.headers)
	for _, row := range b.rows {
		measure(row)
	}

	var out strings.Builder
	writeRow := func(row []string) {
		for i, cell := range row {
			out.WriteString(cell)
			if i == len(row)-1 {
				break
			}
			out.WriteString(strings.Repeat(" ", widths[i]-visibleWidth(cell)+columnGap))
		}
		out.WriteByte('\n')
	}
	writeRow(flattenCells(b.headers))
	for _, row := range b.rows {
		writeRow(flattenCells(row))
	}
	return out.String()
}

// TruncateTableCell flattens a cell to one line and caps its visible
// width, appending an ellipsis when content was cut.
func TruncateTableCell(value string) string {
	value = flattenCell(value)
	if visibleWidth(value) <= cellMaxWidth {
		return value
	}
	return truncateVisible(value, cellMaxWidth-len(cellEllipsis)) + cellEllipsis
}

func flattenCells(row []string) []string {
	flat := make([]string, len(row))
	for i, cell := range row {
		flat[i] = flattenCell(cell)
	}
	return flat
}

// flattenCell replaces line breaks and tabs with spaces so a cell
// cannot break row alignment.
func flattenCell(value string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(value)
}

// visibleWidth counts the runes that reach the terminal, skipping ANSI
// escape sequences.
func visibleWidth(value string) int {
	width := 0
	inEscape := false
	for _, r := range value {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			width++
		}
	}
	return width
}

// truncateVisible cuts a string to max visible runes while keeping any
// embedded ANSI sequences intact so open styles still get their reset.
func truncateVisible(value string, max int) string {
	if max <= 0 {
		return ""
	}

	var out strings.Builder
	visible := 0
	for i := 0; i < len(value); {
		if value[i] == '\x1b' {
			end := i + 1
			if end < len(value) && value[end] == '[' {
				for end < len(value) && value[end] != 'm' {
					end++
				}
				if end < len(value) {
					end++
				}
				out.WriteString(value[i:end])
				i = end
				continue
			}
		}
		if visible >= max {
			break
		}
		r, size := utf8.DecodeRuneInString(value[i:])
		if r == utf8.RuneError && size == 1 {
			out.WriteByte(value[i])
		} else {
			out.WriteRune(r)
		}
		visible++
		i += size
	}
	return out.String()
}
