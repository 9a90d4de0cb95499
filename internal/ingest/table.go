// Package ingest parses the delimited source tables the registry is built
// from. The two upstream exports are comma-delimited with a header row and
// double-quote-enclosed values; they are not strict RFC 4180 (short rows
// appear, unquoted values carry stray whitespace), so parsing is lenient:
// a malformed row degrades instead of failing the whole file.
package ingest

import "strings"

// Row is one parsed data line, keyed by header column name. Columns
// missing from a short row are present with an empty value.
type Row map[string]string

// Get returns the trimmed value of a column, or "" when absent.
func (r Row) Get(col string) string {
	return strings.TrimSpace(r[col])
}

// GetPrefix returns the value of the first column whose name starts with
// the given prefix. Metric exports embed the census year in the header
// (e.g. "IF(2024)"), so callers match on the stable part.
func (r Row) GetPrefix(prefix string) string {
	for col, v := range r {
		if strings.HasPrefix(col, prefix) {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// ParseTable parses raw delimited text into rows. The first non-blank
// line is the header; every following non-blank line becomes one Row in
// source order. Fields beyond the header width are dropped; missing
// trailing fields default to the empty string.
func ParseTable(raw string) []Row {
	lines := strings.Split(raw, "\n")

	var header []string
	var rows []Row

	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := parseLine(line)
		if header == nil {
			header = fields
			continue
		}

		row := make(Row, len(header))
		for i, col := range header {
			if i < len(fields) {
				row[col] = fields[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows
}

// parseLine splits one line into fields, honoring double-quote enclosure:
// a comma inside quotes is not a separator, and a doubled quote inside a
// quoted value is an escaped literal quote. Unquoted values are trimmed.
func parseLine(line string) []string {
	var fields []string
	start := 0
	inQuotes := false

	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				fields = append(fields, cleanField(line[start:i]))
				start = i + 1
			}
		}
	}
	fields = append(fields, cleanField(line[start:]))

	return fields
}

// cleanField trims an unquoted value, or unwraps a quoted one and
// collapses escaped quotes. Whitespace inside quotes is preserved.
func cleanField(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
		s = strings.ReplaceAll(s, `""`, `"`)
	}
	return s
}
