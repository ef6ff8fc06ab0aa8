package utils

import "strings"

// UTF8BOM leads every CSV download so spreadsheet applications pick up the
// encoding (the rate headers carry the ₹ symbol).
const UTF8BOM = "\xEF\xBB\xBF"

// CSVField quotes one field. Every field is quoted regardless of content and
// internal double quotes are doubled.
func CSVField(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

// BuildCSV renders rows as CSV download content: BOM, every field quoted,
// CRLF line endings.
func BuildCSV(rows [][]string) string {
	var b strings.Builder
	b.WriteString(UTF8BOM)
	for _, row := range rows {
		quoted := make([]string, len(row))
		for i, field := range row {
			quoted[i] = CSVField(field)
		}
		b.WriteString(strings.Join(quoted, ","))
		b.WriteString("\r\n")
	}
	return b.String()
}
