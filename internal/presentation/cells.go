package presentation

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/wdgph/stdreg/internal/records"
)

// countPrinter groups digits the way English-locale readers expect.
// message.Printer is safe for concurrent use.
var countPrinter = message.NewPrinter(language.English)

// headerAcronyms are field-name parts rendered in full caps.
var headerAcronyms = map[string]string{
	"id":  "ID",
	"url": "URL",
	"uri": "URI",
	"api": "API",
	"iso": "ISO",
}

// FormatHeader converts a field name into a display header:
// "school_board_id" becomes "School Board ID".
func FormatHeader(field string) string {
	parts := strings.FieldsFunc(field, func(r rune) bool {
		return r == '_' || r == '-' || r == ' ' || r == '.'
	})
	if len(parts) == 0 {
		return field
	}

	// cases.Caser is stateful, so build one per call.
	caser := cases.Title(language.English)
	for i, p := range parts {
		if acronym, ok := headerAcronyms[strings.ToLower(p)]; ok {
			parts[i] = acronym
		} else {
			parts[i] = caser.String(p)
		}
	}
	return strings.Join(parts, " ")
}

// FormatCell renders a field value for table display. Null and missing
// values render as an em dash placeholder; plain decimal integers get
// digit grouping ("12345" becomes "12,345").
func FormatCell(v records.Value) string {
	if v.IsNull() {
		return "—"
	}
	if v.Kind() == records.KindNumber && isPlainInt(v.String()) {
		if n, ok := v.Int64(); ok {
			return countPrinter.Sprintf("%d", n)
		}
	}
	return v.String()
}

// FormatCount renders an integer with digit grouping.
func FormatCount(n int) string {
	return countPrinter.Sprintf("%d", n)
}

// TruncateCell shortens s to the given display width, appending an
// ellipsis. Width is measured in terminal columns, so CJK text truncates
// correctly.
func TruncateCell(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// isPlainInt reports whether the lexeme is a plain decimal integer whose
// digits can be regrouped without changing meaning. Hex, leading zeros
// ("007"), and separators ("1_000") keep their source form.
func isPlainInt(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	if len(s) > 1 && s[0] == '0' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
