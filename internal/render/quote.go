package render

import "strings"

// QuoteIdentifier wraps name in the given quote characters, doubling any
// embedded closing quote.
func QuoteIdentifier(name string, left, right byte) string {
	escaped := strings.ReplaceAll(name, string(right), string(right)+string(right))
	return string(left) + escaped + string(right)
}

// QuoteSegments quotes each segment and joins them with dots.
func QuoteSegments(segments []string, left, right byte) string {
	quoted := make([]string, len(segments))
	for i, seg := range segments {
		quoted[i] = QuoteIdentifier(seg, left, right)
	}
	return strings.Join(quoted, ".")
}

// QuoteStringANSI renders a standard SQL string literal: single quotes,
// embedded quotes doubled.
func QuoteStringANSI(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// QuoteStringBackslash renders a string literal for dialects that treat
// backslash as an escape character.
func QuoteStringBackslash(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)
	return "'" + r.Replace(s) + "'"
}
