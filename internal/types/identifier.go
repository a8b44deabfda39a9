package types

import "strings"

// IsValidColumn reports whether s is one or more dot-separated SQL
// identifiers: a letter or underscore followed by letters, digits or
// underscores.
func IsValidColumn(s string) bool {
	if s == "" {
		return false
	}
	for _, seg := range strings.Split(s, ".") {
		if !isIdentifier(seg) {
			return false
		}
	}
	return true
}

// IsValidPath reports whether s is one or more dot-separated path segments
// as used by warehouse project, dataset and table ids. Segments may contain
// hyphens (project ids such as "bigquery-public-data") but may not start
// with one.
func IsValidPath(s string) bool {
	if s == "" {
		return false
	}
	for _, seg := range strings.Split(s, ".") {
		if !isPathSegment(seg) {
			return false
		}
	}
	return true
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	first := s[0]
	if !isLetter(first) && first != '_' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isLetter(s[i]) && !isDigit(s[i]) && s[i] != '_' {
			return false
		}
	}
	return true
}

func isPathSegment(s string) bool {
	if s == "" || s[0] == '-' {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if !isLetter(ch) && !isDigit(ch) && ch != '_' && ch != '-' {
			return false
		}
	}
	// "--" would open a line comment in most dialects.
	return !strings.Contains(s, "--")
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
