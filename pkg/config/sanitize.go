package config

import "strings"

// SanitizeServiceName repairs a free-text service name into the allowed
// character set: ASCII letters, digits, space, underscore and dash. Dots
// become underscores, as does every other forbidden character. The result
// always satisfies the charset invariant; sanitization never rejects.
func SanitizeServiceName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if allowedServiceNameRune(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	return b.String()
}

func allowedServiceNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == ' ' || r == '_' || r == '-':
		return true
	}
	return false
}
