package parser

import (
	"strconv"
	"strings"
)

func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, "_", ""), 64)
}

// DecodeString resolves the escapes of a raw string token.
func DecodeString(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '\\' || i+1 >= len(runes) {
			b.WriteRune(runes[i])
			continue
		}
		// Unicode escape: \u{XXXX}
		if runes[i+1] == 'u' && i+2 < len(runes) && runes[i+2] == '{' {
			end := i + 3
			for end < len(runes) && runes[end] != '}' {
				end++
			}
			if end < len(runes) {
				if cp, err := strconv.ParseUint(string(runes[i+3:end]), 16, 32); err == nil {
					b.WriteRune(rune(cp))
					i = end
					continue
				}
			}
		}
		switch runes[i+1] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case '\'':
			b.WriteByte('\'')
		case '0':
			b.WriteByte(0)
		default:
			b.WriteRune(runes[i])
			continue
		}
		i++
	}
	return b.String()
}
