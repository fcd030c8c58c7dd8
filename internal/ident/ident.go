// Package ident converts Go identifiers between naming conventions.
package ident

import "strings"

// Snake converts a PascalCase or camelCase identifier to snake_case.
//
// Acronym runs keep their grouping: "HTTPServer" becomes "http_server"
// rather than "h_t_t_p_server", and a trailing acronym stays attached,
// so "LifeFSM" becomes "life_fsm".
func Snake(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	runes := []rune(s)
	for i, r := range runes {
		if isUpper(r) {
			prevIsLower := i > 0 && isLower(runes[i-1])
			nextIsLower := i+1 < len(runes) && isLower(runes[i+1])

			// A boundary opens before an uppercase rune when the previous
			// rune was lowercase (camelCase step) or when an uppercase run
			// ends because the next rune is lowercase (acronym step).
			if i > 0 && (prevIsLower || nextIsLower) {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isUpper(r rune) bool { return 'A' <= r && r <= 'Z' }
func isLower(r rune) bool { return 'a' <= r && r <= 'z' }
