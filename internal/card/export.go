package card

import (
	"strings"
	"time"
)

const defaultFileStem = "english-name"

// FileName derives the download name: the primary name lower-cased with
// everything outside [a-z0-9_-] removed, then "-YYYY-MM-DD.png".
func FileName(primaryName string, now time.Time) string {
	stem := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return -1
		}
	}, strings.ToLower(primaryName))

	if stem == "" {
		stem = defaultFileStem
	}
	return stem + "-" + now.Format(time.DateOnly) + ".png"
}
