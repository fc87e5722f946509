package installer

import "strings"

// characters that can't appear in a folder name on at least one
// platform we install to
const reservedChars = `/\:*?"<>|`

// SanitizeIdentity turns a raw extension name into something usable
// as a folder name. It's idempotent. An empty result means the name
// is unusable.
func SanitizeIdentity(raw string) string {
	s := strings.Map(func(r rune) rune {
		if strings.ContainsRune(reservedChars, r) {
			return -1
		}
		return r
	}, raw)
	return strings.TrimSpace(s)
}
