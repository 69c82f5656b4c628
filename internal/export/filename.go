package export

import (
	"strings"
	"time"
	"unicode"
)

// Slug lower-cases title and collapses every run of characters that are not
// ASCII letters or digits into a single hyphen, trimming hyphens at both
// ends. An empty result becomes "chart".
func Slug(title string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(title) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	if b.Len() == 0 {
		return "chart"
	}
	return b.String()
}

// Filename builds "<slug>_<YYYYMMDD>.<ext>" using the UTC date of at.
func Filename(title string, f Format, at time.Time) string {
	return Slug(title) + "_" + at.UTC().Format("20060102") + "." + string(f)
}
