package labels

import (
	"strings"
	"time"
	"unicode"

	"labelsheet/internal/config"
)

// unsafeFileNameChars cannot appear in a file name on at least one common platform
const unsafeFileNameChars = `/\:*?"<>|`

// FileName derives the document name from the team and date:
// athletes_<team>_<YYYY-MM-DD>.pdf, where each whitespace run in the team
// becomes one underscore and each path separator or other character that is
// unsafe in a file name becomes an underscore of its own.
func FileName(team string, date time.Time) string {
	return "athletes_" + sanitizeTeam(team) + "_" + date.Format(config.FileNameDateFormat) + ".pdf"
}

func sanitizeTeam(s string) string {
	var b strings.Builder
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) || r == '\uFEFF' {
			if !inSpace {
				b.WriteByte('_')
			}
			inSpace = true
			continue
		}
		inSpace = false
		if unicode.IsControl(r) || strings.ContainsRune(unsafeFileNameChars, r) {
			b.WriteByte('_')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
