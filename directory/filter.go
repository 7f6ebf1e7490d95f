package directory

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DeriveFilteredView returns the records whose name contains the trimmed query,
// ignoring case, in their original order. A blank query returns records itself.
// The result is never nil.
func DeriveFilteredView(records []UserRecord, query string) []UserRecord {
	needle := strings.TrimSpace(query)
	if needle == "" {
		if records == nil {
			return []UserRecord{}
		}
		return records
	}

	// A Caser carries state between calls and is not shared across goroutines.
	lower := cases.Lower(language.Und)
	needle = lower.String(needle)

	out := make([]UserRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(lower.String(r.Name), needle) {
			out = append(out, r)
		}
	}
	return out
}
