package booking

import "regexp"

// timePattern matches the exact fixed-width "YYYY-MM-DD HH:MM:SS" shape.
var timePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)

// ValidTimeFormat reports whether s is a well-formed new-time value.
// Both the confirm tool and the mock service reject before acting on a
// malformed time.
func ValidTimeFormat(s string) bool {
	return timePattern.MatchString(s)
}
