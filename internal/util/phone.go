package util

import "strings"

// CleanPhone strips everything that is not a decimal digit. No country-code
// handling and no length validation; a value with no digits becomes nil.
func CleanPhone(raw string) *string {
	out := strings.Builder{}
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			out.WriteRune(r)
		}
	}
	if out.Len() == 0 {
		return nil
	}
	return StringPtr(out.String())
}
