package domain

import "strings"

// MaxResultLen is the largest result, in bytes, Repeat will build (1 GiB).
const MaxResultLen = 1 << 30

// Repeat returns text concatenated with itself times times, with no separator.
//
//	Repeat("ab", 3) // "ababab"
//	Repeat("ab", 0) // ""
//
// A negative count is rejected with a *ValidationError on field "times",
// as is a count whose result would exceed MaxResultLen bytes.
func Repeat(text string, times int) (string, error) {
	if times < 0 {
		return "", NewValidationErrorWithValue("times", "must not be negative", times)
	}

	if times == 0 || text == "" {
		return "", nil
	}

	if len(text) > MaxResultLen/times {
		return "", NewValidationErrorWithValue("times", "result length exceeds maximum", times)
	}

	return strings.Repeat(text, times), nil
}
