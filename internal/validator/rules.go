package validator

import (
	"strings"
	"unicode/utf8"

	"github.com/nyaruka/phonenumbers"
)

// NotBlank returns true if a string is not empty or contains only whitespace.
func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

// MaxRunes returns true if a string is less than or equal to a maximum number of n
func MaxRunes(value string, n int) bool {
	return utf8.RuneCountInString(value) <= n
}

// ISO 3166-1 alpha-2 codes with no phone numbering plan of their own.
var undialledRegions = map[string]struct{}{
	"AQ": {}, // Antarctica
	"BV": {}, // Bouvet Island
	"GS": {}, // South Georgia and the South Sandwich Islands
	"HM": {}, // Heard Island and McDonald Islands
	"TF": {}, // French Southern Territories
	"UM": {}, // United States Minor Outlying Islands
}

// IsCountryCode returns true if value is an upper-case ISO 3166-1 alpha-2 code.
// Regions are resolved through the phone numbering plan tables, plus the few
// assigned codes those tables do not carry.
func IsCountryCode(value string) bool {
	if len(value) != 2 || value != strings.ToUpper(value) {
		return false
	}
	if _, ok := undialledRegions[value]; ok {
		return true
	}
	return phonenumbers.GetCountryCodeForRegion(value) != 0
}
