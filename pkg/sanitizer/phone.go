package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var supportedRegions = []string{
	"US",
	"GB",
}

// NormalizePhone converts a phone number to E.164. Numbers that already
// carry a country prefix parse against any region; local numbers are tried
// against the supported regions in order. Unparseable input is returned
// trimmed so validation can reject it with a field error instead of
// silently dropping it.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)

	if phone == "" {
		return ""
	}

	for _, region := range supportedRegions {
		parsed, err := phonenumbers.Parse(phone, region)
		if err == nil && phonenumbers.IsValidNumber(parsed) {
			return phonenumbers.Format(parsed, phonenumbers.E164)
		}
	}
	return phone
}
