package utils

import "time"

// DefaultAge is used when a date of birth is absent or unparseable. This is
// deliberate policy inherited from the document schema contract, not an
// error signal.
const DefaultAge = 30

var dobLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
}

// CalculateAge returns whole completed years between dob and ref, applying
// the has-the-birthday-occurred-yet rule. Unparseable input yields DefaultAge.
func CalculateAge(dob string, ref time.Time) int {
	if dob == "" {
		return DefaultAge
	}

	var born time.Time
	parsed := false
	for _, layout := range dobLayouts {
		if t, err := time.Parse(layout, dob); err == nil {
			born = t
			parsed = true
			break
		}
	}
	if !parsed {
		return DefaultAge
	}

	age := ref.Year() - born.Year()
	if ref.Month() < born.Month() || (ref.Month() == born.Month() && ref.Day() < born.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
