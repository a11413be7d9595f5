package lexicon

import "strings"

// Known cities, in preference order. The first entry is the delegation
// default when the user never mentioned a place.
var cities = []string{
	"bangalore", "delhi", "mumbai", "chennai",
	"hyderabad", "mangalagiri", "vijayawada",
}

// Cities priced in INR rather than USD.
var indianCities = map[string]bool{
	"bangalore": true, "bengaluru": true, "delhi": true, "mumbai": true,
	"chennai": true, "hyderabad": true, "vijayawada": true,
	"mangalagiri": true, "kolkata": true, "pune": true, "ahmedabad": true,
}

// MatchCity returns the first known city mentioned in text.
func MatchCity(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, city := range cities {
		if strings.Contains(lower, city) {
			return city, true
		}
	}
	return "", false
}

// IsKnownCity reports whether name is in the city table.
func IsKnownCity(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, city := range cities {
		if city == lower {
			return true
		}
	}
	return false
}

// DefaultCity is the assistant-chosen location under delegation.
func DefaultCity() string {
	return cities[0]
}

// IsIndianCity decides the currency zone for a location.
func IsIndianCity(name string) bool {
	return indianCities[strings.ToLower(strings.TrimSpace(name))]
}
