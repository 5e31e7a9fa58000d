package utils

import "strings"

// Heuristic constants. Marker terms always win over the sugar/carb ratio,
// and the ratio bands are fixed; changing either changes every estimated
// record, so treat them as part of the data contract.
var (
	highGIMarkers = []string{"white rice", "white bread", "potato", "corn syrup"}
	lowGIMarkers  = []string{"quinoa", "oats", "beans", "lentils", "nuts"}
)

const (
	giMarkerHigh = 70
	giMarkerLow  = 35
	giRatioHigh  = 65 // sugar/carbs > 0.7
	giRatioMed   = 50 // 0.3 < ratio <= 0.7
	giRatioLow   = 40 // ratio <= 0.3
	giDefault    = 45 // no carbs to judge by
)

// EstimateGlycemicIndex derives a glycemic index for a recipe whose source
// did not supply one. Ingredient markers are checked first, then the
// sugar-to-carb ratio.
func EstimateGlycemicIndex(carbs, sugar int, ingredients []string) int {
	text := strings.ToLower(strings.Join(ingredients, " "))

	for _, marker := range highGIMarkers {
		if strings.Contains(text, marker) {
			return giMarkerHigh
		}
	}
	for _, marker := range lowGIMarkers {
		if strings.Contains(text, marker) {
			return giMarkerLow
		}
	}

	if carbs > 0 {
		ratio := float64(sugar) / float64(carbs)
		switch {
		case ratio > 0.7:
			return giRatioHigh
		case ratio > 0.3:
			return giRatioMed
		default:
			return giRatioLow
		}
	}
	return giDefault
}
