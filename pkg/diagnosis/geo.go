package diagnosis

import "math"

const EarthRadiusKm = 6371.0

// DistanceKm is the haversine great-circle distance between two points given in degrees.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*math.Pow(math.Sin(dLon/2), 2)
	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

type DistanceBand string

const (
	DistanceVeryNear DistanceBand = "very_near"
	DistanceNear     DistanceBand = "near"
	DistanceMedium   DistanceBand = "medium"
	DistanceFar      DistanceBand = "far"
	DistanceVeryFar  DistanceBand = "very_far"
	DistanceUnknown  DistanceBand = "unknown"
)

type DistanceCategory struct {
	Band  DistanceBand `json:"band"`
	Label string       `json:"label"`
	Emoji string       `json:"emoji"`
}

// NoCoverageCategory stands in for a distance band when no tower is known.
var NoCoverageCategory = DistanceCategory{Band: DistanceUnknown, Label: "No coverage data", Emoji: "❔"}

var distanceBands = []struct {
	below    float64
	category DistanceCategory
}{
	{0.5, DistanceCategory{Band: DistanceVeryNear, Label: "Very near the tower", Emoji: "✅"}},
	{2, DistanceCategory{Band: DistanceNear, Label: "Near the tower", Emoji: "✅"}},
	{5, DistanceCategory{Band: DistanceMedium, Label: "Medium distance from the tower", Emoji: "⚠️"}},
	{10, DistanceCategory{Band: DistanceFar, Label: "Far from the tower", Emoji: "⚠️"}},
}

var veryFarCategory = DistanceCategory{Band: DistanceVeryFar, Label: "Very far from the tower", Emoji: "❌"}

func CategorizeDistance(km float64) DistanceCategory {
	for _, b := range distanceBands {
		if km < b.below {
			return b.category
		}
	}
	return veryFarCategory
}
