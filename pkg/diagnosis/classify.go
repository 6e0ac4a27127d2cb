package diagnosis

type Rating string

const (
	RatingExcellent  Rating = "excellent"
	RatingVeryGood   Rating = "very_good"
	RatingGood       Rating = "good"
	RatingFair       Rating = "fair"
	RatingAcceptable Rating = "acceptable"
	RatingPoor       Rating = "poor"
)

type Classification struct {
	Status string `json:"status"`
	Rating Rating `json:"rating"`
	Emoji  string `json:"emoji"`
	Score  int    `json:"score"`
}

// ClassifyRSRP bands signal strength in dBm. Thresholds are exclusive.
func ClassifyRSRP(rsrp int) Classification {
	switch {
	case rsrp > -80:
		return Classification{Status: "Excellent", Rating: RatingExcellent, Emoji: "✅", Score: 100}
	case rsrp > -90:
		return Classification{Status: "Very good", Rating: RatingVeryGood, Emoji: "✅", Score: 85}
	case rsrp > -100:
		return Classification{Status: "Good", Rating: RatingGood, Emoji: "⚠️", Score: 70}
	case rsrp > -110:
		return Classification{Status: "Fair", Rating: RatingFair, Emoji: "⚠️", Score: 50}
	default:
		return Classification{Status: "Very weak", Rating: RatingPoor, Emoji: "❌", Score: 20}
	}
}

// ClassifySINR bands signal cleanliness in dB. Thresholds are exclusive.
func ClassifySINR(sinr int) Classification {
	switch {
	case sinr > 20:
		return Classification{Status: "Excellent (high speed)", Rating: RatingExcellent, Emoji: "📶", Score: 100}
	case sinr > 13:
		return Classification{Status: "Very good", Rating: RatingVeryGood, Emoji: "📶", Score: 85}
	case sinr > 0:
		return Classification{Status: "Acceptable", Rating: RatingAcceptable, Emoji: "📶", Score: 60}
	default:
		return Classification{Status: "Poor (high interference)", Rating: RatingPoor, Emoji: "🚫", Score: 20}
	}
}
