// Package diagnosis turns a signal measurement and an optional speed sample into a
// classified diagnosis, a composite quality score and recommendations. Everything in
// here is a pure function of its inputs; the wall-clock hour is passed in by callers.
package diagnosis

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	peakHourStart = 18
	peakHourEnd   = 23
)

func IsPeakHour(hour int) bool {
	return hour >= peakHourStart && hour <= peakHourEnd
}

type TechnicalExplanation struct {
	RSRP        string `json:"rsrp_explanation"`
	SINR        string `json:"sinr_explanation"`
	Distance    string `json:"distance_explanation"`
	Issue       string `json:"issue_diagnosis"`
	NetworkType string `json:"network_type_info"`
	Location    string `json:"location_impact"`
}

type Recommendations struct {
	Physical []string `json:"physical"`
	Network  []string `json:"network"`
	Usage    []string `json:"usage"`
}

type Result struct {
	NearestTower         *Tower               `json:"nearest_tower"`
	DistanceKm           *float64             `json:"distance_km"`
	DistanceCategory     DistanceCategory     `json:"distance_category"`
	RSRP                 Classification       `json:"rsrp"`
	SINR                 Classification       `json:"sinr"`
	IssueType            IssueType            `json:"issue_type"`
	Summary              []string             `json:"summary"`
	TechnicalExplanation TechnicalExplanation `json:"technical_explanation"`
	Recommendations      Recommendations      `json:"recommendations"`
	NetworkScore         float64              `json:"network_score"`
	ScoreBreakdown       ScoreBreakdown       `json:"score_breakdown"`
	ShortRecommendation  string               `json:"short_recommendation"`
}

type Engine struct {
	catalog Catalog
}

func NewEngine(catalog Catalog) *Engine {
	return &Engine{catalog: append(Catalog(nil), catalog...)}
}

// Catalog returns a copy of the towers the engine resolves against.
func (e *Engine) Catalog() Catalog {
	return append(Catalog(nil), e.catalog...)
}

// Diagnose validates the measurement and composes the full diagnosis. A speed
// sample that fails Valid is ignored rather than rejected.
func (e *Engine) Diagnose(m Measurement, speed *SpeedSample, hour int) (*Result, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if hour < 0 || hour > 23 {
		return nil, invalid("hour", "must be between 0 and 23, got %d", hour)
	}
	if speed != nil && !speed.Valid() {
		speed = nil
	}

	res := &Result{
		DistanceCategory: NoCoverageCategory,
		RSRP:             ClassifyRSRP(m.RSRP),
		SINR:             ClassifySINR(m.SINR),
	}

	if tower, dist, ok := e.catalog.Nearest(m.Latitude, m.Longitude, m.Operator); ok {
		res.NearestTower = &tower
		res.DistanceKm = &dist
		res.DistanceCategory = CategorizeDistance(dist)
	}

	download := downloadOf(speed)
	res.IssueType = DetectIssue(m.RSRP, m.SINR, download)
	res.Summary = summarize(m, res, speed, hour)
	res.TechnicalExplanation = explain(m, res)
	res.Recommendations = recommend(m, speed, hour)
	res.ScoreBreakdown = Breakdown(m.RSRP, m.SINR, download)
	res.NetworkScore = res.ScoreBreakdown.Overall
	res.ShortRecommendation = shortRecommendation(res.IssueType.Type, m.Place, speed)

	return res, nil
}

func formatMbps(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func summarize(m Measurement, res *Result, speed *SpeedSample, hour int) []string {
	summary := make([]string, 0, 8)

	if res.NearestTower != nil {
		summary = append(summary, fmt.Sprintf("📍 Distance to nearest tower (%s - %s): %.2f km",
			res.NearestTower.Name, m.Operator, *res.DistanceKm))
	} else {
		summary = append(summary, fmt.Sprintf("📍 No tower data available for %s", m.Operator))
	}
	summary = append(summary,
		fmt.Sprintf("%s %s", res.DistanceCategory.Emoji, res.DistanceCategory.Label),
		fmt.Sprintf("%s Signal strength (RSRP): %s", res.RSRP.Emoji, res.RSRP.Status),
		fmt.Sprintf("%s Signal quality (SINR): %s", res.SINR.Emoji, res.SINR.Status),
	)

	if speed != nil {
		summary = append(summary,
			fmt.Sprintf("⚡ Download speed: %s Mbps", formatMbps(speed.Download)),
			fmt.Sprintf("⬆️ Upload speed: %s Mbps", formatMbps(speed.Upload)),
			fmt.Sprintf("📡 Ping: %s ms", formatMbps(speed.Ping)),
		)
	}

	if IsPeakHour(hour) {
		summary = append(summary, "⏰ Warning: peak hours (18:00-23:00)")
	}

	return summary
}

func explain(m Measurement, res *Result) TechnicalExplanation {
	distance := "No tower data is available to estimate the distance."
	if res.DistanceKm != nil {
		distance = fmt.Sprintf("The tower is %.2f km away - %s.",
			*res.DistanceKm, strings.ToLower(res.DistanceCategory.Label))
	}

	return TechnicalExplanation{
		RSRP: fmt.Sprintf("RSRP measures signal strength. Your value of %d dBm means the signal is %s.",
			m.RSRP, strings.ToLower(res.RSRP.Status)),
		SINR: fmt.Sprintf("SINR measures signal cleanliness. Your value of %d dB means the quality is %s.",
			m.SINR, strings.ToLower(res.SINR.Status)),
		Distance:    distance,
		Issue:       res.IssueType.Explanation,
		NetworkType: fmt.Sprintf("%s network from %s.", m.NetworkType, m.Operator),
		Location:    fmt.Sprintf("Your location is %s in %s, %s.", strings.ToLower(string(m.Place)), m.City, m.Wilaya),
	}
}

func recommend(m Measurement, speed *SpeedSample, hour int) Recommendations {
	recs := Recommendations{Physical: []string{}, Network: []string{}, Usage: []string{}}

	if m.Place == PlaceIndoor && m.RSRP < -100 {
		recs.Physical = append(recs.Physical,
			"📍 Move closer to a window",
			"📍 Consider a signal repeater",
		)
	}

	if m.SINR < 5 {
		recs.Network = append(recs.Network,
			"📡 Try changing your position to reduce interference",
			"📡 Restart your phone",
		)
	}

	if IsPeakHour(hour) {
		recs.Usage = append(recs.Usage, "⏱ Avoid large downloads now (peak hours)")
	}
	recs.Usage = append(recs.Usage, "⏱ Close unused apps")
	if speed != nil && speed.Download < 1 {
		recs.Usage = append(recs.Usage, "📱 Very low speed - check your data plan")
	}

	return recs
}

func shortRecommendation(issue IssueKind, place Place, speed *SpeedSample) string {
	var rec string
	switch issue {
	case IssueCoverage:
		if place == PlaceIndoor {
			rec = "The signal is weak inside the building. Best fix: install a signal repeater or use WiFi Calling."
		} else {
			rec = "The signal is weak even outdoors. The area may be in a coverage hole."
		}
	case IssueInterference:
		rec = "The signal is strong but its quality is poor, which points to interference from other towers. Try another room to isolate the noise."
	case IssueCongestion:
		rec = "The signal is excellent but the speed is slow. The tower is congested with subscribers. Try again at another time."
	default:
		rec = "Values look good. If the internet is slow, the problem is most likely at the source (a saturated tower) rather than your coverage."
	}

	if speed == nil {
		return rec
	}

	var suffix string
	switch {
	case speed.Download < 1:
		suffix = "Download speed is very slow (<1 Mbps). Check your plan or contact your provider."
	case speed.Download < 5:
		suffix = "Download speed is limited (1-5 Mbps). Suitable for basic browsing only."
	case speed.Download < 20:
		suffix = "Download speed is good (5-20 Mbps). Suitable for HD video."
	default:
		suffix = "Download speed is excellent (>20 Mbps). You can stream in 4K."
	}
	return rec + " " + suffix
}
