package diagnosis

import (
	"math"
	"strings"

	"isharati.xyz/netdiag-service/pkg/common"
)

const (
	rsrpWeightWithSpeed  = 0.4
	sinrWeightWithSpeed  = 0.4
	speedWeightWithSpeed = 0.2
	rsrpWeightNoSpeed    = 0.5
	sinrWeightNoSpeed    = 0.5

	// download at which the reported speed performance reaches 100
	speedReferenceMbps = 50.0
)

// Stars is a 1..5 rating. It marshals as a number.
type Stars int

func (s Stars) String() string {
	return strings.Repeat("⭐", int(s))
}

func SpeedSubScore(download float64) int {
	switch {
	case download > 20:
		return 100
	case download > 10:
		return 80
	case download > 5:
		return 60
	default:
		return 40
	}
}

// NetworkScore is the composite 0-100 score rounded to one decimal. The speed
// term only participates when a download measurement exists, which also shifts
// the signal weights from 50/50 to 40/40.
func NetworkScore(rsrp, sinr int, download *float64) float64 {
	rsrpScore := float64(ClassifyRSRP(rsrp).Score)
	sinrScore := float64(ClassifySINR(sinr).Score)

	var score float64
	if download != nil {
		score = rsrpScore*rsrpWeightWithSpeed +
			sinrScore*sinrWeightWithSpeed +
			float64(SpeedSubScore(*download))*speedWeightWithSpeed
	} else {
		score = rsrpScore*rsrpWeightNoSpeed + sinrScore*sinrWeightNoSpeed
	}
	return common.RoundTo(score, 1)
}

func StarRating(score float64) Stars {
	switch {
	case score >= 90:
		return 5
	case score >= 75:
		return 4
	case score >= 60:
		return 3
	case score >= 40:
		return 2
	default:
		return 1
	}
}

type ScoreBreakdown struct {
	Overall  float64 `json:"overall"`
	Stars    Stars   `json:"stars"`
	Coverage int     `json:"coverage"`
	Quality  int     `json:"quality"`
	Speed    *int    `json:"speed"`
}

// Breakdown derives every field from rsrp, sinr and the optional download alone.
func Breakdown(rsrp, sinr int, download *float64) ScoreBreakdown {
	overall := NetworkScore(rsrp, sinr, download)

	breakdown := ScoreBreakdown{
		Overall:  overall,
		Stars:    StarRating(overall),
		Coverage: ClassifyRSRP(rsrp).Score,
		Quality:  ClassifySINR(sinr).Score,
	}

	if download != nil {
		speed := int(math.Min(100, math.Round(*download/speedReferenceMbps*100)))
		breakdown.Speed = &speed
	}

	return breakdown
}
