package models

import (
	"time"

	"isharati.xyz/netdiag-service/pkg/diagnosis"
)

// DiagnosisRecord is one stored diagnosis. Records are only ever inserted and
// deleted, never updated.
type DiagnosisRecord struct {
	ID        string    `gorm:"primaryKey;size:16" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`

	Latitude    float64 `json:"lat"`
	Longitude   float64 `json:"lon"`
	RSRP        int     `json:"rsrp"`
	SINR        int     `json:"sinr"`
	NetworkType string  `json:"network_type"`
	Operator    string  `gorm:"index" json:"operator"`
	Place       string  `json:"place"`
	Wilaya      string  `json:"wilaya"`
	City        string  `json:"city"`

	SpeedData *diagnosis.SpeedSample `gorm:"serializer:json" json:"speed_data"`

	NetworkScore         float64                        `json:"network_score"`
	ScoreBreakdown       diagnosis.ScoreBreakdown       `gorm:"serializer:json" json:"score_breakdown"`
	IssueKind            diagnosis.IssueKind            `gorm:"index;size:20" json:"-"`
	IssueType            diagnosis.IssueType            `gorm:"serializer:json" json:"issue_type"`
	Summary              []string                       `gorm:"serializer:json" json:"summary"`
	TechnicalExplanation diagnosis.TechnicalExplanation `gorm:"serializer:json" json:"technical_explanation"`
	Recommendations      diagnosis.Recommendations      `gorm:"serializer:json" json:"recommendations"`
	ShortRecommendation  string                         `json:"short_recommendation"`
}

func NewDiagnosisRecord(id string, at time.Time, sub *Submission, res *diagnosis.Result) DiagnosisRecord {
	m := sub.Measurement
	return DiagnosisRecord{
		ID:        id,
		CreatedAt: at,
		Date:      at.Format(time.DateOnly),
		Time:      at.Format(time.TimeOnly),

		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		RSRP:        m.RSRP,
		SINR:        m.SINR,
		NetworkType: m.NetworkType,
		Operator:    string(m.Operator),
		Place:       string(m.Place),
		Wilaya:      m.Wilaya,
		City:        m.City,

		SpeedData: sub.Speed,

		NetworkScore:         res.NetworkScore,
		ScoreBreakdown:       res.ScoreBreakdown,
		IssueKind:            res.IssueType.Type,
		IssueType:            res.IssueType,
		Summary:              res.Summary,
		TechnicalExplanation: res.TechnicalExplanation,
		Recommendations:      res.Recommendations,
		ShortRecommendation:  res.ShortRecommendation,
	}
}

func (r *DiagnosisRecord) Measurement() diagnosis.Measurement {
	return diagnosis.Measurement{
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		RSRP:        r.RSRP,
		SINR:        r.SINR,
		NetworkType: r.NetworkType,
		Operator:    diagnosis.Operator(r.Operator),
		Place:       diagnosis.Place(r.Place),
		Wilaya:      r.Wilaya,
		City:        r.City,
	}
}

// Submission is a validated diagnosis request.
type Submission struct {
	Measurement diagnosis.Measurement
	Speed       *diagnosis.SpeedSample
}

type HistoryFilter struct {
	Operator  string
	IssueType diagnosis.IssueKind
	// Query matches wilaya or city, case-insensitively.
	Query string
	Limit int
}

type HistoryStats struct {
	Total             int     `json:"total"`
	MostUsedOperator  string  `json:"most_used_operator"`
	MostFrequentIssue string  `json:"most_frequent_issue"`
	AverageScore      float64 `json:"average_score"`
}
