package netdiag

import (
	"math"

	z "github.com/Oudwins/zog"

	"isharati.xyz/netdiag-service/pkg/diagnosis"
	"isharati.xyz/netdiag-service/pkg/models"
)

type SpeedRequest struct {
	Download float64 `json:"download" zog:"download"`
	Upload   float64 `json:"upload" zog:"upload"`
	Ping     float64 `json:"ping" zog:"ping"`
}

// DiagnosisRequest is the wire shape shared by the HTTP and gRPC transports.
// Numeric fields are pointers so that a missing value is told apart from zero.
type DiagnosisRequest struct {
	Latitude    *float64      `json:"lat" zog:"lat"`
	Longitude   *float64      `json:"lon" zog:"lon"`
	RSRP        *float64      `json:"rsrp" zog:"rsrp"`
	SINR        *float64      `json:"sinr" zog:"sinr"`
	NetworkType string        `json:"network_type" zog:"network_type"`
	Operator    string        `json:"operator" zog:"operator"`
	Place       string        `json:"place" zog:"place"`
	Wilaya      string        `json:"wilaya" zog:"wilaya"`
	City        string        `json:"city" zog:"city"`
	SpeedData   *SpeedRequest `json:"speed_data" zog:"speed_data"`
}

var speedRequestSchema = z.Struct(z.Shape{
	"Download": z.Float64().Required(),
	"Upload":   z.Float64().Required(),
	"Ping":     z.Float64().Required(),
})

// wholeNumber rejects fractional dBm/dB readings instead of truncating them.
func wholeNumber() *z.NumberSchema[float64] {
	return z.Float64().TestFunc(func(val *float64, ctx z.Ctx) bool {
		return *val == math.Trunc(*val)
	}, z.Message("must be a whole number"))
}

var DiagnosisRequestSchema = z.Struct(z.Shape{
	"Latitude":    z.Ptr(z.Float64().GTE(-90).LTE(90)).NotNil(),
	"Longitude":   z.Ptr(z.Float64().GTE(-180).LTE(180)).NotNil(),
	"RSRP":        z.Ptr(wholeNumber()).NotNil(),
	"SINR":        z.Ptr(wholeNumber()).NotNil(),
	"NetworkType": z.String().Trim().Required(),
	"Operator":    z.String().Trim().Required(),
	"Place":       z.String().Trim().OneOf([]string{string(diagnosis.PlaceIndoor), string(diagnosis.PlaceOutdoor)}).Required(),
	"Wilaya":      z.String().Trim(),
	"City":        z.String().Trim(),
	"SpeedData":   z.Ptr(speedRequestSchema),
})

func (r *DiagnosisRequest) ToSubmission() *models.Submission {
	sub := &models.Submission{
		Measurement: diagnosis.Measurement{
			NetworkType: r.NetworkType,
			Operator:    diagnosis.Operator(r.Operator),
			Place:       diagnosis.Place(r.Place),
			Wilaya:      r.Wilaya,
			City:        r.City,
		},
	}
	if r.Latitude != nil {
		sub.Measurement.Latitude = *r.Latitude
	}
	if r.Longitude != nil {
		sub.Measurement.Longitude = *r.Longitude
	}
	if r.RSRP != nil {
		sub.Measurement.RSRP = int(*r.RSRP)
	}
	if r.SINR != nil {
		sub.Measurement.SINR = int(*r.SINR)
	}
	if r.SpeedData != nil {
		sub.Speed = &diagnosis.SpeedSample{
			Download: r.SpeedData.Download,
			Upload:   r.SpeedData.Upload,
			Ping:     r.SpeedData.Ping,
		}
	}
	return sub
}

// ParseDiagnosisRequest validates a decoded map, as produced from a
// google.protobuf.Struct, into a submission.
func ParseDiagnosisRequest(data map[string]any) (*models.Submission, z.ZogIssueMap) {
	var req DiagnosisRequest
	if errs := DiagnosisRequestSchema.Parse(data, &req); errs != nil {
		return nil, errs
	}
	return req.ToSubmission(), nil
}

const MaxHistoryLimit = 500

// HistoryQuery is the wire shape of a history listing filter.
type HistoryQuery struct {
	Operator  string `json:"operator" zog:"operator"`
	IssueType string `json:"issue_type" zog:"issue_type"`
	Query     string `json:"q" zog:"q"`
	Limit     int    `json:"limit" zog:"limit"`
}

var HistoryQuerySchema = z.Struct(z.Shape{
	"Operator": z.String().Trim(),
	"IssueType": z.String().Trim().OneOf([]string{
		"",
		string(diagnosis.IssueInterference),
		string(diagnosis.IssueCoverage),
		string(diagnosis.IssueCongestion),
		string(diagnosis.IssueNormal),
	}),
	"Query": z.String().Trim(),
	"Limit": z.Int().GTE(0).LTE(MaxHistoryLimit),
})

func (q *HistoryQuery) ToFilter() models.HistoryFilter {
	return models.HistoryFilter{
		Operator:  q.Operator,
		IssueType: diagnosis.IssueKind(q.IssueType),
		Query:     q.Query,
		Limit:     q.Limit,
	}
}
