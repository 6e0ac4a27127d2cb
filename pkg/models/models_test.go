package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isharati.xyz/netdiag-service/pkg/diagnosis"
)

func TestNewDiagnosisRecord(t *testing.T) {
	sub := &Submission{
		Measurement: diagnosis.Measurement{
			Latitude:    36.75,
			Longitude:   3.05,
			RSRP:        -85,
			SINR:        15,
			NetworkType: "4G",
			Operator:    diagnosis.OperatorMobilis,
			Place:       diagnosis.PlaceIndoor,
			Wilaya:      "Boumerdes",
			City:        "Thenia",
		},
		Speed: &diagnosis.SpeedSample{Download: 3, Upload: 1, Ping: 40},
	}

	res, err := diagnosis.NewEngine(diagnosis.DefaultCatalog()).Diagnose(sub.Measurement, sub.Speed, 14)
	require.NoError(t, err)

	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	record := NewDiagnosisRecord("a1b2c3d4", at, sub, res)

	assert.Equal(t, "a1b2c3d4", record.ID)
	assert.Equal(t, "2026-03-14", record.Date)
	assert.Equal(t, "09:26:53", record.Time)
	assert.Equal(t, diagnosis.IssueCongestion, record.IssueKind)
	assert.Equal(t, sub.Measurement, record.Measurement())

	// the breakdown is reproducible from the stored inputs alone
	download := record.SpeedData.Download
	assert.Equal(t, diagnosis.Breakdown(record.RSRP, record.SINR, &download), record.ScoreBreakdown)

	data, err := json.Marshal(record)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Mobilis", decoded["operator"])
	assert.Equal(t, 76.0, decoded["network_score"])
	assert.NotContains(t, decoded, "IssueKind")
}
