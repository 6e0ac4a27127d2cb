package netdiag

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"isharati.xyz/netdiag-service/pkg/db"
	"isharati.xyz/netdiag-service/pkg/diagnosis"
	eventmocks "isharati.xyz/netdiag-service/pkg/events/mocks"
	"isharati.xyz/netdiag-service/pkg/models"
	"isharati.xyz/netdiag-service/pkg/netdiag/mocks"
)

// stepClock advances one minute on every reading.
type stepClock struct {
	mu   sync.Mutex
	next time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.next
	c.next = c.next.Add(time.Minute)
	return now
}

func GetMockNetDiagWithMemorySqliteDialector(t *testing.T, useMockIDiagnosis, useMockIHistory bool) (
	*gomock.Controller,
	*NetDiag,
	*mocks.MockIDiagnosis,
	*mocks.MockIHistory,
	*eventmocks.MockPublisher,
) {
	ctrl := gomock.NewController(t)

	mockIDiagnosis := mocks.NewMockIDiagnosis(ctrl)
	mockIHistory := mocks.NewMockIHistory(ctrl)
	mockPublisher := eventmocks.NewMockPublisher(ctrl)

	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	require.NoError(t, dbInstance.Conn.Where("1 = 1").Delete(&models.DiagnosisRecord{}).Error)

	nd := &NetDiag{
		Db:        *dbInstance,
		Engine:    diagnosis.NewEngine(diagnosis.DefaultCatalog()),
		Clock:     FixedClock{At: time.Date(2026, 5, 4, 14, 0, 0, 0, time.UTC)},
		Publisher: mockPublisher,
	}

	diagnosisService := nd.GetIDiagnosis()
	if useMockIDiagnosis {
		diagnosisService = mockIDiagnosis
	}

	historyService := nd.GetIHistory()
	if useMockIHistory {
		historyService = mockIHistory
	}

	nd.WithServices(ServiceOpts{
		Diagnosis: diagnosisService,
		History:   historyService,
	})

	return ctrl, nd, mockIDiagnosis, mockIHistory, mockPublisher
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

func sampleSubmission() *models.Submission {
	return &models.Submission{
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
	}
}
