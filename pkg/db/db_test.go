package db

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"isharati.xyz/netdiag-service/pkg/common"
	"isharati.xyz/netdiag-service/pkg/diagnosis"
	"isharati.xyz/netdiag-service/pkg/models"
	_ "isharati.xyz/netdiag-service/pkg/testing"
)

func tableExists(db *gorm.DB, tableName string) bool {
	var count int64
	err := db.Raw(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name=?`, tableName,
	).Scan(&count).Error
	return err == nil && count > 0
}

func TestWithMemorySqlite(t *testing.T) {
	common.SetTestLoggerNop()

	instance := GetInstance(UseMemorySqliteDialector())
	if instance == nil {
		t.Fatal("Expected non-nil DB instance")
	}

	if !tableExists(instance.Conn, "diagnosis_records") {
		t.Errorf("Expected table %q to exist after migration", "diagnosis_records")
	}
}

func TestJSONColumnsRoundTrip(t *testing.T) {
	common.SetTestLoggerNop()

	instance := GetInstance(UseMemorySqliteDialector())
	require.NoError(t, instance.Conn.Where("1 = 1").Delete(&models.DiagnosisRecord{}).Error)

	speed := 12
	record := models.DiagnosisRecord{
		ID:        "dbtest01",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Operator:  "Djezzy",
		SpeedData: &diagnosis.SpeedSample{Download: 6, Upload: 2, Ping: 31},
		ScoreBreakdown: diagnosis.ScoreBreakdown{
			Overall: 64, Stars: 3, Coverage: 70, Quality: 60, Speed: &speed,
		},
		IssueKind: diagnosis.IssueNormal,
		IssueType: diagnosis.IssueTypeOf(diagnosis.IssueNormal),
		Summary:   []string{"first", "second"},
		Recommendations: diagnosis.Recommendations{
			Physical: []string{}, Network: []string{}, Usage: []string{"⏱ Close unused apps"},
		},
	}
	require.NoError(t, instance.Conn.Create(&record).Error)

	var loaded models.DiagnosisRecord
	require.NoError(t, instance.Conn.First(&loaded, "id = ?", "dbtest01").Error)

	assert.Equal(t, record.SpeedData, loaded.SpeedData)
	assert.Equal(t, record.ScoreBreakdown, loaded.ScoreBreakdown)
	assert.Equal(t, record.IssueType, loaded.IssueType)
	assert.Equal(t, record.Summary, loaded.Summary)
	assert.Equal(t, record.Recommendations, loaded.Recommendations)

	{
		// a record without a speed sample keeps a nil sample
		noSpeed := models.DiagnosisRecord{ID: "dbtest02", CreatedAt: time.Now(), Operator: "Mobilis"}
		require.NoError(t, instance.Conn.Create(&noSpeed).Error)

		var loaded models.DiagnosisRecord
		require.NoError(t, instance.Conn.First(&loaded, "id = ?", "dbtest02").Error)
		assert.Nil(t, loaded.SpeedData)
		assert.Nil(t, loaded.ScoreBreakdown.Speed)
	}
}

func TestSingletonConcurrency(t *testing.T) {
	common.SetTestLoggerNop()

	const goroutineCount = 20

	var wg sync.WaitGroup
	instances := make(chan *DB, goroutineCount)

	for range goroutineCount {
		wg.Add(1)
		go func() {
			defer wg.Done()
			instances <- GetInstance(UseMemorySqliteDialector())
		}()
	}

	wg.Wait()
	close(instances)

	var first *DB
	for inst := range instances {
		if first == nil {
			first = inst
			continue
		}
		if inst != first {
			t.Error("Expected all instances to be the same (singleton), but found different ones")
		}
	}
}
