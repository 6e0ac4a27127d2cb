package netdiag

import (
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"isharati.xyz/netdiag-service/pkg/common"
	"isharati.xyz/netdiag-service/pkg/events"
	"isharati.xyz/netdiag-service/pkg/models"
)

var ErrRecordNotFound = errors.New("diagnosis record not found")

const statsEmptyValue = "N/A"

func (n *NetDiag) appendRecord(rec *models.DiagnosisRecord) error {
	n.historyMu.Lock()
	defer n.historyMu.Unlock()

	if err := n.Db.Conn.Create(rec).Error; err != nil {
		return err
	}

	common.GetCoreLogger(common.LoggerCategoryHistory).Info("Stored diagnosis", zap.String("id", rec.ID))
	return nil
}

func (n *NetDiag) listRecords(filter models.HistoryFilter) ([]models.DiagnosisRecord, error) {
	q := n.Db.Conn.Model(&models.DiagnosisRecord{})

	if op := strings.TrimSpace(filter.Operator); op != "" {
		q = q.Where("operator = ?", op)
	}
	if filter.IssueType != "" {
		q = q.Where("issue_kind = ?", filter.IssueType)
	}
	if text := strings.TrimSpace(filter.Query); text != "" {
		like := "%" + strings.ToLower(text) + "%"
		q = q.Where("(LOWER(wilaya) LIKE ? OR LOWER(city) LIKE ?)", like, like)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	records := []models.DiagnosisRecord{}
	err := q.Order("created_at desc").Find(&records).Error
	return records, err
}

func (n *NetDiag) getRecord(id string) (*models.DiagnosisRecord, error) {
	var rec models.DiagnosisRecord
	err := n.Db.Conn.First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// deleteWhere runs a delete under the history lock and reports the removed rows.
func (n *NetDiag) deleteWhere(query any, args ...any) (int64, error) {
	n.historyMu.Lock()
	defer n.historyMu.Unlock()

	tx := n.Db.Conn.Where(query, args...).Delete(&models.DiagnosisRecord{})
	return tx.RowsAffected, tx.Error
}

// deleteRecord succeeds for unknown ids; only an actual removal is announced.
func (n *NetDiag) deleteRecord(id string) error {
	removed, err := n.deleteWhere("id = ?", id)
	if err != nil {
		return err
	}

	if removed == 0 {
		return nil
	}

	common.GetCoreLogger(common.LoggerCategoryHistory).Info("Deleted diagnosis", zap.String("id", id))
	n.Metrics.AddHistoryDeletes(removed)
	n.publish(events.Event{Kind: events.KindDiagnosisDeleted, RecordID: id, At: n.clock().Now()})
	return nil
}

func (n *NetDiag) clearRecords() error {
	removed, err := n.deleteWhere("1 = 1")
	if err != nil {
		return err
	}

	common.GetCoreLogger(common.LoggerCategoryHistory).Info("Cleared history", zap.Int64("removed", removed))
	n.Metrics.AddHistoryDeletes(removed)
	n.publish(events.Event{Kind: events.KindHistoryCleared, At: n.clock().Now()})
	return nil
}

type tally struct {
	counts map[string]int
	// order holds keys by their most recent occurrence.
	order []string
}

func newTally() *tally {
	return &tally{counts: map[string]int{}}
}

func (t *tally) add(key string) {
	if _, seen := t.counts[key]; !seen {
		t.order = append(t.order, key)
	}
	t.counts[key]++
}

// top returns the most frequent key; ties go to the most recently seen one.
func (t *tally) top() string {
	best, bestCount := statsEmptyValue, 0
	for _, key := range t.order {
		if t.counts[key] > bestCount {
			best, bestCount = key, t.counts[key]
		}
	}
	return best
}

func (n *NetDiag) stats() (*models.HistoryStats, error) {
	var records []models.DiagnosisRecord
	err := n.Db.Conn.
		Select("id", "operator", "issue_kind", "network_score", "created_at").
		Order("created_at desc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	stats := &models.HistoryStats{
		Total:             len(records),
		MostUsedOperator:  statsEmptyValue,
		MostFrequentIssue: statsEmptyValue,
	}
	if len(records) == 0 {
		return stats, nil
	}

	operators, issues := newTally(), newTally()
	sum := common.Reducer(records, func(acc float64, r models.DiagnosisRecord) float64 {
		operators.add(r.Operator)
		issues.add(string(r.IssueKind))
		return acc + r.NetworkScore
	}, 0.0)

	stats.MostUsedOperator = operators.top()
	stats.MostFrequentIssue = issues.top()
	stats.AverageScore = common.RoundTo(sum/float64(len(records)), 1)
	return stats, nil
}

type IHistoryImpl struct {
	netdiag *NetDiag
}

func (ih *IHistoryImpl) Append(rec *models.DiagnosisRecord) error {
	return ih.netdiag.appendRecord(rec)
}

func (ih *IHistoryImpl) List(filter models.HistoryFilter) ([]models.DiagnosisRecord, error) {
	return ih.netdiag.listRecords(filter)
}

func (ih *IHistoryImpl) Get(id string) (*models.DiagnosisRecord, error) {
	return ih.netdiag.getRecord(id)
}

func (ih *IHistoryImpl) Delete(id string) error {
	return ih.netdiag.deleteRecord(id)
}

func (ih *IHistoryImpl) Clear() error {
	return ih.netdiag.clearRecords()
}

func (ih *IHistoryImpl) Stats() (*models.HistoryStats, error) {
	return ih.netdiag.stats()
}

func (n *NetDiag) GetIHistory() IHistory {
	return &IHistoryImpl{netdiag: n}
}
