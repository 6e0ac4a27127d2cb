package netdiag

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"isharati.xyz/netdiag-service/pkg/common"
	"isharati.xyz/netdiag-service/pkg/diagnosis"
	"isharati.xyz/netdiag-service/pkg/events"
	"isharati.xyz/netdiag-service/pkg/models"
)

const recordIDLength = 8

func newRecordID() string {
	return uuid.NewString()[:recordIDLength]
}

// sanitize clamps the speed sample and leaves the caller's submission untouched.
func sanitize(sub *models.Submission) (*models.Submission, error) {
	if sub == nil {
		return nil, fmt.Errorf("%w: empty submission", diagnosis.ErrInvalidInput)
	}
	return &models.Submission{
		Measurement: sub.Measurement,
		Speed:       diagnosis.SanitizeSpeed(sub.Speed),
	}, nil
}

func (n *NetDiag) preview(sub *models.Submission) (*diagnosis.Result, error) {
	clean, err := sanitize(sub)
	if err != nil {
		return nil, err
	}
	return n.engine().Diagnose(clean.Measurement, clean.Speed, n.clock().Now().Hour())
}

func (n *NetDiag) submit(sub *models.Submission) (*models.DiagnosisRecord, error) {
	logger := common.GetCoreLogger(common.LoggerCategoryDiagnosis)

	clean, err := sanitize(sub)
	if err != nil {
		return nil, err
	}

	now := n.clock().Now()
	res, err := n.engine().Diagnose(clean.Measurement, clean.Speed, now.Hour())
	if err != nil {
		logger.Info("Rejected measurement", zap.Error(err))
		return nil, err
	}

	if n.History == nil {
		return nil, errors.New("history service not available")
	}

	rec := models.NewDiagnosisRecord(newRecordID(), now, clean, res)

	logger.Info("Diagnosed measurement",
		zap.String("id", rec.ID),
		zap.String("operator", rec.Operator),
		zap.String("issue_type", string(rec.IssueKind)),
		zap.Float64("network_score", rec.NetworkScore),
	)

	if err := n.History.Append(&rec); err != nil {
		return nil, err
	}

	n.Metrics.ObserveDiagnosis(string(rec.IssueKind), rec.NetworkScore)
	n.publish(events.Event{
		Kind:     events.KindDiagnosisCreated,
		RecordID: rec.ID,
		Record:   &rec,
		At:       now,
	})

	return &rec, nil
}

type IDiagnosisImpl struct {
	netdiag *NetDiag
}

func (id *IDiagnosisImpl) Submit(sub *models.Submission) (*models.DiagnosisRecord, error) {
	return id.netdiag.submit(sub)
}

func (id *IDiagnosisImpl) Preview(sub *models.Submission) (*diagnosis.Result, error) {
	return id.netdiag.preview(sub)
}

func (n *NetDiag) GetIDiagnosis() IDiagnosis {
	return &IDiagnosisImpl{netdiag: n}
}
