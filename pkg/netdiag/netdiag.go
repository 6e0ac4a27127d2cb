// Package netdiag is the service layer around the diagnosis engine: it stamps
// submissions with the injected clock, persists them in the history store and
// announces history changes to the configured publisher.
package netdiag

import (
	"sync"

	"isharati.xyz/netdiag-service/pkg/db"
	"isharati.xyz/netdiag-service/pkg/diagnosis"
	"isharati.xyz/netdiag-service/pkg/events"
	"isharati.xyz/netdiag-service/pkg/metrics"
	"isharati.xyz/netdiag-service/pkg/models"
)

type IDiagnosis interface {
	Submit(sub *models.Submission) (*models.DiagnosisRecord, error)
	Preview(sub *models.Submission) (*diagnosis.Result, error)
}

type IHistory interface {
	Append(rec *models.DiagnosisRecord) error
	List(filter models.HistoryFilter) ([]models.DiagnosisRecord, error)
	Get(id string) (*models.DiagnosisRecord, error)
	Delete(id string) error
	Clear() error
	Stats() (*models.HistoryStats, error)
}

type NetDiag struct {
	Db        db.DB
	Engine    *diagnosis.Engine
	Clock     Clock
	Publisher events.Publisher
	Metrics   *metrics.Metrics

	Diagnosis IDiagnosis
	History   IHistory

	historyMu sync.Mutex
}

type ServiceOpts struct {
	Diagnosis IDiagnosis
	History   IHistory
}

func (n *NetDiag) WithServices(opts ServiceOpts) *NetDiag {
	if opts.Diagnosis != nil {
		n.Diagnosis = opts.Diagnosis
	}
	if opts.History != nil {
		n.History = opts.History
	}
	return n
}

// WithDefaultServices wires the gorm backed implementations.
func (n *NetDiag) WithDefaultServices() *NetDiag {
	return n.WithServices(ServiceOpts{
		Diagnosis: n.GetIDiagnosis(),
		History:   n.GetIHistory(),
	})
}

func (n *NetDiag) engine() *diagnosis.Engine {
	if n.Engine == nil {
		n.Engine = diagnosis.NewEngine(diagnosis.DefaultCatalog())
	}
	return n.Engine
}

func (n *NetDiag) clock() Clock {
	if n.Clock == nil {
		return SystemClock{}
	}
	return n.Clock
}

func (n *NetDiag) publisher() events.Publisher {
	if n.Publisher == nil {
		return events.Nop{}
	}
	return n.Publisher
}
