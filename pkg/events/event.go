package events

import (
	"context"
	"errors"
	"time"

	"isharati.xyz/netdiag-service/pkg/models"
)

type Kind string

const (
	KindDiagnosisCreated Kind = "diagnosis.created"
	KindDiagnosisDeleted Kind = "diagnosis.deleted"
	KindHistoryCleared   Kind = "history.cleared"
)

// Event describes one change to the diagnosis history. Record is only set for
// KindDiagnosisCreated.
type Event struct {
	Kind     Kind                    `json:"kind"`
	RecordID string                  `json:"record_id,omitempty"`
	Record   *models.DiagnosisRecord `json:"record,omitempty"`
	At       time.Time               `json:"at"`
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

type Nop struct{}

func (Nop) Publish(context.Context, Event) error {
	return nil
}

// Fanout publishes to every publisher, even when an earlier one fails.
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, e Event) error {
	var errs []error
	for _, p := range f {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
