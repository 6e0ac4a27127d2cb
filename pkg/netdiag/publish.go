package netdiag

import (
	"context"
	"time"

	"go.uber.org/zap"

	"isharati.xyz/netdiag-service/pkg/common"
	"isharati.xyz/netdiag-service/pkg/events"
)

const publishTimeout = 2 * time.Second

// publish never fails the caller; a history change is already committed when
// it is announced.
func (n *NetDiag) publish(e events.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := n.publisher().Publish(ctx, e); err != nil {
		common.GetCoreLogger(common.LoggerCategoryEvents).Warn("Failed to publish event",
			zap.String("kind", string(e.Kind)),
			zap.String("record_id", e.RecordID),
			zap.Error(err),
		)
	}
}
