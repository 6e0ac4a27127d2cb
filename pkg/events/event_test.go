package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"isharati.xyz/netdiag-service/pkg/events"
	"isharati.xyz/netdiag-service/pkg/events/mocks"
)

func TestNop(t *testing.T) {
	assert.NoError(t, events.Nop{}.Publish(context.Background(), events.Event{}))
}

func TestFanout_PublishesToAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := mocks.NewMockPublisher(ctrl)
	second := mocks.NewMockPublisher(ctrl)

	e := events.Event{Kind: events.KindDiagnosisDeleted, RecordID: "deadbeef"}
	boom := errors.New("boom")

	first.EXPECT().Publish(gomock.Any(), gomock.Eq(e)).Return(boom).Times(1)
	second.EXPECT().Publish(gomock.Any(), gomock.Eq(e)).Return(nil).Times(1)

	err := events.Fanout{first, nil, second}.Publish(context.Background(), e)
	assert.ErrorIs(t, err, boom)
}

func TestFanout_Empty(t *testing.T) {
	assert.NoError(t, events.Fanout{}.Publish(context.Background(), events.Event{}))
}
