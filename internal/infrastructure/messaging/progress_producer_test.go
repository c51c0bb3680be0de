package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"retifica_os/internal/domain/entities"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressPublisher_PublishOrderProgress(t *testing.T) {
	ev := entities.OrderProgressEvent{
		OrderID:    "os-1",
		Action:     "stage_complete",
		Target:     "lavagem",
		Status:     entities.OrderStatusFabricacao,
		Progress:   0.5,
		OccurredAt: time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
	}

	t.Run("sends json keyed by order", func(t *testing.T) {
		sp := mocks.NewSyncProducer(t, ProducerConfig())
		sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
			var got entities.OrderProgressEvent
			if err := json.Unmarshal(val, &got); err != nil {
				return err
			}
			if got.OrderID != "os-1" || got.Action != "stage_complete" || got.Progress != 0.5 {
				return errors.New("unexpected payload")
			}
			return nil
		})

		p := NewProgressPublisher(sp, "order.progress")
		require.NoError(t, p.PublishOrderProgress(context.Background(), ev))
		require.NoError(t, p.Close())
	})

	t.Run("send failure", func(t *testing.T) {
		sp := mocks.NewSyncProducer(t, ProducerConfig())
		sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

		p := NewProgressPublisher(sp, "order.progress")
		err := p.PublishOrderProgress(context.Background(), ev)
		assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
		require.NoError(t, p.Close())
	})
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, NoopPublisher{}.PublishOrderProgress(context.Background(), entities.OrderProgressEvent{}))
}
