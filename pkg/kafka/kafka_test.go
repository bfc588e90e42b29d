package kafka_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Astemirdum/bookhaven/pkg/circuit_breaker"
	"github.com/Astemirdum/bookhaven/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPublisher_Publish(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, nil)
	event := kafka.RecordEvent{
		Collection: "poems",
		ID:         "0190b1a8-0000-7000-8000-000000000001",
		Title:      "Ode",
		Timestamp:  time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		require.Equal(t, kafka.RecordsTopic, msg.Topic)
		key, err := msg.Key.Encode()
		require.NoError(t, err)
		require.Equal(t, "poems", string(key))
		val, err := msg.Value.Encode()
		require.NoError(t, err)
		var got kafka.RecordEvent
		require.NoError(t, json.Unmarshal(val, &got))
		require.Equal(t, event, got)
		return nil
	})

	p := kafka.NewProducerPublisher(producer, "", zap.NewNop())
	require.NoError(t, p.Publish(context.Background(), event))
	require.NoError(t, p.Close())
}

func TestPublisher_BreakerOpens(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, nil)
	for i := 0; i < 5; i++ {
		producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	}
	p := kafka.NewProducerPublisher(producer, "records", zap.NewNop())
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.ErrorIs(t, p.Publish(ctx, kafka.RecordEvent{Collection: "books"}), sarama.ErrOutOfBrokers)
	}
	// half of the window failed, further sends are short-circuited
	require.ErrorIs(t, p.Publish(ctx, kafka.RecordEvent{Collection: "books"}), circuit_breaker.ErrOpenCB)
	require.NoError(t, p.Close())
}

func TestNewPublisher_Disabled(t *testing.T) {
	t.Parallel()
	p, err := kafka.NewPublisher(kafka.Config{Enable: false}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, p.Publish(context.Background(), kafka.RecordEvent{}))
	require.NoError(t, p.Close())
}
