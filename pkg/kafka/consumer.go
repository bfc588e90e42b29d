package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

const RecordsConsumerGroup = "bookhaven-events"

func NewConsumerGroup(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

type HandleFunc func(ctx context.Context, event RecordEvent) error

// EventHandler decodes record events from a claim and passes them on.
type EventHandler struct {
	handle    HandleFunc
	log       *zap.Logger
	ready     chan struct{}
	readyOnce sync.Once
}

var _ sarama.ConsumerGroupHandler = (*EventHandler)(nil)

func NewEventHandler(handle HandleFunc, log *zap.Logger) *EventHandler {
	return &EventHandler{
		handle: handle,
		log:    log.Named("consumer"),
		ready:  make(chan struct{}),
	}
}

// Ready is closed once the first session is set up.
func (h *EventHandler) Ready() <-chan struct{} {
	return h.ready
}

func (h *EventHandler) Setup(sarama.ConsumerGroupSession) error {
	h.readyOnce.Do(func() { close(h.ready) })
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (h *EventHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *EventHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Warn("message channel was closed")
				return nil
			}
			var event RecordEvent
			if err := json.Unmarshal(message.Value, &event); err != nil {
				h.log.Error("decode record event", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := h.handle(session.Context(), event); err != nil {
				h.log.Error("handle record event", zap.String("id", event.ID), zap.Error(err))
				continue
			}

			h.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

// Consume joins the group on topic until ctx is done or the group is closed.
func Consume(ctx context.Context, group sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, topic string) error {
	for {
		if err := group.Consume(ctx, []string{topic}, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			return err
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}
