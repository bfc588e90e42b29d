package service

import (
	"context"
	"time"

	"github.com/Astemirdum/bookhaven/bookhaven/internal/attachment"
	"github.com/Astemirdum/bookhaven/bookhaven/internal/errs"
	"github.com/Astemirdum/bookhaven/pkg/kafka"
	"github.com/Astemirdum/bookhaven/pkg/validate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultDateLayout renders dates like a US short locale date, e.g. 3/14/2024.
const DefaultDateLayout = "1/2/2006"

type Option func(*base)

func WithClock(now func() time.Time) Option {
	return func(b *base) { b.now = now }
}

func WithIDGenerator(gen func() string) Option {
	return func(b *base) { b.newID = gen }
}

func WithPublisher(p kafka.Publisher) Option {
	return func(b *base) { b.publisher = p }
}

func WithDateLayout(layout string) Option {
	return func(b *base) {
		if layout != "" {
			b.dateLayout = layout
		}
	}
}

func WithAttachmentLimit(limit int64) Option {
	return func(b *base) { b.attachmentLimit = limit }
}

// base carries what every manager shares.
type base struct {
	validator       *validate.CustomValidator
	publisher       kafka.Publisher
	now             func() time.Time
	newID           func() string
	dateLayout      string
	attachmentLimit int64
	log             *zap.Logger
}

func newBase(log *zap.Logger, opts ...Option) base {
	b := base{
		validator:       validate.NewCustomValidator(),
		publisher:       kafka.NewNopPublisher(),
		now:             time.Now,
		newID:           newTimeID,
		dateLayout:      DefaultDateLayout,
		attachmentLimit: attachment.DefaultLimitBytes,
		log:             log,
	}
	for _, op := range opts {
		op(&b)
	}
	return b
}

// newTimeID returns a time-ordered UUIDv7.
func newTimeID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (b *base) uniqueID(taken func(string) bool) string {
	id := b.newID()
	for taken(id) {
		id = b.newID()
	}
	return id
}

func (b *base) today() string {
	return b.now().Format(b.dateLayout)
}

func (b *base) validate(req any, description string) error {
	if err := b.validator.Validate(req); err != nil {
		fields := validate.MissingFields(err)
		if fields == nil {
			return err
		}
		return errs.NewValidationError(fields, description)
	}
	return nil
}

func (b *base) publish(ctx context.Context, collection, id, title string) {
	event := kafka.RecordEvent{
		Collection: collection,
		ID:         id,
		Title:      title,
		Timestamp:  b.now().UTC(),
	}
	if err := b.publisher.Publish(ctx, event); err != nil {
		b.log.Warn("publish record event", zap.String("id", id), zap.Error(err))
	}
}
