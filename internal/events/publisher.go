package events

import (
	"context"
	"time"

	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Topic names published by the ledger write path.
const TopicPostingCreated = "ledger.posting_created"

// PostingCreated is emitted after a voucher posting commits, for
// downstream consumers (notifications, analytics exports). Publishing is
// best-effort and never rolls back the posting.
type PostingCreated struct {
	PostingID  string             `json:"posting_id"`
	EntityKind domain.EntityKind  `json:"entity_kind"`
	EntityID   string             `json:"entity_id"`
	Type       domain.PostingType `json:"type"`
	Amount     decimal.Decimal    `json:"amount"`
	OccurredAt time.Time          `json:"occurred_at"`
}

// Publisher sends domain events to an external broker. Close flushes
// anything still buffered; callers must invoke it on shutdown or queued
// events are lost.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, topic string, event any) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}
