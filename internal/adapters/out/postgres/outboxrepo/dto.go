// Package outboxrepo stores domain events in the outbox_messages table until
// the relay has published them.
package outboxrepo

import (
	"encoding/json"
	"fmt"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"

	"github.com/google/uuid"
)

type OutboxMessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AggregateID uuid.UUID  `gorm:"type:uuid;not null"`
	EventType   string     `gorm:"not null"`
	Payload     string     `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time  `gorm:"not null"`
	ProcessedAt *time.Time
}

func (OutboxMessageDTO) TableName() string {
	return "outbox_messages"
}

type orderPlacedPayload struct {
	EventID       string    `json:"eventId"`
	OrderID       string    `json:"orderId"`
	UserID        string    `json:"userId"`
	Total         string    `json:"total"`
	PaymentMethod string    `json:"paymentMethod"`
	PaymentStatus string    `json:"paymentStatus"`
	Items         int       `json:"items"`
	OccurredAt    time.Time `json:"occurredAt"`
}

type orderUpdatedPayload struct {
	EventID       string    `json:"eventId"`
	OrderID       string    `json:"orderId"`
	UserID        string    `json:"userId"`
	OrderStatus   string    `json:"orderStatus"`
	PaymentStatus string    `json:"paymentStatus"`
	UpdatedBy     string    `json:"updatedBy"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// FromEvent serialises an order event into an outbox message.
func FromEvent(event order.Event) (ports.OutboxMessage, error) {
	var (
		id      kernel.UUID
		payload any
	)

	switch e := event.(type) {
	case order.PlacedEvent:
		id = e.ID
		payload = orderPlacedPayload{
			EventID:       e.ID.String(),
			OrderID:       e.OrderID.String(),
			UserID:        e.UserID.String(),
			Total:         e.Total.String(),
			PaymentMethod: e.PaymentMethod.String(),
			PaymentStatus: e.PaymentStatus.String(),
			Items:         e.Items,
			OccurredAt:    e.At,
		}
	case order.UpdatedEvent:
		id = e.ID
		payload = orderUpdatedPayload{
			EventID:       e.ID.String(),
			OrderID:       e.OrderID.String(),
			UserID:        e.UserID.String(),
			OrderStatus:   e.OrderStatus.String(),
			PaymentStatus: e.PaymentStatus.String(),
			UpdatedBy:     e.UpdatedBy.String(),
			OccurredAt:    e.At,
		}
	default:
		return ports.OutboxMessage{}, fmt.Errorf("unsupported event type %T", event)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:          id,
		AggregateID: event.AggregateID(),
		EventType:   event.EventType(),
		Payload:     data,
		OccurredAt:  event.OccurredAt(),
	}, nil
}

func fromMessage(msg ports.OutboxMessage) OutboxMessageDTO {
	return OutboxMessageDTO{
		ID:          msg.ID.Bytes(),
		AggregateID: msg.AggregateID.Bytes(),
		EventType:   msg.EventType,
		Payload:     string(msg.Payload),
		OccurredAt:  msg.OccurredAt,
	}
}

func toMessage(dto OutboxMessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	aggregateID, err := kernel.UUIDFromBytes(dto.AggregateID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:          id,
		AggregateID: aggregateID,
		EventType:   dto.EventType,
		Payload:     []byte(dto.Payload),
		OccurredAt:  dto.OccurredAt,
	}, nil
}
