package outboxrepo

import (
	"context"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOutboxRepository implements ports.OutboxRepository and the write side
// used by the unit of work.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add stores messages; it is called inside the transaction that changed the aggregates.
func (r *GormOutboxRepository) Add(ctx context.Context, msgs ...ports.OutboxMessage) error {
	if len(msgs) == 0 {
		return nil
	}

	dtos := make([]OutboxMessageDTO, 0, len(msgs))
	for _, msg := range msgs {
		dtos = append(dtos, fromMessage(msg))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetUnprocessed locks up to limit pending rows with FOR UPDATE SKIP LOCKED,
// so parallel relays pick disjoint batches.
func (r *GormOutboxRepository) GetUnprocessed(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []OutboxMessageDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("processed_at IS NULL").
		Order("occurred_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	msgs := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		msg, convErr := toMessage(dto)
		if convErr != nil {
			return nil, convErr
		}
		msgs = append(msgs, msg)
	}

	return msgs, nil
}

func (r *GormOutboxRepository) MarkProcessed(ctx context.Context, id kernel.UUID, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&OutboxMessageDTO{}).
		Where("id = ?", id.Bytes()).
		Update("processed_at", at)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outbox message", id.String())
	}

	return nil
}
