package settingsrepo

import (
	"context"
	"time"

	"bakery/internal/core/domain/model/settings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingsRepository implements ports.SettingsRepository. Settings raise
// no domain events, so nothing is tracked.
type GormSettingsRepository struct {
	db *gorm.DB
}

func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Get returns the singleton. The first call on an empty table inserts the
// defaults; concurrent first calls race on the primary key and the loser's
// insert is ignored.
func (r *GormSettingsRepository) Get(ctx context.Context) (*settings.Settings, error) {
	dto := fromDomain(settings.Default(time.Now().UTC()))

	db := r.db.WithContext(ctx)
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto).Error; err != nil {
		return nil, err
	}

	var stored SettingsDTO
	if err := db.First(&stored, "singleton_key = ?", settings.Key).Error; err != nil {
		return nil, err
	}

	return toDomain(stored), nil
}

func (r *GormSettingsRepository) Update(ctx context.Context, s *settings.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(s)
	err := r.db.WithContext(ctx).Model(&SettingsDTO{}).
		Where("singleton_key = ?", settings.Key).
		Updates(map[string]any{
			"upi_enabled":      dto.UPIEnabled,
			"upi_id":           dto.UPIID,
			"upi_phone":        dto.UPIPhone,
			"upi_qr_image":     dto.UPIQRImage,
			"upi_instructions": dto.UPIInstructions,
			"updated_at":       dto.UpdatedAt,
		}).Error
	return err
}
