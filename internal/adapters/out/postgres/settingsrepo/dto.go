// Package settingsrepo persists the storefront settings singleton.
package settingsrepo

import (
	"time"

	"bakery/internal/core/domain/model/settings"
)

// SettingsDTO is the single row of the settings table, keyed by settings.Key.
type SettingsDTO struct {
	SingletonKey    string `gorm:"primaryKey"`
	UPIEnabled      bool   `gorm:"column:upi_enabled;not null"`
	UPIID           string `gorm:"column:upi_id;not null"`
	UPIPhone        string `gorm:"column:upi_phone;not null"`
	UPIQRImage      string `gorm:"column:upi_qr_image;not null"`
	UPIInstructions string `gorm:"column:upi_instructions;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (SettingsDTO) TableName() string {
	return "settings"
}

func fromDomain(s *settings.Settings) SettingsDTO {
	upi := s.UPI()
	return SettingsDTO{
		SingletonKey:    settings.Key,
		UPIEnabled:      upi.Enabled(),
		UPIID:           upi.UPIID(),
		UPIPhone:        upi.Phone(),
		UPIQRImage:      upi.QRImage(),
		UPIInstructions: upi.Instructions(),
		CreatedAt:       s.CreatedAt(),
		UpdatedAt:       s.UpdatedAt(),
	}
}

func toDomain(dto SettingsDTO) *settings.Settings {
	return settings.RestoreSettings(
		dto.UPIEnabled,
		dto.UPIID,
		dto.UPIPhone,
		dto.UPIQRImage,
		dto.UPIInstructions,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
