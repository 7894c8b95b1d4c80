package ports

import (
	"context"

	"bakery/internal/core/domain/model/settings"
)

// SettingsRepository stores the settings singleton.
type SettingsRepository interface {
	// Get returns the singleton, creating it with defaults on first access.
	Get(ctx context.Context) (*settings.Settings, error)

	Update(ctx context.Context, s *settings.Settings) error
}
