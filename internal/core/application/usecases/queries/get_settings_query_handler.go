package queries

import (
	"context"

	"bakery/internal/core/domain/model/settings"
)

// SettingsReader loads the settings singleton, creating the defaults on first read.
type SettingsReader interface {
	Get(ctx context.Context) (*settings.Settings, error)
}

type GetSettingsQueryHandler struct {
	reader SettingsReader
}

func NewGetSettingsQueryHandler(reader SettingsReader) GetSettingsQueryHandler {
	return GetSettingsQueryHandler{reader: reader}
}

// Handle returns the full view for administrators and only the UPI part
// for public queries.
func (h GetSettingsQueryHandler) Handle(ctx context.Context, query GetSettingsQuery) (SettingsView, error) {
	if err := query.Validate(); err != nil {
		return SettingsView{}, err
	}

	s, err := h.reader.Get(ctx)
	if err != nil {
		return SettingsView{}, err
	}

	view := NewSettingsView(s)
	if !query.IsAdmin() {
		return SettingsView{UPI: view.UPI}, nil
	}
	return view, nil
}
