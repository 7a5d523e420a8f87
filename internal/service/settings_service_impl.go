package service

import (
	"context"
	"fmt"

	"github.com/juliakramer/slipway/internal/repository"
	"github.com/juliakramer/slipway/internal/workcal"
)

type settingsService struct {
	settings repository.SettingsRepo
}

func NewSettingsService(settings repository.SettingsRepo) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) GetCalendarConfig(ctx context.Context) (workcal.Config, error) {
	return s.settings.GetCalendarConfig(ctx)
}

// SetCalendarConfig persists the calendar configuration after proving a
// calendar can actually be built from it, so a bad country code surfaces at
// edit time instead of at the next scheduling pass.
func (s *settingsService) SetCalendarConfig(ctx context.Context, cfg workcal.Config) error {
	if _, err := workcal.New(cfg); err != nil {
		return fmt.Errorf("invalid calendar configuration: %w", err)
	}
	return s.settings.SetCalendarConfig(ctx, cfg)
}
