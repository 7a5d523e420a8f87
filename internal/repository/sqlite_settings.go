package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/juliakramer/slipway/internal/db"
	"github.com/juliakramer/slipway/internal/workcal"
)

// Settings keys for the per-workspace working-day calendar.
const (
	keyCalendarHolidays    = "calendar_include_holidays"
	keyCalendarCountry     = "calendar_country"
	keyCalendarSubdivision = "calendar_subdivision"
)

// SQLiteSettingsRepo implements SettingsRepo over the settings key/value table.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(dbtx db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: dbtx}
}

// GetCalendarConfig returns the stored calendar configuration. Missing keys
// yield the zero Config, which means weekends-only.
func (r *SQLiteSettingsRepo) GetCalendarConfig(ctx context.Context) (workcal.Config, error) {
	var cfg workcal.Config

	holidays, err := r.get(ctx, keyCalendarHolidays)
	if err != nil {
		return cfg, err
	}
	cfg.IncludeHolidays = holidays == "1"

	if cfg.CountryCode, err = r.get(ctx, keyCalendarCountry); err != nil {
		return cfg, err
	}
	if cfg.SubdivisionCode, err = r.get(ctx, keyCalendarSubdivision); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (r *SQLiteSettingsRepo) SetCalendarConfig(ctx context.Context, cfg workcal.Config) error {
	holidays := "0"
	if cfg.IncludeHolidays {
		holidays = "1"
	}
	pairs := map[string]string{
		keyCalendarHolidays:    holidays,
		keyCalendarCountry:     cfg.CountryCode,
		keyCalendarSubdivision: cfg.SubdivisionCode,
	}
	for key, value := range pairs {
		if err := r.set(ctx, key, value); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteSettingsRepo) get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading setting %q: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteSettingsRepo) set(ctx context.Context, key, value string) error {
	query := `INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("writing setting %q: %w", key, err)
	}
	return nil
}
