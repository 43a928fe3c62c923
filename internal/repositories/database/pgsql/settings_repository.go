package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ftracker/ft_backend/internal/apperrors"
	portsrepo "github.com/ftracker/ft_backend/internal/core/ports/repositories"
)

const displayRateKey = "display_rate"

// defaultDisplayRate is used when the settings row has never been written.
var defaultDisplayRate = decimal.NewFromInt(200)

type PgxSettingsRepository struct {
	BaseRepository
}

// newPgxSettingsRepository creates a new repository for application settings.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepository {
	return &PgxSettingsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SettingsRepository = (*PgxSettingsRepository)(nil)

// GetDisplayRate retrieves the informational USD to DZD display rate,
// falling back to the default when the row is absent.
func (r *PgxSettingsRepository) GetDisplayRate(ctx context.Context) (decimal.Decimal, error) {
	var value float64
	err := r.Pool.QueryRow(ctx, `SELECT value FROM settings WHERE key = $1`, displayRateKey).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return defaultDisplayRate, nil
	}
	if err != nil {
		return decimal.Decimal{}, apperrors.NewAppError(500, "failed to query display rate", err)
	}
	return decimal.NewFromFloat(value), nil
}

// UpdateDisplayRate persists a new display rate.
func (r *PgxSettingsRepository) UpdateDisplayRate(ctx context.Context, rate decimal.Decimal) error {
	value, _ := rate.Float64()
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO settings (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		displayRateKey, value,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update display rate", err)
	}
	return nil
}
