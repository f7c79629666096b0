package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dh467/coindesk/internal/apperrors"
	"github.com/dh467/coindesk/internal/core/domain"
	portsrepo "github.com/dh467/coindesk/internal/core/ports/repositories"
	"github.com/dh467/coindesk/internal/models"
	"github.com/dh467/coindesk/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

type PgxCurrencyMappingRepository struct {
	BaseRepository
}

// newPgxCurrencyMappingRepository creates a new repository for the currency mapping table.
func newPgxCurrencyMappingRepository(pool *pgxpool.Pool) portsrepo.CurrencyMappingRepositoryFacade {
	return &PgxCurrencyMappingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyMappingRepositoryFacade = (*PgxCurrencyMappingRepository)(nil)

// Insert persists a new currency mapping. The primary key on currency_id
// makes the existence check and the write a single atomic operation.
func (r *PgxCurrencyMappingRepository) Insert(ctx context.Context, m domain.CurrencyMapping) error {
	modelMapping := mapping.ToModelCurrencyMapping(m)

	query := `
		INSERT INTO currency_mappings (currency_id, display_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelMapping.CurrencyID,
		modelMapping.DisplayName,
		modelMapping.CreatedAt,
		modelMapping.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: currency '%s'", apperrors.ErrDuplicate, modelMapping.CurrencyID)
		}
		return fmt.Errorf("failed to insert currency mapping %s: %w", modelMapping.CurrencyID, err)
	}
	return nil
}

// FindByID retrieves a currency mapping by its feed id.
func (r *PgxCurrencyMappingRepository) FindByID(ctx context.Context, id string) (*domain.CurrencyMapping, error) {
	query := `
		SELECT currency_id, display_name, created_at, updated_at
		FROM currency_mappings
		WHERE currency_id = $1;
	`
	var modelMapping models.CurrencyMapping
	err := r.Pool.QueryRow(ctx, query, id).Scan(
		&modelMapping.CurrencyID,
		&modelMapping.DisplayName,
		&modelMapping.CreatedAt,
		&modelMapping.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency mapping by id %s: %w", id, err)
	}

	domainMapping := mapping.ToDomainCurrencyMapping(modelMapping)
	return &domainMapping, nil
}

// List retrieves all currency mappings.
func (r *PgxCurrencyMappingRepository) List(ctx context.Context) ([]domain.CurrencyMapping, error) {
	query := `
		SELECT currency_id, display_name, created_at, updated_at
		FROM currency_mappings
		ORDER BY currency_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currency mappings: %w", err)
	}
	defer rows.Close()

	modelMappings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CurrencyMapping, error) {
		var m models.CurrencyMapping
		err := row.Scan(
			&m.CurrencyID,
			&m.DisplayName,
			&m.CreatedAt,
			&m.UpdatedAt,
		)
		return m, err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan currency mappings: %w", err)
	}

	return mapping.ToDomainCurrencyMappingSlice(modelMappings), nil
}

// Update changes the display name of an existing mapping and refreshes
// updated_at, leaving created_at untouched.
func (r *PgxCurrencyMappingRepository) Update(ctx context.Context, id, displayName string) (*domain.CurrencyMapping, error) {
	query := `
		UPDATE currency_mappings
		SET display_name = $2, updated_at = now()
		WHERE currency_id = $1
		RETURNING currency_id, display_name, created_at, updated_at;
	`
	var modelMapping models.CurrencyMapping
	err := r.Pool.QueryRow(ctx, query, id, displayName).Scan(
		&modelMapping.CurrencyID,
		&modelMapping.DisplayName,
		&modelMapping.CreatedAt,
		&modelMapping.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: currency '%s'", apperrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to update currency mapping %s: %w", id, err)
	}

	domainMapping := mapping.ToDomainCurrencyMapping(modelMapping)
	return &domainMapping, nil
}

// Delete removes a currency mapping.
func (r *PgxCurrencyMappingRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM currency_mappings WHERE currency_id = $1;`

	tag, err := r.Pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete currency mapping %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: currency '%s'", apperrors.ErrNotFound, id)
	}
	return nil
}
