package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ahmadsal1998/omari-studio/internal/apperrors"
	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
	portsrepo "github.com/ahmadsal1998/omari-studio/internal/core/ports/repositories"
)

var serviceColumns = []string{
	"service_id", "name", "type", "selling_price",
	"cost_price", "duration_minutes", "created_at", "updated_at",
}

type PgxServiceRepository struct {
	BaseRepository
}

func newPgxServiceRepository(pool *pgxpool.Pool) portsrepo.ServiceRepositoryFacade {
	return &PgxServiceRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ServiceRepositoryFacade = (*PgxServiceRepository)(nil)

func (r *PgxServiceRepository) FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	query, args, err := qb.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"service_id": serviceID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build service query: %w", err)
	}

	var service domain.Service
	if err := pgxscan.Get(ctx, r.Pool, &service, query, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: service %s", apperrors.ErrNotFound, serviceID)
		}
		return nil, fmt.Errorf("failed to find service %s: %w", serviceID, err)
	}
	return &service, nil
}

func (r *PgxServiceRepository) FindServicesByIDs(ctx context.Context, serviceIDs []string) (map[string]domain.Service, error) {
	if len(serviceIDs) == 0 {
		return map[string]domain.Service{}, nil
	}
	query, args, err := qb.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"service_id": serviceIDs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build services query: %w", err)
	}

	var services []domain.Service
	if err := pgxscan.Select(ctx, r.Pool, &services, query, args...); err != nil {
		return nil, fmt.Errorf("failed to find services: %w", err)
	}

	result := make(map[string]domain.Service, len(services))
	for _, s := range services {
		result[s.ServiceID] = s
	}
	return result, nil
}

func (r *PgxServiceRepository) ListServices(ctx context.Context, filter portsrepo.ListServicesFilter) ([]domain.Service, int64, error) {
	base := qb.Select().From("services")
	if filter.Search != "" {
		base = base.Where(squirrel.ILike{"name": "%" + filter.Search + "%"})
	}
	if filter.Type != "" {
		base = base.Where(squirrel.Eq{"type": filter.Type})
	}

	countQuery, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build service count query: %w", err)
	}
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count services: %w", err)
	}

	listBuilder := base.Columns(serviceColumns...).OrderBy("created_at DESC")
	if filter.Limit > 0 {
		listBuilder = listBuilder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build service list query: %w", err)
	}

	var services []domain.Service
	if err := pgxscan.Select(ctx, r.Pool, &services, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list services: %w", err)
	}
	return services, total, nil
}

func (r *PgxServiceRepository) SaveService(ctx context.Context, service domain.Service) error {
	query := `
		INSERT INTO services (service_id, name, type, selling_price, cost_price, duration_minutes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		service.ServiceID,
		service.Name,
		service.Type,
		service.SellingPrice,
		service.CostPrice,
		service.DurationMinutes,
		service.CreatedAt,
		service.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("service %s", service.ServiceID))
	}
	return nil
}

func (r *PgxServiceRepository) UpdateService(ctx context.Context, service domain.Service) error {
	query := `
		UPDATE services
		SET name = $2, type = $3, selling_price = $4, cost_price = $5, duration_minutes = $6, updated_at = $7
		WHERE service_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		service.ServiceID,
		service.Name,
		service.Type,
		service.SellingPrice,
		service.CostPrice,
		service.DurationMinutes,
		service.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("service %s", service.ServiceID))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: service %s", apperrors.ErrNotFound, service.ServiceID)
	}
	return nil
}

func (r *PgxServiceRepository) DeleteService(ctx context.Context, serviceID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM services WHERE service_id = $1;`, serviceID)
	if err != nil {
		return fmt.Errorf("failed to delete service %s: %w", serviceID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: service %s", apperrors.ErrNotFound, serviceID)
	}
	return nil
}
