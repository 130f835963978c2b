package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ahmadsal1998/omari-studio/internal/apperrors"
	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
	portsrepo "github.com/ahmadsal1998/omari-studio/internal/core/ports/repositories"
)

var postingColumns = []string{
	"posting_id", "entity_kind", "entity_id", "type", "date", "amount",
	"notes", "reference_number", "payment_method", "related_id", "related_model",
	"created_at", "updated_at",
}

type PgxLedgerRepository struct {
	BaseRepository
	customerRepo portsrepo.CustomerWriter
	supplierRepo portsrepo.SupplierWriter
}

func newPgxLedgerRepository(pool *pgxpool.Pool, customerRepo portsrepo.CustomerWriter, supplierRepo portsrepo.SupplierWriter) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
		customerRepo:   customerRepo,
		supplierRepo:   supplierRepo,
	}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

func (r *PgxLedgerRepository) FindPostingsByEntity(ctx context.Context, kind domain.EntityKind, entityID string, typeFilter domain.PostingType, from, to *time.Time) ([]domain.Posting, error) {
	builder := qb.Select(postingColumns...).
		From("ledger_postings").
		Where(squirrel.Eq{"entity_kind": kind, "entity_id": entityID})
	if typeFilter != "" {
		builder = builder.Where(squirrel.Eq{"type": typeFilter})
	}
	if from != nil {
		builder = builder.Where(squirrel.GtOrEq{"date": *from})
	}
	if to != nil {
		builder = builder.Where(squirrel.LtOrEq{"date": *to})
	}
	builder = builder.OrderBy("date ASC", "created_at ASC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build postings query: %w", err)
	}

	var postings []domain.Posting
	if err := pgxscan.Select(ctx, r.Pool, &postings, query, args...); err != nil {
		return nil, fmt.Errorf("failed to find postings for %s %s: %w", kind, entityID, err)
	}
	return postings, nil
}

func (r *PgxLedgerRepository) ListPostings(ctx context.Context, filter portsrepo.ListPostingsFilter) ([]domain.Posting, int64, error) {
	base := qb.Select().From("ledger_postings")
	if filter.EntityKind != "" {
		base = base.Where(squirrel.Eq{"entity_kind": filter.EntityKind})
	}
	if filter.EntityID != "" {
		base = base.Where(squirrel.Eq{"entity_id": filter.EntityID})
	}
	if filter.Type != "" {
		base = base.Where(squirrel.Eq{"type": filter.Type})
	}

	countQuery, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build posting count query: %w", err)
	}
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count postings: %w", err)
	}

	listBuilder := base.Columns(postingColumns...).OrderBy("created_at DESC")
	if filter.Limit > 0 {
		listBuilder = listBuilder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build posting list query: %w", err)
	}

	var postings []domain.Posting
	if err := pgxscan.Select(ctx, r.Pool, &postings, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list postings: %w", err)
	}
	return postings, total, nil
}

// SaveVoucher appends the posting and applies balanceDelta to the owning
// entity in the same transaction. Postings are never updated or deleted
// afterwards, so the increment is the only balance mutation tied to the
// row.
func (r *PgxLedgerRepository) SaveVoucher(ctx context.Context, posting domain.Posting, balanceDelta decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	insertQuery := `
		INSERT INTO ledger_postings (posting_id, entity_kind, entity_id, type, date, amount, notes, reference_number, payment_method, related_id, related_model, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, insertQuery,
		posting.PostingID,
		posting.EntityKind,
		posting.EntityID,
		posting.Type,
		posting.Date,
		posting.Amount,
		posting.Notes,
		posting.ReferenceNumber,
		posting.PaymentMethod,
		posting.RelatedID,
		posting.RelatedModel,
		posting.CreatedAt,
		posting.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("posting %s", posting.PostingID))
	}

	switch posting.EntityKind {
	case domain.EntityCustomer:
		err = r.customerRepo.IncrementBalanceInTx(ctx, tx, posting.EntityID, balanceDelta)
	case domain.EntitySupplier:
		err = r.supplierRepo.IncrementBalanceInTx(ctx, tx, posting.EntityID, balanceDelta)
	default:
		err = fmt.Errorf("%w: unknown entity kind %q", apperrors.ErrValidation, posting.EntityKind)
	}
	if err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
