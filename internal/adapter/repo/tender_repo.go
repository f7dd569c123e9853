package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/domain"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/infra"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/sqlinline"
)

// TenderRepositoryPG implements domain.TenderRepository backed by PostgreSQL.
type TenderRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewTenderRepository creates a new TenderRepositoryPG.
func NewTenderRepository(sql infra.SQLExecutor) *TenderRepositoryPG {
	return &TenderRepositoryPG{sql: sql}
}

// Create inserts the tender and backfills its timestamps.
func (r *TenderRepositoryPG) Create(ctx context.Context, t *domain.Tender) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertTender,
		t.ID, t.OwnerID, t.Title, t.Description, t.Trade, t.Suburb, t.Status)
	if err := row.Scan(&t.CreatedAt, &t.UpdatedAt); err != nil {
		return fmt.Errorf("insert tender: %w", err)
	}
	return nil
}

// CountQuotaSince counts quota-relevant tenders created at or after since.
// The query intentionally ignores the deleted flag.
func (r *TenderRepositoryPG) CountQuotaSince(ctx context.Context, ownerID string, since time.Time) (int, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QCountQuotaTenders, ownerID, since)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count tenders: %w", err)
	}
	return count, nil
}

// GetByID fetches a tender by id, excluding soft-deleted rows.
func (r *TenderRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Tender, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectTenderByID, id)
	var t domain.Tender
	var status string
	err := row.Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.Trade, &t.Suburb, &status, &t.Deleted, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select tender: %w", err)
	}
	t.Status = domain.TenderStatus(status)
	return &t, nil
}
