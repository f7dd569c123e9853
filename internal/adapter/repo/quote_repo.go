package repo

import (
	"context"
	"fmt"

	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/domain"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/infra"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/sqlinline"
)

// QuoteRepositoryPG implements domain.QuoteRepository backed by PostgreSQL.
type QuoteRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewQuoteRepository creates a new QuoteRepositoryPG.
func NewQuoteRepository(sql infra.SQLExecutor) *QuoteRepositoryPG {
	return &QuoteRepositoryPG{sql: sql}
}

func (r *QuoteRepositoryPG) Create(ctx context.Context, q *domain.Quote) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertQuote, q.ID, q.TenderID, q.UserID, q.AmountCents, q.Message)
	if err := row.Scan(&q.CreatedAt); err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

func (r *QuoteRepositoryPG) CountByTenderAndUser(ctx context.Context, tenderID, userID string) (int, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QCountQuotesByTenderAndUser, tenderID, userID)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count quotes: %w", err)
	}
	return count, nil
}
