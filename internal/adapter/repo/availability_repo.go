package repo

import (
	"context"
	"fmt"

	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/domain"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/infra"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/sqlinline"
)

// AvailabilityRepositoryPG implements domain.AvailabilityRepository backed
// by PostgreSQL.
type AvailabilityRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewAvailabilityRepository creates a new AvailabilityRepositoryPG.
func NewAvailabilityRepository(sql infra.SQLExecutor) *AvailabilityRepositoryPG {
	return &AvailabilityRepositoryPG{sql: sql}
}

func (r *AvailabilityRepositoryPG) Create(ctx context.Context, a *domain.Availability) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertAvailability, a.ID, a.UserID, a.Day, a.Note)
	if err := row.Scan(&a.CreatedAt); err != nil {
		return fmt.Errorf("insert availability: %w", err)
	}
	return nil
}
