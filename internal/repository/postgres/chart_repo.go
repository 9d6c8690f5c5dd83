package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chartbase/backend/internal/domain"
)

type ChartRepo struct {
	pool *pgxpool.Pool
}

func NewChartRepo(pool *pgxpool.Pool) *ChartRepo {
	return &ChartRepo{pool: pool}
}

func (r *ChartRepo) ListTopByOwner(ctx context.Context, ownerID string, limit int) ([]domain.Chart, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT id, owner_id, title, cover_hash, likes, created_at FROM charts WHERE owner_id = $1 ORDER BY likes DESC, created_at DESC LIMIT $2",
		ownerID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var charts []domain.Chart
	for rows.Next() {
		var c domain.Chart
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Title, &c.CoverHash, &c.Likes, &c.CreatedAt); err != nil {
			return nil, err
		}
		charts = append(charts, c)
	}
	return charts, rows.Err()
}
