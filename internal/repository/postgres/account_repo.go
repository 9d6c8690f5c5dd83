package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chartbase/backend/internal/domain"
)

type AccountRepo struct {
	pool *pgxpool.Pool
}

func NewAccountRepo(pool *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

func (r *AccountRepo) GetPublicAccount(ctx context.Context, sonolusID string) (*domain.Account, error) {
	var a domain.Account
	err := r.pool.QueryRow(ctx,
		"SELECT sonolus_id, username, description, profile_hash, banner_hash, total_charts, total_likes, created_at FROM accounts WHERE sonolus_id = $1",
		sonolusID,
	).Scan(
		&a.SonolusID, &a.Username, &a.Description,
		&a.ProfileHash, &a.BannerHash,
		&a.TotalCharts, &a.TotalLikes, &a.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepo) GetStats(ctx context.Context, sonolusID string) (*domain.AccountStats, error) {
	var s domain.AccountStats
	err := r.pool.QueryRow(ctx,
		"SELECT sonolus_id, total_charts, total_likes, total_plays, rank FROM account_stats WHERE sonolus_id = $1",
		sonolusID,
	).Scan(&s.SonolusID, &s.TotalCharts, &s.TotalLikes, &s.TotalPlays, &s.Rank)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *AccountRepo) UpdateDescription(ctx context.Context, sonolusID, description string) error {
	_, err := r.pool.Exec(ctx,
		"UPDATE accounts SET description = $2 WHERE sonolus_id = $1",
		sonolusID, description,
	)
	return err
}

func (r *AccountRepo) UpdateProfileHash(ctx context.Context, sonolusID string, hash *string) error {
	_, err := r.pool.Exec(ctx,
		"UPDATE accounts SET profile_hash = $2 WHERE sonolus_id = $1",
		sonolusID, hash,
	)
	return err
}

func (r *AccountRepo) UpdateBannerHash(ctx context.Context, sonolusID string, hash *string) error {
	_, err := r.pool.Exec(ctx,
		"UPDATE accounts SET banner_hash = $2 WHERE sonolus_id = $1",
		sonolusID, hash,
	)
	return err
}

func (r *AccountRepo) Delete(ctx context.Context, sonolusID string) error {
	_, err := r.pool.Exec(ctx,
		"DELETE FROM accounts WHERE sonolus_id = $1",
		sonolusID,
	)
	return err
}
