package repository

import (
	"context"

	"github.com/chartbase/backend/internal/domain"
)

type AccountRepository interface {
	GetPublicAccount(ctx context.Context, sonolusID string) (*domain.Account, error)
	GetStats(ctx context.Context, sonolusID string) (*domain.AccountStats, error)
	UpdateDescription(ctx context.Context, sonolusID, description string) error
	UpdateProfileHash(ctx context.Context, sonolusID string, hash *string) error
	UpdateBannerHash(ctx context.Context, sonolusID string, hash *string) error
	Delete(ctx context.Context, sonolusID string) error
}

type ChartRepository interface {
	ListTopByOwner(ctx context.Context, ownerID string, limit int) ([]domain.Chart, error)
}
