package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/chartbase/backend/internal/domain"
	"github.com/chartbase/backend/internal/media"
	"github.com/chartbase/backend/internal/repository"
	"github.com/chartbase/backend/internal/storage"
	"github.com/chartbase/backend/pkg/hashing"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrStatsNotFound   = errors.New("account stats not found")

	// ErrInvalidImage is media.ErrDecode re-exported so handlers only
	// depend on service errors.
	ErrInvalidImage = media.ErrDecode
)

// profileChartCount is the number of charts embedded in a public profile:
// the first page of the owner's charts sorted by likes.
const profileChartCount = 5

type AccountService struct {
	accounts     repository.AccountRepository
	charts       repository.ChartRepository
	store        storage.BlobStore
	transcoder   *media.Transcoder
	assetBaseURL string
	locks        slotLocker
}

func NewAccountService(accounts repository.AccountRepository, charts repository.ChartRepository, store storage.BlobStore, transcoder *media.Transcoder, assetBaseURL string) *AccountService {
	return &AccountService{
		accounts:     accounts,
		charts:       charts,
		store:        store,
		transcoder:   transcoder,
		assetBaseURL: assetBaseURL,
	}
}

func (s *AccountService) GetProfile(ctx context.Context, sonolusID string) (*domain.Profile, error) {
	account, err := s.accounts.GetPublicAccount(ctx, sonolusID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	charts, err := s.charts.ListTopByOwner(ctx, sonolusID, profileChartCount)
	if err != nil {
		return nil, err
	}
	if charts == nil {
		charts = []domain.Chart{}
	}

	return &domain.Profile{
		Account:      account,
		Charts:       charts,
		AssetBaseURL: s.assetBaseURL,
	}, nil
}

func (s *AccountService) GetStats(ctx context.Context, sonolusID string) (*domain.AccountStats, error) {
	stats, err := s.accounts.GetStats(ctx, sonolusID)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return nil, ErrStatsNotFound
	}
	return stats, nil
}

func (s *AccountService) UpdateDescription(ctx context.Context, sonolusID, description string) error {
	return s.accounts.UpdateDescription(ctx, sonolusID, description)
}

// DeleteAccount removes every stored object under the account's root
// prefix, then the account row. Irreversible; the two steps are not
// transactional.
func (s *AccountService) DeleteAccount(ctx context.Context, sonolusID string) error {
	if err := s.store.PurgePrefix(ctx, sonolusID+"/"); err != nil {
		return fmt.Errorf("purging account objects: %w", err)
	}
	if err := s.accounts.Delete(ctx, sonolusID); err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}
	return nil
}

// DeleteImage purges the slot's storage prefix and clears the hash column.
// A crash between the two leaves the column pointing at deleted objects;
// clients must tolerate missing assets.
func (s *AccountService) DeleteImage(ctx context.Context, sonolusID string, slot domain.Slot) error {
	unlock := s.locks.lock(sonolusID, slot)
	defer unlock()

	if err := s.store.PurgePrefix(ctx, slotPrefix(sonolusID, slot)); err != nil {
		return fmt.Errorf("purging %s objects: %w", slot, err)
	}
	if err := s.updateHash(ctx, sonolusID, slot, nil); err != nil {
		return fmt.Errorf("clearing %s hash: %w", slot, err)
	}
	return nil
}

// UploadImage transcodes src to the slot's PNG+WebP pair, replaces
// whatever is stored under the slot prefix and persists the content hash.
// The old image is purged before the new one is written, so a failed
// upload can leave the slot briefly empty; it never leaves two current
// images.
func (s *AccountService) UploadImage(ctx context.Context, sonolusID string, slot domain.Slot, src []byte) (string, error) {
	width, height := slot.Dimensions()
	pngBytes, webpBytes, err := s.transcoder.Transcode(ctx, src, width, height)
	if err != nil {
		return "", err
	}

	fileHash := hashing.SHA256Hex(pngBytes)

	unlock := s.locks.lock(sonolusID, slot)
	defer unlock()

	prefix := slotPrefix(sonolusID, slot)
	if err := s.store.PurgePrefix(ctx, prefix); err != nil {
		return "", fmt.Errorf("purging %s objects: %w", slot, err)
	}

	if err := s.store.Upload(ctx, prefix+fileHash, pngBytes, "image/png"); err != nil {
		return "", fmt.Errorf("uploading png: %w", err)
	}
	if err := s.store.Upload(ctx, prefix+fileHash+"_webp", webpBytes, "image/webp"); err != nil {
		return "", fmt.Errorf("uploading webp: %w", err)
	}

	if err := s.updateHash(ctx, sonolusID, slot, &fileHash); err != nil {
		return "", fmt.Errorf("persisting %s hash: %w", slot, err)
	}

	return fileHash, nil
}

func (s *AccountService) updateHash(ctx context.Context, sonolusID string, slot domain.Slot, hash *string) error {
	if slot == domain.SlotBanner {
		return s.accounts.UpdateBannerHash(ctx, sonolusID, hash)
	}
	return s.accounts.UpdateProfileHash(ctx, sonolusID, hash)
}

func slotPrefix(sonolusID string, slot domain.Slot) string {
	return sonolusID + "/" + slot.String() + "/"
}
