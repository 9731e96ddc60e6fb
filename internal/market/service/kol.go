package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/kolmarket/kolmarket/internal/market/domain"
	"github.com/kolmarket/kolmarket/internal/market/store"
	"github.com/kolmarket/kolmarket/pkg/idx"
	"github.com/kolmarket/kolmarket/pkg/slogx"
)

var ErrKOLEmailTaken = errors.New("a profile with this email already exists")

type KOLService struct {
	Store store.Store
}

// KOLInput carries the writable profile fields. Pointer fields distinguish
// "not supplied" from zero on partial updates.
type KOLInput struct {
	Name           *string
	Email          *string
	Category       *string
	Platform       *string
	Followers      *int64
	EngagementRate *float64
	Bio            *string
	ProfileImage   *string
	PricePerPost   *float64
	Verified       *bool
}

// CreateKOL makes a new profile. Name and email are required.
func (s *KOLService) CreateKOL(ctx context.Context, in KOLInput) (domain.KOL, error) {
	log := slogx.FromContext(ctx)

	if in.Name == nil || strings.TrimSpace(*in.Name) == "" ||
		in.Email == nil || strings.TrimSpace(*in.Email) == "" {
		return domain.KOL{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	kol := domain.KOL{
		ID:        idx.New().String(),
		Name:      strings.TrimSpace(*in.Name),
		Email:     strings.TrimSpace(strings.ToLower(*in.Email)),
		Category:  defaultKOLCategory,
		Platform:  defaultKOLPlatform,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyKOLInput(&kol, in)

	if err := s.Store.KOLs().CreateKOL(ctx, kol); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.KOL{}, ErrKOLEmailTaken
		}
		log.Error("failed to create kol", slog.Any("error", err))
		return domain.KOL{}, err
	}

	log.Info("kol created", slog.String("kol_id", kol.ID))
	return kol, nil
}

// GetKOL fetches one profile by id.
func (s *KOLService) GetKOL(ctx context.Context, id string) (domain.KOL, error) {
	return s.Store.KOLs().GetKOLByID(ctx, id)
}

// ListKOLs returns profiles matching the filter, newest first.
func (s *KOLService) ListKOLs(ctx context.Context, f domain.KOLFilter) ([]domain.KOL, error) {
	return s.Store.KOLs().ListKOLs(ctx, f)
}

// UpdateKOL applies a partial update: fields not supplied keep their
// current values.
func (s *KOLService) UpdateKOL(ctx context.Context, id string, in KOLInput) (domain.KOL, error) {
	log := slogx.FromContext(ctx)

	var kol domain.KOL
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		kol, err = tx.KOLs().GetKOLByID(ctx, id)
		if err != nil {
			return err
		}

		applyKOLInput(&kol, in)
		kol.UpdatedAt = time.Now().UTC()

		if err := tx.KOLs().UpdateKOL(ctx, kol); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrKOLEmailTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) && !errors.Is(err, ErrKOLEmailTaken) {
			log.Error("failed to update kol", slog.String("kol_id", id), slog.Any("error", err))
		}
		return domain.KOL{}, err
	}
	return kol, nil
}

// DeleteKOL removes a profile. Campaigns that referenced it keep running
// with their kol link cleared.
func (s *KOLService) DeleteKOL(ctx context.Context, id string) error {
	return s.Store.KOLs().DeleteKOL(ctx, id)
}

func applyKOLInput(kol *domain.KOL, in KOLInput) {
	if in.Name != nil {
		kol.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		kol.Email = strings.TrimSpace(strings.ToLower(*in.Email))
	}
	if in.Category != nil {
		kol.Category = *in.Category
	}
	if in.Platform != nil {
		kol.Platform = *in.Platform
	}
	if in.Followers != nil {
		kol.Followers = *in.Followers
	}
	if in.EngagementRate != nil {
		kol.EngagementRate = *in.EngagementRate
	}
	if in.Bio != nil {
		kol.Bio = *in.Bio
	}
	if in.ProfileImage != nil {
		kol.ProfileImage = *in.ProfileImage
	}
	if in.PricePerPost != nil {
		kol.PricePerPost = *in.PricePerPost
	}
	if in.Verified != nil {
		kol.Verified = *in.Verified
	}
}
