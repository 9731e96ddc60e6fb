package service

import (
	"context"
	"testing"

	"github.com/kolmarket/kolmarket/internal/market/domain"
	"github.com/kolmarket/kolmarket/internal/market/store"
	"github.com/kolmarket/kolmarket/pkg/idx"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string   { return &s }
func i64Ptr(i int64) *int64     { return &i }
func f64Ptr(f float64) *float64 { return &f }

func TestCreateKOL(t *testing.T) {
	ctx := context.Background()
	svc := &KOLService{Store: newTestStore(t)}

	kol, err := svc.CreateKOL(ctx, KOLInput{
		Name:      strPtr("  Creator  "),
		Email:     strPtr("Creator@Example.COM"),
		Followers: i64Ptr(5000),
	})
	require.NoError(t, err)
	require.Equal(t, "Creator", kol.Name)
	require.Equal(t, "creator@example.com", kol.Email)
	require.Equal(t, "general", kol.Category)
	require.Equal(t, "instagram", kol.Platform)
	require.Equal(t, int64(5000), kol.Followers)

	t.Run("missing name or email", func(t *testing.T) {
		_, err := svc.CreateKOL(ctx, KOLInput{Email: strPtr("x@example.com")})
		require.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.CreateKOL(ctx, KOLInput{Name: strPtr("X"), Email: strPtr("  ")})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.CreateKOL(ctx, KOLInput{
			Name:  strPtr("Other"),
			Email: strPtr("creator@example.com"),
		})
		require.ErrorIs(t, err, ErrKOLEmailTaken)
	})
}

func TestListKOLsFilters(t *testing.T) {
	ctx := context.Background()
	svc := &KOLService{Store: newTestStore(t)}

	seed := []KOLInput{
		{Name: strPtr("A"), Email: strPtr("a@example.com"), Category: strPtr("fashion"), Followers: i64Ptr(1000), PricePerPost: f64Ptr(50)},
		{Name: strPtr("B"), Email: strPtr("b@example.com"), Category: strPtr("fashion"), Followers: i64Ptr(50000), PricePerPost: f64Ptr(400)},
		{Name: strPtr("C"), Email: strPtr("c@example.com"), Category: strPtr("food"), Followers: i64Ptr(20000), PricePerPost: f64Ptr(150)},
	}
	for _, in := range seed {
		_, err := svc.CreateKOL(ctx, in)
		require.NoError(t, err)
	}

	all, err := svc.ListKOLs(ctx, domain.KOLFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	fashion, err := svc.ListKOLs(ctx, domain.KOLFilter{Category: "fashion"})
	require.NoError(t, err)
	require.Len(t, fashion, 2)

	big, err := svc.ListKOLs(ctx, domain.KOLFilter{MinFollowers: 10000})
	require.NoError(t, err)
	require.Len(t, big, 2)

	// Filters compose with AND.
	cheapFood, err := svc.ListKOLs(ctx, domain.KOLFilter{Category: "food", MaxPrice: 200})
	require.NoError(t, err)
	require.Len(t, cheapFood, 1)
	require.Equal(t, "C", cheapFood[0].Name)

	none, err := svc.ListKOLs(ctx, domain.KOLFilter{Category: "gaming"})
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestUpdateKOLPartial(t *testing.T) {
	ctx := context.Background()
	svc := &KOLService{Store: newTestStore(t)}

	kol, err := svc.CreateKOL(ctx, KOLInput{
		Name:      strPtr("Creator"),
		Email:     strPtr("creator@example.com"),
		Category:  strPtr("fashion"),
		Followers: i64Ptr(1000),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateKOL(ctx, kol.ID, KOLInput{Followers: i64Ptr(2000)})
	require.NoError(t, err)
	require.Equal(t, int64(2000), updated.Followers)
	// Untouched fields keep their values.
	require.Equal(t, "Creator", updated.Name)
	require.Equal(t, "fashion", updated.Category)

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.UpdateKOL(ctx, idx.New().String(), KOLInput{Followers: i64Ptr(1)})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("email collision", func(t *testing.T) {
		_, err := svc.CreateKOL(ctx, KOLInput{Name: strPtr("Other"), Email: strPtr("other@example.com")})
		require.NoError(t, err)

		_, err = svc.UpdateKOL(ctx, kol.ID, KOLInput{Email: strPtr("other@example.com")})
		require.ErrorIs(t, err, ErrKOLEmailTaken)
	})
}

func TestDeleteKOL(t *testing.T) {
	ctx := context.Background()
	svc := &KOLService{Store: newTestStore(t)}

	kol, err := svc.CreateKOL(ctx, KOLInput{Name: strPtr("Creator"), Email: strPtr("creator@example.com")})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteKOL(ctx, kol.ID))

	_, err = svc.GetKOL(ctx, kol.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, svc.DeleteKOL(ctx, kol.ID), store.ErrNotFound)
}
