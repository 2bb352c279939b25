package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/openvoyage/voyage/internal/cms/domain"
	"github.com/openvoyage/voyage/internal/cms/store"
	"github.com/openvoyage/voyage/pkg/idx"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestUsersRepo(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	now := time.Now().UTC().Truncate(time.Second)
	admin := domain.User{
		ID:           idx.New().String(),
		Email:        "admin@example.com",
		Name:         "Admin User",
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	t.Run("create and fetch by email", func(t *testing.T) {
		require.NoError(t, st.Users().CreateUser(ctx, admin))

		got, err := st.Users().GetUserByEmail(ctx, "admin@example.com")
		require.NoError(t, err)
		require.Equal(t, admin.ID, got.ID)
		require.Equal(t, admin.Name, got.Name)
		require.Equal(t, admin.PasswordHash, got.PasswordHash)
	})

	t.Run("unknown email maps to ErrNotFound", func(t *testing.T) {
		_, err := st.Users().GetUserByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate email maps to ErrAlreadyExists", func(t *testing.T) {
		dupe := admin
		dupe.ID = idx.New().String()
		require.ErrorIs(t, st.Users().CreateUser(ctx, dupe), store.ErrAlreadyExists)
	})

	t.Run("delete all", func(t *testing.T) {
		require.NoError(t, st.Users().DeleteAllUsers(ctx))
		_, err := st.Users().GetUserByEmail(ctx, "admin@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestDestinationsRepo(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	mk := func(title string, createdAt time.Time) domain.Destination {
		d := domain.Destination{
			ID:          idx.NewAt(createdAt).String(),
			Title:       title,
			Description: "A place well worth visiting.",
			Price:       999,
			ImageURL:    "https://images.example.com/" + title,
			Rating:      4.5,
			CreatedAt:   createdAt,
			UpdatedAt:   createdAt,
		}
		require.NoError(t, st.Destinations().CreateDestination(ctx, d))
		return d
	}

	base := time.Now().UTC().Truncate(time.Second).Add(-time.Hour)
	older := mk("Paris", base)
	newer := mk("Tokyo", base.Add(time.Minute))

	t.Run("list newest first", func(t *testing.T) {
		list, err := st.Destinations().ListDestinations(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, newer.ID, list[0].ID)
		require.Equal(t, older.ID, list[1].ID)
	})

	t.Run("get by id", func(t *testing.T) {
		got, err := st.Destinations().GetDestinationByID(ctx, older.ID)
		require.NoError(t, err)
		require.Equal(t, "Paris", got.Title)

		_, err = st.Destinations().GetDestinationByID(ctx, idx.New().String())
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("update", func(t *testing.T) {
		upd := older
		upd.Price = 1299
		upd.UpdatedAt = base.Add(2 * time.Minute)
		require.NoError(t, st.Destinations().UpdateDestination(ctx, upd))

		got, err := st.Destinations().GetDestinationByID(ctx, older.ID)
		require.NoError(t, err)
		require.InDelta(t, 1299, got.Price, 0.001)

		missing := upd
		missing.ID = idx.New().String()
		require.ErrorIs(t, st.Destinations().UpdateDestination(ctx, missing), store.ErrNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		require.NoError(t, st.Destinations().DeleteDestination(ctx, newer.ID))
		require.NoError(t, st.Destinations().DeleteDestination(ctx, newer.ID))

		list, err := st.Destinations().ListDestinations(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
	})
}

func TestTestimonialsRepo(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	now := time.Now().UTC().Truncate(time.Second)
	tm := domain.Testimonial{
		ID:        idx.New().String(),
		Name:      "Sarah Johnson",
		Comment:   "Absolutely amazing experience!",
		AvatarURL: "https://images.example.com/sarah",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, st.Testimonials().CreateTestimonial(ctx, tm))

	t.Run("round trips", func(t *testing.T) {
		got, err := st.Testimonials().GetTestimonialByID(ctx, tm.ID)
		require.NoError(t, err)
		require.Equal(t, tm.Name, got.Name)
		require.Equal(t, tm.Comment, got.Comment)
		require.Equal(t, tm.AvatarURL, got.AvatarURL)
	})

	t.Run("update missing id", func(t *testing.T) {
		missing := tm
		missing.ID = idx.New().String()
		require.ErrorIs(t, st.Testimonials().UpdateTestimonial(ctx, missing), store.ErrNotFound)
	})
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	sentinel := errors.New("boom")
	now := time.Now().UTC().Truncate(time.Second)

	err := st.WithTx(ctx, func(tx store.Tx) error {
		d := domain.Destination{
			ID: idx.New().String(), Title: "Doomed", Description: "Never committed.",
			Price: 1, ImageURL: "https://x.test/img", Rating: 4.5,
			CreatedAt: now, UpdatedAt: now,
		}
		if err := tx.Destinations().CreateDestination(ctx, d); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	list, err := st.Destinations().ListDestinations(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}
