package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openvoyage/voyage/pkg/cryptox"
)

func TestSeedRun(t *testing.T) {
	ctx := context.Background()
	st := newContentStore(t)

	svc := &SeedService{Store: st, Logger: slog.Default()}
	opts := SeedOptions{
		AdminEmail:    "admin@example.com",
		AdminName:     "Admin User",
		AdminPassword: "admin123",
	}

	require.NoError(t, svc.Run(ctx, opts))

	t.Run("creates a usable admin account", func(t *testing.T) {
		user, err := st.Users().GetUserByEmail(ctx, "admin@example.com")
		require.NoError(t, err)
		require.NoError(t, cryptox.VerifyPassword("admin123", user.PasswordHash))
	})

	t.Run("populates the catalogue newest first", func(t *testing.T) {
		dests, err := st.Destinations().ListDestinations(ctx)
		require.NoError(t, err)
		require.Len(t, dests, len(sampleDestinations))
		require.Equal(t, "Dubai, UAE", dests[0].Title)

		tms, err := st.Testimonials().ListTestimonials(ctx)
		require.NoError(t, err)
		require.Len(t, tms, len(sampleTestimonials))
	})

	t.Run("re-running replaces instead of accumulating", func(t *testing.T) {
		require.NoError(t, svc.Run(ctx, opts))

		dests, err := st.Destinations().ListDestinations(ctx)
		require.NoError(t, err)
		require.Len(t, dests, len(sampleDestinations))
	})
}
