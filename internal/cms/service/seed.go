package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/openvoyage/voyage/internal/cms/domain"
	"github.com/openvoyage/voyage/internal/cms/store"
	"github.com/openvoyage/voyage/pkg/cryptox"
	"github.com/openvoyage/voyage/pkg/idx"
)

// SeedService wipes and repopulates the database with the demo catalogue and
// a single admin account. It is only ever run from cmd/seed, never by the
// server.
type SeedService struct {
	Store  store.Store
	Logger *slog.Logger
}

// SeedOptions configure the admin account created by Run.
type SeedOptions struct {
	AdminEmail    string
	AdminName     string
	AdminPassword string
}

// Run replaces all users, destinations and testimonials in one transaction,
// so a failed seed leaves the previous data intact.
func (s *SeedService) Run(ctx context.Context, opts SeedOptions) error {
	hash, err := cryptox.HashPassword(opts.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	now := time.Now().UTC()

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().DeleteAllUsers(ctx); err != nil {
			return err
		}
		if err := tx.Destinations().DeleteAllDestinations(ctx); err != nil {
			return err
		}
		if err := tx.Testimonials().DeleteAllTestimonials(ctx); err != nil {
			return err
		}

		admin := domain.User{
			ID:           idx.New().String(),
			Email:        opts.AdminEmail,
			Name:         opts.AdminName,
			PasswordHash: hash,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := tx.Users().CreateUser(ctx, admin); err != nil {
			return err
		}

		// Stagger created_at so "newest first" ordering is stable.
		for i, d := range sampleDestinations {
			at := now.Add(time.Duration(i) * time.Second)
			d.ID = idx.NewAt(at).String()
			d.CreatedAt = at
			d.UpdatedAt = at
			if err := tx.Destinations().CreateDestination(ctx, d); err != nil {
				return err
			}
		}

		for i, tm := range sampleTestimonials {
			at := now.Add(time.Duration(i) * time.Second)
			tm.ID = idx.NewAt(at).String()
			tm.CreatedAt = at
			tm.UpdatedAt = at
			if err := tx.Testimonials().CreateTestimonial(ctx, tm); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	s.Logger.Info("database seeded",
		"destinations", len(sampleDestinations),
		"testimonials", len(sampleTestimonials),
		"admin_email", opts.AdminEmail,
	)
	return nil
}

var sampleDestinations = []domain.Destination{
	{
		Title:       "Paris, France",
		Description: "Experience the romance and elegance of the City of Light. Visit iconic landmarks like the Eiffel Tower, Louvre Museum, and stroll along the Seine River.",
		Price:       1299,
		ImageURL:    "https://images.unsplash.com/photo-1502602898536-47ad22581b52?w=800&h=600&fit=crop",
		Rating:      4.8,
	},
	{
		Title:       "Tokyo, Japan",
		Description: "Discover the perfect blend of traditional culture and modern innovation in Japan's bustling capital. From ancient temples to futuristic skyscrapers.",
		Price:       1599,
		ImageURL:    "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?w=800&h=600&fit=crop",
		Rating:      4.9,
	},
	{
		Title:       "Santorini, Greece",
		Description: "Enjoy breathtaking sunsets, white-washed buildings, and crystal-clear waters in this stunning Greek island paradise.",
		Price:       999,
		ImageURL:    "https://images.unsplash.com/photo-1570077188670-e3a8d69ac5ff?w=800&h=600&fit=crop",
		Rating:      4.7,
	},
	{
		Title:       "Bali, Indonesia",
		Description: "Relax in tropical paradise with pristine beaches, lush rice terraces, and rich cultural heritage. Perfect for both adventure and relaxation.",
		Price:       899,
		ImageURL:    "https://images.unsplash.com/photo-1537953773345-d172ccf13cf1?w=800&h=600&fit=crop",
		Rating:      4.6,
	},
	{
		Title:       "New York City, USA",
		Description: "Experience the city that never sleeps. From Broadway shows to world-class museums, iconic landmarks to diverse neighborhoods.",
		Price:       1199,
		ImageURL:    "https://images.unsplash.com/photo-1496442226666-8d4d0e62e6e9?w=800&h=600&fit=crop",
		Rating:      4.5,
	},
	{
		Title:       "Dubai, UAE",
		Description: "Marvel at modern architecture, luxury shopping, and desert adventures in this futuristic city of gold.",
		Price:       1399,
		ImageURL:    "https://images.unsplash.com/photo-1512453979798-5ea266f8880c?w=800&h=600&fit=crop",
		Rating:      4.4,
	},
}

var sampleTestimonials = []domain.Testimonial{
	{
		Name:      "Sarah Johnson",
		Comment:   "Absolutely amazing experience! The travel agency made everything seamless and the destinations were breathtaking. Highly recommend!",
		AvatarURL: "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=200&h=200&fit=crop&crop=face",
	},
	{
		Name:      "Michael Chen",
		Comment:   "Professional service and attention to detail. They helped plan the perfect honeymoon trip to Santorini. Unforgettable memories!",
		AvatarURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=200&h=200&fit=crop&crop=face",
	},
	{
		Name:      "Emily Rodriguez",
		Comment:   "Best travel agency I've ever worked with. They understood exactly what I wanted and delivered beyond expectations.",
		AvatarURL: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=200&h=200&fit=crop&crop=face",
	},
	{
		Name:      "David Thompson",
		Comment:   "From booking to return, everything was perfectly organized. The local guides were knowledgeable and the accommodations were top-notch.",
		AvatarURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=200&h=200&fit=crop&crop=face",
	},
	{
		Name:      "Lisa Wang",
		Comment:   "Amazing value for money and incredible customer service. They made our family vacation to Japan absolutely perfect!",
		AvatarURL: "https://images.unsplash.com/photo-1517841905240-472988babdf9?w=200&h=200&fit=crop&crop=face",
	},
}
