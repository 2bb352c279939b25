package service

import (
	"context"
	"fmt"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/openvoyage/voyage/internal/cms/domain"
	"github.com/openvoyage/voyage/internal/cms/store"
	"github.com/openvoyage/voyage/pkg/idx"
)

// DestinationService manages the destination catalogue.
type DestinationService struct {
	Store store.Store
}

// DestinationInput is a full create payload.
type DestinationInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"imageUrl"`
	Rating      *float64 `json:"rating"`
}

// DestinationPatch is a partial update; nil fields are left unchanged.
type DestinationPatch struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"imageUrl"`
	Rating      *float64 `json:"rating"`
}

func (in DestinationInput) validate() error {
	ve := newValidationError()
	validateDestinationTitle(ve, in.Title)
	validateDestinationDescription(ve, in.Description)
	validateDestinationPrice(ve, in.Price)
	validateImageURL(ve, "imageUrl", in.ImageURL)
	if in.Rating != nil {
		validateDestinationRating(ve, *in.Rating)
	}
	return ve.orNil()
}

func (p DestinationPatch) validate() error {
	ve := newValidationError()
	if p.Title != nil {
		validateDestinationTitle(ve, *p.Title)
	}
	if p.Description != nil {
		validateDestinationDescription(ve, *p.Description)
	}
	if p.Price != nil {
		validateDestinationPrice(ve, *p.Price)
	}
	if p.ImageURL != nil {
		validateImageURL(ve, "imageUrl", *p.ImageURL)
	}
	if p.Rating != nil {
		validateDestinationRating(ve, *p.Rating)
	}
	return ve.orNil()
}

func validateDestinationTitle(ve *ValidationError, title string) {
	if utf8.RuneCountInString(title) < 2 {
		ve.add("title", "must be at least 2 characters")
	}
}

func validateDestinationDescription(ve *ValidationError, desc string) {
	if utf8.RuneCountInString(desc) < 10 {
		ve.add("description", "must be at least 10 characters")
	}
}

func validateDestinationPrice(ve *ValidationError, price float64) {
	if price <= 0 {
		ve.add("price", "must be a positive number")
	}
}

func validateDestinationRating(ve *ValidationError, rating float64) {
	if rating < 0 || rating > 5 {
		ve.add("rating", "must be between 0 and 5")
	}
}

func validateImageURL(ve *ValidationError, field, raw string) {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		ve.add(field, "must be a valid URL")
	}
}

// List returns all destinations, newest first.
func (s *DestinationService) List(ctx context.Context) ([]domain.Destination, error) {
	return s.Store.Destinations().ListDestinations(ctx)
}

// Create validates the input and inserts a new destination.
func (s *DestinationService) Create(ctx context.Context, in DestinationInput) (domain.Destination, error) {
	if err := in.validate(); err != nil {
		return domain.Destination{}, err
	}

	now := time.Now().UTC()
	d := domain.Destination{
		ID:          idx.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Rating:      domain.DefaultRating,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Rating != nil {
		d.Rating = *in.Rating
	}

	if err := s.Store.Destinations().CreateDestination(ctx, d); err != nil {
		return domain.Destination{}, fmt.Errorf("create destination: %w", err)
	}
	return d, nil
}

// Update applies a partial patch to an existing destination and returns the
// updated record. The read and write share a transaction so concurrent
// patches cannot interleave.
func (s *DestinationService) Update(ctx context.Context, id string, p DestinationPatch) (domain.Destination, error) {
	if err := p.validate(); err != nil {
		return domain.Destination{}, err
	}

	var updated domain.Destination
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		d, err := tx.Destinations().GetDestinationByID(ctx, id)
		if err != nil {
			return err
		}

		if p.Title != nil {
			d.Title = *p.Title
		}
		if p.Description != nil {
			d.Description = *p.Description
		}
		if p.Price != nil {
			d.Price = *p.Price
		}
		if p.ImageURL != nil {
			d.ImageURL = *p.ImageURL
		}
		if p.Rating != nil {
			d.Rating = *p.Rating
		}
		d.UpdatedAt = time.Now().UTC()

		if err := tx.Destinations().UpdateDestination(ctx, d); err != nil {
			return err
		}
		updated = d
		return nil
	})
	if err != nil {
		return domain.Destination{}, err
	}
	return updated, nil
}

// Delete removes a destination. Deleting an id that no longer exists is fine.
func (s *DestinationService) Delete(ctx context.Context, id string) error {
	return s.Store.Destinations().DeleteDestination(ctx, id)
}
