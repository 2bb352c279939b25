package service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/openvoyage/voyage/internal/cms/domain"
	"github.com/openvoyage/voyage/internal/cms/store"
	"github.com/openvoyage/voyage/pkg/idx"
)

// TestimonialService manages customer testimonials.
type TestimonialService struct {
	Store store.Store
}

// TestimonialInput is a full create payload.
type TestimonialInput struct {
	Name      string `json:"name"`
	Comment   string `json:"comment"`
	AvatarURL string `json:"avatarUrl"`
}

// TestimonialPatch is a partial update; nil fields are left unchanged.
type TestimonialPatch struct {
	Name      *string `json:"name"`
	Comment   *string `json:"comment"`
	AvatarURL *string `json:"avatarUrl"`
}

func (in TestimonialInput) validate() error {
	ve := newValidationError()
	validateTestimonialName(ve, in.Name)
	validateTestimonialComment(ve, in.Comment)
	validateImageURL(ve, "avatarUrl", in.AvatarURL)
	return ve.orNil()
}

func (p TestimonialPatch) validate() error {
	ve := newValidationError()
	if p.Name != nil {
		validateTestimonialName(ve, *p.Name)
	}
	if p.Comment != nil {
		validateTestimonialComment(ve, *p.Comment)
	}
	if p.AvatarURL != nil {
		validateImageURL(ve, "avatarUrl", *p.AvatarURL)
	}
	return ve.orNil()
}

func validateTestimonialName(ve *ValidationError, name string) {
	if utf8.RuneCountInString(name) < 2 {
		ve.add("name", "must be at least 2 characters")
	}
}

func validateTestimonialComment(ve *ValidationError, comment string) {
	if utf8.RuneCountInString(comment) < 5 {
		ve.add("comment", "must be at least 5 characters")
	}
}

// List returns all testimonials, newest first.
func (s *TestimonialService) List(ctx context.Context) ([]domain.Testimonial, error) {
	return s.Store.Testimonials().ListTestimonials(ctx)
}

// Create validates the input and inserts a new testimonial.
func (s *TestimonialService) Create(ctx context.Context, in TestimonialInput) (domain.Testimonial, error) {
	if err := in.validate(); err != nil {
		return domain.Testimonial{}, err
	}

	now := time.Now().UTC()
	tm := domain.Testimonial{
		ID:        idx.New().String(),
		Name:      in.Name,
		Comment:   in.Comment,
		AvatarURL: in.AvatarURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Store.Testimonials().CreateTestimonial(ctx, tm); err != nil {
		return domain.Testimonial{}, fmt.Errorf("create testimonial: %w", err)
	}
	return tm, nil
}

// Update applies a partial patch to an existing testimonial and returns the
// updated record.
func (s *TestimonialService) Update(ctx context.Context, id string, p TestimonialPatch) (domain.Testimonial, error) {
	if err := p.validate(); err != nil {
		return domain.Testimonial{}, err
	}

	var updated domain.Testimonial
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		tm, err := tx.Testimonials().GetTestimonialByID(ctx, id)
		if err != nil {
			return err
		}

		if p.Name != nil {
			tm.Name = *p.Name
		}
		if p.Comment != nil {
			tm.Comment = *p.Comment
		}
		if p.AvatarURL != nil {
			tm.AvatarURL = *p.AvatarURL
		}
		tm.UpdatedAt = time.Now().UTC()

		if err := tx.Testimonials().UpdateTestimonial(ctx, tm); err != nil {
			return err
		}
		updated = tm
		return nil
	})
	if err != nil {
		return domain.Testimonial{}, err
	}
	return updated, nil
}

// Delete removes a testimonial. Deleting an id that no longer exists is fine.
func (s *TestimonialService) Delete(ctx context.Context, id string) error {
	return s.Store.Testimonials().DeleteTestimonial(ctx, id)
}
