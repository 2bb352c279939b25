package store

import (
	"context"
	"errors"

	"github.com/openvoyage/voyage/internal/cms/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Destinations() Destinations
	Testimonials() Testimonials

	ApplyMigrations() error

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Users() Users
	Destinations() Destinations
	Testimonials() Testimonials

	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByEmail is used during login.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// DeleteAllUsers wipes the table. Seeding only.
	DeleteAllUsers(ctx context.Context) error
}

type Destinations interface {
	// ListDestinations returns all destinations, newest first.
	ListDestinations(ctx context.Context) ([]domain.Destination, error)

	// GetDestinationByID returns a destination by id.
	GetDestinationByID(ctx context.Context, id string) (domain.Destination, error)

	// CreateDestination inserts a new destination (id is ULID).
	CreateDestination(ctx context.Context, d domain.Destination) error

	// UpdateDestination overwrites all mutable fields and bumps updated_at.
	UpdateDestination(ctx context.Context, d domain.Destination) error

	// DeleteDestination removes a destination. Deleting a missing id is not
	// an error.
	DeleteDestination(ctx context.Context, id string) error

	// DeleteAllDestinations wipes the table. Seeding only.
	DeleteAllDestinations(ctx context.Context) error
}

type Testimonials interface {
	// ListTestimonials returns all testimonials, newest first.
	ListTestimonials(ctx context.Context) ([]domain.Testimonial, error)

	// GetTestimonialByID returns a testimonial by id.
	GetTestimonialByID(ctx context.Context, id string) (domain.Testimonial, error)

	// CreateTestimonial inserts a new testimonial (id is ULID).
	CreateTestimonial(ctx context.Context, tm domain.Testimonial) error

	// UpdateTestimonial overwrites all mutable fields and bumps updated_at.
	UpdateTestimonial(ctx context.Context, tm domain.Testimonial) error

	// DeleteTestimonial removes a testimonial. Deleting a missing id is not
	// an error.
	DeleteTestimonial(ctx context.Context, id string) error

	// DeleteAllTestimonials wipes the table. Seeding only.
	DeleteAllTestimonials(ctx context.Context) error
}
