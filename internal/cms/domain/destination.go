package domain

import "time"

// DefaultRating is applied when a destination is created without one.
const DefaultRating = 4.5

// Destination is a travel package shown in the landing-page carousel and
// managed from the dashboard.
type Destination struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
