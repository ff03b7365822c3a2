package domain

import "time"

// Workspace is a co-working place saved by a user from a places search.
type Workspace struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	PlaceID   string    `json:"place_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Rating    float64   `json:"rating,omitempty"`
	SavedAt   time.Time `json:"saved_at"`
}
