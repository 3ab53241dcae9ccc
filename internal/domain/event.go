package domain

import "time"

type Event struct {
	EventID       uint      `json:"eventId"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	EventType     string    `json:"eventType"`
	StartDateTime string    `json:"startDateTime"`
	EndDateTime   string    `json:"endDateTime"`
	Location      string    `json:"location"`
	Coordinates   string    `json:"coordinates,omitempty"`
	Capacity      int       `json:"capacity"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	Price         float64   `json:"price"`
	OrganizerID   uint      `json:"organizerId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// EventWithTicketCount is what an organizer sees in their dashboard listing.
type EventWithTicketCount struct {
	Event
	TicketCount int `json:"ticketCount"`
}
