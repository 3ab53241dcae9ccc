package domain

import "time"

type SavedEvent struct {
	SavedEventID uint      `json:"savedEventId"`
	UserID       uint      `json:"userId"`
	EventID      uint      `json:"eventId"`
	Event        Event     `json:"event"`
	CreatedAt    time.Time `json:"createdAt"`
}
