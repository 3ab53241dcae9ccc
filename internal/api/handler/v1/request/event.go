package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type EventRequest struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	EventType     string  `json:"eventType"`
	StartDateTime string  `json:"startDateTime"`
	EndDateTime   string  `json:"endDateTime"`
	Location      string  `json:"location"`
	Coordinates   string  `json:"coordinates"`
	Capacity      int     `json:"capacity"`
	Image         string  `json:"image"`
	Price         float64 `json:"price"`
}

func (req *EventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Description, validation.Length(0, 1000)),
		validation.Field(&req.StartDateTime, validation.Required),
		validation.Field(&req.EndDateTime, validation.Required),
		validation.Field(&req.Capacity, validation.Min(0)),
		validation.Field(&req.Price, validation.Min(0.0)),
	)
}
