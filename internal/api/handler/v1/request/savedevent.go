package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type SaveEventRequest struct {
	EventID uint `json:"eventId"`
}

func (req *SaveEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required),
	)
}
