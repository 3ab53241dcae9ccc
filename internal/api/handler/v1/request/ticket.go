package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type PurchaseTicketRequest struct {
	EventID uint `json:"eventId"`
}

func (req *PurchaseTicketRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required),
	)
}

// ScanRequest carries the scanned QR code. EventID duplicates the path
// parameter; the path wins, the body copy is accepted for scanner
// compatibility.
type ScanRequest struct {
	QRCode  string `json:"qrCode"`
	EventID uint   `json:"eventId"`
}

func (req *ScanRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.QRCode, validation.Required),
	)
}
