package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// QR codes are the wire identity of a ticket: "LINKT-{eventId}-{ticketId}",
// both decimal, no leading zeros. The format is fixed and consumed by the
// mobile scanner, so it never changes shape.
const qrCodePrefix = "LINKT"

var qrCodePattern = regexp.MustCompile(`^LINKT-([1-9][0-9]*)-([1-9][0-9]*)$`)

type Ticket struct {
	TicketID  uint      `json:"ticketId"`
	QRCode    string    `json:"qrCode"`
	UserID    uint      `json:"-"`
	EventID   uint      `json:"-"`
	Student   User      `json:"student"`
	Event     Event     `json:"event"`
	IsScanned bool      `json:"isScanned"`
	ScannedAt *string   `json:"scannedAt"`
	ScannedBy *uint     `json:"scannedBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// QRCodeFor derives the canonical QR code for a persisted ticket.
func QRCodeFor(eventID, ticketID uint) string {
	return fmt.Sprintf("%s-%d-%d", qrCodePrefix, eventID, ticketID)
}

// ParseQRCode validates the QR format and extracts the (eventId, ticketId)
// pair. ok is false for anything that does not match the pattern exactly.
func ParseQRCode(code string) (eventID, ticketID uint, ok bool) {
	m := qrCodePattern.FindStringSubmatch(code)
	if m == nil {
		return 0, 0, false
	}

	e, err := strconv.ParseUint(m[1], 10, 32)
	if err != nil {
		return 0, 0, false
	}
	t, err := strconv.ParseUint(m[2], 10, 32)
	if err != nil {
		return 0, 0, false
	}

	return uint(e), uint(t), true
}
