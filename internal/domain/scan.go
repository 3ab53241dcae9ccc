package domain

// Scan statuses. Scan outcomes are domain results, not transport errors:
// every outcome travels back as HTTP 200 with one of these statuses, and
// clients branch on the status field.
const (
	ScanStatusSuccess        = "SUCCESS"
	ScanStatusAlreadyScanned = "ALREADY_SCANNED"
	ScanStatusInvalid        = "INVALID"
)

// ScanResult is the outcome of validating one QR code at the door.
type ScanResult struct {
	Valid     bool
	Status    string
	Message   string
	Ticket    *Ticket
	ScannedAt *string
	ScannedBy string
}

// ScanStats are per-event scan counters, computed on demand.
type ScanStats struct {
	EventID        uint
	EventName      string
	TotalTickets   int
	ScannedCount   int
	RemainingCount int
}

// StudentRegistration is one row of an event's registered-students listing.
type StudentRegistration struct {
	UserID    uint    `json:"userId"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	TicketID  uint    `json:"ticketId"`
	QRCode    string  `json:"qrCode"`
	IsScanned bool    `json:"isScanned"`
	ScannedAt *string `json:"scannedAt"`
}

// GlobalStats is the administrator dashboard aggregate.
type GlobalStats struct {
	TotalEvents           int64             `json:"totalEvents"`
	TotalTickets          int64             `json:"totalTickets"`
	TotalScannedTickets   int64             `json:"totalScannedTickets"`
	TotalUnscannedTickets int64             `json:"totalUnscannedTickets"`
	TotalStudents         int64             `json:"totalStudents"`
	TotalOrganizers       int64             `json:"totalOrganizers"`
	ScanRate              float64           `json:"scanRate"`
	TopEvents             []EventTicketStat `json:"topEvents"`
}

type EventTicketStat struct {
	EventID      uint   `json:"eventId"`
	EventName    string `json:"eventName"`
	TicketCount  int64  `json:"ticketCount"`
	ScannedCount int64  `json:"scannedCount"`
}
