package response

import "github.com/linkt-app/linkt-api/internal/domain"

// ScanResponse always travels with HTTP 200; clients branch on Status.
type ScanResponse struct {
	Valid      bool        `json:"valid"`
	Status     string      `json:"status"`
	Message    string      `json:"message"`
	TicketData *TicketData `json:"ticketData,omitempty"`
	ScannedAt  *string     `json:"scannedAt,omitempty"`
	ScannedBy  string      `json:"scannedBy,omitempty"`
}

// TicketData is the entry-desk summary shown after a successful scan.
type TicketData struct {
	TicketID     uint   `json:"ticketId"`
	StudentName  string `json:"studentName"`
	StudentEmail string `json:"studentEmail"`
	EventName    string `json:"eventName"`
	EventDate    string `json:"eventDate"`
	TicketType   string `json:"ticketType"`
}

type ScanStatsResponse struct {
	EventID        uint   `json:"eventId"`
	EventName      string `json:"eventName"`
	TotalTickets   int    `json:"totalTickets"`
	ScannedCount   int    `json:"scannedCount"`
	RemainingCount int    `json:"remainingCount"`
}

func NewScanResponse(result domain.ScanResult) ScanResponse {
	resp := ScanResponse{
		Valid:     result.Valid,
		Status:    result.Status,
		Message:   result.Message,
		ScannedAt: result.ScannedAt,
		ScannedBy: result.ScannedBy,
	}

	if result.Ticket != nil {
		resp.TicketData = &TicketData{
			TicketID:     result.Ticket.TicketID,
			StudentName:  result.Ticket.Student.FullName(),
			StudentEmail: result.Ticket.Student.Email,
			EventName:    result.Ticket.Event.Title,
			EventDate:    result.Ticket.Event.StartDateTime,
			TicketType:   "General Admission",
		}
	}

	return resp
}

func NewScanStatsResponse(stats domain.ScanStats) ScanStatsResponse {
	return ScanStatsResponse{
		EventID:        stats.EventID,
		EventName:      stats.EventName,
		TotalTickets:   stats.TotalTickets,
		ScannedCount:   stats.ScannedCount,
		RemainingCount: stats.RemainingCount,
	}
}
