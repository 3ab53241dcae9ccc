package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/linkt-app/linkt-api/internal/domain"
	"github.com/linkt-app/linkt-api/internal/repository"
)

var (
	ErrEventNotFound  = repository.ErrEventNotFound
	ErrTicketNotFound = repository.ErrTicketNotFound
	ErrNotEventOwner  = errors.New("user is not the organizer of this event")
)

type TicketRepository interface {
	Create(ctx context.Context, userID, eventID uint) (domain.Ticket, error)
	FindByID(ctx context.Context, id uint) (domain.Ticket, error)
	FindByQRCode(ctx context.Context, qrCode string) (domain.Ticket, error)
	FindByUserID(ctx context.Context, userID uint) ([]domain.Ticket, error)
	FindByEventID(ctx context.Context, eventID uint) ([]domain.Ticket, error)
	MarkScanned(ctx context.Context, qrCode string, scannedAt string, scannedBy uint) (bool, error)
	CountByEventID(ctx context.Context, eventID uint) (int64, error)
	CountScannedByEventID(ctx context.Context, eventID uint) (int64, error)
}

type TicketEventRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Event, error)
}

type TicketUserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

// TicketService owns the ticket lifecycle: purchase, QR validation at the
// door, and per-event scan statistics. A ticket moves through exactly one
// transition, unscanned to scanned, and never back.
type TicketService struct {
	repo      TicketRepository
	eventRepo TicketEventRepository
	userRepo  TicketUserRepository
	now       func() time.Time
}

func NewTicketService(repo TicketRepository, eventRepo TicketEventRepository, userRepo TicketUserRepository) *TicketService {
	return &TicketService{
		repo:      repo,
		eventRepo: eventRepo,
		userRepo:  userRepo,
		now:       time.Now,
	}
}

// Purchase issues a new unscanned ticket for the event. The QR code is
// derived from (eventId, ticketId) once the database assigns the id.
func (s *TicketService) Purchase(ctx context.Context, userID, eventID uint) (domain.Ticket, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domain.Ticket{}, ErrEventNotFound
		}

		return domain.Ticket{}, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}

	ticket, err := s.repo.Create(ctx, userID, eventID)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return ticket, nil
}

func (s *TicketService) GetTicket(ctx context.Context, id uint) (domain.Ticket, error) {
	ticket, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return domain.Ticket{}, ErrTicketNotFound
		}

		return domain.Ticket{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return ticket, nil
}

func (s *TicketService) GetUserTickets(ctx context.Context, userID uint) ([]domain.Ticket, error) {
	tickets, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}

	return tickets, nil
}

// Validate runs the door scan. The caller must already be authenticated;
// ownership of the event is checked here and is the only failure that
// surfaces as an error. Every other outcome, including malformed codes,
// unknown codes, wrong-event codes and repeat scans, is a ScanResult the
// scanner UI branches on.
//
// A code bound to a different event reports plain INVALID rather than a
// dedicated status, so a scanner for event A cannot probe which codes
// exist for event B.
func (s *TicketService) Validate(ctx context.Context, eventID uint, qrCode string, scannerID uint) (domain.ScanResult, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domain.ScanResult{}, ErrEventNotFound
		}

		return domain.ScanResult{}, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}

	if event.OrganizerID != scannerID {
		return domain.ScanResult{}, ErrNotEventOwner
	}

	if _, _, ok := domain.ParseQRCode(qrCode); !ok {
		return invalidScan(), nil
	}

	ticket, err := s.repo.FindByQRCode(ctx, qrCode)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return invalidScan(), nil
		}

		return domain.ScanResult{}, fmt.Errorf("s.repo.FindByQRCode -> %w", err)
	}

	if ticket.EventID != eventID {
		return invalidScan(), nil
	}

	if ticket.IsScanned {
		return s.alreadyScanned(ctx, ticket), nil
	}

	scannedAt := s.now().UTC().Format(time.RFC3339)
	won, err := s.repo.MarkScanned(ctx, qrCode, scannedAt, scannerID)
	if err != nil {
		return domain.ScanResult{}, fmt.Errorf("s.repo.MarkScanned -> %w", err)
	}
	if !won {
		// Another scanner raced us between the read and the update.
		// The conditional update is the arbiter: zero rows means the
		// ticket was already consumed.
		fresh, err := s.repo.FindByQRCode(ctx, qrCode)
		if err != nil {
			return domain.ScanResult{}, fmt.Errorf("s.repo.FindByQRCode -> %w", err)
		}

		return s.alreadyScanned(ctx, fresh), nil
	}

	scanner, err := s.userRepo.FindByID(ctx, scannerID)
	if err != nil {
		return domain.ScanResult{}, fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}

	ticket.IsScanned = true
	ticket.ScannedAt = &scannedAt
	ticket.ScannedBy = &scannerID

	return domain.ScanResult{
		Valid:     true,
		Status:    domain.ScanStatusSuccess,
		Message:   "Ticket successfully scanned for " + ticket.Student.FullName(),
		Ticket:    &ticket,
		ScannedAt: &scannedAt,
		ScannedBy: scanner.FullName(),
	}, nil
}

// GetScanStats aggregates the scan counters for one event. Counts are read
// from committed state, so a stats call issued after a successful Validate
// always reflects that scan.
func (s *TicketService) GetScanStats(ctx context.Context, eventID, requesterID uint) (domain.ScanStats, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domain.ScanStats{}, ErrEventNotFound
		}

		return domain.ScanStats{}, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}

	if event.OrganizerID != requesterID {
		return domain.ScanStats{}, ErrNotEventOwner
	}

	total, err := s.repo.CountByEventID(ctx, eventID)
	if err != nil {
		return domain.ScanStats{}, fmt.Errorf("s.repo.CountByEventID -> %w", err)
	}

	scanned, err := s.repo.CountScannedByEventID(ctx, eventID)
	if err != nil {
		return domain.ScanStats{}, fmt.Errorf("s.repo.CountScannedByEventID -> %w", err)
	}

	return domain.ScanStats{
		EventID:        eventID,
		EventName:      event.Title,
		TotalTickets:   int(total),
		ScannedCount:   int(scanned),
		RemainingCount: int(total - scanned),
	}, nil
}

// GetRegisteredStudents lists everyone holding a ticket for the event,
// owner only.
func (s *TicketService) GetRegisteredStudents(ctx context.Context, eventID, organizerID uint) ([]domain.StudentRegistration, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}

		return nil, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}

	if event.OrganizerID != organizerID {
		return nil, ErrNotEventOwner
	}

	tickets, err := s.repo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByEventID -> %w", err)
	}

	registrations := make([]domain.StudentRegistration, len(tickets))
	for i, t := range tickets {
		registrations[i] = domain.StudentRegistration{
			UserID:    t.Student.UserID,
			FirstName: t.Student.FirstName,
			LastName:  t.Student.LastName,
			Email:     t.Student.Email,
			TicketID:  t.TicketID,
			QRCode:    t.QRCode,
			IsScanned: t.IsScanned,
			ScannedAt: t.ScannedAt,
		}
	}

	return registrations, nil
}

func invalidScan() domain.ScanResult {
	return domain.ScanResult{
		Valid:   false,
		Status:  domain.ScanStatusInvalid,
		Message: "Invalid ticket code",
	}
}

func (s *TicketService) alreadyScanned(ctx context.Context, ticket domain.Ticket) domain.ScanResult {
	scannedBy := "Unknown"
	if ticket.ScannedBy != nil {
		if scanner, err := s.userRepo.FindByID(ctx, *ticket.ScannedBy); err == nil {
			scannedBy = scanner.FullName()
		}
	}

	scannedAt := "unknown time"
	if ticket.ScannedAt != nil {
		scannedAt = *ticket.ScannedAt
	}

	return domain.ScanResult{
		Valid:     false,
		Status:    domain.ScanStatusAlreadyScanned,
		Message:   "Ticket already scanned at " + scannedAt + " by " + scannedBy,
		ScannedAt: ticket.ScannedAt,
		ScannedBy: scannedBy,
	}
}
