package repository

import (
	"context"
	"fmt"

	"github.com/linkt-app/linkt-api/internal/domain"
	"github.com/linkt-app/linkt-api/internal/repository/dao"
)

var ErrTicketNotFound = dao.ErrTicketNotFound

type TicketDAO interface {
	Insert(ctx context.Context, ticket dao.Ticket, deriveQRCode func(eventID, ticketID uint) string) (dao.Ticket, error)
	FindByID(ctx context.Context, id uint) (dao.Ticket, error)
	FindByQRCode(ctx context.Context, qrCode string) (dao.Ticket, error)
	FindByUserID(ctx context.Context, userID uint) ([]dao.Ticket, error)
	FindByEventID(ctx context.Context, eventID uint) ([]dao.Ticket, error)
	MarkScanned(ctx context.Context, qrCode string, scannedAt string, scannedBy uint) (bool, error)
	CountByEventID(ctx context.Context, eventID uint) (int64, error)
	CountScannedByEventID(ctx context.Context, eventID uint) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountScanned(ctx context.Context) (int64, error)
	TopEventsByTicketCount(ctx context.Context, limit int) ([]dao.EventTicketCount, error)
}

type TicketRepository struct {
	dao TicketDAO
}

func NewTicketRepository(dao TicketDAO) *TicketRepository {
	return &TicketRepository{
		dao: dao,
	}
}

func (r *TicketRepository) Create(ctx context.Context, userID, eventID uint) (domain.Ticket, error) {
	created, err := r.dao.Insert(ctx, dao.Ticket{
		UserID:  userID,
		EventID: eventID,
	}, domain.QRCodeFor)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	// The insert does not preload associations; fetch the full row so the
	// response carries the student and event summaries.
	full, err := r.dao.FindByID(ctx, created.TicketID)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return ticketDAOToDomain(full), nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (domain.Ticket, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return ticketDAOToDomain(found), nil
}

func (r *TicketRepository) FindByQRCode(ctx context.Context, qrCode string) (domain.Ticket, error) {
	found, err := r.dao.FindByQRCode(ctx, qrCode)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("r.dao.FindByQRCode -> %w", err)
	}

	return ticketDAOToDomain(found), nil
}

func (r *TicketRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Ticket, error) {
	found, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	tickets := make([]domain.Ticket, len(found))
	for i, t := range found {
		tickets[i] = ticketDAOToDomain(t)
	}

	return tickets, nil
}

func (r *TicketRepository) FindByEventID(ctx context.Context, eventID uint) ([]domain.Ticket, error) {
	found, err := r.dao.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEventID -> %w", err)
	}

	tickets := make([]domain.Ticket, len(found))
	for i, t := range found {
		tickets[i] = ticketDAOToDomain(t)
	}

	return tickets, nil
}

func (r *TicketRepository) MarkScanned(ctx context.Context, qrCode string, scannedAt string, scannedBy uint) (bool, error) {
	won, err := r.dao.MarkScanned(ctx, qrCode, scannedAt, scannedBy)
	if err != nil {
		return false, fmt.Errorf("r.dao.MarkScanned -> %w", err)
	}

	return won, nil
}

func (r *TicketRepository) CountByEventID(ctx context.Context, eventID uint) (int64, error) {
	count, err := r.dao.CountByEventID(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountByEventID -> %w", err)
	}

	return count, nil
}

func (r *TicketRepository) CountScannedByEventID(ctx context.Context, eventID uint) (int64, error) {
	count, err := r.dao.CountScannedByEventID(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountScannedByEventID -> %w", err)
	}

	return count, nil
}

func (r *TicketRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.dao.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return count, nil
}

func (r *TicketRepository) CountScanned(ctx context.Context) (int64, error) {
	count, err := r.dao.CountScanned(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountScanned -> %w", err)
	}

	return count, nil
}

func (r *TicketRepository) TopEventsByTicketCount(ctx context.Context, limit int) ([]domain.EventTicketStat, error) {
	rows, err := r.dao.TopEventsByTicketCount(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.TopEventsByTicketCount -> %w", err)
	}

	stats := make([]domain.EventTicketStat, len(rows))
	for i, row := range rows {
		stats[i] = domain.EventTicketStat{
			EventID:      row.EventID,
			EventName:    row.Title,
			TicketCount:  row.TicketCount,
			ScannedCount: row.ScannedCount,
		}
	}

	return stats, nil
}

func ticketDAOToDomain(t dao.Ticket) domain.Ticket {
	return domain.Ticket{
		TicketID:  t.TicketID,
		QRCode:    t.QRCode,
		UserID:    t.UserID,
		EventID:   t.EventID,
		Student:   userDAOToDomain(t.User),
		Event:     eventDAOToDomain(t.Event),
		IsScanned: t.IsScanned,
		ScannedAt: t.ScannedAt,
		ScannedBy: t.ScannedBy,
		CreatedAt: t.CreatedAt,
	}
}
