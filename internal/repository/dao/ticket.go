package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrTicketNotFound = errors.New("ticket not found")

type Ticket struct {
	TicketID uint `gorm:"primaryKey"`

	// Derived from (EventID, TicketID) after the insert assigns the id,
	// then written back. Unique across all events.
	QRCode string `gorm:"uniqueIndex"`

	UserID uint `gorm:"not null;index"`
	User   User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	EventID uint  `gorm:"not null;index"`
	Event   Event `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`

	IsScanned bool `gorm:"not null;default:false"`
	ScannedAt *string
	ScannedBy *uint

	CreatedAt time.Time
}

type TicketDAO struct {
	db *gorm.DB
}

func NewTicketDAO(db *gorm.DB) *TicketDAO {
	return &TicketDAO{
		db: db,
	}
}

// Insert persists the ticket and derives its QR code in one transaction.
// The id comes from the database sequence, so the QR code can only be
// computed after the first insert.
func (d *TicketDAO) Insert(ctx context.Context, ticket Ticket, deriveQRCode func(eventID, ticketID uint) string) (Ticket, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&ticket).Error; err != nil {
			return err
		}

		ticket.QRCode = deriveQRCode(ticket.EventID, ticket.TicketID)

		return tx.Model(&Ticket{}).
			Where("ticket_id = ?", ticket.TicketID).
			Update("qr_code", ticket.QRCode).Error
	})
	if err != nil {
		return Ticket{}, err
	}

	return ticket, nil
}

func (d *TicketDAO) FindByID(ctx context.Context, id uint) (Ticket, error) {
	var ticket Ticket

	result := d.db.WithContext(ctx).
		Preload("User").
		Preload("Event").
		First(&ticket, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Ticket{}, ErrTicketNotFound
		}

		return Ticket{}, result.Error
	}

	return ticket, nil
}

func (d *TicketDAO) FindByQRCode(ctx context.Context, qrCode string) (Ticket, error) {
	var ticket Ticket

	result := d.db.WithContext(ctx).
		Preload("User").
		Preload("Event").
		First(&ticket, "qr_code = ?", qrCode)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Ticket{}, ErrTicketNotFound
		}

		return Ticket{}, result.Error
	}

	return ticket, nil
}

func (d *TicketDAO) FindByUserID(ctx context.Context, userID uint) ([]Ticket, error) {
	var tickets []Ticket

	result := d.db.WithContext(ctx).
		Preload("User").
		Preload("Event").
		Where("user_id = ?", userID).
		Find(&tickets)
	if result.Error != nil {
		return nil, result.Error
	}

	return tickets, nil
}

func (d *TicketDAO) FindByEventID(ctx context.Context, eventID uint) ([]Ticket, error) {
	var tickets []Ticket

	result := d.db.WithContext(ctx).
		Preload("User").
		Where("event_id = ?", eventID).
		Order("ticket_id").
		Find(&tickets)
	if result.Error != nil {
		return nil, result.Error
	}

	return tickets, nil
}

// MarkScanned flips an unscanned ticket to scanned. The WHERE clause on
// is_scanned makes the check-and-set a single atomic statement: under
// concurrent scans of the same code exactly one caller gets
// RowsAffected == 1, every other caller gets zero rows and must report
// ALREADY_SCANNED. Returns false without error when the race was lost.
func (d *TicketDAO) MarkScanned(ctx context.Context, qrCode string, scannedAt string, scannedBy uint) (bool, error) {
	result := d.db.WithContext(ctx).
		Model(&Ticket{}).
		Where("qr_code = ? AND is_scanned = ?", qrCode, false).
		Updates(map[string]interface{}{
			"is_scanned": true,
			"scanned_at": scannedAt,
			"scanned_by": scannedBy,
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

func (d *TicketDAO) CountByEventID(ctx context.Context, eventID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Ticket{}).
		Where("event_id = ?", eventID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *TicketDAO) CountScannedByEventID(ctx context.Context, eventID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Ticket{}).
		Where("event_id = ? AND is_scanned = ?", eventID, true).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *TicketDAO) Count(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Ticket{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *TicketDAO) CountScanned(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Ticket{}).
		Where("is_scanned = ?", true).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// EventTicketCount is a grouped count row for the admin top-events listing.
type EventTicketCount struct {
	EventID      uint
	Title        string
	TicketCount  int64
	ScannedCount int64
}

func (d *TicketDAO) TopEventsByTicketCount(ctx context.Context, limit int) ([]EventTicketCount, error) {
	var rows []EventTicketCount

	result := d.db.WithContext(ctx).
		Model(&Ticket{}).
		Select("tickets.event_id AS event_id, events.title AS title, COUNT(*) AS ticket_count, COUNT(*) FILTER (WHERE tickets.is_scanned) AS scanned_count").
		Joins("JOIN events ON events.event_id = tickets.event_id").
		Group("tickets.event_id, events.title").
		Order("ticket_count DESC").
		Limit(limit).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}
