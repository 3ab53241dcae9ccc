package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrSavedEventExists   = errors.New("event already saved")
	ErrSavedEventNotFound = errors.New("saved event not found")
)

type SavedEvent struct {
	SavedEventID uint `gorm:"primaryKey"`

	UserID uint `gorm:"not null;uniqueIndex:idx_saved_events_user_event"`
	User   User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	EventID uint  `gorm:"not null;uniqueIndex:idx_saved_events_user_event"`
	Event   Event `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
}

type SavedEventDAO struct {
	db *gorm.DB
}

func NewSavedEventDAO(db *gorm.DB) *SavedEventDAO {
	return &SavedEventDAO{
		db: db,
	}
}

func (d *SavedEventDAO) Insert(ctx context.Context, savedEvent SavedEvent) (SavedEvent, error) {
	result := d.db.WithContext(ctx).Create(&savedEvent)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return SavedEvent{}, ErrSavedEventExists
		}

		return SavedEvent{}, result.Error
	}

	return savedEvent, nil
}

func (d *SavedEventDAO) FindByUserID(ctx context.Context, userID uint) ([]SavedEvent, error) {
	var saved []SavedEvent

	result := d.db.WithContext(ctx).
		Preload("Event").
		Where("user_id = ?", userID).
		Find(&saved)
	if result.Error != nil {
		return nil, result.Error
	}

	return saved, nil
}

func (d *SavedEventDAO) Exists(ctx context.Context, userID, eventID uint) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&SavedEvent{}).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (d *SavedEventDAO) Delete(ctx context.Context, userID, eventID uint) error {
	result := d.db.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Delete(&SavedEvent{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSavedEventNotFound
	}

	return nil
}
