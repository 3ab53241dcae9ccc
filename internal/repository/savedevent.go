package repository

import (
	"context"
	"fmt"

	"github.com/linkt-app/linkt-api/internal/domain"
	"github.com/linkt-app/linkt-api/internal/repository/dao"
)

var (
	ErrSavedEventExists   = dao.ErrSavedEventExists
	ErrSavedEventNotFound = dao.ErrSavedEventNotFound
)

type SavedEventDAO interface {
	Insert(ctx context.Context, savedEvent dao.SavedEvent) (dao.SavedEvent, error)
	FindByUserID(ctx context.Context, userID uint) ([]dao.SavedEvent, error)
	Exists(ctx context.Context, userID, eventID uint) (bool, error)
	Delete(ctx context.Context, userID, eventID uint) error
}

type SavedEventRepository struct {
	dao SavedEventDAO
}

func NewSavedEventRepository(dao SavedEventDAO) *SavedEventRepository {
	return &SavedEventRepository{
		dao: dao,
	}
}

func (r *SavedEventRepository) Create(ctx context.Context, userID, eventID uint) (domain.SavedEvent, error) {
	created, err := r.dao.Insert(ctx, dao.SavedEvent{
		UserID:  userID,
		EventID: eventID,
	})
	if err != nil {
		return domain.SavedEvent{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return savedEventDAOToDomain(created), nil
}

func (r *SavedEventRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.SavedEvent, error) {
	found, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	saved := make([]domain.SavedEvent, len(found))
	for i, s := range found {
		saved[i] = savedEventDAOToDomain(s)
	}

	return saved, nil
}

func (r *SavedEventRepository) Exists(ctx context.Context, userID, eventID uint) (bool, error) {
	exists, err := r.dao.Exists(ctx, userID, eventID)
	if err != nil {
		return false, fmt.Errorf("r.dao.Exists -> %w", err)
	}

	return exists, nil
}

func (r *SavedEventRepository) Delete(ctx context.Context, userID, eventID uint) error {
	if err := r.dao.Delete(ctx, userID, eventID); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func savedEventDAOToDomain(s dao.SavedEvent) domain.SavedEvent {
	return domain.SavedEvent{
		SavedEventID: s.SavedEventID,
		UserID:       s.UserID,
		EventID:      s.EventID,
		Event:        eventDAOToDomain(s.Event),
		CreatedAt:    s.CreatedAt,
	}
}
