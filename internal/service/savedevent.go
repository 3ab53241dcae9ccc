package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/linkt-app/linkt-api/internal/domain"
	"github.com/linkt-app/linkt-api/internal/repository"
)

var (
	ErrSavedEventExists   = repository.ErrSavedEventExists
	ErrSavedEventNotFound = repository.ErrSavedEventNotFound
)

type SavedEventRepository interface {
	Create(ctx context.Context, userID, eventID uint) (domain.SavedEvent, error)
	FindByUserID(ctx context.Context, userID uint) ([]domain.SavedEvent, error)
	Exists(ctx context.Context, userID, eventID uint) (bool, error)
	Delete(ctx context.Context, userID, eventID uint) error
}

type SavedEventEventRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Event, error)
}

type SavedEventService struct {
	repo      SavedEventRepository
	eventRepo SavedEventEventRepository
}

func NewSavedEventService(repo SavedEventRepository, eventRepo SavedEventEventRepository) *SavedEventService {
	return &SavedEventService{
		repo:      repo,
		eventRepo: eventRepo,
	}
}

func (s *SavedEventService) SaveEvent(ctx context.Context, userID, eventID uint) (domain.SavedEvent, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domain.SavedEvent{}, ErrEventNotFound
		}

		return domain.SavedEvent{}, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}

	saved, err := s.repo.Create(ctx, userID, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrSavedEventExists) {
			return domain.SavedEvent{}, ErrSavedEventExists
		}

		return domain.SavedEvent{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return saved, nil
}

// GetSavedEvents returns the events the user bookmarked, not the junction
// rows.
func (s *SavedEventService) GetSavedEvents(ctx context.Context, userID uint) ([]domain.Event, error) {
	saved, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}

	events := make([]domain.Event, len(saved))
	for i, se := range saved {
		events[i] = se.Event
	}

	return events, nil
}

func (s *SavedEventService) IsSaved(ctx context.Context, userID, eventID uint) (bool, error) {
	saved, err := s.repo.Exists(ctx, userID, eventID)
	if err != nil {
		return false, fmt.Errorf("s.repo.Exists -> %w", err)
	}

	return saved, nil
}

func (s *SavedEventService) UnsaveEvent(ctx context.Context, userID, eventID uint) error {
	if err := s.repo.Delete(ctx, userID, eventID); err != nil {
		if errors.Is(err, repository.ErrSavedEventNotFound) {
			return ErrSavedEventNotFound
		}

		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
