package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/linkt-app/linkt-api/internal/domain"
	"github.com/linkt-app/linkt-api/internal/repository"
)

var ErrCapacityBelowSold = errors.New("capacity cannot be reduced below the number of sold tickets")

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	Update(ctx context.Context, event domain.Event) (domain.Event, error)
	FindByID(ctx context.Context, id uint) (domain.Event, error)
	FindAll(ctx context.Context) ([]domain.Event, error)
	FindByOrganizerID(ctx context.Context, organizerID uint) ([]domain.Event, error)
}

type EventTicketRepository interface {
	CountByEventID(ctx context.Context, eventID uint) (int64, error)
}

type EventService struct {
	repo       EventRepository
	ticketRepo EventTicketRepository
}

func NewEventService(repo EventRepository, ticketRepo EventTicketRepository) *EventService {
	return &EventService{
		repo:       repo,
		ticketRepo: ticketRepo,
	}
}

func (s *EventService) GetEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return events, nil
}

func (s *EventService) GetEvent(ctx context.Context, id uint) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domain.Event{}, ErrEventNotFound
		}

		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return event, nil
}

func (s *EventService) CreateEvent(ctx context.Context, event domain.Event, organizerID uint) (domain.Event, error) {
	event.OrganizerID = organizerID

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// UpdateEvent replaces the mutable fields of an owned event. Capacity may
// not drop below the number of tickets already sold.
func (s *EventService) UpdateEvent(ctx context.Context, event domain.Event, organizerID uint) (domain.Event, error) {
	existing, err := s.repo.FindByID(ctx, event.EventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domain.Event{}, ErrEventNotFound
		}

		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if existing.OrganizerID != organizerID {
		return domain.Event{}, ErrNotEventOwner
	}

	sold, err := s.ticketRepo.CountByEventID(ctx, event.EventID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.ticketRepo.CountByEventID -> %w", err)
	}
	if int64(event.Capacity) < sold {
		return domain.Event{}, ErrCapacityBelowSold
	}

	event.OrganizerID = existing.OrganizerID
	event.CreatedAt = existing.CreatedAt
	if event.ImageURL == "" {
		event.ImageURL = existing.ImageURL
	}

	updated, err := s.repo.Update(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// GetOrganizerEvents returns the organizer's own events with per-event
// ticket counts for the dashboard.
func (s *EventService) GetOrganizerEvents(ctx context.Context, organizerID uint) ([]domain.EventWithTicketCount, error) {
	events, err := s.repo.FindByOrganizerID(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByOrganizerID -> %w", err)
	}

	withCounts := make([]domain.EventWithTicketCount, len(events))
	for i, event := range events {
		count, err := s.ticketRepo.CountByEventID(ctx, event.EventID)
		if err != nil {
			return nil, fmt.Errorf("s.ticketRepo.CountByEventID -> %w", err)
		}

		withCounts[i] = domain.EventWithTicketCount{
			Event:       event,
			TicketCount: int(count),
		}
	}

	return withCounts, nil
}
