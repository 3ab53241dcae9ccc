package repository

import (
	"context"
	"fmt"

	"github.com/linkt-app/linkt-api/internal/domain"
	"github.com/linkt-app/linkt-api/internal/repository/dao"
)

var ErrEventNotFound = dao.ErrEventNotFound

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	Update(ctx context.Context, event dao.Event) (dao.Event, error)
	FindByID(ctx context.Context, id uint) (dao.Event, error)
	FindAll(ctx context.Context) ([]dao.Event, error)
	FindByOrganizerID(ctx context.Context, organizerID uint) ([]dao.Event, error)
	Count(ctx context.Context) (int64, error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, eventDomainToDAO(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return eventDAOToDomain(created), nil
}

func (r *EventRepository) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	updated, err := r.dao.Update(ctx, eventDomainToDAO(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return eventDAOToDomain(updated), nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return eventDAOToDomain(found), nil
}

func (r *EventRepository) FindAll(ctx context.Context) ([]domain.Event, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return eventsDAOToDomain(found), nil
}

func (r *EventRepository) FindByOrganizerID(ctx context.Context, organizerID uint) ([]domain.Event, error) {
	found, err := r.dao.FindByOrganizerID(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByOrganizerID -> %w", err)
	}

	return eventsDAOToDomain(found), nil
}

func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.dao.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return count, nil
}

func eventDomainToDAO(e domain.Event) dao.Event {
	return dao.Event{
		EventID:       e.EventID,
		Title:         e.Title,
		Description:   e.Description,
		EventType:     e.EventType,
		StartDateTime: e.StartDateTime,
		EndDateTime:   e.EndDateTime,
		Location:      e.Location,
		Coordinates:   e.Coordinates,
		Capacity:      e.Capacity,
		ImageURL:      e.ImageURL,
		Price:         e.Price,
		OrganizerID:   e.OrganizerID,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func eventDAOToDomain(e dao.Event) domain.Event {
	return domain.Event{
		EventID:       e.EventID,
		Title:         e.Title,
		Description:   e.Description,
		EventType:     e.EventType,
		StartDateTime: e.StartDateTime,
		EndDateTime:   e.EndDateTime,
		Location:      e.Location,
		Coordinates:   e.Coordinates,
		Capacity:      e.Capacity,
		ImageURL:      e.ImageURL,
		Price:         e.Price,
		OrganizerID:   e.OrganizerID,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func eventsDAOToDomain(events []dao.Event) []domain.Event {
	converted := make([]domain.Event, len(events))
	for i, e := range events {
		converted[i] = eventDAOToDomain(e)
	}

	return converted
}
