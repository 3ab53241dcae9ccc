package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkt-app/linkt-api/internal/domain"
	"github.com/linkt-app/linkt-api/internal/repository"
)

type fakeEventStore struct {
	events map[uint]domain.Event
	nextID uint
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{
		events: make(map[uint]domain.Event),
		nextID: 1,
	}
}

func (f *fakeEventStore) Create(_ context.Context, event domain.Event) (domain.Event, error) {
	event.EventID = f.nextID
	f.nextID++
	f.events[event.EventID] = event

	return event, nil
}

func (f *fakeEventStore) Update(_ context.Context, event domain.Event) (domain.Event, error) {
	if _, ok := f.events[event.EventID]; !ok {
		return domain.Event{}, repository.ErrEventNotFound
	}

	f.events[event.EventID] = event

	return event, nil
}

func (f *fakeEventStore) FindByID(_ context.Context, id uint) (domain.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return domain.Event{}, repository.ErrEventNotFound
	}

	return event, nil
}

func (f *fakeEventStore) FindAll(_ context.Context) ([]domain.Event, error) {
	var events []domain.Event
	for _, e := range f.events {
		events = append(events, e)
	}

	return events, nil
}

func (f *fakeEventStore) FindByOrganizerID(_ context.Context, organizerID uint) ([]domain.Event, error) {
	var events []domain.Event
	for _, e := range f.events {
		if e.OrganizerID == organizerID {
			events = append(events, e)
		}
	}

	return events, nil
}

type fixedTicketCounter struct {
	count int64
}

func (f *fixedTicketCounter) CountByEventID(_ context.Context, _ uint) (int64, error) {
	return f.count, nil
}

func TestEventService_CreateEvent_SetsOrganizer(t *testing.T) {
	store := newFakeEventStore()
	svc := NewEventService(store, &fixedTicketCounter{})

	event, err := svc.CreateEvent(context.Background(), domain.Event{Title: "Spring Gala", Capacity: 100}, 10)

	require.NoError(t, err)
	assert.Equal(t, uint(10), event.OrganizerID)
	assert.NotZero(t, event.EventID)
}

func TestEventService_UpdateEvent(t *testing.T) {
	store := newFakeEventStore()
	svc := NewEventService(store, &fixedTicketCounter{count: 40})

	created, err := svc.CreateEvent(context.Background(), domain.Event{Title: "Spring Gala", Capacity: 100}, 10)
	require.NoError(t, err)

	created.Title = "Spring Gala 2025"
	created.Capacity = 80

	updated, err := svc.UpdateEvent(context.Background(), created, 10)

	require.NoError(t, err)
	assert.Equal(t, "Spring Gala 2025", updated.Title)
	assert.Equal(t, 80, updated.Capacity)
	assert.Equal(t, uint(10), updated.OrganizerID)
}

func TestEventService_UpdateEvent_CapacityBelowSold(t *testing.T) {
	store := newFakeEventStore()
	svc := NewEventService(store, &fixedTicketCounter{count: 50})

	created, err := svc.CreateEvent(context.Background(), domain.Event{Title: "Spring Gala", Capacity: 100}, 10)
	require.NoError(t, err)

	created.Capacity = 49

	_, err = svc.UpdateEvent(context.Background(), created, 10)

	assert.ErrorIs(t, err, ErrCapacityBelowSold)
}

func TestEventService_UpdateEvent_NotOwner(t *testing.T) {
	store := newFakeEventStore()
	svc := NewEventService(store, &fixedTicketCounter{})

	created, err := svc.CreateEvent(context.Background(), domain.Event{Title: "Spring Gala", Capacity: 100}, 10)
	require.NoError(t, err)

	_, err = svc.UpdateEvent(context.Background(), created, 20)

	assert.ErrorIs(t, err, ErrNotEventOwner)
}

func TestEventService_UpdateEvent_Missing(t *testing.T) {
	store := newFakeEventStore()
	svc := NewEventService(store, &fixedTicketCounter{})

	_, err := svc.UpdateEvent(context.Background(), domain.Event{EventID: 999}, 10)

	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventService_GetOrganizerEvents(t *testing.T) {
	store := newFakeEventStore()
	svc := NewEventService(store, &fixedTicketCounter{count: 7})

	_, err := svc.CreateEvent(context.Background(), domain.Event{Title: "Spring Gala"}, 10)
	require.NoError(t, err)
	_, err = svc.CreateEvent(context.Background(), domain.Event{Title: "Career Fair"}, 20)
	require.NoError(t, err)

	events, err := svc.GetOrganizerEvents(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Spring Gala", events[0].Title)
	assert.Equal(t, 7, events[0].TicketCount)
}
