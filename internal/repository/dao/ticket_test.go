package dao

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedStudentAndEvent(t *testing.T, db *gorm.DB) (User, Event) {
	t.Helper()

	student := User{
		Email:     "student@example.edu",
		Password:  "hashed",
		FirstName: "Sam",
		LastName:  "Chen",
		UserType:  "student",
	}
	require.NoError(t, db.Create(&student).Error)

	organizer := User{
		Email:            "organizer@example.edu",
		Password:         "hashed",
		FirstName:        "Olivia",
		LastName:         "Martin",
		UserType:         "organizer",
		OrganizationName: "ACME Events",
	}
	require.NoError(t, db.Create(&organizer).Error)

	event := Event{
		Title:         "Spring Gala",
		StartDateTime: "2025-05-12T18:00:00Z",
		EndDateTime:   "2025-05-12T23:00:00Z",
		Capacity:      100,
		OrganizerID:   organizer.UserID,
	}
	require.NoError(t, db.Create(&event).Error)

	return student, event
}

func deriveTestQRCode(eventID, ticketID uint) string {
	return fmt.Sprintf("LINKT-%d-%d", eventID, ticketID)
}

func TestTicketDAO_Insert_DerivesQRCode(t *testing.T) {
	db := requireDB(t)
	truncateAll(t, db)
	student, event := seedStudentAndEvent(t, db)

	d := NewTicketDAO(db)

	ticket, err := d.Insert(context.Background(), Ticket{
		UserID:  student.UserID,
		EventID: event.EventID,
	}, deriveTestQRCode)

	require.NoError(t, err)
	require.NotZero(t, ticket.TicketID)
	assert.Equal(t, fmt.Sprintf("LINKT-%d-%d", event.EventID, ticket.TicketID), ticket.QRCode)

	persisted, err := d.FindByQRCode(context.Background(), ticket.QRCode)
	require.NoError(t, err)
	assert.Equal(t, ticket.TicketID, persisted.TicketID)
	assert.False(t, persisted.IsScanned)
	assert.Equal(t, "Sam", persisted.User.FirstName)
	assert.Equal(t, "Spring Gala", persisted.Event.Title)
}

func TestTicketDAO_MarkScanned(t *testing.T) {
	db := requireDB(t)
	truncateAll(t, db)
	student, event := seedStudentAndEvent(t, db)

	d := NewTicketDAO(db)
	ticket, err := d.Insert(context.Background(), Ticket{
		UserID:  student.UserID,
		EventID: event.EventID,
	}, deriveTestQRCode)
	require.NoError(t, err)

	won, err := d.MarkScanned(context.Background(), ticket.QRCode, "2025-05-12T18:30:00Z", event.OrganizerID)
	require.NoError(t, err)
	assert.True(t, won)

	// Second scan of the same code loses.
	won, err = d.MarkScanned(context.Background(), ticket.QRCode, "2025-05-12T18:31:00Z", event.OrganizerID)
	require.NoError(t, err)
	assert.False(t, won)

	persisted, err := d.FindByQRCode(context.Background(), ticket.QRCode)
	require.NoError(t, err)
	assert.True(t, persisted.IsScanned)
	require.NotNil(t, persisted.ScannedAt)
	assert.Equal(t, "2025-05-12T18:30:00Z", *persisted.ScannedAt)
}

func TestTicketDAO_MarkScanned_UnknownCode(t *testing.T) {
	db := requireDB(t)
	truncateAll(t, db)

	d := NewTicketDAO(db)

	won, err := d.MarkScanned(context.Background(), "LINKT-1-999", "2025-05-12T18:30:00Z", 1)

	require.NoError(t, err)
	assert.False(t, won)
}

// Concurrent scanners racing on one code: the conditional update must let
// exactly one through.
func TestTicketDAO_MarkScanned_Concurrent(t *testing.T) {
	db := requireDB(t)
	truncateAll(t, db)
	student, event := seedStudentAndEvent(t, db)

	d := NewTicketDAO(db)
	ticket, err := d.Insert(context.Background(), Ticket{
		UserID:  student.UserID,
		EventID: event.EventID,
	}, deriveTestQRCode)
	require.NoError(t, err)

	const scanners = 10

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)

	for i := 0; i < scanners; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			won, err := d.MarkScanned(context.Background(), ticket.QRCode, "2025-05-12T18:30:00Z", event.OrganizerID)
			if err != nil {
				t.Errorf("MarkScanned: %v", err)
				return
			}

			if won {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, wins)
}

func TestTicketDAO_Counts(t *testing.T) {
	db := requireDB(t)
	truncateAll(t, db)
	student, event := seedStudentAndEvent(t, db)

	d := NewTicketDAO(db)

	var codes []string
	for i := 0; i < 3; i++ {
		ticket, err := d.Insert(context.Background(), Ticket{
			UserID:  student.UserID,
			EventID: event.EventID,
		}, deriveTestQRCode)
		require.NoError(t, err)
		codes = append(codes, ticket.QRCode)
	}

	won, err := d.MarkScanned(context.Background(), codes[0], "2025-05-12T18:30:00Z", event.OrganizerID)
	require.NoError(t, err)
	require.True(t, won)

	total, err := d.CountByEventID(context.Background(), event.EventID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	scanned, err := d.CountScannedByEventID(context.Background(), event.EventID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), scanned)

	rows, err := d.TopEventsByTicketCount(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, event.EventID, rows[0].EventID)
	assert.Equal(t, "Spring Gala", rows[0].Title)
	assert.Equal(t, int64(3), rows[0].TicketCount)
	assert.Equal(t, int64(1), rows[0].ScannedCount)
}
