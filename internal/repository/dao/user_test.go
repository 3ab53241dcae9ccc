package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserDAO_Insert_DuplicateEmail(t *testing.T) {
	db := requireDB(t)
	truncateAll(t, db)

	d := NewUserDAO(db)

	_, err := d.Insert(context.Background(), User{
		Email:     "sam@example.edu",
		Password:  "hashed",
		FirstName: "Sam",
		LastName:  "Chen",
		UserType:  "student",
	})
	require.NoError(t, err)

	_, err = d.Insert(context.Background(), User{
		Email:     "sam@example.edu",
		Password:  "hashed",
		FirstName: "Other",
		LastName:  "Person",
		UserType:  "student",
	})

	assert.ErrorIs(t, err, ErrUserEmailExists)
}

func TestUserDAO_ApproveOrganizer(t *testing.T) {
	db := requireDB(t)
	truncateAll(t, db)

	d := NewUserDAO(db)

	organizer, err := d.Insert(context.Background(), User{
		Email:            "events@acme.org",
		Password:         "hashed",
		FirstName:        "Olivia",
		LastName:         "Martin",
		UserType:         "organizer",
		OrganizationName: "ACME Events",
	})
	require.NoError(t, err)
	require.False(t, organizer.IsApproved)

	pending, err := d.FindPendingOrganizers(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)

	require.NoError(t, d.ApproveOrganizer(context.Background(), organizer.UserID))

	approved, err := d.FindByID(context.Background(), organizer.UserID)
	require.NoError(t, err)
	assert.True(t, approved.IsApproved)

	pending, err = d.FindPendingOrganizers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestUserDAO_ApproveOrganizer_NotAnOrganizer(t *testing.T) {
	db := requireDB(t)
	truncateAll(t, db)

	d := NewUserDAO(db)

	student, err := d.Insert(context.Background(), User{
		Email:     "sam@example.edu",
		Password:  "hashed",
		FirstName: "Sam",
		LastName:  "Chen",
		UserType:  "student",
	})
	require.NoError(t, err)

	err = d.ApproveOrganizer(context.Background(), student.UserID)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSavedEventDAO_Insert_Duplicate(t *testing.T) {
	db := requireDB(t)
	truncateAll(t, db)
	student, event := seedStudentAndEvent(t, db)

	d := NewSavedEventDAO(db)

	_, err := d.Insert(context.Background(), SavedEvent{UserID: student.UserID, EventID: event.EventID})
	require.NoError(t, err)

	_, err = d.Insert(context.Background(), SavedEvent{UserID: student.UserID, EventID: event.EventID})

	assert.ErrorIs(t, err, ErrSavedEventExists)
}

func TestSavedEventDAO_Delete(t *testing.T) {
	db := requireDB(t)
	truncateAll(t, db)
	student, event := seedStudentAndEvent(t, db)

	d := NewSavedEventDAO(db)

	_, err := d.Insert(context.Background(), SavedEvent{UserID: student.UserID, EventID: event.EventID})
	require.NoError(t, err)

	exists, err := d.Exists(context.Background(), student.UserID, event.EventID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, d.Delete(context.Background(), student.UserID, event.EventID))

	err = d.Delete(context.Background(), student.UserID, event.EventID)
	assert.ErrorIs(t, err, ErrSavedEventNotFound)
}
