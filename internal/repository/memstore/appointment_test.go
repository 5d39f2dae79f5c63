package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbdtech/afc-portal-api/internal/model"
	"github.com/rbdtech/afc-portal-api/internal/repository"
)

func TestAddAppointmentRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()

	input := &model.Appointment{
		PatientID:   "pat1",
		DoctorID:    "doc1",
		Title:       "Checkup",
		Type:        "Checkup",
		Date:        "2024-02-01",
		Time:        "10:00 AM",
		Status:      model.AppointmentStatusPending,
		Category:    model.AppointmentCategoryUpcoming,
		Description: "Routine visit",
		Location:    "Room 4",
		Price:       "$120.00",
	}

	created, err := s.AddAppointment(ctx, input)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := s.GetAppointmentByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, input.PatientID, got.PatientID)
	assert.Equal(t, input.Price, got.Price)
}

func TestUpdateAppointmentTouchesOnlyRequestedFields(t *testing.T) {
	s := NewSeeded()
	ctx := context.Background()

	before, err := s.GetAppointmentByID(ctx, "apt1")
	require.NoError(t, err)

	status := model.AppointmentStatusCompleted
	updated, err := s.UpdateAppointment(ctx, "apt1", &model.UpdateAppointmentRequest{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, model.AppointmentStatusCompleted, updated.Status)
	assert.True(t, updated.UpdatedAt.After(before.UpdatedAt))

	assert.Equal(t, before.Title, updated.Title)
	assert.Equal(t, before.Date, updated.Date)
	assert.Equal(t, before.Time, updated.Time)
	assert.Equal(t, before.Category, updated.Category)
	assert.Equal(t, before.Description, updated.Description)
	assert.Equal(t, before.Location, updated.Location)
	assert.Equal(t, before.Price, updated.Price)
	assert.Equal(t, before.CreatedAt, updated.CreatedAt)
}

func TestUpdateAppointmentNotFound(t *testing.T) {
	s := New()

	status := model.AppointmentStatusConfirmed
	_, err := s.UpdateAppointment(context.Background(), "missing", &model.UpdateAppointmentRequest{Status: &status})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteAppointmentRemovesFromFilters(t *testing.T) {
	s := NewSeeded()
	ctx := context.Background()

	apt, err := s.GetAppointmentByID(ctx, "apt1")
	require.NoError(t, err)

	require.NoError(t, s.DeleteAppointment(ctx, "apt1"))

	_, err = s.GetAppointmentByID(ctx, "apt1")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	byPatient, err := s.GetAppointmentsByPatientID(ctx, apt.PatientID)
	require.NoError(t, err)
	for _, a := range byPatient {
		assert.NotEqual(t, "apt1", a.ID)
	}

	byDoctor, err := s.GetAppointmentsByDoctorID(ctx, apt.DoctorID)
	require.NoError(t, err)
	for _, a := range byDoctor {
		assert.NotEqual(t, "apt1", a.ID)
	}
}

func TestDeleteAppointmentNotFound(t *testing.T) {
	s := New()
	assert.ErrorIs(t, s.DeleteAppointment(context.Background(), "missing"), repository.ErrNotFound)
}

func TestDeleteAppointmentRetainsDetails(t *testing.T) {
	s := NewSeeded()
	ctx := context.Background()

	require.NoError(t, s.DeleteAppointment(ctx, "apt3"))

	details, err := s.GetAppointmentDetails(ctx, "apt3")
	require.NoError(t, err)
	assert.Equal(t, "apt3", details.AppointmentID)
}

func TestSetAppointmentActiveSingleActive(t *testing.T) {
	s := NewSeeded()
	ctx := context.Background()

	_, err := s.SetAppointmentActive(ctx, "apt1", true)
	require.NoError(t, err)

	active, err := s.GetActiveAppointment(ctx, "doc1")
	require.NoError(t, err)
	assert.Equal(t, "apt1", active.ID)

	// Activating apt2 deactivates apt1 in the same write.
	_, err = s.SetAppointmentActive(ctx, "apt2", true)
	require.NoError(t, err)

	apt1, err := s.GetAppointmentByID(ctx, "apt1")
	require.NoError(t, err)
	assert.False(t, apt1.IsActiveWithDoctor)

	active, err = s.GetActiveAppointment(ctx, "doc1")
	require.NoError(t, err)
	assert.Equal(t, "apt2", active.ID)

	all, err := s.ListAppointments(ctx)
	require.NoError(t, err)
	count := 0
	for _, a := range all {
		if a.IsActiveWithDoctor {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestSetAppointmentActiveDeactivate(t *testing.T) {
	s := NewSeeded()
	ctx := context.Background()

	_, err := s.SetAppointmentActive(ctx, "apt1", true)
	require.NoError(t, err)

	_, err = s.SetAppointmentActive(ctx, "apt1", false)
	require.NoError(t, err)

	_, err = s.GetActiveAppointment(ctx, "doc1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGetTodaysAppointments(t *testing.T) {
	now := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)
	s := NewWithClock(func() time.Time { return now })
	ctx := context.Background()

	created, err := s.AddAppointment(ctx, &model.Appointment{
		PatientID: "pat1",
		DoctorID:  "doc1",
		Date:      "2024-02-01",
		Time:      "9:00 AM",
		Status:    model.AppointmentStatusConfirmed,
		Category:  model.AppointmentCategoryUpcoming,
	})
	require.NoError(t, err)

	today, err := s.GetTodaysAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, today, 1)
	assert.Equal(t, created.ID, today[0].ID)

	// The next calendar day no longer matches by string equality.
	now = now.AddDate(0, 0, 1)
	today, err = s.GetTodaysAppointments(ctx)
	require.NoError(t, err)
	assert.Empty(t, today)
}

func TestUpsertAppointmentDetails(t *testing.T) {
	s := NewSeeded()
	ctx := context.Background()

	notes := "Blood pressure stable"
	created, err := s.UpsertAppointmentDetails(ctx, "apt1", &model.UpdateAppointmentDetailsRequest{MedicalNotes: &notes})
	require.NoError(t, err)
	assert.Equal(t, "apt1", created.AppointmentID)
	assert.Equal(t, notes, created.MedicalNotes)
	assert.False(t, created.FollowUpRequired)

	followUp := true
	date := "2024-03-01"
	updated, err := s.UpsertAppointmentDetails(ctx, "apt1", &model.UpdateAppointmentDetailsRequest{
		FollowUpRequired: &followUp,
		FollowUpDate:     &date,
	})
	require.NoError(t, err)
	assert.Equal(t, notes, updated.MedicalNotes)
	assert.True(t, updated.FollowUpRequired)
	assert.Equal(t, date, updated.FollowUpDate)
}
