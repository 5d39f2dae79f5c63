package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbdtech/afc-portal-api/internal/model"
	"github.com/rbdtech/afc-portal-api/internal/repository"
	"github.com/rbdtech/afc-portal-api/internal/repository/memstore"
	apperrors "github.com/rbdtech/afc-portal-api/pkg/errors"
)

func newTestService() (*Service, *memstore.Store) {
	store := memstore.NewSeeded()
	return NewService(store, store), store
}

func TestCreateAppointmentDefaults(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreateAppointment(context.Background(), &model.CreateAppointmentRequest{
		PatientID: "pat1",
		DoctorID:  "doc2",
		Type:      "Consultation",
		Date:      "2024-02-01",
		Time:      "2:00 PM",
	})
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusPending, created.Status)
	assert.Equal(t, model.AppointmentCategoryUpcoming, created.Category)
	assert.False(t, created.IsActiveWithDoctor)
	// Missing title falls back to the appointment type.
	assert.Equal(t, "Consultation", created.Title)
}

func TestStartSessionActivatesExactlyOne(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first, err := svc.StartSession(ctx, "apt1")
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusActive, first.Status)
	assert.Equal(t, model.AppointmentCategoryCurrent, first.Category)
	assert.True(t, first.IsActiveWithDoctor)

	active, err := svc.GetActiveAppointment(ctx, "doc1")
	require.NoError(t, err)
	assert.Equal(t, "apt1", active.ID)

	// Starting a second session deactivates the first.
	_, err = svc.StartSession(ctx, "apt2")
	require.NoError(t, err)

	active, err = svc.GetActiveAppointment(ctx, "doc1")
	require.NoError(t, err)
	assert.Equal(t, "apt2", active.ID)

	previous, err := svc.GetAppointment(ctx, "apt1")
	require.NoError(t, err)
	assert.False(t, previous.IsActiveWithDoctor)
}

func TestCloseCaseReleasesDoctor(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.StartSession(ctx, "apt1")
	require.NoError(t, err)

	closed, err := svc.CloseCase(ctx, "apt1")
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusCompleted, closed.Status)
	assert.Equal(t, model.AppointmentCategoryPast, closed.Category)
	assert.False(t, closed.IsActiveWithDoctor)

	_, err = svc.GetActiveAppointment(ctx, "doc1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateDetailsRequiresAppointment(t *testing.T) {
	svc, _ := newTestService()
	notes := "Patient reported improvement."

	_, err := svc.UpdateDetails(context.Background(), "missing", &model.UpdateAppointmentDetailsRequest{
		MedicalNotes: &notes,
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRequestRescheduleMarksAppointmentPending(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	request, err := svc.RequestReschedule(ctx, "pat1", &model.CreateRescheduleRequest{
		AppointmentID: "apt1",
		NewDate:       "2024-01-25",
		NewTime:       "3:00 PM",
		Reason:        "Caregiver unavailable",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RescheduleStatusPending, request.Status)
	assert.Equal(t, "2024-01-22", request.OriginalDate)
	assert.Equal(t, "10:00 AM", request.OriginalTime)

	appointment, err := svc.GetAppointment(ctx, "apt1")
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusReschedulePending, appointment.Status)
	assert.Equal(t, "2024-01-25", appointment.Date)
	assert.Equal(t, "3:00 PM", appointment.Time)
}

func TestApproveRescheduleAppliesRequestedSlot(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	// req1 is the seeded pending request against apt2.
	request, err := svc.ApproveReschedule(ctx, "req1")
	require.NoError(t, err)
	assert.Equal(t, model.RescheduleStatusApproved, request.Status)

	appointment, err := svc.GetAppointment(ctx, "apt2")
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusRescheduled, appointment.Status)
	assert.Equal(t, "2024-01-24", appointment.Date)
	assert.Equal(t, "11:00 AM", appointment.Time)
}

func TestRejectRescheduleRestoresOriginalSlot(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	request, err := svc.RejectReschedule(ctx, "req1")
	require.NoError(t, err)
	assert.Equal(t, model.RescheduleStatusRejected, request.Status)

	appointment, err := svc.GetAppointment(ctx, "apt2")
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusConfirmed, appointment.Status)
	assert.Equal(t, "2024-01-22", appointment.Date)
	assert.Equal(t, "1:30 PM", appointment.Time)
}

func TestRescheduleDecisionIsFinal(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.ApproveReschedule(ctx, "req1")
	require.NoError(t, err)

	_, err = svc.RejectReschedule(ctx, "req1")
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)

	// The appointment keeps the approved slot.
	appointment, err := svc.GetAppointment(ctx, "apt2")
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusRescheduled, appointment.Status)
}

func TestRequestRescheduleUnknownAppointment(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.RequestReschedule(context.Background(), "pat1", &model.CreateRescheduleRequest{
		AppointmentID: "missing",
		NewDate:       "2024-01-25",
		NewTime:       "3:00 PM",
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListReschedulesByAppointment(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.RequestReschedule(ctx, "pat1", &model.CreateRescheduleRequest{
		AppointmentID: "apt1",
		NewDate:       "2024-01-26",
		NewTime:       "9:30 AM",
	})
	require.NoError(t, err)

	requests, err := svc.ListReschedulesByAppointment(ctx, "apt1")
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "apt1", requests[0].AppointmentID)

	all, err := svc.ListRescheduleRequests(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
