package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbdtech/afc-portal-api/internal/model"
	"github.com/rbdtech/afc-portal-api/internal/repository"
)

func TestGetUserByEmailIdempotent(t *testing.T) {
	s := NewSeeded()
	ctx := context.Background()

	first, err := s.GetUserByEmail(ctx, "john.smith@email.com")
	require.NoError(t, err)
	second, err := s.GetUserByEmail(ctx, "john.smith@email.com")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "pat1", first.ID)
	assert.Equal(t, model.RolePatient, first.Role)
}

func TestGetUserByEmailScanOrder(t *testing.T) {
	s := New()
	ctx := context.Background()

	// Same email in two collections: the patient scan runs first.
	_, err := s.AddDoctor(ctx, &model.Doctor{
		User: model.User{Email: "shared@email.com", Name: "Dr. Dupe"},
	})
	require.NoError(t, err)
	_, err = s.AddPatient(ctx, &model.Patient{
		User: model.User{Email: "shared@email.com", Name: "Pat Dupe"},
	})
	require.NoError(t, err)

	user, err := s.GetUserByEmail(ctx, "shared@email.com")
	require.NoError(t, err)
	assert.Equal(t, model.RolePatient, user.Role)
}

func TestGetUserByEmailNotFound(t *testing.T) {
	s := NewSeeded()
	_, err := s.GetUserByEmail(context.Background(), "nobody@email.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGetUserByIDAcrossCollections(t *testing.T) {
	s := NewSeeded()
	ctx := context.Background()

	for id, role := range map[string]model.Role{
		"pat1": model.RolePatient,
		"doc1": model.RoleDoctor,
		"adm1": model.RoleAdmin,
	} {
		user, err := s.GetUserByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, role, user.Role)
	}
}

func TestGetUsersByRole(t *testing.T) {
	s := NewSeeded()
	ctx := context.Background()

	doctors, err := s.GetUsersByRole(ctx, model.RoleDoctor)
	require.NoError(t, err)
	assert.Len(t, doctors, 2)
	for _, d := range doctors {
		assert.Equal(t, model.RoleDoctor, d.Role)
	}
}

func TestUpdateUserRoutesToOwningCollection(t *testing.T) {
	s := NewSeeded()
	ctx := context.Background()

	phone := "(617) 555-9999"
	updated, err := s.UpdateUser(ctx, "doc1", &model.UpdateUserRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.Phone)

	doctor, err := s.GetDoctorByID(ctx, "doc1")
	require.NoError(t, err)
	assert.Equal(t, phone, doctor.Phone)
	// Doctor-specific fields survive the user-level merge.
	assert.Equal(t, "Geriatric Medicine", doctor.Specialization)
}

func TestUpdateUserNotFound(t *testing.T) {
	s := New()
	name := "Ghost"
	_, err := s.UpdateUser(context.Background(), "missing", &model.UpdateUserRequest{Name: &name})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAddPatientAssignsIdentity(t *testing.T) {
	s := New()
	ctx := context.Background()

	created, err := s.AddPatient(ctx, &model.Patient{
		User: model.User{Email: "new@email.com", Name: "New Patient"},
		SSN:  "***-**-1234",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, model.RolePatient, created.Role)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := s.GetPatientByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}
