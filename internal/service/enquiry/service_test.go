package enquiry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbdtech/afc-portal-api/internal/model"
	"github.com/rbdtech/afc-portal-api/internal/repository"
	"github.com/rbdtech/afc-portal-api/internal/repository/memstore"
)

func TestSubmitAndResolve(t *testing.T) {
	svc := NewService(memstore.New())
	ctx := context.Background()

	created, err := svc.Submit(ctx, &model.CreateEnquiryRequest{
		From:    "Helen Carter",
		Email:   "helen.carter@email.com",
		Subject: "Eligibility question",
		Message: "Is the program available outside Suffolk County?",
		Type:    model.EnquiryTypeOthers,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, model.EnquiryStatusPending, created.Status)
	assert.False(t, created.CreatedAt.IsZero())

	resolved, err := svc.Resolve(ctx, created.ID, "Yes, county-wide coverage applies.")
	require.NoError(t, err)
	assert.Equal(t, model.EnquiryStatusResolved, resolved.Status)
	assert.Equal(t, "Yes, county-wide coverage applies.", resolved.Response)
}

func TestListByType(t *testing.T) {
	svc := NewService(memstore.NewSeeded())
	ctx := context.Background()

	doctorEnquiries, err := svc.ListByType(ctx, model.EnquiryTypeDoctor)
	require.NoError(t, err)
	require.Len(t, doctorEnquiries, 1)
	assert.Equal(t, "enq2", doctorEnquiries[0].ID)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestResolveNotFound(t *testing.T) {
	svc := NewService(memstore.New())
	_, err := svc.Resolve(context.Background(), "missing", "response")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
