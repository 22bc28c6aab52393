package impl

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"institute/internal/domain/entity"
	domainerrors "institute/internal/domain/errors"
	"institute/internal/domain/repository"
	"institute/internal/usecase"
)

func TestContactSubmit_DefaultsToNewStatus(t *testing.T) {
	t.Parallel()

	repo := new(mockContactRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(msg *entity.Contact) bool {
		return msg.Status == entity.ContactStatusNew &&
			msg.Email == "visitor@example.com" &&
			!msg.Date.IsZero()
	})).Return(nil)

	svc := NewContactService(repo, testLogger())
	msg, err := svc.Submit(t.Context(), usecase.SubmitContactInput{
		Name:    "Visitor",
		Email:   "Visitor@Example.com",
		Subject: "Course enquiry",
		Message: "Do you run evening batches?",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ContactStatusNew, msg.Status)
	repo.AssertExpectations(t)
}

func TestContactUpdateStatus(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	repo := new(mockContactRepo)
	repo.On("UpdateStatus", mock.Anything, id, entity.ContactStatusRead).
		Return(&entity.Contact{ID: id, Status: entity.ContactStatusRead}, nil)

	svc := NewContactService(repo, testLogger())

	msg, err := svc.UpdateStatus(t.Context(), id, entity.ContactStatusRead)
	require.NoError(t, err)
	assert.Equal(t, entity.ContactStatusRead, msg.Status)

	_, err = svc.UpdateStatus(t.Context(), id, entity.ContactStatus("Archived"))
	require.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestContactGet_NotFound(t *testing.T) {
	t.Parallel()

	repo := new(mockContactRepo)
	repo.On("FindByID", mock.Anything, mock.Anything).Return(nil, repository.ErrContactNotFound)

	svc := NewContactService(repo, testLogger())
	_, err := svc.Get(t.Context(), uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
