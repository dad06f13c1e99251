package service_test

import (
	"context"
	"errors"
	"testing"

	"kud-club-backend/internal/domain"
	"kud-club-backend/internal/service"
	"kud-club-backend/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestParticipationService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("NoFormIsValid", func(t *testing.T) {
		repo := new(MockParticipationRepo)
		svc := service.NewParticipationService(repo)

		repo.On("Save", ctx, mock.AnythingOfType("*domain.Participation")).Return(true).Once()

		p := &domain.Participation{MemberID: 10, AppointmentID: 5, Status: domain.ParticipationConfirmed}
		assert.NoError(t, svc.Create(ctx, p))
		repo.AssertExpectations(t)
	})

	t.Run("MissingReferencesCollected", func(t *testing.T) {
		repo := new(MockParticipationRepo)
		svc := service.NewParticipationService(repo)

		p := &domain.Participation{Status: domain.ParticipationConfirmed}
		err := svc.Create(ctx, p)
		assert.Error(t, err)

		var r *validation.Result
		assert.True(t, errors.As(err, &r))
		assert.Len(t, r.Issues(), 2)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("SaveFailureMapsToErrStorage", func(t *testing.T) {
		repo := new(MockParticipationRepo)
		svc := service.NewParticipationService(repo)

		repo.On("Save", ctx, mock.AnythingOfType("*domain.Participation")).Return(false).Once()

		p := &domain.Participation{MemberID: 10, AppointmentID: 5, Status: domain.ParticipationConfirmed}
		assert.ErrorIs(t, svc.Create(ctx, p), service.ErrStorage)
	})
}

func TestParticipationService_ListByMember(t *testing.T) {
	ctx := context.Background()
	repo := new(MockParticipationRepo)
	svc := service.NewParticipationService(repo)

	participations := []domain.Participation{{ID: 1, MemberID: 10, AppointmentID: 5}}
	repo.On("FindByMember", ctx, int32(10)).Return(participations).Once()

	assert.Equal(t, participations, svc.ListByMember(ctx, 10))
	repo.AssertExpectations(t)
}

func TestParticipationService_ListByAppointment(t *testing.T) {
	ctx := context.Background()
	repo := new(MockParticipationRepo)
	svc := service.NewParticipationService(repo)

	participations := []domain.Participation{{ID: 1, MemberID: 10, AppointmentID: 5}}
	repo.On("FindByAppointment", ctx, int32(5)).Return(participations).Once()

	assert.Equal(t, participations, svc.ListByAppointment(ctx, 5))
}
