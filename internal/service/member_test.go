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

func validMember() *domain.Member {
	return &domain.Member{FirstName: "Adam", LastName: "Novak", Email: "adam@example.ch", Role: domain.RoleOrdinaryMember}
}

func TestMemberService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockMemberRepo)
		email := new(MockEmailService)
		svc := service.NewMemberService(repo, email)

		repo.On("Save", ctx, mock.AnythingOfType("*domain.Member")).Return(true).Once()
		email.On("SendWelcome", "adam@example.ch", "Adam").Return(nil).Once()

		err := svc.Create(ctx, validMember())
		assert.NoError(t, err)
		repo.AssertExpectations(t)
		email.AssertExpectations(t)
	})

	t.Run("InvalidMemberNeverHitsRepository", func(t *testing.T) {
		repo := new(MockMemberRepo)
		svc := service.NewMemberService(repo, nil)

		m := &domain.Member{Email: "broken"}
		err := svc.Create(ctx, m)
		assert.Error(t, err)

		var r *validation.Result
		assert.True(t, errors.As(err, &r))
		assert.Len(t, r.Issues(), 4)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("SaveFailureMapsToErrStorage", func(t *testing.T) {
		repo := new(MockMemberRepo)
		svc := service.NewMemberService(repo, nil)

		repo.On("Save", ctx, mock.AnythingOfType("*domain.Member")).Return(false).Once()

		err := svc.Create(ctx, validMember())
		assert.ErrorIs(t, err, service.ErrStorage)
	})

	t.Run("WelcomeMailFailureDoesNotFailCreate", func(t *testing.T) {
		repo := new(MockMemberRepo)
		email := new(MockEmailService)
		svc := service.NewMemberService(repo, email)

		repo.On("Save", ctx, mock.AnythingOfType("*domain.Member")).Return(true).Once()
		email.On("SendWelcome", "adam@example.ch", "Adam").Return(errors.New("smtp down")).Once()

		err := svc.Create(ctx, validMember())
		assert.NoError(t, err)
	})

	t.Run("NilEmailServiceSkipsWelcomeMail", func(t *testing.T) {
		repo := new(MockMemberRepo)
		svc := service.NewMemberService(repo, nil)

		repo.On("Save", ctx, mock.AnythingOfType("*domain.Member")).Return(true).Once()

		assert.NoError(t, svc.Create(ctx, validMember()))
	})
}

func TestMemberService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("RequiresID", func(t *testing.T) {
		repo := new(MockMemberRepo)
		svc := service.NewMemberService(repo, nil)

		err := svc.Update(ctx, validMember())
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Success", func(t *testing.T) {
		repo := new(MockMemberRepo)
		svc := service.NewMemberService(repo, nil)

		m := validMember()
		m.ID = 7
		repo.On("Update", ctx, m).Return(true).Once()

		assert.NoError(t, svc.Update(ctx, m))
		repo.AssertExpectations(t)
	})
}

func TestMemberService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := new(MockMemberRepo)
	svc := service.NewMemberService(repo, nil)

	repo.On("Delete", ctx, int32(7)).Return(false).Once()

	err := svc.Delete(ctx, 7)
	assert.ErrorIs(t, err, service.ErrStorage)
}

func TestMemberService_List(t *testing.T) {
	ctx := context.Background()
	repo := new(MockMemberRepo)
	svc := service.NewMemberService(repo, nil)

	members := []domain.Member{*validMember()}
	repo.On("FindAll", ctx).Return(members).Once()

	assert.Equal(t, members, svc.List(ctx))
	repo.AssertExpectations(t)
}
