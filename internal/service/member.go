package service

import (
	"context"
	"errors"

	"kud-club-backend/internal/domain"
	"kud-club-backend/internal/logger"
	"kud-club-backend/internal/repository"
	"kud-club-backend/internal/validation"
)

type memberService struct {
	members repository.MemberRepository
	email   EmailService
}

// NewMemberService creates the member service. email may be nil, in which
// case no welcome mails are sent.
func NewMemberService(members repository.MemberRepository, email EmailService) MemberService {
	return &memberService{members: members, email: email}
}

func (s *memberService) List(ctx context.Context) []domain.Member {
	return s.members.FindAll(ctx)
}

func (s *memberService) Get(ctx context.Context, id int32) *domain.Member {
	return s.members.FindByID(ctx, id)
}

func (s *memberService) Search(ctx context.Context, term string) []domain.Member {
	return s.members.Search(ctx, term)
}

func (s *memberService) Create(ctx context.Context, m *domain.Member) error {
	if r := validation.ValidateMember(m); !r.OK() {
		return r
	}
	if !s.members.Save(ctx, m) {
		return ErrStorage
	}

	// Welcome mail is best effort; a mail failure must not fail the create.
	if s.email != nil {
		if err := s.email.SendWelcome(m.Email, m.FirstName); err != nil {
			logger.Warn("Failed to send welcome email", "member_id", m.ID, "error", err)
		}
	}
	return nil
}

func (s *memberService) Update(ctx context.Context, m *domain.Member) error {
	if m.ID <= 0 {
		return errors.New("member has no id, save it first")
	}
	if r := validation.ValidateMember(m); !r.OK() {
		return r
	}
	if !s.members.Update(ctx, m) {
		return ErrStorage
	}
	return nil
}

func (s *memberService) Delete(ctx context.Context, id int32) error {
	if !s.members.Delete(ctx, id) {
		return ErrStorage
	}
	return nil
}
