package service

import (
	"context"
	"errors"

	"kud-club-backend/internal/domain"
	"kud-club-backend/internal/repository"
	"kud-club-backend/internal/validation"
)

type participationService struct {
	participations repository.ParticipationRepository
}

func NewParticipationService(participations repository.ParticipationRepository) ParticipationService {
	return &participationService{participations: participations}
}

func (s *participationService) List(ctx context.Context) []domain.Participation {
	return s.participations.FindAll(ctx)
}

func (s *participationService) Get(ctx context.Context, id int32) *domain.Participation {
	return s.participations.FindByID(ctx, id)
}

func (s *participationService) ListByMember(ctx context.Context, memberID int32) []domain.Participation {
	return s.participations.FindByMember(ctx, memberID)
}

func (s *participationService) ListByAppointment(ctx context.Context, appointmentID int32) []domain.Participation {
	return s.participations.FindByAppointment(ctx, appointmentID)
}

func (s *participationService) Create(ctx context.Context, p *domain.Participation) error {
	if r := validation.ValidateParticipation(p); !r.OK() {
		return r
	}
	if !s.participations.Save(ctx, p) {
		return ErrStorage
	}
	return nil
}

func (s *participationService) Update(ctx context.Context, p *domain.Participation) error {
	if p.ID <= 0 {
		return errors.New("participation has no id, save it first")
	}
	if r := validation.ValidateParticipation(p); !r.OK() {
		return r
	}
	if !s.participations.Update(ctx, p) {
		return ErrStorage
	}
	return nil
}

func (s *participationService) Delete(ctx context.Context, id int32) error {
	if !s.participations.Delete(ctx, id) {
		return ErrStorage
	}
	return nil
}
