package service

import (
	"context"
	"errors"
	"strings"

	"kud-club-backend/internal/domain"
	"kud-club-backend/internal/repository"
	"kud-club-backend/internal/validation"
)

type appointmentService struct {
	appointments repository.AppointmentRepository
}

func NewAppointmentService(appointments repository.AppointmentRepository) AppointmentService {
	return &appointmentService{appointments: appointments}
}

func (s *appointmentService) List(ctx context.Context, onlyUpcoming bool) []domain.Appointment {
	if onlyUpcoming {
		return s.appointments.FindUpcoming(ctx)
	}
	return s.appointments.FindAll(ctx)
}

func (s *appointmentService) Get(ctx context.Context, id int32) *domain.Appointment {
	return s.appointments.FindByID(ctx, id)
}

func (s *appointmentService) Create(ctx context.Context, a *domain.Appointment) error {
	normalizeAppointment(a)
	if r := validation.ValidateAppointment(a); !r.OK() {
		return r
	}
	if !s.appointments.Save(ctx, a) {
		return ErrStorage
	}
	return nil
}

func (s *appointmentService) Update(ctx context.Context, a *domain.Appointment) error {
	if a.ID <= 0 {
		return errors.New("appointment has no id, save it first")
	}
	normalizeAppointment(a)
	if r := validation.ValidateAppointment(a); !r.OK() {
		return r
	}
	if !s.appointments.Update(ctx, a) {
		return ErrStorage
	}
	return nil
}

func (s *appointmentService) Delete(ctx context.Context, id int32) error {
	if !s.appointments.Delete(ctx, id) {
		return ErrStorage
	}
	return nil
}

func normalizeAppointment(a *domain.Appointment) {
	a.Time = strings.TrimSpace(a.Time)
	a.Location = strings.TrimSpace(a.Location)
}
