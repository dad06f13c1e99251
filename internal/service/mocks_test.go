package service_test

import (
	"context"

	"kud-club-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockMemberRepo struct {
	mock.Mock
}

func (m *MockMemberRepo) FindAll(ctx context.Context) []domain.Member {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Member)
}

func (m *MockMemberRepo) FindByID(ctx context.Context, id int32) *domain.Member {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Member)
}

func (m *MockMemberRepo) Search(ctx context.Context, term string) []domain.Member {
	args := m.Called(ctx, term)
	return args.Get(0).([]domain.Member)
}

func (m *MockMemberRepo) Save(ctx context.Context, member *domain.Member) bool {
	args := m.Called(ctx, member)
	return args.Bool(0)
}

func (m *MockMemberRepo) Update(ctx context.Context, member *domain.Member) bool {
	args := m.Called(ctx, member)
	return args.Bool(0)
}

func (m *MockMemberRepo) Delete(ctx context.Context, id int32) bool {
	args := m.Called(ctx, id)
	return args.Bool(0)
}

type MockAppointmentRepo struct {
	mock.Mock
}

func (m *MockAppointmentRepo) FindAll(ctx context.Context) []domain.Appointment {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Appointment)
}

func (m *MockAppointmentRepo) FindUpcoming(ctx context.Context) []domain.Appointment {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Appointment)
}

func (m *MockAppointmentRepo) FindByID(ctx context.Context, id int32) *domain.Appointment {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Appointment)
}

func (m *MockAppointmentRepo) Save(ctx context.Context, a *domain.Appointment) bool {
	args := m.Called(ctx, a)
	return args.Bool(0)
}

func (m *MockAppointmentRepo) Update(ctx context.Context, a *domain.Appointment) bool {
	args := m.Called(ctx, a)
	return args.Bool(0)
}

func (m *MockAppointmentRepo) Delete(ctx context.Context, id int32) bool {
	args := m.Called(ctx, id)
	return args.Bool(0)
}

type MockFormRepo struct {
	mock.Mock
}

func (m *MockFormRepo) FindAll(ctx context.Context) []domain.Form {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Form)
}

func (m *MockFormRepo) FindByID(ctx context.Context, id int32) *domain.Form {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Form)
}

func (m *MockFormRepo) SearchByType(ctx context.Context, term string) []domain.Form {
	args := m.Called(ctx, term)
	return args.Get(0).([]domain.Form)
}

func (m *MockFormRepo) Save(ctx context.Context, f *domain.Form) bool {
	args := m.Called(ctx, f)
	return args.Bool(0)
}

func (m *MockFormRepo) Update(ctx context.Context, f *domain.Form) bool {
	args := m.Called(ctx, f)
	return args.Bool(0)
}

func (m *MockFormRepo) Delete(ctx context.Context, id int32) bool {
	args := m.Called(ctx, id)
	return args.Bool(0)
}

type MockParticipationRepo struct {
	mock.Mock
}

func (m *MockParticipationRepo) FindAll(ctx context.Context) []domain.Participation {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Participation)
}

func (m *MockParticipationRepo) FindByID(ctx context.Context, id int32) *domain.Participation {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Participation)
}

func (m *MockParticipationRepo) FindByMember(ctx context.Context, memberID int32) []domain.Participation {
	args := m.Called(ctx, memberID)
	return args.Get(0).([]domain.Participation)
}

func (m *MockParticipationRepo) FindByAppointment(ctx context.Context, appointmentID int32) []domain.Participation {
	args := m.Called(ctx, appointmentID)
	return args.Get(0).([]domain.Participation)
}

func (m *MockParticipationRepo) Save(ctx context.Context, p *domain.Participation) bool {
	args := m.Called(ctx, p)
	return args.Bool(0)
}

func (m *MockParticipationRepo) Update(ctx context.Context, p *domain.Participation) bool {
	args := m.Called(ctx, p)
	return args.Bool(0)
}

func (m *MockParticipationRepo) Delete(ctx context.Context, id int32) bool {
	args := m.Called(ctx, id)
	return args.Bool(0)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) Send(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}

func (m *MockEmailService) SendWelcome(to, name string) error {
	args := m.Called(to, name)
	return args.Error(0)
}

func (m *MockEmailService) SendAppointmentConfirmation(to, name, date, location string) error {
	args := m.Called(to, name, date, location)
	return args.Error(0)
}

func (m *MockEmailService) SendFormReminder(to, name, formType, returnDate string) error {
	args := m.Called(to, name, formType, returnDate)
	return args.Error(0)
}
