package service

import (
	"context"
	"errors"

	"kud-club-backend/internal/domain"
)

// ErrStorage is returned when a repository write reports failure. The
// repositories swallow and log the concrete cause, so the presentation layer
// can only show a generic message and let the user retry.
var ErrStorage = errors.New("operation failed - check the database connection")

type MemberService interface {
	List(ctx context.Context) []domain.Member
	Get(ctx context.Context, id int32) *domain.Member
	Search(ctx context.Context, term string) []domain.Member
	Create(ctx context.Context, m *domain.Member) error
	Update(ctx context.Context, m *domain.Member) error
	Delete(ctx context.Context, id int32) error
}

type AppointmentService interface {
	// List loads all appointments, or only upcoming ones when onlyUpcoming
	// is set (narrower store query, not a post-filter).
	List(ctx context.Context, onlyUpcoming bool) []domain.Appointment
	Get(ctx context.Context, id int32) *domain.Appointment
	Create(ctx context.Context, a *domain.Appointment) error
	Update(ctx context.Context, a *domain.Appointment) error
	Delete(ctx context.Context, id int32) error
}

type FormService interface {
	// List loads all forms; onlyPending narrows the loaded list to PENDING
	// status at the caller level.
	List(ctx context.Context, onlyPending bool) []domain.Form
	Get(ctx context.Context, id int32) *domain.Form
	SearchByType(ctx context.Context, term string) []domain.Form
	Create(ctx context.Context, f *domain.Form) error
	Update(ctx context.Context, f *domain.Form) error
	Delete(ctx context.Context, id int32) error

	// PDF attachment, addressed by form id.
	AttachmentPath(formID int32) string
	HasAttachment(formID int32) bool
	AttachPDF(formID int32, sourcePath string, overwrite bool) error
}

type ParticipationService interface {
	List(ctx context.Context) []domain.Participation
	Get(ctx context.Context, id int32) *domain.Participation
	ListByMember(ctx context.Context, memberID int32) []domain.Participation
	ListByAppointment(ctx context.Context, appointmentID int32) []domain.Participation
	Create(ctx context.Context, p *domain.Participation) error
	Update(ctx context.Context, p *domain.Participation) error
	Delete(ctx context.Context, id int32) error
}

type EmailService interface {
	Send(to, subject, body string) error
	SendWelcome(to, name string) error
	SendAppointmentConfirmation(to, name, date, location string) error
	SendFormReminder(to, name, formType, returnDate string) error
}
