// Package repository defines the persistence contracts. All reads are
// fail-soft: on a storage error the repository logs the cause and returns an
// empty result (nil slice, nil entity), never an error. Writes return false
// on failure. The UI relies on this contract to always have a list to render;
// callers treat false or an unexpectedly empty result after a user action as
// an operational failure.
package repository

import (
	"context"

	"kud-club-backend/internal/domain"
)

type MemberRepository interface {
	// FindAll returns all members ordered by last name, then first name.
	FindAll(ctx context.Context) []domain.Member
	// FindByID returns nil when the member does not exist.
	FindByID(ctx context.Context, id int32) *domain.Member
	// Search matches the term case-insensitively against first name, last
	// name and email.
	Search(ctx context.Context, term string) []domain.Member
	// Save inserts the member and writes the generated id back into it.
	Save(ctx context.Context, m *domain.Member) bool
	Update(ctx context.Context, m *domain.Member) bool
	Delete(ctx context.Context, id int32) bool
}

type AppointmentRepository interface {
	// FindAll returns all appointments, newest date first, time ascending.
	FindAll(ctx context.Context) []domain.Appointment
	// FindUpcoming returns appointments from today on, soonest first.
	FindUpcoming(ctx context.Context) []domain.Appointment
	FindByID(ctx context.Context, id int32) *domain.Appointment
	Save(ctx context.Context, a *domain.Appointment) bool
	Update(ctx context.Context, a *domain.Appointment) bool
	Delete(ctx context.Context, id int32) bool
}

type FormRepository interface {
	// FindAll returns all forms ordered by issue date, then id, descending.
	FindAll(ctx context.Context) []domain.Form
	FindByID(ctx context.Context, id int32) *domain.Form
	// SearchByType matches the term case-insensitively against the type.
	SearchByType(ctx context.Context, term string) []domain.Form
	Save(ctx context.Context, f *domain.Form) bool
	Update(ctx context.Context, f *domain.Form) bool
	Delete(ctx context.Context, id int32) bool
}

type ParticipationRepository interface {
	// FindAll returns all participations, newest id first.
	FindAll(ctx context.Context) []domain.Participation
	FindByID(ctx context.Context, id int32) *domain.Participation
	FindByMember(ctx context.Context, memberID int32) []domain.Participation
	FindByAppointment(ctx context.Context, appointmentID int32) []domain.Participation
	Save(ctx context.Context, p *domain.Participation) bool
	Update(ctx context.Context, p *domain.Participation) bool
	Delete(ctx context.Context, id int32) bool
}
