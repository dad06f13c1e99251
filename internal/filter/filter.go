// Package filter narrows in-memory entity lists to the currently entered
// search criteria. Filters are re-evaluated on every keystroke by the
// presentation layer, never mutate their input and preserve input order.
package filter

import (
	"strconv"
	"strings"
	"time"

	"kud-club-backend/internal/domain"
	"kud-club-backend/internal/utils"
)

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

func idMatches(id int32, needle string) bool {
	return strings.Contains(strconv.Itoa(int(id)), needle)
}

// MemberFilter matches the free-text query against name parts, email, role
// key and id. An empty query matches everything.
type MemberFilter struct {
	Query string
}

func (f MemberFilter) Apply(in []domain.Member) []domain.Member {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return append([]domain.Member(nil), in...)
	}
	out := make([]domain.Member, 0, len(in))
	for _, m := range in {
		if containsFold(m.FirstName, q) ||
			containsFold(m.LastName, q) ||
			containsFold(m.Email, q) ||
			containsFold(string(m.Role), q) ||
			idMatches(m.ID, q) {
			out = append(out, m)
		}
	}
	return out
}

// AppointmentFilter applies an inclusive date range first (a nil bound is
// unbounded on that side), then the free-text query over location, formatted
// date, time text and id. Both must pass.
type AppointmentFilter struct {
	Query string
	From  *time.Time
	To    *time.Time
}

func (f AppointmentFilter) Apply(in []domain.Appointment) []domain.Appointment {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]domain.Appointment, 0, len(in))
	for _, a := range in {
		if f.From != nil && a.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && a.Date.After(*f.To) {
			continue
		}
		if q != "" {
			if !containsFold(a.Location, q) &&
				!strings.Contains(utils.FormatDate(a.Date), q) &&
				!strings.Contains(a.Time, q) &&
				!idMatches(a.ID, q) {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

// FormFilter matches the free-text query against type, status key, formatted
// issue and return dates, member id and id.
type FormFilter struct {
	Query string
}

func (f FormFilter) Apply(in []domain.Form) []domain.Form {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return append([]domain.Form(nil), in...)
	}
	out := make([]domain.Form, 0, len(in))
	for _, fm := range in {
		returnDate := ""
		if fm.ReturnDate != nil {
			returnDate = utils.FormatDate(*fm.ReturnDate)
		}
		if containsFold(fm.Type, q) ||
			containsFold(string(fm.Status), q) ||
			strings.Contains(utils.FormatDate(fm.IssueDate), q) ||
			strings.Contains(returnDate, q) ||
			idMatches(fm.MemberID, q) ||
			idMatches(fm.ID, q) {
			out = append(out, fm)
		}
	}
	return out
}

// ParticipationFilter combines two field filters (member id, appointment id)
// with the free-text query; all non-empty parts are AND-ed.
type ParticipationFilter struct {
	Query         string
	MemberID      string
	AppointmentID string
}

func (f ParticipationFilter) Apply(in []domain.Participation) []domain.Participation {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	qMember := strings.ToLower(strings.TrimSpace(f.MemberID))
	qAppointment := strings.ToLower(strings.TrimSpace(f.AppointmentID))

	out := make([]domain.Participation, 0, len(in))
	for _, p := range in {
		if qMember != "" && !idMatches(p.MemberID, qMember) {
			continue
		}
		if qAppointment != "" && !idMatches(p.AppointmentID, qAppointment) {
			continue
		}
		if q != "" {
			if !idMatches(p.MemberID, q) &&
				!idMatches(p.AppointmentID, q) &&
				!idMatches(p.FormID, q) &&
				!containsFold(string(p.Status), q) &&
				!idMatches(p.ID, q) {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}
