// Package validation holds the field rules applied before any write and the
// per-entity record validators. A record validator runs every rule and
// collects all failures into one Result, so the user sees the complete list
// instead of the first failure only.
package validation

import (
	"regexp"
	"strings"
	"time"

	"kud-club-backend/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// NotEmpty reports whether the text is non-empty after trimming whitespace.
func NotEmpty(text string) bool {
	return strings.TrimSpace(text) != ""
}

// ValidEmail reports whether the trimmed text matches the email pattern.
func ValidEmail(text string) bool {
	return emailPattern.MatchString(strings.TrimSpace(text))
}

// HasDate reports whether a date value is set.
func HasDate(t time.Time) bool {
	return !t.IsZero()
}

// ValidTimeText reports whether the trimmed text parses as HH:MM.
func ValidTimeText(text string) bool {
	_, err := time.Parse("15:04", strings.TrimSpace(text))
	return err == nil
}

// ValidDateText reports whether the trimmed text parses as an ISO date.
func ValidDateText(text string) bool {
	_, err := time.Parse("2006-01-02", strings.TrimSpace(text))
	return err == nil
}

// Result collects the failed rules of one record validation. A nil or empty
// Result means the record is valid. Result implements error so services can
// return it directly from a write path.
type Result struct {
	issues []string
}

func (r *Result) fail(msg string) {
	r.issues = append(r.issues, msg)
}

// OK reports whether no rule failed.
func (r *Result) OK() bool {
	return r == nil || len(r.issues) == 0
}

// Issues returns every failed rule, in check order.
func (r *Result) Issues() []string {
	if r == nil {
		return nil
	}
	return r.issues
}

// Error returns the consolidated, itemized message.
func (r *Result) Error() string {
	var b strings.Builder
	b.WriteString("Please fill in all required fields correctly.")
	for _, issue := range r.issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// ValidateMember checks all member fields.
func ValidateMember(m *domain.Member) *Result {
	r := &Result{}
	if !NotEmpty(m.FirstName) {
		r.fail("First name must not be empty")
	}
	if !NotEmpty(m.LastName) {
		r.fail("Last name must not be empty")
	}
	if !ValidEmail(m.Email) {
		r.fail("Email must be a valid address")
	}
	if m.Role == "" {
		r.fail("Role must be selected")
	}
	return r
}

// ValidateAppointment checks all appointment fields.
func ValidateAppointment(a *domain.Appointment) *Result {
	r := &Result{}
	if !HasDate(a.Date) {
		r.fail("Date must be set")
	}
	if !ValidTimeText(a.Time) {
		r.fail("Time must not be empty (format: HH:MM)")
	}
	if !NotEmpty(a.Location) {
		r.fail("Location must not be empty")
	}
	return r
}

// ValidateForm checks all form fields. The return date is optional and its
// ordering relative to the issue date is deliberately not checked.
func ValidateForm(f *domain.Form) *Result {
	r := &Result{}
	if !NotEmpty(f.Type) {
		r.fail("Type must not be empty")
	}
	if !HasDate(f.IssueDate) {
		r.fail("Issue date must be set")
	}
	if f.Status == "" {
		r.fail("Status must be selected")
	}
	if f.MemberID <= 0 {
		r.fail("Member ID must be given")
	}
	return r
}

// ValidateParticipation checks all participation fields. FormID 0 is valid
// and means no form is attached.
func ValidateParticipation(p *domain.Participation) *Result {
	r := &Result{}
	if p.MemberID <= 0 {
		r.fail("Member ID must be given")
	}
	if p.AppointmentID <= 0 {
		r.fail("Appointment ID must be given")
	}
	if p.Status == "" {
		r.fail("Status must be selected")
	}
	return r
}
