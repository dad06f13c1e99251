package export

import (
	"io"
	"strconv"

	"kud-club-backend/internal/domain"
	"kud-club-backend/internal/utils"
)

// Members writes a member list as CSV.
func Members(w io.Writer, members []domain.Member) error {
	headers := []string{"ID", "First Name", "Last Name", "Email", "Role"}
	return CSV(w, members, headers, func(m domain.Member) []string {
		return []string{
			strconv.Itoa(int(m.ID)),
			m.FirstName,
			m.LastName,
			m.Email,
			m.Role.DisplayName(),
		}
	})
}

// Appointments writes an appointment list as CSV.
func Appointments(w io.Writer, appointments []domain.Appointment) error {
	headers := []string{"ID", "Date", "Time", "Location", "Holiday"}
	return CSV(w, appointments, headers, func(a domain.Appointment) []string {
		holiday := "No"
		if a.Holiday {
			holiday = "Yes"
		}
		return []string{
			strconv.Itoa(int(a.ID)),
			utils.FormatDate(a.Date),
			a.Time,
			a.Location,
			holiday,
		}
	})
}

// Forms writes a form list as CSV. A missing return date exports empty.
func Forms(w io.Writer, forms []domain.Form) error {
	headers := []string{"ID", "Type", "Issue Date", "Return Date", "Status", "Member ID"}
	return CSV(w, forms, headers, func(f domain.Form) []string {
		returnDate := ""
		if f.ReturnDate != nil {
			returnDate = utils.FormatDate(*f.ReturnDate)
		}
		return []string{
			strconv.Itoa(int(f.ID)),
			f.Type,
			utils.FormatDate(f.IssueDate),
			returnDate,
			f.Status.DisplayName(),
			strconv.Itoa(int(f.MemberID)),
		}
	})
}

// Participations writes a participation list as CSV. Form id 0 exports empty.
func Participations(w io.Writer, participations []domain.Participation) error {
	headers := []string{"ID", "Member ID", "Appointment ID", "Form ID", "Status"}
	return CSV(w, participations, headers, func(p domain.Participation) []string {
		formID := ""
		if p.FormID > 0 {
			formID = strconv.Itoa(int(p.FormID))
		}
		return []string{
			strconv.Itoa(int(p.ID)),
			strconv.Itoa(int(p.MemberID)),
			strconv.Itoa(int(p.AppointmentID)),
			formID,
			p.Status.DisplayName(),
		}
	})
}
