package domain

type ParticipationStatus string

const (
	ParticipationConfirmed ParticipationStatus = "CONFIRMED"
	ParticipationDeclined  ParticipationStatus = "DECLINED"
	ParticipationAbsent    ParticipationStatus = "ABSENT"
)

func ParticipationStatuses() []ParticipationStatus {
	return []ParticipationStatus{ParticipationConfirmed, ParticipationDeclined, ParticipationAbsent}
}

func (s ParticipationStatus) DisplayName() string {
	switch s {
	case ParticipationDeclined:
		return "Declined"
	case ParticipationAbsent:
		return "Absent"
	default:
		return "Confirmed"
	}
}

// ParseParticipationStatus maps a stored status string, falling back to
// ParticipationConfirmed for unknown or empty values.
func ParseParticipationStatus(s string) ParticipationStatus {
	switch ParticipationStatus(s) {
	case ParticipationConfirmed, ParticipationDeclined, ParticipationAbsent:
		return ParticipationStatus(s)
	}
	return ParticipationConfirmed
}

// Participation links a member to an appointment. FormID 0 means no form is
// attached; the repository stores 0 as SQL NULL and reads NULL back as 0.
type Participation struct {
	ID            int32               `json:"id"`
	MemberID      int32               `json:"member_id"`
	AppointmentID int32               `json:"appointment_id"`
	FormID        int32               `json:"form_id"`
	Status        ParticipationStatus `json:"status"`
}
