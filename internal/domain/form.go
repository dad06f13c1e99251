package domain

import "time"

type FormStatus string

const (
	FormStatusPending   FormStatus = "PENDING"
	FormStatusSubmitted FormStatus = "SUBMITTED"
	FormStatusReviewed  FormStatus = "REVIEWED"
)

func FormStatuses() []FormStatus {
	return []FormStatus{FormStatusPending, FormStatusSubmitted, FormStatusReviewed}
}

func (s FormStatus) DisplayName() string {
	switch s {
	case FormStatusSubmitted:
		return "Submitted"
	case FormStatusReviewed:
		return "Reviewed"
	default:
		return "Pending"
	}
}

// ParseFormStatus maps a stored status string to a FormStatus, falling back
// to FormStatusPending for unknown or empty values.
func ParseFormStatus(s string) FormStatus {
	switch FormStatus(s) {
	case FormStatusPending, FormStatusSubmitted, FormStatusReviewed:
		return FormStatus(s)
	}
	return FormStatusPending
}

// Form is a paper form handed out to a member. ReturnDate is nil while the
// form has no due date. A PDF scan may be attached on disk, addressed by the
// form id (see internal/storage); it is not a database column.
type Form struct {
	ID         int32      `json:"id"`
	Type       string     `json:"type"`
	IssueDate  time.Time  `json:"issue_date"`
	ReturnDate *time.Time `json:"return_date"`
	Status     FormStatus `json:"status"`
	MemberID   int32      `json:"member_id"`
}
