package domain

import "strings"

// Role is a member's role in the club. The database stores the enum key;
// DisplayName is what the presentation layer renders.
type Role string

const (
	RoleOrdinaryMember Role = "ORDINARY_MEMBER"
	RoleTrainer        Role = "TRAINER"
	RoleAdmin          Role = "ADMIN"
)

// Roles lists all roles in display order.
func Roles() []Role {
	return []Role{RoleOrdinaryMember, RoleTrainer, RoleAdmin}
}

// DisplayName returns the human-readable label for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleTrainer:
		return "Trainer"
	case RoleAdmin:
		return "Admin"
	default:
		return "Member"
	}
}

// ParseRole maps a stored role string to a Role. Unknown values fall back to
// RoleOrdinaryMember, unless they case-insensitively match a display label
// (legacy rows stored labels instead of keys).
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleOrdinaryMember, RoleTrainer, RoleAdmin:
		return Role(s)
	}
	for _, r := range Roles() {
		if strings.EqualFold(r.DisplayName(), s) {
			return r
		}
	}
	return RoleOrdinaryMember
}

type Member struct {
	ID        int32  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}
