// Package entity contains the core business objects of the domain.
package entity

import "time"

// User represents a registered back-office user. Field operators interact
// with the system over SMS, so the phone number is their identity here.
type User struct {
	ID            int64
	FirstName     string
	LastName      string
	Phone         string
	Email         string
	Role          Role
	CooperativeID *int64
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FullName joins the name parts for outbound messages.
func (u *User) FullName() string {
	return joinName(u.FirstName, u.LastName)
}

// IsFieldOperator reports whether the user may record collections over SMS.
func (u *User) IsFieldOperator() bool {
	return u.IsActive && u.Role == RoleFieldOperator
}

// CanRegisterFarmers reports whether the user may register farmers over SMS.
func (u *User) CanRegisterFarmers() bool {
	if !u.IsActive {
		return false
	}

	switch u.Role {
	case RoleCoopAdmin, RoleSystemAdmin, RoleFieldOperator:
		return true
	default:
		return false
	}
}

func joinName(first, last string) string {
	if first == "" {
		return last
	}
	if last == "" {
		return first
	}

	return first + " " + last
}
