package entity

import "time"

// Registration methods recorded on a farmer row.
const (
	RegistrationMethodSMS = "SMS"
	RegistrationMethodWeb = "WEB"
)

// Farmer represents a produce supplier attached to a cooperative.
type Farmer struct {
	ID                 int64
	FirstName          string
	LastName           string
	Phone              string
	CooperativeID      *int64
	RegisteredByUserID *int64
	RegistrationMethod string
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// FullName joins the name parts for outbound messages.
func (f *Farmer) FullName() string {
	return joinName(f.FirstName, f.LastName)
}
