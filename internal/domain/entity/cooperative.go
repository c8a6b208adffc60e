package entity

import "time"

// Cooperative represents a farmer cooperative, the tenancy unit of the system.
type Cooperative struct {
	ID        int64
	Name      string
	Location  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
