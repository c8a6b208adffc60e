package entity

import "time"

// Commodity represents a tradable produce type, e.g. maize or coffee cherry.
type Commodity struct {
	ID        int64
	Name      string
	Unit      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UnitOrDefault returns the measurement unit, falling back to a generic label
// when the commodity has none configured.
func (c *Commodity) UnitOrDefault() string {
	if c.Unit == "" {
		return "units"
	}

	return c.Unit
}
