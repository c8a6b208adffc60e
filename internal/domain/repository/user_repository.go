// Package repository defines the persistence interfaces of the domain layer.
package repository

import (
	"context"

	"farmgrid/internal/domain/entity"
	"farmgrid/internal/errors"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository provides access to back-office users.
type UserRepository interface {
	// FindByPhone looks up a user by the canonical phone form first and the
	// raw inbound form second, so rows stored before normalization still match.
	FindByPhone(ctx context.Context, canonical, raw string) (*entity.User, error)
}
