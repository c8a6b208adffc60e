package service

import (
	"context"
	"time"
)

// OTPStore holds short-lived verification codes keyed by phone number.
type OTPStore interface {
	// Put stores code for phone, replacing any previous code, with the given
	// lifetime.
	Put(ctx context.Context, phone, code string, ttl time.Duration) error

	// Take returns the stored code for phone and removes it, so each code can
	// be checked at most once. ok is false when no live code exists.
	Take(ctx context.Context, phone string) (code string, ok bool, err error)
}
