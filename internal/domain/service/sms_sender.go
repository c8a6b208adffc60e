// Package service defines interfaces for external services used by the domain.
package service

import "context"

// SMSSender delivers an outbound SMS through the configured provider.
type SMSSender interface {
	// Send delivers message to the phone number in to. The number is in
	// canonical form without a leading plus.
	Send(ctx context.Context, to, message string) error
}
