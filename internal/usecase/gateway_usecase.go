// Package usecase defines the application-layer interfaces.
package usecase

import "context"

// InboundMessage is an SMS delivery from the provider webhook. Raw carries
// the serialized original payload for the audit trail.
type InboundMessage struct {
	From       string
	Text       string
	To         string
	Date       string
	ProviderID string
	Raw        []byte
}

// DispatchResult is the outcome of processing one inbound SMS.
type DispatchResult struct {
	Success bool
	Command string
	Message string
	Data    map[string]any
}

// GatewayUsecase processes inbound SMS commands.
type GatewayUsecase interface {
	// HandleInbound parses the message, dispatches it to the matching command
	// handler and writes one audit row for the attempt. Command-level
	// failures are reported in the result, not as errors; a non-nil error
	// means processing itself blew up and the caller should answer 500.
	HandleInbound(ctx context.Context, msg *InboundMessage) (*DispatchResult, error)
}
