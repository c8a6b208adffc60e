// Package impl contains the concrete implementations of the usecase layer.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	deliverycontext "farmgrid/internal/delivery/context"
	"farmgrid/internal/domain/entity"
	"farmgrid/internal/domain/repository"
	"farmgrid/internal/domain/service"
	"farmgrid/internal/errors"
	"farmgrid/internal/infra/metrics"
	"farmgrid/internal/sms"
	"farmgrid/internal/usecase"
)

// gatewayService implements usecase.GatewayUsecase.
type gatewayService struct {
	logger       *slog.Logger
	users        repository.UserRepository
	farmers      repository.FarmerRepository
	cooperatives repository.CooperativeRepository
	commodities  repository.CommodityRepository
	collections  repository.CollectionRepository
	smsLogs      repository.SmsLogRepository
	sender       service.SMSSender
	publisher    service.EventPublisher
}

// NewGatewayService is the constructor for gatewayService. The publisher may
// be nil when event publishing is not configured.
func NewGatewayService(
	logger *slog.Logger,
	users repository.UserRepository,
	farmers repository.FarmerRepository,
	cooperatives repository.CooperativeRepository,
	commodities repository.CommodityRepository,
	collections repository.CollectionRepository,
	smsLogs repository.SmsLogRepository,
	sender service.SMSSender,
	publisher service.EventPublisher,
) usecase.GatewayUsecase {
	return &gatewayService{
		logger:       logger,
		users:        users,
		farmers:      farmers,
		cooperatives: cooperatives,
		commodities:  commodities,
		collections:  collections,
		smsLogs:      smsLogs,
		sender:       sender,
		publisher:    publisher,
	}
}

// HandleInbound parses and dispatches one inbound SMS, then appends the audit
// row. Handler failures come back in the result; only a panic during
// processing produces a non-nil error.
func (s *gatewayService) HandleInbound(ctx context.Context, msg *usecase.InboundMessage) (result *usecase.DispatchResult, err error) {
	logger := s.ctxLogger(ctx)
	parsed := sms.Parse(msg.Text)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Panic while processing inbound SMS",
				slog.String("from", msg.From),
				slog.Any("panic", r),
			)

			// Best-effort apology so the sender is not left waiting.
			s.sendError(ctx, msg.From, "An internal server error occurred. Please try again later.")

			result = &usecase.DispatchResult{
				Success: false,
				Command: parsed.Name,
				Message: "Internal server error",
			}
			s.audit(ctx, msg, parsed, result)

			err = errors.Errorf("panic while processing inbound SMS: %v", r)
		}
	}()

	logger.Info("Processing inbound SMS",
		slog.String("from", msg.From),
		slog.String("command", parsed.Name),
	)

	result = s.dispatch(ctx, msg.From, parsed)
	result.Command = parsed.Name

	s.audit(ctx, msg, parsed, result)

	status := string(entity.SmsLogStatusFailed)
	if result.Success {
		status = string(entity.SmsLogStatusSuccess)
	}
	metrics.SMSProcessedTotal.WithLabelValues(parsed.Name, status).Inc()

	return result, nil
}

// dispatch routes a parsed command to its handler. The command set is a
// closed enumeration; adding a command means extending this switch.
func (s *gatewayService) dispatch(ctx context.Context, from string, parsed *sms.Parsed) *usecase.DispatchResult {
	command, ok := sms.Lookup(parsed.Name)
	if !ok {
		s.sendError(ctx, from, fmt.Sprintf(
			"Unknown command: %s. Available commands: %s. Send HELP for usage.",
			parsed.Name, sms.CommandList(),
		))

		return &usecase.DispatchResult{
			Success: false,
			Message: fmt.Sprintf("Unknown command: %s", parsed.Name),
		}
	}

	switch command {
	case sms.CommandCollect:
		return s.handleCollect(ctx, from, parsed)
	case sms.CommandRegisterFarmer:
		return s.handleRegisterFarmer(ctx, from, parsed)
	case sms.CommandStatus:
		return s.handleStatus(ctx, from, parsed)
	case sms.CommandHelp:
		return s.handleHelp(ctx, from)
	default:
		// Unreachable while Lookup and this switch stay in sync.
		return &usecase.DispatchResult{
			Success: false,
			Message: fmt.Sprintf("Unknown command: %s", parsed.Name),
		}
	}
}

// audit appends one SmsLog row for the attempt. Failures are logged and
// swallowed; the audit trail must never fail the primary operation.
func (s *gatewayService) audit(ctx context.Context, msg *usecase.InboundMessage, parsed *sms.Parsed, result *usecase.DispatchResult) {
	status := entity.SmsLogStatusFailed
	if result.Success {
		status = entity.SmsLogStatusSuccess
	}

	log := &entity.SmsLog{
		PhoneNumber: msg.From,
		Message:     parsed.Original,
		Command:     parsed.Name,
		Status:      status,
		Response:    result.Message,
		WebhookData: string(msg.Raw),
		ProcessedAt: time.Now(),
	}

	if err := s.smsLogs.Create(ctx, log); err != nil {
		s.ctxLogger(ctx).Error("Failed to write SMS audit log",
			slog.String("from", msg.From),
			slog.String("command", parsed.Name),
			slog.Any("error", err),
		)
	}
}

// userByPhone resolves the sender's identity. A phone number that cannot be
// normalized is treated the same as an unknown sender.
func (s *gatewayService) userByPhone(ctx context.Context, phone string) (*entity.User, error) {
	canonical, err := sms.NormalizePhone(phone)
	if err != nil {
		return nil, errors.WithStack(repository.ErrUserNotFound)
	}

	return s.users.FindByPhone(ctx, canonical, phone)
}

// send delivers an outbound SMS, swallowing transport errors. A reply that
// cannot be delivered must not change the command's outcome.
func (s *gatewayService) send(ctx context.Context, to, message string) {
	if err := s.sender.Send(ctx, to, message); err != nil {
		metrics.SMSSendFailuresTotal.Inc()
		s.ctxLogger(ctx).Warn("Failed to send SMS",
			slog.String("to", to),
			slog.Any("error", err),
		)
	}
}

func (s *gatewayService) sendError(ctx context.Context, to, message string) {
	s.send(ctx, to, "❌ Error: "+message)
}

func (s *gatewayService) sendSuccess(ctx context.Context, to, message string) {
	s.send(ctx, to, "✅ "+message)
}

func (s *gatewayService) ctxLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// failure builds a failed result with the given audit message.
func failure(message string) *usecase.DispatchResult {
	return &usecase.DispatchResult{
		Success: false,
		Message: message,
	}
}

func requestIDFromContext(ctx context.Context) string {
	return deliverycontext.GetRequestIDFromContext(ctx)
}

// joinFields renders a missing-field list for usage messages.
func joinFields(fields []string) string {
	return strings.Join(fields, ", ")
}

// missingFields returns the required keys absent from the parsed arguments,
// in declaration order.
func missingFields(parsed *sms.Parsed, required []string) []string {
	var missing []string
	for _, field := range required {
		if parsed.Get(field) == "" {
			missing = append(missing, field)
		}
	}

	return missing
}

// parseID converts a numeric id argument. ok is false for anything that is
// not a positive integer.
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// formatQuantity renders a quantity without trailing zeros, so 50 stays "50"
// and 50.5 stays "50.5".
func formatQuantity(quantity float64) string {
	return strconv.FormatFloat(quantity, 'f', -1, 64)
}
