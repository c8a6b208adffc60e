package impl

import (
	"context"
	"fmt"
	"log/slog"

	"farmgrid/internal/domain/repository"
	"farmgrid/internal/errors"
	"farmgrid/internal/sms"
	"farmgrid/internal/usecase"
)

// handleStatus replies with the sender's profile summary, optionally extended
// with one collection's detail when a collection_id argument is present.
func (s *gatewayService) handleStatus(ctx context.Context, from string, parsed *sms.Parsed) *usecase.DispatchResult {
	user, err := s.userByPhone(ctx, from)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return s.statusStorageFailure(ctx, from, err)
	}
	if user == nil {
		s.sendError(ctx, from, "Your phone number is not registered in the system.")

		return failure("User not found")
	}

	statusMsg := fmt.Sprintf(
		"📊 Your FarmGrid Status:\nName: %s\nRole: %s\nPhone: %s",
		user.FullName(), user.Role, user.Phone,
	)

	if collectionID := parsed.Get("collection_id"); collectionID != "" {
		statusMsg += s.collectionSummary(ctx, collectionID)
	}

	s.send(ctx, from, statusMsg)

	return &usecase.DispatchResult{
		Success: true,
		Data: map[string]any{
			"user_id": user.ID,
		},
	}
}

// statusStorageFailure reports a persistence error without leaking it to the sender.
func (s *gatewayService) statusStorageFailure(ctx context.Context, from string, err error) *usecase.DispatchResult {
	s.ctxLogger(ctx).Error("Storage failure during status lookup", slog.Any("error", err))
	s.sendError(ctx, from, "Failed to retrieve status. Please try again.")

	return failure("Database error")
}

// collectionSummary renders one collection's detail block, or a not-found
// note when the id does not resolve.
func (s *gatewayService) collectionSummary(ctx context.Context, raw string) string {
	notFound := fmt.Sprintf("\n\n❌ Collection #%s not found.", raw)

	id, ok := parseID(raw)
	if !ok {
		return notFound
	}

	detail, err := s.collections.FindDetailByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrCollectionNotFound) {
			s.ctxLogger(ctx).Error("Storage failure during collection lookup",
				slog.Int64("collection_id", id),
				slog.Any("error", err),
			)
		}

		return notFound
	}

	return fmt.Sprintf(
		"\n\n📦 Collection #%d:\nFarmer: %s\nCommodity: %s\nQuantity: %s\nStatus: %s\nDate: %s",
		detail.ID, detail.FarmerName, detail.CommodityName,
		formatQuantity(detail.Quantity), detail.Status,
		detail.CollectedAt.Format("02 Jan 2006"),
	)
}
