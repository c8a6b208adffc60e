package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"farmgrid/internal/domain/entity"
	"farmgrid/internal/domain/repository"
	"farmgrid/internal/domain/service"
	"farmgrid/internal/errors"
	"farmgrid/internal/sms"
	"farmgrid/internal/usecase"
)

const collectUsage = "Usage: COLLECT farmer_id [ID] quantity [QTY] commodity_id [COMM_ID]"

var collectRequired = []string{"farmer_id", "quantity", "commodity_id"}

// collectArgs is the typed view of a COLLECT command's arguments.
type collectArgs struct {
	FarmerID    string
	Quantity    string
	CommodityID string
}

func newCollectArgs(parsed *sms.Parsed) collectArgs {
	return collectArgs{
		FarmerID:    parsed.Get("farmer_id"),
		Quantity:    parsed.Get("quantity"),
		CommodityID: parsed.Get("commodity_id"),
	}
}

// handleCollect records a produce collection reported by a field operator.
func (s *gatewayService) handleCollect(ctx context.Context, from string, parsed *sms.Parsed) *usecase.DispatchResult {
	if missing := missingFields(parsed, collectRequired); len(missing) > 0 {
		s.sendError(ctx, from, fmt.Sprintf("Missing: %s. %s", joinFields(missing), collectUsage))

		return failure("Missing required fields")
	}
	args := newCollectArgs(parsed)

	operator, err := s.userByPhone(ctx, from)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return s.collectStorageFailure(ctx, from, err)
	}
	if operator == nil || !operator.IsFieldOperator() {
		s.sendError(ctx, from, "You are not registered as a Field Operator.")

		return failure("Unauthorized user")
	}

	farmer, err := s.findFarmerByID(ctx, args.FarmerID)
	if err != nil && !errors.Is(err, repository.ErrFarmerNotFound) {
		return s.collectStorageFailure(ctx, from, err)
	}
	if farmer == nil {
		s.sendError(ctx, from, fmt.Sprintf("Farmer with ID %s not found.", args.FarmerID))

		return failure("Farmer not found")
	}

	commodity, err := s.findCommodityByID(ctx, args.CommodityID)
	if err != nil && !errors.Is(err, repository.ErrCommodityNotFound) {
		return s.collectStorageFailure(ctx, from, err)
	}
	if commodity == nil {
		s.sendError(ctx, from, fmt.Sprintf("Commodity with ID %s not found.", args.CommodityID))

		return failure("Commodity not found")
	}

	// ParseFloat accepts "NaN" and "Inf" spellings without error, and NaN
	// fails every comparison, so both must be ruled out explicitly.
	quantity, err := strconv.ParseFloat(args.Quantity, 64)
	if err != nil || math.IsNaN(quantity) || math.IsInf(quantity, 0) || quantity <= 0 {
		s.sendError(ctx, from, "Quantity must be a positive number.")

		return failure("Invalid quantity")
	}

	collection := &entity.Collection{
		FarmerID:        farmer.ID,
		FieldOperatorID: operator.ID,
		CooperativeID:   farmer.CooperativeID,
		CommodityID:     commodity.ID,
		Quantity:        quantity,
		Status:          entity.CollectionStatusInStock,
		Notes:           "SMS Collection: " + parsed.Original,
		CollectedAt:     time.Now(),
	}
	if err := s.collections.Create(ctx, collection); err != nil {
		return s.collectStorageFailure(ctx, from, err)
	}

	s.sendSuccess(ctx, from, fmt.Sprintf(
		"Collection #%d recorded successfully!\nFarmer: %s\nCommodity: %s\nQuantity: %s %s",
		collection.ID, farmer.FullName(), commodity.Name, formatQuantity(quantity), commodity.UnitOrDefault(),
	))

	if farmer.Phone != "" {
		s.send(ctx, farmer.Phone, fmt.Sprintf(
			"Your produce has been collected!\nQuantity: %s %s of %s\nCollection ID: %d",
			formatQuantity(quantity), commodity.UnitOrDefault(), commodity.Name, collection.ID,
		))
	}

	s.publishCollectionRecorded(ctx, collection)

	return &usecase.DispatchResult{
		Success: true,
		Data: map[string]any{
			"collection_id": collection.ID,
			"farmer_id":     farmer.ID,
			"commodity_id":  commodity.ID,
			"quantity":      quantity,
		},
	}
}

// collectStorageFailure reports a persistence error without leaking it to the sender.
func (s *gatewayService) collectStorageFailure(ctx context.Context, from string, err error) *usecase.DispatchResult {
	s.ctxLogger(ctx).Error("Storage failure during collection", slog.Any("error", err))
	s.sendError(ctx, from, "Failed to record collection. Please try again.")

	return failure("Database error")
}

// publishCollectionRecorded emits the collection event when a publisher is
// configured. Publish failures are logged and swallowed; the collection is
// already durable.
func (s *gatewayService) publishCollectionRecorded(ctx context.Context, collection *entity.Collection) {
	if s.publisher == nil {
		return
	}

	event := &service.CollectionEvent{
		CollectionID:    collection.ID,
		FarmerID:        collection.FarmerID,
		CommodityID:     collection.CommodityID,
		FieldOperatorID: collection.FieldOperatorID,
		CooperativeID:   collection.CooperativeID,
		Quantity:        collection.Quantity,
		RequestID:       requestIDFromContext(ctx),
		OccurredAt:      collection.CollectedAt,
	}

	if err := s.publisher.PublishCollectionEvent(ctx, event); err != nil {
		s.ctxLogger(ctx).Warn("Failed to publish collection event",
			slog.Int64("collection_id", collection.ID),
			slog.Any("error", err),
		)
	}
}

// findFarmerByID tolerates non-numeric ids by treating them as not found.
func (s *gatewayService) findFarmerByID(ctx context.Context, raw string) (*entity.Farmer, error) {
	id, ok := parseID(raw)
	if !ok {
		return nil, errors.WithStack(repository.ErrFarmerNotFound)
	}

	return s.farmers.FindByID(ctx, id)
}

// findCommodityByID tolerates non-numeric ids by treating them as not found.
func (s *gatewayService) findCommodityByID(ctx context.Context, raw string) (*entity.Commodity, error) {
	id, ok := parseID(raw)
	if !ok {
		return nil, errors.WithStack(repository.ErrCommodityNotFound)
	}

	return s.commodities.FindByID(ctx, id)
}
