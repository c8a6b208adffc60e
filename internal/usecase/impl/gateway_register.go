package impl

import (
	"context"
	"fmt"
	"log/slog"

	"farmgrid/internal/domain/entity"
	"farmgrid/internal/domain/repository"
	"farmgrid/internal/errors"
	"farmgrid/internal/sms"
	"farmgrid/internal/usecase"
)

const registerFarmerUsage = "Usage: REGISTER_FARMER first_name [NAME] last_name [SURNAME] phone_number [PHONE] cooperative_id [COOP_ID]"

var registerFarmerRequired = []string{"first_name", "last_name", "phone_number", "cooperative_id"}

// registerFarmerArgs is the typed view of a REGISTER_FARMER command's arguments.
type registerFarmerArgs struct {
	FirstName     string
	LastName      string
	PhoneNumber   string
	CooperativeID string
}

func newRegisterFarmerArgs(parsed *sms.Parsed) registerFarmerArgs {
	return registerFarmerArgs{
		FirstName:     parsed.Get("first_name"),
		LastName:      parsed.Get("last_name"),
		PhoneNumber:   parsed.Get("phone_number"),
		CooperativeID: parsed.Get("cooperative_id"),
	}
}

// handleRegisterFarmer registers a new farmer reported over SMS by an
// authorized back-office user.
func (s *gatewayService) handleRegisterFarmer(ctx context.Context, from string, parsed *sms.Parsed) *usecase.DispatchResult {
	if missing := missingFields(parsed, registerFarmerRequired); len(missing) > 0 {
		s.sendError(ctx, from, fmt.Sprintf("Missing: %s. %s", joinFields(missing), registerFarmerUsage))

		return failure("Missing required fields")
	}
	args := newRegisterFarmerArgs(parsed)

	registrar, err := s.userByPhone(ctx, from)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return s.registerStorageFailure(ctx, from, err)
	}
	if registrar == nil || !registrar.CanRegisterFarmers() {
		s.sendError(ctx, from, "You are not authorized to register farmers.")

		return failure("Unauthorized user")
	}

	if !sms.IsValidKenyanPhone(args.PhoneNumber) {
		s.sendError(ctx, from, "Invalid phone number format. Use: +254XXXXXXXXX or 07XXXXXXXX")

		return failure("Invalid phone number")
	}

	formattedPhone, err := sms.NormalizePhone(args.PhoneNumber)
	if err != nil {
		s.sendError(ctx, from, "Invalid phone number format. Use: +254XXXXXXXXX or 07XXXXXXXX")

		return failure("Invalid phone number")
	}

	existing, err := s.farmers.FindByPhone(ctx, formattedPhone, args.PhoneNumber)
	if err != nil && !errors.Is(err, repository.ErrFarmerNotFound) {
		return s.registerStorageFailure(ctx, from, err)
	}
	if existing != nil {
		s.sendError(ctx, from, fmt.Sprintf("Farmer with phone %s already registered.", args.PhoneNumber))

		return failure("Farmer already exists")
	}

	cooperative, err := s.findCooperativeByID(ctx, args.CooperativeID)
	if err != nil && !errors.Is(err, repository.ErrCooperativeNotFound) {
		return s.registerStorageFailure(ctx, from, err)
	}
	if cooperative == nil {
		s.sendError(ctx, from, fmt.Sprintf("Cooperative with ID %s not found.", args.CooperativeID))

		return failure("Cooperative not found")
	}

	farmer := &entity.Farmer{
		FirstName:          args.FirstName,
		LastName:           args.LastName,
		Phone:              formattedPhone,
		CooperativeID:      &cooperative.ID,
		RegisteredByUserID: &registrar.ID,
		RegistrationMethod: entity.RegistrationMethodSMS,
		IsActive:           true,
	}
	if err := s.farmers.Create(ctx, farmer); err != nil {
		// Two concurrent registrations can race past the lookup; the unique
		// constraint settles it.
		if errors.Is(err, repository.ErrFarmerAlreadyExists) {
			s.sendError(ctx, from, fmt.Sprintf("Farmer with phone %s already registered.", args.PhoneNumber))

			return failure("Farmer already exists")
		}

		return s.registerStorageFailure(ctx, from, err)
	}

	s.sendSuccess(ctx, from, fmt.Sprintf(
		"Farmer registered successfully!\nID: %d\nName: %s %s\nPhone: %s\nCooperative: %s",
		farmer.ID, args.FirstName, args.LastName, formattedPhone, cooperative.Name,
	))

	s.send(ctx, formattedPhone, fmt.Sprintf(
		"Welcome to FarmGrid, %s!\nYou've been registered with %s.\nYour Farmer ID is: %d",
		args.FirstName, cooperative.Name, farmer.ID,
	))

	return &usecase.DispatchResult{
		Success: true,
		Data: map[string]any{
			"farmer_id":      farmer.ID,
			"cooperative_id": cooperative.ID,
		},
	}
}

// registerStorageFailure reports a persistence error without leaking it to the sender.
func (s *gatewayService) registerStorageFailure(ctx context.Context, from string, err error) *usecase.DispatchResult {
	s.ctxLogger(ctx).Error("Storage failure during farmer registration", slog.Any("error", err))
	s.sendError(ctx, from, "Failed to register farmer. Please try again.")

	return failure("Database error")
}

// findCooperativeByID tolerates non-numeric ids by treating them as not found.
func (s *gatewayService) findCooperativeByID(ctx context.Context, raw string) (*entity.Cooperative, error) {
	id, ok := parseID(raw)
	if !ok {
		return nil, errors.WithStack(repository.ErrCooperativeNotFound)
	}

	return s.cooperatives.FindByID(ctx, id)
}
