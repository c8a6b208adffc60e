package usecase

import "context"

// OTPUsecase issues and verifies one-time verification codes over SMS.
type OTPUsecase interface {
	// Issue generates a code for the phone number, stores it with the
	// configured lifetime and sends it by SMS.
	Issue(ctx context.Context, phone string) error

	// Verify consumes the stored code for the phone number and compares it.
	// A code can be checked at most once; failures burn it.
	Verify(ctx context.Context, phone, code string) error
}
