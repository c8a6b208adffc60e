package impl

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	domainerrors "farmgrid/internal/domain/errors"
	"farmgrid/internal/domain/service"
	"farmgrid/internal/errors"
	"farmgrid/internal/infra/metrics"
	"farmgrid/internal/sms"
	"farmgrid/internal/usecase"
)

const otpCodeSpan = 900000 // codes are 100000..999999

// otpService implements usecase.OTPUsecase.
type otpService struct {
	logger *slog.Logger
	store  service.OTPStore
	sender service.SMSSender
	ttl    time.Duration
}

// NewOTPService is the constructor for otpService.
func NewOTPService(logger *slog.Logger, store service.OTPStore, sender service.SMSSender, ttl time.Duration) usecase.OTPUsecase {
	return &otpService{
		logger: logger,
		store:  store,
		sender: sender,
		ttl:    ttl,
	}
}

// Issue generates a six-digit code, stores it and delivers it by SMS.
func (s *otpService) Issue(ctx context.Context, phone string) error {
	canonical, err := sms.NormalizePhone(phone)
	if err != nil {
		return domainerrors.ErrOTPPhoneInvalid.WrapMessage(phone)
	}

	code, err := generateCode()
	if err != nil {
		return errors.Wrap(err, "generate verification code")
	}

	if err := s.store.Put(ctx, canonical, code, s.ttl); err != nil {
		return errors.Wrap(err, "store verification code")
	}

	message := fmt.Sprintf("Your FarmGrid verification code is: %s. Do not share this code.", code)
	if err := s.sender.Send(ctx, canonical, message); err != nil {
		metrics.SMSSendFailuresTotal.Inc()

		return errors.Wrap(err, "send verification code")
	}

	metrics.OTPIssuedTotal.Inc()
	s.logger.Info("Verification code issued", slog.String("phone", canonical))

	return nil
}

// Verify consumes the stored code and compares it. The code is removed on
// first read, so a wrong guess burns it.
func (s *otpService) Verify(ctx context.Context, phone, code string) error {
	canonical, err := sms.NormalizePhone(phone)
	if err != nil {
		return domainerrors.ErrOTPPhoneInvalid.WrapMessage(phone)
	}

	stored, ok, err := s.store.Take(ctx, canonical)
	if err != nil {
		return errors.Wrap(err, "take verification code")
	}

	if !ok || subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		metrics.OTPVerifiedTotal.WithLabelValues("failure").Inc()

		return errors.WithStack(domainerrors.ErrOTPInvalid)
	}

	metrics.OTPVerifiedTotal.WithLabelValues("success").Inc()

	return nil
}

// generateCode draws a uniform six-digit code from crypto/rand.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpCodeSpan))
	if err != nil {
		return "", errors.WithStack(err)
	}

	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
