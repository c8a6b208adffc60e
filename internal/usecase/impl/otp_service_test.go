package impl

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerrors "farmgrid/internal/domain/errors"
	mockservice "farmgrid/internal/mocks/service"
	"farmgrid/internal/usecase"
)

var otpCodePattern = regexp.MustCompile(`^\d{6}$`)

type otpFixtures struct {
	store  *mockservice.OTPStore
	sender *mockservice.SMSSender
	otp    usecase.OTPUsecase
}

func newOTPFixtures() *otpFixtures {
	f := &otpFixtures{
		store:  new(mockservice.OTPStore),
		sender: new(mockservice.SMSSender),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.otp = NewOTPService(logger, f.store, f.sender, 5*time.Minute)

	return f
}

func TestOTPIssue(t *testing.T) {
	f := newOTPFixtures()

	var storedCode string
	f.store.On("Put", mock.Anything, "254712345678", mock.Anything, 5*time.Minute).
		Return(nil).
		Run(func(args mock.Arguments) {
			storedCode = args.String(2)
		})

	var sentMessage string
	f.sender.On("Send", mock.Anything, "254712345678", mock.Anything).
		Return(nil).
		Run(func(args mock.Arguments) {
			sentMessage = args.String(2)
		})

	err := f.otp.Issue(context.Background(), "+254712345678")
	require.NoError(t, err)

	assert.Regexp(t, otpCodePattern, storedCode)
	assert.Equal(t,
		"Your FarmGrid verification code is: "+storedCode+". Do not share this code.",
		sentMessage,
	)
}

func TestOTPIssue_InvalidPhone(t *testing.T) {
	f := newOTPFixtures()

	err := f.otp.Issue(context.Background(), "not-a-phone")
	assert.ErrorIs(t, err, domainerrors.ErrOTPPhoneInvalid)

	f.store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestOTPIssue_StoreError(t *testing.T) {
	f := newOTPFixtures()
	f.store.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError)

	err := f.otp.Issue(context.Background(), "+254712345678")
	require.Error(t, err)

	// Nothing is sent when the code was never stored.
	f.sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestOTPVerify(t *testing.T) {
	f := newOTPFixtures()
	f.store.On("Take", mock.Anything, "254712345678").Return("123456", true, nil)

	err := f.otp.Verify(context.Background(), "0712345678", "123456")
	assert.NoError(t, err)
}

func TestOTPVerify_WrongCode(t *testing.T) {
	f := newOTPFixtures()
	f.store.On("Take", mock.Anything, "254712345678").Return("123456", true, nil)

	err := f.otp.Verify(context.Background(), "0712345678", "654321")
	assert.ErrorIs(t, err, domainerrors.ErrOTPInvalid)
}

func TestOTPVerify_NoCodeStored(t *testing.T) {
	f := newOTPFixtures()
	f.store.On("Take", mock.Anything, "254712345678").Return("", false, nil)

	err := f.otp.Verify(context.Background(), "0712345678", "123456")
	assert.ErrorIs(t, err, domainerrors.ErrOTPInvalid)
}

func TestOTPVerify_InvalidPhone(t *testing.T) {
	f := newOTPFixtures()

	err := f.otp.Verify(context.Background(), "abc", "123456")
	require.Error(t, err)
	f.store.AssertNotCalled(t, "Take", mock.Anything, mock.Anything)
}
