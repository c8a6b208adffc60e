// Package usecase contains testify mocks for the usecase interfaces.
package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"farmgrid/internal/usecase"
)

// GatewayUsecase is a mock implementation of usecase.GatewayUsecase.
type GatewayUsecase struct {
	mock.Mock
}

func (m *GatewayUsecase) HandleInbound(ctx context.Context, msg *usecase.InboundMessage) (*usecase.DispatchResult, error) {
	args := m.Called(ctx, msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.DispatchResult), args.Error(1)
}

// OTPUsecase is a mock implementation of usecase.OTPUsecase.
type OTPUsecase struct {
	mock.Mock
}

func (m *OTPUsecase) Issue(ctx context.Context, phone string) error {
	args := m.Called(ctx, phone)

	return args.Error(0)
}

func (m *OTPUsecase) Verify(ctx context.Context, phone, code string) error {
	args := m.Called(ctx, phone, code)

	return args.Error(0)
}
