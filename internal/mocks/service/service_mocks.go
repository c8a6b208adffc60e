// Package service contains testify mocks for the domain service interfaces.
package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"farmgrid/internal/domain/service"
)

// SMSSender is a mock implementation of service.SMSSender.
type SMSSender struct {
	mock.Mock
}

func (m *SMSSender) Send(ctx context.Context, to, message string) error {
	args := m.Called(ctx, to, message)

	return args.Error(0)
}

// OTPStore is a mock implementation of service.OTPStore.
type OTPStore struct {
	mock.Mock
}

func (m *OTPStore) Put(ctx context.Context, phone, code string, ttl time.Duration) error {
	args := m.Called(ctx, phone, code, ttl)

	return args.Error(0)
}

func (m *OTPStore) Take(ctx context.Context, phone string) (string, bool, error) {
	args := m.Called(ctx, phone)

	return args.String(0), args.Bool(1), args.Error(2)
}

// EventPublisher is a mock implementation of service.EventPublisher.
type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) PublishCollectionEvent(ctx context.Context, event *service.CollectionEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *EventPublisher) Close() error {
	args := m.Called()

	return args.Error(0)
}
