// Package repository contains testify mocks for the domain repository interfaces.
package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"farmgrid/internal/domain/entity"
)

// UserRepository is a mock implementation of repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) FindByPhone(ctx context.Context, canonical, raw string) (*entity.User, error) {
	args := m.Called(ctx, canonical, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

// FarmerRepository is a mock implementation of repository.FarmerRepository.
type FarmerRepository struct {
	mock.Mock
}

func (m *FarmerRepository) FindByID(ctx context.Context, id int64) (*entity.Farmer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Farmer), args.Error(1)
}

func (m *FarmerRepository) FindByPhone(ctx context.Context, canonical, raw string) (*entity.Farmer, error) {
	args := m.Called(ctx, canonical, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Farmer), args.Error(1)
}

func (m *FarmerRepository) Create(ctx context.Context, farmer *entity.Farmer) error {
	args := m.Called(ctx, farmer)

	return args.Error(0)
}

// CooperativeRepository is a mock implementation of repository.CooperativeRepository.
type CooperativeRepository struct {
	mock.Mock
}

func (m *CooperativeRepository) FindByID(ctx context.Context, id int64) (*entity.Cooperative, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Cooperative), args.Error(1)
}

// CommodityRepository is a mock implementation of repository.CommodityRepository.
type CommodityRepository struct {
	mock.Mock
}

func (m *CommodityRepository) FindByID(ctx context.Context, id int64) (*entity.Commodity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Commodity), args.Error(1)
}

// CollectionRepository is a mock implementation of repository.CollectionRepository.
type CollectionRepository struct {
	mock.Mock
}

func (m *CollectionRepository) Create(ctx context.Context, collection *entity.Collection) error {
	args := m.Called(ctx, collection)

	return args.Error(0)
}

func (m *CollectionRepository) FindDetailByID(ctx context.Context, id int64) (*entity.CollectionDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.CollectionDetail), args.Error(1)
}

// SmsLogRepository is a mock implementation of repository.SmsLogRepository.
type SmsLogRepository struct {
	mock.Mock
}

func (m *SmsLogRepository) Create(ctx context.Context, log *entity.SmsLog) error {
	args := m.Called(ctx, log)

	return args.Error(0)
}
