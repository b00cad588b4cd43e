package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"servicemart/internal/domain"
	"servicemart/internal/port"
)

// MockListingRepo is a mock implementation of port.ListingRepository.
type MockListingRepo struct {
	mock.Mock
}

func (m *MockListingRepo) Create(ctx context.Context, listing *domain.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}

func (m *MockListingRepo) GetByID(ctx context.Context, businessID string, id uuid.UUID) (*domain.Listing, error) {
	args := m.Called(ctx, businessID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockListingRepo) ListByBusiness(ctx context.Context, businessID string, filter port.ListingFilter, offset, limit int) ([]domain.Listing, int, error) {
	args := m.Called(ctx, businessID, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Listing), args.Int(1), args.Error(2)
}

func (m *MockListingRepo) ListAllByBusiness(ctx context.Context, businessID string, filter port.ListingFilter) ([]domain.Listing, error) {
	args := m.Called(ctx, businessID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Listing), args.Error(1)
}

func (m *MockListingRepo) Update(ctx context.Context, listing *domain.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}

func (m *MockListingRepo) UpdateStatus(ctx context.Context, businessID string, id uuid.UUID, status domain.ListingStatus) error {
	args := m.Called(ctx, businessID, id, status)
	return args.Error(0)
}

func (m *MockListingRepo) Delete(ctx context.Context, businessID string, id uuid.UUID) error {
	args := m.Called(ctx, businessID, id)
	return args.Error(0)
}
