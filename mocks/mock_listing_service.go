package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"servicemart/internal/domain"
	"servicemart/internal/port"
	"servicemart/internal/service"
)

// MockListingService is a mock implementation of service.ListingService.
type MockListingService struct {
	mock.Mock
}

func (m *MockListingService) Preview(ctx context.Context, input service.ListingInput) (*service.PreviewResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PreviewResult), args.Error(1)
}

func (m *MockListingService) Create(ctx context.Context, input service.ListingInput) (*domain.Listing, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockListingService) Update(ctx context.Context, id uuid.UUID, input service.ListingInput) (*domain.Listing, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockListingService) GetByID(ctx context.Context, businessID string, id uuid.UUID) (*domain.Listing, error) {
	args := m.Called(ctx, businessID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockListingService) List(ctx context.Context, businessID string, filter port.ListingFilter, offset, limit int) ([]domain.Listing, int, error) {
	args := m.Called(ctx, businessID, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Listing), args.Int(1), args.Error(2)
}

func (m *MockListingService) UpdateStatus(ctx context.Context, businessID string, id uuid.UUID, status string) (*domain.Listing, error) {
	args := m.Called(ctx, businessID, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockListingService) Delete(ctx context.Context, businessID string, id uuid.UUID) error {
	args := m.Called(ctx, businessID, id)
	return args.Error(0)
}

func (m *MockListingService) Export(ctx context.Context, businessID string, filter port.ListingFilter, format domain.ExportFormat, w io.Writer) error {
	args := m.Called(ctx, businessID, filter, format, w)
	return args.Error(0)
}
