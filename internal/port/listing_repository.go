package port

import (
	"context"

	"github.com/google/uuid"

	"servicemart/internal/domain"
)

// ListingFilter narrows a listing query. Zero values match everything.
type ListingFilter struct {
	Category domain.Category
	Status   domain.ListingStatus
}

// ListingRepository defines the contract for listing persistence. Every
// lookup is scoped to the owning business.
type ListingRepository interface {
	Create(ctx context.Context, listing *domain.Listing) error
	GetByID(ctx context.Context, businessID string, id uuid.UUID) (*domain.Listing, error)
	ListByBusiness(ctx context.Context, businessID string, filter ListingFilter, offset, limit int) ([]domain.Listing, int, error)
	ListAllByBusiness(ctx context.Context, businessID string, filter ListingFilter) ([]domain.Listing, error)
	Update(ctx context.Context, listing *domain.Listing) error
	UpdateStatus(ctx context.Context, businessID string, id uuid.UUID, status domain.ListingStatus) error
	Delete(ctx context.Context, businessID string, id uuid.UUID) error
}
