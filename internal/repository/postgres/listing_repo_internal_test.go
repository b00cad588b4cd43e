package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"servicemart/internal/domain"
	"servicemart/internal/port"
)

func TestListingWhere(t *testing.T) {
	where, args := listingWhere("B1", port.ListingFilter{})
	assert.Equal(t, "business_id = $1", where)
	assert.Equal(t, []any{"B1"}, args)

	where, args = listingWhere("B1", port.ListingFilter{Category: domain.CategoryResort, Status: domain.ListingStatusActive})
	assert.Equal(t, "business_id = $1 AND category = $2 AND status = $3", where)
	assert.Equal(t, []any{"B1", domain.CategoryResort, domain.ListingStatusActive}, args)

	where, args = listingWhere("B1", port.ListingFilter{Status: domain.ListingStatusDraft})
	assert.Equal(t, "business_id = $1 AND status = $2", where)
	assert.Len(t, args, 2)
}
