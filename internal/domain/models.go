package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Listing is a persisted marketplace listing. Payload holds the sanitized
// canonical payload the listing was built from; the scalar columns are
// copies used for filtering and export.
type Listing struct {
	ID         uuid.UUID       `db:"id" json:"id"`
	BusinessID string          `db:"business_id" json:"business_id"`
	Category   Category        `db:"category" json:"category"`
	Title      string          `db:"title" json:"title"`
	Status     ListingStatus   `db:"status" json:"status"`
	BasePrice  int64           `db:"base_price" json:"base_price"`
	Currency   string          `db:"currency" json:"currency"`
	Payload    json.RawMessage `db:"payload" json:"payload" swaggertype:"object"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at" json:"updated_at"`
}
