package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"servicemart/internal/domain"
	"servicemart/internal/port"
)

type listingRepo struct {
	db *sqlx.DB
}

// NewListingRepo creates a new PostgreSQL-backed ListingRepository.
func NewListingRepo(db *sqlx.DB) port.ListingRepository {
	return &listingRepo{db: db}
}

const listingColumns = `id, business_id, category, title, status, base_price, currency, payload, created_at, updated_at`

func (r *listingRepo) Create(ctx context.Context, l *domain.Listing) error {
	now := time.Now().UTC()
	l.CreatedAt = now
	l.UpdatedAt = now

	query := `INSERT INTO listings (` + listingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		l.ID, l.BusinessID, l.Category, l.Title, l.Status, l.BasePrice, l.Currency, l.Payload,
		l.CreatedAt, l.UpdatedAt)
	if err != nil {
		return fmt.Errorf("listingRepo.Create: %w", err)
	}
	return nil
}

func (r *listingRepo) GetByID(ctx context.Context, businessID string, id uuid.UUID) (*domain.Listing, error) {
	var l domain.Listing
	err := r.db.GetContext(ctx, &l,
		`SELECT `+listingColumns+` FROM listings WHERE id = $1 AND business_id = $2`, id, businessID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("listingRepo.GetByID: %w", err)
	}
	return &l, nil
}

func (r *listingRepo) ListByBusiness(ctx context.Context, businessID string, filter port.ListingFilter, offset, limit int) ([]domain.Listing, int, error) {
	where, args := listingWhere(businessID, filter)

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM listings WHERE `+where, args...); err != nil {
		return nil, 0, fmt.Errorf("listingRepo.ListByBusiness count: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM listings WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		listingColumns, where, len(args)+1, len(args)+2)
	var listings []domain.Listing
	if err := r.db.SelectContext(ctx, &listings, query, append(args, limit, offset)...); err != nil {
		return nil, 0, fmt.Errorf("listingRepo.ListByBusiness: %w", err)
	}
	return listings, total, nil
}

func (r *listingRepo) ListAllByBusiness(ctx context.Context, businessID string, filter port.ListingFilter) ([]domain.Listing, error) {
	where, args := listingWhere(businessID, filter)

	var listings []domain.Listing
	err := r.db.SelectContext(ctx, &listings,
		`SELECT `+listingColumns+` FROM listings WHERE `+where+` ORDER BY created_at DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("listingRepo.ListAllByBusiness: %w", err)
	}
	return listings, nil
}

func (r *listingRepo) Update(ctx context.Context, l *domain.Listing) error {
	l.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE listings SET title = $1, status = $2, base_price = $3, currency = $4, payload = $5, updated_at = $6
		 WHERE id = $7 AND business_id = $8`,
		l.Title, l.Status, l.BasePrice, l.Currency, l.Payload, l.UpdatedAt, l.ID, l.BusinessID)
	if err != nil {
		return fmt.Errorf("listingRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

// UpdateStatus also rewrites the status stored inside the payload so the
// column and the document never disagree.
func (r *listingRepo) UpdateStatus(ctx context.Context, businessID string, id uuid.UUID, status domain.ListingStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE listings
		 SET status = $1, payload = jsonb_set(payload, '{status}', to_jsonb($1::text)), updated_at = $2
		 WHERE id = $3 AND business_id = $4`,
		status, time.Now().UTC(), id, businessID)
	if err != nil {
		return fmt.Errorf("listingRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

func (r *listingRepo) Delete(ctx context.Context, businessID string, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM listings WHERE id = $1 AND business_id = $2", id, businessID)
	if err != nil {
		return fmt.Errorf("listingRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

// listingWhere builds the WHERE clause shared by the list queries.
func listingWhere(businessID string, filter port.ListingFilter) (string, []any) {
	conds := []string{"business_id = $1"}
	args := []any{businessID}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	return strings.Join(conds, " AND "), args
}
