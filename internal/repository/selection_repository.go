package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sportsmaster/booking-api/internal/models"
)

// SelectionRepository provides database access to the selection ledger.
type SelectionRepository struct {
	db *sqlx.DB
}

// NewSelectionRepository creates a new instance of SelectionRepository.
func NewSelectionRepository(db *sqlx.DB) *SelectionRepository {
	return &SelectionRepository{db: db}
}

// List returns staged selections, optionally scoped to one student.
func (r *SelectionRepository) List(ctx context.Context, filter models.SelectionFilter) ([]models.Selection, error) {
	query := `SELECT id, class_id, class_name, category, image, price, student_email, created_at FROM selections WHERE 1=1`
	var args []interface{}
	if filter.StudentEmail != "" {
		args = append(args, filter.StudentEmail)
		query += fmt.Sprintf(" AND student_email = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	var selections []models.Selection
	if err := r.db.SelectContext(ctx, &selections, query, args...); err != nil {
		return nil, fmt.Errorf("list selections: %w", err)
	}
	return selections, nil
}

// ExistsByCategory reports whether any active selection holds the
// category. The check is global across students, matching the behaviour
// the frontend was built against.
func (r *SelectionRepository) ExistsByCategory(ctx context.Context, category string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM selections WHERE category = $1)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, category); err != nil {
		return false, fmt.Errorf("check selection category: %w", err)
	}
	return exists, nil
}

// Create stages a new selection.
func (r *SelectionRepository) Create(ctx context.Context, selection *models.Selection) error {
	if selection.ID == "" {
		selection.ID = uuid.NewString()
	}
	if selection.CreatedAt.IsZero() {
		selection.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO selections (id, class_id, class_name, category, image, price, student_email, created_at) VALUES (:id, :class_id, :class_name, :category, :image, :price, :student_email, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, selection); err != nil {
		return fmt.Errorf("create selection: %w", err)
	}
	return nil
}

// Delete removes a single selection (explicit student removal; settled
// selections are cleared inside the settlement transaction instead).
func (r *SelectionRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM selections WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete selection: %w", err)
	}
	return nil
}
