package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/sportsmaster/booking-api/internal/models"
)

// PaymentRepository owns the payments table and is the only writer of
// class enrollment counters and settled selections. Both settlement
// variants run inside a single database transaction so a confirmed
// charge never leaves the three records diverged.
type PaymentRepository struct {
	db *sqlx.DB
}

// NewPaymentRepository creates a new instance of PaymentRepository.
func NewPaymentRepository(db *sqlx.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

const paymentColumns = `id, email, amount, currency, transaction_id, class_id, class_name, selection_ids, created_at`

// List returns payment records, optionally scoped, sorted and limited.
func (r *PaymentRepository) List(ctx context.Context, filter models.PaymentFilter) ([]models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE 1=1`
	var args []interface{}
	if filter.Email != "" {
		args = append(args, filter.Email)
		query += fmt.Sprintf(" AND email = $%d", len(args))
	}
	if filter.SortDesc {
		query += " ORDER BY created_at DESC"
	} else {
		query += " ORDER BY created_at ASC"
	}
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	var payments []models.Payment
	if err := r.db.SelectContext(ctx, &payments, query, args...); err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

// FindByID returns a single payment record.
func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*models.Payment, error) {
	const query = `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1 LIMIT 1`
	var payment models.Payment
	if err := r.db.GetContext(ctx, &payment, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find payment by id: %w", err)
	}
	return &payment, nil
}

// SettleSingle finalizes a one-class checkout: insert the payment row,
// clear the settled selection, and move one seat from available to
// enrolled. The counter update is a relative SQL expression, so two
// settlements against the same class cannot lose an update.
func (r *PaymentRepository) SettleSingle(ctx context.Context, payment *models.Payment, selectionID, classID string) (err error) {
	preparePayment(payment)
	payment.SelectionIDs = pq.StringArray{selectionID}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin settlement: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = insertPayment(ctx, tx, payment); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM selections WHERE id = $1`, selectionID); err != nil {
		return fmt.Errorf("clear settled selection: %w", err)
	}

	const counterQuery = `UPDATE classes SET available_seats = available_seats - 1, enrolled = enrolled + 1, updated_at = $2 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, counterQuery, classID, time.Now().UTC()); err != nil {
		return fmt.Errorf("adjust class enrollment: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit settlement: %w", err)
	}
	return nil
}

// SettleBatch finalizes a multi-selection checkout: insert the payment
// row and clear every referenced selection. Class counters are not
// touched on this path.
func (r *PaymentRepository) SettleBatch(ctx context.Context, payment *models.Payment, selectionIDs []string) (err error) {
	preparePayment(payment)
	payment.SelectionIDs = pq.StringArray(selectionIDs)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin settlement: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = insertPayment(ctx, tx, payment); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM selections WHERE id = ANY($1)`, pq.Array(selectionIDs)); err != nil {
		return fmt.Errorf("clear settled selections: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit settlement: %w", err)
	}
	return nil
}

func preparePayment(payment *models.Payment) {
	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now().UTC()
	}
}

func insertPayment(ctx context.Context, tx *sqlx.Tx, payment *models.Payment) error {
	const query = `INSERT INTO payments (id, email, amount, currency, transaction_id, class_id, class_name, selection_ids, created_at) VALUES (:id, :email, :amount, :currency, :transaction_id, :class_id, :class_name, :selection_ids, :created_at)`
	if _, err := tx.NamedExecContext(ctx, query, payment); err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}
