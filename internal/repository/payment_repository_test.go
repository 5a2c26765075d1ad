package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsmaster/booking-api/internal/models"
)

func TestPaymentList(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewPaymentRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "email", "amount", "currency", "transaction_id", "class_id", "class_name", "selection_ids", "created_at"}).
		AddRow("p1", "student@example.com", 49.99, "usd", "tx_1", "c1", "Tennis Basics", pq.StringArray{"s1"}, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM payments WHERE 1=1 AND email = $1 ORDER BY created_at ASC")).
		WithArgs("student@example.com").
		WillReturnRows(rows)

	payments, err := repo.List(context.Background(), models.PaymentFilter{Email: "student@example.com"})
	require.NoError(t, err)
	assert.Len(t, payments, 1)
	assert.Equal(t, "tx_1", payments[0].TransactionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentListRecent(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewPaymentRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "email", "amount", "currency", "transaction_id", "class_id", "class_name", "selection_ids", "created_at"}).
		AddRow("p2", "student@example.com", 19.99, "usd", "tx_2", nil, "", pq.StringArray{"s2", "s3"}, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM payments WHERE 1=1 AND email = $1 ORDER BY created_at DESC LIMIT 5")).
		WithArgs("student@example.com").
		WillReturnRows(rows)

	payments, err := repo.List(context.Background(), models.PaymentFilter{Email: "student@example.com", SortDesc: true, Limit: 5})
	require.NoError(t, err)
	assert.Len(t, payments, 1)
	assert.Nil(t, payments[0].ClassID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettleSingle(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewPaymentRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO payments").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM selections WHERE id = $1")).
		WithArgs("s1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE classes SET available_seats = available_seats - 1, enrolled = enrolled + 1, updated_at = $2 WHERE id = $1")).
		WithArgs("c1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	classID := "c1"
	payment := &models.Payment{
		Email:         "student@example.com",
		Amount:        49.99,
		Currency:      "usd",
		TransactionID: "tx_1",
		ClassID:       &classID,
		ClassName:     "Tennis Basics",
	}
	err := repo.SettleSingle(context.Background(), payment, "s1", "c1")
	require.NoError(t, err)
	assert.NotEmpty(t, payment.ID)
	assert.Equal(t, pq.StringArray{"s1"}, payment.SelectionIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettleSingleRollsBackOnCounterFailure(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewPaymentRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO payments").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM selections WHERE id = $1")).
		WithArgs("s1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE classes SET available_seats").
		WillReturnError(errors.New("deadlock"))
	mock.ExpectRollback()

	payment := &models.Payment{Email: "student@example.com", Amount: 49.99, TransactionID: "tx_1"}
	err := repo.SettleSingle(context.Background(), payment, "s1", "c1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "adjust class enrollment")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettleBatchLeavesCountersAlone(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewPaymentRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO payments").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM selections WHERE id = ANY($1)")).
		WithArgs(pq.Array([]string{"s1", "s2"})).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	payment := &models.Payment{
		Email:         "student@example.com",
		Amount:        89.98,
		Currency:      "usd",
		TransactionID: "tx_9",
	}
	err := repo.SettleBatch(context.Background(), payment, []string{"s1", "s2"})
	require.NoError(t, err)
	assert.Equal(t, pq.StringArray{"s1", "s2"}, payment.SelectionIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettleBatchRollsBackOnInsertFailure(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewPaymentRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO payments").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	payment := &models.Payment{Email: "student@example.com", Amount: 10, TransactionID: "tx_9"}
	err := repo.SettleBatch(context.Background(), payment, []string{"s1"})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
