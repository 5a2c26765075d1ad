package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsmaster/booking-api/internal/models"
)

func classRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "image", "category", "instructor_name", "instructor_email", "price", "available_seats", "enrolled", "status", "feedback", "created_at", "updated_at"}).
		AddRow("c1", "Tennis Basics", "", "tennis", "Coach", "coach@example.com", 49.99, 20, 3, string(models.ClassApproved), "", now, now)
}

func TestClassList(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, image, category, instructor_name, instructor_email, price, available_seats, enrolled, status, feedback, created_at, updated_at FROM classes WHERE 1=1 ORDER BY created_at DESC")).
		WillReturnRows(classRows(time.Now()))

	classes, err := repo.List(context.Background(), models.ClassFilter{})
	require.NoError(t, err)
	assert.Len(t, classes, 1)
	assert.Equal(t, models.ClassApproved, classes[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassListByInstructor(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM classes WHERE 1=1 AND instructor_email = $1 ORDER BY created_at DESC")).
		WithArgs("coach@example.com").
		WillReturnRows(classRows(time.Now()))

	classes, err := repo.List(context.Background(), models.ClassFilter{InstructorEmail: "coach@example.com"})
	require.NoError(t, err)
	assert.Len(t, classes, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassCreateForcesPending(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectExec("INSERT INTO classes").WillReturnResult(sqlmock.NewResult(1, 1))

	class := &models.Class{
		Name:            "Yoga Flow",
		Category:        "yoga",
		InstructorEmail: "coach@example.com",
		AvailableSeats:  15,
		Status:          models.ClassApproved,
	}
	err := repo.Create(context.Background(), class)
	require.NoError(t, err)
	assert.Equal(t, models.ClassPending, class.Status)
	assert.NotEmpty(t, class.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassUpdateStatus(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE classes SET status = $2, updated_at = $3 WHERE id = $1")).
		WithArgs("c1", models.ClassApproved, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), "c1", models.ClassApproved)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassUpdateFeedback(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE classes SET feedback = $2, updated_at = $3 WHERE id = $1")).
		WithArgs("c1", "needs more seats", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateFeedback(context.Background(), "c1", "needs more seats")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
