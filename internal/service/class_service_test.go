package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sportsmaster/booking-api/internal/models"
)

type mockClassRepo struct {
	classes map[string]*models.Class
	created []*models.Class
}

func (m *mockClassRepo) List(ctx context.Context, filter models.ClassFilter) ([]models.Class, error) {
	var classes []models.Class
	for _, c := range m.classes {
		if filter.InstructorEmail != "" && c.InstructorEmail != filter.InstructorEmail {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		classes = append(classes, *c)
	}
	return classes, nil
}

func (m *mockClassRepo) FindByID(ctx context.Context, id string) (*models.Class, error) {
	if class, ok := m.classes[id]; ok {
		copy := *class
		return &copy, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockClassRepo) Create(ctx context.Context, class *models.Class) error {
	if m.classes == nil {
		m.classes = make(map[string]*models.Class)
	}
	if class.ID == "" {
		class.ID = "generated"
	}
	class.Status = models.ClassPending
	copy := *class
	m.classes[class.ID] = &copy
	m.created = append(m.created, &copy)
	return nil
}

func (m *mockClassRepo) UpdateStatus(ctx context.Context, id string, status models.ClassStatus) error {
	if class, ok := m.classes[id]; ok {
		class.Status = status
	}
	return nil
}

func (m *mockClassRepo) UpdateFeedback(ctx context.Context, id, feedback string) error {
	if class, ok := m.classes[id]; ok {
		class.Feedback = feedback
	}
	return nil
}

func instructorClaims() *models.JWTClaims {
	return &models.JWTClaims{Email: "coach@example.com", Name: "Coach"}
}

func TestSubmitStartsPending(t *testing.T) {
	repo := &mockClassRepo{}
	svc := NewClassService(repo, nil, validator.New(), zap.NewNop())

	class, err := svc.Submit(context.Background(), instructorClaims(), models.SubmitClassRequest{
		Name:           "Tennis Basics",
		Category:       "tennis",
		Price:          49.99,
		AvailableSeats: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ClassPending, class.Status)
	assert.Equal(t, "coach@example.com", class.InstructorEmail)
	assert.Equal(t, "Coach", class.InstructorName)
}

func TestSubmitRejectsZeroSeats(t *testing.T) {
	svc := NewClassService(&mockClassRepo{}, nil, validator.New(), zap.NewNop())

	_, err := svc.Submit(context.Background(), instructorClaims(), models.SubmitClassRequest{
		Name:           "Empty",
		Category:       "tennis",
		AvailableSeats: 0,
	})
	require.Error(t, err)
}

func TestApproveThenDeny(t *testing.T) {
	repo := &mockClassRepo{classes: map[string]*models.Class{
		"c1": {ID: "c1", Name: "Tennis", Status: models.ClassPending},
	}}
	svc := NewClassService(repo, nil, validator.New(), zap.NewNop())

	require.NoError(t, svc.Approve(context.Background(), "c1"))
	assert.Equal(t, models.ClassApproved, repo.classes["c1"].Status)

	// Status moves are unconditional; a later deny overwrites the approval.
	require.NoError(t, svc.Deny(context.Background(), "c1"))
	assert.Equal(t, models.ClassDenied, repo.classes["c1"].Status)
}

func TestApproveIsIdempotent(t *testing.T) {
	repo := &mockClassRepo{classes: map[string]*models.Class{
		"c1": {ID: "c1", Status: models.ClassApproved},
	}}
	svc := NewClassService(repo, nil, validator.New(), zap.NewNop())

	require.NoError(t, svc.Approve(context.Background(), "c1"))
	assert.Equal(t, models.ClassApproved, repo.classes["c1"].Status)
}

func TestApproveUnknownClass(t *testing.T) {
	svc := NewClassService(&mockClassRepo{}, nil, validator.New(), zap.NewNop())

	err := svc.Approve(context.Background(), "missing")
	require.Error(t, err)
}

func TestSetFeedbackOverwrites(t *testing.T) {
	repo := &mockClassRepo{classes: map[string]*models.Class{
		"c1": {ID: "c1", Feedback: "old note"},
	}}
	svc := NewClassService(repo, nil, validator.New(), zap.NewNop())

	err := svc.SetFeedback(context.Background(), "c1", models.FeedbackRequest{Feedback: "new note"})
	require.NoError(t, err)
	assert.Equal(t, "new note", repo.classes["c1"].Feedback)
}

func TestListByInstructorScopes(t *testing.T) {
	repo := &mockClassRepo{classes: map[string]*models.Class{
		"c1": {ID: "c1", InstructorEmail: "coach@example.com"},
		"c2": {ID: "c2", InstructorEmail: "other@example.com"},
	}}
	svc := NewClassService(repo, nil, validator.New(), zap.NewNop())

	classes, err := svc.ListByInstructor(context.Background(), "coach@example.com")
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, "c1", classes[0].ID)
}
