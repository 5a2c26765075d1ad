package handler

import (
	"context"
	"database/sql"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sportsmaster/booking-api/internal/middleware"
	"github.com/sportsmaster/booking-api/internal/models"
	"github.com/sportsmaster/booking-api/internal/service"
)

type classRepoStub struct {
	classes map[string]*models.Class
}

func (m *classRepoStub) List(ctx context.Context, filter models.ClassFilter) ([]models.Class, error) {
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

func (m *classRepoStub) FindByID(ctx context.Context, id string) (*models.Class, error) {
	if class, ok := m.classes[id]; ok {
		copy := *class
		return &copy, nil
	}
	return nil, sql.ErrNoRows
}

func (m *classRepoStub) Create(ctx context.Context, class *models.Class) error {
	if m.classes == nil {
		m.classes = make(map[string]*models.Class)
	}
	if class.ID == "" {
		class.ID = "generated"
	}
	class.Status = models.ClassPending
	copy := *class
	m.classes[class.ID] = &copy
	return nil
}

func (m *classRepoStub) UpdateStatus(ctx context.Context, id string, status models.ClassStatus) error {
	if class, ok := m.classes[id]; ok {
		class.Status = status
	}
	return nil
}

func (m *classRepoStub) UpdateFeedback(ctx context.Context, id, feedback string) error {
	if class, ok := m.classes[id]; ok {
		class.Feedback = feedback
	}
	return nil
}

func newClassHandler(repo *classRepoStub) *ClassHandler {
	return NewClassHandler(service.NewClassService(repo, nil, validator.New(), zap.NewNop()))
}

func TestSubmitClass(t *testing.T) {
	repo := &classRepoStub{}
	handler := newClassHandler(repo)

	c, w := testContext(t, http.MethodPost, "/addClass", []byte(`{"name":"Tennis Basics","category":"tennis","price":49.99,"availableSeats":20}`))
	c.Set(middleware.ContextUserKey, &models.JWTClaims{Email: "coach@example.com", Name: "Coach"})
	handler.Submit(c)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.classes, 1)
	for _, class := range repo.classes {
		assert.Equal(t, models.ClassPending, class.Status)
		assert.Equal(t, "coach@example.com", class.InstructorEmail)
	}
}

func TestSubmitClassInvalidBody(t *testing.T) {
	handler := newClassHandler(&classRepoStub{})

	c, w := testContext(t, http.MethodPost, "/addClass", []byte(`{"name":`))
	c.Set(middleware.ContextUserKey, &models.JWTClaims{Email: "coach@example.com"})
	handler.Submit(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApproveClass(t *testing.T) {
	repo := &classRepoStub{classes: map[string]*models.Class{
		"c1": {ID: "c1", Status: models.ClassPending},
	}}
	handler := newClassHandler(repo)

	c, w := testContext(t, http.MethodPatch, "/addClass/approve/c1", nil)
	c.Params = gin.Params{{Key: "id", Value: "c1"}}
	handler.Approve(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.ClassApproved, repo.classes["c1"].Status)
}

func TestApproveUnknownClassReturns404(t *testing.T) {
	handler := newClassHandler(&classRepoStub{})

	c, w := testContext(t, http.MethodPatch, "/addClass/approve/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	handler.Approve(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDenyClass(t *testing.T) {
	repo := &classRepoStub{classes: map[string]*models.Class{
		"c1": {ID: "c1", Status: models.ClassPending},
	}}
	handler := newClassHandler(repo)

	c, w := testContext(t, http.MethodPatch, "/addClass/deny/c1", nil)
	c.Params = gin.Params{{Key: "id", Value: "c1"}}
	handler.Deny(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.ClassDenied, repo.classes["c1"].Status)
}

func TestSetFeedback(t *testing.T) {
	repo := &classRepoStub{classes: map[string]*models.Class{
		"c1": {ID: "c1"},
	}}
	handler := newClassHandler(repo)

	c, w := testContext(t, http.MethodPut, "/feedback/c1", []byte(`{"feedback":"add more seats"}`))
	c.Params = gin.Params{{Key: "id", Value: "c1"}}
	handler.SetFeedback(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "add more seats", repo.classes["c1"].Feedback)
}

func TestListCatalog(t *testing.T) {
	handler := newClassHandler(&classRepoStub{classes: map[string]*models.Class{
		"c1": {ID: "c1", Name: "Tennis Basics", Status: models.ClassApproved},
	}})

	c, w := testContext(t, http.MethodGet, "/allClass", nil)
	handler.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Tennis Basics")
}
