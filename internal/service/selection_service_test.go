package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sportsmaster/booking-api/internal/models"
)

type mockSelectionRepo struct {
	selections map[string]*models.Selection
	deleted    []string
}

func (m *mockSelectionRepo) List(ctx context.Context, filter models.SelectionFilter) ([]models.Selection, error) {
	var selections []models.Selection
	for _, s := range m.selections {
		if filter.StudentEmail != "" && s.StudentEmail != filter.StudentEmail {
			continue
		}
		selections = append(selections, *s)
	}
	return selections, nil
}

func (m *mockSelectionRepo) ExistsByCategory(ctx context.Context, category string) (bool, error) {
	for _, s := range m.selections {
		if s.Category == category {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockSelectionRepo) Create(ctx context.Context, selection *models.Selection) error {
	if m.selections == nil {
		m.selections = make(map[string]*models.Selection)
	}
	if selection.ID == "" {
		selection.ID = "generated"
	}
	copy := *selection
	m.selections[selection.ID] = &copy
	return nil
}

func (m *mockSelectionRepo) Delete(ctx context.Context, id string) error {
	delete(m.selections, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func TestSelectStagesSelection(t *testing.T) {
	repo := &mockSelectionRepo{}
	svc := NewSelectionService(repo, validator.New(), zap.NewNop())

	selection, created, err := svc.Select(context.Background(), "student@example.com", models.SelectClassRequest{
		ClassID:   "c1",
		ClassName: "Tennis Basics",
		Category:  "tennis",
		Price:     49.99,
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "student@example.com", selection.StudentEmail)
	assert.Len(t, repo.selections, 1)
}

func TestSelectDuplicateCategoryIsBlocked(t *testing.T) {
	repo := &mockSelectionRepo{selections: map[string]*models.Selection{
		"s1": {ID: "s1", Category: "tennis", StudentEmail: "someone-else@example.com"},
	}}
	svc := NewSelectionService(repo, validator.New(), zap.NewNop())

	// The category check spans all students, so a different caller is
	// still blocked.
	selection, created, err := svc.Select(context.Background(), "student@example.com", models.SelectClassRequest{
		ClassID:   "c2",
		ClassName: "Advanced Tennis",
		Category:  "tennis",
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Nil(t, selection)
	assert.Len(t, repo.selections, 1, "no second row may be written")
}

func TestSelectRejectsMissingFields(t *testing.T) {
	svc := NewSelectionService(&mockSelectionRepo{}, validator.New(), zap.NewNop())

	_, _, err := svc.Select(context.Background(), "student@example.com", models.SelectClassRequest{Category: "tennis"})
	require.Error(t, err)
}

func TestListScopesToStudent(t *testing.T) {
	repo := &mockSelectionRepo{selections: map[string]*models.Selection{
		"s1": {ID: "s1", Category: "tennis", StudentEmail: "a@example.com"},
		"s2": {ID: "s2", Category: "yoga", StudentEmail: "b@example.com"},
	}}
	svc := NewSelectionService(repo, validator.New(), zap.NewNop())

	selections, err := svc.List(context.Background(), "a@example.com")
	require.NoError(t, err)
	require.Len(t, selections, 1)
	assert.Equal(t, "s1", selections[0].ID)
}

func TestRemoveDeletesSelection(t *testing.T) {
	repo := &mockSelectionRepo{selections: map[string]*models.Selection{
		"s1": {ID: "s1", Category: "tennis"},
	}}
	svc := NewSelectionService(repo, validator.New(), zap.NewNop())

	require.NoError(t, svc.Remove(context.Background(), "s1"))
	assert.Empty(t, repo.selections)
}
