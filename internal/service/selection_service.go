package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sportsmaster/booking-api/internal/models"
	appErrors "github.com/sportsmaster/booking-api/pkg/errors"
)

type selectionRepository interface {
	List(ctx context.Context, filter models.SelectionFilter) ([]models.Selection, error)
	ExistsByCategory(ctx context.Context, category string) (bool, error)
	Create(ctx context.Context, selection *models.Selection) error
	Delete(ctx context.Context, id string) error
}

// SelectionService implements the pre-payment selection ledger.
type SelectionService struct {
	repo      selectionRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSelectionService constructs a SelectionService.
func NewSelectionService(repo selectionRepository, validate *validator.Validate, logger *zap.Logger) *SelectionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SelectionService{repo: repo, validator: validate, logger: logger}
}

// List returns the caller's staged selections.
func (s *SelectionService) List(ctx context.Context, studentEmail string) ([]models.Selection, error) {
	selections, err := s.repo.List(ctx, models.SelectionFilter{StudentEmail: studentEmail})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list selections")
	}
	return selections, nil
}

// Select stages an intent to enroll. The returned bool is false when an
// active selection already holds the category; no row is written then
// and the caller gets the duplicate signal instead of an error.
func (s *SelectionService) Select(ctx context.Context, studentEmail string, req models.SelectClassRequest) (*models.Selection, bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid selection payload")
	}

	exists, err := s.repo.ExistsByCategory(ctx, req.Category)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check selection")
	}
	if exists {
		return nil, false, nil
	}

	selection := &models.Selection{
		ClassID:      req.ClassID,
		ClassName:    req.ClassName,
		Category:     req.Category,
		Image:        req.Image,
		Price:        req.Price,
		StudentEmail: studentEmail,
	}
	if err := s.repo.Create(ctx, selection); err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create selection")
	}

	return selection, true, nil
}

// Remove deletes a single staged selection.
func (s *SelectionService) Remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete selection")
	}
	return nil
}
