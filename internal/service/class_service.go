package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sportsmaster/booking-api/internal/models"
	appErrors "github.com/sportsmaster/booking-api/pkg/errors"
)

const (
	catalogCacheKey     = "catalog:classes:all"
	catalogCachePattern = "catalog:classes:*"
)

type classRepository interface {
	List(ctx context.Context, filter models.ClassFilter) ([]models.Class, error)
	FindByID(ctx context.Context, id string) (*models.Class, error)
	Create(ctx context.Context, class *models.Class) error
	UpdateStatus(ctx context.Context, id string, status models.ClassStatus) error
	UpdateFeedback(ctx context.Context, id, feedback string) error
}

// ClassService implements the class catalog use cases. Listing the full
// catalog is the hot path and goes through the cache when one is wired.
type ClassService struct {
	repo      classRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClassService constructs a ClassService.
func NewClassService(repo classRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *ClassService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// List returns the whole catalog.
func (s *ClassService) List(ctx context.Context) ([]models.Class, error) {
	var cached []models.Class
	if hit, _ := s.cache.Get(ctx, catalogCacheKey, &cached); hit {
		return cached, nil
	}

	classes, err := s.repo.List(ctx, models.ClassFilter{})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list classes")
	}

	if err := s.cache.Set(ctx, catalogCacheKey, classes, 0); err != nil {
		s.logger.Warn("catalog cache set failed", zap.Error(err))
	}
	return classes, nil
}

// ListByInstructor returns the classes owned by one instructor.
func (s *ClassService) ListByInstructor(ctx context.Context, email string) ([]models.Class, error) {
	classes, err := s.repo.List(ctx, models.ClassFilter{InstructorEmail: email})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list instructor classes")
	}
	return classes, nil
}

// Submit records an instructor's class offering; it enters the catalog
// pending admin review.
func (s *ClassService) Submit(ctx context.Context, instructor *models.JWTClaims, req models.SubmitClassRequest) (*models.Class, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class payload")
	}

	class := &models.Class{
		Name:            req.Name,
		Image:           req.Image,
		Category:        req.Category,
		InstructorName:  instructor.Name,
		InstructorEmail: instructor.Email,
		Price:           req.Price,
		AvailableSeats:  req.AvailableSeats,
	}
	if err := s.repo.Create(ctx, class); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create class")
	}

	s.invalidateCatalog(ctx)
	return class, nil
}

// Approve moves a class to the approved status.
func (s *ClassService) Approve(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, models.ClassApproved)
}

// Deny moves a class to the denied status.
func (s *ClassService) Deny(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, models.ClassDenied)
}

func (s *ClassService) setStatus(ctx context.Context, id string, status models.ClassStatus) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "class not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class")
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update class status")
	}
	s.invalidateCatalog(ctx)
	return nil
}

// SetFeedback overwrites the admin feedback on a class.
func (s *ClassService) SetFeedback(ctx context.Context, id string, req models.FeedbackRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid feedback payload")
	}
	if err := s.repo.UpdateFeedback(ctx, id, req.Feedback); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update feedback")
	}
	s.invalidateCatalog(ctx)
	return nil
}

func (s *ClassService) invalidateCatalog(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, catalogCachePattern); err != nil {
		s.logger.Warn("catalog cache invalidation failed", zap.Error(err))
	}
}
