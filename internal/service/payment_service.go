package service

import (
	"context"
	"math"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sportsmaster/booking-api/internal/models"
	appErrors "github.com/sportsmaster/booking-api/pkg/errors"
	"github.com/sportsmaster/booking-api/pkg/payment"
)

type paymentRepository interface {
	List(ctx context.Context, filter models.PaymentFilter) ([]models.Payment, error)
	FindByID(ctx context.Context, id string) (*models.Payment, error)
	SettleSingle(ctx context.Context, payment *models.Payment, selectionID, classID string) error
	SettleBatch(ctx context.Context, payment *models.Payment, selectionIDs []string) error
}

// PaymentService orchestrates charge authorization against the provider
// and settlement of confirmed charges.
//
// Settlement is triggered by the client's call after it completed the
// charge with the intent's client secret; the server does not verify the
// charge against the provider independently. That trust gap is inherited
// from the product design and flagged for review.
type PaymentService struct {
	repo      paymentRepository
	intents   payment.IntentCreator
	receipts  *ReceiptService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	currency  string
}

// NewPaymentService constructs a PaymentService.
func NewPaymentService(repo paymentRepository, intents payment.IntentCreator, receipts *ReceiptService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, currency string) *PaymentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if currency == "" {
		currency = "usd"
	}
	return &PaymentService{
		repo:      repo,
		intents:   intents,
		receipts:  receipts,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
		currency:  currency,
	}
}

// CreateIntent authorizes a charge for the given price and returns the
// client secret the browser needs to complete it. Provider failures come
// back as an explicit error response, never as a crash.
func (s *PaymentService) CreateIntent(ctx context.Context, email string, req models.PaymentIntentRequest) (*models.PaymentIntentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payment intent payload")
	}

	amount := int64(math.Round(req.Price * 100))
	intent, err := s.intents.CreateIntent(ctx, amount, s.currency, map[string]string{"email": email})
	if err != nil {
		s.logger.Error("payment intent creation failed", zap.String("email", email), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrPaymentProvider.Code, appErrors.ErrPaymentProvider.Status, "payment provider request failed")
	}

	return &models.PaymentIntentResponse{ClientSecret: intent.ClientSecret}, nil
}

// Settle finalizes a confirmed charge. A single-item settlement clears
// the selection and moves one seat on the class; a batch settlement
// clears every referenced selection and leaves class counters alone.
func (s *PaymentService) Settle(ctx context.Context, email string, req models.SettlementRequest) (*models.Payment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid settlement payload")
	}

	record := &models.Payment{
		Email:         email,
		Amount:        req.Amount,
		Currency:      s.currency,
		TransactionID: req.TransactionID,
		ClassName:     req.ClassName,
	}

	if req.IsBatch() {
		if err := s.repo.SettleBatch(ctx, record, req.SelectionIDs); err != nil {
			s.metrics.RecordSettlement("batch", false)
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to settle payment")
		}
		s.metrics.RecordSettlement("batch", true)
	} else {
		if req.ClassID == "" || req.SelectionID == "" {
			return nil, appErrors.Clone(appErrors.ErrValidation, "classId and selectionId are required for a single settlement")
		}
		record.ClassID = &req.ClassID
		if err := s.repo.SettleSingle(ctx, record, req.SelectionID, req.ClassID); err != nil {
			s.metrics.RecordSettlement("single", false)
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to settle payment")
		}
		s.metrics.RecordSettlement("single", true)
	}

	s.receipts.Enqueue(record.ID)
	return record, nil
}

// List returns the caller's payment history in insertion order.
func (s *PaymentService) List(ctx context.Context, email string) ([]models.Payment, error) {
	payments, err := s.repo.List(ctx, models.PaymentFilter{Email: email})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list payments")
	}
	return payments, nil
}

// ListRecent returns the caller's payment history newest first.
func (s *PaymentService) ListRecent(ctx context.Context, email string, limit int) ([]models.Payment, error) {
	payments, err := s.repo.List(ctx, models.PaymentFilter{Email: email, SortDesc: true, Limit: limit})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list payments")
	}
	return payments, nil
}
