package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/sportsmaster/booking-api/internal/models"
	appErrors "github.com/sportsmaster/booking-api/pkg/errors"
	"github.com/sportsmaster/booking-api/pkg/export"
	"github.com/sportsmaster/booking-api/pkg/jobs"
	"github.com/sportsmaster/booking-api/pkg/storage"
)

type receiptPaymentReader interface {
	FindByID(ctx context.Context, id string) (*models.Payment, error)
	List(ctx context.Context, filter models.PaymentFilter) ([]models.Payment, error)
}

// ReceiptService renders PDF receipts for settled payments and serves
// them through signed, time-boxed download URLs. Rendering happens on a
// background queue after settlement; a download request generates the
// file on demand if the worker has not produced it yet.
//
// A nil service is valid and behaves as a disabled feature.
type ReceiptService struct {
	payments receiptPaymentReader
	pdf      *export.PDFExporter
	csv      *export.CSVExporter
	store    *storage.LocalStorage
	signer   *storage.SignedURLSigner
	queue     *jobs.Queue
	retention time.Duration
	logger    *zap.Logger
}

// ReceiptQueueConfig tunes the background rendering workers.
type ReceiptQueueConfig struct {
	Workers    int
	MaxRetries int
	Retention  time.Duration
}

// NewReceiptService constructs a ReceiptService with its own queue.
func NewReceiptService(payments receiptPaymentReader, store *storage.LocalStorage, signer *storage.SignedURLSigner, cfg ReceiptQueueConfig, logger *zap.Logger) *ReceiptService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Retention <= 0 {
		cfg.Retention = 30 * 24 * time.Hour
	}
	s := &ReceiptService{
		payments:  payments,
		pdf:       export.NewPDFExporter(),
		csv:       export.NewCSVExporter(),
		store:     store,
		signer:    signer,
		retention: cfg.Retention,
		logger:    logger,
	}
	s.queue = jobs.NewQueue("receipts", s.handleJob, jobs.QueueConfig{
		Workers:    cfg.Workers,
		MaxRetries: cfg.MaxRetries,
		Logger:     logger,
	})
	return s
}

// Start launches the background rendering workers and prunes receipts
// past their retention window. Pruned files come back on demand via
// Generate, so retention only bounds disk usage.
func (s *ReceiptService) Start(ctx context.Context) {
	if s == nil {
		return
	}
	if removed, err := s.store.CleanupOlderThan(s.retention); err != nil {
		s.logger.Warn("receipt cleanup failed", zap.Error(err))
	} else if len(removed) > 0 {
		s.logger.Info("pruned stale receipts", zap.Int("count", len(removed)))
	}
	s.queue.Start(ctx)
}

// Stop drains the workers.
func (s *ReceiptService) Stop() {
	if s == nil {
		return
	}
	s.queue.Stop()
}

// Enqueue schedules receipt rendering for a settled payment. Failures
// are logged, not surfaced: the settlement already committed and the
// receipt can be produced on demand later.
func (s *ReceiptService) Enqueue(paymentID string) {
	if s == nil || paymentID == "" {
		return
	}
	job := jobs.Job{ID: paymentID, Type: "receipt", Payload: paymentID}
	if err := s.queue.Enqueue(job); err != nil {
		s.logger.Warn("failed to enqueue receipt job", zap.String("payment_id", paymentID), zap.Error(err))
	}
}

func (s *ReceiptService) handleJob(ctx context.Context, job jobs.Job) error {
	paymentID, ok := job.Payload.(string)
	if !ok {
		return fmt.Errorf("receipt job payload is not a payment id")
	}
	return s.Generate(ctx, paymentID)
}

// Generate renders and stores the receipt PDF for a payment.
func (s *ReceiptService) Generate(ctx context.Context, paymentID string) error {
	payment, err := s.payments.FindByID(ctx, paymentID)
	if err != nil {
		return fmt.Errorf("load payment for receipt: %w", err)
	}

	fields := []export.ReceiptField{
		{Label: "Receipt No.", Value: payment.ID},
		{Label: "Paid by", Value: payment.Email},
		{Label: "Amount", Value: fmt.Sprintf("%.2f %s", payment.Amount, payment.Currency)},
		{Label: "Transaction", Value: payment.TransactionID},
		{Label: "Date", Value: payment.CreatedAt.Format(time.RFC1123)},
	}
	if payment.ClassName != "" {
		fields = append(fields, export.ReceiptField{Label: "Class", Value: payment.ClassName})
	}
	if n := len(payment.SelectionIDs); n > 1 {
		fields = append(fields, export.ReceiptField{Label: "Items", Value: fmt.Sprintf("%d selections", n)})
	}

	data, err := s.pdf.RenderReceipt("Sports Master payment receipt", fields)
	if err != nil {
		return err
	}

	if _, err := s.store.Save(receiptFilename(paymentID), data); err != nil {
		return err
	}
	return nil
}

// SignedURL returns a download token for the caller's own receipt,
// rendering the file first if the background worker has not yet.
func (s *ReceiptService) SignedURL(ctx context.Context, paymentID, email string) (string, time.Time, error) {
	if s == nil {
		return "", time.Time{}, appErrors.Clone(appErrors.ErrNotFound, "receipts are not enabled")
	}

	payment, err := s.payments.FindByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", time.Time{}, appErrors.Clone(appErrors.ErrNotFound, "payment not found")
		}
		return "", time.Time{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load payment")
	}
	if payment.Email != email {
		return "", time.Time{}, appErrors.Clone(appErrors.ErrForbidden, "receipt belongs to another account")
	}

	filename := receiptFilename(paymentID)
	if !s.store.Exists(filename) {
		if err := s.Generate(ctx, paymentID); err != nil {
			return "", time.Time{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to generate receipt")
		}
	}

	token, expiresAt, err := s.signer.Generate(paymentID, filename)
	if err != nil {
		return "", time.Time{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign receipt url")
	}
	return token, expiresAt, nil
}

// Open validates a download token and returns the receipt file handle.
func (s *ReceiptService) Open(token string) (*os.File, string, error) {
	if s == nil {
		return nil, "", appErrors.Clone(appErrors.ErrNotFound, "receipts are not enabled")
	}

	paymentID, relPath, _, err := s.signer.Parse(token)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrForbidden.Code, appErrors.ErrForbidden.Status, "invalid receipt token")
	}

	file, err := s.store.Open(relPath)
	if err != nil {
		return nil, "", appErrors.Clone(appErrors.ErrNotFound, "receipt file not found")
	}
	return file, receiptFilename(paymentID), nil
}

// Export renders the caller's full payment statement as CSV or PDF.
func (s *ReceiptService) Export(ctx context.Context, email, format string) ([]byte, string, string, error) {
	if s == nil {
		return nil, "", "", appErrors.Clone(appErrors.ErrNotFound, "receipts are not enabled")
	}

	payments, err := s.payments.List(ctx, models.PaymentFilter{Email: email, SortDesc: true})
	if err != nil {
		return nil, "", "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list payments")
	}

	dataset := export.Dataset{
		Headers: []string{"Date", "Class", "Amount", "Currency", "Transaction"},
	}
	for _, p := range payments {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Date":        p.CreatedAt.Format("2006-01-02"),
			"Class":       p.ClassName,
			"Amount":      fmt.Sprintf("%.2f", p.Amount),
			"Currency":    p.Currency,
			"Transaction": p.TransactionID,
		})
	}

	switch format {
	case "pdf":
		data, err := s.pdf.Render(dataset, "Payment statement")
		if err != nil {
			return nil, "", "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render statement")
		}
		return data, "application/pdf", "payments.pdf", nil
	case "", "csv":
		data, err := s.csv.Render(dataset)
		if err != nil {
			return nil, "", "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render statement")
		}
		return data, "text/csv", "payments.csv", nil
	default:
		return nil, "", "", appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
	}
}

func receiptFilename(paymentID string) string {
	return fmt.Sprintf("%s.pdf", paymentID)
}
