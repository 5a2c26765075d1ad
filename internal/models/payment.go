package models

import (
	"time"

	"github.com/lib/pq"
)

// Payment records a confirmed charge. Rows are written exactly once at
// settlement and are immutable afterwards.
type Payment struct {
	ID            string         `db:"id" json:"id"`
	Email         string         `db:"email" json:"email"`
	Amount        float64        `db:"amount" json:"amount"`
	Currency      string         `db:"currency" json:"currency"`
	TransactionID string         `db:"transaction_id" json:"transaction_id"`
	ClassID       *string        `db:"class_id" json:"class_id,omitempty"`
	ClassName     string         `db:"class_name" json:"class_name,omitempty"`
	SelectionIDs  pq.StringArray `db:"selection_ids" json:"selection_ids"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
}

// PaymentFilter scopes payment history listings.
type PaymentFilter struct {
	Email    string
	SortDesc bool
	Limit    int
}

// PaymentIntentRequest asks the payment provider to authorize a charge
// for the given price (major currency units).
type PaymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

// PaymentIntentResponse hands the provider's client secret back to the
// browser so it can complete the charge out-of-band.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// SettlementRequest finalizes a confirmed charge. Either a single
// class/selection pair or a batch of selection ids must be given.
type SettlementRequest struct {
	TransactionID string   `json:"transactionId" validate:"required"`
	Amount        float64  `json:"amount" validate:"required,gt=0"`
	ClassID       string   `json:"classId"`
	ClassName     string   `json:"className"`
	SelectionID   string   `json:"selectionId"`
	SelectionIDs  []string `json:"selectionIds"`
}

// IsBatch reports whether the request settles multiple selections.
func (r SettlementRequest) IsBatch() bool {
	return len(r.SelectionIDs) > 0
}
