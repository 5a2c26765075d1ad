package models

import "time"

// Selection is a student's pending intent to enroll in a class, staged
// before payment. At most one active selection may exist per category;
// settlement or explicit removal destroys it.
type Selection struct {
	ID           string    `db:"id" json:"id"`
	ClassID      string    `db:"class_id" json:"class_id"`
	ClassName    string    `db:"class_name" json:"class_name"`
	Category     string    `db:"category" json:"category"`
	Image        string    `db:"image" json:"image,omitempty"`
	Price        float64   `db:"price" json:"price"`
	StudentEmail string    `db:"student_email" json:"student_email"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// SelectionFilter scopes ledger listings.
type SelectionFilter struct {
	StudentEmail string
}

// SelectClassRequest is the payload for staging a class selection.
type SelectClassRequest struct {
	ClassID   string  `json:"classId" validate:"required"`
	ClassName string  `json:"className" validate:"required"`
	Category  string  `json:"category" validate:"required"`
	Image     string  `json:"image"`
	Price     float64 `json:"price" validate:"gte=0"`
}
