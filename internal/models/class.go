package models

import "time"

// ClassStatus is the approval lifecycle of a submitted class.
// Transitions are one-directional: pending to approved or denied.
type ClassStatus string

const (
	ClassPending  ClassStatus = "pending"
	ClassApproved ClassStatus = "approved"
	ClassDenied   ClassStatus = "denied"
)

// Class is an instructor's class offering. AvailableSeats and Enrolled
// are mutated only by payment settlement.
type Class struct {
	ID              string      `db:"id" json:"id"`
	Name            string      `db:"name" json:"name"`
	Image           string      `db:"image" json:"image,omitempty"`
	Category        string      `db:"category" json:"category"`
	InstructorName  string      `db:"instructor_name" json:"instructor_name"`
	InstructorEmail string      `db:"instructor_email" json:"instructor_email"`
	Price           float64     `db:"price" json:"price"`
	AvailableSeats  int         `db:"available_seats" json:"available_seats"`
	Enrolled        int         `db:"enrolled" json:"enrolled"`
	Status          ClassStatus `db:"status" json:"status"`
	Feedback        string      `db:"feedback" json:"feedback,omitempty"`
	CreatedAt       time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time   `db:"updated_at" json:"updated_at"`
}

// ClassFilter scopes catalog listings.
type ClassFilter struct {
	InstructorEmail string
	Status          ClassStatus
}

// SubmitClassRequest is the instructor's class submission payload.
// The owning instructor identity comes from the verified token, never
// from the body.
type SubmitClassRequest struct {
	Name           string  `json:"name" validate:"required"`
	Image          string  `json:"image"`
	Category       string  `json:"category" validate:"required"`
	Price          float64 `json:"price" validate:"gte=0"`
	AvailableSeats int     `json:"availableSeats" validate:"required,gte=1"`
}

// FeedbackRequest updates the admin feedback text on a class.
type FeedbackRequest struct {
	Feedback string `json:"feedback" validate:"required"`
}
