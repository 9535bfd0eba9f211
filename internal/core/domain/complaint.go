package domain

import "time"

type ComplaintStatus string

const (
	ComplaintOpen       ComplaintStatus = "open"
	ComplaintInProgress ComplaintStatus = "in_progress"
	ComplaintResolved   ComplaintStatus = "resolved"
)

type Complaint struct {
	ID          string          `json:"id"`
	StudentID   string          `json:"student_id"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Timestamp   time.Time       `json:"timestamp"`
	Status      ComplaintStatus `json:"status"`
}

type ComplaintInput struct {
	StudentID   string `validate:"required"`
	Category    string `validate:"required"`
	Description string `validate:"required"`
}

func (i ComplaintInput) Validate() error {
	return validateStruct(i)
}
