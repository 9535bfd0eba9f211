package domain

import "time"

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// RoomRequest is a student's application for a room. StudentID and RoomID are
// soft references; deleting the referent leaves them dangling.
type RoomRequest struct {
	ID        string        `json:"id"`
	StudentID string        `json:"student_id"`
	RoomID    string        `json:"room_id"`
	Timestamp time.Time     `json:"timestamp"`
	Status    RequestStatus `json:"status"`
}

type RequestInput struct {
	StudentID string `validate:"required"`
	RoomID    string `validate:"required"`
}

func (i RequestInput) Validate() error {
	return validateStruct(i)
}
