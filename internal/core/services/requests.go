package services

import (
	"context"
	"fmt"

	"github.com/mkartas/hostel-hub/store-service/internal/core/domain"
)

// CreateRoomRequest submits a pending request. No capacity check happens
// here; a room may accumulate more pending requests than it can hold, and
// the reckoning happens at approval time.
func (s *Store) CreateRoomRequest(ctx context.Context, studentID, roomID string) (domain.RoomRequest, error) {
	input := domain.RequestInput{StudentID: studentID, RoomID: roomID}
	if err := input.Validate(); err != nil {
		s.notifier.Error(err.Error())
		return domain.RoomRequest{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	request := domain.RoomRequest{
		ID:        s.newID(),
		StudentID: studentID,
		RoomID:    roomID,
		Timestamp: s.now(),
		Status:    domain.RequestPending,
	}
	s.state.RoomRequests = append(s.state.RoomRequests, request)
	s.persist(ctx)
	s.notifier.Success("Room request submitted successfully")
	return request, nil
}

// UpdateRoomRequest decides a request. Rejection touches nothing but the
// request status. Approval is the one multi-entity transition in the store:
// the request flips to approved, the room gains an occupant with its status
// re-derived, and a pending payment for the room's price is appended, all
// under the same lock, so readers see either none or all of it.
//
// Approval never refuses on capacity grounds: occupancy may pass capacity
// and the status simply saturates at full.
func (s *Store) UpdateRoomRequest(ctx context.Context, requestID string, decision domain.RequestStatus) error {
	if decision != domain.RequestApproved && decision != domain.RequestRejected {
		err := fmt.Errorf("%w: decision must be approved or rejected", domain.ErrValidation)
		s.notifier.Error(err.Error())
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var request *domain.RoomRequest
	for i := range s.state.RoomRequests {
		if s.state.RoomRequests[i].ID == requestID {
			request = &s.state.RoomRequests[i]
			break
		}
	}
	if request == nil {
		return domain.ErrNotFound
	}

	var room *domain.Room
	for i := range s.state.Rooms {
		if s.state.Rooms[i].ID == request.RoomID {
			room = &s.state.Rooms[i]
			break
		}
	}
	if room == nil {
		return domain.ErrNotFound
	}

	if decision == domain.RequestRejected {
		request.Status = domain.RequestRejected
		s.persist(ctx)
		s.notifier.Success("Room request rejected")
		return nil
	}

	now := s.now()
	request.Status = domain.RequestApproved
	room.Occupied++
	room.Status = room.DerivedStatus()
	s.state.Payments = append(s.state.Payments, domain.Payment{
		ID:        s.newID(),
		StudentID: request.StudentID,
		RoomID:    room.ID,
		Amount:    room.Price,
		Timestamp: now,
		Month:     now.Month().String(),
		Year:      now.Year(),
		Status:    domain.PaymentPending,
	})

	s.persist(ctx)
	s.notifier.Success("Room request approved")
	return nil
}
