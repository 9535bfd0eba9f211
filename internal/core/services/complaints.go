package services

import (
	"context"
	"fmt"

	"github.com/mkartas/hostel-hub/store-service/internal/core/domain"
)

// CreateComplaint files a complaint in the open state.
func (s *Store) CreateComplaint(ctx context.Context, input domain.ComplaintInput) (domain.Complaint, error) {
	if err := input.Validate(); err != nil {
		s.notifier.Error(err.Error())
		return domain.Complaint{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	complaint := domain.Complaint{
		ID:          s.newID(),
		StudentID:   input.StudentID,
		Category:    input.Category,
		Description: input.Description,
		Timestamp:   s.now(),
		Status:      domain.ComplaintOpen,
	}
	s.state.Complaints = append(s.state.Complaints, complaint)
	s.persist(ctx)
	s.notifier.Success("Complaint submitted successfully")
	return complaint, nil
}

// UpdateComplaintStatus replaces the status in place.
func (s *Store) UpdateComplaintStatus(ctx context.Context, id string, status domain.ComplaintStatus) error {
	switch status {
	case domain.ComplaintOpen, domain.ComplaintInProgress, domain.ComplaintResolved:
	default:
		err := fmt.Errorf("%w: unknown complaint status %q", domain.ErrValidation, status)
		s.notifier.Error(err.Error())
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Complaints {
		if s.state.Complaints[i].ID != id {
			continue
		}
		s.state.Complaints[i].Status = status
		s.persist(ctx)
		s.notifier.Success("Complaint status updated")
		return nil
	}
	return domain.ErrNotFound
}
