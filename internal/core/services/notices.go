package services

import (
	"context"

	"github.com/mkartas/hostel-hub/store-service/internal/core/domain"
)

// AddNotice publishes a notice stamped with the creation time.
func (s *Store) AddNotice(ctx context.Context, input domain.NoticeInput) (domain.Notice, error) {
	if err := input.Validate(); err != nil {
		s.notifier.Error(err.Error())
		return domain.Notice{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	notice := domain.Notice{
		ID:        s.newID(),
		Title:     input.Title,
		Content:   input.Content,
		Important: input.Important,
		Timestamp: s.now(),
	}
	s.state.Notices = append(s.state.Notices, notice)
	s.persist(ctx)
	s.notifier.Success("Notice added successfully")
	return notice, nil
}

// UpdateNotice merges the supplied fields; the creation timestamp stays.
func (s *Store) UpdateNotice(ctx context.Context, id string, upd domain.NoticeUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Notices {
		if s.state.Notices[i].ID != id {
			continue
		}
		n := &s.state.Notices[i]
		if upd.Title != nil {
			n.Title = *upd.Title
		}
		if upd.Content != nil {
			n.Content = *upd.Content
		}
		if upd.Important != nil {
			n.Important = *upd.Important
		}
		s.persist(ctx)
		s.notifier.Success("Notice updated successfully")
		return nil
	}
	return domain.ErrNotFound
}

func (s *Store) DeleteNotice(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Notices {
		if s.state.Notices[i].ID != id {
			continue
		}
		s.state.Notices = append(s.state.Notices[:i], s.state.Notices[i+1:]...)
		s.persist(ctx)
		s.notifier.Success("Notice deleted successfully")
		return nil
	}
	return domain.ErrNotFound
}
