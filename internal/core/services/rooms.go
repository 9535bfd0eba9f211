package services

import (
	"context"

	"github.com/mkartas/hostel-hub/store-service/internal/core/domain"
)

// AddRoom creates a room with zero occupancy. The status is caller-supplied
// and defaults to available; it is only re-derived when approvals land.
func (s *Store) AddRoom(ctx context.Context, data domain.RoomData) (domain.Room, error) {
	if err := data.Validate(); err != nil {
		s.notifier.Error(err.Error())
		return domain.Room{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	status := data.Status
	if status == "" {
		status = domain.RoomAvailable
	}
	room := domain.Room{
		ID:       s.newID(),
		Number:   data.Number,
		Capacity: data.Capacity,
		Price:    data.Price,
		Occupied: 0,
		Status:   status,
	}
	s.state.Rooms = append(s.state.Rooms, room)
	s.persist(ctx)
	s.notifier.Success("Room added successfully")
	return room, nil
}

// UpdateRoom replaces the room with the matching id wholesale. This is the
// one path that can take a full room back to available.
func (s *Store) UpdateRoom(ctx context.Context, room domain.Room) error {
	if err := room.Validate(); err != nil {
		s.notifier.Error(err.Error())
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Rooms {
		if s.state.Rooms[i].ID != room.ID {
			continue
		}
		s.state.Rooms[i] = room
		s.persist(ctx)
		s.notifier.Success("Room updated successfully")
		return nil
	}
	return domain.ErrNotFound
}

// DeleteRoom removes the room without cascading to requests or payments
// that reference it.
func (s *Store) DeleteRoom(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Rooms {
		if s.state.Rooms[i].ID != id {
			continue
		}
		s.state.Rooms = append(s.state.Rooms[:i], s.state.Rooms[i+1:]...)
		s.persist(ctx)
		s.notifier.Success("Room deleted successfully")
		return nil
	}
	return domain.ErrNotFound
}
