package services

import (
	"context"
	"errors"
	"testing"

	"github.com/mkartas/hostel-hub/store-service/internal/core/domain"
)

func strptr(s string) *string { return &s }

func TestAddStudent(t *testing.T) {
	store, _, notif := newTestStore(t)

	user, err := store.AddStudent(context.Background(), studentProfile("petros"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != domain.RoleStudent {
		t.Errorf("admin add must produce a student, got %q", user.Role)
	}
	if got := notif.successes[len(notif.successes)-1]; got != "Student added successfully" {
		t.Errorf("unexpected notification %q", got)
	}
}

func TestUpdateStudent_MergesSuppliedFieldsOnly(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	user, err := store.AddStudent(ctx, studentProfile("petros"))
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	err = store.UpdateStudent(ctx, user.ID, domain.StudentUpdate{
		Phone:    strptr("555-0101"),
		FullName: strptr("Petros K."),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	var got domain.User
	for _, u := range store.Users() {
		if u.ID == user.ID {
			got = u
		}
	}
	if got.Phone != "555-0101" || got.FullName != "Petros K." {
		t.Errorf("expected merged fields, got %+v", got)
	}
	if got.Username != "petros" || got.Password != "secret123" || got.Email != "petros@example.com" {
		t.Errorf("untouched fields must survive the merge, got %+v", got)
	}
}

func TestUpdateStudent_UnknownID(t *testing.T) {
	store, _, _ := newTestStore(t)

	before := store.Users()
	err := store.UpdateStudent(context.Background(), "nope", domain.StudentUpdate{Phone: strptr("1")})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	after := store.Users()
	if len(before) != len(after) {
		t.Errorf("unknown id must leave users unchanged")
	}
}

func TestDeleteStudent_DoesNotCascade(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	user, err := store.AddStudent(ctx, studentProfile("petros"))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	room, err := store.AddRoom(ctx, domain.RoomData{Number: "101", Capacity: 2, Price: 300})
	if err != nil {
		t.Fatalf("add room: %v", err)
	}
	if _, err := store.CreateRoomRequest(ctx, user.ID, room.ID); err != nil {
		t.Fatalf("create request: %v", err)
	}
	if _, err := store.CreateComplaint(ctx, domain.ComplaintInput{
		StudentID: user.ID, Category: "plumbing", Description: "leaky tap",
	}); err != nil {
		t.Fatalf("create complaint: %v", err)
	}

	if err := store.DeleteStudent(ctx, user.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// Soft references stay dangling; nothing is cascaded.
	if got := store.RequestsByStudent(user.ID); len(got) != 1 {
		t.Errorf("expected request to survive student deletion, got %d", len(got))
	}
	if got := store.ComplaintsByStudent(user.ID); len(got) != 1 {
		t.Errorf("expected complaint to survive student deletion, got %d", len(got))
	}
	for _, u := range store.Users() {
		if u.ID == user.ID {
			t.Errorf("student must be gone from the users collection")
		}
	}
}

func TestDeleteStudent_UnknownID(t *testing.T) {
	store, _, _ := newTestStore(t)

	err := store.DeleteStudent(context.Background(), "nope")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if len(store.Users()) != 1 {
		t.Errorf("unknown id must leave users unchanged")
	}
}
