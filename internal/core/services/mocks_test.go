package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mkartas/hostel-hub/store-service/internal/core/domain"
	"github.com/mkartas/hostel-hub/store-service/internal/core/ports"
)

// memoryRepository implements ports.StateRepository in memory, copying the
// document through JSON the way a real document store would.
type memoryRepository struct {
	state     *domain.State
	saveCalls int
	loadErr   error
	saveErr   error
}

var _ ports.StateRepository = (*memoryRepository)(nil)

func (m *memoryRepository) Load(ctx context.Context) (*domain.State, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.state == nil {
		return nil, ports.ErrNoState
	}
	return copyState(m.state)
}

func (m *memoryRepository) Save(ctx context.Context, state *domain.State) error {
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	copied, err := copyState(state)
	if err != nil {
		return err
	}
	m.state = copied
	return nil
}

func copyState(state *domain.State) (*domain.State, error) {
	doc, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	var out domain.State
	if err := json.Unmarshal(doc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// recordingNotifier captures outcome messages for assertions.
type recordingNotifier struct {
	successes []string
	failures  []string
}

var _ ports.Notifier = (*recordingNotifier)(nil)

func (n *recordingNotifier) Success(message string) {
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Error(message string) {
	n.failures = append(n.failures, message)
}

func newTestStore(t *testing.T) (*Store, *memoryRepository, *recordingNotifier) {
	t.Helper()
	repo := &memoryRepository{}
	notif := &recordingNotifier{}
	store := NewStore(context.Background(), repo, notif)
	return store, repo, notif
}

func studentProfile(username string) domain.StudentProfile {
	return domain.StudentProfile{
		Username: username,
		Password: "secret123",
		Email:    username + "@example.com",
		FullName: "Test Student",
	}
}
