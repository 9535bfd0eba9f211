package services

import (
	"context"
	"errors"
	"testing"

	"github.com/mkartas/hostel-hub/store-service/internal/core/domain"
)

func TestNewStore_SeedsAdminOnEmptyRepository(t *testing.T) {
	store, repo, _ := newTestStore(t)

	users := store.Users()
	if len(users) != 1 {
		t.Fatalf("expected 1 seeded user, got %d", len(users))
	}
	admin := users[0]
	if admin.Username != "admin" || admin.Password != "123456" ||
		admin.Email != "admin@hostel.com" || admin.Role != domain.RoleAdmin {
		t.Errorf("unexpected seed admin: %+v", admin)
	}
	if store.Theme() != domain.ThemeLight {
		t.Errorf("expected light theme on first run, got %s", store.Theme())
	}
	if store.CurrentUser() != nil {
		t.Errorf("expected no session on first run")
	}
	// The seed state itself is persisted
	if repo.saveCalls == 0 {
		t.Errorf("expected seed state to be written through")
	}
}

func TestNewStore_RestoresPersistedState(t *testing.T) {
	repo := &memoryRepository{state: domain.Seed()}
	repo.state.Notices = append(repo.state.Notices, domain.Notice{ID: "n1", Title: "Curfew", Content: "22:00"})
	repo.state.Theme = domain.ThemeDark

	store := NewStore(context.Background(), repo, &recordingNotifier{})

	if got := store.Notices(); len(got) != 1 || got[0].Title != "Curfew" {
		t.Errorf("expected restored notice, got %+v", got)
	}
	if store.Theme() != domain.ThemeDark {
		t.Errorf("expected restored theme dark, got %s", store.Theme())
	}
}

func TestNewStore_FallsBackToSeedOnLoadError(t *testing.T) {
	repo := &memoryRepository{loadErr: errors.New("disk corrupt")}

	store := NewStore(context.Background(), repo, &recordingNotifier{})

	if len(store.Users()) != 1 {
		t.Fatalf("expected seed state after load error, got %d users", len(store.Users()))
	}
}

func TestToggleTheme_Involution(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	if got := store.ToggleTheme(ctx); got != domain.ThemeDark {
		t.Errorf("first toggle: expected dark, got %s", got)
	}
	if got := store.ToggleTheme(ctx); got != domain.ThemeLight {
		t.Errorf("second toggle: expected light, got %s", got)
	}
}

func TestMutationFailureDoesNotBlockStore(t *testing.T) {
	store, repo, _ := newTestStore(t)
	repo.saveErr = errors.New("disk full")

	// The durability write fails but the in-memory mutation stands.
	notice, err := store.AddNotice(context.Background(), domain.NoticeInput{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.Notices()) != 1 || store.Notices()[0].ID != notice.ID {
		t.Errorf("expected notice to exist in memory despite save failure")
	}
}

func TestCreation_IdentifiersUniqueAndOrdered(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	const n = 20
	want := make([]string, 0, n)
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		notice, err := store.AddNotice(ctx, domain.NoticeInput{Title: "t", Content: "c"})
		if err != nil {
			t.Fatalf("AddNotice %d: %v", i, err)
		}
		if seen[notice.ID] {
			t.Fatalf("duplicate identifier %q", notice.ID)
		}
		seen[notice.ID] = true
		want = append(want, notice.ID)
	}

	got := store.Notices()
	if len(got) != n {
		t.Fatalf("expected %d notices, got %d", n, len(got))
	}
	for i, notice := range got {
		if notice.ID != want[i] {
			t.Errorf("position %d: expected id %q, got %q (iteration must follow call order)", i, want[i], notice.ID)
		}
	}
}
