package main

import (
	"context"
	"log"

	"github.com/mkartas/hostel-hub/store-service/internal/adapters/notifier"
	"github.com/mkartas/hostel-hub/store-service/internal/adapters/repository"
	"github.com/mkartas/hostel-hub/store-service/internal/config"
	"github.com/mkartas/hostel-hub/store-service/internal/core/services"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	repo, err := repository.NewSQLiteRepository(cfg.DataDir)
	if err != nil {
		log.Fatalf("failed to open state repository: %v", err)
	}
	defer repo.Close()

	store := services.NewStore(ctx, repo, notifier.LogNotifier{})

	log.Printf("store ready: %d users, %d rooms, %d requests (%d pending), %d complaints, %d payments, %d notices, theme %s",
		len(store.Users()),
		len(store.Rooms()),
		len(store.RoomRequests()),
		len(store.PendingRequests()),
		len(store.Complaints()),
		len(store.Payments()),
		len(store.Notices()),
		store.Theme(),
	)
}
