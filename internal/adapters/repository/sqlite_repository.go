package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sony/gobreaker"
	_ "modernc.org/sqlite"

	"github.com/mkartas/hostel-hub/store-service/internal/config"
	"github.com/mkartas/hostel-hub/store-service/internal/core/domain"
	"github.com/mkartas/hostel-hub/store-service/internal/core/ports"
)

// stateKey is the fixed logical key the aggregate document lives under,
// carried over from the original persisted shape.
const stateKey = "hostel-storage"

// SQLiteRepository stores the aggregate as one JSON document in an
// in-process SQLite file. Writes go through a circuit breaker: when local
// IO keeps failing the store degrades to memory-only until the breaker
// closes again.
type SQLiteRepository struct {
	db *sql.DB
	cb *gobreaker.CircuitBreaker
}

var _ ports.StateRepository = (*SQLiteRepository)(nil)

func NewSQLiteRepository(dataDir string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "store.db")
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS state_documents (
		key TEXT PRIMARY KEY,
		document TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &SQLiteRepository{
		db: db,
		cb: config.NewCircuitBreaker("SQLite-State"),
	}, nil
}

func (r *SQLiteRepository) Load(ctx context.Context) (*domain.State, error) {
	var doc string
	err := r.db.QueryRowContext(ctx,
		"SELECT document FROM state_documents WHERE key = ?", stateKey,
	).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrNoState
	}
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	var state domain.State
	if err := json.Unmarshal([]byte(doc), &state); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	return &state, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, state *domain.State) error {
	doc, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	_, err = r.cb.Execute(func() (interface{}, error) {
		return r.db.ExecContext(ctx,
			`INSERT INTO state_documents (key, document, updated_at)
			 VALUES (?, ?, CURRENT_TIMESTAMP)
			 ON CONFLICT(key) DO UPDATE SET
			   document = excluded.document,
			   updated_at = CURRENT_TIMESTAMP`,
			stateKey, string(doc))
	})
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
