package ports

import (
	"context"
	"errors"

	"github.com/mkartas/hostel-hub/store-service/internal/core/domain"
)

// ErrNoState is returned by Load when no document has been persisted yet.
var ErrNoState = errors.New("no persisted state")

// StateRepository persists the whole aggregate as a single document under a
// fixed logical key. Save replaces the document; Load restores it verbatim.
type StateRepository interface {
	Load(ctx context.Context) (*domain.State, error)
	Save(ctx context.Context, state *domain.State) error
}
