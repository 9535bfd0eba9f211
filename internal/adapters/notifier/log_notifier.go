package notifier

import (
	"log"

	"github.com/mkartas/hostel-hub/store-service/internal/core/ports"
)

// LogNotifier writes outcome messages to the process log. It stands in for
// the toast layer of a UI embedding.
type LogNotifier struct{}

var _ ports.Notifier = (*LogNotifier)(nil)

func (LogNotifier) Success(message string) {
	log.Printf("[OK] %s", message)
}

func (LogNotifier) Error(message string) {
	log.Printf("[ERR] %s", message)
}

// NoopNotifier discards all messages, for headless embeddings.
type NoopNotifier struct{}

var _ ports.Notifier = (*NoopNotifier)(nil)

func (NoopNotifier) Success(string) {}

func (NoopNotifier) Error(string) {}
