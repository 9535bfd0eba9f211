package ports

// Notifier is the UI feedback side channel: every mutation reports a
// human-readable outcome through it. It is not part of the domain contract
// and implementations must never fail the calling operation.
type Notifier interface {
	Success(message string)
	Error(message string)
}
