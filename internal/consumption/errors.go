package consumption

import "errors"

var (
	ErrUnauthenticated   = errors.New("missing owner identity")
	ErrNotFound          = errors.New("recipe not found")
	ErrInvalidMultiplier = errors.New("multiplier must be positive")

	// ErrCommitFailure means nothing was written: no lot changed, no counter
	// moved and no usage log exists.
	ErrCommitFailure = errors.New("commit consumption")

	// ErrLogWriteFailure is returned together with the usage log. Inventory
	// and counters are already committed.
	ErrLogWriteFailure = errors.New("write usage log")
)
