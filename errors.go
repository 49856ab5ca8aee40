package bbqueue

import "errors"

// Errors returned by Producer and Consumer operations. The error set is
// closed: these are the only two recoverable failure kinds the queue ever
// returns. Both are comparable with == and safe to use with errors.Is.
var (
	// ErrInsufficientSize indicates that no contiguous region large enough
	// (Grant) or no bytes at all (GrantMax, Read) is currently available.
	// The caller should retry after the counterparty makes progress.
	ErrInsufficientSize = errors.New("bbqueue: insufficient contiguous size")

	// ErrGrantInProgress indicates the caller already holds an outstanding
	// grant that must be committed or released before requesting another.
	ErrGrantInProgress = errors.New("bbqueue: grant already in progress")
)
