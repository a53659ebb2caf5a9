package types

import "errors"

var (
	// ErrInvalidConfig marks table definitions rejected at construction.
	// The caller has to fix the inputs and rebuild; nothing is retryable.
	ErrInvalidConfig = errors.New("invalid table configuration")

	// ErrUnsupportedOperation marks operations that do not apply to the
	// table as defined, e.g. asking an unpartitioned table for its
	// partition descriptor.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)
