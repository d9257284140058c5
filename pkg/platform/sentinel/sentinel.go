package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Artifact sources and other
// infrastructure layers return these (optionally wrapped) so services can
// translate them into domain errors.
//
//   - ErrNotFound: the requested blob or key does not exist
//   - ErrCorrupt: the blob exists but cannot be decoded
//   - ErrUnavailable: the backing store could not be reached
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrCorrupt     = errors.New("corrupt")
	ErrUnavailable = errors.New("unavailable")
)
