package blob

import "errors"

var (
	// ErrUnknownItem indicates an item ID absent from the index.
	ErrUnknownItem = errors.New("blob: unknown item")
	// ErrBlobMissing indicates an indexed blob file absent from disk.
	ErrBlobMissing = errors.New("blob: blob file missing")
	// ErrCorruptBlob indicates a blob whose bytes disagree with the index.
	ErrCorruptBlob = errors.New("blob: corrupt blob")
)
