package services

import "context"

// ReceiptStorage abstracts where receipt files live. The default adapter
// writes to local disk; the port keeps handlers and services unaware of that.
type ReceiptStorage interface {
	// Store persists the file content under a storage-chosen key derived from
	// the given name and returns a URL the API can hand back to clients.
	Store(ctx context.Context, name string, content []byte) (string, error)
}
