// Package translate provides localized text lookup backed by go-i18n message
// bundles, with component-scoped key resolution and language plumbing for
// HTTP and gRPC services.
package translate

import "context"

// Translator resolves a message key to its localized text.
//
// Implementations fail with an error matching ErrKeyNotFound when the active
// locale has no mapping for the key. Any other failure kind is opaque to this
// package and must never be conflated with a missing key.
type Translator interface {
	Get(ctx context.Context, key string) (string, error)
}
