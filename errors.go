package translate

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound classifies lookup failures caused by a key with no
	// mapping in the active locale. Concrete translators wrap it so callers
	// can match with errors.Is.
	ErrKeyNotFound = errors.New("key not found")

	// ErrNoDelegate is returned when a lookup is attempted on a scoped
	// translator that was constructed without a delegate.
	ErrNoDelegate = errors.New("translate: no delegate translator bound")

	// ErrEmptyKey is returned for lookups with an empty message key.
	ErrEmptyKey = errors.New("translate: message key is empty")

	// ErrEmptyScope is returned for lookups on a translator whose scope name
	// is empty.
	ErrEmptyScope = errors.New("translate: scope name is empty")
)

// KeyNotFoundError reports a single key that could not be resolved.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key '%s' could not be found", e.Key)
}

func (e *KeyNotFoundError) Unwrap() error { return ErrKeyNotFound }

// CombinedKeyNotFoundError reports that neither the scoped nor the bare form
// of a key could be resolved. The message format is stable; downstream
// tooling parses it.
type CombinedKeyNotFoundError struct {
	ScopedKey string
	Key       string
}

func (e *CombinedKeyNotFoundError) Error() string {
	return fmt.Sprintf("Neither key '%s' nor '%s' could be found", e.ScopedKey, e.Key)
}

// Unwrap classifies the combined failure as a missing key so that an outer
// scoped translator treats it as one more fallback opportunity.
func (e *CombinedKeyNotFoundError) Unwrap() error { return ErrKeyNotFound }
