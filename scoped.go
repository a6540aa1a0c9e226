package translate

import (
	"context"
	"errors"
)

// ScopedTranslator decorates a Translator so that lookups are first attempted
// with the key prefixed by the owning component's scope name, falling back to
// the bare key when the scoped form is missing.
//
// A scoped translator is immutable once constructed; concurrent Get calls are
// safe whenever the delegate is safe for concurrent reads.
type ScopedTranslator struct {
	delegate Translator
	scope    string
}

// NewScopedTranslator binds delegate to an explicitly supplied scope name.
// This is the preferred constructor: the component states its own identity.
// delegate may be nil when only the scope name is of interest.
func NewScopedTranslator(delegate Translator, scope string) *ScopedTranslator {
	return &ScopedTranslator{delegate: delegate, scope: scope}
}

// NewCallerScopedTranslator derives the scope name from the call stack at
// construction time: depth 0 names the immediate caller of this constructor,
// using the short name of the caller's receiver type, or of the function
// itself when there is no receiver. The name is resolved exactly once, inside
// the constructor, and never re-evaluated.
//
// The depth is counted from this constructor, so routing construction through
// an intermediate factory or helper shifts which frame is named. Callers that
// cannot guarantee a direct call should use NewScopedTranslator instead.
//
// A depth with no corresponding stack frame is a programming error and
// panics.
func NewCallerScopedTranslator(delegate Translator, depth int) *ScopedTranslator {
	scope, err := callerScope(depth + 1)
	if err != nil {
		panic(err)
	}
	return &ScopedTranslator{delegate: delegate, scope: scope}
}

// Scope returns the name used to prefix lookup keys.
func (t *ScopedTranslator) Scope() string {
	return t.scope
}

// Get resolves key through the delegate, trying "<scope>.<key>" before the
// bare key. The bare key is only consulted when the scoped form is reported
// missing; a hit on the scoped key never touches the bare one. Delegate
// failures other than a missing key propagate unchanged from whichever
// attempt raised them.
func (t *ScopedTranslator) Get(ctx context.Context, key string) (string, error) {
	if t.delegate == nil {
		return "", ErrNoDelegate
	}
	if key == "" {
		return "", ErrEmptyKey
	}
	if t.scope == "" {
		return "", ErrEmptyScope
	}

	scopedKey := t.scope + "." + key

	value, err := t.delegate.Get(ctx, scopedKey)
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, ErrKeyNotFound) {
		return "", err
	}

	value, err = t.delegate.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, ErrKeyNotFound) {
		return "", err
	}

	return "", &CombinedKeyNotFoundError{ScopedKey: scopedKey, Key: key}
}
