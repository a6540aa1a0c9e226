package translate

import (
	"context"
	"sync"

	"github.com/pitabwire/util"
)

// SuppressingTranslator wraps a Translator so that lookups never fail: any
// delegate error is logged the first time it is seen for a key and the key
// itself is returned as the text. Useful on rendering paths where a missing
// translation should degrade to the raw key rather than abort.
type SuppressingTranslator struct {
	delegate Translator

	reported sync.Map // key -> struct{}
}

func NewSuppressingTranslator(delegate Translator) *SuppressingTranslator {
	return &SuppressingTranslator{delegate: delegate}
}

// Get resolves key through the delegate, substituting the key itself when the
// delegate fails. The returned error is always nil.
func (t *SuppressingTranslator) Get(ctx context.Context, key string) (string, error) {
	value, err := t.delegate.Get(ctx, key)
	if err == nil {
		return value, nil
	}

	if _, seen := t.reported.LoadOrStore(key, struct{}{}); !seen {
		util.Log(ctx).WithError(err).WithField("key", key).
			Warn("substituting key for failed translation lookup")
	}

	return key, nil
}
