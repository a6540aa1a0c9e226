package translate

import (
	"context"
	"errors"
	"log/slog"

	"github.com/lmittmann/tint"
	"github.com/pitabwire/util"
)

const tintAttrCodeMissingKey = 214

// DebugTranslator wraps a Translator for development builds: keys with no
// mapping come back bracketed as "!key!" instead of failing, so unlocalized
// strings stand out in rendered output, and each miss is logged. Any delegate
// failure other than a missing key propagates unchanged.
type DebugTranslator struct {
	delegate Translator
}

func NewDebugTranslator(delegate Translator) *DebugTranslator {
	return &DebugTranslator{delegate: delegate}
}

func (t *DebugTranslator) Get(ctx context.Context, key string) (string, error) {
	value, err := t.delegate.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, ErrKeyNotFound) {
		return "", err
	}

	log := util.Log(ctx).With(
		tint.Attr(tintAttrCodeMissingKey, slog.Any("key", key)),
	)
	defer log.Release()
	log.Debug("marking missing translation")

	return "!" + key + "!", nil
}
