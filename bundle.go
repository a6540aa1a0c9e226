package translate

import (
	"context"
	"errors"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// BundleTranslator is a Translator backed by a go-i18n message bundle. It is
// the strict lookup surface: a key with no message in the matched language
// fails with a KeyNotFoundError, while template problems and other bundle
// failures surface as the errors go-i18n raises for them.
type BundleTranslator struct {
	bundle    *i18n.Bundle
	languages []string
}

// NewBundleTranslator serves lookups from bundle for the supplied language
// preferences. Languages stored in the request context take precedence over
// the configured ones.
func NewBundleTranslator(bundle *i18n.Bundle, languages ...string) *BundleTranslator {
	return &BundleTranslator{bundle: bundle, languages: languages}
}

func (t *BundleTranslator) Get(ctx context.Context, key string) (string, error) {
	ctx, span := tracer().Start(ctx, "BundleTranslator.Get",
		trace.WithAttributes(attribute.String("translate.key", key)))
	defer span.End()

	languages := FromContext(ctx)
	if len(languages) == 0 {
		languages = t.languages
	}

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	value, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		span.RecordError(err)

		var notFound *i18n.MessageNotFoundErr
		if errors.As(err, &notFound) {
			return "", &KeyNotFoundError{Key: key}
		}
		return "", err
	}
	return value, nil
}
