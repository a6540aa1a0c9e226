package translate

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pitabwire/util"
)

// Manager is the lenient translation surface services interact with: message
// ids go in, rendered text comes out, and failures degrade to the message id.
// Callers that need to distinguish a missing key use the strict Translator
// view instead.
type Manager interface {
	Bundle() *i18n.Bundle

	// Translator returns the strict lookup view over the manager's bundle for
	// the supplied language preferences.
	Translator(languages ...string) Translator

	// Scoped returns a scoped translator over the strict view, prefixing
	// lookup keys with scope.
	Scoped(scope string, languages ...string) *ScopedTranslator

	Translate(ctx context.Context, request any, messageID string) string
	TranslateWithMap(
		ctx context.Context,
		request any,
		messageID string,
		variables map[string]any,
	) string
	TranslateWithMapAndCount(
		ctx context.Context,
		request any,
		messageID string,
		variables map[string]any,
		count int,
	) string
}

type managerImpl struct {
	bundle    *i18n.Bundle
	languages []string
}

// NewManager loads the configured message files into a bundle and wraps it in
// a Manager. Message files that cannot be loaded are a startup defect and
// panic, the way the underlying bundle loader does.
func NewManager(opts ...Option) Manager {
	o := defaultManagerOptions()
	for _, opt := range opts {
		opt(o)
	}

	bundle := o.bundle
	if bundle == nil {
		bundle = i18n.NewBundle(o.defaultLanguage)
		for format, unmarshal := range o.unmarshalers {
			bundle.RegisterUnmarshalFunc(format, unmarshal)
		}
		for _, lang := range o.languages {
			bundle.MustLoadMessageFile(fmt.Sprintf("%s/messages.%v.toml", o.translationsFolder, lang))
		}
		for _, path := range o.messageFiles {
			bundle.MustLoadMessageFile(path)
		}
	}

	return &managerImpl{bundle: bundle, languages: o.languages}
}

// Bundle accesses the translation bundle held by the manager.
func (s *managerImpl) Bundle() *i18n.Bundle {
	return s.bundle
}

func (s *managerImpl) Translator(languages ...string) Translator {
	if len(languages) == 0 {
		languages = s.languages
	}
	return NewBundleTranslator(s.bundle, languages...)
}

func (s *managerImpl) Scoped(scope string, languages ...string) *ScopedTranslator {
	return NewScopedTranslator(s.Translator(languages...), scope)
}

// Translate performs a quick translation based on the supplied message id.
func (s *managerImpl) Translate(ctx context.Context, request any, messageID string) string {
	return s.TranslateWithMap(ctx, request, messageID, map[string]any{})
}

// TranslateWithMap performs a translation with variables based on the
// supplied message id.
func (s *managerImpl) TranslateWithMap(
	ctx context.Context,
	request any,
	messageID string,
	variables map[string]any,
) string {
	return s.TranslateWithMapAndCount(ctx, request, messageID, variables, 1)
}

// TranslateWithMapAndCount performs a translation with variables based on the
// supplied message id and can pluralize.
func (s *managerImpl) TranslateWithMapAndCount(
	ctx context.Context,
	request any,
	messageID string,
	variables map[string]any,
	count int,
) string {
	var languageSlice []string

	switch v := request.(type) {
	case *http.Request:

		languageSlice = ExtractLanguageFromHTTPRequest(v)

	case context.Context:
		languageSlice = ExtractLanguageFromGrpcRequest(v)

	case string:
		languageSlice = []string{v}

	case []string:
		languageSlice = v

	default:
		logger := util.Log(ctx).WithField("messageID", messageID).WithField("variables", variables)
		logger.Warn("TranslateWithMapAndCount -- no valid request object found, use string, []string, context or http.Request")
		return messageID
	}

	localizer := i18n.NewLocalizer(s.Bundle(), languageSlice...)

	transVersion, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      messageID,
		DefaultMessage: &i18n.Message{ID: messageID},
		TemplateData:   variables,
		PluralCount:    count,
	})

	if err != nil {
		logger := util.Log(ctx).WithError(err)
		logger.Error("TranslateWithMapAndCount -- could not perform translation")
	}

	return transVersion
}
