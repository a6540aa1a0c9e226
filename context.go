package translate

import (
	"context"
	"net/http"
	"strings"

	"google.golang.org/grpc/metadata"
)

type contextKey string

func (c contextKey) String() string {
	return "translate/" + string(c)
}

const ctxKeyLanguage = contextKey("languageKey")

// ToContext adds language preferences to the current supplied context.
func ToContext(ctx context.Context, lang []string) context.Context {
	return context.WithValue(ctx, ctxKeyLanguage, lang)
}

// FromContext extracts language preferences from the supplied context if any
// exist.
func FromContext(ctx context.Context) []string {
	languages, ok := ctx.Value(ctxKeyLanguage).([]string)
	if !ok {
		return nil
	}

	return languages
}

// ToMap stores language preferences in a string map, for propagation over
// carriers that only move maps, such as message headers.
func ToMap(m map[string]string, lang []string) map[string]string {
	m["lang"] = strings.Join(lang, ",")
	return m
}

// FromMap extracts language preferences stored by ToMap.
func FromMap(m map[string]string) []string {
	lang, ok := m["lang"]
	if !ok {
		return nil
	}
	return strings.Split(lang, ",")
}

// ExtractLanguageFromHTTPRequest pulls language preferences from a request,
// with the "lang" form value taking precedence over the Accept-Language
// header.
func ExtractLanguageFromHTTPRequest(req *http.Request) []string {
	lang := req.FormValue("lang")

	acceptedLang := ExtractLanguageFromHTTPHeader(req.Header)

	var languages []string
	if lang != "" {
		languages = append(languages, lang)
	}

	return append(languages, acceptedLang...)
}

func ExtractLanguageFromHTTPHeader(header http.Header) []string {
	acceptLanguageHeader := header.Get("Accept-Language")
	return strings.Split(acceptLanguageHeader, ",")
}

// ExtractLanguageFromGrpcRequest pulls language preferences from the
// accept-language metadata of an incoming gRPC context.
func ExtractLanguageFromGrpcRequest(ctx context.Context) []string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return []string{}
	}

	header, ok := md["accept-language"]
	if !ok || len(header) == 0 {
		return []string{}
	}
	acceptLangHeader := header[0]
	return strings.Split(acceptLangHeader, ",")
}
