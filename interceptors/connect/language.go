package connect

import (
	"context"

	"connectrpc.com/connect"

	"github.com/pitabwire/translate"
)

// LanguageInterceptor implements connect.Interceptor, ensuring language
// preferences from the request headers are available in the context.
type LanguageInterceptor struct {
}

// NewLanguageInterceptor creates a new language interceptor with default
// options.
func NewLanguageInterceptor() (*LanguageInterceptor, error) {
	return &LanguageInterceptor{}, nil
}

// WrapUnary stamps the language preferences of unary requests into the
// handler context.
func (l *LanguageInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		lang := translate.ExtractLanguageFromHTTPHeader(req.Header())

		ctx = translate.ToContext(ctx, lang)

		return next(ctx, req)
	}
}

// WrapStreamingClient is a pass-through; language stamping is server-side.
func (l *LanguageInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

// WrapStreamingHandler stamps the language preferences of streaming requests
// into the handler context.
func (l *LanguageInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		lang := translate.ExtractLanguageFromHTTPHeader(conn.RequestHeader())

		ctx = translate.ToContext(ctx, lang)

		return next(ctx, conn)
	}
}
