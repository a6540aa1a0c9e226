package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/pitabwire/translate"
)

// LanguageUnaryInterceptor is a simple grpc interceptor to extract the
// language supplied via metadata.
func LanguageUnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any,
		_ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		l := translate.ExtractLanguageFromGrpcRequest(ctx)
		if len(l) > 0 {
			ctx = translate.ToContext(ctx, l)
		}

		return handler(ctx, req)
	}
}

// LanguageStreamInterceptor extracts the language supplied via metadata for
// streaming calls.
func LanguageStreamInterceptor() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		ctx := ss.Context()
		l := translate.ExtractLanguageFromGrpcRequest(ctx)
		if len(l) == 0 {
			return handler(srv, ss)
		}

		ctx = translate.ToContext(ctx, l)

		// Wrap the original stream so handlers always receive a stream that
		// carries the language in its context.
		languageStream := &serverStreamWrapper{ctx: ctx, ServerStream: ss}

		return handler(srv, languageStream)
	}
}

// serverStreamWrapper overrides the stream context with the language stamped
// one.
type serverStreamWrapper struct {
	ctx context.Context
	grpc.ServerStream
}

func (s *serverStreamWrapper) Context() context.Context {
	return s.ctx
}
