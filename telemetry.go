package translate

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/pitabwire/translate/version"
)

const instrumentationName = "github.com/pitabwire/translate"

func tracer() trace.Tracer {
	return otel.Tracer(instrumentationName,
		trace.WithInstrumentationVersion(version.Version))
}
