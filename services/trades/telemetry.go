package trades

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("government-trades.services.trades")
