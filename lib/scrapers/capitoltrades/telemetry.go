package capitoltrades

import (
	"government-trades/lib/restyutil"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("government-trades.lib.scrapers.capitoltrades")
var restyInstrumentOutput restyutil.InstrumentOutput

func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyInstrumentOutput = out
}
