package trades

import (
	"context"
	"fmt"
	"log/slog"

	"government-trades/lib/scrapers/capitoltrades"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type ScrapeOptions struct {
	// explicit politician ids bypass listing discovery entirely
	ExplicitIds []string
	Discover    capitoltrades.DiscoverOptions
	Trades      capitoltrades.TradeOptions
	Hints       ColumnHints
}

// Scrape collects the classified trade rows of every requested
// politician, sequentially. A politician whose scrape fails is skipped,
// only collecting nothing at all is an error.
func Scrape(ctx context.Context, client *capitoltrades.Client, opts ScrapeOptions) ([]Record, error) {
	ctx, span := tracer.Start(ctx, "Scrape")
	defer span.End()

	var politicians []capitoltrades.Politician
	if len(opts.ExplicitIds) > 0 {
		for _, id := range opts.ExplicitIds {
			politicians = append(politicians, capitoltrades.Politician{Id: id})
		}
	} else {
		var err error
		politicians, err = client.DiscoverPoliticians(ctx, opts.Discover)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "discovery failed")
			return nil, err
		}
	}

	var records []Record
	for _, p := range politicians {
		table, err := client.ScrapeTrades(ctx, p, opts.Trades)
		if err != nil {
			slog.WarnContext(
				ctx, "skipping politician",
				"politician_id", p.Id,
				"err", err,
			)
			continue
		}
		records = append(records, BuildRecords(table, opts.Hints)...)
	}

	if len(records) == 0 {
		err := fmt.Errorf("no trades collected, try raising the page ceilings or verify connectivity to the trade site")
		span.RecordError(err)
		span.SetStatus(codes.Error, "nothing collected")
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("politicians", len(politicians)),
		attribute.Int("rows", len(records)),
	)
	slog.InfoContext(ctx, "collected trades", "politicians", len(politicians), "rows", len(records))
	return records, nil
}
