package capitoltrades

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"government-trades/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type TradeOptions struct {
	// how many rows to request per page
	PageSize int
	// trade page ceiling per politician
	MaxPages int
}

// TradeTable is the stitched-together disclosure table of one
// politician across every page that was fetched. The header comes from
// the first page, later pages only contribute rows.
type TradeTable struct {
	Politician Politician
	Header     []string
	Rows       [][]string
}

const tradePageDelay = 250 * time.Millisecond

// ScrapeTrades walks /trades pages for one politician until the page
// ceiling is hit, a page comes back without rows, or a fetch fails. A
// fetch failure only ends this politician's loop, callers move on to
// the next one. Collecting nothing at all is an error.
func (c *Client) ScrapeTrades(ctx context.Context, politician Politician, opts TradeOptions) (TradeTable, error) {
	ctx, span := tracer.Start(ctx, "ScrapeTrades")
	defer span.End()

	span.SetAttributes(attribute.String("politician_id", politician.Id))

	if opts.PageSize <= 0 {
		opts.PageSize = defaultPageSize
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = 1
	}

	out := TradeTable{Politician: politician}

	for page := 1; page <= opts.MaxPages; page++ {
		query := url.Values{}
		query.Set("politician", politician.Id)
		query.Set("page", strconv.Itoa(page))
		query.Set("pageSize", strconv.Itoa(opts.PageSize))

		res, err := c.Http.R().
			SetContext(ctx).
			SetQueryParamsFromValues(query).
			Get("/trades")
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to fetch trade page")
			slog.WarnContext(
				ctx, "trade page fetch failed, keeping rows collected so far",
				"politician_id", politician.Id,
				"page", page,
				"err", err,
			)
			break
		}

		doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to parse trade page html")
			slog.WarnContext(
				ctx, "trade page parse failed",
				"politician_id", politician.Id,
				"page", page,
				"err", err,
			)
			break
		}

		table, ok := htmlutil.ExtractTable(doc, 0)
		if !ok || len(table.Rows) == 0 {
			// no table or an empty one is end-of-data, not a failure
			break
		}

		if out.Header == nil {
			out.Header = table.Header
		}
		out.Rows = append(out.Rows, table.Rows...)

		if page < opts.MaxPages {
			time.Sleep(tradePageDelay)
		}
	}

	if len(out.Rows) == 0 {
		err := fmt.Errorf("no trade tables found for politician %s, try raising the page ceiling or check connectivity", politician.Id)
		span.RecordError(err)
		span.SetStatus(codes.Error, "no rows collected")
		return out, err
	}

	span.SetAttributes(attribute.Int("rows", len(out.Rows)))
	return out, nil
}
