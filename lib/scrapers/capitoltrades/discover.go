package capitoltrades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"government-trades/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Politician is one entity from the listing pages. Name may be empty
// when the source only exposed the id.
type Politician struct {
	Id   string
	Name string
}

type DiscoverOptions struct {
	// how many politicians to request per listing page
	PageSize int
	// listing page ceiling, the walk never goes past this
	MaxPages int
	// optional house/senate filter
	Chamber string
}

const defaultPageSize = 96

// a single way of pulling politician ids out of a listing page. the
// discoverer runs these in a fixed order and keeps the first strategy
// that yields anything, which keeps the fallback chain flat and makes
// it cheap to add new strategies when the upstream markup changes.
type listingStrategy interface {
	Name() string
	Extract(ctx context.Context, rawHtml string, doc *goquery.Document) []Politician
}

var listingStrategies = []listingStrategy{
	nextDataStrategy{},
	anchorStrategy{},
	rawRegexStrategy{},
}

// DiscoverPoliticians walks the paginated listing pages and collects a
// de-duplicated, first-seen-ordered set of politicians. A page on which
// every strategy comes up empty ends the walk early. Discovering nobody
// at all is an error since nothing downstream can run without ids.
func (c *Client) DiscoverPoliticians(ctx context.Context, opts DiscoverOptions) ([]Politician, error) {
	ctx, span := tracer.Start(ctx, "DiscoverPoliticians")
	defer span.End()

	if opts.PageSize <= 0 {
		opts.PageSize = defaultPageSize
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = 1
	}

	var discovered []Politician
	seen := map[string]bool{}

	for page := 1; page <= opts.MaxPages; page++ {
		query := url.Values{}
		query.Set("page", strconv.Itoa(page))
		query.Set("pageSize", strconv.Itoa(opts.PageSize))
		if opts.Chamber != "" {
			query.Set("chamber", opts.Chamber)
		}

		res, err := c.Http.R().
			SetContext(ctx).
			SetQueryParamsFromValues(query).
			Get("/politicians")
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to fetch listing page")
			slog.WarnContext(ctx, "listing page fetch failed", "page", page, "err", err)
			break
		}
		rawHtml := string(res.Body())
		doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to parse listing page html")
			slog.WarnContext(ctx, "listing page parse failed", "page", page, "err", err)
			break
		}

		foundThisPage := 0
		for _, strategy := range listingStrategies {
			extracted := strategy.Extract(ctx, rawHtml, doc)
			if len(extracted) == 0 {
				continue
			}
			for _, p := range extracted {
				if p.Id == "" || seen[p.Id] {
					continue
				}
				seen[p.Id] = true
				discovered = append(discovered, p)
				foundThisPage++
			}
			span.AddEvent("listing page extracted", trace.WithAttributes(
				attribute.String("strategy", strategy.Name()),
				attribute.Int("page", page),
				attribute.Int("found", foundThisPage),
			))
			break
		}

		// an empty page means the listing ran out, keep whatever was
		// collected so far instead of hammering pages past the end
		if foundThisPage == 0 {
			break
		}

		if page < opts.MaxPages {
			time.Sleep(listingPageDelay)
		}
	}

	if len(discovered) == 0 {
		err := fmt.Errorf("no politicians discovered, try raising the listing page ceiling or check connectivity to %s", c.BaseUrl)
		span.RecordError(err)
		span.SetStatus(codes.Error, "discovery came up empty")
		return nil, err
	}

	slog.InfoContext(ctx, "discovered politicians", "count", len(discovered))
	return discovered, nil
}

// delay between listing page fetches, the upstream has no API so the
// least we can do is not hammer it
const listingPageDelay = 200 * time.Millisecond

// primary path: the site is a Next.js app, the full listing payload is
// embedded as JSON in a script tag, ids and names live on the same
// object so this is the only strategy that reliably pairs them.
type nextDataStrategy struct{}

func (nextDataStrategy) Name() string { return "next_data" }

func (nextDataStrategy) Extract(ctx context.Context, rawHtml string, doc *goquery.Document) []Politician {
	ctx, span := tracer.Start(ctx, "nextDataStrategy.Extract")
	defer span.End()

	blob := doc.Find("script#__NEXT_DATA__").First()
	if blob.Length() == 0 {
		return nil
	}

	var payload any
	err := json.Unmarshal([]byte(blob.Text()), &payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to unmarshal __NEXT_DATA__ payload")
		return nil
	}

	var out []Politician
	walkPayload(payload, &out)
	return out
}

func walkPayload(node any, out *[]Politician) {
	switch v := node.(type) {
	case map[string]any:
		if rawId, ok := v["politicianId"]; ok {
			id := fmt.Sprint(rawId)
			name := ""
			for _, key := range []string{"fullName", "name", "displayName"} {
				s, ok := v[key].(string)
				if ok && s != "" {
					name = s
					break
				}
			}
			*out = append(*out, Politician{Id: id, Name: name})
		}
		for _, value := range v {
			walkPayload(value, out)
		}
	case []any:
		for _, item := range v {
			walkPayload(item, out)
		}
	}
}

var anchorIdRegexes = []*regexp.Regexp{
	regexp.MustCompile(`/politician/([A-Z0-9]+)`),
	regexp.MustCompile(`politician=([A-Z0-9]+)`),
}

// secondary path: harvest ids and names from anchors on the listing
// page, the anchor text doubles as the display name.
type anchorStrategy struct{}

func (anchorStrategy) Name() string { return "anchors" }

func (anchorStrategy) Extract(ctx context.Context, rawHtml string, doc *goquery.Document) []Politician {
	ctx, span := tracer.Start(ctx, "anchorStrategy.Extract")
	defer span.End()

	var out []Politician
	for _, anchor := range htmlutil.GetAnchors(ctx, doc.Find("a[href]")) {
		for _, re := range anchorIdRegexes {
			groups := re.FindStringSubmatch(anchor.Href)
			if len(groups) < 2 {
				continue
			}
			out = append(out, Politician{Id: groups[1], Name: anchor.Name})
			break
		}
	}
	return out
}

var rawIdRegex = regexp.MustCompile(`politicianId":"([A-Z0-9]+)"`)

// last resort: regex the raw markup, works even when the document no
// longer parses the way we expect, but names cannot be paired.
type rawRegexStrategy struct{}

func (rawRegexStrategy) Name() string { return "raw_regex" }

func (rawRegexStrategy) Extract(ctx context.Context, rawHtml string, doc *goquery.Document) []Politician {
	_, span := tracer.Start(ctx, "rawRegexStrategy.Extract")
	defer span.End()

	var out []Politician
	for _, groups := range rawIdRegex.FindAllStringSubmatch(rawHtml, -1) {
		out = append(out, Politician{Id: groups[1]})
	}
	return out
}
