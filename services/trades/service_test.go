package trades

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"government-trades/lib/scrapers/capitoltrades"
	"government-trades/lib/telemetry"

	"github.com/stretchr/testify/require"
)

// fixture mimicking the upstream site: one listing page with two
// politicians, each with a one-page trade table
func newSiteServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/politicians", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") != "1" {
			fmt.Fprint(w, `<html><body></body></html>`)
			return
		}
		fmt.Fprint(w, `<html><body>
<script id="__NEXT_DATA__" type="application/json">{"politicians":[{"politicianId":"P001","fullName":"Alice Alpha"}]}</script>
</body></html>`)
	})
	mux.HandleFunc("/trades", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") != "1" {
			fmt.Fprint(w, `<html><body><table><thead><tr><th>Transaction</th><th>Owner</th><th>Amount</th></tr></thead><tbody></tbody></table></body></html>`)
			return
		}
		fmt.Fprint(w, `<html><body><table>
<thead><tr><th>Transaction</th><th>Owner</th><th>Amount</th></tr></thead>
<tbody>
<tr><td>Sale (Partial)</td><td>Spouse</td><td>$1,001-$15,000</td></tr>
<tr><td>Purchase</td><td>Self</td><td>$1,001-$15,000</td></tr>
</tbody>
</table></body></html>`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newSiteClient(t *testing.T, baseUrl string) *capitoltrades.Client {
	client, err := capitoltrades.NewClient(capitoltrades.ClientOptions{BaseUrl: baseUrl})
	require.NoError(t, err)
	return client
}

func TestScrapeEndToEnd(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:trades")
	defer cleanup()

	srv := newSiteServer(t)
	client := newSiteClient(t, srv.URL)

	records, err := Scrape(context.Background(), client, ScrapeOptions{
		Discover: capitoltrades.DiscoverOptions{MaxPages: 2},
		Trades:   capitoltrades.TradeOptions{MaxPages: 2},
	})
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "Alice Alpha", records[0].PoliticianName)

	counts := Aggregate(records)
	require.Equal(t, map[Key]int{
		{Owner: OwnerSpouse, Transaction: TransactionSell}: 1,
		{Owner: OwnerFiler, Transaction: TransactionBuy}:   1,
	}, counts)
}

func TestScrapeExplicitIdsBypassDiscovery(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:trades")
	defer cleanup()

	listingHits := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/politicians", func(w http.ResponseWriter, r *http.Request) {
		listingHits++
	})
	mux.HandleFunc("/trades", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><table><thead><tr><th>Transaction</th><th>Owner</th></tr></thead><tbody><tr><td>Buy</td><td>Self</td></tr></tbody></table></body></html>`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newSiteClient(t, srv.URL)
	records, err := Scrape(context.Background(), client, ScrapeOptions{
		ExplicitIds: []string{"Z900"},
		Trades:      capitoltrades.TradeOptions{MaxPages: 1},
	})
	require.NoError(t, err)
	require.Equal(t, 0, listingHits)
	require.Len(t, records, 1)
	require.Equal(t, "Z900", records[0].PoliticianId)
}

func TestScrapeSkipsFailingPolitician(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:trades")
	defer cleanup()

	mux := http.NewServeMux()
	mux.HandleFunc("/trades", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("politician") == "BAD" {
			fmt.Fprint(w, `<html><body></body></html>`)
			return
		}
		fmt.Fprint(w, `<html><body><table><thead><tr><th>Transaction</th><th>Owner</th></tr></thead><tbody><tr><td>Sale</td><td>Joint</td></tr></tbody></table></body></html>`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newSiteClient(t, srv.URL)
	records, err := Scrape(context.Background(), client, ScrapeOptions{
		ExplicitIds: []string{"BAD", "GOOD"},
		Trades:      capitoltrades.TradeOptions{MaxPages: 1},
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "GOOD", records[0].PoliticianId)
}

func TestScrapeNothingCollectedIsError(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:trades")
	defer cleanup()

	mux := http.NewServeMux()
	mux.HandleFunc("/trades", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body></body></html>`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newSiteClient(t, srv.URL)
	_, err := Scrape(context.Background(), client, ScrapeOptions{
		ExplicitIds: []string{"A", "B"},
		Trades:      capitoltrades.TradeOptions{MaxPages: 1},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "no trades collected")
}
