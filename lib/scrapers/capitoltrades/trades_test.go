package capitoltrades

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"government-trades/lib/telemetry"

	"github.com/stretchr/testify/require"
)

func tradePage(rows ...string) string {
	body := `<html><body><table><thead><tr><th>Transaction</th><th>Owner</th></tr></thead><tbody>`
	for _, r := range rows {
		body += r
	}
	return body + `</tbody></table></body></html>`
}

func TestScrapeTradesPaginates(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:capitoltrades")
	defer cleanup()

	mux := http.NewServeMux()
	mux.HandleFunc("/trades", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "P001", r.URL.Query().Get("politician"))
		switch r.URL.Query().Get("page") {
		case "1":
			fmt.Fprint(w, tradePage(
				`<tr><td>Buy</td><td>Self</td></tr>`,
				`<tr><td>Sale</td><td>Spouse</td></tr>`,
			))
		case "2":
			fmt.Fprint(w, tradePage(`<tr><td>Exchange</td><td>Joint</td></tr>`))
		default:
			fmt.Fprint(w, tradePage())
		}
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	table, err := client.ScrapeTrades(context.Background(), Politician{Id: "P001"}, TradeOptions{MaxPages: 10})
	require.NoError(t, err)
	require.Equal(t, []string{"Transaction", "Owner"}, table.Header)
	require.Equal(t, [][]string{
		{"Buy", "Self"},
		{"Sale", "Spouse"},
		{"Exchange", "Joint"},
	}, table.Rows)
}

func TestScrapeTradesMaxPagesOne(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:capitoltrades")
	defer cleanup()

	requests := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/trades", func(w http.ResponseWriter, r *http.Request) {
		requests++
		// there would always be more data, the ceiling has to stop us
		fmt.Fprint(w, tradePage(`<tr><td>Buy</td><td>Self</td></tr>`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	table, err := client.ScrapeTrades(context.Background(), Politician{Id: "X"}, TradeOptions{MaxPages: 1})
	require.NoError(t, err)
	require.Equal(t, 1, requests)
	require.Len(t, table.Rows, 1)
}

func TestScrapeTradesFetchFailureKeepsRows(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:capitoltrades")
	defer cleanup()

	mux := http.NewServeMux()
	mux.HandleFunc("/trades", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "1" {
			fmt.Fprint(w, tradePage(`<tr><td>Buy</td><td>Self</td></tr>`))
			return
		}
		// kill the connection to simulate a network failure mid-crawl
		conn, _, err := w.(http.Hijacker).Hijack()
		require.NoError(t, err)
		conn.Close()
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	table, err := client.ScrapeTrades(context.Background(), Politician{Id: "X"}, TradeOptions{MaxPages: 5})
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
}

func TestScrapeTradesNoRowsIsError(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:capitoltrades")
	defer cleanup()

	mux := http.NewServeMux()
	mux.HandleFunc("/trades", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><p>no table here</p></body></html>`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.ScrapeTrades(context.Background(), Politician{Id: "X"}, TradeOptions{MaxPages: 3})
	require.Error(t, err)
	require.Contains(t, err.Error(), "no trade tables found")
}
