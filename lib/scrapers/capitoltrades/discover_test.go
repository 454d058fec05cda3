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

const nextDataListing = `<html><body>
<script id="__NEXT_DATA__" type="application/json">
{"props":{"pageProps":{"politicians":[{"politicianId":"P001","fullName":"Alice Alpha"}]}}}
</script>
</body></html>`

const anchorListing = `<html><body>
<a href="/politician/P002">Bob Beta</a>
<a href="/politician/P001">Alice Alpha</a>
<a href="/about">About</a>
</body></html>`

const rawRegexListing = `<html><body>
<div>window.__data = {"politicianId":"P003","x":1}</div>
</body></html>`

const emptyListing = `<html><body><p>nothing</p></body></html>`

func newListingServer(t *testing.T, pages map[string]string) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/politicians", func(w http.ResponseWriter, r *http.Request) {
		body, ok := pages[r.URL.Query().Get("page")]
		if !ok {
			body = emptyListing
		}
		fmt.Fprint(w, body)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T, baseUrl string) *Client {
	client, err := NewClient(ClientOptions{BaseUrl: baseUrl})
	require.NoError(t, err)
	return client
}

func TestDiscoverPoliticiansFallbackChain(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:capitoltrades")
	defer cleanup()

	srv := newListingServer(t, map[string]string{
		"1": nextDataListing,
		"2": anchorListing,
		"3": rawRegexListing,
	})
	client := newTestClient(t, srv.URL)

	politicians, err := client.DiscoverPoliticians(context.Background(), DiscoverOptions{
		PageSize: 1,
		MaxPages: 10,
	})
	require.NoError(t, err)
	// P001 shows up again on page 2 and must not be duplicated, P003
	// comes from the raw regex fallback so it has no name
	require.Equal(t, []Politician{
		{Id: "P001", Name: "Alice Alpha"},
		{Id: "P002", Name: "Bob Beta"},
		{Id: "P003"},
	}, politicians)
}

func TestDiscoverPoliticiansJsonBeatsAnchors(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:capitoltrades")
	defer cleanup()

	// a page carrying both the payload and anchors: only the payload
	// counts, its name wins over the anchor text
	srv := newListingServer(t, map[string]string{
		"1": `<html><body>
<script id="__NEXT_DATA__" type="application/json">{"politicianId":"P009","fullName":"Payload Name"}</script>
<a href="/politician/P009">Anchor Name</a>
</body></html>`,
	})
	client := newTestClient(t, srv.URL)

	politicians, err := client.DiscoverPoliticians(context.Background(), DiscoverOptions{MaxPages: 1})
	require.NoError(t, err)
	require.Equal(t, []Politician{{Id: "P009", Name: "Payload Name"}}, politicians)
}

func TestDiscoverPoliticiansRespectsMaxPages(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:capitoltrades")
	defer cleanup()

	requests := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/politicians", func(w http.ResponseWriter, r *http.Request) {
		requests++
		fmt.Fprintf(w, `<html><body><a href="/politician/Q%03d">Q</a></body></html>`, requests)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	politicians, err := client.DiscoverPoliticians(context.Background(), DiscoverOptions{MaxPages: 2})
	require.NoError(t, err)
	require.Equal(t, 2, requests)
	require.Len(t, politicians, 2)
}

func TestDiscoverPoliticiansEmptyIsError(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:capitoltrades")
	defer cleanup()

	srv := newListingServer(t, nil)
	client := newTestClient(t, srv.URL)

	_, err := client.DiscoverPoliticians(context.Background(), DiscoverOptions{MaxPages: 3})
	require.Error(t, err)
	require.Contains(t, err.Error(), "no politicians discovered")
}
