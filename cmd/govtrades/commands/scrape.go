package commands

import (
	"log/slog"
	"os"
	"time"

	"government-trades/lib/restyutil"
	"government-trades/lib/scrapers/capitoltrades"
	"government-trades/lib/telemetry"
	"government-trades/lib/util/serviceutil"
	"government-trades/services/trades"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	scrapeBaseUrl        *string
	scrapeChamber        *string
	scrapePageSize       *int
	scrapeMaxPages       *int
	scrapeListPageSize   *int
	scrapeListMaxPages   *int
	scrapePoliticianIds  *[]string
	scrapeOwnerCol       *string
	scrapeTransactionCol *string
	scrapeRawCsv         *string
	scrapeAggregatedCsv  *string
	scrapeSkipSslVerify  *bool
	scrapePreview        *bool
	scrapePreviewRows    *int
	scrapePreviewHtml    *string
)

func init() {
	f := scrapeCmd.Flags()
	scrapeBaseUrl = f.String("base-url", capitoltrades.DefaultBaseUrl, "Base URL of the trade site (override for testing or mirrors).")
	scrapeChamber = f.String("chamber", "", "Optional chamber filter for discovery (house/senate).")
	scrapePageSize = f.Int("page-size", 96, "How many trade rows to request per page.")
	scrapeMaxPages = f.Int("max-pages", 10, "Maximum trade pages to crawl per politician.")
	scrapeListPageSize = f.Int("list-page-size", 96, "How many politicians to request per listing page.")
	scrapeListMaxPages = f.Int("list-max-pages", 5, "Maximum politician listing pages to crawl.")
	scrapePoliticianIds = f.StringArray("politician-id", nil, "Explicit politician IDs to scrape instead of auto-discovery (can be repeated).")
	scrapeOwnerCol = f.String("owner-column", "", "Optional explicit owner column name.")
	scrapeTransactionCol = f.String("transaction-column", "", "Optional explicit transaction column name.")
	scrapeRawCsv = f.String("raw-csv", "all_trades_raw.csv", "Path to save the scraped table.")
	scrapeAggregatedCsv = f.String("aggregated-csv", "all_trades_aggregated.csv", "Path to save the aggregated summary table.")
	scrapeSkipSslVerify = f.Bool("skip-ssl-verify", false, "Disable SSL verification when fetching pages.")
	scrapePreview = f.Bool("preview", false, "Render an HTML preview and open it in a browser.")
	scrapePreviewRows = f.Int("preview-rows", 25, "How many raw rows to include in the preview.")
	scrapePreviewHtml = f.String("preview-html", "trades_preview.html", "Path to write the HTML preview to.")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrapes trade disclosures for all (or the given) politicians and writes raw + aggregated CSVs.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		cfg := readConfig()
		applyString(cmd, "base-url", scrapeBaseUrl, cfg.BaseUrl)
		applyString(cmd, "chamber", scrapeChamber, cfg.Chamber)
		applyInt(cmd, "page-size", scrapePageSize, cfg.PageSize)
		applyInt(cmd, "max-pages", scrapeMaxPages, cfg.MaxPages)
		applyInt(cmd, "list-page-size", scrapeListPageSize, cfg.ListPageSize)
		applyInt(cmd, "list-max-pages", scrapeListMaxPages, cfg.ListMaxPages)

		if *verbose {
			capitoltrades.SetRestyInstrumentOutput(
				restyutil.NewFilesystemOutput(".dev/resty/capitoltrades"),
			)
		}

		client, err := capitoltrades.NewClient(capitoltrades.ClientOptions{
			BaseUrl:       *scrapeBaseUrl,
			SkipTlsVerify: *scrapeSkipSslVerify,
		})
		if err != nil {
			serviceutil.Fatal("failed to initialize client", err)
		}

		telemetry.InstrumentPerfStats(ctx)

		t1 := time.Now()
		records, err := trades.Scrape(ctx, client, trades.ScrapeOptions{
			ExplicitIds: *scrapePoliticianIds,
			Discover: capitoltrades.DiscoverOptions{
				PageSize: *scrapeListPageSize,
				MaxPages: *scrapeListMaxPages,
				Chamber:  *scrapeChamber,
			},
			Trades: capitoltrades.TradeOptions{
				PageSize: *scrapePageSize,
				MaxPages: *scrapeMaxPages,
			},
			Hints: trades.ColumnHints{
				Owner:       *scrapeOwnerCol,
				Transaction: *scrapeTransactionCol,
			},
		})
		if err != nil {
			serviceutil.Fatal("scrape failed", err)
		}
		slog.Info("scraping time", "seconds", time.Since(t1).Seconds())

		summary := trades.Summarize(records)

		err = trades.WriteRawCSV(*scrapeRawCsv, records)
		if err != nil {
			serviceutil.Fatal("failed to write raw csv", err)
		}
		slog.Info("saved raw trades", "path", *scrapeRawCsv)

		err = trades.WriteSummaryCSV(*scrapeAggregatedCsv, summary)
		if err != nil {
			serviceutil.Fatal("failed to write aggregated csv", err)
		}
		slog.Info("saved aggregated trades", "path", *scrapeAggregatedCsv)

		renderSummary(summary)

		if *scrapePreview {
			err = trades.WritePreviewHTML(*scrapePreviewHtml, records, summary, *scrapePreviewRows)
			if err != nil {
				slog.Warn("failed to write preview html", "err", err)
				return
			}
			err = trades.OpenInBrowser(*scrapePreviewHtml)
			if err != nil {
				slog.Warn("failed to open preview in browser", "path", *scrapePreviewHtml, "err", err)
			}
		}
	},
}

func renderSummary(summary []trades.SummaryRow) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Owner", "Transaction", "Trades"})
	for _, row := range summary {
		t.AppendRow(table.Row{row.Owner, row.Transaction, row.Count})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}
