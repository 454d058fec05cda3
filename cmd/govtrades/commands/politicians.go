package commands

import (
	"os"

	"government-trades/lib/scrapers/capitoltrades"
	"government-trades/lib/util/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	polBaseUrl       *string
	polChamber       *string
	polListPageSize  *int
	polListMaxPages  *int
	polSkipSslVerify *bool
)

func init() {
	f := politiciansCmd.Flags()
	polBaseUrl = f.String("base-url", capitoltrades.DefaultBaseUrl, "Base URL of the trade site.")
	polChamber = f.String("chamber", "", "Optional chamber filter (house/senate).")
	polListPageSize = f.Int("list-page-size", 96, "How many politicians to request per listing page.")
	polListMaxPages = f.Int("list-max-pages", 5, "Maximum listing pages to crawl.")
	polSkipSslVerify = f.Bool("skip-ssl-verify", false, "Disable SSL verification when fetching pages.")
	rootCmd.AddCommand(politiciansCmd)
}

var politiciansCmd = &cobra.Command{
	Use:   "politicians",
	Short: "Discovers politicians from the listing pages and prints them.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		applyString(cmd, "base-url", polBaseUrl, cfg.BaseUrl)
		applyString(cmd, "chamber", polChamber, cfg.Chamber)
		applyInt(cmd, "list-page-size", polListPageSize, cfg.ListPageSize)
		applyInt(cmd, "list-max-pages", polListMaxPages, cfg.ListMaxPages)

		client, err := capitoltrades.NewClient(capitoltrades.ClientOptions{
			BaseUrl:       *polBaseUrl,
			SkipTlsVerify: *polSkipSslVerify,
		})
		if err != nil {
			serviceutil.Fatal("failed to initialize client", err)
		}

		politicians, err := client.DiscoverPoliticians(cmd.Context(), capitoltrades.DiscoverOptions{
			PageSize: *polListPageSize,
			MaxPages: *polListMaxPages,
			Chamber:  *polChamber,
		})
		if err != nil {
			serviceutil.Fatal("discovery failed", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Name"})
		for _, p := range politicians {
			t.AppendRow(table.Row{p.Id, p.Name})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
