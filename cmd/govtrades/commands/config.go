package commands

import (
	"os"

	"government-trades/lib/configutil"
	"government-trades/lib/util/serviceutil"

	"github.com/spf13/cobra"
)

// Config supplies defaults for flags that were not passed on the
// command line, read from an optional govtrades.json5 next to the cwd.
type Config struct {
	BaseUrl      string `json:"base_url"`
	Chamber      string `json:"chamber"`
	PageSize     int    `json:"page_size"`
	MaxPages     int    `json:"max_pages"`
	ListPageSize int    `json:"list_page_size"`
	ListMaxPages int    `json:"list_max_pages"`
}

func readConfig() Config {
	cfg, err := configutil.ReadConfig[Config]("govtrades.json5")
	if os.IsNotExist(err) {
		return Config{}
	}
	if err != nil {
		serviceutil.Fatal("failed to read govtrades.json5", err)
	}
	return cfg
}

// flags always win over the config file, the file only fills in values
// the user did not pass
func applyString(cmd *cobra.Command, flag string, target *string, fromConfig string) {
	if !cmd.Flags().Changed(flag) && fromConfig != "" {
		*target = fromConfig
	}
}

func applyInt(cmd *cobra.Command, flag string, target *int, fromConfig int) {
	if !cmd.Flags().Changed(flag) && fromConfig > 0 {
		*target = fromConfig
	}
}
