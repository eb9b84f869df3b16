// ABOUTME: Sources command for importing and exporting feed source lists
// ABOUTME: Converts between OPML subscription files and config YAML sources

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/newswave/newswave/internal/config"
	"github.com/newswave/newswave/internal/opml"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Import and export feed source lists",
}

var sourcesImportCmd = &cobra.Command{
	Use:   "import <file.opml>",
	Short: "Convert an OPML subscription list into config YAML sources",
	Long: `Read an OPML subscription list (as exported by most feed readers)
and print a feeds section ready to merge into a config file. All
imported feeds land in the primary tier with the default item cap.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		subs, err := opml.ParseFile(args[0])
		if err != nil {
			return err
		}
		if len(subs) == 0 {
			return fmt.Errorf("no feed subscriptions found in %s", args[0])
		}

		// Match the cap of the existing primary tier so imported feeds
		// behave like the configured ones.
		itemCap := 80
		if len(cfg.Feeds.Primary) > 0 {
			itemCap = cfg.Feeds.Primary[0].MaxItems
		}

		primary := make([]config.SourceConfig, 0, len(subs))
		for _, sub := range subs {
			primary = append(primary, config.SourceConfig{URL: sub.URL, MaxItems: itemCap})
		}

		section := map[string]map[string][]config.SourceConfig{
			"feeds": {"primary": primary},
		}
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(section)
	},
}

var sourcesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export configured feed sources as OPML",
	Long: `Write the configured feed sources (primary, fallback and
per-category tiers) to stdout as an OPML 2.0 subscription list,
with one folder per tier.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var subs []opml.Subscription
		for _, src := range cfg.Feeds.Primary {
			subs = append(subs, opml.Subscription{URL: src.URL, Title: src.URL, Folder: "Primary"})
		}
		for _, src := range cfg.Feeds.Fallback {
			subs = append(subs, opml.Subscription{URL: src.URL, Title: src.URL, Folder: "Fallback"})
		}
		for category, sources := range cfg.Feeds.Categories {
			for _, src := range sources {
				subs = append(subs, opml.Subscription{URL: src.URL, Title: src.URL, Folder: category})
			}
		}
		return opml.Write(os.Stdout, "NewsWave Sources", subs)
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesImportCmd)
	sourcesCmd.AddCommand(sourcesExportCmd)
	rootCmd.AddCommand(sourcesCmd)
}
