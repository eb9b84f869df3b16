// ABOUTME: Check command probing every configured feed source
// ABOUTME: Reports per-source reachability with colored pass/fail output

package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/newswave/newswave/internal/feeds"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Probe every configured feed source",
	Long: `Fetch each configured feed source once (primary, fallback and
per-category tiers) and report whether it is reachable and parseable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fetcher := feeds.New(cfg.Aggregation.FetchTimeout.Std())

		green := color.New(color.FgGreen).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()

		failures := 0
		sources := cfg.AllSources()
		for _, src := range sources {
			fmt.Printf("Checking %s... ", src.URL)

			feed, err := fetcher.Fetch(context.Background(), src.URL)
			if err != nil {
				fmt.Printf("%s %v\n", red("x"), err)
				failures++
				continue
			}
			fmt.Printf("%s %d items (%s)\n", green("v"), len(feed.Items), feed.Title)
		}

		fmt.Println()
		fmt.Printf("Summary: %d source(s) checked\n", len(sources))
		if failures > 0 {
			fmt.Printf("  %s %d failing\n", red("x"), failures)
			return fmt.Errorf("%d feed source(s) failing", failures)
		}
		fmt.Printf("  %s all sources healthy\n", green("v"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
