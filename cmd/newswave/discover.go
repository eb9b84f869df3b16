// ABOUTME: Discover command finding feed URLs for a news site
// ABOUTME: Prints config-ready source URLs with colored output

package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/newswave/newswave/internal/discover"
)

var discoverCmd = &cobra.Command{
	Use:   "discover <url>",
	Short: "Find RSS/Atom feeds for a news site",
	Long: `Probe a news site for RSS/Atom feeds and print the URLs in a form
ready to paste into the sources section of a config file.

Tries the URL as a direct feed first, then HTML alternate links,
then common feed paths.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		siteURL := args[0]

		green := color.New(color.FgGreen).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()

		fmt.Printf("Discovering feeds for %s...\n", cyan(siteURL))

		candidates, err := discover.NewLocator(nil).Locate(context.Background(), siteURL)
		if err != nil {
			return err
		}

		fmt.Println()
		for _, c := range candidates {
			if c.Title != "" {
				fmt.Printf("%s %s (%s)\n", green("v"), c.URL, c.Title)
			} else {
				fmt.Printf("%s %s\n", green("v"), c.URL)
			}
		}
		fmt.Println()
		fmt.Printf("Found %d feed(s)\n", len(candidates))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(discoverCmd)
}
