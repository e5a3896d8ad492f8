// Package cmd — websites command.
package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/recipepipe/core/website"
)

var websitesCmd = &cobra.Command{
	Use:   "websites",
	Short: "List the hostnames recipepipe can scrape",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		table, err := website.Default()
		if err != nil {
			return fmt.Errorf("loading website table: %w", err)
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		sites := make(map[website.Website]struct{})
		fmt.Fprintln(tw, "HOST\tWEBSITE")
		for _, host := range table.Hosts() {
			site, _ := table.Lookup(host)
			sites[site] = struct{}{}
			fmt.Fprintf(tw, "%s\t%s\n", host, site)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d hostnames, %d websites\n", table.Len(), len(sites))
		return nil
	},
}
