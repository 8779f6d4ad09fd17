package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stellar/go/support/log"
)

type RailsCommand struct{}

func (c *RailsCommand) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "rails",
		Short: "List the payout rails the API supports",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			ctx := cmd.Context()
			client := mustNewClient(ctx)

			rails, err := client.Available.GetRails(ctx)
			if err != nil {
				log.Ctx(ctx).Fatalf("Error getting rails: %s", err.Error())
			}

			if globalOptions.output == outputJSON {
				mustPrintJSON(ctx, rails)
				return
			}
			for _, rail := range rails {
				fmt.Printf("%-22s %-30s %s\n", rail.Value, rail.Label, rail.Country)
			}
		},
	}
}
