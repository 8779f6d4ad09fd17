package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stellar/go/support/log"

	"github.com/blindpay/blindpay-go"
)

type PayoutsCommand struct{}

func (c *PayoutsCommand) Command() *cobra.Command {
	payoutsCmd := &cobra.Command{
		Use:   "payouts",
		Short: "Inspect the payouts executed on the instance",
		Run:   helpRun,
	}

	payoutsCmd.AddCommand(c.ListCommand())
	payoutsCmd.AddCommand(c.GetCommand())

	return payoutsCmd
}

func (c *PayoutsCommand) ListCommand() *cobra.Command {
	var limit, offset int

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of payouts",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			ctx := cmd.Context()
			client := mustNewClient(ctx)

			var opts *blindpay.ListOptions
			if limit > 0 || offset > 0 {
				opts = &blindpay.ListOptions{Limit: limit, Offset: offset}
			}

			resp, err := client.Payouts.List(ctx, opts)
			if err != nil {
				log.Ctx(ctx).Fatalf("Error listing payouts: %s", err.Error())
			}

			if globalOptions.output == outputJSON {
				mustPrintJSON(ctx, resp)
				return
			}
			for _, payout := range resp.Data {
				fmt.Printf("%-24s %-12s %-10s %16s -> %16s  %s\n",
					payout.ID, payout.Status, payout.Network,
					formatAmount(payout.SenderAmount, blindpay.Currency(payout.Token)),
					formatAmount(payout.ReceiverAmount, payout.Currency),
					payout.CreatedAt)
			}
			if resp.Pagination.HasMore {
				fmt.Printf("more results available, next page: %s\n", resp.Pagination.NextPage)
			}
		},
	}

	listCmd.Flags().IntVar(&limit, "limit", 0, "The maximum number of payouts to return.")
	listCmd.Flags().IntVar(&offset, "offset", 0, "The number of payouts to skip.")

	return listCmd
}

func (c *PayoutsCommand) GetCommand() *cobra.Command {
	var track bool

	getCmd := &cobra.Command{
		Use:   "get <payout-id>",
		Short: "Show one payout",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			client := mustNewClient(ctx)

			getPayout := client.Payouts.Get
			if track {
				getPayout = client.Payouts.GetTrack
			}

			payout, err := getPayout(ctx, args[0])
			if err != nil {
				log.Ctx(ctx).Fatalf("Error getting payout: %s", err.Error())
			}

			mustPrintJSON(ctx, payout)
		},
	}

	getCmd.Flags().BoolVar(&track, "track", false, "Fetch the payout through the unauthenticated tracking endpoint.")

	return getCmd
}
