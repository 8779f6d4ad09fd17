package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/stellar/go/support/log"

	"github.com/blindpay/blindpay-go"
)

type ReceiversCommand struct{}

func (c *ReceiversCommand) Command() *cobra.Command {
	receiversCmd := &cobra.Command{
		Use:   "receivers",
		Short: "Inspect the receivers registered on the instance",
		Run:   helpRun,
	}

	receiversCmd.AddCommand(c.ListCommand())
	receiversCmd.AddCommand(c.GetCommand())

	return receiversCmd
}

func (c *ReceiversCommand) ListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every receiver on the instance",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			ctx := cmd.Context()
			client := mustNewClient(ctx)

			receivers, err := client.Receivers.List(ctx)
			if err != nil {
				log.Ctx(ctx).Fatalf("Error listing receivers: %s", err.Error())
			}

			if globalOptions.output == outputJSON {
				mustPrintJSON(ctx, receivers)
				return
			}
			for _, receiver := range receivers {
				fmt.Printf("%-24s %-10s %-12s %-26s %s\n",
					receiver.ID, receiver.AccountType, receiver.KYCStatus, receiverName(receiver), receiver.Email)
			}
		},
	}
}

func (c *ReceiversCommand) GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <receiver-id>",
		Short: "Show one receiver",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			client := mustNewClient(ctx)

			receiver, err := client.Receivers.Get(ctx, args[0])
			if err != nil {
				log.Ctx(ctx).Fatalf("Error getting receiver: %s", err.Error())
			}

			mustPrintJSON(ctx, receiver)
		},
	}
}

func receiverName(receiver blindpay.Receiver) string {
	if receiver.AccountType == blindpay.AccountClassBusiness {
		return receiver.LegalName
	}
	return strings.TrimSpace(receiver.FirstName + " " + receiver.LastName)
}
