package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/stellar/go/support/log"

	"github.com/blindpay/blindpay-go"
)

type QuoteCommand struct{}

func (c *QuoteCommand) Command() *cobra.Command {
	quoteCmd := &cobra.Command{
		Use:   "quote",
		Short: "Preview FX rates for payouts",
		Run:   helpRun,
	}

	quoteCmd.AddCommand(c.FxCommand())

	return quoteCmd
}

func (c *QuoteCommand) FxCommand() *cobra.Command {
	var (
		from         string
		to           string
		currencyType string
		amount       int64
	)

	fxCmd := &cobra.Command{
		Use:   "fx",
		Short: "Preview the FX rate for a conversion without locking a quote",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			ctx := cmd.Context()
			client := mustNewClient(ctx)

			rate, err := client.Quotes.GetFxRate(ctx, blindpay.GetFxRateInput{
				CurrencyType:  blindpay.CurrencyType(currencyType),
				From:          blindpay.StablecoinToken(from),
				To:            blindpay.Currency(to),
				RequestAmount: float64(amount),
			})
			if err != nil {
				log.Ctx(ctx).Fatalf("Error getting FX rate: %s", err.Error())
			}

			if globalOptions.output == outputJSON {
				mustPrintJSON(ctx, rate)
				return
			}
			fmt.Printf("commercial rate: %s\n", decimal.NewFromFloat(rate.CommercialQuotation).String())
			fmt.Printf("blindpay rate:   %s\n", decimal.NewFromFloat(rate.BlindpayQuotation).String())
			fmt.Printf("result amount:   %s\n", formatAmount(rate.ResultAmount, blindpay.Currency(to)))
		},
	}

	fxCmd.Flags().StringVar(&from, "from", string(blindpay.StablecoinTokenUSDC), "The stablecoin token to convert from.")
	fxCmd.Flags().StringVar(&to, "to", "", "The currency to convert to.")
	fxCmd.Flags().StringVar(&currencyType, "currency-type", string(blindpay.CurrencyTypeSender), `Which side of the conversion the amount is denominated in. Options: "sender" or "receiver".`)
	fxCmd.Flags().Int64Var(&amount, "amount", 0, "The amount to convert, in cents.")

	for _, flagName := range []string{"to", "amount"} {
		if err := fxCmd.MarkFlagRequired(flagName); err != nil {
			log.Fatalf("Error marking %s flag as required: %s", flagName, err.Error())
		}
	}

	return fxCmd
}
