package main

import (
	"context"
	"encoding/json"
	"fmt"
	"go/types"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stellar/go/support/config"
	"github.com/stellar/go/support/log"

	"github.com/blindpay/blindpay-go"
)

type globalOptionsType struct {
	version    string
	gitCommit  string
	apiKey     string
	instanceID string
	baseURL    string
	output     string
	logLevel   logrus.Level
}

// globalOptions holds the global CLI options that apply to every
// subcommand.
var globalOptions globalOptionsType

const (
	outputText = "text"
	outputJSON = "json"
)

func rootCmd() *cobra.Command {
	configOpts := config.ConfigOptions{
		{
			Name:           "log-level",
			EnvVar:         "BLINDPAY_LOG_LEVEL",
			Usage:          `The log level used in this project. Options: "TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL", or "PANIC".`,
			OptType:        types.String,
			FlagDefault:    "INFO",
			ConfigKey:      &globalOptions.logLevel,
			CustomSetValue: setConfigOptionLogLevel,
			Required:       true,
		},
		{
			Name:      "api-key",
			EnvVar:    "BLINDPAY_API_KEY",
			Usage:     "The BlindPay API key used to authenticate every request.",
			OptType:   types.String,
			ConfigKey: &globalOptions.apiKey,
			Required:  true,
		},
		{
			Name:      "instance-id",
			EnvVar:    "BLINDPAY_INSTANCE_ID",
			Usage:     "The BlindPay instance the commands operate on.",
			OptType:   types.String,
			ConfigKey: &globalOptions.instanceID,
			Required:  true,
		},
		{
			Name:        "base-url",
			EnvVar:      "BLINDPAY_BASE_URL",
			Usage:       "The BlindPay API base URL.",
			OptType:     types.String,
			FlagDefault: blindpay.DefaultBaseURL,
			ConfigKey:   &globalOptions.baseURL,
			Required:    true,
		},
		{
			Name:           "output",
			EnvVar:         "BLINDPAY_OUTPUT",
			Usage:          `The output format. Options: "text" or "json".`,
			OptType:        types.String,
			FlagDefault:    outputText,
			ConfigKey:      &globalOptions.output,
			CustomSetValue: setConfigOptionOutput,
			Required:       true,
		},
	}

	cmd := &cobra.Command{
		Use:     "blindpay",
		Short:   "A command line client for the BlindPay payments API",
		Long:    "The blindpay CLI inspects the resources of a BlindPay instance: supported rails, receivers, payouts, and FX rate previews.",
		Version: globalOptions.version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configOpts.Require()
			if err := configOpts.SetValues(); err != nil {
				log.Fatalf("Error setting values of config options: %s", err.Error())
			}
			log.Debug("Version: ", globalOptions.version)
			log.Debug("GitCommit: ", globalOptions.gitCommit)
		},
		Run: helpRun,
	}

	if err := configOpts.Init(cmd); err != nil {
		log.Fatalf("Error initializing a config option: %s", err.Error())
	}

	return cmd
}

// SetupCLI sets up the CLI and returns the root command with the
// subcommands attached.
func SetupCLI(version, gitCommit string) *cobra.Command {
	globalOptions.version = version
	globalOptions.gitCommit = gitCommit
	cmd := rootCmd()

	cmd.AddCommand((&RailsCommand{}).Command())
	cmd.AddCommand((&ReceiversCommand{}).Command())
	cmd.AddCommand((&PayoutsCommand{}).Command())
	cmd.AddCommand((&QuoteCommand{}).Command())

	return cmd
}

// helpRun is the Run function of commands that only group subcommands.
func helpRun(cmd *cobra.Command, _ []string) {
	if err := cmd.Help(); err != nil {
		log.Ctx(cmd.Context()).Fatalf("Error calling help command: %s", err.Error())
	}
}

// mustNewClient builds a BlindPay API client from the global options.
func mustNewClient(ctx context.Context) *blindpay.Client {
	client, err := blindpay.NewWithOptions(blindpay.ClientOptions{
		APIKey:     globalOptions.apiKey,
		InstanceID: globalOptions.instanceID,
		BaseURL:    globalOptions.baseURL,
	})
	if err != nil {
		log.Ctx(ctx).Fatalf("Error creating BlindPay client: %s", err.Error())
	}
	return client
}

// mustPrintJSON writes v to stdout as indented JSON.
func mustPrintJSON(ctx context.Context, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Ctx(ctx).Fatalf("Error marshalling output: %s", err.Error())
	}
	fmt.Println(string(data))
}

// formatAmount renders an amount in cents as a decimal value in units.
func formatAmount(cents float64, currency blindpay.Currency) string {
	units := decimal.NewFromFloat(cents).Div(decimal.NewFromInt(100))
	return fmt.Sprintf("%s %s", units.StringFixed(2), currency)
}
