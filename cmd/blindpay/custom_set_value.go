package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stellar/go/support/config"
	"github.com/stellar/go/support/log"
)

func setConfigOptionLogLevel(co *config.ConfigOption) error {
	logLevelStr := viper.GetString(co.Name)
	logLevel, err := logrus.ParseLevel(logLevelStr)
	if err != nil {
		return fmt.Errorf("couldn't parse log level: %w", err)
	}

	key, ok := co.ConfigKey.(*logrus.Level)
	if !ok {
		return fmt.Errorf("configKey has an invalid type %T", co.ConfigKey)
	}
	*key = logLevel

	log.DefaultLogger.SetLevel(*key)
	return nil
}

func setConfigOptionOutput(co *config.ConfigOption) error {
	output := viper.GetString(co.Name)
	if output != outputText && output != outputJSON {
		return fmt.Errorf(`invalid output format %q, expected "text" or "json"`, output)
	}

	key, ok := co.ConfigKey.(*string)
	if !ok {
		return fmt.Errorf("configKey has an invalid type %T", co.ConfigKey)
	}
	*key = output

	return nil
}
