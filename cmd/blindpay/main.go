package main

import (
	"github.com/sirupsen/logrus"
	"github.com/stellar/go/support/log"

	"github.com/blindpay/blindpay-go"
)

// GitCommit is populated at build time by
// go build -ldflags "-X main.GitCommit=$GIT_COMMIT"
var GitCommit string

func main() {
	preConfigureLogger()

	if err := loadEnvFile(); err != nil {
		log.Warnf("Error loading env file: %s", err.Error())
	}

	cmd := SetupCLI(blindpay.Version, GitCommit)
	if err := cmd.Execute(); err != nil {
		log.Fatalf("error executing: %s", err.Error())
	}
}

// preConfigureLogger sets the log level to Trace, so logs work from the
// start. This is overwritten by the log-level config option in root.go.
func preConfigureLogger() {
	log.DefaultLogger = log.New()
	log.DefaultLogger.SetLevel(logrus.TraceLevel)
}
