package main

import (
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/habedi/tf2cu/cmd"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// main sets up logging from DEBUG_TF2CU, installs the interrupt handler and
// runs the CLI.
func main() {
	configureLogLevelFromEnv()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	stopChan := setupInterruptListener()
	go handleInterrupt(stopChan, func(msg string) { log.Error().Msg(msg) }, os.Exit)

	cmd.Execute()
}

// configureLogLevelFromEnv enables debug logging when DEBUG_TF2CU is set to
// anything but an explicit false value, and disables logging otherwise.
func configureLogLevelFromEnv() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("DEBUG_TF2CU"))) {
	case "", "0", "false", "no", "off":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	default:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func setupInterruptListener() chan os.Signal {
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt)
	return stopChan
}

// handleInterrupt waits for a signal on stopChan, logs and exits with code 1.
func handleInterrupt(stopChan chan os.Signal, logFn func(string), exit func(int)) {
	<-stopChan
	logFn("Interrupt signal received. Exiting...")
	exit(1)
}
