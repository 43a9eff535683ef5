package main

import (
	"os"

	"labelsheet/internal/app"
	"labelsheet/internal/cli"

	"github.com/rs/zerolog/log"
)

func main() {
	app.SetupEnvironment()

	if err := cli.Execute(); err != nil {
		log.Error().Err(err).Msg("labelsheet failed")
		os.Exit(1)
	}
}
