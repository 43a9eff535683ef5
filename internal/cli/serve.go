package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"labelsheet/internal/app"
	"labelsheet/internal/deployment"
	"labelsheet/internal/labels"
	"labelsheet/internal/processing"
	"labelsheet/internal/server"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	var listenAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the label sheet form API over HTTP",
		Long: `Serve the label sheet form API over HTTP.

Endpoints:
  POST /api/labels - multipart roster upload (file, team, date) returning the PDF
  GET  /api/teams  - configured teams and the default event date
  GET  /health     - liveness
  GET  /metrics    - Prometheus metrics

Documents are streamed back to the caller and, when LABELS_PUBLISH_URL is set,
also published over SCP.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if listenAddr != "" {
				cfg.ListenAddr = listenAddr
			}

			var sinks []processing.DocumentSink
			if cfg.PublishURL != "" {
				deployer := deployment.NewSSHDeployer(cfg.PublishURL, cfg.PublishKeyFile)
				defer deployer.Disconnect()
				sinks = append(sinks, processing.NewPublishSink(deployer))
				log.Info().Str("target", deployer.Target()).Msg("Publishing generated label sheets")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			job := processing.NewLabelJob(labels.NewGenerator(), sinks...)
			return serve(ctx, cfg, job)
		},
	}

	cmd.Flags().StringVar(&listenAddr, "listen", "", "Listen address (default LABELS_LISTEN_ADDR)")
	return cmd
}

func serve(ctx context.Context, cfg *app.Config, job *processing.LabelJob) error {
	return server.New(cfg, job).Run(ctx)
}
