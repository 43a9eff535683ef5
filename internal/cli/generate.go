package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"labelsheet/internal/app"
	"labelsheet/internal/config"
	"labelsheet/internal/deployment"
	"labelsheet/internal/domain/schedule"
	"labelsheet/internal/labels"
	"labelsheet/internal/processing"
	"labelsheet/internal/roster"
	"labelsheet/internal/sheets"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	file        string
	sheetID     string
	sheetRange  string
	team        string
	date        string
	outputDir   string
	publish     bool
	noLocalCopy bool
}

func newGenerateCommand() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render one roster to a PDF label sheet",
		Long: `Render one roster to a PDF label sheet.

The roster comes from either --file (CSV or XLSX, detected from the extension
or content) or --sheet/--range (a Google Sheet range whose first row is the
header). The document is written to the output directory and, with --publish,
uploaded to LABELS_PUBLISH_URL over SCP.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.file, "file", "", "Roster file (.csv or .xlsx)")
	flags.StringVar(&opts.sheetID, "sheet", "", "Google spreadsheet ID to read the roster from")
	flags.StringVar(&opts.sheetRange, "range", "A:Z", "Sheet range holding the roster, header first")
	flags.StringVar(&opts.team, "team", "", "Team name printed on every label")
	flags.StringVar(&opts.date, "date", "", "Event date as YYYY-MM-DD (default second Sunday of July)")
	flags.StringVar(&opts.outputDir, "out", "", "Output directory (default LABELS_OUTPUT_DIR)")
	flags.BoolVar(&opts.publish, "publish", false, "Also upload the document to LABELS_PUBLISH_URL")
	flags.BoolVar(&opts.noLocalCopy, "no-local", false, "Skip the local copy (requires --publish)")
	_ = cmd.MarkFlagRequired("team")
	cmd.MarkFlagsMutuallyExclusive("file", "sheet")
	cmd.MarkFlagsOneRequired("file", "sheet")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	team := strings.TrimSpace(opts.team)
	if team == "" {
		return fmt.Errorf("team is required")
	}
	if !cfg.HasTeam(team) {
		log.Warn().Str("team", team).Strs("teams", cfg.Teams).Msg("Team is not in the configured team list")
	}

	date, err := parseDate(opts.date, time.Now())
	if err != nil {
		return err
	}

	if opts.noLocalCopy && !opts.publish {
		return fmt.Errorf("--no-local requires --publish")
	}

	var sinks []processing.DocumentSink
	if !opts.noLocalCopy {
		dir := cfg.OutputDir
		if opts.outputDir != "" {
			dir = opts.outputDir
		}
		sinks = append(sinks, processing.NewDirectorySink(dir))
	}
	if opts.publish {
		if cfg.PublishURL == "" {
			return fmt.Errorf("--publish requires LABELS_PUBLISH_URL")
		}
		deployer := deployment.NewSSHDeployer(cfg.PublishURL, cfg.PublishKeyFile)
		defer deployer.Disconnect()
		sinks = append(sinks, processing.NewPublishSink(deployer))
	}

	job := processing.NewLabelJob(labels.NewGenerator(), sinks...)
	ctx := cmd.Context()

	var result *processing.Result
	if opts.sheetID != "" {
		client, err := sheets.NewClient(ctx, cfg.CredentialsFile)
		if err != nil {
			return fmt.Errorf("failed to create sheets client: %w", err)
		}
		job.WithSheets(sheets.NewRosterReader(client))
		result, err = job.RunSheet(ctx, opts.sheetID, opts.sheetRange, team, date)
		if err != nil {
			return err
		}
	} else {
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return fmt.Errorf("failed to read roster file %s: %w", opts.file, err)
		}
		format := roster.DetectFormat(filepath.Base(opts.file), data)
		result, err = job.Run(ctx, format, app.GenerationRequest{File: data, Team: team, Date: date})
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d athletes on %d pages\n", result.Document.FileName, result.Document.Athletes, result.Document.Pages)
	for _, location := range result.Locations {
		fmt.Fprintln(out, location)
	}
	return nil
}

// parseDate reads a YYYY-MM-DD date at UTC midnight, defaulting to the event date for now
func parseDate(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return schedule.DefaultEventDate(now.UTC()), nil
	}
	date, err := time.ParseInLocation(config.FileNameDateFormat, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", value)
	}
	return date, nil
}
