package sheets

import (
	"context"
	"fmt"

	"labelsheet/internal/config"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client implements the SheetsAPI interface using Google Sheets API.
//
// Note: This client uses [][]interface{} as required by the Google Sheets API.
// This is the only layer where interface{} should appear.
type Client struct {
	service *sheets.Service
	retry   config.RetryConfig
}

// NewClient creates a new read-only Google Sheets client with the provided credentials
func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	service, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		service: service,
		retry:   config.DefaultResilienceConfig.SheetRead,
	}, nil
}

// ReadSheet reads values from the specified sheet range, retrying transient failures.
// Returns [][]interface{} as mandated by Google Sheets API.
func (c *Client) ReadSheet(ctx context.Context, spreadsheetID, range_ string) ([][]interface{}, error) {
	var values [][]interface{}

	err := config.Retry(ctx, c.retry, func(ctx context.Context) error {
		resp, err := c.service.Spreadsheets.Values.Get(spreadsheetID, range_).
			ValueRenderOption("FORMATTED_VALUE").
			Context(ctx).
			Do()
		if err != nil {
			log.Debug().
				Err(err).
				Str("spreadsheet_id", spreadsheetID).
				Str("range", range_).
				Msg("Sheet read attempt failed")
			return err
		}
		values = resp.Values
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}

	return values, nil
}
