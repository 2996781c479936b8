package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/cadentdev/content-calendar-template/internal/calendar"
	"github.com/cadentdev/content-calendar-template/internal/google"
	"github.com/cadentdev/content-calendar-template/internal/instrumentation"
	"github.com/cadentdev/content-calendar-template/internal/logging"
	"github.com/cadentdev/content-calendar-template/internal/retry"
)

// valueInputOption parses written values the way a user typing them would be
// parsed (dates become dates, not strings).
const valueInputOption = "USER_ENTERED"

// Client implements calendar.Backend against the Google Sheets and Drive
// APIs. Every outbound call goes through the retry gateway and is recorded
// in the metrics.
type Client struct {
	sheets  *sheets.Service
	drive   *drive.Service
	retry   retry.Policy
	logger  *slog.Logger
	metrics *instrumentation.Metrics
	tracer  trace.Tracer
}

// NewClient creates a Sheets client authenticated with the cached OAuth
// token. The credential configuration is validated first; an invalid file
// name or a missing credentials descriptor is a construction-time failure,
// never retried. A nil provider disables metrics and tracing.
func NewClient(ctx context.Context, config google.Config, logger *slog.Logger, provider *instrumentation.Provider) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	metrics := &instrumentation.Metrics{}
	if provider != nil {
		metrics = provider.Metrics()
	}

	config.OnTokenRefresh = func(err error) {
		result := logging.StatusSuccess
		if err != nil {
			result = logging.StatusError
		}
		metrics.RecordOAuthTokenRefresh(ctx, result)
	}

	httpClient, err := config.HTTPClient(ctx)
	if err != nil {
		return nil, err
	}

	sheetsService, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets service: %w", err)
	}

	driveService, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}

	c := &Client{
		sheets:  sheetsService,
		drive:   driveService,
		retry:   retry.NewPolicy(logger),
		logger:  logger,
		metrics: metrics,
		tracer:  noop.NewTracerProvider().Tracer("sheets"),
	}

	if provider != nil {
		c.tracer = provider.Tracer("sheets")
	}

	c.retry.OnRetry = func(operation string, attempt int) {
		c.metrics.RecordAPIRetry(ctx, operation)
	}

	return c, nil
}

// do runs one backend call through the retry gateway, with a span and a
// per-call metric around it.
func (c *Client) do(ctx context.Context, operation string, fn func() error) error {
	ctx, span := c.tracer.Start(ctx, operation)
	defer span.End()

	start := time.Now()
	err := c.retry.Do(operation, fn)
	elapsed := time.Since(start)

	status := logging.StatusSuccess
	if err != nil {
		status = logging.StatusError
	}
	c.metrics.RecordAPICall(ctx, operation, status, elapsed)

	logging.WithOperation(c.logger, operation).Debug("api call finished",
		logging.Status(status),
		slog.Duration(logging.KeyDuration, elapsed))

	return err
}

// CreateSpreadsheet creates a new document with a single default worksheet.
func (c *Client) CreateSpreadsheet(ctx context.Context, title string) (calendar.Spreadsheet, error) {
	rq := &sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title: title,
		},
	}

	var created *sheets.Spreadsheet
	err := c.do(ctx, "spreadsheets.create", func() error {
		var err error
		created, err = c.sheets.Spreadsheets.Create(rq).Context(ctx).Do()
		return err
	})
	if err != nil {
		return calendar.Spreadsheet{}, err
	}

	if len(created.Sheets) == 0 || created.Sheets[0].Properties == nil {
		return calendar.Spreadsheet{}, fmt.Errorf("created spreadsheet %s has no worksheet", created.SpreadsheetId)
	}

	return calendar.Spreadsheet{
		ID:      created.SpreadsheetId,
		URL:     created.SpreadsheetUrl,
		SheetID: created.Sheets[0].Properties.SheetId,
	}, nil
}

// WriteRange writes a rectangular block of values at an A1-style range.
func (c *Client) WriteRange(ctx context.Context, spreadsheetID, ref string, values [][]string) error {
	rows := make([][]interface{}, len(values))
	for i, row := range values {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		rows[i] = cells
	}

	vr := &sheets.ValueRange{
		Range:  ref,
		Values: rows,
	}

	c.logger.Debug("writing values", logging.Spreadsheet(spreadsheetID), logging.Range(ref))

	return c.do(ctx, "values.update", func() error {
		_, err := c.sheets.Spreadsheets.Values.Update(spreadsheetID, ref, vr).
			ValueInputOption(valueInputOption).
			Context(ctx).
			Do()
		return err
	})
}

// FormatRange applies visual formatting to a cell region via a repeatCell
// batch update. Only the properties set in the format are touched.
func (c *Client) FormatRange(ctx context.Context, spreadsheetID string, sheetID int64, box calendar.Box, format calendar.CellFormat) error {
	cellFormat, fields := convertFormat(format)

	rq := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				RepeatCell: &sheets.RepeatCellRequest{
					Range:  gridRange(sheetID, box),
					Cell:   &sheets.CellData{UserEnteredFormat: cellFormat},
					Fields: fields,
				},
			},
		},
	}

	return c.batchUpdate(ctx, "spreadsheets.batchUpdate.format", spreadsheetID, rq)
}

// SetColumnWidths sets pixel widths for the leading columns of a sheet. All
// columns are updated in a single batched call.
func (c *Client) SetColumnWidths(ctx context.Context, spreadsheetID string, sheetID int64, widths []int64) error {
	requests := make([]*sheets.Request, len(widths))
	for i, width := range widths {
		requests[i] = &sheets.Request{
			UpdateDimensionProperties: &sheets.UpdateDimensionPropertiesRequest{
				Range: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "COLUMNS",
					StartIndex: int64(i),
					EndIndex:   int64(i + 1),
				},
				Properties: &sheets.DimensionProperties{
					PixelSize: width,
				},
				Fields: "pixelSize",
			},
		}
	}

	rq := &sheets.BatchUpdateSpreadsheetRequest{Requests: requests}

	return c.batchUpdate(ctx, "spreadsheets.batchUpdate.columnWidths", spreadsheetID, rq)
}

// AddSheet creates an additional named sheet and returns its grid identifier.
func (c *Client) AddSheet(ctx context.Context, spreadsheetID, title string, rows, cols int64) (int64, error) {
	rq := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{
						Title: title,
						GridProperties: &sheets.GridProperties{
							RowCount:    rows,
							ColumnCount: cols,
						},
					},
				},
			},
		},
	}

	c.logger.Debug("adding sheet", logging.Spreadsheet(spreadsheetID), logging.Sheet(title))

	var response *sheets.BatchUpdateSpreadsheetResponse
	err := c.do(ctx, "spreadsheets.batchUpdate.addSheet", func() error {
		var err error
		response, err = c.sheets.Spreadsheets.BatchUpdate(spreadsheetID, rq).Context(ctx).Do()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to add sheet %q: %w", title, err)
	}

	if len(response.Replies) == 0 || response.Replies[0].AddSheet == nil || response.Replies[0].AddSheet.Properties == nil {
		return 0, fmt.Errorf("add sheet %q returned no sheet properties", title)
	}

	return response.Replies[0].AddSheet.Properties.SheetId, nil
}

// AddValidation attaches a dropdown validation rule to a column range.
func (c *Client) AddValidation(ctx context.Context, spreadsheetID string, sheetID int64, rule calendar.ValidationRule) error {
	values := make([]*sheets.ConditionValue, len(rule.Values))
	for i, v := range rule.Values {
		values[i] = &sheets.ConditionValue{UserEnteredValue: v}
	}

	rq := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				SetDataValidation: &sheets.SetDataValidationRequest{
					Range: &sheets.GridRange{
						SheetId:          sheetID,
						StartRowIndex:    rule.StartRow,
						EndRowIndex:      rule.EndRow,
						StartColumnIndex: rule.Column,
						EndColumnIndex:   rule.Column + 1,
					},
					Rule: &sheets.DataValidationRule{
						Condition: &sheets.BooleanCondition{
							Type:   "ONE_OF_LIST",
							Values: values,
						},
						ShowCustomUi: true,
						Strict:       rule.Strict,
					},
				},
			},
		},
	}

	return c.batchUpdate(ctx, "spreadsheets.batchUpdate.setDataValidation", spreadsheetID, rq)
}

// Share grants link-viewer access to the document via the Drive API.
func (c *Client) Share(ctx context.Context, spreadsheetID string) error {
	permission := &drive.Permission{
		Type: "anyone",
		Role: "reader",
	}

	return c.do(ctx, "permissions.create", func() error {
		_, err := c.drive.Permissions.Create(spreadsheetID, permission).Context(ctx).Do()
		return err
	})
}

func (c *Client) batchUpdate(ctx context.Context, operation, spreadsheetID string, rq *sheets.BatchUpdateSpreadsheetRequest) error {
	return c.do(ctx, operation, func() error {
		_, err := c.sheets.Spreadsheets.BatchUpdate(spreadsheetID, rq).Context(ctx).Do()
		return err
	})
}

// convertFormat maps a calendar.CellFormat onto the API's cell format,
// building the field mask for exactly the properties that are set.
func convertFormat(format calendar.CellFormat) (*sheets.CellFormat, string) {
	cf := &sheets.CellFormat{}
	fields := []string{}

	if format.Background != nil {
		cf.BackgroundColor = convertColor(*format.Background)
		fields = append(fields, "backgroundColor")
	}

	text := &sheets.TextFormat{}
	textFields := []string{}
	if format.Bold {
		text.Bold = true
		textFields = append(textFields, "bold")
	}
	if format.Foreground != nil {
		text.ForegroundColor = convertColor(*format.Foreground)
		textFields = append(textFields, "foregroundColor")
	}
	if format.FontSize > 0 {
		text.FontSize = format.FontSize
		textFields = append(textFields, "fontSize")
	}
	if len(textFields) > 0 {
		cf.TextFormat = text
		fields = append(fields, "textFormat("+strings.Join(textFields, ",")+")")
	}

	if format.HorizontalAlignment != "" {
		cf.HorizontalAlignment = format.HorizontalAlignment
		fields = append(fields, "horizontalAlignment")
	}

	return cf, "userEnteredFormat(" + strings.Join(fields, ",") + ")"
}

func convertColor(c calendar.Color) *sheets.Color {
	return &sheets.Color{
		Red:   c.Red,
		Green: c.Green,
		Blue:  c.Blue,
	}
}

func gridRange(sheetID int64, box calendar.Box) *sheets.GridRange {
	return &sheets.GridRange{
		SheetId:          sheetID,
		StartRowIndex:    box.StartRow,
		EndRowIndex:      box.EndRow,
		StartColumnIndex: box.StartCol,
		EndColumnIndex:   box.EndCol,
	}
}
