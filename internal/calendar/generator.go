package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cadentdev/content-calendar-template/internal/logging"
)

// Backend is the spreadsheet capability surface the generator consumes. The
// concrete implementation wraps the Google Sheets service; tests substitute a
// fake to observe the call sequence.
type Backend interface {
	// CreateSpreadsheet creates a new document and returns its handle.
	CreateSpreadsheet(ctx context.Context, title string) (Spreadsheet, error)

	// WriteRange writes a rectangular block of values at an A1-style range.
	WriteRange(ctx context.Context, spreadsheetID, ref string, values [][]string) error

	// FormatRange applies visual formatting to a cell region of a sheet.
	FormatRange(ctx context.Context, spreadsheetID string, sheetID int64, box Box, format CellFormat) error

	// SetColumnWidths sets pixel widths for the leading columns of a sheet
	// in a single batched update.
	SetColumnWidths(ctx context.Context, spreadsheetID string, sheetID int64, widths []int64) error

	// AddSheet creates an additional named sheet with the given capacity and
	// returns its grid identifier.
	AddSheet(ctx context.Context, spreadsheetID, title string, rows, cols int64) (int64, error)

	// AddValidation attaches a dropdown validation rule to a column range.
	AddValidation(ctx context.Context, spreadsheetID string, sheetID int64, rule ValidationRule) error

	// Share grants link-viewer access to the document.
	Share(ctx context.Context, spreadsheetID string) error
}

// Generator builds content calendars on a spreadsheet backend.
type Generator struct {
	backend Backend
	logger  *slog.Logger

	// now is injectable for deterministic dates in tests.
	now func() time.Time
}

// New creates a Generator. A nil logger falls back to slog.Default().
func New(backend Backend, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}

	return &Generator{
		backend: backend,
		logger:  logger,
		now:     time.Now,
	}
}

// Result describes a created calendar.
type Result struct {
	Spreadsheet Spreadsheet
	Title       string
}

// Create runs the full generation sequence: create the document, write and
// format the header row, set column widths, pre-populate sample and planning
// rows, attach the dropdown validations and build the Instructions sheet.
//
// Column widths and validations are cosmetic: their failures are logged as
// warnings and swallowed, and the run still succeeds. Everything else aborts
// the sequence. Each invocation creates a fresh document; nothing is rolled
// back on partial failure.
func (g *Generator) Create(ctx context.Context, req Request) (*Result, error) {
	title := fmt.Sprintf("%s - Content Calendar", req.ClientName)
	today := g.now()

	spreadsheet, err := g.backend.CreateSpreadsheet(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("failed to create spreadsheet: %w", err)
	}

	logger := logging.WithSpreadsheet(g.logger, spreadsheet.ID)
	logger.Info("created spreadsheet", logging.Client(req.ClientName), slog.String("title", title))

	if err := g.writeHeaders(ctx, spreadsheet); err != nil {
		return nil, err
	}

	// Column widths are cosmetic; a calendar with default widths is still a
	// working calendar.
	if err := g.backend.SetColumnWidths(ctx, spreadsheet.ID, spreadsheet.SheetID, ColumnWidths); err != nil {
		logger.Warn("could not set column widths", logging.Err(err))
	}

	if err := g.writeRows(ctx, spreadsheet, today, req.HorizonWeeks); err != nil {
		return nil, err
	}

	g.addValidations(ctx, spreadsheet, logger)

	if err := g.createInstructionsSheet(ctx, spreadsheet); err != nil {
		return nil, err
	}

	logger.Info("content calendar ready", slog.String("url", spreadsheet.URL))

	return &Result{Spreadsheet: spreadsheet, Title: title}, nil
}

// Share grants link-viewer access to a created calendar. Callers treat a
// failure as a warning: the calendar itself is complete.
func (g *Generator) Share(ctx context.Context, spreadsheet Spreadsheet) error {
	if err := g.backend.Share(ctx, spreadsheet.ID); err != nil {
		return fmt.Errorf("failed to share spreadsheet: %w", err)
	}

	return nil
}

func (g *Generator) writeHeaders(ctx context.Context, spreadsheet Spreadsheet) error {
	ref := rangeRef("", 1, 1, 'G')
	if err := g.backend.WriteRange(ctx, spreadsheet.ID, ref, [][]string{Headers}); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	box := Box{StartRow: 0, EndRow: 1, StartCol: 0, EndCol: int64(len(Headers))}
	if err := g.backend.FormatRange(ctx, spreadsheet.ID, spreadsheet.SheetID, box, headerFormat); err != nil {
		return fmt.Errorf("failed to format headers: %w", err)
	}

	return nil
}

func (g *Generator) writeRows(ctx context.Context, spreadsheet Spreadsheet, today time.Time, weeks int) error {
	samples := sampleRows(today)
	ref := rangeRef("", 2, len(samples), 'G')
	if err := g.backend.WriteRange(ctx, spreadsheet.ID, ref, samples); err != nil {
		return fmt.Errorf("failed to write sample rows: %w", err)
	}

	planning := planningRows(today, weeks)
	if len(planning) == 0 {
		return nil
	}

	ref = rangeRef("", 2+len(samples), len(planning), 'G')
	if err := g.backend.WriteRange(ctx, spreadsheet.ID, ref, planning); err != nil {
		return fmt.Errorf("failed to write planning rows: %w", err)
	}

	return nil
}

// addValidations attaches the three dropdown rules. Validation is a cosmetic
// enhancement: each failure is logged with the affected column and swallowed.
func (g *Generator) addValidations(ctx context.Context, spreadsheet Spreadsheet, logger *slog.Logger) {
	for _, rule := range validationRules() {
		if err := g.backend.AddValidation(ctx, spreadsheet.ID, spreadsheet.SheetID, rule); err != nil {
			logger.Warn("could not add data validation",
				slog.String("column", Headers[rule.Column]),
				logging.Err(err))
		}
	}
}

func (g *Generator) createInstructionsSheet(ctx context.Context, spreadsheet Spreadsheet) error {
	sheetID, err := g.backend.AddSheet(ctx, spreadsheet.ID, instructionsTitle, instructionsRows, instructionsCols)
	if err != nil {
		return fmt.Errorf("failed to create instructions sheet: %w", err)
	}

	content, headings := instructionsContent()
	ref := rangeRef(instructionsTitle, 1, len(content), 'J')
	if err := g.backend.WriteRange(ctx, spreadsheet.ID, ref, content); err != nil {
		return fmt.Errorf("failed to write instructions: %w", err)
	}

	titleBox := Box{StartRow: 0, EndRow: 1, StartCol: 0, EndCol: 1}
	if err := g.backend.FormatRange(ctx, spreadsheet.ID, sheetID, titleBox, instructionsTitleFormat); err != nil {
		return fmt.Errorf("failed to format instructions title: %w", err)
	}

	for _, row := range headings {
		box := Box{StartRow: row, EndRow: row + 1, StartCol: 0, EndCol: 1}
		if err := g.backend.FormatRange(ctx, spreadsheet.ID, sheetID, box, instructionsHeadingFormat); err != nil {
			return fmt.Errorf("failed to format instructions heading: %w", err)
		}
	}

	return nil
}
