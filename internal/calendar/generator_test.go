package calendar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend records every call so tests can assert on the exact sequence.
type fakeBackend struct {
	calls []string

	writes      map[string][][]string
	widths      []int64
	validations []ValidationRule
	formats     []Box

	createErr     error
	writeErr      error
	widthsErr     error
	validationErr error
	shareErr      error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{writes: map[string][][]string{}}
}

func (f *fakeBackend) CreateSpreadsheet(ctx context.Context, title string) (Spreadsheet, error) {
	f.calls = append(f.calls, "create:"+title)
	if f.createErr != nil {
		return Spreadsheet{}, f.createErr
	}
	return Spreadsheet{ID: "doc-1", URL: "https://docs.google.com/spreadsheets/d/doc-1", SheetID: 0}, nil
}

func (f *fakeBackend) WriteRange(ctx context.Context, spreadsheetID, ref string, values [][]string) error {
	f.calls = append(f.calls, "write:"+ref)
	if f.writeErr != nil {
		return f.writeErr
	}
	f.writes[ref] = values
	return nil
}

func (f *fakeBackend) FormatRange(ctx context.Context, spreadsheetID string, sheetID int64, box Box, format CellFormat) error {
	f.calls = append(f.calls, fmt.Sprintf("format:%d:%d-%d", sheetID, box.StartRow, box.EndRow))
	f.formats = append(f.formats, box)
	return nil
}

func (f *fakeBackend) SetColumnWidths(ctx context.Context, spreadsheetID string, sheetID int64, widths []int64) error {
	f.calls = append(f.calls, "widths")
	if f.widthsErr != nil {
		return f.widthsErr
	}
	f.widths = widths
	return nil
}

func (f *fakeBackend) AddSheet(ctx context.Context, spreadsheetID, title string, rows, cols int64) (int64, error) {
	f.calls = append(f.calls, "addsheet:"+title)
	return 99, nil
}

func (f *fakeBackend) AddValidation(ctx context.Context, spreadsheetID string, sheetID int64, rule ValidationRule) error {
	f.calls = append(f.calls, fmt.Sprintf("validation:%d", rule.Column))
	if f.validationErr != nil {
		return f.validationErr
	}
	f.validations = append(f.validations, rule)
	return nil
}

func (f *fakeBackend) Share(ctx context.Context, spreadsheetID string) error {
	f.calls = append(f.calls, "share")
	return f.shareErr
}

func (f *fakeBackend) count(prefix string) int {
	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func testGenerator(backend Backend) *Generator {
	g := New(backend, slog.New(slog.NewTextHandler(io.Discard, nil)))
	g.now = func() time.Time { return time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC) }
	return g
}

func TestCreateFullSequence(t *testing.T) {
	backend := newFakeBackend()
	g := testGenerator(backend)

	result, err := g.Create(t.Context(), Request{ClientName: "Acme, Inc!", HorizonWeeks: 8})
	require.NoError(t, err)

	assert.Equal(t, "Acme, Inc! - Content Calendar", result.Title)
	assert.Equal(t, "doc-1", result.Spreadsheet.ID)
	assert.NotEmpty(t, result.Spreadsheet.URL)

	// Exactly one document create, one header write, one batched width
	// update, three validations and one instructions sheet.
	assert.Equal(t, 1, backend.count("create:"))
	assert.Equal(t, 1, backend.count("widths"))
	assert.Equal(t, 3, backend.count("validation:"))
	assert.Equal(t, 1, backend.count("addsheet:"))

	// Header write plus at least two body-row writes plus the instructions
	// content write.
	assert.GreaterOrEqual(t, backend.count("write:"), 4)

	// Header format plus instructions title and three headings.
	assert.GreaterOrEqual(t, backend.count("format:"), 2)

	// The width update covers all seven columns in one call.
	assert.Equal(t, ColumnWidths, backend.widths)
}

func TestCreateWritesExpectedRanges(t *testing.T) {
	backend := newFakeBackend()
	g := testGenerator(backend)

	_, err := g.Create(t.Context(), Request{ClientName: "Acme", HorizonWeeks: 8})
	require.NoError(t, err)

	require.Contains(t, backend.writes, "A1:G1")
	assert.Equal(t, [][]string{Headers}, backend.writes["A1:G1"])

	// Three sample rows at A2:G4, then 8*7-3 = 53 planning rows at A5:G57.
	require.Contains(t, backend.writes, "A2:G4")
	assert.Len(t, backend.writes["A2:G4"], 3)

	require.Contains(t, backend.writes, "A5:G57")
	assert.Len(t, backend.writes["A5:G57"], 53)

	require.Contains(t, backend.writes, "Instructions!A1:J26")
}

func TestCreateOrdering(t *testing.T) {
	backend := newFakeBackend()
	g := testGenerator(backend)

	_, err := g.Create(t.Context(), Request{ClientName: "Acme", HorizonWeeks: 4})
	require.NoError(t, err)

	// The document create comes first and the instructions sheet last.
	require.NotEmpty(t, backend.calls)
	assert.True(t, strings.HasPrefix(backend.calls[0], "create:"))

	sheetIdx := -1
	for i, c := range backend.calls {
		if strings.HasPrefix(c, "addsheet:") {
			sheetIdx = i
		}
	}
	require.GreaterOrEqual(t, sheetIdx, 0)
	for _, c := range backend.calls[sheetIdx+1:] {
		assert.True(t,
			strings.HasPrefix(c, "write:Instructions!") || strings.HasPrefix(c, "format:99:"),
			"unexpected call after instructions sheet: %s", c)
	}
}

func TestCreateFailsWhenCreateFails(t *testing.T) {
	backend := newFakeBackend()
	backend.createErr = errors.New("permission denied")
	g := testGenerator(backend)

	_, err := g.Create(t.Context(), Request{ClientName: "Acme", HorizonWeeks: 4})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create spreadsheet")

	// Nothing after the failed create.
	assert.Equal(t, []string{"create:Acme - Content Calendar"}, backend.calls)
}

func TestCreateFailsWhenWriteFails(t *testing.T) {
	backend := newFakeBackend()
	backend.writeErr = errors.New("permission denied")
	g := testGenerator(backend)

	_, err := g.Create(t.Context(), Request{ClientName: "Acme", HorizonWeeks: 4})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write headers")
}

func TestCreateSurvivesCosmeticFailures(t *testing.T) {
	backend := newFakeBackend()
	backend.widthsErr = errors.New("internal error")
	backend.validationErr = errors.New("internal error")
	g := testGenerator(backend)

	result, err := g.Create(t.Context(), Request{ClientName: "Acme", HorizonWeeks: 4})

	// Width and validation failures are warnings, not errors.
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, 1, backend.count("widths"))
	assert.Equal(t, 3, backend.count("validation:"))
	assert.Equal(t, 1, backend.count("addsheet:"))
}

func TestCreateNotIdempotent(t *testing.T) {
	backend := newFakeBackend()
	g := testGenerator(backend)

	req := Request{ClientName: "Acme", HorizonWeeks: 4}
	_, err := g.Create(t.Context(), req)
	require.NoError(t, err)
	_, err = g.Create(t.Context(), req)
	require.NoError(t, err)

	// Two runs with identical inputs issue two unconditional creates.
	assert.Equal(t, 2, backend.count("create:"))
}

func TestShare(t *testing.T) {
	backend := newFakeBackend()
	g := testGenerator(backend)

	require.NoError(t, g.Share(t.Context(), Spreadsheet{ID: "doc-1"}))
	assert.Equal(t, 1, backend.count("share"))

	backend.shareErr = errors.New("permission denied")
	err := g.Share(t.Context(), Spreadsheet{ID: "doc-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to share")
}
