package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadentdev/content-calendar-template/internal/calendar"
	"github.com/cadentdev/content-calendar-template/internal/google"
)

func TestConvertFormatHeader(t *testing.T) {
	format := calendar.CellFormat{
		Background:          &calendar.Color{Red: 0.2, Green: 0.6, Blue: 0.9},
		Bold:                true,
		Foreground:          &calendar.Color{Red: 1, Green: 1, Blue: 1},
		HorizontalAlignment: "CENTER",
	}

	cf, fields := convertFormat(format)

	require.NotNil(t, cf.BackgroundColor)
	assert.Equal(t, 0.2, cf.BackgroundColor.Red)
	assert.Equal(t, 0.6, cf.BackgroundColor.Green)
	assert.Equal(t, 0.9, cf.BackgroundColor.Blue)

	require.NotNil(t, cf.TextFormat)
	assert.True(t, cf.TextFormat.Bold)
	require.NotNil(t, cf.TextFormat.ForegroundColor)
	assert.Equal(t, 1.0, cf.TextFormat.ForegroundColor.Red)

	assert.Equal(t, "CENTER", cf.HorizontalAlignment)
	assert.Equal(t, "userEnteredFormat(backgroundColor,textFormat(bold,foregroundColor),horizontalAlignment)", fields)
}

func TestConvertFormatHeadingOnly(t *testing.T) {
	format := calendar.CellFormat{
		Bold:     true,
		FontSize: 12,
	}

	cf, fields := convertFormat(format)

	assert.Nil(t, cf.BackgroundColor)
	require.NotNil(t, cf.TextFormat)
	assert.True(t, cf.TextFormat.Bold)
	assert.Equal(t, int64(12), cf.TextFormat.FontSize)
	assert.Empty(t, cf.HorizontalAlignment)
	assert.Equal(t, "userEnteredFormat(textFormat(bold,fontSize))", fields)
}

func TestConvertFormatTitleWithFontSize(t *testing.T) {
	format := calendar.CellFormat{
		Background: &calendar.Color{Red: 0.2, Green: 0.6, Blue: 0.9},
		Bold:       true,
		Foreground: &calendar.Color{Red: 1, Green: 1, Blue: 1},
		FontSize:   14,
	}

	cf, fields := convertFormat(format)

	require.NotNil(t, cf.TextFormat)
	assert.Equal(t, int64(14), cf.TextFormat.FontSize)
	assert.Equal(t, "userEnteredFormat(backgroundColor,textFormat(bold,foregroundColor,fontSize))", fields)
}

func TestGridRange(t *testing.T) {
	gr := gridRange(42, calendar.Box{StartRow: 1, EndRow: 1000, StartCol: 2, EndCol: 3})

	assert.Equal(t, int64(42), gr.SheetId)
	assert.Equal(t, int64(1), gr.StartRowIndex)
	assert.Equal(t, int64(1000), gr.EndRowIndex)
	assert.Equal(t, int64(2), gr.StartColumnIndex)
	assert.Equal(t, int64(3), gr.EndColumnIndex)
}

func TestNewClientRejectsInvalidConfig(t *testing.T) {
	config := google.Config{
		Workdir:         t.TempDir(),
		CredentialsFile: "../credentials.json",
		TokenFile:       "token.json",
	}

	_, err := NewClient(t.Context(), config, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials file")
}

func TestNewClientMissingCredentials(t *testing.T) {
	config := google.Config{
		Workdir:         t.TempDir(),
		CredentialsFile: "credentials.json",
		TokenFile:       "token.json",
	}

	_, err := NewClient(t.Context(), config, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credentials file not found")
}

// The Client must satisfy the generator's backend contract.
var _ calendar.Backend = (*Client)(nil)
