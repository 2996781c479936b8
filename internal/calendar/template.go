package calendar

import (
	"fmt"
	"time"
)

// Headers is the first worksheet's header row, columns A through G.
var Headers = []string{
	"Date",
	"Time",
	"Platform",
	"Content Type",
	"Post Content",
	"Status",
	"Notes",
}

// ColumnWidths are the pixel widths for columns A through G.
var ColumnWidths = []int64{
	100, // Date
	80,  // Time
	100, // Platform
	120, // Content Type
	400, // Post Content
	100, // Status
	200, // Notes
}

// Dropdown option lists. The order is preserved in the rendered dropdowns.
var (
	Platforms = []string{
		"LinkedIn",
		"Facebook",
		"Instagram",
		"Twitter",
		"TikTok",
		"YouTube",
		"Blog",
		"Email",
	}

	ContentTypes = []string{
		"Image Post",
		"Video",
		"Carousel",
		"Story",
		"Text Post",
		"Reel",
		"Live Stream",
		"Poll",
	}

	Statuses = []string{
		"Planned",
		"Draft",
		"In Review",
		"Approved",
		"Scheduled",
		"Published",
		"Cancelled",
	}
)

// Column indices (zero-based) of the dropdown-validated columns.
const (
	platformColumn    = 2 // C
	contentTypeColumn = 3 // D
	statusColumn      = 5 // F
)

// Validation rules cover rows 2 through 1000 to catch future entries.
const (
	validationStartRow = 1
	validationEndRow   = 1000
)

const dateLayout = "2006-01-02"

// headerFormat is the title-row styling: blue background, bold white text,
// centered.
var headerFormat = CellFormat{
	Background:          &Color{Red: 0.2, Green: 0.6, Blue: 0.9},
	Bold:                true,
	Foreground:          &Color{Red: 1, Green: 1, Blue: 1},
	HorizontalAlignment: "CENTER",
}

// validationRules builds the three dropdown rules: platform (column C),
// content type (column D) and status (column F).
func validationRules() []ValidationRule {
	rule := func(column int64, values []string) ValidationRule {
		return ValidationRule{
			Column:   column,
			StartRow: validationStartRow,
			EndRow:   validationEndRow,
			Values:   values,
			Strict:   true,
		}
	}

	return []ValidationRule{
		rule(platformColumn, Platforms),
		rule(contentTypeColumn, ContentTypes),
		rule(statusColumn, Statuses),
	}
}

// sampleRows returns the three worked example rows, dated from today.
func sampleRows(today time.Time) [][]string {
	return [][]string{
		{
			today.Format(dateLayout),
			"09:00",
			"LinkedIn",
			"Image Post",
			"Share industry insights about digital marketing trends...",
			"Draft",
			"Need to add company logo",
		},
		{
			today.AddDate(0, 0, 1).Format(dateLayout),
			"14:30",
			"Instagram",
			"Story",
			"Behind-the-scenes content from team meeting",
			"Planned",
			"Coordinate with design team",
		},
		{
			today.AddDate(0, 0, 2).Format(dateLayout),
			"10:15",
			"Facebook",
			"Video",
			"Client testimonial video - case study feature",
			"In Review",
			"Waiting for client approval",
		},
	}
}

// planningRows returns empty scheduling rows, one per day, starting after the
// sample rows (day 3) and running to the end of the horizon.
func planningRows(today time.Time, weeks int) [][]string {
	rows := [][]string{}
	for day := 3; day < weeks*7; day++ {
		date := today.AddDate(0, 0, day)
		rows = append(rows, []string{date.Format(dateLayout), "", "", "", "", "Planned", ""})
	}
	return rows
}

// Instructions sheet layout.
const (
	instructionsTitle = "Instructions"
	instructionsRows  = 50
	instructionsCols  = 10
)

// instructionsContent is the static help text for the Instructions sheet,
// with the zero-based row indices of the section headings that get bold
// formatting.
func instructionsContent() (rows [][]string, headings []int64) {
	section := func(title string, lines ...[]string) {
		headings = append(headings, int64(len(rows)))
		rows = append(rows, []string{title})
		rows = append(rows, []string{""})
		rows = append(rows, lines...)
		rows = append(rows, []string{""})
	}

	rows = append(rows, []string{"Content Calendar Instructions"})
	rows = append(rows, []string{""})

	section("How to Use This Calendar:",
		[]string{"1. Date & Time", "Enter the scheduled publication date and time"},
		[]string{"2. Platform", "Select from the dropdown: LinkedIn, Facebook, Instagram, etc."},
		[]string{"3. Content Type", "Choose the format: Image Post, Video, Carousel, Story, etc."},
		[]string{"4. Post Content", "Write your post text, including hashtags and mentions"},
		[]string{"5. Status", "Track progress: Planned → Draft → In Review → Approved → Scheduled → Published"},
		[]string{"6. Notes", "Add any special instructions, asset needs, or reminders"},
	)

	section("Tips for Success:",
		[]string{"• Plan content 1-2 weeks in advance"},
		[]string{"• Keep post content concise but engaging"},
		[]string{"• Use the Notes column for asset requirements"},
		[]string{"• Update Status as content moves through workflow"},
		[]string{"• Coordinate with your Cadent Creative team for approvals"},
	)

	section("Content Guidelines:",
		[]string{"• Each platform has different optimal posting times"},
		[]string{"• Keep Instagram captions under 2,200 characters"},
		[]string{"• LinkedIn posts perform well with 150-300 words"},
		[]string{"• Include relevant hashtags for discoverability"},
		[]string{"• Always include a call-to-action when appropriate"},
	)

	// Drop the trailing spacer so the content block ends on a real line.
	rows = rows[:len(rows)-1]

	return rows, headings
}

// instructionsTitleFormat styles the title cell of the Instructions sheet.
var instructionsTitleFormat = CellFormat{
	Background: &Color{Red: 0.2, Green: 0.6, Blue: 0.9},
	Bold:       true,
	Foreground: &Color{Red: 1, Green: 1, Blue: 1},
	FontSize:   14,
}

// instructionsHeadingFormat styles the section headings.
var instructionsHeadingFormat = CellFormat{
	Bold:     true,
	FontSize: 12,
}

// rangeRef builds an A1-style range reference for n rows spanning columns
// A through the given last column letter, starting at startRow (1-based).
func rangeRef(sheet string, startRow, rows int, lastCol byte) string {
	prefix := ""
	if sheet != "" {
		prefix = sheet + "!"
	}
	return fmt.Sprintf("%sA%d:%c%d", prefix, startRow, lastCol, startRow+rows-1)
}
