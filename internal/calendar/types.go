package calendar

// Request describes one calendar to generate. It is built from validated
// input, immutable once constructed and consumed by a single Create call.
type Request struct {
	// ClientName is the sanitized client label used in the spreadsheet title.
	ClientName string

	// HorizonWeeks is the number of weeks of planning rows to pre-populate,
	// clamped to [1, 52] by the validator.
	HorizonWeeks int
}

// Spreadsheet is the handle returned by the backend for a created document.
type Spreadsheet struct {
	// ID is the backend document identifier.
	ID string

	// URL is the sharable locator for the document.
	URL string

	// SheetID is the grid identifier of the first worksheet.
	SheetID int64
}

// Color is an RGB color with components in [0, 1], matching the backend's
// color model.
type Color struct {
	Red   float64
	Green float64
	Blue  float64
}

// CellFormat describes the visual formatting applied to a range. Nil colors,
// a zero font size and an empty alignment leave the corresponding property
// untouched.
type CellFormat struct {
	Background          *Color
	Bold                bool
	Foreground          *Color
	FontSize            int64
	HorizontalAlignment string
}

// Box is a rectangular cell region in grid coordinates: zero-based,
// half-open on both axes.
type Box struct {
	StartRow int64
	EndRow   int64
	StartCol int64
	EndCol   int64
}

// ValidationRule is a declarative dropdown constraint for a column range:
// cell values are restricted to the enumerated list, enforced strictly and
// rendered with the backend's dropdown UI.
type ValidationRule struct {
	// Column is the zero-based column index the rule applies to.
	Column int64

	// StartRow and EndRow bound the rule's rows (zero-based, half-open).
	StartRow int64
	EndRow   int64

	// Values is the ordered list of allowed values.
	Values []string

	// Strict rejects values outside the list instead of flagging them.
	Strict bool
}
