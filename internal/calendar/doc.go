// Package calendar generates the content-calendar spreadsheet: the template
// content (headers, sample rows, dropdown lists, instructions) and the fixed
// sequence of backend calls that lays it out in a new document.
//
// The package is backend-agnostic: it drives the Backend interface, which the
// sheets package implements against the Google Sheets API.
package calendar
