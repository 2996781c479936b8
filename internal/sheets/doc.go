// Package sheets implements the calendar generator's backend against the
// Google Sheets and Drive APIs.
//
// The Client is the only code that talks to the remote services. Every call
// is funneled through the retry gateway, wrapped in a trace span and counted
// in the metrics, so failure handling and observability live in one place.
package sheets
