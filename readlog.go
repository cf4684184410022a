// Package readlog logs reading material to a date-organized plain-text
// reading log. It fetches a page, extracts its readable text and metadata,
// classifies it as an article or a book by length, and appends a formatted
// entry to the month's log file.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, fs/).
package readlog
