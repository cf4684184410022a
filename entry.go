package readlog

import (
	"strconv"
	"strings"
	"time"
)

// Entry is a single reading log record for one URL.
type Entry struct {
	Category  Category
	Title     string
	Author    *string
	WordCount int
	URL       string
	Date      time.Time

	// IncludeDateHeader controls whether an article entry opens a new
	// same-day group. Ignored for books.
	IncludeDateHeader bool
}

// DateHeader returns the delimiter line that groups article entries read on
// the same day, e.g. "--- March 05, 2024 ---".
func DateHeader(date time.Time) string {
	return "--- " + date.Format("January 02, 2006") + " ---"
}

// FormatEntry renders an entry in the layout used by the hand-edited logs.
// The whitespace is significant and must not change.
func FormatEntry(e Entry) string {
	if e.Category == Book {
		return formatBook(e)
	}
	return formatArticle(e)
}

func formatArticle(e Entry) string {
	var b strings.Builder
	if e.IncludeDateHeader {
		b.WriteString("\n")
		b.WriteString(DateHeader(e.Date))
		b.WriteString("\n\n")
	}
	b.WriteString("-- Read: ")
	b.WriteString(e.Title)
	b.WriteString("\n")
	if e.Author != nil && *e.Author != "" {
		b.WriteString("   by ")
		b.WriteString(*e.Author)
		b.WriteString("\n")
	}
	b.WriteString("   ")
	b.WriteString(strconv.Itoa(e.WordCount))
	b.WriteString(" words\n\n")
	b.WriteString("- ")
	b.WriteString(e.URL)
	b.WriteString("\n")
	return b.String()
}

func formatBook(e Entry) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(e.Title)
	b.WriteString("\n")
	if e.Author != nil && *e.Author != "" {
		b.WriteString("   Author: ")
		b.WriteString(*e.Author)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString("   Start: ")
	b.WriteString(e.Date.Format("January 02"))
	b.WriteString("\n")
	b.WriteString("   End: ?\n")
	return b.String()
}
