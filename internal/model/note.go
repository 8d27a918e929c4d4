// Package model defines the core note data types.
package model

import (
	"strings"
	"time"
)

// TimeFormat is the fixed textual timestamp format used everywhere a note
// timestamp is stored or displayed.
const TimeFormat = "2006-01-02 15:04:05"

// PreviewWidth is the number of runes of content shown on list buttons.
const PreviewWidth = 30

// Note represents a stored note. Timestamps are carried as formatted strings
// so that a shared copy is byte-identical to the sender's record.
type Note struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	Pinned     bool   `json:"pinned"`
}

// Now returns the current local time in TimeFormat.
func Now() string {
	return time.Now().Format(TimeFormat)
}

// ExpandLines replaces the {line} placeholder with a literal newline.
// Applied to content before storage, never on read.
func ExpandLines(s string) string {
	return strings.ReplaceAll(s, "{line}", "\n")
}

// Preview returns the first PreviewWidth runes of content followed by an
// ellipsis marker, for use in list button labels.
func Preview(content string) string {
	r := []rune(content)
	if len(r) > PreviewWidth {
		r = r[:PreviewWidth]
	}
	return string(r) + "..."
}
