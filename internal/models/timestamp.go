package models

import "time"

// CommentTimeLayout mirrors the browser's en-US toLocaleString() output.
// Stored timestamps are opaque; this layout only applies to new comments.
const CommentTimeLayout = "1/2/2006, 3:04:05 PM"

// FormatCommentTime renders t the way comment timestamps are persisted
func FormatCommentTime(t time.Time) string {
	return t.Format(CommentTimeLayout)
}

// NewComment stamps text with the given time
func NewComment(text string, at time.Time) Comment {
	return Comment{
		Timestamp: FormatCommentTime(at),
		Text:      text,
	}
}
