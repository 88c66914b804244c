package models

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_MatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"validation", NewValidationError("title", "cannot be empty"), ErrValidation},
		{"not found", &NotFoundError{CardID: "card-9"}, ErrNotFound},
		{"wip", &WipLimitExceededError{ListID: "wip", Limit: 1, Count: 1}, ErrWipLimitExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("operation failed: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	assert.False(t, errors.Is(&NotFoundError{CardID: "x"}, ErrValidation))
	assert.False(t, errors.Is(NewValidationError("list", "unknown"), ErrWipLimitExceeded))
	assert.False(t, errors.Is(&WipLimitExceededError{}, ErrNotFound))
}

func TestErrors_Messages(t *testing.T) {
	assert.Equal(t, "invalid title: cannot be empty", NewValidationError("title", "cannot be empty").Error())
	assert.Equal(t, `card "card-3" not found`, (&NotFoundError{CardID: "card-3"}).Error())
	assert.Equal(t, `list "wip" is at its wip limit (1/1)`,
		(&WipLimitExceededError{ListID: "wip", Limit: 1, Count: 1}).Error())
}

// ============================================================================
// Card Tests
// ============================================================================

func TestCardFields_Validate(t *testing.T) {
	assert.ErrorIs(t, CardFields{}.Validate(), ErrValidation)
	assert.ErrorIs(t, CardFields{Title: "   "}.Validate(), ErrValidation)
	assert.NoError(t, CardFields{Title: "Write docs"}.Validate())
	assert.NoError(t, CardFields{Title: strings.Repeat("é", 150)}.Validate())
	assert.NoError(t, CardFields{Title: strings.Repeat("x", MaxTitleLength+1)}.Validate())
}

func TestCard_CloneDoesNotAliasComments(t *testing.T) {
	c := Card{ID: "card-1", Title: "a", Comments: []Comment{{Timestamp: "t", Text: "one"}}}
	clone := c.Clone()
	clone.Comments[0].Text = "changed"
	clone.Comments = append(clone.Comments, Comment{Text: "two"})

	assert.Equal(t, "one", c.Comments[0].Text)
	assert.Len(t, c.Comments, 1)
}

func TestCard_ApplyAndFields(t *testing.T) {
	var c Card
	f := CardFields{Title: "T", Description: "D", Assigned: "A", Priority: PriorityHigh}
	c.Apply(f)
	assert.Equal(t, f, c.Fields())
}

func TestSnapshot_Find(t *testing.T) {
	s := Snapshot{
		"backlog": {{ID: "card-1"}},
		"done":    {{ID: "card-2"}},
	}
	c, listID, ok := s.Find("card-2")
	assert.True(t, ok)
	assert.Equal(t, "done", listID.String())
	assert.Equal(t, "card-2", c.ID.String())

	_, _, ok = s.Find("card-3")
	assert.False(t, ok)
	assert.Equal(t, 2, s.CardCount())
}

func TestFormatCommentTime(t *testing.T) {
	at := time.Date(2024, time.July, 1, 14, 5, 9, 0, time.UTC)
	assert.Equal(t, "7/1/2024, 2:05:09 PM", FormatCommentTime(at))
	assert.Equal(t, Comment{Timestamp: "7/1/2024, 2:05:09 PM", Text: "hi"}, NewComment("hi", at))
}
