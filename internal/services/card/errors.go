package card

import (
	"fmt"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// MaxCommentLength bounds a single comment
const MaxCommentLength = 1000

// Validation errors
var (
	ErrMissingCardID   = models.NewValidationError("card_id", "cannot be empty")
	ErrCommentTooLong  = models.NewValidationError("comment", fmt.Sprintf("cannot exceed %d characters", MaxCommentLength))
	ErrUnknownList     = models.NewValidationError("list", "unknown list")
	ErrUnknownFromList = models.NewValidationError("from_list", "unknown list")
)

// notInListError reports a relocation whose source list is stale
func notInListError(actual types.ListID) error {
	return models.NewValidationError("from_list", fmt.Sprintf("card is currently in %q", actual))
}
