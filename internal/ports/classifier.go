package ports

import (
	"context"

	"ordina/internal/domain"
)

// Decision is the tagged outcome of a classifier call. The remote model
// answers with a folder label or the literal "NONE"; that sentinel stops
// at the adapter boundary and becomes Resolved=false here.
type Decision struct {
	Label    string
	Resolved bool
}

// Unresolved is the Decision for a "NONE" or empty answer.
var Unresolved = Decision{}

// Classifier wraps the remote label-inference capability. Both calls are
// single request/response with no retry inside the adapter; transport
// failures are returned as errors, never swallowed.
type Classifier interface {
	// ClassifyByTitle picks a candidate folder from the file name alone.
	ClassifyByTitle(ctx context.Context, name string, profiles []domain.FolderProfile) (Decision, error)

	// ClassifyByContent picks a candidate folder from the file name plus
	// extracted (already truncated) text.
	ClassifyByContent(ctx context.Context, name, text string, profiles []domain.FolderProfile) (Decision, error)
}
