package application

import (
	"errors"
	"fmt"
)

// ErrAILimit is matched with errors.Is against LimitError to detect the
// AI call ceiling.
var ErrAILimit = errors.New("ai call limit reached")

// ValidationError represents an invalid run request. It is the only error
// class surfaced to the caller as a hard failure; everything else degrades
// to a reported skip.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// LimitError represents a run cost ceiling being hit.
type LimitError struct {
	Limit string // "ai_calls", "file_bytes"
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("limit reached: %s", e.Limit)
}

func (e *LimitError) Is(target error) bool {
	return target == ErrAILimit && e.Limit == "ai_calls"
}

// CapabilityError wraps the failure of one capability (download,
// extract, classify, move) while processing a single file. It always
// degrades to a reason-coded skip for that file, never a run abort.
type CapabilityError struct {
	Capability string
	FileID     string
	Err        error
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("%s failed for %s: %v", e.Capability, e.FileID, e.Err)
}

func (e *CapabilityError) Unwrap() error { return e.Err }
