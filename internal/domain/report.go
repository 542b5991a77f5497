package domain

import (
	"fmt"
	"sort"
	"time"
)

// Method identifies the pipeline stage that decided a file's destination.
type Method string

const (
	MethodTitleRule       Method = "title_rule"
	MethodTitleSubstring  Method = "title_substring"
	MethodTitleSimilarity Method = "title_similarity"
	MethodTitleAI         Method = "title_ai"
	MethodCache           Method = "cache"
	MethodContentRule     Method = "content_rule"
	MethodContentAI       Method = "content_ai"
)

// Skip reason codes. Codes carrying a detail are built with Reason.
const (
	ReasonNoMatch        = "no_match"
	ReasonNoCandidates   = "no_candidates"
	ReasonAILimit        = "ai_limit_reached"
	ReasonAINone         = "ai_returned_none"
	ReasonTooLarge       = "too_large"
	ReasonDownloadFailed = "download_failed"
	ReasonClassifyFailed = "classify_failed"
	ReasonMoveFailed     = "move_failed"
)

// Reason joins a reason code with its underlying detail, e.g.
// "move_failed:insufficient permissions".
func Reason(code, detail string) string {
	if detail == "" {
		return code
	}
	return fmt.Sprintf("%s:%s", code, detail)
}

// ClassificationResult is the terminal outcome of the fallback chain for
// one file. FolderID is set only when a destination was resolved.
type ClassificationResult struct {
	Method   Method
	Label    string
	FolderID string
}

// Resolved reports whether a destination folder was decided.
func (r ClassificationResult) Resolved() bool { return r.FolderID != "" }

// MoveRecord describes one successfully routed file.
type MoveRecord struct {
	FileID   string `json:"file_id"`
	Name     string `json:"name"`
	DestID   string `json:"to_folder_id"`
	DestName string `json:"to_folder"`
	Category string `json:"category"`
	Method   Method `json:"method"`
}

// SkipRecord describes one file the run could not route, with a reason code.
type SkipRecord struct {
	FileID string `json:"file_id"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// SortReport is the sole externally observable output of a run.
type SortReport struct {
	RunID    string        `json:"run_id"`
	ParentID string        `json:"parent_id"`
	DryRun   bool          `json:"dry_run"`
	Moved    []MoveRecord  `json:"moved"`
	Skipped  []SkipRecord  `json:"skipped"`
	AICalls  int           `json:"ai_calls"`
	Duration time.Duration `json:"duration_ns"`
}

// Sort orders both record lists by file ID. Workers finish in no
// particular order; callers that need a stable report resequence it here.
func (r *SortReport) Sort() {
	sort.Slice(r.Moved, func(i, j int) bool { return r.Moved[i].FileID < r.Moved[j].FileID })
	sort.Slice(r.Skipped, func(i, j int) bool { return r.Skipped[i].FileID < r.Skipped[j].FileID })
}

// Summary returns a one-line human summary of the run.
func (r *SortReport) Summary() string {
	return fmt.Sprintf("moved %d, skipped %d (ai calls: %d)", len(r.Moved), len(r.Skipped), r.AICalls)
}
