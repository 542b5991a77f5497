package commands

import (
	"context"

	"ordina/internal/application"
	"ordina/internal/domain"
	"ordina/internal/sorter"
)

// SortCommand routes every file directly under a parent folder into its
// category sub-folder.
type SortCommand struct {
	pipeline *sorter.Pipeline
	ParentID string
}

// NewSortCommand creates a new SortCommand.
func NewSortCommand(pipeline *sorter.Pipeline, parentID string) *SortCommand {
	return &SortCommand{pipeline: pipeline, ParentID: parentID}
}

// Validate checks the run request before any listing happens.
func (c *SortCommand) Validate() error {
	return application.ValidateRequired("parentID", c.ParentID)
}

// Execute runs the sort and returns the report. The report is returned
// whenever the run started, even if every file was skipped.
func (c *SortCommand) Execute(ctx context.Context) (*domain.SortReport, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.pipeline.Route(ctx, c.ParentID)
}
