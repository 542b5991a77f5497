package commands

import (
	"context"
	"testing"

	"ordina/internal/config"
	"ordina/internal/domain"
	"ordina/internal/sorter"
)

type stubStorage struct {
	folders []domain.Folder
	files   []domain.FileItem
	moves   int
}

func (s *stubStorage) ListSubfolders(_ context.Context, _ string) ([]domain.Folder, error) {
	return s.folders, nil
}

func (s *stubStorage) ListFiles(_ context.Context, _ string) ([]domain.FileItem, error) {
	return s.files, nil
}

func (s *stubStorage) GetMeta(_ context.Context, _ string) (domain.FileItem, error) {
	return domain.FileItem{}, nil
}

func (s *stubStorage) Download(_ context.Context, _ string) ([]byte, error) {
	return nil, nil
}

func (s *stubStorage) Move(_ context.Context, _, _ string) ([]string, error) {
	s.moves++
	return nil, nil
}

func TestSortCommand_Validate(t *testing.T) {
	cmd := NewSortCommand(nil, "")
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected validation error for empty parent ID")
	}

	cmd = NewSortCommand(nil, "parent")
	if err := cmd.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestSortCommand_Execute(t *testing.T) {
	storage := &stubStorage{
		folders: []domain.Folder{{ID: "f1", Name: "Invoices"}},
		files:   []domain.FileItem{{ID: "1", Name: "acme invoices.pdf"}},
	}
	pipeline := sorter.New(storage, nil, nil, nil, nil, sorter.Options{Concurrency: 1}, nil)

	report, err := NewSortCommand(pipeline, "parent").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(report.Moved) != 1 {
		t.Fatalf("expected 1 move, got %+v", report)
	}
	if storage.moves != 1 {
		t.Errorf("expected the move to be applied, got %d", storage.moves)
	}
}

func TestSortCommand_ExecuteRejectsEmptyParent(t *testing.T) {
	if _, err := NewSortCommand(nil, "").Execute(context.Background()); err == nil {
		t.Fatal("expected an error for empty parent ID")
	}
}

func TestProfilesCommand_SortsByName(t *testing.T) {
	cfg := &config.Config{Folders: map[string]domain.ProfileRule{
		"Receipts": {},
		"Invoices": {Include: []string{"invoice"}},
	}}

	summaries := NewProfilesCommand(cfg).Execute()
	if len(summaries) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(summaries))
	}
	if summaries[0].Name != "Invoices" || summaries[1].Name != "Receipts" {
		t.Errorf("expected name order, got %+v", summaries)
	}
	if len(summaries[0].Rule.Include) != 1 {
		t.Errorf("rule not carried: %+v", summaries[0])
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Sorter.SimilarityThreshold = 0.9
	cfg.Sorter.MaxAICalls = 3
	cfg.Sorter.Concurrency = 2

	opts := OptionsFromConfig(cfg)
	if opts.SimilarityThreshold != 0.9 || opts.MaxAICalls != 3 || opts.Concurrency != 2 {
		t.Errorf("config knobs not carried over: %+v", opts)
	}
	if opts.DryRun {
		t.Error("config must not imply dry run")
	}
}
