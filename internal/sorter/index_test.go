package sorter

import (
	"testing"

	"ordina/internal/domain"
)

func testIndex() *Index {
	folders := []domain.Folder{
		{ID: "f1", Name: "Invoices"},
		{ID: "f2", Name: "Tax Returns"},
		{ID: "f3", Name: "Receipts"},
	}
	return NewIndex(folders, nil)
}

func TestIndex_Empty(t *testing.T) {
	if testIndex().Empty() {
		t.Error("index with folders should not be empty")
	}
	if !NewIndex(nil, nil).Empty() {
		t.Error("index without folders should be empty")
	}
}

func TestSubstringMatch_NormalizedView(t *testing.T) {
	// "Tax Returns" only matches "2024_TaxReturns.pdf" after whitespace
	// stripping on both sides.
	prof, ok := testIndex().SubstringMatch("2024_TaxReturns.pdf")
	if !ok {
		t.Fatal("expected a substring match")
	}
	if prof.FolderID != "f2" {
		t.Errorf("expected Tax Returns, got %s", prof.Name)
	}
}

func TestSubstringMatch_CaseInsensitiveView(t *testing.T) {
	prof, ok := testIndex().SubstringMatch("scan invoices march.pdf")
	if !ok {
		t.Fatal("expected a substring match")
	}
	if prof.FolderID != "f1" {
		t.Errorf("expected Invoices, got %s", prof.Name)
	}
}

func TestSubstringMatch_FirstProfileWins(t *testing.T) {
	// Both folder names occur in the file name; enumeration order decides.
	prof, ok := testIndex().SubstringMatch("receipts and invoices.zip")
	if !ok {
		t.Fatal("expected a substring match")
	}
	if prof.FolderID != "f1" {
		t.Errorf("expected first-enumerated Invoices, got %s", prof.Name)
	}
}

func TestSubstringMatch_NoMatch(t *testing.T) {
	if _, ok := testIndex().SubstringMatch("holiday_photo.jpg"); ok {
		t.Error("expected no match")
	}
}

func TestMatchLabel_NormalizedEquality(t *testing.T) {
	prof, ok := testIndex().MatchLabel("tax returns")
	if !ok {
		t.Fatal("expected a label match")
	}
	if prof.FolderID != "f2" {
		t.Errorf("expected Tax Returns, got %s", prof.Name)
	}
}

func TestMatchLabel_SubstringEitherDirection(t *testing.T) {
	idx := testIndex()

	// Label contains the folder name.
	prof, ok := idx.MatchLabel("Invoices (billing)")
	if !ok || prof.FolderID != "f1" {
		t.Errorf("expected Invoices for superset label, got %+v ok=%v", prof, ok)
	}

	// Folder name contains the label.
	prof, ok = idx.MatchLabel("Receipt")
	if !ok || prof.FolderID != "f3" {
		t.Errorf("expected Receipts for subset label, got %+v ok=%v", prof, ok)
	}
}

func TestMatchLabel_UnknownLabel(t *testing.T) {
	if _, ok := testIndex().MatchLabel("Vacation"); ok {
		t.Error("expected no match for an unknown label")
	}
	if _, ok := testIndex().MatchLabel(""); ok {
		t.Error("expected no match for an empty label")
	}
}

func TestMatchLabel_DuplicateNamesResolveToFirst(t *testing.T) {
	folders := []domain.Folder{
		{ID: "a", Name: "Invoices"},
		{ID: "b", Name: "invoices"},
	}
	prof, ok := NewIndex(folders, nil).MatchLabel("Invoices")
	if !ok || prof.FolderID != "a" {
		t.Errorf("expected first duplicate to win, got %+v ok=%v", prof, ok)
	}
}
