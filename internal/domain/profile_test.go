package domain

import "testing"

func TestBuildProfiles_PreservesFolderOrder(t *testing.T) {
	folders := []Folder{
		{ID: "f3", Name: "Receipts"},
		{ID: "f1", Name: "Invoices"},
		{ID: "f2", Name: "Contracts"},
	}

	profiles := BuildProfiles(folders, nil)

	if len(profiles) != 3 {
		t.Fatalf("expected 3 profiles, got %d", len(profiles))
	}
	for i, want := range []string{"Receipts", "Invoices", "Contracts"} {
		if profiles[i].Name != want {
			t.Errorf("profile %d: expected %s, got %s", i, want, profiles[i].Name)
		}
	}
}

func TestBuildProfiles_MergesRules(t *testing.T) {
	folders := []Folder{
		{ID: "f1", Name: "Invoices"},
		{ID: "f2", Name: "Misc"},
	}
	rules := map[string]ProfileRule{
		"Invoices": {
			Description: "Billing documents",
			Include:     []string{"invoice", "fattura"},
			Exclude:     []string{"draft"},
		},
	}

	profiles := BuildProfiles(folders, rules)

	if profiles[0].Description != "Billing documents" {
		t.Errorf("expected rule description to be merged, got %q", profiles[0].Description)
	}
	if len(profiles[0].Include) != 2 || len(profiles[0].Exclude) != 1 {
		t.Errorf("expected keywords to be merged, got include=%v exclude=%v",
			profiles[0].Include, profiles[0].Exclude)
	}

	// Folder without a rule gets an empty profile, not an error.
	if profiles[1].Description != "" || len(profiles[1].Include) != 0 {
		t.Errorf("expected empty profile for unruled folder, got %+v", profiles[1])
	}
}

func TestBuildProfiles_Empty(t *testing.T) {
	profiles := BuildProfiles(nil, map[string]ProfileRule{"Orphan": {}})
	if len(profiles) != 0 {
		t.Errorf("expected no profiles without folders, got %d", len(profiles))
	}
}
