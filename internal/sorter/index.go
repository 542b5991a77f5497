// Package sorter implements the classification-and-routing decision
// pipeline: given the files directly under a parent folder and the
// sub-folders that represent categories, decide where each file belongs
// using an ordered fallback chain of increasingly expensive strategies,
// and move it there.
package sorter

import (
	"strings"

	"ordina/internal/domain"
)

// Index holds the candidate destination profiles in enumeration order,
// plus a normalized-name lookup. The order is part of the contract: it
// breaks ties everywhere a linear scan runs.
type Index struct {
	profiles []domain.FolderProfile
	byNorm   map[string]int // normalized name -> first-seen profile position
}

// NewIndex builds the lookup views over the candidate folders merged with
// their configured rules. An empty folder set yields an index that always
// reports "no destination".
func NewIndex(folders []domain.Folder, rules map[string]domain.ProfileRule) *Index {
	profiles := domain.BuildProfiles(folders, rules)
	byNorm := make(map[string]int, len(profiles))
	for i, p := range profiles {
		key := domain.Normalize(p.Name)
		if _, seen := byNorm[key]; !seen {
			byNorm[key] = i
		}
	}
	return &Index{profiles: profiles, byNorm: byNorm}
}

// Empty reports whether there are no candidate destinations.
func (ix *Index) Empty() bool { return len(ix.profiles) == 0 }

// Profiles returns the candidates in enumeration order.
func (ix *Index) Profiles() []domain.FolderProfile { return ix.profiles }

// SubstringMatch returns the first profile whose name occurs inside the
// file name, checking the normalized view first and the case-insensitive
// view second for each candidate.
func (ix *Index) SubstringMatch(fileName string) (domain.FolderProfile, bool) {
	normName := domain.Normalize(fileName)
	lowerName := strings.ToLower(fileName)
	for _, p := range ix.profiles {
		if norm := domain.Normalize(p.Name); norm != "" && strings.Contains(normName, norm) {
			return p, true
		}
		if lower := strings.ToLower(p.Name); lower != "" && strings.Contains(lowerName, lower) {
			return p, true
		}
	}
	return domain.FolderProfile{}, false
}

// MatchLabel maps a classifier label back to a candidate folder: by
// normalized equality first, then by substring in either direction.
func (ix *Index) MatchLabel(label string) (domain.FolderProfile, bool) {
	normLabel := domain.Normalize(label)
	if normLabel == "" {
		return domain.FolderProfile{}, false
	}
	if i, ok := ix.byNorm[normLabel]; ok {
		return ix.profiles[i], true
	}
	for _, p := range ix.profiles {
		norm := domain.Normalize(p.Name)
		if norm == "" {
			continue
		}
		if strings.Contains(normLabel, norm) || strings.Contains(norm, normLabel) {
			return p, true
		}
	}
	return domain.FolderProfile{}, false
}
