package sorter

import (
	"strings"

	"ordina/internal/domain"
)

// RejectScore is returned when an exclude keyword matched. It is strictly
// below every acceptable score, so an excluded profile can never win even
// if its include keywords also match.
const RejectScore = -1.0

// Score rates how well a subject string fits one profile. Exclude
// keywords short-circuit to RejectScore before includes are looked at.
// Each matching include keyword counts +1; with no include hits the
// profile's own name occurring in the subject is worth +0.5. Zero or
// negative scores never select a destination.
func Score(subject string, p domain.FolderProfile) float64 {
	norm := domain.Normalize(subject)

	for _, kw := range p.Exclude {
		k := domain.Normalize(kw)
		if k != "" && strings.Contains(norm, k) {
			return RejectScore
		}
	}

	score := 0.0
	for _, kw := range p.Include {
		k := domain.Normalize(kw)
		if k != "" && strings.Contains(norm, k) {
			score++
		}
	}
	if score == 0 {
		if name := domain.Normalize(p.Name); name != "" && strings.Contains(norm, name) {
			score = 0.5
		}
	}
	return score
}

// BestMatch returns the highest positively scoring profile for the
// subject. Ties go to the profile enumerated first: a later profile must
// score strictly higher to displace the current best.
func BestMatch(subject string, profiles []domain.FolderProfile) (domain.FolderProfile, float64, bool) {
	var best domain.FolderProfile
	bestScore := 0.0
	found := false
	for _, p := range profiles {
		s := Score(subject, p)
		if s > bestScore {
			best, bestScore, found = p, s, true
		}
	}
	return best, bestScore, found
}
