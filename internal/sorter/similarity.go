package sorter

import (
	"github.com/xrash/smetrics"

	"ordina/internal/domain"
)

// Ratio computes a normalized edit-distance similarity between two
// strings after normalization. With insert/delete cost 1 and substitute
// cost 2, Wagner-Fischer over the pair gives the classic
// 2*matches/(len(a)+len(b)) sequence ratio in [0,1]. Lengths and
// distance are measured in runes, so a multi-byte character weighs the
// same as an ASCII one.
func Ratio(a, b string) float64 {
	na, nb := foldAlphabet(domain.Normalize(a), domain.Normalize(b))
	total := len(na) + len(nb)
	if total == 0 {
		return 0
	}
	d := smetrics.WagnerFischer(na, nb, 1, 1, 2)
	return 1 - float64(d)/float64(total)
}

// foldAlphabet maps each distinct rune of the pair to a single byte so
// the byte-wise edit distance counts characters, not encoded bytes.
// Only rune equality matters for the distance, so the mapping itself is
// arbitrary. Normalized names stay far below the 256 distinct runes the
// fold can represent; past that the raw strings are compared instead.
func foldAlphabet(a, b string) (string, string) {
	codes := make(map[rune]byte)
	fold := func(s string) string {
		out := make([]byte, 0, len(s))
		for _, r := range s {
			c, ok := codes[r]
			if !ok {
				c = byte(len(codes))
				codes[r] = c
			}
			out = append(out, c)
		}
		return string(out)
	}
	fa, fb := fold(a), fold(b)
	if len(codes) > 256 {
		return a, b
	}
	return fa, fb
}

// BestSimilar returns the profile whose name is most similar to the
// title, accepted only when its ratio meets the threshold. Ties keep the
// first-enumerated profile.
func BestSimilar(title string, profiles []domain.FolderProfile, threshold float64) (domain.FolderProfile, float64, bool) {
	var best domain.FolderProfile
	bestRatio := 0.0
	found := false
	for _, p := range profiles {
		r := Ratio(title, p.Name)
		if r > bestRatio {
			best, bestRatio, found = p, r, true
		}
	}
	if !found || bestRatio < threshold {
		return domain.FolderProfile{}, bestRatio, false
	}
	return best, bestRatio, true
}
