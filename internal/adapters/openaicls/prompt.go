package openaicls

import (
	"fmt"
	"strings"

	"ordina/internal/domain"
)

// foldProfiles renders the candidate list the model chooses from. The
// formatting is deterministic: same profiles in, same prompt out, so the
// set of valid labels is exactly the set of current folder names.
func foldProfiles(profiles []domain.FolderProfile) string {
	var b strings.Builder
	for _, p := range profiles {
		b.WriteString("- ")
		b.WriteString(p.Name)
		if p.Description != "" {
			b.WriteString(" : ")
			b.WriteString(p.Description)
		}
		if len(p.Include) > 0 {
			b.WriteString(fmt.Sprintf(" (related keywords: %s)", strings.Join(p.Include, ", ")))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func buildTitlePrompt(name string, profiles []domain.FolderProfile) string {
	return fmt.Sprintf(`You are a document filing assistant.
Look at the file name and the candidate folders below and pick the single most appropriate folder.

File name: %s
Candidate folders:
%s

Answer with exactly one candidate folder name on a single line, copied verbatim.
Do not add explanations, summaries, or any other text.
If none of the candidates fits, answer with exactly "NONE".`, name, foldProfiles(profiles))
}

func buildContentPrompt(name, text string, profiles []domain.FolderProfile) string {
	return fmt.Sprintf(`You are a document filing assistant.
Decide which single folder the file below belongs to.

File name: %s
Candidate folders:
%s
File content (consult as needed):
%s

Answer with exactly one candidate folder name on a single line, copied verbatim.
Do not add explanations, summaries, or any other text.
If none of the candidates fits, answer with exactly "NONE".`, name, foldProfiles(profiles), text)
}
