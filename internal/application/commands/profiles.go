package commands

import (
	"sort"

	"ordina/internal/config"
	"ordina/internal/domain"
)

// ProfileSummary is one configured folder profile, named.
type ProfileSummary struct {
	Name string
	Rule domain.ProfileRule
}

// ProfilesCommand lists the configured folder profiles.
type ProfilesCommand struct {
	cfg *config.Config
}

// NewProfilesCommand creates a new ProfilesCommand.
func NewProfilesCommand(cfg *config.Config) *ProfilesCommand {
	return &ProfilesCommand{cfg: cfg}
}

// Execute returns the profiles sorted by folder name. Configuration maps
// are unordered; sorting here keeps every surface's listing stable.
func (c *ProfilesCommand) Execute() []ProfileSummary {
	summaries := make([]ProfileSummary, 0, len(c.cfg.Folders))
	for name, rule := range c.cfg.Folders {
		summaries = append(summaries, ProfileSummary{Name: name, Rule: rule})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })
	return summaries
}
