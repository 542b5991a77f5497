package domain

// ProfileRule is the configuration attached to a folder name: a free-form
// description plus include/exclude keyword lists. Folders without a rule
// get an empty profile and match by name only.
type ProfileRule struct {
	Description string   `yaml:"description"`
	Include     []string `yaml:"include"`
	Exclude     []string `yaml:"exclude"`
}

// FolderProfile pairs a candidate destination folder with its rule.
// FolderID is unique within a run's candidate set; Name need not be
// (duplicates are resolved by first-seen order downstream).
type FolderProfile struct {
	FolderID    string
	Name        string
	Description string
	Include     []string
	Exclude     []string
}

// BuildProfiles merges the listed sub-folders with the configured rules,
// preserving the enumeration order of folders. Rules are keyed by the
// folder's raw name; a missing rule yields an empty keyword profile.
func BuildProfiles(folders []Folder, rules map[string]ProfileRule) []FolderProfile {
	profiles := make([]FolderProfile, 0, len(folders))
	for _, f := range folders {
		p := FolderProfile{FolderID: f.ID, Name: f.Name}
		if r, ok := rules[f.Name]; ok {
			p.Description = r.Description
			p.Include = r.Include
			p.Exclude = r.Exclude
		}
		profiles = append(profiles, p)
	}
	return profiles
}
