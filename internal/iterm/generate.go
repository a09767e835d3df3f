package iterm

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/emmapowers/ssh-colors/internal/logging"
	"github.com/emmapowers/ssh-colors/internal/sshconf"
)

// document is the top-level shape iTerm2 expects from a dynamic
// profiles file.
type document struct {
	Profiles []Profile `json:"Profiles"`
}

// BuildProfiles constructs profiles for every record with a terminal
// color, in input order. Records without one are skipped.
func BuildProfiles(records []sshconf.HostRecord, homeDir string) ([]Profile, error) {
	profiles := make([]Profile, 0, len(records))

	for _, rec := range records {
		if rec.TerminalColor == "" {
			continue
		}

		profile, err := ProfileForHost(rec, homeDir)
		if err != nil {
			return nil, fmt.Errorf("profile for host %q: %w", rec.Host, err)
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

// Generate writes the combined dynamic profiles file into outputDir,
// creating the directory if needed, and returns the number of profiles
// written.
func Generate(records []sshconf.HostRecord, outputDir string) (int, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return 0, fmt.Errorf("failed to resolve home directory: %w", err)
	}

	profiles, err := BuildProfiles(records, homeDir)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", outputDir, err)
	}

	data, err := json.MarshalIndent(document{Profiles: profiles}, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to encode profiles: %w", err)
	}

	outputFile := filepath.Join(outputDir, ProfilesFileName)
	if err := os.WriteFile(outputFile, data, 0644); err != nil {
		return 0, err
	}

	logging.Debug("wrote dynamic profiles", "file", outputFile, "count", len(profiles))
	return len(profiles), nil
}
