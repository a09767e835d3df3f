package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/emmapowers/ssh-colors/internal/errors"
)

// Relative locations under the user's home directory. These match the
// paths the tool has always written to; the settings file and CLI flags
// can override each of them.
const (
	DefaultSSHConfigRel     = ".ssh/config"
	DefaultProfilesDirRel   = "Library/Application Support/iTerm2/DynamicProfiles"
	DefaultWorkspacesDirRel = ".ssh/workspaces"
	SettingsFileRel         = ".config/ssh-colors/config.toml"
)

// Paths holds the resolved input and output locations for a sync run.
// Components receive a Paths value explicitly rather than consulting
// globals, so tests can point them at temporary directories.
type Paths struct {
	// SSHConfig is the SSH client configuration file to parse.
	SSHConfig string

	// ProfilesDir receives the combined iTerm2 dynamic profiles JSON.
	ProfilesDir string

	// WorkspacesDir receives one .code-workspace file per host.
	WorkspacesDir string
}

// Validate checks that all paths are set.
func (p *Paths) Validate() error {
	if p.SSHConfig == "" {
		return fmt.Errorf("SSH config path is required")
	}
	if p.ProfilesDir == "" {
		return fmt.Errorf("profiles directory is required")
	}
	if p.WorkspacesDir == "" {
		return fmt.Errorf("workspaces directory is required")
	}
	return nil
}

// DefaultPaths returns the conventional home-directory locations.
func DefaultPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}

	return &Paths{
		SSHConfig:     filepath.Join(home, DefaultSSHConfigRel),
		ProfilesDir:   filepath.Join(home, DefaultProfilesDirRel),
		WorkspacesDir: filepath.Join(home, DefaultWorkspacesDirRel),
	}, nil
}

// SettingsPath returns the location of the optional settings file.
func SettingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, SettingsFileRel), nil
}

// Settings is the optional on-disk configuration. Every field is
// optional; unset fields leave the corresponding default in place.
type Settings struct {
	SSHConfig     string `toml:"ssh_config"`
	ProfilesDir   string `toml:"profiles_dir"`
	WorkspacesDir string `toml:"workspaces_dir"`
}

// LoadSettings reads the settings file at path. A missing file is not
// an error and yields zero-valued Settings.
func LoadSettings(path string) (*Settings, error) {
	var s Settings

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &s, nil
	}

	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, errors.SettingsError(fmt.Sprintf("invalid settings file %s", path), err)
	}

	return &s, nil
}

// Apply overlays the settings onto paths, replacing only the fields the
// settings file actually set.
func (s *Settings) Apply(p *Paths) {
	if s.SSHConfig != "" {
		p.SSHConfig = s.SSHConfig
	}
	if s.ProfilesDir != "" {
		p.ProfilesDir = s.ProfilesDir
	}
	if s.WorkspacesDir != "" {
		p.WorkspacesDir = s.WorkspacesDir
	}
}

// ResolvePaths builds the effective Paths: defaults overlaid with the
// user's settings file, if present.
func ResolvePaths() (*Paths, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}

	settingsPath, err := SettingsPath()
	if err != nil {
		return nil, err
	}

	settings, err := LoadSettings(settingsPath)
	if err != nil {
		return nil, err
	}
	settings.Apply(paths)

	return paths, nil
}
