package cmd

import (
	"github.com/emmapowers/ssh-colors/internal/config"
	"github.com/emmapowers/ssh-colors/internal/errors"
)

// resolvePaths builds the effective paths: defaults, overlaid with the
// user's settings file, overlaid with any flag overrides.
func resolvePaths() (*config.Paths, error) {
	p, err := config.ResolvePaths()
	if err != nil {
		return nil, err
	}

	if configPath != "" {
		p.SSHConfig = configPath
	}
	if profilesDir != "" {
		p.ProfilesDir = profilesDir
	}
	if workspacesDir != "" {
		p.WorkspacesDir = workspacesDir
	}

	if err := p.Validate(); err != nil {
		return nil, errors.ValidationError(err.Error())
	}

	return p, nil
}
