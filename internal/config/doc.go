// Package config provides path configuration and loading for ssh-colors.
//
// # Paths
//
// Paths holds the three locations a sync run touches:
//
//	type Paths struct {
//	    SSHConfig     string // SSH client config to parse
//	    ProfilesDir   string // iTerm2 dynamic profiles output dir
//	    WorkspacesDir string // VS Code workspace output dir
//	}
//
// Defaults are the conventional home-directory locations:
//
//	~/.ssh/config
//	~/Library/Application Support/iTerm2/DynamicProfiles
//	~/.ssh/workspaces
//
// # Settings File
//
// An optional TOML file at ~/.config/ssh-colors/config.toml overrides
// any of the defaults:
//
//	ssh_config = "/home/emma/.ssh/config"
//	profiles_dir = "/home/emma/iterm-profiles"
//	workspaces_dir = "/home/emma/.ssh/workspaces"
//
// A missing settings file is not an error. Resolution order is
// defaults, then settings file, then command-line flags.
package config
