package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/emmapowers/ssh-colors/internal/config"
	"github.com/emmapowers/ssh-colors/internal/errors"
	"github.com/emmapowers/ssh-colors/internal/iterm"
	"github.com/emmapowers/ssh-colors/internal/sshconf"
	"github.com/emmapowers/ssh-colors/internal/vscode"
)

var (
	profilesDir   string
	workspacesDir string
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Regenerate iTerm2 profiles and VS Code workspaces",
	Args:  cobra.NoArgs,
	RunE:  runSync,
}

func init() {
	syncCmd.Flags().StringVar(&profilesDir, "profiles-dir", "", "iTerm2 dynamic profiles directory")
	syncCmd.Flags().StringVar(&workspacesDir, "workspaces-dir", "", "VS Code workspaces directory")
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	p, err := resolvePaths()
	if err != nil {
		return err
	}
	return syncPaths(p)
}

// syncPaths runs the parse + generate pipeline against explicit paths.
// The two generators are independent; each owns its own output
// directory and files.
func syncPaths(p *config.Paths) error {
	records, err := sshconf.ParseFile(p.SSHConfig)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		logInfo("No hosts with color annotations found.")
		logInfo("Add comments like '# iterm-color: #1a1a2e' before Host entries.")
		return nil
	}

	logInfo("Found %d hosts with color annotations", len(records))
	fmt.Println()

	profileCount, err := iterm.Generate(records, p.ProfilesDir)
	if err != nil {
		return errors.GenerateFailed("iTerm2 profiles", err)
	}
	logSuccess("Generated iTerm2 profiles: %s", filepath.Join(p.ProfilesDir, iterm.ProfilesFileName))
	fmt.Printf("  %d profiles created\n", profileCount)

	workspaceCount, err := vscode.Generate(records, p.WorkspacesDir)
	if err != nil {
		return errors.GenerateFailed("VS Code workspaces", err)
	}
	logSuccess("Generated VS Code workspaces: %s", p.WorkspacesDir)
	fmt.Printf("  %d workspace files created\n", workspaceCount)

	fmt.Println()
	logInfo("Restart iTerm2 to load new profiles.")
	logInfo("Open .code-workspace files to launch colored VS Code windows.")

	return nil
}
