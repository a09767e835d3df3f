package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/emmapowers/ssh-colors/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "ssh-colors",
	Short: "Sync SSH config color annotations to iTerm2 and VS Code",
	Long: `ssh-colors parses your SSH config for color annotations and generates:
  - iTerm2 dynamic profiles with colored backgrounds
  - VS Code workspace files with Peacock colors

Annotate hosts with comments in ~/.ssh/config:

    # iterm-color: #1a1a2e
    # vscode-color: #1a1a2e
    Host dev-server
        HostName dev.example.com
        User emma

Running with no arguments performs a full sync.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
	RunE: runSync,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "SSH config file to parse (default ~/.ssh/config)")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
)
