// Package vscode generates VS Code workspace files for annotated SSH
// hosts. Each workspace opens a remote folder over SSH and carries
// Peacock-style UI colors so windows are visually distinguishable.
package vscode

import (
	"encoding/json"
	"fmt"
	"os"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/emmapowers/ssh-colors/internal/logging"
	"github.com/emmapowers/ssh-colors/internal/sshconf"
)

// foregroundWhite is the fixed title bar text color; backgrounds come
// from the host annotation.
const foregroundWhite = "#ffffff"

// Folder is one workspace folder entry.
type Folder struct {
	URI string `json:"uri"`
}

// ColorCustomizations are the workbench UI regions tinted per host.
type ColorCustomizations struct {
	TitleBarActiveBackground string `json:"titleBar.activeBackground"`
	TitleBarActiveForeground string `json:"titleBar.activeForeground"`
	ActivityBarBackground    string `json:"activityBar.background"`
	StatusBarBackground      string `json:"statusBar.background"`
}

// Settings is the workspace settings block.
type Settings struct {
	PeacockColor        string              `json:"peacock.color"`
	ColorCustomizations ColorCustomizations `json:"workbench.colorCustomizations"`
}

// Workspace is a .code-workspace document.
type Workspace struct {
	Folders  []Folder `json:"folders"`
	Settings Settings `json:"settings"`
}

// WorkspaceForHost builds the workspace document for one annotated
// host. The record must carry an editor color.
func WorkspaceForHost(rec sshconf.HostRecord) Workspace {
	return Workspace{
		Folders: []Folder{
			{URI: "vscode-remote://ssh-remote+" + rec.Host + "/home"},
		},
		Settings: Settings{
			PeacockColor: rec.EditorColor,
			ColorCustomizations: ColorCustomizations{
				TitleBarActiveBackground: rec.EditorColor,
				TitleBarActiveForeground: foregroundWhite,
				ActivityBarBackground:    rec.EditorColor,
				StatusBarBackground:      rec.EditorColor,
			},
		},
	}
}

// FileName returns the workspace file name for a host.
func FileName(host string) string {
	return host + ".code-workspace"
}

// Generate writes one workspace file per record with an editor color
// into outputDir, creating the directory if needed, and returns the
// number of files written. Host aliases become file names, so paths
// are joined with securejoin to keep hostile aliases inside outputDir.
func Generate(records []sshconf.HostRecord, outputDir string) (int, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", outputDir, err)
	}

	count := 0
	for _, rec := range records {
		if rec.EditorColor == "" {
			continue
		}

		data, err := json.MarshalIndent(WorkspaceForHost(rec), "", "  ")
		if err != nil {
			return count, fmt.Errorf("failed to encode workspace for %q: %w", rec.Host, err)
		}

		outputFile, err := securejoin.SecureJoin(outputDir, FileName(rec.Host))
		if err != nil {
			return count, fmt.Errorf("invalid workspace path for %q: %w", rec.Host, err)
		}

		if err := os.WriteFile(outputFile, data, 0644); err != nil {
			return count, err
		}

		logging.Debug("wrote workspace", "file", outputFile, "host", rec.Host)
		count++
	}

	return count, nil
}
