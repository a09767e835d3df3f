package vscode

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emmapowers/ssh-colors/internal/sshconf"
)

func TestWorkspaceForHost(t *testing.T) {
	rec := sshconf.HostRecord{Host: "dev-server", EditorColor: "#16213e"}

	ws := WorkspaceForHost(rec)

	if len(ws.Folders) != 1 {
		t.Fatalf("got %d folders, want 1", len(ws.Folders))
	}
	if ws.Folders[0].URI != "vscode-remote://ssh-remote+dev-server/home" {
		t.Errorf("URI = %q", ws.Folders[0].URI)
	}
	if ws.Settings.PeacockColor != "#16213e" {
		t.Errorf("PeacockColor = %q", ws.Settings.PeacockColor)
	}

	cc := ws.Settings.ColorCustomizations
	if cc.TitleBarActiveBackground != "#16213e" {
		t.Errorf("TitleBarActiveBackground = %q", cc.TitleBarActiveBackground)
	}
	if cc.TitleBarActiveForeground != "#ffffff" {
		t.Errorf("TitleBarActiveForeground = %q", cc.TitleBarActiveForeground)
	}
	if cc.ActivityBarBackground != "#16213e" {
		t.Errorf("ActivityBarBackground = %q", cc.ActivityBarBackground)
	}
	if cc.StatusBarBackground != "#16213e" {
		t.Errorf("StatusBarBackground = %q", cc.StatusBarBackground)
	}
}

func TestFileName(t *testing.T) {
	if got := FileName("dev-server"); got != "dev-server.code-workspace" {
		t.Errorf("FileName() = %q", got)
	}
}

func TestGenerate(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "nested", "workspaces")

	records := []sshconf.HostRecord{
		{Host: "dev-server", EditorColor: "#16213e"},
		{Host: "terminal-only", TerminalColor: "#1a1a2e"},
		{Host: "prod", EditorColor: "#e94560"},
	}

	count, err := Generate(records, outputDir)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}

	// Only the editor-colored hosts got files.
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		t.Fatalf("Failed to read output dir: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d files, want 2", len(entries))
	}

	data, err := os.ReadFile(filepath.Join(outputDir, "dev-server.code-workspace"))
	if err != nil {
		t.Fatalf("Failed to read workspace: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}

	settings, ok := doc["settings"].(map[string]any)
	if !ok {
		t.Fatal("settings block missing")
	}
	if settings["peacock.color"] != "#16213e" {
		t.Errorf("peacock.color = %v", settings["peacock.color"])
	}

	cc, ok := settings["workbench.colorCustomizations"].(map[string]any)
	if !ok {
		t.Fatal("workbench.colorCustomizations missing")
	}
	if cc["statusBar.background"] != "#16213e" {
		t.Errorf("statusBar.background = %v", cc["statusBar.background"])
	}

	// Pretty-printed with 2-space indentation.
	if !strings.Contains(string(data), "\n  \"folders\"") {
		t.Error("output should be indented with two spaces")
	}
}

func TestGenerate_NoEditorColors(t *testing.T) {
	outputDir := t.TempDir()

	records := []sshconf.HostRecord{
		{Host: "a", TerminalColor: "#111111"},
	}

	count, err := Generate(records, outputDir)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		t.Fatalf("Failed to read output dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d files, want 0", len(entries))
	}
}

func TestGenerate_HostileAliasStaysInside(t *testing.T) {
	tmpDir := t.TempDir()
	outputDir := filepath.Join(tmpDir, "workspaces")

	records := []sshconf.HostRecord{
		{Host: "../escape", EditorColor: "#111111"},
	}

	if _, err := Generate(records, outputDir); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	// The file must land inside outputDir, not beside it.
	if _, err := os.Stat(filepath.Join(tmpDir, "escape.code-workspace")); err == nil {
		t.Error("workspace file escaped the output directory")
	}
}
