package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/emmapowers/ssh-colors/internal/sshconf"
)

var hostsCmd = &cobra.Command{
	Use:   "hosts",
	Short: "List hosts with color annotations",
	Args:  cobra.NoArgs,
	RunE:  runHosts,
}

func init() {
	rootCmd.AddCommand(hostsCmd)
}

func runHosts(cmd *cobra.Command, args []string) error {
	p, err := resolvePaths()
	if err != nil {
		return err
	}

	records, err := sshconf.ParseFile(p.SSHConfig)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		logInfo("No hosts with color annotations found in %s", p.SSHConfig)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "HOST\tITERM\tVSCODE")
	fmt.Fprintln(w, "----\t-----\t------")

	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.Host, swatch(r.TerminalColor), swatch(r.EditorColor))
	}

	return w.Flush()
}

// swatch renders the hex value with a colored block, or "-" when the
// annotation is absent.
func swatch(hex string) string {
	if hex == "" {
		return "-"
	}
	block := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
	return hex + " " + block
}
