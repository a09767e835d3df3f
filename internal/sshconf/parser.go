// Package sshconf extracts color-annotated hosts from an SSH client
// configuration file. Annotations are comment lines immediately above a
// Host declaration:
//
//	# iterm-color: #1a1a2e
//	# vscode-color: #1a1a2e
//	Host dev-server
//	    HostName dev.example.com
//
// Every other directive in the file is inert to this parser.
package sshconf

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/emmapowers/ssh-colors/internal/errors"
	"github.com/emmapowers/ssh-colors/internal/logging"
)

// HostRecord associates a host alias with its optional colors. An empty
// color string means the annotation was absent.
type HostRecord struct {
	Host          string
	TerminalColor string
	EditorColor   string
}

// Regexps for the recognized line forms. Color values are exactly six
// hex digits; the comment marker and colon spacing are flexible.
var (
	itermColorRe  = regexp.MustCompile(`^#\s*iterm-color:\s*(#[0-9a-fA-F]{6})`)
	vscodeColorRe = regexp.MustCompile(`^#\s*vscode-color:\s*(#[0-9a-fA-F]{6})`)
	hostRe        = regexp.MustCompile(`^(?i:Host)\s+(.+)$`)
)

// pending accumulates annotations seen since the last Host line. It is
// cleared on every Host line, wildcard or not, so annotations only ever
// attach to the immediately following Host declaration.
type pending struct {
	terminal string
	editor   string
}

func (p *pending) empty() bool {
	return p.terminal == "" && p.editor == ""
}

func (p *pending) clear() {
	*p = pending{}
}

// isWildcard reports whether a Host value is a pattern rather than a
// literal alias.
func isWildcard(value string) bool {
	return strings.ContainsAny(value, "*?")
}

// Parse reads an SSH config and returns one record per non-wildcard
// Host line that had at least one color annotation above it.
func Parse(r io.Reader) ([]HostRecord, error) {
	var records []HostRecord
	var p pending

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if m := itermColorRe.FindStringSubmatch(line); m != nil {
			p.terminal = m[1]
			continue
		}
		if m := vscodeColorRe.FindStringSubmatch(line); m != nil {
			p.editor = m[1]
			continue
		}

		if m := hostRe.FindStringSubmatch(line); m != nil {
			value := strings.TrimSpace(m[1])
			if !isWildcard(value) && !p.empty() {
				records = append(records, HostRecord{
					Host:          value,
					TerminalColor: p.terminal,
					EditorColor:   p.editor,
				})
			}
			// Annotations never survive past a Host line, even a
			// wildcard one that produced no record.
			p.clear()
			continue
		}

		// Annotation-like comments that failed the color grammar are
		// ignored, matching the tool's historical leniency.
		if looksLikeAnnotation(line) {
			logging.Debug("ignoring malformed color annotation", "line", line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// looksLikeAnnotation reports whether a line was probably meant to be a
// color annotation. Only used for debug logging.
func looksLikeAnnotation(line string) bool {
	if !strings.HasPrefix(line, "#") {
		return false
	}
	return strings.Contains(line, "iterm-color:") || strings.Contains(line, "vscode-color:")
}

// ParseFile parses the SSH config at path. A missing file maps to a
// typed ConfigNotFound error so the caller can report it and exit.
func ParseFile(path string) ([]HostRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.ParseFailed(path, err)
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		return nil, errors.ParseFailed(path, err)
	}

	logging.Debug("parsed SSH config", "path", path, "annotated_hosts", len(records))
	return records, nil
}
