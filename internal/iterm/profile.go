// Package iterm generates iTerm2 dynamic profiles for annotated SSH
// hosts. All profiles land in a single JSON document that iTerm2 loads
// automatically from its DynamicProfiles directory.
package iterm

import (
	"strings"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/emmapowers/ssh-colors/internal/sshconf"
)

// ProfilesFileName is the single output file inside the dynamic
// profiles directory.
const ProfilesFileName = "ssh-hosts.json"

// Color is iTerm2's color dictionary representation: normalized float
// channels in the sRGB space.
type Color struct {
	Red   float64 `json:"Red Component"`
	Green float64 `json:"Green Component"`
	Blue  float64 `json:"Blue Component"`
	Alpha float64 `json:"Alpha Component"`
	Space string  `json:"Color Space"`
}

// ColorFromHex converts a #RRGGBB string to an iTerm2 color dict with
// full opacity.
func ColorFromHex(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, err
	}
	return Color{
		Red:   c.R,
		Green: c.G,
		Blue:  c.B,
		Alpha: 1.0,
		Space: "sRGB",
	}, nil
}

// Hex formats the color back to #rrggbb. Round-trips ColorFromHex up
// to channel rounding.
func (c Color) Hex() string {
	return colorful.Color{R: c.Red, G: c.Green, B: c.Blue}.Hex()
}

// Profile is one iTerm2 dynamic profile. Field names follow iTerm2's
// plist-style JSON keys, spaces included.
type Profile struct {
	Name                 string   `json:"Name"`
	GUID                 string   `json:"Guid"`
	CustomCommand        string   `json:"Custom Command"`
	Command              string   `json:"Command"`
	BackgroundColor      Color    `json:"Background Color"`
	BadgeText            string   `json:"Badge Text"`
	Tags                 []string `json:"Tags"`
	BoundHosts           []string `json:"Bound Hosts"`
	UseTabColor          bool     `json:"Use Tab Color"`
	TabColor             Color    `json:"Tab Color"`
	CustomDirectory      string   `json:"Custom Directory"`
	WorkingDirectory     string   `json:"Working Directory"`
	NewWindowsUseProfile bool     `json:"New Windows Use This Profile"`
	NewTabsUseProfile    bool     `json:"New Tabs Use This Profile"`
}

// GUIDForHost derives a stable profile identifier from a host alias:
// lowercased, dots replaced with dashes, prefixed "ssh-".
func GUIDForHost(host string) string {
	return "ssh-" + strings.ReplaceAll(strings.ToLower(host), ".", "-")
}

// ProfileForHost builds the dynamic profile for one annotated host.
// The record must carry a terminal color.
func ProfileForHost(rec sshconf.HostRecord, homeDir string) (Profile, error) {
	color, err := ColorFromHex(rec.TerminalColor)
	if err != nil {
		return Profile{}, err
	}

	return Profile{
		Name:            "SSH: " + rec.Host,
		GUID:            GUIDForHost(rec.Host),
		CustomCommand:   "Yes",
		Command:         shellquote.Join("ssh", rec.Host),
		BackgroundColor: color,
		BadgeText:       rec.Host,
		Tags:            []string{"SSH"},
		// Automatic profile switching keys on the hostname.
		BoundHosts:  []string{rec.Host},
		UseTabColor: true,
		TabColor:    color,
		// New windows open in the home directory; new tabs and splits
		// keep the previous session's directory.
		CustomDirectory:      "Recycle",
		WorkingDirectory:     homeDir,
		NewWindowsUseProfile: false,
		NewTabsUseProfile:    true,
	}, nil
}
