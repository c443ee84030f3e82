//go:build linux

package linux

import (
	"fmt"
	"strings"
)

// MissingTool is a command-line tool that would enable key injection.
type MissingTool struct {
	Tool    string
	Reason  string
	Install string
	Note    string
}

var installCommands = map[string]string{
	"apt":    "sudo apt update && sudo apt install %s",
	"dnf":    "sudo dnf install %s",
	"yum":    "sudo yum install %s",
	"pacman": "sudo pacman -S %s",
	"zypper": "sudo zypper install %s",
	"apk":    "sudo apk add %s",
}

// InstallCommand returns the command that installs tool on d. The note carries
// caveats such as packaging gaps.
func InstallCommand(tool string, d Distro) (cmd string, note string, err error) {
	if tool != ToolXdotool && tool != ToolYdotool {
		return "", "", fmt.Errorf("no package known for tool %q", tool)
	}

	format, ok := installCommands[d.PackageManager]
	if !ok {
		return fmt.Sprintf("install the %s package with your package manager", tool), "", nil
	}
	if tool == ToolYdotool && d.PackageManager == "apt" {
		note = "older Debian and Ubuntu releases do not package ydotool; build it from source if apt cannot find it"
	}
	return fmt.Sprintf(format, tool), note, nil
}

// MissingTools lists the tools worth installing when uinput is unavailable.
// ydotool comes first because it works on both display servers.
func MissingTools(c Capabilities, d Distro) []MissingTool {
	if c.Uinput {
		return nil
	}

	var missing []MissingTool
	add := func(tool, reason string) {
		install, note, _ := InstallCommand(tool, d)
		missing = append(missing, MissingTool{Tool: tool, Reason: reason, Install: install, Note: note})
	}

	if !c.HasYdotool {
		reason := "sends key events on X11 and Wayland (needs the ydotoold daemon)"
		if c.DisplayServer == DisplayServerWayland {
			reason = "the only supported tool on Wayland"
		}
		add(ToolYdotool, reason)
	}
	if !c.HasXdotool && c.DisplayServer == DisplayServerX11 {
		add(ToolXdotool, "sends key events to X11 windows")
	}
	return missing
}

// DescribeMissing renders missing tools as setup instructions.
func DescribeMissing(missing []MissingTool) string {
	if len(missing) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Install one of these tools to send key events:\n")
	for _, m := range missing {
		fmt.Fprintf(&b, "  %s: %s\n", m.Tool, m.Reason)
		fmt.Fprintf(&b, "    %s\n", m.Install)
		if m.Note != "" {
			fmt.Fprintf(&b, "    note: %s\n", m.Note)
		}
	}
	b.WriteString("Or enable native injection: sudo usermod -aG input $USER (then log out and back in)\n")
	return b.String()
}

// SetupHint explains how to make key injection work on a host where c offers
// no mechanism. It is empty when a mechanism exists.
func (c Capabilities) SetupHint() string {
	if c.Uinput || c.PreferredTool() != "" {
		return ""
	}

	var parts []string
	if c.UinputHint != "" {
		parts = append(parts, c.UinputHint)
	}
	if tools := DescribeMissing(MissingTools(c, DetectDistro())); tools != "" {
		parts = append(parts, strings.TrimSpace(tools))
	}
	return strings.Join(parts, "\n\n")
}
