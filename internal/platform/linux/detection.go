//go:build linux

// Package linux provides Linux display-server detection and the command-line
// key injection tools used when the uinput device is not accessible.
package linux

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Display server types.
const (
	DisplayServerWayland = "wayland"
	DisplayServerX11     = "x11"
	DisplayServerUnknown = "unknown"
)

// Capabilities describes which key injection mechanisms the host offers.
type Capabilities struct {
	HasXdotool    bool
	HasYdotool    bool
	Uinput        bool
	UinputHint    string
	DisplayServer string
}

// DetectCapabilities probes the display server, the command tools in PATH
// and write access to /dev/uinput.
func DetectCapabilities() Capabilities {
	uinput, hint := CheckUinput()
	return Capabilities{
		HasXdotool:    hasCommand(ToolXdotool),
		HasYdotool:    hasCommand(ToolYdotool),
		Uinput:        uinput,
		UinputHint:    hint,
		DisplayServer: DetectDisplayServer(),
	}
}

// PreferredTool returns the command-line tool that works best on the detected
// display server, or "" when none is installed. xdotool only reaches X11
// clients, so Wayland sessions need ydotool.
func (c Capabilities) PreferredTool() string {
	switch {
	case c.DisplayServer == DisplayServerWayland:
		if c.HasYdotool {
			return ToolYdotool
		}
	case c.HasXdotool && c.DisplayServer == DisplayServerX11:
		return ToolXdotool
	case c.HasYdotool:
		return ToolYdotool
	case c.HasXdotool:
		return ToolXdotool
	}
	return ""
}

// DetectDisplayServer reports whether the session runs on Wayland or X11.
func DetectDisplayServer() string {
	session := os.Getenv("XDG_SESSION_TYPE")
	switch {
	case os.Getenv("WAYLAND_DISPLAY") != "" || session == DisplayServerWayland:
		return DisplayServerWayland
	case os.Getenv("DISPLAY") != "" || session == DisplayServerX11:
		return DisplayServerX11
	}
	return DisplayServerUnknown
}

// Distro identifies the distribution for install hints.
type Distro struct {
	ID             string
	Like           []string
	PackageManager string
}

// packageManagers maps package managers to the os-release IDs that use them.
var packageManagers = []struct {
	name string
	ids  []string
}{
	{"apt", []string{"debian", "ubuntu", "pop", "linuxmint"}},
	{"dnf", []string{"fedora", "rhel", "centos"}},
	{"pacman", []string{"arch", "manjaro", "endeavouros"}},
	{"zypper", []string{"opensuse", "opensuse-leap", "opensuse-tumbleweed", "suse"}},
	{"apk", []string{"alpine"}},
}

// DetectDistro reads /etc/os-release. When it is missing the package manager
// is guessed from PATH.
func DetectDistro() Distro {
	f, err := os.Open("/etc/os-release")
	if err != nil {
		return Distro{ID: "unknown", PackageManager: packageManagerFromPath()}
	}
	defer f.Close()

	fields := parseOSRelease(f)
	d := Distro{ID: strings.ToLower(fields["ID"]), Like: strings.Fields(fields["ID_LIKE"])}
	if d.ID == "" {
		d.ID = "unknown"
	}
	d.PackageManager = packageManagerFor(d.ID, d.Like)
	return d
}

func parseOSRelease(r io.Reader) map[string]string {
	fields := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, ok := strings.Cut(strings.TrimSpace(scanner.Text()), "=")
		if !ok || strings.HasPrefix(key, "#") {
			continue
		}
		fields[key] = strings.Trim(value, `"'`)
	}
	return fields
}

// packageManagerFor matches the distribution ID first, then its ID_LIKE
// parents.
func packageManagerFor(id string, like []string) string {
	for _, candidate := range append([]string{id}, like...) {
		for _, pm := range packageManagers {
			for _, known := range pm.ids {
				if candidate != known {
					continue
				}
				if pm.name == "dnf" && !hasCommand("dnf") && hasCommand("yum") {
					return "yum"
				}
				return pm.name
			}
		}
	}
	return packageManagerFromPath()
}

func packageManagerFromPath() string {
	for _, pm := range []string{"apt", "dnf", "yum", "pacman", "zypper", "apk"} {
		if hasCommand(pm) {
			return pm
		}
	}
	return "unknown"
}
