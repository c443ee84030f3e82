//go:build linux

package linux

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"slices"
	"strconv"
)

const uinputPath = "/dev/uinput"

const uinputAccessHint = `Give your user write access to /dev/uinput:
  sudo usermod -aG input $USER   (then log out and back in)
or install a udev rule:
  echo 'KERNEL=="uinput", MODE="0660", GROUP="input"' | sudo tee /etc/udev/rules.d/99-uinput.rules
  sudo udevadm control --reload-rules && sudo udevadm trigger`

// CheckUinput reports whether /dev/uinput can be opened for writing. When it
// cannot, the second value explains how to fix it.
func CheckUinput() (bool, string) {
	f, err := os.OpenFile(uinputPath, os.O_WRONLY, 0)
	switch {
	case err == nil:
		f.Close()
		return true, ""
	case errors.Is(err, fs.ErrNotExist):
		return false, "/dev/uinput does not exist. Load the kernel module with: sudo modprobe uinput"
	case errors.Is(err, fs.ErrPermission) && notInInputGroup():
		return false, "You are not in the input group, so /dev/uinput is not writable.\n" + uinputAccessHint
	default:
		return false, fmt.Sprintf("Cannot open /dev/uinput: %v\n%s", err, uinputAccessHint)
	}
}

// notInInputGroup is true only when the input group exists and the process
// is known not to belong to it.
func notInInputGroup() bool {
	group, err := user.LookupGroup("input")
	if err != nil {
		return false
	}
	gid, err := strconv.Atoi(group.Gid)
	if err != nil {
		return false
	}
	groups, err := os.Getgroups()
	if err != nil {
		return false
	}
	return !slices.Contains(groups, gid)
}
