//go:build linux

package linux

import (
	"os/exec"
	"strings"

	"github.com/stigoleg/key-presser/internal/util"
)

func hasCommand(name string) bool { return util.HasCommand(name) }

// runTool executes an injection tool and returns its trimmed combined output,
// which carries the tool's own error text when it fails.
func runTool(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).CombinedOutput()
	return strings.TrimSpace(string(out)), err
}
