//go:build darwin

package platform

import "github.com/stigoleg/key-presser/internal/util"

func hasCommand(name string) bool { return util.HasCommand(name) }
