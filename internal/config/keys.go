package config

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/stigoleg/key-presser/internal/platform"
)

// SpaceAlias stands for the space bar in key text, where a literal space is
// easy to lose.
const SpaceAlias = '_'

// ParseKeys upper-cases text, maps SpaceAlias to space and keeps the first
// occurrence of each valid key. Characters that cannot be simulated are
// returned separately, once each.
func ParseKeys(text string) (keys []rune, invalid []rune) {
	seen := map[rune]bool{}
	bad := map[rune]bool{}

	for _, r := range text {
		if r == SpaceAlias {
			r = ' '
		}
		r = unicode.ToUpper(r)

		if platform.IsValidKey(r) {
			if !seen[r] {
				seen[r] = true
				keys = append(keys, r)
			}
			continue
		}
		if !bad[r] {
			bad[r] = true
			invalid = append(invalid, r)
		}
	}
	return keys, invalid
}

// InvalidKeysWarning describes characters ParseKeys ignored.
func InvalidKeysWarning(invalid []rune) string {
	names := make([]string, len(invalid))
	for i, r := range invalid {
		names[i] = describeRune(r)
	}
	return fmt.Sprintf("Invalid characters found and will be ignored: %s (valid characters: A-Z, 0-9, space)", strings.Join(names, ", "))
}

func describeRune(r rune) string {
	switch {
	case r == '\t':
		return "tab"
	case r == '\n' || r == '\r':
		return "newline"
	case !unicode.IsPrint(r):
		return fmt.Sprintf("%U", r)
	default:
		return string(r)
	}
}

// FormatKeys renders keys back into editable text, with space as SpaceAlias.
func FormatKeys(keys []rune) string {
	var b strings.Builder
	for _, k := range keys {
		if k == ' ' {
			b.WriteRune(SpaceAlias)
			continue
		}
		b.WriteRune(unicode.ToLower(k))
	}
	return b.String()
}
