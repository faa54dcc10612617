package core

import (
	"strings"

	"github.com/gsd-build/get-shit-done-cc/internal/core/system"
)

// docExt marks files whose content is rewritten during install.
const docExt = ".md"

// IsDocFile reports whether a file name is a documentation file.
func IsDocFile(name string) bool {
	return strings.HasSuffix(name, docExt)
}

// Rewrite applies rules in order. Every occurrence of each Find string is
// replaced; later rules see the output of earlier ones. Matching is purely
// textual, so references inside code fences are rewritten too.
func Rewrite(content string, rules []system.Rule) string {
	for _, r := range rules {
		if r.Find == "" || r.Find == r.Replace {
			continue
		}
		content = strings.ReplaceAll(content, r.Find, r.Replace)
	}
	return content
}
