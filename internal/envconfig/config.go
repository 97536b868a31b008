// Package envconfig interprets the environment variables the provisioner
// honors. Values are read fresh on every call so tests can manipulate the
// environment directly.
package envconfig

import (
	"log/slog"
	"os"
	"strings"
)

// toolkitRootVars is the ordered list of override variables naming the
// toolkit install root. The first defined variable wins.
var toolkitRootVars = []string{"CUDA_HOME", "CUDA_ROOT", "CUDA_PATH"}

// Var returns the named environment variable, trimmed of whitespace and
// wrapping quotes.
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// ToolkitRoot returns the toolkit install root from the override variables,
// first-defined wins. When several are defined with differing values a
// warning names the one that took effect.
func ToolkitRoot() (string, bool) {
	var root, source string
	for _, key := range toolkitRootVars {
		v := Var(key)
		if v == "" {
			continue
		}
		if root == "" {
			root, source = v, key
			continue
		}
		if v != root {
			slog.Warn("conflicting toolkit root overrides", "using", source, "ignoring", key, "ignored_value", v)
		}
	}
	return root, root != ""
}

// Debug reports whether CUPROV_DEBUG enables debug logging.
func Debug() bool {
	switch strings.ToLower(Var("CUPROV_DEBUG")) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
