// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForImageFetch returns hints for remote image failures.
func ForImageFetch(strict bool) string {
	hints := []string{"use --offline to keep remote image URLs"}
	if strict {
		hints = append(hints, "drop --strict-images to keep URLs of unavailable images")
	}
	return formatHints(hints)
}

// ForImageTimeout returns a hint about increasing the image timeout.
func ForImageTimeout() string {
	return format("for slow hosts, use --image-timeout or images.timeout")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-md2latex/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-md2latex") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForTemplateNotFound lists the templates an asset directory may override.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("templates: " + strings.Join(available, ", ") + " (as templates/<name>.tex)")
}

// ForMinted reminds that minted output needs shell escape at compile time.
func ForMinted() string {
	return format("compile with -shell-escape for minted listings")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
