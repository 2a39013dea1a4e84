package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// Load reads a JSON tool list from path. A missing or unreadable file is not
// an error: the site degrades to an empty catalog rather than failing to boot,
// and the condition is logged. A file that exists but does not parse is a
// hard error.
func Load(path string, logger *slog.Logger) (*Catalog, error) {
	if path == "" {
		return New(nil), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("catalog unavailable, serving empty catalog", "path", path, "error", err)
		return New(nil), nil
	}
	var tools []Tool
	if err := json.Unmarshal(data, &tools); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	seen := make(map[string]bool, len(tools))
	for _, t := range tools {
		if t.Slug == "" {
			return nil, fmt.Errorf("catalog %s: tool %q has no slug", path, t.Name)
		}
		if seen[t.Slug] {
			return nil, fmt.Errorf("catalog %s: duplicate slug %q", path, t.Slug)
		}
		seen[t.Slug] = true
	}
	return New(tools), nil
}
