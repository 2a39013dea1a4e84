package quiz

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// LoadBank reads a question bank override from path, falling back to the
// built-in bank when path is empty or the file is unavailable. A file that
// exists but fails to parse or validate is a hard error.
func LoadBank(path string, logger *slog.Logger) (Bank, error) {
	if path == "" {
		return DefaultBank(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("question bank unavailable, using built-in bank", "path", path, "error", err)
		return DefaultBank(), nil
	}
	var bank Bank
	if err := json.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("parse question bank %s: %w", path, err)
	}
	if err := bank.Validate(); err != nil {
		return nil, fmt.Errorf("question bank %s: %w", path, err)
	}
	return bank, nil
}
