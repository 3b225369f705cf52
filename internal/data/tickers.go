package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"stock-screener/internal/model"
)

// TickerList is a saved ticker universe for one index, refreshed by
// cmd/update-tickers and usable for offline screening.
type TickerList struct {
	Index     string   `json:"index"`
	UpdatedAt string   `json:"updated_at"` // ISO 8601 timestamp
	Symbols   []string `json:"symbols"`
}

// LoadTickerList loads a ticker list from a JSON file.
func LoadTickerList(filePath string) (*TickerList, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read ticker file: %w", err)
	}

	var list TickerList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("failed to parse ticker file: %w", err)
	}

	return &list, nil
}

// SaveTickerList saves a ticker list to a JSON file.
func SaveTickerList(list *TickerList, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	raw, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ticker list: %w", err)
	}

	if err := os.WriteFile(filePath, raw, 0644); err != nil {
		return fmt.Errorf("failed to write ticker file: %w", err)
	}

	return nil
}

// DefaultTickersPath returns the default path for an index's ticker file.
func DefaultTickersPath(index model.Index) string {
	dir := os.Getenv("TICKERS_DIR")
	if dir == "" {
		dir = "./data"
	}
	return filepath.Join(dir, fmt.Sprintf("tickers_%s.json", index))
}
