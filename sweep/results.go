package sweep

import (
	"encoding/json"
	"fmt"
	"os"
)

// resultsDoc is the on-disk form of a scan's results.
type resultsDoc struct {
	Version string   `json:"version"`
	Results *Results `json:"results"`
}

const resultsVersion = "1.0"

// SaveResults writes the results to a JSON file.
func SaveResults(path string, res *Results) error {
	doc := resultsDoc{Version: resultsVersion, Results: res}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadResults reads results back from a JSON file.
func LoadResults(path string) (*Results, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read results file: %w", err)
	}
	var doc resultsDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal results: %w", err)
	}
	if doc.Results == nil {
		return nil, fmt.Errorf("results file %s has no results", path)
	}
	return doc.Results, nil
}
