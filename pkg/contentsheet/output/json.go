// Package output serializes import bundles and run summaries.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/ukaji3/contentsheet-go/pkg/contentsheet/models"
)

var api = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// ToJSON serializes v. Pretty output is indented with four spaces.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return api.MarshalIndent(v, "", "    ")
	}
	return api.Marshal(v)
}

// WriteBundle writes the bundle to dir/filename and returns the written path.
func WriteBundle(dir, filename string, bundle models.Bundle) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	jsonData, err := ToJSON(bundle, true)
	if err != nil {
		return "", fmt.Errorf("serializing %s: %w", filename, err)
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return "", err
	}
	return path, nil
}
