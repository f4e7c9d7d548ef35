package export

import (
	"encoding/json"
	"os"

	"github.com/kronologic/kronogen/pkg/decoder"
)

// ExportJSON serializes a decoded puzzle to JSON with indentation.
// Returns formatted JSON with 2-space indentation for readability.
func ExportJSON(result *decoder.Result) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}

// ExportJSONCompact serializes a decoded puzzle to JSON without indentation.
// Returns compact JSON suitable for storage or transmission.
func ExportJSONCompact(result *decoder.Result) ([]byte, error) {
	return json.Marshal(result)
}

// SaveJSONToFile exports a decoded puzzle to a JSON file with indentation.
// The file is created with 0644 permissions (readable by all, writable by owner).
func SaveJSONToFile(result *decoder.Result, filepath string) error {
	data, err := ExportJSON(result)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

// SaveJSONCompactToFile exports a decoded puzzle to a compact JSON file.
// The file is created with 0644 permissions (readable by all, writable by owner).
func SaveJSONCompactToFile(result *decoder.Result, filepath string) error {
	data, err := ExportJSONCompact(result)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}
