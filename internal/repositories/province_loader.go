package repositories

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"clausemap/internal/models/db_models"
)

// LoadProvinces reads and validates the provinces document at path.
// A missing file is not an error and yields an empty dataset. Every call
// reads the file again.
func LoadProvinces(path string) (*db_models.ProvincesData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return db_models.NewProvincesData(), nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("read %s: content is not valid UTF-8", path)
	}

	data, err := db_models.DecodeProvincesData(raw)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return data, nil
}
