package repositories

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"clausemap/internal/models/db_models"
)

const scotlandDoc = `{"provinces": {"SCO": {"id": 1, "name": "Scotland", "type": "land", "owner": "SCO", "development": 3, "trade_goods": "wool", "terrain": "hills", "description": "A northern province."}}}`

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadProvinces_MissingFile(t *testing.T) {
	data, err := LoadProvinces(filepath.Join(t.TempDir(), "provinces.json"))
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if data == nil || data.Provinces == nil || data.Len() != 0 {
		t.Fatalf("expected empty dataset, got %+v", data)
	}
}

func TestLoadProvinces_Valid(t *testing.T) {
	path := writeFile(t, t.TempDir(), "provinces.json", []byte(scotlandDoc))

	data, err := LoadProvinces(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, ok := data.Lookup("SCO")
	if !ok || p.Name != "Scotland" {
		t.Fatalf("expected Scotland under SCO, got %+v ok=%v", p, ok)
	}
	if _, ok := data.Lookup("1"); ok {
		t.Fatalf("expected lookup by id to miss")
	}
}

func TestLoadProvinces_Malformed(t *testing.T) {
	path := writeFile(t, t.TempDir(), "provinces.json", []byte(`{"provinces": {"SCO": `))

	_, err := LoadProvinces(path)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected path in error, got %v", err)
	}
	if errors.Is(err, db_models.ErrInvalidProvinces) {
		t.Fatalf("parse error must be distinct from validation error: %v", err)
	}
}

func TestLoadProvinces_SchemaViolation(t *testing.T) {
	doc := `{"provinces": {"SCO": {"id": 1, "name": "Scotland", "type": "land", "owner": "SCO", "trade_goods": "wool", "terrain": "hills", "description": "x"}}}`
	path := writeFile(t, t.TempDir(), "provinces.json", []byte(doc))

	_, err := LoadProvinces(path)
	var ve *db_models.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if ve.Field != "provinces.SCO.development" {
		t.Fatalf("unexpected field %q", ve.Field)
	}
}

func TestLoadProvinces_InvalidUTF8(t *testing.T) {
	path := writeFile(t, t.TempDir(), "provinces.json", []byte("{\"provinces\": {\"\xff\": {}}}"))

	if _, err := LoadProvinces(path); err == nil {
		t.Fatalf("expected error for invalid UTF-8")
	}
}

func TestLoadProvinces_Directory(t *testing.T) {
	if _, err := LoadProvinces(t.TempDir()); err == nil {
		t.Fatalf("expected error when path is a directory")
	}
}

func TestFileProvinceRepository_ReadsFreshEachCall(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "provinces.json")
	repo := NewFileProvinceRepository(path)
	ctx := context.Background()

	data, err := repo.LoadAll(ctx)
	if err != nil || data.Len() != 0 {
		t.Fatalf("expected empty dataset before file exists, got %v, %v", data, err)
	}

	writeFile(t, dir, "provinces.json", []byte(scotlandDoc))
	data, err = repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Len() != 1 {
		t.Fatalf("expected the new file to be picked up, got %d", data.Len())
	}

	writeFile(t, dir, "provinces.json", []byte(`{"provinces": {}}`))
	data, err = repo.LoadAll(ctx)
	if err != nil || data.Len() != 0 {
		t.Fatalf("expected rewritten file to be picked up, got %v, %v", data, err)
	}
}

func TestFileProvinceRepository_CanceledContext(t *testing.T) {
	repo := NewFileProvinceRepository(filepath.Join(t.TempDir(), "provinces.json"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := repo.LoadAll(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
