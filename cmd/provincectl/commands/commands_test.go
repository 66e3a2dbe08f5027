package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"clausemap/pkg/utils"
)

const scotlandDoc = `{"provinces": {"SCO": {"id": 1, "name": "Scotland", "type": "land", "owner": "SCO", "development": 3, "trade_goods": "wool", "terrain": "hills", "description": "A northern province."}}}`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeProvinces(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "provinces.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestValidate(t *testing.T) {
	path := writeProvinces(t, scotlandDoc)

	out, err := run(t, "validate", "--file", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "OK: 1 provinces") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestValidate_Invalid(t *testing.T) {
	path := writeProvinces(t, `{"provinces": {"SCO": {"id": "1"}}}`)

	_, err := run(t, "validate", "--file", path)
	if err == nil || !strings.Contains(err.Error(), "provinces.SCO.id") {
		t.Fatalf("expected failing field in error, got %v", err)
	}
}

func TestShow(t *testing.T) {
	path := writeProvinces(t, scotlandDoc)

	out, err := run(t, "show", "SCO", "-f", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"name": "Scotland"`) {
		t.Fatalf("unexpected output %q", out)
	}

	_, err = run(t, "show", "1", "-f", path)
	if !errors.Is(err, utils.ErrProvinceNotFound) {
		t.Fatalf("expected ErrProvinceNotFound, got %v", err)
	}
}

func TestShow_MissingFile(t *testing.T) {
	out, err := run(t, "show", "-f", filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"provinces": {}`) {
		t.Fatalf("expected empty dataset, got %q", out)
	}
}

func TestLayers(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"visual_map.png", "b_map.png", "a_map.png"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	out, err := run(t, "layers", "--static", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "a_map.png\nb_map.png\n" {
		t.Fatalf("unexpected output %q", out)
	}
}
