package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ardnew/stamp/cli/cmd"
)

func TestLoadNames_FromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.yaml")

	content := "filter:\n  name: temp-123\ncount: 3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	names, err := loadNames(path, nil)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	filter, ok := names["filter"].(map[string]any)
	if !ok {
		t.Fatalf("expected nested map for filter, got %T", names["filter"])
	}

	if filter["name"] != "temp-123" {
		t.Errorf("expected temp-123, got %v", filter["name"])
	}
}

func TestLoadNames_SetOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.yaml")

	if err := os.WriteFile(path, []byte("campaign: old\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	names, err := loadNames(path, []string{"campaign=new"})
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	if names["campaign"] != "new" {
		t.Errorf("expected override to win, got %v", names["campaign"])
	}
}

func TestLoadNames_DottedKeys(t *testing.T) {
	names, err := loadNames("", []string{"filter.name=temp-1", "filter.live=true"})
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	filter, ok := names["filter"].(map[string]any)
	if !ok {
		t.Fatalf("expected nested map, got %T", names["filter"])
	}

	if filter["name"] != "temp-1" || filter["live"] != true {
		t.Errorf("unexpected bindings: %v", filter)
	}
}

func TestLoadNames_Empty(t *testing.T) {
	names, err := loadNames("", nil)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	if names != nil {
		t.Errorf("expected nil for no bindings, got %v", names)
	}
}

func TestLoadNames_InvalidPair(t *testing.T) {
	_, err := loadNames("", []string{"missing-equals"})
	if !errors.Is(err, cmd.ErrInvalidBinding) {
		t.Errorf("expected ErrInvalidBinding, got %v", err)
	}

	_, err = loadNames("", []string{"=value"})
	if !errors.Is(err, cmd.ErrInvalidBinding) {
		t.Errorf("expected ErrInvalidBinding for empty key, got %v", err)
	}
}

func TestLoadNames_MissingFile(t *testing.T) {
	_, err := loadNames(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	if !errors.Is(err, cmd.ErrInvalidBinding) {
		t.Errorf("expected ErrInvalidBinding, got %v", err)
	}
}

func TestParseScalar(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"true", true},
		{"false", false},
		{"42", 42},
		{"-7", -7},
		{"2.5", 2.5},
		{"temp-123", "temp-123"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := parseScalar(tt.in); got != tt.want {
			t.Errorf("parseScalar(%q) = %v (%T), want %v (%T)",
				tt.in, got, got, tt.want, tt.want)
		}
	}
}
