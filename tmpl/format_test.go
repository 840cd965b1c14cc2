package tmpl

import (
	"strings"
	"testing"
	"time"
)

func TestStringify(t *testing.T) {
	instant := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "abc", "abc"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"int", 42, "42"},
		{"int64", int64(-7), "-7"},
		{"float whole", float64(1704067200), "1704067200"},
		{"float fraction", 2.5, "2.5"},
		{"timestamp", instant, "2024-01-01T00:00:00Z"},
		{"duration", 26 * time.Hour, "26h0m0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stringify(tt.in); got != tt.want {
				t.Errorf("Stringify(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncodeJSON(t *testing.T) {
	var b strings.Builder

	err := EncodeJSON(&b, map[string]any{"name": "temp-1"}, 0)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}

	if b.String() != "{\"name\":\"temp-1\"}\n" {
		t.Errorf("unexpected JSON output: %q", b.String())
	}
}

func TestEncodeJSON_Indented(t *testing.T) {
	var b strings.Builder

	err := EncodeJSON(&b, map[string]any{"a": 1}, 2)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}

	if !strings.Contains(b.String(), "\n  \"a\": 1\n") {
		t.Errorf("expected indented output, got %q", b.String())
	}
}

func TestEncodeYAML(t *testing.T) {
	var b strings.Builder

	err := EncodeYAML(&b, map[string]any{"name": "temp-1"}, 2)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}

	if !strings.Contains(b.String(), "name: temp-1") {
		t.Errorf("expected YAML mapping, got %q", b.String())
	}
}

func TestSortedKeys(t *testing.T) {
	got := sortedKeys(map[string]int{"c": 3, "a": 1, "b": 2})

	want := []string{"a", "b", "c"}
	for i, key := range want {
		if got[i] != key {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	if sortedKeys(map[string]int{}) != nil {
		t.Error("expected nil for empty map")
	}
}

func TestTypeName(t *testing.T) {
	if typeName(nil) != "nil" {
		t.Errorf("expected nil, got %q", typeName(nil))
	}

	if typeName(42) != "int" {
		t.Errorf("expected int, got %q", typeName(42))
	}

	if typeName(time.Duration(0)) != "time.Duration" {
		t.Errorf("expected time.Duration, got %q", typeName(time.Duration(0)))
	}
}
