package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/stamp/tmpl"
)

func TestRender_InlineTemplate(t *testing.T) {
	var out strings.Builder

	cmd := Render{Template: `Filter-{{ start("2024-Q1", 4) }}`}

	if err := cmd.Run(testContext(nil, &out)); err != nil {
		t.Fatalf("run error: %v", err)
	}

	if out.String() != "Filter-2024\n" {
		t.Errorf("expected %q, got %q", "Filter-2024\n", out.String())
	}
}

func TestRender_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.yaml")

	content := "name: {{ start(\"rotation-2024\", 8) }}\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	var out strings.Builder

	cmd := Render{Source: path}

	if err := cmd.Run(testContext(nil, &out)); err != nil {
		t.Fatalf("run error: %v", err)
	}

	if out.String() != "name: rotation\n" {
		t.Errorf("expected %q, got %q", "name: rotation\n", out.String())
	}
}

func TestRender_MissingFile(t *testing.T) {
	var out strings.Builder

	cmd := Render{Source: filepath.Join(t.TempDir(), "absent")}

	err := cmd.Run(testContext(nil, &out))
	if !errors.Is(err, ErrOpenSource) {
		t.Errorf("expected ErrOpenSource, got %v", err)
	}
}

func TestRender_InvalidRegion(t *testing.T) {
	var out strings.Builder

	cmd := Render{Template: "{{ 1 + }}"}

	err := cmd.Run(testContext(nil, &out))
	if !errors.Is(err, tmpl.ErrRenderTemplate) {
		t.Errorf("expected ErrRenderTemplate, got %v", err)
	}

	if out.Len() != 0 {
		t.Errorf("expected no partial output, got %q", out.String())
	}
}
