package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCatalogDefault(t *testing.T) {
	reg, err := loadCatalog("")
	if err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}
	if !reg.Sealed() {
		t.Error("catalog should be sealed")
	}
	if reg.LookupPath("inputs") == nil {
		t.Error("inputs namespace missing")
	}
}

func TestLoadCatalogWithExtensions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ext.yaml")
	ext := `name: custom
entries:
  - kind: namespace
    name: midi
    path: midi
    description: MIDI input namespace.
`
	if err := os.WriteFile(path, []byte(ext), 0o644); err != nil {
		t.Fatal(err)
	}

	reg, err := loadCatalog(path)
	if err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}
	if !reg.Sealed() {
		t.Error("catalog should be sealed after merging extensions")
	}
	ent := reg.LookupPath("midi")
	if ent == nil {
		t.Fatal("extension entry midi not merged")
	}
	if ent.Description == "" {
		t.Error("extension entry lost its description")
	}
}

func TestLoadCatalogMissingExtensionsFile(t *testing.T) {
	if _, err := loadCatalog("/nonexistent/ext.yaml"); err == nil {
		t.Error("expected error for missing extensions file")
	}
}

func TestRunResolveParsesChain(t *testing.T) {
	if err := runResolve([]string{"inputs.mix.energy"}); err != nil {
		t.Errorf("resolve failed: %v", err)
	}
	if err := runResolve([]string{"no.such.thing"}); err == nil {
		t.Error("expected resolution failure")
	}
}
