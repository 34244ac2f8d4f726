package conftree

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseYAML(t *testing.T) {
	doc := `
name: svc
port: 8080
ratio: 0.25
debug: true
nothing: null
tags:
  - web
  - prod
limits:
  cpu: 2
  memory: 512
`
	v, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if v.Kind() != KindMap {
		t.Fatalf("root kind = %v, want map", v.Kind())
	}

	name, _ := v.Get("name")
	if name.Kind() != KindString || name.Str() != "svc" {
		t.Errorf("name = %v", name)
	}
	port, _ := v.Get("port")
	if port.Kind() != KindNumber || port.Number() != 8080 {
		t.Errorf("port = %v", port)
	}
	ratio, _ := v.Get("ratio")
	if ratio.Number() != 0.25 {
		t.Errorf("ratio = %v", ratio)
	}
	debug, _ := v.Get("debug")
	if debug.Kind() != KindBool || !debug.Bool() {
		t.Errorf("debug = %v", debug)
	}
	nothing, _ := v.Get("nothing")
	if !nothing.IsNull() {
		t.Errorf("nothing = %v, want null", nothing)
	}
	tags, _ := v.Get("tags")
	if tags.Kind() != KindList || tags.Len() != 2 {
		t.Errorf("tags = %v", tags)
	}
	limits, _ := v.Get("limits")
	if limits.Kind() != KindMap || limits.Len() != 2 {
		t.Errorf("limits = %v", limits)
	}
}

func TestParseJSON(t *testing.T) {
	// JSON is a YAML subset, so the same loader handles both.
	doc := `{"servers": [{"port": 80}, {"port": 443}], "mode": "prod"}`

	v, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	servers, ok := v.Get("servers")
	if !ok || servers.Kind() != KindList {
		t.Fatalf("servers = %v", servers)
	}
	first, _ := servers.Index(0)
	port, _ := first.Get("port")
	if port.Number() != 80 {
		t.Errorf("servers[0].port = %v, want 80", port)
	}
}

func TestParsePreservesMapOrder(t *testing.T) {
	doc := `
zeta: 1
alpha: 2
mid: 3
`
	v, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []string{"zeta", "alpha", "mid"}
	got := v.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Keys() = %v, want %v (document order)", got, want)
		}
	}
}

func TestParseEmptyDocument(t *testing.T) {
	for _, doc := range []string{"", "\n", "# just a comment\n"} {
		v, err := Parse([]byte(doc))
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", doc, err)
		}
		if !v.IsNull() {
			t.Errorf("Parse(%q) = %v, want null", doc, v)
		}
	}
}

func TestParseDuplicateKey(t *testing.T) {
	_, err := Parse([]byte("a: 1\na: 2\n"))
	if err == nil {
		t.Fatal("expected error for duplicate key")
	}
	if !strings.Contains(err.Error(), "duplicate key") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseAnchorAlias(t *testing.T) {
	doc := `
defaults: &d
  timeout: 30
service: *d
`
	v, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	service, _ := v.Get("service")
	timeout, ok := service.Get("timeout")
	if !ok || timeout.Number() != 30 {
		t.Errorf("service.timeout = %v, want 30", timeout)
	}
}

func TestParseScalarTagEdgeCases(t *testing.T) {
	doc := `
quotedNumber: "42"
yes: true
hex: 0x10
`
	v, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	qn, _ := v.Get("quotedNumber")
	if qn.Kind() != KindString || qn.Str() != "42" {
		t.Errorf("quoted number should stay a string, got %v", qn)
	}
	yes, _ := v.Get("yes")
	if yes.Kind() != KindBool {
		t.Errorf("yes = %v, want bool", yes)
	}
	hex, _ := v.Get("hex")
	if hex.Kind() != KindNumber || hex.Number() != 16 {
		t.Errorf("hex = %v, want 16", hex)
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("a: [1, 2\n")); err == nil {
		t.Error("expected error for unterminated sequence")
	}
	if _, err := Parse([]byte("{a: 1}: nested-map-key\n")); err == nil {
		t.Error("expected error for non-scalar mapping key")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("port: 8080\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	v, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	port, _ := v.Get("port")
	if port.Number() != 8080 {
		t.Errorf("port = %v, want 8080", port)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "CONFIG_LOAD_FAILED") {
		t.Errorf("expected structured error code, got: %v", err)
	}
}
