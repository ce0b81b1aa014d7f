package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/pge"
	"github.com/gogpu/pge/respack"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Flag variables keep their values between Execute calls.
	flagKey, flagOutput, flagManifest, flagDir, flagVerbose = "", "", "", ".", false
	t.Cleanup(func() { pge.SetLogger(nil) })
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestPackListExtract(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "assets", "gfx", "hero.png"), "hero-bytes")
	writeFile(t, filepath.Join(dir, "assets", "sfx", "jump.wav"), "jump-bytes")
	writeFile(t, filepath.Join(dir, "assets", "pack.yaml"),
		"key: secret\noutput: ../game.dat\nfiles:\n  - gfx/hero.png\n  - sfx/*.wav\n")

	if _, err := execute(t, "pack", "--manifest", filepath.Join(dir, "assets", "pack.yaml")); err != nil {
		t.Fatalf("pack: %v", err)
	}
	packPath := filepath.Join(dir, "game.dat")

	out, err := execute(t, "list", "-k", "secret", packPath)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, name := range []string{"gfx/hero.png", "sfx/jump.wav"} {
		if !strings.Contains(out, name) {
			t.Errorf("list output missing %s:\n%s", name, out)
		}
	}

	outDir := filepath.Join(dir, "out")
	if _, err := execute(t, "extract", "-k", "secret", "-d", outDir, packPath); err != nil {
		t.Fatalf("extract: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(outDir, "sfx", "jump.wav"))
	if err != nil || string(data) != "jump-bytes" {
		t.Errorf("extracted jump.wav = %q, %v", data, err)
	}

	if _, err := execute(t, "list", "-k", "wrong", packPath); err == nil {
		t.Error("list with the wrong key succeeded")
	}
}

func TestPackArgs(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "level.txt")
	writeFile(t, in, "#..#")
	out := filepath.Join(dir, "level.dat")

	if _, err := execute(t, "pack", "-k", "k", "-o", out, in); err != nil {
		t.Fatalf("pack: %v", err)
	}
	p, err := respack.Open(out, "k")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !p.Has(filepath.ToSlash(in)) {
		t.Errorf("entries = %+v, want %s", p.Entries(), in)
	}

	if _, err := execute(t, "pack", "-k", "k", in); err == nil {
		t.Error("pack without --output succeeded")
	}
	if _, err := execute(t, "pack", "-o", out, in); err == nil {
		t.Error("pack without a key succeeded")
	}
}

func TestExtractEntryRefusesEscape(t *testing.T) {
	p, err := respack.New("k")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"../evil", "/abs/path", "a/../../b"} {
		if err := p.AddBytes(name, []byte("x")); err != nil {
			t.Fatal(err)
		}
		if err := extractEntry(p, name, t.TempDir()); err == nil {
			t.Errorf("extractEntry(%q) succeeded", name)
		}
	}
}
