package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/scott-cotton/cli"

	"github.com/Cerber-Ursi/uneval/value"
)

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func TestCheckIgnoresColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.rs")
	if err := os.WriteFile(path, []byte("Marker\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := &Config{Out: path, Color: true}
	cc := &cli.Context{Out: nopWriteCloser{&bytes.Buffer{}}}
	if err := check(cfg, cc, value.UnitRecord("Marker")); err != nil {
		t.Fatalf("up-to-date file reported stale: %v", err)
	}
}

func TestCheckReportsStale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.rs")
	if err := os.WriteFile(path, []byte("Other\n"), 0644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	cfg := &Config{Out: path}
	if err := check(cfg, &cli.Context{Out: nopWriteCloser{&out}}, value.UnitRecord("Marker")); err == nil {
		t.Fatal("expected stale error")
	}
	if out.Len() == 0 {
		t.Fatal("expected a diff report")
	}
}
