package uneval

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Cerber-Ursi/uneval/value"
)

type Point struct {
	X int32 `uneval:"x"`
	Y int32 `uneval:"y"`
}

func TestToString(t *testing.T) {
	got, err := ToString(Point{X: 1, Y: 2})
	if err != nil {
		t.Fatal(err)
	}
	if want := "Point { x: 1i32, y: 2i32 }"; got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestWrite(t *testing.T) {
	var sb strings.Builder
	if err := Write([]int8{1, 2}, &sb); err != nil {
		t.Fatal(err)
	}
	if want := "vec![1i8, 2i8].into_iter().collect()"; sb.String() != want {
		t.Fatalf("got %s, want %s", sb.String(), want)
	}
}

func TestNodeToString(t *testing.T) {
	n := value.VariantTuple("Shape", "Circle", value.F64(3.5))
	got, err := NodeToString(n)
	if err != nil {
		t.Fatal(err)
	}
	if want := "Shape::Circle(3.5f64)"; got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "point.rs")
	if err := ToFile(Point{X: 1, Y: 2}, path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "Point { x: 1i32, y: 2i32 }"; string(data) != want {
		t.Fatalf("got %s, want %s", data, want)
	}
}

func TestToFileLeavesNothingOnFault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.rs")
	if err := ToFile(make(chan int), path); err == nil {
		t.Fatal("expected bind error")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("directory not clean after fault: %v", entries)
	}
}

func TestToFileTempFilesCleaned(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.rs")
	if err := ToFile(Point{}, path); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "out.rs" {
		t.Fatalf("expected only out.rs, got %v", entries)
	}
}

func TestToOutDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(OutDirEnv, dir)
	if err := ToOutDir(Point{X: 3, Y: 4}, "point.rs"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "point.rs"))
	if err != nil {
		t.Fatal(err)
	}
	if want := "Point { x: 3i32, y: 4i32 }"; string(data) != want {
		t.Fatalf("got %s, want %s", data, want)
	}
}

func TestToOutDirUnset(t *testing.T) {
	t.Setenv(OutDirEnv, "")
	if err := ToOutDir(Point{}, "x.rs"); !errors.Is(err, ErrNoOutDir) {
		t.Fatalf("expected ErrNoOutDir, got %v", err)
	}
}
