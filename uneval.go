// Package uneval renders in-memory values as Rust expression source
// text that reconstructs the value when compiled, for baking data
// into a binary ahead of time instead of deserializing at startup.
//
// # Usage
//
//	type Point struct {
//	    X int32 `uneval:"x"`
//	    Y int32 `uneval:"y"`
//	}
//	s, err := uneval.ToString(Point{X: 1, Y: 2})
//	// s == "Point { x: 1i32, y: 2i32 }"
//
// The generated text assumes the matching Rust type definitions are
// in scope where it is compiled.  Go values are bound to the value
// model by bind.FromGo; trees built by hand or by parse.Parse go
// through WriteNode and NodeToString instead.
//
// # Related Packages
//
//   - github.com/Cerber-Ursi/uneval/value - the node model
//   - github.com/Cerber-Ursi/uneval/bind - Go values to nodes
//   - github.com/Cerber-Ursi/uneval/parse - YAML/JSON to nodes
//   - github.com/Cerber-Ursi/uneval/encode - nodes to Rust text
//   - github.com/Cerber-Ursi/uneval/convert - tuple helper codegen
package uneval

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Cerber-Ursi/uneval/bind"
	"github.com/Cerber-Ursi/uneval/encode"
	"github.com/Cerber-Ursi/uneval/value"
)

// OutDirEnv names the environment variable ToOutDir resolves the
// target directory from.
const OutDirEnv = "UNEVAL_OUT_DIR"

// ErrNoOutDir is returned by ToOutDir when OutDirEnv is not set.
var ErrNoOutDir = errors.New(OutDirEnv + " is not set")

// Write binds v and writes its Rust expression to w.
func Write(v any, w io.Writer, opts ...encode.EncodeOption) error {
	n, err := bind.FromGo(v)
	if err != nil {
		return err
	}
	return encode.Encode(n, w, opts...)
}

// ToString binds v and returns its Rust expression as a string.
func ToString(v any, opts ...encode.EncodeOption) (string, error) {
	n, err := bind.FromGo(v)
	if err != nil {
		return "", err
	}
	return NodeToString(n, opts...)
}

// WriteNode writes the Rust expression for a pre-built tree to w.
func WriteNode(n *value.Node, w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(n, w, opts...)
}

// NodeToString returns the Rust expression for a pre-built tree.
func NodeToString(n *value.Node, opts ...encode.EncodeOption) (string, error) {
	var sb strings.Builder
	if err := encode.Encode(n, &sb, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ToFile binds v and writes its Rust expression to path.  The write
// is atomic: text goes to a temp file in the target directory which
// is renamed into place only on success, so a bind or encode fault
// never leaves a partial file behind.
func ToFile(v any, path string, opts ...encode.EncodeOption) error {
	n, err := bind.FromGo(v)
	if err != nil {
		return err
	}
	return nodeToFile(n, path, opts)
}

// NodeToFile is ToFile for a pre-built tree.
func NodeToFile(n *value.Node, path string, opts ...encode.EncodeOption) error {
	return nodeToFile(n, path, opts)
}

func nodeToFile(n *value.Node, path string, opts []encode.EncodeOption) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	if err := encode.Encode(n, tmp, opts...); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		tmp = nil
		return err
	}
	name := tmp.Name()
	tmp = nil
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return err
	}
	return nil
}

// ToOutDir writes the expression for v to the file name under the
// directory named by the UNEVAL_OUT_DIR environment variable, the
// spot build scripts conventionally hand to code generators.
func ToOutDir(v any, name string, opts ...encode.EncodeOption) error {
	dir := os.Getenv(OutDirEnv)
	if dir == "" {
		return ErrNoOutDir
	}
	return ToFile(v, filepath.Join(dir, name), opts...)
}
