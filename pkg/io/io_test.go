package io

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/sketchkit/pkg/attr"
	"github.com/matzehuels/sketchkit/pkg/document"
	"github.com/matzehuels/sketchkit/pkg/errors"
	"github.com/matzehuels/sketchkit/pkg/scene"
)

const pair = `
[[shape]]
id = "a"
kind = "circle"
radius = 10

[[shape]]
id = "b"
like = "a"
at = { ref = "a", anchor = "east", dx = 100 }

[[arrow]]
from = { ref = "a", anchor = "east" }
to = { ref = "b", anchor = "west" }
`

func TestImportScene(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pair.toml")
	if err := os.WriteFile(path, []byte(pair), 0o644); err != nil {
		t.Fatal(err)
	}

	sc, err := ImportScene(path)
	if err != nil {
		t.Fatalf("ImportScene() error = %v", err)
	}
	if len(sc.Shapes) != 2 || sc.Shapes[1].Like != "a" {
		t.Errorf("ImportScene() = %+v", sc)
	}

	_, err = ImportScene(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ImportScene(missing) error = %v, want FILE_NOT_FOUND", err)
	}

	_, err = ImportScene("scene\x00.toml")
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("ImportScene(NUL) error = %v, want INVALID_PATH", err)
	}

	_, err = ReadScene(strings.NewReader("[[shape]]\nid = \"a\"\n"))
	if !errors.Is(err, errors.ErrCodeInvalidScene) {
		t.Errorf("ReadScene(invalid) error = %v, want INVALID_SCENE", err)
	}
}

func TestResultRoundTrip(t *testing.T) {
	sc, err := ReadScene(strings.NewReader(pair))
	if err != nil {
		t.Fatalf("ReadScene() error = %v", err)
	}
	res, err := scene.Evaluate(context.Background(), sc, scene.Options{})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(res, &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"path": "M 10 0 H 92.5"`) {
		t.Errorf("WriteJSON() output missing arrow path:\n%s", buf.String())
	}

	back, err := ReadResult(&buf)
	if err != nil {
		t.Fatalf("ReadResult() error = %v", err)
	}
	if len(back.Elements) != len(res.Elements) {
		t.Fatalf("ReadResult() has %d elements, want %d", len(back.Elements), len(res.Elements))
	}
	for i, el := range back.Elements {
		if el.Kind != res.Elements[i].Kind {
			t.Errorf("element %d kind = %v, want %v", i, el.Kind, res.Elements[i].Kind)
		}
	}
	if back.Elements[2].Kind != document.KindPath {
		t.Errorf("element 2 kind = %v, want path", back.Elements[2].Kind)
	}
	if got := back.Elements[1].Attributes.Scalar(attr.KeyCX); got != 110 {
		t.Errorf("b cx = %v, want 110", got)
	}
	if b, _ := back.Shape("b"); b.Anchors["west"] != (scene.Position{X: 100, Y: 0}) {
		t.Errorf("b west = %v, want (100, 0)", b.Anchors["west"])
	}
}

func TestExportJSON(t *testing.T) {
	res := &scene.Result{Unit: "px"}
	path := filepath.Join(t.TempDir(), "out.json")
	if err := ExportJSON(res, path); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"unit": "px"`) {
		t.Errorf("ExportJSON() wrote %s", data)
	}

	if err := ExportJSON(res, filepath.Join(t.TempDir(), "no", "such", "dir.json")); err == nil {
		t.Error("ExportJSON() into a missing directory succeeded")
	}
}
