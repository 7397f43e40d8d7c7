package detection

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/soocke/holdmark/domain/hold"
)

func TestParse_BareArray(t *testing.T) {
	f, err := Parse([]byte(`[{"x":1,"y":2,"w":3,"h":4,"class":"hold"}]`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	holds, skipped := f.Resolve(0, 0, Defaults{State: hold.InitialState, Number: 4})
	if len(skipped) != 0 || len(holds) != 1 {
		t.Fatalf("expected one hold, got %d (skipped %v)", len(holds), skipped)
	}
	h := holds[0]
	if h.ID != 1 || h.Dims != (hold.BoxDimensions{X: 1, Y: 2, Width: 3, Height: 4}) || h.State != hold.InitialState || h.Number != 4 {
		t.Fatalf("unexpected hold %+v", h)
	}
}

func TestResolve_NormalizedUsesImageSize(t *testing.T) {
	f, err := Parse([]byte(`{"image_width":200,"image_height":100,"normalized":true,"boxes":[{"x":0.5,"y":0.5,"w":0.1,"h":0.2}]}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	holds, _ := f.Resolve(0, 0, Defaults{})
	if holds[0].Dims != (hold.BoxDimensions{X: 100, Y: 50, Width: 20, Height: 20}) {
		t.Fatalf("file size not applied: %+v", holds[0].Dims)
	}
	holds, _ = f.Resolve(400, 300, Defaults{})
	if holds[0].Dims != (hold.BoxDimensions{X: 200, Y: 150, Width: 40, Height: 60}) {
		t.Fatalf("caller size not applied: %+v", holds[0].Dims)
	}
}

func TestResolve_StateAndNumberOverrides(t *testing.T) {
	f, err := Parse([]byte(`{"boxes":[{"x":0,"y":0,"w":1,"h":1,"state":"foothold","number":0},{"x":0,"y":0,"w":1,"h":1,"state":"jug"}]}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	holds, skipped := f.Resolve(0, 0, Defaults{State: hold.StateUnselected, Number: 9})
	if holds[0].State != hold.StateFootHold || holds[0].Number != 0 {
		t.Fatalf("override not applied: %+v", holds[0])
	}
	if holds[1].State != hold.StateUnselected || holds[1].Number != 9 || len(skipped) != 1 {
		t.Fatalf("bad state should fall back and be reported: %+v skipped=%v", holds[1], skipped)
	}
}

func TestLoad_MissingAndInvalid(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "nope.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	p := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(p, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(p); err == nil {
		t.Fatalf("expected decode error")
	}
	empty := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := Load(empty)
	if err != nil || len(f.Boxes) != 0 {
		t.Fatalf("empty file should parse to no boxes: %v %v", f, err)
	}
}
