package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/tiltmaze/maze"
	"gopkg.in/yaml.v3"
)

func TestTuningMatchesDefaults(t *testing.T) {
	tuning, err := LoadTuning()
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if got, want := tuning.Config(), maze.DefaultConfig(); got != want {
		t.Fatalf("shipped tuning drifted from defaults:\n got %+v\nwant %+v", got, want)
	}
	if tuning.Physics.PixelsPerMeter != 150 {
		t.Fatalf("expected 150 pixels per meter, got %v", tuning.Physics.PixelsPerMeter)
	}
	if tuning.Background.Or(color.Black) == color.Black {
		t.Fatalf("expected a background color")
	}
}

func TestTuningConfigOverrides(t *testing.T) {
	spec := TuningSpec{
		Start:    PointSpec{X: 10, Y: 20},
		Death:    DeathTuningSpec{Move: time.Second},
		Steering: SteeringTuningSpec{TiltScale: 25},
	}
	cfg := spec.Config()
	if cfg.Start != (maze.Vec{X: 10, Y: 20}) {
		t.Fatalf("start not applied: %+v", cfg.Start)
	}
	if cfg.DeathMove != time.Second || cfg.DeathShrink != 250*time.Millisecond {
		t.Fatalf("unexpected death timings %v %v", cfg.DeathMove, cfg.DeathShrink)
	}
	if cfg.TiltScale != 25 || cfg.PointerDivisor != 100 {
		t.Fatalf("unexpected steering %v %v", cfg.TiltScale, cfg.PointerDivisor)
	}
}

func TestEntityPrefabsLoad(t *testing.T) {
	for _, name := range []string{"wall.yaml", "star.yaml", "vortex.yaml", "finish.yaml", "teleporter.yaml", "player.yaml"} {
		t.Run(name, func(t *testing.T) {
			spec, err := LoadEntityBuildSpec(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if len(spec.Components) == 0 {
				t.Fatalf("no components in %s", name)
			}
			layer, err := DecodeComponentSpec[CollisionLayerComponentSpec](spec.Components["collision_layer"])
			if err != nil {
				t.Fatalf("decode collision layer: %v", err)
			}
			if _, err := maze.ParseRole(layer.Role); err != nil {
				t.Fatalf("collision layer role: %v", err)
			}
		})
	}
}

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: `"#ff8000"`, want: color.NRGBA{R: 255, G: 128, A: 255}},
		{in: `"10203040"`, want: color.NRGBA{R: 16, G: 32, B: 48, A: 64}},
		{in: `"#fff"`, wantErr: true},
		{in: `[1, 2]`, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tc.in), &c)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if c.Color != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, c.Color)
			}
		})
	}
}

func TestPaths(t *testing.T) {
	if got := cleanPrefabPath("prefabs/star.yaml"); got != "star.yaml" {
		t.Fatalf("cleanPrefabPath: %q", got)
	}
	for _, in := range []string{"tilt_curve.tengo", "scripts/tilt_curve.tengo", "prefabs/scripts/tilt_curve.tengo"} {
		if got := cleanScriptPath(in); got != "scripts/tilt_curve.tengo" {
			t.Fatalf("cleanScriptPath(%q) = %q", in, got)
		}
	}
	if _, err := LoadScript("tilt_curve.tengo"); err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
}

func TestWatcherReportsSpecChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(target, []byte("start: {x: 1, y: 2}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if name != target {
			t.Fatalf("expected %s, got %s", target, name)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no watcher event")
	}
}
