package levels

import (
	"errors"
	"testing"

	"github.com/milk9111/tiltmaze/maze"
)

func TestBundledLevelsParse(t *testing.T) {
	if Count() < 1 {
		t.Fatalf("expected at least one bundled level")
	}
	start := maze.DefaultConfig().Start
	for i := 1; i <= Count(); i++ {
		text, err := Load(i)
		if err != nil {
			t.Fatalf("level %d: %v", i, err)
		}
		layout, err := maze.ParseLevel(text)
		if err != nil {
			t.Fatalf("level %d: %v", i, err)
		}

		s := maze.Session{Free: layout.Free}
		if !s.IsFree(start) {
			t.Fatalf("level %d: start %v is not a free cell", i, start)
		}

		finishes := 0
		for _, p := range layout.Placements {
			if p.Role == maze.RoleFinish {
				finishes++
			}
		}
		if finishes != 1 {
			t.Fatalf("level %d: expected one finish, got %d", i, finishes)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	for _, index := range []int{0, -1, Count() + 1} {
		_, err := Load(index)
		if !errors.Is(err, ErrLevelNotFound) {
			t.Fatalf("Load(%d): expected ErrLevelNotFound, got %v", index, err)
		}
	}
}
