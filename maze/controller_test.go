package maze

import (
	"strings"
	"testing"
)

func TestControllerLoad(t *testing.T) {
	layout, err := ParseLevel("x x\n s \nvfg")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	host := newFakeHost()
	c := NewController(host, DefaultConfig(), ModeTilt, 3, nil)

	placed := c.Load(layout)
	if placed != 6 {
		t.Fatalf("expected 6 placed entities, got %d", placed)
	}
	s := c.Session()
	if len(s.Free) != 3 {
		t.Fatalf("expected 3 free cells, got %d", len(s.Free))
	}
	if placed+len(s.Free) != 9 {
		t.Fatalf("placed+free should equal the character count")
	}
	if host.count(RolePlayer) != 1 {
		t.Fatalf("expected one player, got %d", host.count(RolePlayer))
	}
	if s.Score != 0 || s.Level != 3 || s.GameOver {
		t.Fatalf("unexpected initial session %+v", s)
	}
	if host.onCont == nil {
		t.Fatal("expected the controller to subscribe to contacts")
	}
}

func TestStarThenFinishScenario(t *testing.T) {
	c, host := newTestController(t, "x x\n   \nx x", 7)

	if got := host.count(RoleWall); got != 4 {
		t.Fatalf("expected 4 walls, got %d", got)
	}

	star := host.Place(Placement{Role: RoleStar, Pos: Vec{X: 96, Y: 96}})
	finish := host.Place(Placement{Role: RoleFinish, Pos: Vec{X: 160, Y: 96}})
	player := c.Session().Player

	host.onCont(Contact{Player: player, Other: star, Role: RoleStar})
	host.onCont(Contact{Player: player, Other: finish, Role: RoleFinish})
	host.finishAll()

	s := c.Session()
	if s.Score != 1 {
		t.Fatalf("expected score 1, got %d", s.Score)
	}
	if s.Level != 8 {
		t.Fatalf("expected level 8, got %d", s.Level)
	}
	if host.prompt == nil {
		t.Fatal("expected end-of-level prompt")
	}
	if !strings.Contains(host.prompt.Title(), "Your score: 1") {
		t.Fatalf("unexpected prompt title %q", host.prompt.Title())
	}
	if !strings.Contains(host.prompt.Button(), "8") {
		t.Fatalf("expected button to name the next level, got %q", host.prompt.Button())
	}
}
