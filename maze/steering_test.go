package maze

import "testing"

func TestGravity(t *testing.T) {
	cfg := DefaultConfig()
	touch := Vec{X: 300, Y: 500}

	cases := []struct {
		name   string
		s      Session
		mode   Mode
		player Vec
		tilt   *Sample
		want   Vec
		ok     bool
	}{
		{
			name: "tilt_cross_mapped",
			mode: ModeTilt,
			tilt: &Sample{X: 0.2, Y: 0.5},
			want: Vec{X: -25, Y: 10},
			ok:   true,
		},
		{
			name: "tilt_without_sample",
			mode: ModeTilt,
			ok:   false,
		},
		{
			name:   "pointer_offset",
			s:      Session{Touch: &touch},
			mode:   ModePointer,
			player: Vec{X: 100, Y: 100},
			want:   Vec{X: 2, Y: 4},
			ok:     true,
		},
		{
			name:   "pointer_without_touch",
			mode:   ModePointer,
			player: Vec{X: 100, Y: 100},
			ok:     false,
		},
		{
			name: "pointer_ignores_tilt",
			mode: ModePointer,
			tilt: &Sample{X: 1, Y: 1},
			ok:   false,
		},
		{
			name: "game_over_skips_update",
			s:    Session{GameOver: true, Touch: &touch},
			mode: ModePointer,
			ok:   false,
		},
		{
			name: "game_over_skips_tilt",
			s:    Session{GameOver: true},
			mode: ModeTilt,
			tilt: &Sample{X: 1, Y: 1},
			ok:   false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Gravity(tc.s, cfg, tc.mode, tc.player, tc.tilt)
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if ok && got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestControllerSteerFollowsPlayer(t *testing.T) {
	c, host := newTestController(t, " ", 1)
	c.mode = ModePointer

	if _, ok := c.Steer(nil); ok {
		t.Fatal("expected no gravity without touch")
	}

	start := DefaultConfig().Start
	c.SetTouch(&Vec{X: start.X + 200, Y: start.Y - 100})
	g, ok := c.Steer(nil)
	if !ok || g != (Vec{X: 2, Y: -1}) {
		t.Fatalf("unexpected gravity %+v ok=%v", g, ok)
	}

	c.SetTouch(nil)
	if _, ok := c.Steer(nil); ok {
		t.Fatal("expected touch release to stop steering")
	}

	host.Remove(c.Session().Player)
	c.SetTouch(&Vec{})
	if _, ok := c.Steer(nil); ok {
		t.Fatal("expected no steering without a live player")
	}
}
