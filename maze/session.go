package maze

// Session is the per-screen game state. The controller owns one and passes
// it explicitly to the resolver and the steering mapper.
type Session struct {
	Score    int
	Level    int
	GameOver bool

	// Touch is the last pointer position, nil when no pointer is down.
	Touch *Vec
	// Free lists the empty cells of the loaded level.
	Free []Vec

	Player Handle
}

func NewSession(level int) Session {
	return Session{Level: level}
}

// IsFree reports whether p is one of the recorded free cells.
func (s *Session) IsFree(p Vec) bool {
	for _, f := range s.Free {
		if f == p {
			return true
		}
	}
	return false
}
