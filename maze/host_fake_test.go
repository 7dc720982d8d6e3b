package maze

type fakeEntity struct {
	role  Role
	pos   Vec
	alive bool
}

type fakeAnim struct {
	id     TaskID
	handle Handle
	seq    Sequence
	done   func()
}

type fakeHost struct {
	next     Handle
	entities map[Handle]*fakeEntity
	frozen   map[Handle]bool
	stopped  map[Handle]int
	anims    []*fakeAnim
	nextTask TaskID
	score    int
	prompt   *Prompt
	onCont   func(Contact)
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		entities: make(map[Handle]*fakeEntity),
		frozen:   make(map[Handle]bool),
		stopped:  make(map[Handle]int),
	}
}

func (f *fakeHost) add(role Role, pos Vec) Handle {
	f.next++
	f.entities[f.next] = &fakeEntity{role: role, pos: pos, alive: true}
	return f.next
}

func (f *fakeHost) Place(p Placement) Handle   { return f.add(p.Role, p.Pos) }
func (f *fakeHost) SpawnPlayer(pos Vec) Handle { return f.add(RolePlayer, pos) }
func (f *fakeHost) Freeze(h Handle)            { f.frozen[h] = true }
func (f *fakeHost) StopMotion(h Handle)        { f.stopped[h]++ }
func (f *fakeHost) ShowScore(score int)        { f.score = score }
func (f *fakeHost) ShowPrompt(p Prompt)        { f.prompt = &p }
func (f *fakeHost) Subscribe(fn func(Contact)) { f.onCont = fn }

func (f *fakeHost) Remove(h Handle) {
	if e, ok := f.entities[h]; ok {
		e.alive = false
	}
	kept := f.anims[:0]
	for _, a := range f.anims {
		if a.handle != h {
			kept = append(kept, a)
		}
	}
	f.anims = kept
}

func (f *fakeHost) Alive(h Handle) bool {
	e, ok := f.entities[h]
	return ok && e.alive
}

func (f *fakeHost) Position(h Handle) Vec {
	if e, ok := f.entities[h]; ok {
		return e.pos
	}
	return Vec{}
}

func (f *fakeHost) Animate(h Handle, seq Sequence, done func()) TaskID {
	kept := f.anims[:0]
	for _, a := range f.anims {
		if a.handle != h {
			kept = append(kept, a)
		}
	}
	f.anims = kept
	f.nextTask++
	f.anims = append(f.anims, &fakeAnim{id: f.nextTask, handle: h, seq: seq, done: done})
	return f.nextTask
}

// finishAll completes every running animation, applying move steps.
func (f *fakeHost) finishAll() {
	for len(f.anims) > 0 {
		a := f.anims[0]
		f.anims = f.anims[1:]
		for _, st := range a.seq {
			if st.Kind == StepMove {
				if e, ok := f.entities[a.handle]; ok {
					e.pos = st.To
				}
			}
		}
		if a.done != nil {
			a.done()
		}
	}
}

func (f *fakeHost) count(role Role) int {
	n := 0
	for _, e := range f.entities {
		if e.alive && e.role == role {
			n++
		}
	}
	return n
}

func (f *fakeHost) first(role Role) Handle {
	for h := Handle(1); h <= f.next; h++ {
		if e := f.entities[h]; e != nil && e.alive && e.role == role {
			return h
		}
	}
	return 0
}
