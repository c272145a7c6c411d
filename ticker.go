package burrow

// TickFunc receives the elapsed-time factor for one frame. A factor of 1
// corresponds to one frame at TargetTPS.
type TickFunc func(dt float64)

type tickSubscriber struct {
	id      uint32
	fn      TickFunc
	removed bool
}

// Ticker is the shared frame clock. Subscribers run in registration order,
// once per Tick. Removal while a tick is in progress takes effect
// immediately for the removed subscriber and is compacted afterwards.
type Ticker struct {
	subs    []tickSubscriber
	nextID  uint32
	ticking bool
	dirty   bool
}

// TickHandle allows removing a registered tick callback.
type TickHandle struct {
	id     uint32
	ticker *Ticker
}

// Add registers fn and returns a handle that removes it.
func (t *Ticker) Add(fn TickFunc) TickHandle {
	t.nextID++
	t.subs = append(t.subs, tickSubscriber{id: t.nextID, fn: fn})
	return TickHandle{id: t.nextID, ticker: t}
}

// Remove unregisters this callback so it no longer fires. Removing a zero
// handle or an already removed callback is a no-op.
func (h TickHandle) Remove() {
	if h.ticker == nil {
		return
	}
	h.ticker.remove(h.id)
}

// Active reports whether the callback behind h is still registered.
func (h TickHandle) Active() bool {
	if h.ticker == nil {
		return false
	}
	for i := range h.ticker.subs {
		if h.ticker.subs[i].id == h.id {
			return !h.ticker.subs[i].removed
		}
	}
	return false
}

func (t *Ticker) remove(id uint32) {
	for i := range t.subs {
		if t.subs[i].id != id {
			continue
		}
		if t.ticking {
			t.subs[i].removed = true
			t.subs[i].fn = nil
			t.dirty = true
			return
		}
		copy(t.subs[i:], t.subs[i+1:])
		t.subs[len(t.subs)-1] = tickSubscriber{}
		t.subs = t.subs[:len(t.subs)-1]
		return
	}
}

// Len returns the number of registered callbacks.
func (t *Ticker) Len() int {
	n := 0
	for i := range t.subs {
		if !t.subs[i].removed {
			n++
		}
	}
	return n
}

// Tick invokes every registered callback with dt. Callbacks added during the
// tick first run on the next tick.
func (t *Ticker) Tick(dt float64) {
	t.ticking = true
	defer t.endTick()
	n := len(t.subs)
	for i := 0; i < n; i++ {
		if t.subs[i].removed {
			continue
		}
		t.subs[i].fn(dt)
	}
}

// endTick runs deferred so pending removals are applied even when a
// callback panics.
func (t *Ticker) endTick() {
	t.ticking = false
	if t.dirty {
		t.compact()
	}
}

// Clear removes every callback.
func (t *Ticker) Clear() {
	if t.ticking {
		for i := range t.subs {
			t.subs[i].removed = true
			t.subs[i].fn = nil
		}
		t.dirty = true
		return
	}
	clear(t.subs)
	t.subs = t.subs[:0]
}

func (t *Ticker) compact() {
	kept := t.subs[:0]
	for _, s := range t.subs {
		if !s.removed {
			kept = append(kept, s)
		}
	}
	clear(t.subs[len(kept):])
	t.subs = kept
	t.dirty = false
}
