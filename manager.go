package ripple

import (
	"image"
	"image/color"

	"gioui.org/f32"
)

// MaxEffects is the maximum number of ripples a Manager keeps alive at once.
const MaxEffects = 3

// Manager owns the ripples of a single widget. The ripples live in a fixed
// ring of MaxEffects slots kept in insertion order: when the ring is full the
// oldest ripple is dropped to make room for the new one.
//
// The zero value is ready to use. A Manager is meant to be driven from the
// frame loop and is not safe for concurrent use.
type Manager struct {
	slots [MaxEffects]Effect
	head  int // index of the oldest ripple
	n     int
}

// NewManager returns an empty ripple manager.
func NewManager() *Manager {
	return &Manager{}
}

// at returns the i-th ripple in insertion order.
func (m *Manager) at(i int) *Effect {
	return &m.slots[(m.head+i)%MaxEffects]
}

// AddRipple starts a new ripple at now. Finished ripples are discarded first;
// if the ring is still full afterwards, the oldest ripple is evicted even if
// it is still running.
func (m *Manager) AddRipple(center f32.Point, c color.Color, maxRadius float32, now float64) {
	m.compact()

	if m.n >= MaxEffects {
		*m.at(0) = Effect{}
		m.head = (m.head + 1) % MaxEffects
		m.n--
	}

	e := NewEffect(center, c, maxRadius)
	e.Start(now)
	*m.at(m.n) = e
	m.n++
}

// UpdateAndRender advances every ripple to now and draws the running ones on s,
// oldest first. A ripple which expires during this pass is not drawn.
// It reports whether at least one ripple was running, meaning that the caller
// should schedule another frame.
func (m *Manager) UpdateAndRender(now float64, s Surface) bool {
	var active bool

	for i := 0; i < m.n; i++ {
		e := m.at(i)
		if e.Update(now) {
			e.Render(s)
			active = true
		}
	}
	m.compact()

	return active
}

// UpdateAndRenderClipped is like UpdateAndRender but restricts the drawing
// to the clip rectangle, e.g. the bounds of the widget owning the ripples.
func (m *Manager) UpdateAndRenderClipped(now float64, s ClipSurface, clip image.Rectangle) bool {
	return m.UpdateAndRender(now, s.Clipped(clip))
}

// Clear drops every ripple.
func (m *Manager) Clear() {
	*m = Manager{}
}

// Len returns the number of ripples held by the manager.
func (m *Manager) Len() int {
	return m.n
}

// Active reports whether any of the held ripples is running.
func (m *Manager) Active() bool {
	for i := 0; i < m.n; i++ {
		if m.at(i).Active {
			return true
		}
	}
	return false
}

// Effects returns a copy of the held ripples, oldest first.
func (m *Manager) Effects() []Effect {
	effects := make([]Effect, 0, m.n)
	for i := 0; i < m.n; i++ {
		effects = append(effects, *m.at(i))
	}
	return effects
}

// compact removes the inactive ripples, keeping the insertion order of the rest.
func (m *Manager) compact() {
	k := 0
	for i := 0; i < m.n; i++ {
		e := m.at(i)
		if !e.Active {
			continue
		}
		if k != i {
			*m.at(k) = *e
		}
		k++
	}
	for i := k; i < m.n; i++ {
		*m.at(i) = Effect{}
	}
	m.n = k
	if m.n == 0 {
		m.head = 0
	}
}
