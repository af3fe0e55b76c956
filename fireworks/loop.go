package fireworks

import (
	"sync"
	"time"
)

// FrameInterval is how often the host loop advances particle physics.
const FrameInterval = 50 * time.Millisecond

// Loop runs a session against wall-clock timers. One goroutine owns the
// state and applies every event serially through Step; external inputs
// (navigation, resize) are posted onto the same queue, so the reducer's
// single-writer guarantee holds by construction.
type Loop struct {
	events chan Event
	done   chan struct{}
	wg     sync.WaitGroup

	mu    sync.Mutex
	state State
}

// NewLoop wraps an initial session state in a runnable loop.
func NewLoop(initial State) *Loop {
	return &Loop{
		events: make(chan Event, 16),
		done:   make(chan struct{}),
		state:  initial,
	}
}

// Start arms the schedule and frame timers and begins consuming events.
func (l *Loop) Start() {
	l.wg.Add(1)
	go l.run()
}

// Stop halts the timers and waits for the event goroutine to drain.
func (l *Loop) Stop() {
	close(l.done)
	l.wg.Wait()
}

// Post enqueues an external event (Navigate, Resize). It never blocks the
// caller's event handler for long: the queue is buffered and the consumer
// is a single dedicated goroutine.
func (l *Loop) Post(ev Event) {
	select {
	case l.events <- ev:
	case <-l.done:
	}
}

// Snapshot returns the current session state for the render path. The
// returned state is detached: the particle set and pending queue are copied
// under the mutex, so readers never race the frame ticker mutating the live
// engine. The snapshot is a read-only view; feed events to Post, not to
// Step on a snapshot.
func (l *Loop) Snapshot() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := l.state
	s.Engine = &Engine{
		particles: append([]Particle(nil), l.state.Engine.particles...),
		rng:       l.state.Engine.rng,
	}
	s.Pending = append([]time.Time(nil), l.state.Pending...)
	return s
}

// Particles returns a copy of the live particle set, for render paths that
// only need the sparks.
func (l *Loop) Particles() []Particle {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Particle(nil), l.state.Engine.particles...)
}

func (l *Loop) run() {
	defer l.wg.Done()

	schedule := time.NewTicker(ScheduleInterval)
	defer schedule.Stop()
	frame := time.NewTicker(FrameInterval)
	defer frame.Stop()

	last := time.Now()
	for {
		select {
		case <-l.done:
			return
		case now := <-schedule.C:
			l.apply(Schedule{Now: now})
		case now := <-frame.C:
			l.apply(Flush{Now: now})
			l.apply(Tick{DT: now.Sub(last)})
			last = now
		case ev := <-l.events:
			l.apply(ev)
		}
	}
}

func (l *Loop) apply(ev Event) {
	l.mu.Lock()
	l.state = Step(l.state, ev)
	l.mu.Unlock()
}
