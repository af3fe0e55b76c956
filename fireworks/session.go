package fireworks

import "time"

// Scheduling constants. The schedule timer fires every ScheduleInterval;
// each firing defers the actual burst by Normal(BurstDelayMean,
// BurstDelayStdDev) so the show does not pulse on a metronome.
const (
	ScheduleInterval = time.Second
	BurstDelayMean   = 1000 * time.Millisecond
	BurstDelayStdDev = 250 * time.Millisecond
)

// HomeRoute is the only route the animation runs on.
const HomeRoute = "/"

// Layout constants mirrored from the page chrome. The animation is only
// worth showing when the viewport is wider than the content column plus its
// margins; below that the overlay would paint under the text.
const (
	MarginPx        = 100
	GutterPx        = 20
	AnimateBufferPx = 512

	// MinAnimateWidth is the exclusive lower bound on viewport width for
	// the animation to run.
	MinAnimateWidth = MarginPx + GutterPx + AnimateBufferPx
)

// ShouldAnimate reports whether the animation is active for the given route
// and viewport width. The width comparison is strict: a viewport exactly at
// the threshold stays still.
func ShouldAnimate(route string, width int) bool {
	return route == HomeRoute && width > MinAnimateWidth
}

// Event is one discrete input to the session reducer. The set is closed;
// adding an event means extending Step's switch.
type Event interface{ isEvent() }

// Tick advances particle physics by DT.
type Tick struct{ DT time.Duration }

// Resize records new viewport dimensions. Only the width feeds the
// activation predicate; the height shapes where bursts are sampled.
type Resize struct{ Width, Height int }

// Navigate records a client-side route change.
type Navigate struct{ Route string }

// Schedule is the periodic timer firing at Now. If the animation is active
// it queues a deferred burst; if not it does nothing and, deliberately,
// consumes no generator state, so a replay with the same seed and the same
// enable/disable timeline stays deterministic.
type Schedule struct{ Now time.Time }

// Flush applies every queued burst whose due time has passed.
type Flush struct{ Now time.Time }

func (Tick) isEvent()     {}
func (Resize) isEvent()   {}
func (Navigate) isEvent() {}
func (Schedule) isEvent() {}
func (Flush) isEvent()    {}

// State is the whole animation session: the particle engine, the inputs the
// activation predicate reads, and the queue of deferred bursts. It is a
// single value threaded through Step; nothing else mutates it.
type State struct {
	Engine  *Engine
	Route   string
	Width   int
	Height  int
	Pending []time.Time
}

// NewState seeds a session. The engine's generator is seeded exactly once
// here.
func NewState(seed int64, route string, width, height int) State {
	return State{Engine: NewEngine(seed), Route: route, Width: width, Height: height}
}

// Active reports whether the session's current route and viewport allow the
// animation.
func (s State) Active() bool {
	return ShouldAnimate(s.Route, s.Width)
}

// Step applies one event to the session and returns the next state. All
// session mutation flows through here, serially, so there is no racing a
// deferred timer callback against a route change: the callback is just
// another event.
func Step(s State, ev Event) State {
	switch ev := ev.(type) {
	case Tick:
		s.Engine.Tick(ev.DT)
	case Resize:
		s.Width = ev.Width
		s.Height = ev.Height
	case Navigate:
		s.Route = ev.Route
	case Schedule:
		if !s.Active() {
			return s
		}
		delay := s.Engine.sampleDelay(BurstDelayMean, BurstDelayStdDev)
		s.Pending = append(s.Pending, ev.Now.Add(delay))
	case Flush:
		// A burst queued while the animation was active still fires after
		// the predicate turns false; only rendering is suppressed. This
		// preserves the original behavior of letting in-flight timers run.
		var kept []time.Time
		for _, due := range s.Pending {
			if due.After(ev.Now) {
				kept = append(kept, due)
				continue
			}
			s.Engine.Burst(BurstAt(float64(s.Width), float64(s.Height)))
		}
		s.Pending = kept
	}
	return s
}
