// Package fireworks drives the decorative particle animation shown on the
// home page: a deterministic physics engine for short-lived particles plus a
// reducer-style session state machine that schedules randomized bursts.
package fireworks

import (
	"math"
	"math/rand"
	"time"
)

// Physics tuning. Positions are CSS pixels, velocities px/sec.
const (
	// Gravity pulls particles down (px/sec²).
	Gravity = 120.0
	// Drag damps velocity proportionally (1/sec).
	Drag = 0.4
	// MinLifetime/MaxLifetime bound how long a spawned particle survives (sec).
	MinLifetime = 1.0
	MaxLifetime = 3.0
	// UpwardBias is subtracted from the vertical launch velocity so bursts
	// bloom upward before gravity wins (fraction of launch speed).
	UpwardBias = 0.6
)

// Particle is one transient firework spark.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // seconds remaining
	Hue    float64 // degrees on the color wheel
	Size   float64 // px
}

// BurstParams tunes one burst: how many particles, where the burst center is
// sampled from (per-axis normal), and how hard particles launch.
type BurstParams struct {
	Count        int
	MeanX, MeanY float64
	StdDevX      float64
	StdDevY      float64
	Speed        float64 // mean launch speed, px/sec
}

// BurstAt returns the default burst for a viewport of the given size:
// centered horizontally with spread proportional to width, in the upper
// third vertically.
func BurstAt(width, height float64) BurstParams {
	return BurstParams{
		Count:   32,
		MeanX:   width / 2,
		MeanY:   height / 3,
		StdDevX: width / 4,
		StdDevY: height / 12,
		Speed:   150,
	}
}

// Engine owns the active particle set and the session's random generator.
// All randomness flows through the one seeded source so a run is fully
// reproducible from its seed and event sequence.
type Engine struct {
	particles []Particle
	rng       *rand.Rand
}

// NewEngine returns an engine with an empty particle set and a generator
// seeded once for the session.
func NewEngine(seed int64) *Engine {
	return &Engine{rng: rand.New(rand.NewSource(seed))}
}

// Particles returns the live particle set. Callers must not retain the
// slice across ticks.
func (e *Engine) Particles() []Particle { return e.particles }

// Burst spawns Count particles. Each particle's position is drawn from the
// params' 2D distribution (each axis independently normal) and launched with
// an upward-biased random velocity; the burst shares one hue with per-spark
// jitter so it reads as a single firework.
func (e *Engine) Burst(p BurstParams) {
	hue := e.rng.Float64() * 360
	for i := 0; i < p.Count; i++ {
		angle := e.rng.Float64() * 2 * math.Pi
		speed := p.Speed * (0.5 + e.rng.Float64())
		e.particles = append(e.particles, Particle{
			X:    e.rng.NormFloat64()*p.StdDevX + p.MeanX,
			Y:    e.rng.NormFloat64()*p.StdDevY + p.MeanY,
			VX:   math.Cos(angle) * speed,
			VY:   math.Sin(angle)*speed - UpwardBias*p.Speed,
			Life: MinLifetime + e.rng.Float64()*(MaxLifetime-MinLifetime),
			Hue:  hue + e.rng.NormFloat64()*10,
			Size: 2 + e.rng.Float64()*2,
		})
	}
}

// Tick advances every particle by dt and drops the ones whose life has run
// out. It is a function of the previous state and dt only; out-of-bounds
// particles are never clamped, they just fall until they expire.
func (e *Engine) Tick(dt time.Duration) {
	s := dt.Seconds()
	kept := e.particles[:0]
	for _, p := range e.particles {
		p.VY += Gravity * s
		p.VX -= p.VX * Drag * s
		p.VY -= p.VY * Drag * s
		p.X += p.VX * s
		p.Y += p.VY * s
		p.Life -= s
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	e.particles = kept
}

// sampleDelay draws a non-negative duration from Normal(mean, stddev),
// consuming generator state.
func (e *Engine) sampleDelay(mean, stddev time.Duration) time.Duration {
	d := time.Duration(e.rng.NormFloat64()*float64(stddev)) + mean
	if d < 0 {
		return 0
	}
	return d
}
