package animation

import (
	"math"
	"time"

	"github.com/go-drift/animated/pkg/animated"
	"github.com/go-drift/animated/pkg/errors"
)

// Spring describes the physical parameters of a damped spring.
type Spring struct {
	// Stiffness is the spring constant k.
	Stiffness float64
	// Damping is the viscous damping coefficient c.
	Damping float64
	// Mass is the mass attached to the spring.
	Mass float64
}

// DefaultSpring returns a critically-feeling spring suitable for most
// UI transitions.
func DefaultSpring() Spring {
	return Spring{Stiffness: 180, Damping: 26, Mass: 1}
}

// BouncySpring returns an underdamped spring with visible overshoot.
func BouncySpring() Spring {
	return Spring{Stiffness: 400, Damping: 10, Mass: 1}
}

// Rest thresholds below which a spring simulation is considered settled.
const (
	restDisplacement = 0.001
	restSpeed        = 0.001
)

// SpringSimulation integrates a damped spring toward a target position.
// It is a plain state machine with no clock of its own: callers step it
// with explicit time deltas, which keeps it usable both from
// [SpringDriver] and directly from physics-driven widgets.
type SpringSimulation struct {
	spring   Spring
	position float64
	velocity float64
	target   float64
	done     bool
}

// NewSpringSimulation returns a simulation starting at position with
// the given initial velocity, moving toward target.
func NewSpringSimulation(spring Spring, position, velocity, target float64) *SpringSimulation {
	if spring.Mass <= 0 {
		spring.Mass = 1
	}
	return &SpringSimulation{
		spring:   spring,
		position: position,
		velocity: velocity,
		target:   target,
	}
}

// Step advances the simulation by dt seconds and reports whether it has
// settled. Large deltas are integrated in fixed substeps so frame drops
// do not destabilize the integration.
func (s *SpringSimulation) Step(dt float64) bool {
	if s.done {
		return true
	}
	const maxSubstep = 0.001 // 1ms, semi-implicit Euler stays stable here
	for dt > 0 {
		h := dt
		if h > maxSubstep {
			h = maxSubstep
		}
		dt -= h

		force := -s.spring.Stiffness*(s.position-s.target) - s.spring.Damping*s.velocity
		s.velocity += force / s.spring.Mass * h
		s.position += s.velocity * h

		if math.Abs(s.velocity) < restSpeed && math.Abs(s.position-s.target) < restDisplacement {
			s.position = s.target
			s.velocity = 0
			s.done = true
			return true
		}
	}
	return false
}

// Position returns the current position.
func (s *SpringSimulation) Position() float64 { return s.position }

// Velocity returns the current velocity.
func (s *SpringSimulation) Velocity() float64 { return s.velocity }

// IsDone reports whether the simulation has settled at the target.
func (s *SpringSimulation) IsDone() bool { return s.done }

// SpringDriver animates a node to a target with damped spring physics.
// The typical sequence for a gesture release is ExtractOffset on the
// node followed by a SpringDriver from the gesture's end velocity.
type SpringDriver struct {
	// Node is the value node to animate.
	Node *animated.ValueNode
	// To is the target base value.
	To float64
	// Spring holds the physical parameters. A zero value selects
	// DefaultSpring.
	Spring Spring
	// InitialVelocity seeds the simulation, in units per second.
	InitialVelocity float64
	// OvershootClamping pins the value at the target the first time the
	// spring crosses it.
	OvershootClamping bool
	// OnEnd is called when the driver stops.
	OnEnd func(finished bool)

	ticker      *Ticker
	sim         *SpringSimulation
	start       float64
	lastElapsed time.Duration
	running     bool
}

// Start begins the spring from the node's current base value.
func (d *SpringDriver) Start() {
	if d.Node == nil {
		errors.Report(&errors.AnimatedError{
			Op:   "animation.SpringDriver.Start",
			Kind: errors.KindDriver,
			Err:  errors.ErrNoNode,
		})
		return
	}
	d.stopTicker()
	spring := d.Spring
	if spring == (Spring{}) {
		spring = DefaultSpring()
	}
	d.start = d.Node.RawValue()
	d.sim = NewSpringSimulation(spring, d.start, d.InitialVelocity, d.To)
	d.lastElapsed = 0
	d.running = true
	d.ticker = NewTicker(d.tick)
	d.ticker.Start()
}

func (d *SpringDriver) tick(elapsed time.Duration) {
	dt := (elapsed - d.lastElapsed).Seconds()
	d.lastElapsed = elapsed
	// Cap the delta so a long frame gap cannot launch the spring.
	if dt > 0.064 {
		dt = 0.064
	}
	if dt <= 0 {
		return
	}

	settled := d.sim.Step(dt)
	pos := d.sim.Position()

	if d.OvershootClamping && d.crossedTarget(pos) {
		d.Node.SetValue(d.To)
		d.finish(true)
		return
	}

	d.Node.SetValue(pos)
	if settled {
		d.finish(true)
	}
}

// crossedTarget reports whether pos has passed the target relative to
// the approach direction at Start.
func (d *SpringDriver) crossedTarget(pos float64) bool {
	if d.start <= d.To {
		return pos >= d.To
	}
	return pos <= d.To
}

// Stop halts the animation at the current value.
func (d *SpringDriver) Stop() {
	if d.running {
		d.finish(false)
	}
}

// IsRunning reports whether the driver is currently animating.
func (d *SpringDriver) IsRunning() bool { return d.running }

func (d *SpringDriver) finish(finished bool) {
	d.stopTicker()
	d.running = false
	if d.OnEnd != nil {
		d.OnEnd(finished)
	}
}

func (d *SpringDriver) stopTicker() {
	if d.ticker != nil {
		d.ticker.Stop()
		d.ticker = nil
	}
}
