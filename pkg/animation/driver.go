package animation

import (
	"math"
	"time"

	"github.com/go-drift/animated/pkg/animated"
	"github.com/go-drift/animated/pkg/errors"
)

// Driver animates the base value of a single value node. A driver
// writes through [animated.ValueNode.SetValue], so the node's offset
// and any in-flight gesture remain untouched.
//
// Drivers are not reusable across nodes; create one per animation.
type Driver interface {
	// Start begins the animation from the node's current base value.
	Start()
	// Stop halts the animation in place. OnEnd callbacks receive
	// finished=false.
	Stop()
	// IsRunning reports whether the driver is currently animating.
	IsRunning() bool
}

// TimingDriver animates a node to a target value over a fixed duration
// with an optional easing curve.
type TimingDriver struct {
	// Node is the value node to animate.
	Node *animated.ValueNode
	// To is the target base value.
	To float64
	// Duration is the length of the animation.
	Duration time.Duration
	// Curve transforms linear progress (optional).
	Curve func(float64) float64
	// OnEnd is called when the driver stops. finished is true when the
	// target was reached, false when the driver was stopped early.
	OnEnd func(finished bool)

	ticker  *Ticker
	from    float64
	running bool
}

// Start begins animating from the node's current base value. Starting
// a running driver restarts it from the current value.
func (d *TimingDriver) Start() {
	if d.Node == nil {
		errors.Report(&errors.AnimatedError{
			Op:   "animation.TimingDriver.Start",
			Kind: errors.KindDriver,
			Err:  errors.ErrNoNode,
		})
		return
	}
	d.stopTicker()
	d.from = d.Node.RawValue()
	d.running = true
	d.ticker = NewTicker(d.tick)
	d.ticker.Start()
}

func (d *TimingDriver) tick(elapsed time.Duration) {
	if d.Duration <= 0 {
		d.Node.SetValue(d.To)
		d.finish(true)
		return
	}
	progress := float64(elapsed) / float64(d.Duration)
	if progress >= 1 {
		progress = 1
	}
	eased := progress
	if d.Curve != nil {
		eased = d.Curve(progress)
	}
	d.Node.SetValue(d.from + (d.To-d.from)*eased)
	if progress >= 1 {
		d.finish(true)
	}
}

// Stop halts the animation at the current value.
func (d *TimingDriver) Stop() {
	if d.running {
		d.finish(false)
	}
}

// IsRunning reports whether the driver is currently animating.
func (d *TimingDriver) IsRunning() bool { return d.running }

func (d *TimingDriver) finish(finished bool) {
	d.stopTicker()
	d.running = false
	if d.OnEnd != nil {
		d.OnEnd(finished)
	}
}

func (d *TimingDriver) stopTicker() {
	if d.ticker != nil {
		d.ticker.Stop()
		d.ticker = nil
	}
}

// DecayDriver lets a node coast from an initial velocity to rest with
// exponential deceleration, the motion of a released fling.
type DecayDriver struct {
	// Node is the value node to animate.
	Node *animated.ValueNode
	// Velocity is the initial velocity in units per second.
	Velocity float64
	// Deceleration is the per-millisecond retention factor in (0, 1).
	// Zero selects the default of 0.998.
	Deceleration float64
	// OnEnd is called when the driver stops.
	OnEnd func(finished bool)

	ticker  *Ticker
	from    float64
	running bool
}

// restVelocity is the speed, in units per second, below which a decay
// is considered settled.
const restVelocity = 0.5

// Start begins coasting from the node's current base value.
func (d *DecayDriver) Start() {
	if d.Node == nil {
		errors.Report(&errors.AnimatedError{
			Op:   "animation.DecayDriver.Start",
			Kind: errors.KindDriver,
			Err:  errors.ErrNoNode,
		})
		return
	}
	d.stopTicker()
	d.from = d.Node.RawValue()
	d.running = true
	d.ticker = NewTicker(d.tick)
	d.ticker.Start()
}

func (d *DecayDriver) tick(elapsed time.Duration) {
	deceleration := d.Deceleration
	if deceleration == 0 {
		deceleration = 0.998
	}
	// λ converts the per-millisecond retention factor into a
	// continuous decay rate in 1/seconds.
	lambda := (1 - deceleration) * 1000
	t := elapsed.Seconds()
	decay := math.Exp(-lambda * t)
	d.Node.SetValue(d.from + d.Velocity/lambda*(1-decay))
	if math.Abs(d.Velocity*decay) < restVelocity {
		d.finish(true)
	}
}

// Stop halts the animation at the current value.
func (d *DecayDriver) Stop() {
	if d.running {
		d.finish(false)
	}
}

// IsRunning reports whether the driver is currently animating.
func (d *DecayDriver) IsRunning() bool { return d.running }

func (d *DecayDriver) finish(finished bool) {
	d.stopTicker()
	d.running = false
	if d.OnEnd != nil {
		d.OnEnd(finished)
	}
}

func (d *DecayDriver) stopTicker() {
	if d.ticker != nil {
		d.ticker.Stop()
		d.ticker = nil
	}
}
