// Package testing provides test doubles for the animated value graph.
//
// FakeClock makes driver tests deterministic: install it with
// animation.SetClock, advance it, and call animation.StepTickers.
// RecordingObserver captures every value notification a node emits.
//
//	func TestFade(t *testing.T) {
//	    clk := drifttest.NewFakeClock()
//	    prev := animation.SetClock(clk)
//	    defer animation.SetClock(prev)
//
//	    node := animated.NewValueNode(0)
//	    obs := &drifttest.RecordingObserver{}
//	    node.SetObserver(obs)
//
//	    driver := &animation.TimingDriver{Node: node, To: 1, Duration: time.Second}
//	    driver.Start()
//	    clk.Advance(500 * time.Millisecond)
//	    animation.StepTickers()
//	}
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import drifttest "github.com/go-drift/animated/pkg/testing"
package testing
