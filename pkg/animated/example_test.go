package animated_test

import (
	"fmt"

	"github.com/go-drift/animated/pkg/animated"
)

// This example shows the offset protocol a drag gesture uses: offsets
// during the drag, a flatten on release, and an extract before handing
// the node to a spring driver.
func ExampleValueNode() {
	position := animated.NewValueNode(0)

	// Each frame of the drag writes the cumulative translation.
	position.SetOffset(10)
	fmt.Println(position.Value())

	// Release: commit the offset so the next drag starts clean.
	position.FlattenOffset()
	fmt.Println(position.RawValue(), position.Offset())

	// A second drag, then extract so a spring can animate the base
	// value from zero without a visual jump.
	position.SetOffset(-3)
	position.ExtractOffset()
	fmt.Println(position.RawValue(), position.Offset(), position.Value())

	// Output:
	// 10
	// 10 0
	// 0 7 7
}

// This example shows how an observer mirrors a node's effective value
// onto a rendering property.
func ExampleValueObserver() {
	opacity := animated.NewValueNode(1)
	opacity.SetObserver(observerFunc(func(v float64) {
		fmt.Printf("render opacity %.1f\n", v)
	}))

	opacity.SetValue(0.5)
	opacity.SetValue(0.5) // no change, no callback
	opacity.SetValue(0)

	// Output:
	// render opacity 0.5
	// render opacity 0.0
}

type observerFunc func(float64)

func (f observerFunc) OnValueUpdate(v float64) { f(v) }

// This example builds a small derived graph: a scroll position mapped
// onto a header opacity.
func ExampleInterpolationNode() {
	scroll := animated.NewValueNode(0)
	headerOpacity := animated.NewInterpolationNode(scroll,
		[]float64{0, 200},
		[]float64{1, 0},
	)
	headerOpacity.SetExtrapolate(animated.ExtrapolateClamp, animated.ExtrapolateClamp)

	for _, y := range []float64{0, 100, 200, 300} {
		scroll.SetValue(y)
		fmt.Printf("scroll %3.0f -> opacity %.1f\n", y, animated.Evaluate(headerOpacity))
	}

	// Output:
	// scroll   0 -> opacity 1.0
	// scroll 100 -> opacity 0.5
	// scroll 200 -> opacity 0.0
	// scroll 300 -> opacity 0.0
}

// This example shows the registry routing mutations by tag, the way the
// framework bridge drives the graph.
func ExampleRegistry() {
	r := animated.NewRegistry()
	_ = r.Add(1, animated.NewValueNode(0))
	_ = r.Add(2, animated.NewValueNode(2))
	_ = r.Add(3, &animated.MultiplicationNode{})
	_ = r.ConnectNodes(1, 3)
	_ = r.ConnectNodes(2, 3)

	_ = r.SetValue(1, 21)
	v, _ := r.Evaluate(3)
	fmt.Println(v)

	// Output:
	// 42
}
