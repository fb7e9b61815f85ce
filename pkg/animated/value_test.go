package animated

import (
	"math"
	"testing"
)

type recordingObserver struct {
	values []float64
}

func (r *recordingObserver) OnValueUpdate(v float64) {
	r.values = append(r.values, v)
}

func TestValueNodeEffectiveValue(t *testing.T) {
	n := NewValueNode(0)

	// getValue must always equal base + offset under any interleaving.
	steps := []struct {
		setValue  bool
		v         float64
		wantValue float64
	}{
		{true, 5, 5},
		{false, 3, 8},
		{true, -2, 1},
		{false, 0, -2},
		{true, 0, 0},
		{false, 7.5, 7.5},
	}

	base, offset := 0.0, 0.0
	for i, step := range steps {
		if step.setValue {
			n.SetValue(step.v)
			base = step.v
		} else {
			n.SetOffset(step.v)
			offset = step.v
		}
		if got := n.Value(); got != step.wantValue {
			t.Errorf("step %d: Value() = %v, want %v", i, got, step.wantValue)
		}
		if got := n.Value(); got != base+offset {
			t.Errorf("step %d: Value() = %v, want base+offset = %v", i, got, base+offset)
		}
	}
}

func TestValueNodeFlattenOffset(t *testing.T) {
	n := NewValueNode(4)
	n.SetOffset(6)

	before := n.Value()
	n.FlattenOffset()

	if got := n.Value(); got != before {
		t.Errorf("Value() after flatten = %v, want %v", got, before)
	}
	if got := n.RawValue(); got != 10 {
		t.Errorf("RawValue() = %v, want 10", got)
	}
	if got := n.Offset(); got != 0 {
		t.Errorf("Offset() = %v, want 0", got)
	}
}

func TestValueNodeExtractOffset(t *testing.T) {
	n := NewValueNode(4)
	n.SetOffset(6)

	before := n.Value()
	n.ExtractOffset()

	if got := n.Value(); got != before {
		t.Errorf("Value() after extract = %v, want %v", got, before)
	}
	if got := n.RawValue(); got != 0 {
		t.Errorf("RawValue() = %v, want 0", got)
	}
	if got := n.Offset(); got != 10 {
		t.Errorf("Offset() = %v, want 10", got)
	}
}

func TestValueNodeFlattenIdempotent(t *testing.T) {
	n := NewValueNode(3)
	n.SetOffset(7)
	n.FlattenOffset()

	value, offset := n.RawValue(), n.Offset()
	n.FlattenOffset()

	if n.RawValue() != value || n.Offset() != offset {
		t.Errorf("second FlattenOffset changed state: (%v, %v) -> (%v, %v)",
			value, offset, n.RawValue(), n.Offset())
	}
}

func TestValueNodeExtractIdempotent(t *testing.T) {
	n := NewValueNode(3)
	n.SetOffset(7)
	n.ExtractOffset()

	value, offset := n.RawValue(), n.Offset()
	n.ExtractOffset()

	if n.RawValue() != value || n.Offset() != offset {
		t.Errorf("second ExtractOffset changed state: (%v, %v) -> (%v, %v)",
			value, offset, n.RawValue(), n.Offset())
	}
}

func TestValueNodeExtractThenFlattenRoundTrip(t *testing.T) {
	n := NewValueNode(12.5)
	n.SetOffset(-4.25)

	n.ExtractOffset()
	n.FlattenOffset()

	// The effective value survives exactly; the decomposition lands on
	// (b+o, 0), which for these inputs is exact in float64.
	if got := n.Value(); got != 8.25 {
		t.Errorf("Value() = %v, want 8.25", got)
	}
	if n.RawValue() != 8.25 || n.Offset() != 0 {
		t.Errorf("decomposition = (%v, %v), want (8.25, 0)", n.RawValue(), n.Offset())
	}
}

// The drag-then-release sequence from gesture handling: offset during the
// drag, flatten on release, negative drag, extract before a spring.
func TestValueNodeGestureScenario(t *testing.T) {
	n := NewValueNode(0)

	n.SetOffset(10)
	if got := n.Value(); got != 10 {
		t.Fatalf("after SetOffset(10): Value() = %v, want 10", got)
	}

	n.FlattenOffset()
	if n.RawValue() != 10 || n.Offset() != 0 || n.Value() != 10 {
		t.Fatalf("after FlattenOffset: (base, offset, value) = (%v, %v, %v), want (10, 0, 10)",
			n.RawValue(), n.Offset(), n.Value())
	}

	n.SetOffset(-3)
	if got := n.Value(); got != 7 {
		t.Fatalf("after SetOffset(-3): Value() = %v, want 7", got)
	}

	n.ExtractOffset()
	if n.RawValue() != 0 || n.Offset() != 7 || n.Value() != 7 {
		t.Fatalf("after ExtractOffset: (base, offset, value) = (%v, %v, %v), want (0, 7, 7)",
			n.RawValue(), n.Offset(), n.Value())
	}
}

func TestValueNodeObserverFiresOnChange(t *testing.T) {
	n := NewValueNode(0)
	obs := &recordingObserver{}
	n.SetObserver(obs)

	n.SetValue(5)
	if len(obs.values) != 1 || obs.values[0] != 5 {
		t.Fatalf("after SetValue(5): notifications = %v, want [5]", obs.values)
	}

	// Suppress-on-equal policy: an identical write does not notify.
	n.SetValue(5)
	if len(obs.values) != 1 {
		t.Fatalf("repeated SetValue(5) notified: %v", obs.values)
	}

	n.SetOffset(2)
	if len(obs.values) != 2 || obs.values[1] != 7 {
		t.Fatalf("after SetOffset(2): notifications = %v, want [5 7]", obs.values)
	}

	n.SetOffset(2)
	if len(obs.values) != 2 {
		t.Fatalf("repeated SetOffset(2) notified: %v", obs.values)
	}
}

func TestValueNodeObserverSuppressedWhenEffectiveValueConstant(t *testing.T) {
	n := NewValueNode(3)
	n.SetOffset(4)
	obs := &recordingObserver{}
	n.SetObserver(obs)

	// Both operations preserve base+offset, so neither notifies.
	n.FlattenOffset()
	n.ExtractOffset()

	if len(obs.values) != 0 {
		t.Errorf("flatten/extract notified: %v", obs.values)
	}
}

func TestValueNodeObserverRebind(t *testing.T) {
	n := NewValueNode(0)
	first := &recordingObserver{}
	second := &recordingObserver{}

	n.SetObserver(first)
	n.SetValue(1)

	// Rebinding is silent and drops the previous observer.
	n.SetObserver(second)
	if len(first.values) != 1 || len(second.values) != 0 {
		t.Fatalf("rebind notified: first=%v second=%v", first.values, second.values)
	}

	n.SetValue(2)
	if len(first.values) != 1 {
		t.Errorf("dropped observer still notified: %v", first.values)
	}
	if len(second.values) != 1 || second.values[0] != 2 {
		t.Errorf("new observer notifications = %v, want [2]", second.values)
	}

	n.SetObserver(nil)
	n.SetValue(3)
	if len(second.values) != 1 {
		t.Errorf("cleared observer still notified: %v", second.values)
	}
}

func TestValueNodeObserverSynchronous(t *testing.T) {
	n := NewValueNode(0)
	var seen float64
	n.SetObserver(observerFunc(func(v float64) {
		// The node must already expose the new effective value when the
		// callback runs.
		seen = n.Value()
		if seen != v {
			t.Errorf("node Value() = %v inside callback, pushed %v", seen, v)
		}
	}))

	n.SetValue(9)
	if seen != 9 {
		t.Errorf("callback did not run synchronously: seen = %v", seen)
	}
}

type observerFunc func(float64)

func (f observerFunc) OnValueUpdate(v float64) { f(v) }

func TestValueNodeNaNAndInfinityPropagate(t *testing.T) {
	n := NewValueNode(0)

	n.SetValue(math.Inf(1))
	if !math.IsInf(n.Value(), 1) {
		t.Errorf("Value() = %v, want +Inf", n.Value())
	}

	n.SetOffset(math.Inf(-1))
	if !math.IsNaN(n.Value()) {
		t.Errorf("Value() = %v, want NaN (+Inf + -Inf)", n.Value())
	}

	n.SetValue(math.NaN())
	n.FlattenOffset()
	if !math.IsNaN(n.Value()) {
		t.Errorf("Value() after flatten = %v, want NaN", n.Value())
	}
}

func TestValueNodeAnimatedObject(t *testing.T) {
	n := NewValueNode(42)
	if n.AnimatedObject() != nil {
		t.Fatal("expected nil binding on a fresh node")
	}

	type colorHandle struct{ argb uint32 }
	handle := &colorHandle{argb: 0xFF336699}
	n.SetAnimatedObject(handle)

	// The binding never perturbs the numeric state.
	if got := n.Value(); got != 42 {
		t.Errorf("Value() = %v after SetAnimatedObject, want 42", got)
	}
	if n.AnimatedObject() != handle {
		t.Errorf("AnimatedObject() = %v, want the attached handle", n.AnimatedObject())
	}

	n.SetAnimatedObject(nil)
	if n.AnimatedObject() != nil {
		t.Error("binding not cleared")
	}
}

// renderValue mimics a consumer's render-path read: prefer the external
// binding, fall back to the scalar.
func renderValue(n *ValueNode) any {
	if obj := n.AnimatedObject(); obj != nil {
		return obj
	}
	return n.Value()
}

func TestValueNodeBindingPrecedence(t *testing.T) {
	n := NewValueNode(3)

	if got := renderValue(n); got != 3.0 {
		t.Fatalf("renderValue = %v, want 3", got)
	}

	handle := "platform-color-handle"
	n.SetAnimatedObject(handle)
	if got := renderValue(n); got != handle {
		t.Fatalf("renderValue = %v, want the binding", got)
	}
	if got := n.Value(); got != 3 {
		t.Errorf("Value() = %v, want 3 regardless of binding", got)
	}
}
