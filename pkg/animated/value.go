package animated

// ValueObserver receives a synchronous callback whenever a ValueNode's
// effective value changes.
//
// The callback runs in-line with the mutating call, on the driving
// goroutine. Implementations should read the pushed value, forward it
// (typically to a rendering property), and return; they must not block
// and must not mutate the same node from inside the callback.
type ValueObserver interface {
	OnValueUpdate(value float64)
}

// ValueNode is the leaf source node of the animation graph.
//
// The node decomposes its effective value into a committed base value
// and a transient offset; Value always returns their sum, recomputed on
// every read so the two never drift apart. Drivers mutate the base value
// with SetValue, gesture handlers mutate the offset with SetOffset, and
// FlattenOffset/ExtractOffset move the split point without changing the
// effective value.
//
// Notification policy: the observer fires exactly when the effective
// value changes. Setting a value or offset equal to the one already held
// is a no-op as far as the observer is concerned. FlattenOffset and
// ExtractOffset preserve the effective value and therefore never notify.
//
// All operations are O(1), allocation-free, and must be called from the
// single goroutine that drives the graph.
type ValueNode struct {
	NodeBase

	offset         float64
	animatedObject any
	observer       ValueObserver
}

// NewValueNode returns a value node with the given base value and a
// zero offset.
func NewValueNode(value float64) *ValueNode {
	n := &ValueNode{}
	n.value = value
	return n
}

// Value returns the effective value: base value plus offset.
func (n *ValueNode) Value() float64 {
	return n.value + n.offset
}

// RawValue returns the committed base value, excluding the offset.
// Drivers animate this component; most readers want Value.
func (n *ValueNode) RawValue() float64 {
	return n.value
}

// Offset returns the transient offset component.
func (n *ValueNode) Offset() float64 {
	return n.offset
}

// SetValue sets the base value. NaN and infinities are accepted and
// propagate arithmetically; validation is the driver's concern.
func (n *ValueNode) SetValue(value float64) {
	old := n.Value()
	n.value = value
	n.notifyIfChanged(old)
}

// SetOffset sets the offset. Called once per frame while a gesture is
// active, so it stays on the arithmetic-only hot path.
func (n *ValueNode) SetOffset(offset float64) {
	old := n.Value()
	n.offset = offset
	n.notifyIfChanged(old)
}

// FlattenOffset commits the offset into the base value and zeroes the
// offset, so the next gesture starts from a clean decomposition. The
// effective value is unchanged, so the observer is not notified.
// Calling it again with a zero offset is a no-op.
func (n *ValueNode) FlattenOffset() {
	n.value += n.offset
	n.offset = 0
}

// ExtractOffset absorbs the base value into the offset and zeroes the
// base, keeping the visual position stable while resetting the animated
// component for a following driver (e.g. a spring started at zero). The
// effective value is unchanged, so the observer is not notified.
//
// ExtractOffset followed by FlattenOffset restores the original
// decomposition up to floating-point rounding of the intermediate sum.
func (n *ValueNode) ExtractOffset() {
	n.offset += n.value
	n.value = 0
}

// SetAnimatedObject attaches an opaque external value (for example a
// platform color handle) that consumers should render in place of the
// scalar. The node never inspects the object, and the base value and
// offset are unaffected. Pass nil to clear the binding.
func (n *ValueNode) SetAnimatedObject(obj any) {
	n.animatedObject = obj
}

// AnimatedObject returns the external binding, or nil when none is set.
// Render-path readers must check this before falling back to Value.
func (n *ValueNode) AnimatedObject() any {
	return n.animatedObject
}

// SetObserver binds the node's single observer. Rebinding silently
// drops the previous observer; pass nil to clear. No notification is
// sent about the rebind itself.
func (n *ValueNode) SetObserver(obs ValueObserver) {
	n.observer = obs
}

func (n *ValueNode) notifyIfChanged(old float64) {
	if n.observer == nil {
		return
	}
	if now := n.Value(); now != old {
		n.observer.OnValueUpdate(now)
	}
}
