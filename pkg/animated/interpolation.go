package animated

// ExtrapolateMode controls what an interpolation does with input values
// outside its input range.
type ExtrapolateMode int

const (
	// ExtrapolateExtend continues the edge segment's line beyond the range.
	ExtrapolateExtend ExtrapolateMode = iota
	// ExtrapolateClamp pins the output to the edge of the output range.
	ExtrapolateClamp
	// ExtrapolateIdentity passes the input value through unchanged.
	ExtrapolateIdentity
)

// InterpolationNode maps its parent's value through piecewise-linear
// input/output ranges, the way a tween maps controller progress onto a
// property range. Input range values must be monotonically increasing;
// the ranges must have equal length, at least two entries each.
type InterpolationNode struct {
	NodeBase
	inputRange  []float64
	outputRange []float64
	left, right ExtrapolateMode
}

// NewInterpolationNode returns an interpolation node over the given
// parent with ExtrapolateExtend on both edges.
func NewInterpolationNode(parent Node, inputRange, outputRange []float64) *InterpolationNode {
	n := &InterpolationNode{
		inputRange:  inputRange,
		outputRange: outputRange,
	}
	Connect(parent, n)
	return n
}

// SetExtrapolate configures edge behavior for inputs below the first
// and above the last input range entry.
func (n *InterpolationNode) SetExtrapolate(left, right ExtrapolateMode) {
	n.left = left
	n.right = right
}

func (n *InterpolationNode) Update() {
	if len(n.parents) == 0 {
		return
	}
	n.value = interpolateRanges(n.parents[0].Value(), n.inputRange, n.outputRange, n.left, n.right)
}

// ColorInterpolationNode maps its parent's value onto a sequence of
// colors, interpolating each ARGB channel independently. The node's
// value is the interpolated color's bits (see [Color.Bits]); read it
// back with [ColorFromBits], or via [ColorInterpolationNode.Color].
// Inputs outside the range clamp to the edge colors.
type ColorInterpolationNode struct {
	NodeBase
	inputRange []float64
	colors     []Color
}

// NewColorInterpolationNode returns a color interpolation over the
// given parent. inputRange and colors must have equal length ≥ 2.
func NewColorInterpolationNode(parent Node, inputRange []float64, colors []Color) *ColorInterpolationNode {
	n := &ColorInterpolationNode{
		inputRange: inputRange,
		colors:     colors,
	}
	if len(colors) > 0 {
		n.value = colors[0].Bits()
	}
	Connect(parent, n)
	return n
}

// NewColorInterpolationNodeFromStrings is like NewColorInterpolationNode
// but parses color literals ("#RRGGBB", named SVG colors) first.
func NewColorInterpolationNodeFromStrings(parent Node, inputRange []float64, literals []string) (*ColorInterpolationNode, error) {
	colors := make([]Color, len(literals))
	for i, s := range literals {
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}
	return NewColorInterpolationNode(parent, inputRange, colors), nil
}

// Color returns the node's current value as a Color.
func (n *ColorInterpolationNode) Color() Color {
	return ColorFromBits(n.value)
}

func (n *ColorInterpolationNode) Update() {
	if len(n.parents) == 0 || len(n.inputRange) < 2 || len(n.colors) != len(n.inputRange) {
		return
	}
	v := n.parents[0].Value()
	i := findSegment(v, n.inputRange)
	lo, hi := n.inputRange[i], n.inputRange[i+1]
	t := 0.0
	if hi != lo {
		t = clamp((v-lo)/(hi-lo), 0, 1)
	}
	n.value = LerpColor(n.colors[i], n.colors[i+1], t).Bits()
}

func interpolateRanges(v float64, in, out []float64, left, right ExtrapolateMode) float64 {
	if len(in) < 2 || len(out) != len(in) {
		return v
	}
	if v < in[0] {
		switch left {
		case ExtrapolateClamp:
			return out[0]
		case ExtrapolateIdentity:
			return v
		}
	}
	if v > in[len(in)-1] {
		switch right {
		case ExtrapolateClamp:
			return out[len(out)-1]
		case ExtrapolateIdentity:
			return v
		}
	}
	i := findSegment(v, in)
	return interpolateSegment(v, in[i], in[i+1], out[i], out[i+1])
}

// findSegment returns the index of the segment [in[i], in[i+1]] that v
// falls in, using the edge segments for out-of-range inputs.
func findSegment(v float64, in []float64) int {
	for i := 1; i < len(in)-1; i++ {
		if in[i] >= v {
			return i - 1
		}
	}
	return len(in) - 2
}

func interpolateSegment(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	t := (v - inMin) / (inMax - inMin)
	return outMin + t*(outMax-outMin)
}
