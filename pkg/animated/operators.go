package animated

import (
	"math"

	"github.com/go-drift/animated/pkg/errors"
)

// Arithmetic nodes combine the values of their parents. Parents are
// read in connection order; all of these are pure functions of their
// inputs, recomputed on Update.

// AdditionNode sums the values of its parents.
type AdditionNode struct {
	NodeBase
}

// NewAdditionNode returns an addition node connected to the given parents.
func NewAdditionNode(parents ...Node) *AdditionNode {
	n := &AdditionNode{}
	connectAll(n, parents)
	return n
}

func (n *AdditionNode) Update() {
	sum := 0.0
	for _, p := range n.parents {
		sum += p.Value()
	}
	n.value = sum
}

// SubtractionNode subtracts every subsequent parent from the first.
type SubtractionNode struct {
	NodeBase
}

// NewSubtractionNode returns a subtraction node connected to the given parents.
func NewSubtractionNode(parents ...Node) *SubtractionNode {
	n := &SubtractionNode{}
	connectAll(n, parents)
	return n
}

func (n *SubtractionNode) Update() {
	if len(n.parents) == 0 {
		n.value = 0
		return
	}
	v := n.parents[0].Value()
	for _, p := range n.parents[1:] {
		v -= p.Value()
	}
	n.value = v
}

// MultiplicationNode multiplies the values of its parents.
type MultiplicationNode struct {
	NodeBase
}

// NewMultiplicationNode returns a multiplication node connected to the given parents.
func NewMultiplicationNode(parents ...Node) *MultiplicationNode {
	n := &MultiplicationNode{}
	connectAll(n, parents)
	return n
}

func (n *MultiplicationNode) Update() {
	if len(n.parents) == 0 {
		n.value = 0
		return
	}
	v := 1.0
	for _, p := range n.parents {
		v *= p.Value()
	}
	n.value = v
}

// DivisionNode divides the first parent by every subsequent parent.
// Division by zero is reported through the errors package and leaves
// the node's value unchanged for that pass.
type DivisionNode struct {
	NodeBase
}

// NewDivisionNode returns a division node connected to the given parents.
func NewDivisionNode(parents ...Node) *DivisionNode {
	n := &DivisionNode{}
	connectAll(n, parents)
	return n
}

func (n *DivisionNode) Update() {
	if len(n.parents) == 0 {
		n.value = 0
		return
	}
	v := n.parents[0].Value()
	for _, p := range n.parents[1:] {
		d := p.Value()
		if d == 0 {
			errors.Report(&errors.AnimatedError{
				Op:   "animated.DivisionNode.Update",
				Kind: errors.KindGraph,
				Err:  errors.ErrDivisionByZero,
			})
			return
		}
		v /= d
	}
	n.value = v
}

// ModulusNode reduces its parent's value modulo a constant, with a
// result normalized into [0, modulus).
type ModulusNode struct {
	NodeBase
	modulus float64
}

// NewModulusNode returns a modulus node over the given parent.
func NewModulusNode(parent Node, modulus float64) *ModulusNode {
	n := &ModulusNode{modulus: modulus}
	Connect(parent, n)
	return n
}

func (n *ModulusNode) Update() {
	if len(n.parents) == 0 || n.modulus == 0 {
		n.value = 0
		return
	}
	v := n.parents[0].Value()
	n.value = math.Mod(math.Mod(v, n.modulus)+n.modulus, n.modulus)
}

// DiffClampNode accumulates its parent's frame-to-frame deltas, clamped
// to [min, max]. Useful for collapsing headers: the output tracks scroll
// deltas but never leaves its band, regardless of absolute position.
type DiffClampNode struct {
	NodeBase
	min, max   float64
	lastParent float64
	primed     bool
}

// NewDiffClampNode returns a diff-clamp node over the given parent.
func NewDiffClampNode(parent Node, min, max float64) *DiffClampNode {
	n := &DiffClampNode{min: min, max: max}
	n.value = clamp(0, min, max)
	Connect(parent, n)
	return n
}

func (n *DiffClampNode) Update() {
	if len(n.parents) == 0 {
		return
	}
	v := n.parents[0].Value()
	if !n.primed {
		// First pass establishes the baseline without producing a delta.
		n.primed = true
		n.lastParent = v
		return
	}
	diff := v - n.lastParent
	n.lastParent = v
	n.value = clamp(n.value+diff, n.min, n.max)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func connectAll(child Node, parents []Node) {
	for _, p := range parents {
		Connect(p, child)
	}
}
