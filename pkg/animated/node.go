// Package animated implements drift's declarative animation graph.
//
// An animation is expressed as a dependency graph of nodes. Leaf nodes
// ([ValueNode]) hold a driven scalar; derived nodes ([InterpolationNode],
// [AdditionNode], [DiffClampNode], ...) compute their value from one or
// more parents. An external driver (see the animation package) writes
// into value nodes once per frame; consumers read the resulting values
// and forward them to rendering properties.
//
// # Value nodes and offsets
//
// [ValueNode] is the source of every graph. Besides its committed base
// value it carries a transient offset used for gesture-driven motion: a
// drag handler calls SetOffset every frame without disturbing the base
// value, and on release either FlattenOffset (commit the offset) or
// ExtractOffset (zero the base, keep the visual position) restores the
// clean decomposition the next interaction starts from.
//
// # Evaluation
//
// Evaluation is pull-based. The graph owner calls [Evaluate] on the node
// it is about to read; parents are brought up to date first, each node
// exactly once per pass. There is no scheduler in this package — when to
// evaluate is the caller's concern.
package animated

// Node is the contract shared by every node variant in the graph.
//
// The set of variants is closed: all implementations embed [NodeBase],
// which provides the graph links and default behavior.
type Node interface {
	// Value returns the node's current value. For derived nodes this is
	// whatever the last Update computed; call Evaluate to refresh a
	// subgraph before reading.
	Value() float64

	// Update recomputes the node's value from its parents. Leaf nodes
	// are written by drivers instead and treat Update as a no-op.
	Update()

	// Parents returns the nodes this node reads from.
	Parents() []Node

	// Children returns the nodes that read from this node.
	Children() []Node

	base() *NodeBase
}

// NodeBase provides the storage and graph links shared by all node
// variants. Embed it and override Update to define a new variant.
type NodeBase struct {
	value    float64
	parents  []Node
	children []Node
}

func (b *NodeBase) base() *NodeBase { return b }

// Value returns the node's current value.
func (b *NodeBase) Value() float64 { return b.value }

// Update is a no-op for nodes without parents.
func (b *NodeBase) Update() {}

// Parents returns the nodes this node reads from.
func (b *NodeBase) Parents() []Node { return b.parents }

// Children returns the nodes that read from this node.
func (b *NodeBase) Children() []Node { return b.children }

// Connect adds an edge from parent to child: the child will read the
// parent's value during Update. Connecting the same pair twice adds a
// duplicate edge; callers that need idempotence should Disconnect first.
func Connect(parent, child Node) {
	pb := parent.base()
	cb := child.base()
	pb.children = append(pb.children, child)
	cb.parents = append(cb.parents, parent)
}

// Disconnect removes the edge from parent to child, if present.
func Disconnect(parent, child Node) {
	pb := parent.base()
	cb := child.base()
	pb.children = removeNode(pb.children, child)
	cb.parents = removeNode(cb.parents, parent)
}

// Detach removes every edge touching n, leaving it isolated.
func Detach(n Node) {
	b := n.base()
	for _, p := range append([]Node(nil), b.parents...) {
		Disconnect(p, n)
	}
	for _, c := range append([]Node(nil), b.children...) {
		Disconnect(n, c)
	}
}

func removeNode(nodes []Node, target Node) []Node {
	tb := target.base()
	for i, n := range nodes {
		if n.base() == tb {
			return append(nodes[:i], nodes[i+1:]...)
		}
	}
	return nodes
}

// Evaluate brings n's ancestors up to date, updates n, and returns its
// value. Shared ancestors (diamonds) are updated once per call.
func Evaluate(n Node) float64 {
	updateTree(n, make(map[*NodeBase]struct{}))
	return n.Value()
}

func updateTree(n Node, seen map[*NodeBase]struct{}) {
	b := n.base()
	if _, done := seen[b]; done {
		return
	}
	seen[b] = struct{}{}
	for _, p := range b.parents {
		updateTree(p, seen)
	}
	n.Update()
}
