package animated

import (
	"fmt"
	"sync"
)

// Sentinel errors returned by Registry operations.
var (
	// ErrNodeNotFound is returned when no node is registered under a tag.
	ErrNodeNotFound = fmt.Errorf("animated node not found")
	// ErrDuplicateTag is returned when a tag is already in use.
	ErrDuplicateTag = fmt.Errorf("animated node tag already registered")
	// ErrNotValueNode is returned when a value-node operation targets a
	// derived node.
	ErrNotValueNode = fmt.Errorf("animated node is not a value node")
)

// Registry is the graph owner: it maps integer tags to nodes and routes
// mutations and reads by tag, the shape the framework bridge speaks.
//
// The registry serializes access to the tag table. The nodes themselves
// still assume a single driving goroutine; the registry does not make
// concurrent mutation of one node safe.
type Registry struct {
	mu    sync.Mutex
	nodes map[int64]Node
}

// NewRegistry returns an empty node registry.
func NewRegistry() *Registry {
	return &Registry{nodes: make(map[int64]Node)}
}

// Add registers a node under tag.
func (r *Registry) Add(tag int64, n Node) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.nodes[tag]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateTag, tag)
	}
	r.nodes[tag] = n
	return nil
}

// Node returns the node registered under tag.
func (r *Registry) Node(tag int64) (Node, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lookup(tag)
}

// ValueNode returns the value node registered under tag, or
// ErrNotValueNode if the tag names a derived node.
func (r *Registry) ValueNode(tag int64) (*ValueNode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lookupValue(tag)
}

// Drop detaches the node from the graph and removes its tag.
func (r *Registry) Drop(tag int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, err := r.lookup(tag)
	if err != nil {
		return err
	}
	Detach(n)
	delete(r.nodes, tag)
	return nil
}

// ConnectNodes adds an edge from the parent tag to the child tag.
func (r *Registry) ConnectNodes(parentTag, childTag int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	parent, err := r.lookup(parentTag)
	if err != nil {
		return err
	}
	child, err := r.lookup(childTag)
	if err != nil {
		return err
	}
	Connect(parent, child)
	return nil
}

// DisconnectNodes removes the edge from the parent tag to the child tag.
func (r *Registry) DisconnectNodes(parentTag, childTag int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	parent, err := r.lookup(parentTag)
	if err != nil {
		return err
	}
	child, err := r.lookup(childTag)
	if err != nil {
		return err
	}
	Disconnect(parent, child)
	return nil
}

// SetValue sets the base value of the value node under tag.
func (r *Registry) SetValue(tag int64, value float64) error {
	n, err := r.ValueNode(tag)
	if err != nil {
		return err
	}
	n.SetValue(value)
	return nil
}

// SetOffset sets the offset of the value node under tag.
func (r *Registry) SetOffset(tag int64, offset float64) error {
	n, err := r.ValueNode(tag)
	if err != nil {
		return err
	}
	n.SetOffset(offset)
	return nil
}

// FlattenOffset folds the offset of the value node under tag into its
// base value.
func (r *Registry) FlattenOffset(tag int64) error {
	n, err := r.ValueNode(tag)
	if err != nil {
		return err
	}
	n.FlattenOffset()
	return nil
}

// ExtractOffset absorbs the base value of the value node under tag into
// its offset.
func (r *Registry) ExtractOffset(tag int64) error {
	n, err := r.ValueNode(tag)
	if err != nil {
		return err
	}
	n.ExtractOffset()
	return nil
}

// SetObserver binds obs as the observer of the value node under tag.
// Pass nil to clear.
func (r *Registry) SetObserver(tag int64, obs ValueObserver) error {
	n, err := r.ValueNode(tag)
	if err != nil {
		return err
	}
	n.SetObserver(obs)
	return nil
}

// Evaluate brings the subgraph feeding tag up to date and returns the
// node's value.
func (r *Registry) Evaluate(tag int64) (float64, error) {
	r.mu.Lock()
	n, err := r.lookup(tag)
	r.mu.Unlock()
	if err != nil {
		return 0, err
	}
	return Evaluate(n), nil
}

func (r *Registry) lookup(tag int64) (Node, error) {
	n, ok := r.nodes[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, tag)
	}
	return n, nil
}

func (r *Registry) lookupValue(tag int64) (*ValueNode, error) {
	n, err := r.lookup(tag)
	if err != nil {
		return nil, err
	}
	vn, ok := n.(*ValueNode)
	if !ok {
		return nil, fmt.Errorf("%w: %d is %T", ErrNotValueNode, tag, n)
	}
	return vn, nil
}
