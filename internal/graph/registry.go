package graph

import "def-extractor/internal/typesys"

// Registry maps type identifiers to TypeNodes. It is the single source of
// truth for "have we seen this type" within one extraction run.
type Registry struct {
	nodes map[string]*TypeNode
	order []*TypeNode
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		nodes: make(map[string]*TypeNode),
	}
}

// GetOrCreate returns the node for identifier, creating it from handle when
// the identifier was never seen. The returned flag is true for new nodes.
func (r *Registry) GetOrCreate(identifier string, handle typesys.TypeHandle) (*TypeNode, bool) {
	if node, ok := r.nodes[identifier]; ok {
		return node, false
	}

	node := NewTypeNode(identifier, handle)
	r.nodes[identifier] = node
	r.order = append(r.order, node)

	return node, true
}

// Contains reports whether a node exists for identifier.
func (r *Registry) Contains(identifier string) bool {
	_, ok := r.nodes[identifier]
	return ok
}

// Get returns the node for identifier, or nil if not found.
func (r *Registry) Get(identifier string) *TypeNode {
	return r.nodes[identifier]
}

// Nodes returns all nodes in creation order.
func (r *Registry) Nodes() []*TypeNode {
	return r.order
}

// Len returns the number of nodes.
func (r *Registry) Len() int {
	return len(r.order)
}
