package extract

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/untillpro/goutils/logger"

	"def-extractor/internal/common"
	"def-extractor/internal/diagnostic"
	"def-extractor/internal/graph"
	"def-extractor/internal/profile"
	"def-extractor/internal/typesys"
)

// Traverser expands type handles breadth-first into a Registry.
//
// Nodes enter the registry in one of two ways. Enqueued nodes are marked
// discovered and later dequeued for the full algorithm. Registered nodes
// (transparent containers, framework parents, generic parameters) exist for
// identifier purposes only and are never expanded by the registering path.
type Traverser struct {
	registry  *graph.Registry
	universe  *typesys.Universe
	namer     typesys.Namer
	traversal profile.Traversal
	anchors   profile.Anchors
	lateBound typesys.TypeHandle
	diags     *diagnostic.Diagnostics

	queue []*graph.TypeNode
}

// NewTraverser creates a Traverser writing to reg. lateBound may be nil.
func NewTraverser(
	reg *graph.Registry,
	u *typesys.Universe,
	p *profile.Profile,
	lateBound typesys.TypeHandle,
	diags *diagnostic.Diagnostics,
) *Traverser {
	if diags == nil {
		diags = &diagnostic.Diagnostics{}
	}

	return &Traverser{
		registry:  reg,
		universe:  u,
		namer:     p.Namer(),
		traversal: p.Traversal,
		anchors:   p.Anchors,
		lateBound: lateBound,
		diags:     diags,
	}
}

// Run traverses roots until the worklist is empty.
func (t *Traverser) Run(roots []typesys.TypeHandle) {
	for _, h := range roots {
		t.enqueue(h)
	}

	for len(t.queue) > 0 {
		node := t.queue[0]
		t.queue = t.queue[1:]

		t.visit(node)
	}
}

// enqueue schedules h for traversal unless its node was already discovered.
func (t *Traverser) enqueue(h typesys.TypeHandle) {
	if h == nil {
		return
	}

	if h.IsGenericParameter() {
		t.register(h)
		return
	}

	node, _ := t.registry.GetOrCreate(t.namer.Identify(h), h)
	if node.Discovered {
		return
	}

	node.Discovered = true
	t.queue = append(t.queue, node)
}

// register creates a node for h without expanding it. The ancestor chain of
// a new node is registered too, owned ancestors are enqueued instead. Bound
// generic arguments along the chain are always enqueued.
func (t *Traverser) register(h typesys.TypeHandle) *graph.TypeNode {
	node, created := t.registry.GetOrCreate(t.namer.Identify(h), h)
	if !created {
		return node
	}

	if h.IsGenericParameter() {
		node.Discovered = true
		node.ResolveMembers()

		return node
	}

	for cur, curNode := h, node; ; {
		if cur.IsGeneric() {
			t.enqueueArgs(cur)
		}

		base := cur.Base()
		if base == nil {
			break
		}

		baseID := t.namer.Identify(base)
		curNode.Classification.Parent = baseID

		if t.universe.Declares(base) {
			t.enqueue(base)
			break
		}

		next, created := t.registry.GetOrCreate(baseID, base)
		if !created {
			break
		}

		cur, curNode = base, next
	}

	return node
}

func (t *Traverser) visit(node *graph.TypeNode) {
	h := node.Handle()
	id := node.Identifier

	if t.isOpaque(h) {
		logger.Verbose(fmt.Sprintf("not expanding %s: opaque", id))
		node.ResolveMembers()
	}

	if h.Primitive() != typesys.PrimitiveNone {
		node.ResolveMembers()
		return
	}

	t.chaseParent(node, h)

	if h.IsGeneric() {
		t.enqueueArgs(h)
	}

	if h.IsArray() {
		t.enqueue(h.Elem())
		node.ResolveMembers()

		return
	}

	if node.MembersResolved {
		return
	}

	members, err := h.Members()
	if err != nil {
		logger.Error(fmt.Sprintf("failed to enumerate members of %s: %v", id, err))
		t.diags.AddError(diagnostic.CodeMemberEnumerationFailed, err.Error(), id, "")
	}

	for _, m := range members {
		t.discoverMember(node, m)
	}

	node.ResolveMembers()
}

// chaseParent records the base of h. Owned bases are enqueued, framework
// bases are registered so that the parent identifier always has a node.
func (t *Traverser) chaseParent(node *graph.TypeNode, h typesys.TypeHandle) {
	base := h.Base()
	if base == nil {
		return
	}

	parentID := t.namer.Identify(base)
	node.Classification.Parent = parentID

	if t.registry.Contains(parentID) {
		return
	}

	if t.universe.Declares(base) {
		logger.Verbose(fmt.Sprintf("adding %s which is parent of %s", parentID, node.Identifier))
		t.enqueue(base)

		return
	}

	logger.Verbose(fmt.Sprintf("registering framework parent %s of %s", parentID, node.Identifier))
	t.register(base)
}

func (t *Traverser) discoverMember(node *graph.TypeNode, m typesys.Member) {
	if m.Type == nil {
		return
	}

	if t.isUnsaved(m) {
		logger.Verbose(fmt.Sprintf("not adding %s.%s: unsaved", node.Identifier, m.Name))
		return
	}

	if common.HasSuffixFold(m.Name, t.traversal.InternalSuffixes) {
		logger.Verbose(fmt.Sprintf("not adding %s.%s: internal", node.Identifier, m.Name))
		return
	}

	mt := m.Type
	memberID := t.namer.Identify(mt)

	if t.namer.IsDefinition(mt, t.traversal.TransparentGenerics) {
		logger.Verbose(fmt.Sprintf("registering transparent container %s", memberID))
		transparent := t.register(mt)
		transparent.Discovered = true
		transparent.ResolveMembers()
	} else {
		logger.Verbose(fmt.Sprintf("adding %s which is member %s of %s", memberID, m.Name, node.Identifier))
		t.enqueue(mt)
	}

	node.Members.Set(m.Name, memberID)

	if text, ok := t.description(m); ok {
		node.MemberDescriptions[m.Name] = text
	}
}

// enqueueArgs schedules the bound generic arguments of h. Arguments of
// late-bound references are resolved at load time and never followed.
func (t *Traverser) enqueueArgs(h typesys.TypeHandle) {
	if t.isLateBound(h) {
		logger.Verbose(fmt.Sprintf("not following arguments of late-bound %s", t.namer.Identify(h)))
		return
	}

	for _, arg := range h.GenericArgs() {
		if arg == nil {
			continue
		}

		if arg.IsGenericParameter() {
			t.register(arg)
			continue
		}

		t.enqueue(arg)
	}
}

func (t *Traverser) isLateBound(h typesys.TypeHandle) bool {
	return t.lateBound != nil && h.AssignableTo(t.lateBound)
}

// isOpaque reports whether the member graph of h must never be expanded.
func (t *Traverser) isOpaque(h typesys.TypeHandle) bool {
	opaque := t.traversal.Opaque

	if slices.Contains(opaque.Types, typesys.Simple(h)) || slices.Contains(opaque.Types, t.namer.Identify(h)) {
		return true
	}

	if t.namer.IsDefinition(h, opaque.GenericDefinitions) {
		return true
	}

	if common.ContainsAny(h.Name(), opaque.NameContains) {
		return true
	}

	chain := append([]typesys.TypeHandle{h}, typesys.Ancestors(h)...)
	for _, a := range chain {
		if slices.Contains(opaque.Ancestors, t.namer.Identify(a)) {
			return true
		}
	}

	return false
}

// isUnsaved reports whether m opts out of persistence with a false payload.
func (t *Traverser) isUnsaved(m typesys.Member) bool {
	if t.anchors.UnsavedMarker == "" {
		return false
	}

	mk, ok := m.Marker(t.anchors.UnsavedMarker)
	if !ok {
		return false
	}

	allowLoading, ok := markerBool(mk)

	return ok && !allowLoading
}

func (t *Traverser) description(m typesys.Member) (string, bool) {
	if t.anchors.DescriptionMarker == "" {
		return "", false
	}

	mk, ok := m.Marker(t.anchors.DescriptionMarker)
	if !ok {
		return "", false
	}

	first, ok := common.First(mk.Args)
	if !ok {
		return "", false
	}

	text, ok := first.(string)

	return text, ok
}

// markerBool reads the first marker argument as a boolean.
func markerBool(mk typesys.Marker) (bool, bool) {
	first, ok := common.First(mk.Args)
	if !ok {
		return false, false
	}

	switch v := first.(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, false
		}

		return b, true
	default:
		return false, false
	}
}
