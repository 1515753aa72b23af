package extract

import (
	"fmt"
	"slices"
	"strings"

	"github.com/untillpro/goutils/logger"

	"def-extractor/internal/diagnostic"
	"def-extractor/internal/graph"
	"def-extractor/internal/profile"
	"def-extractor/internal/typesys"
)

// Classifier runs the classification pass over a Registry.
type Classifier struct {
	namer   typesys.Namer
	rules   profile.Classification
	anchors *anchors
	naming  string
	diags   *diagnostic.Diagnostics
}

// classificationRule is one (predicate, effect) pair of the classification
// pass. Rules are independent; a later rule may overwrite customFormats set
// by an earlier one.
type classificationRule struct {
	name    string
	applies func(c *Classifier, n *graph.TypeNode, h typesys.TypeHandle) bool
	apply   func(c *Classifier, n *graph.TypeNode, h typesys.TypeHandle)
}

// classificationRules is the complete rule table, evaluated in order for
// every node. The leaf rule runs last because it reads the enumerable flag.
var classificationRules = []classificationRule{
	{
		name:    "enum",
		applies: func(_ *Classifier, _ *graph.TypeNode, h typesys.TypeHandle) bool { return h.IsEnum() },
		apply:   (*Classifier).applyEnum,
	},
	{
		name:    "list",
		applies: func(c *Classifier, _ *graph.TypeNode, h typesys.TypeHandle) bool { return c.namer.IsList(h) },
		apply: func(c *Classifier, n *graph.TypeNode, h typesys.TypeHandle) {
			n.Classification.Enumerable = graph.Enumerable{
				ElementType:   c.namer.Identify(h.GenericArgs()[0]),
				ContainerKind: graph.ContainerList,
			}
		},
	},
	{
		name:    "array",
		applies: func(_ *Classifier, _ *graph.TypeNode, h typesys.TypeHandle) bool { return h.IsArray() },
		apply: func(c *Classifier, n *graph.TypeNode, h typesys.TypeHandle) {
			n.Classification.Enumerable = graph.Enumerable{
				ElementType:   c.namer.Identify(h.Elem()),
				ContainerKind: graph.ContainerArray,
			}
		},
	},
	{
		name: "late-bound reference",
		applies: func(c *Classifier, _ *graph.TypeNode, h typesys.TypeHandle) bool {
			return h.IsGeneric() && c.anchors.lateBoundReference != nil && c.rules.LateBoundFormat != "" &&
				h.AssignableTo(c.anchors.lateBoundReference)
		},
		apply: func(c *Classifier, n *graph.TypeNode, _ typesys.TypeHandle) {
			n.Classification.CustomFormats = []string{c.rules.LateBoundFormat}
		},
	},
	{
		name:    "scalar",
		applies: func(_ *Classifier, _ *graph.TypeNode, h typesys.TypeHandle) bool { return h.Primitive().IsScalar() },
		apply: func(_ *Classifier, n *graph.TypeNode, h typesys.TypeHandle) {
			switch h.Primitive() {
			case typesys.PrimitiveString:
				n.Classification.IsString = true
			case typesys.PrimitiveInteger:
				n.Classification.IsInteger = true
			case typesys.PrimitiveFloat:
				n.Classification.IsFloat = true
			case typesys.PrimitiveBool:
				n.Classification.IsBool = true
			}
		},
	},
	{
		name: "format-typed value",
		applies: func(c *Classifier, _ *graph.TypeNode, h typesys.TypeHandle) bool {
			_, ok := c.formatRule(h)
			return ok
		},
		apply: (*Classifier).applyFormat,
	},
	{
		name: "component properties",
		applies: func(c *Classifier, _ *graph.TypeNode, h typesys.TypeHandle) bool {
			return c.naming != "" && strings.Contains(h.Name(), c.naming)
		},
		apply: func(_ *Classifier, n *graph.TypeNode, _ typesys.TypeHandle) {
			n.Classification.IsComponentProperties = true
		},
	},
	{
		name: "custom parser",
		applies: func(c *Classifier, _ *graph.TypeNode, h typesys.TypeHandle) bool {
			return c.rules.CustomParseMethod != "" && h.HasMethod(c.rules.CustomParseMethod)
		},
		apply: (*Classifier).applyCustomParser,
	},
	{
		name:    "definition root",
		applies: (*Classifier).isDefinition,
		apply: func(c *Classifier, n *graph.TypeNode, h typesys.TypeHandle) {
			if h.IsArray() {
				n.Classification.RootDefName = c.namer.Identify(h)
				return
			}

			n.Classification.RootDefName = h.Name()
		},
	},
	{
		name:    "abstract",
		applies: func(_ *Classifier, _ *graph.TypeNode, h typesys.TypeHandle) bool { return h.IsAbstract() },
		apply: func(_ *Classifier, n *graph.TypeNode, _ typesys.TypeHandle) {
			n.Classification.IsAbstract = true
		},
	},
	{
		name: "parent backfill",
		applies: func(_ *Classifier, n *graph.TypeNode, h typesys.TypeHandle) bool {
			return n.Classification.Parent == "" && h.Base() != nil
		},
		apply: (*Classifier).backfillParent,
	},
	{
		name:    "leaf",
		applies: func(_ *Classifier, _ *graph.TypeNode, _ typesys.TypeHandle) bool { return true },
		apply: func(_ *Classifier, n *graph.TypeNode, _ typesys.TypeHandle) {
			n.IsLeaf = n.Members.Len() == 0 && !n.Classification.Enumerable.IsSet()
		},
	},
}

// Classify visits every node of reg once. Nodes classified by an earlier
// call are skipped.
func (c *Classifier) Classify(reg *graph.Registry) {
	for _, n := range reg.Nodes() {
		if !n.MarkClassified() {
			continue
		}

		h := n.Handle()
		if h == nil {
			n.IsLeaf = n.Members.Len() == 0
			continue
		}

		for _, rule := range classificationRules {
			if rule.applies(c, n, h) {
				rule.apply(c, n, h)
			}
		}
	}
}

func (c *Classifier) applyEnum(n *graph.TypeNode, h typesys.TypeHandle) {
	values := h.EnumValues()

	n.LeafCompletions = make([]graph.CompletionItem, 0, len(values))
	for _, v := range values {
		n.LeafCompletions = append(n.LeafCompletions, graph.CompletionItem{
			Label: v,
			Kind:  graph.CompletionEnum,
		})
	}

	n.Classification.IsEnum = true
}

// formatRule returns the first format rule naming h, or an ancestor of h
// for rules including derived types.
func (c *Classifier) formatRule(h typesys.TypeHandle) (profile.FormatRule, bool) {
	id := c.namer.Identify(h)

	for _, r := range c.rules.Formats {
		if r.Type == id {
			return r, true
		}

		if !r.IncludeDerived {
			continue
		}

		for _, a := range typesys.Ancestors(h) {
			if c.namer.Identify(a) == r.Type {
				return r, true
			}
		}
	}

	return profile.FormatRule{}, false
}

func (c *Classifier) applyFormat(n *graph.TypeNode, h typesys.TypeHandle) {
	r, _ := c.formatRule(h)

	switch r.Flag {
	case profile.FlagColor:
		n.Classification.IsColor = true
	case profile.FlagIntVector:
		n.Classification.IsIntVector = true
	case profile.FlagFloatVector:
		n.Classification.IsFloatVector = true
	case profile.FlagIntRange:
		n.Classification.IsIntRange = true
	case profile.FlagFloatRange:
		n.Classification.IsFloatRange = true
	}

	n.Classification.CustomFormats = slices.Clone(r.Formats)
}

func (c *Classifier) applyCustomParser(n *graph.TypeNode, h typesys.TypeHandle) {
	logger.Verbose(fmt.Sprintf("found custom parser: %s", n.Identifier))
	n.Classification.HasCustomParser = true

	id := c.namer.Identify(h)
	for _, kv := range c.rules.KeyValueParsers {
		if !keyValueMatches(kv, id, h) {
			continue
		}

		n.Classification.CustomKeyValue = graph.KeyValue{Key: kv.Key, Value: kv.Value}
		if kv.Hyperlink {
			n.Classification.Hyperlink = true
		}
	}
}

func keyValueMatches(kv profile.KeyValueRule, id string, h typesys.TypeHandle) bool {
	if kv.Type != "" && (kv.Type == id || kv.Type == typesys.Simple(h)) {
		return true
	}

	return kv.NameContains != "" && strings.Contains(h.Name(), kv.NameContains)
}

// isDefinition reports whether h is the definition root, derives from it,
// or is an array of such types.
func (c *Classifier) isDefinition(_ *graph.TypeNode, h typesys.TypeHandle) bool {
	if h.IsArray() {
		return c.namer.Is(h.Elem(), c.anchors.definitionRoot)
	}

	return c.namer.Is(h, c.anchors.definitionRoot)
}

func (c *Classifier) backfillParent(n *graph.TypeNode, h typesys.TypeHandle) {
	parentID := c.namer.Identify(h.Base())

	logger.Warning(fmt.Sprintf("found parent info not registered: %s has parent %s", n.Identifier, parentID))
	c.diags.AddInfo(diagnostic.CodeParentBackfilled, "parent recorded during classification: "+parentID, n.Identifier, "")

	n.Classification.Parent = parentID
}
