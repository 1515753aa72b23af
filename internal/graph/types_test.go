package graph

import (
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberMap_Order(t *testing.T) {
	var m MemberMap
	m.Set("label", "System.String")
	m.Set("comps", "System.Collections.Generic.List<Verse.CompProperties>")
	m.Set("label", "System.String")

	assert.Equal(t, []string{"label", "comps"}, m.Names())
	assert.Equal(t, 2, m.Len())

	id, ok := m.Get("comps")
	require.True(t, ok)
	assert.Equal(t, "System.Collections.Generic.List<Verse.CompProperties>", id)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestMemberMap_MarshalJSONKeepsInsertionOrder(t *testing.T) {
	var m MemberMap
	m.Set("z", "System.Int32")
	m.Set("a", "System.String")

	data, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"z":"System.Int32","a":"System.String"}`, string(data))
	assert.Equal(t, `{"z":"System.Int32","a":"System.String"}`, string(data))
}

func TestTypeNode_JSONOmitsEmptyData(t *testing.T) {
	node := NewTypeNode("System.Int32", nil)
	node.IsLeaf = true
	node.Classification.IsInteger = true

	data, err := json.Marshal(node)
	require.NoError(t, err)
	assert.JSONEq(t, `{"typeIdentifier":"System.Int32","isLeafNode":true,"specialType":{"integer":true}}`, string(data))
}

func TestTypeNode_JSONEnum(t *testing.T) {
	node := NewTypeNode("Verse.Gender", nil)
	node.IsLeaf = true
	node.Classification.IsEnum = true
	node.LeafCompletions = []CompletionItem{{Label: "Male", Kind: CompletionEnum}}

	data, err := json.Marshal(node)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"typeIdentifier":"Verse.Gender","isLeafNode":true,"specialType":{"enum":true},"leafNodeCompletions":[{"label":"Male","kind":13}]}`,
		string(data))
}

func TestCompletionItemKind_String(t *testing.T) {
	assert.Equal(t, "Text", CompletionText.String())
	assert.Equal(t, "Variable", CompletionVariable.String())
	assert.Equal(t, "Enum", CompletionEnum.String())
	assert.Equal(t, "EnumMember", CompletionEnumMember.String())
	assert.Equal(t, "Constant", CompletionConstant.String())
	assert.Equal(t, "CompletionItemKind(2)", CompletionItemKind(2).String())
}
