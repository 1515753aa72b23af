package graph

//go:generate go tool stringer -type=CompletionItemKind -trimprefix=Completion -output=kind_string.go

// CompletionItemKind is the editor completion category of a suggestion.
// Values are fixed by the editor protocol consuming the output.
type CompletionItemKind int

const (
	CompletionText       CompletionItemKind = 1
	CompletionField      CompletionItemKind = 5
	CompletionVariable   CompletionItemKind = 6
	CompletionClass      CompletionItemKind = 7
	CompletionProperty   CompletionItemKind = 10
	CompletionValue      CompletionItemKind = 12
	CompletionEnum       CompletionItemKind = 13
	CompletionKeyword    CompletionItemKind = 14
	CompletionReference  CompletionItemKind = 18
	CompletionEnumMember CompletionItemKind = 20
	CompletionConstant   CompletionItemKind = 21
)

// CompletionItem is a single editor suggestion.
type CompletionItem struct {
	Label string             `json:"label"`
	Kind  CompletionItemKind `json:"kind"`
}
