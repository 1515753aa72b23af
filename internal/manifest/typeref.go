package manifest

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	lru "github.com/hashicorp/golang-lru/v2"
)

const refCacheSize = 4096

// typeRef is the parsed form of a type reference.
type typeRef struct {
	Name   []string   `parser:"@Ident ( '.' @Ident )*"`
	Args   []*typeRef `parser:"( '<' @@ ( ',' @@ )* '>' )?"`
	Arrays []string   `parser:"@Array*"`
}

// FullName returns the dotted name without arguments.
func (r *typeRef) FullName() string {
	return strings.Join(r.Name, ".")
}

var refLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Array", Pattern: `\[\]`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[.<>,]`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var refParser = participle.MustBuild[typeRef](
	participle.Lexer(refLexer),
	participle.Elide("Whitespace"),
)

// refCache memoizes parsed references; manifests repeat the same few
// references many times.
type refCache struct {
	cache *lru.Cache[string, *typeRef]
}

func newRefCache() *refCache {
	cache, err := lru.New[string, *typeRef](refCacheSize)
	if err != nil {
		panic(err)
	}

	return &refCache{cache: cache}
}

// parse parses a type reference. Parsed references are shared and must not
// be modified.
func (c *refCache) parse(ref string) (*typeRef, error) {
	if r, ok := c.cache.Get(ref); ok {
		return r, nil
	}

	r, err := refParser.ParseString("", ref)
	if err != nil {
		return nil, fmt.Errorf("invalid type reference %q: %w", ref, err)
	}

	c.cache.Add(ref, r)

	return r, nil
}
