package matrix_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDenseDoc_OnType keeps the Dense comment on the type instead of the
// package clause, where godoc would merge it into the package docs.
func TestDenseDoc_OnType(t *testing.T) {
	f, err := parser.ParseFile(token.NewFileSet(), "dense.go", nil, parser.ParseComments)
	require.NoError(t, err)
	assert.Nil(t, f.Doc, "dense.go must not carry a package comment")

	var doc string
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			if ts := spec.(*ast.TypeSpec); ts.Name.Name == "Dense" && gd.Doc != nil {
				doc = gd.Doc.Text()
			}
		}
	}
	assert.True(t, strings.HasPrefix(doc, "Dense is"), "Dense doc: %q", doc)
}
