package derive

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBindNamedFields(t *testing.T) {
	bindings := BindFields([]Field{
		{Name: "Left", Type: "token.Ident"},
		{Name: "Right", Type: "token.Ident"},
	})
	require.Len(t, bindings, 2)
	require.Equal(t, "Left", bindings[0].Name)
	require.Equal(t, "Right", bindings[1].Name)
	require.True(t, bindings[0].Member.Named)
	require.Equal(t, "Left", bindings[0].Member.Sel())
	require.Equal(t, 0, bindings[0].Member.Index)
	require.Equal(t, 1, bindings[1].Member.Index)
}

func TestBindEmbeddedFields(t *testing.T) {
	bindings := BindFields([]Field{
		{Type: "token.Minus", Embedded: true},
		{Type: "*ast.Expr", Embedded: true},
	})
	require.Equal(t, "binding_0", bindings[0].Name)
	require.Equal(t, "binding_1", bindings[1].Name)
	require.False(t, bindings[0].Member.Named)
	require.Equal(t, "Minus", bindings[0].Member.Sel())
	require.Equal(t, "Expr", bindings[1].Member.Sel())
}

// Binding names must be pairwise distinct and preserve declaration order,
// however large the collection.
func TestBindingNamesDistinct(t *testing.T) {
	var fields []Field
	for i := 0; i < 20; i++ {
		fields = append(fields, Field{Type: fmt.Sprintf("pkg.T%d", i), Embedded: true})
	}
	bindings := BindFields(fields)
	seen := map[string]bool{}
	for i, b := range bindings {
		require.Equal(t, fmt.Sprintf("binding_%d", i), b.Name)
		require.False(t, seen[b.Name])
		seen[b.Name] = true
	}
}

func TestStructBindingConstruct(t *testing.T) {
	named := BindStruct([]Field{
		{Name: "A", Type: "token.Ident"},
		{Name: "B", Type: "token.Int"},
	})
	require.Equal(t, "Pair{ A: A, B: B }", named.Construct("Pair"))

	unnamed := BindStruct([]Field{
		{Type: "token.Minus", Embedded: true},
		{Type: "Num", Embedded: true},
	})
	require.Equal(t, "Neg{binding_0, binding_1}", unnamed.Construct("Neg"))

	unit := BindStruct(nil)
	require.Equal(t, "Nil{}", unit.Construct("Nil"))
}

func TestVariantPattern(t *testing.T) {
	named := BindVariant(Variant{Name: "Lit", Fields: []Field{{Name: "Value", Type: "token.Int"}}})
	require.Equal(t, "Lit{ Value: Value }", named.Pattern())

	unnamed := BindVariant(Variant{Name: "Neg", Fields: []Field{
		{Type: "token.Minus", Embedded: true},
		{Type: "Num", Embedded: true},
	}})
	require.Equal(t, "Neg{binding_0, binding_1}", unnamed.Pattern())

	unit := BindVariant(Variant{Name: "Nil"})
	require.Equal(t, "Nil{}", unit.Pattern())
}
