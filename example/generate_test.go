package example

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/derive-go/derive"
	"github.com/derive-go/derive/gen"
)

// The committed derive_gen.go must stay byte-identical to what the
// generator produces from the package source.
func TestRegenerate(t *testing.T) {
	pkg, err := derive.ParsePackage(".")
	require.NoError(t, err)
	require.Equal(t, "example", pkg.Name)

	var names []string
	for _, decl := range pkg.Decls {
		names = append(names, decl.Name)
	}
	require.Equal(t, []string{"Expr", "Num", "Str", "Ref", "Neg", "Group", "Assign"}, names)
	require.Equal(t, derive.KindEnum, pkg.Decls[0].Kind)
	require.Len(t, pkg.Decls[0].Enum.Variants, 5)

	generated, err := gen.Generate(pkg, "derive_gen.go")
	require.NoError(t, err)
	committed, err := os.ReadFile("derive_gen.go")
	require.NoError(t, err)
	require.Equal(t, string(committed), string(generated))
}
