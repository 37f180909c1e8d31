package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriba-dev/scriba/schema"
)

func dottedPaths(refs []*schema.ConditionalUnitReference) []string {
	paths := make([]string, len(refs))
	for i, r := range refs {
		paths[i] = r.Effective().String()
	}
	return paths
}

func TestCompareUnitReference(t *testing.T) {
	t.Run("element-wise ordering", func(t *testing.T) {
		a := schema.NewUnitReference("System.Generics.Collections")
		b := schema.NewUnitReference("System.SysUtils")

		assert.Negative(t, CompareUnitReference(a, b))
		assert.Positive(t, CompareUnitReference(b, a))
	})

	t.Run("strict prefix sorts first", func(t *testing.T) {
		short := schema.NewUnitReference("System")
		long := schema.NewUnitReference("System.SysUtils")

		assert.Negative(t, CompareUnitReference(short, long))
		assert.Positive(t, CompareUnitReference(long, short))
	})

	t.Run("identical paths compare equal", func(t *testing.T) {
		a := schema.NewUnitReference("uMain")
		b := schema.NewUnitReference("uMain")

		assert.Zero(t, CompareUnitReference(a, b))
	})

	t.Run("byte ordering is case sensitive", func(t *testing.T) {
		upper := schema.NewUnitReference("Zebra")
		lower := schema.NewUnitReference("apple")

		assert.Negative(t, CompareUnitReference(upper, lower))
	})

	t.Run("conditional reference uses effective identifier", func(t *testing.T) {
		alt := &schema.ConditionalUnitReference{
			Alternative: schema.ParseUnitIdentifier("uAlt"),
			Condition:   &schema.CompilationCondition{Symbol: "FOO"},
		}
		plain := schema.NewUnitReference("uMain")

		assert.Negative(t, CompareUnitReference(alt, plain))
	})
}

func TestSortUsesClause(t *testing.T) {
	t.Run("shorter prefix first", func(t *testing.T) {
		refs := []*schema.ConditionalUnitReference{
			schema.NewUnitReference("System.SysUtils"),
			schema.NewUnitReference("System.Generics.Collections"),
			schema.NewUnitReference("System"),
		}

		SortUsesClause(refs)

		assert.Equal(t, []string{
			"System",
			"System.Generics.Collections",
			"System.SysUtils",
		}, dottedPaths(refs))
	})

	t.Run("sort is idempotent", func(t *testing.T) {
		refs := []*schema.ConditionalUnitReference{
			schema.NewUnitReference("uB"),
			schema.NewUnitReference("uA"),
			schema.NewUnitReference("uC"),
		}

		SortUsesClause(refs)
		once := dottedPaths(refs)
		SortUsesClause(refs)

		assert.Equal(t, once, dottedPaths(refs))
	})

	t.Run("equal keys keep their relative order", func(t *testing.T) {
		first := schema.NewUnitReference("uDup")
		second := &schema.ConditionalUnitReference{
			Primary:   schema.ParseUnitIdentifier("uDup"),
			Condition: &schema.CompilationCondition{Symbol: "FOO"},
		}
		refs := []*schema.ConditionalUnitReference{
			schema.NewUnitReference("uZ"),
			first,
			second,
			schema.NewUnitReference("uA"),
		}

		SortUsesClause(refs)

		require.Len(t, refs, 4)
		assert.Same(t, first, refs[1])
		assert.Same(t, second, refs[2])
	})

	t.Run("empty list is a no-op", func(t *testing.T) {
		var refs []*schema.ConditionalUnitReference
		SortUsesClause(refs)
		assert.Empty(t, refs)
	})
}
