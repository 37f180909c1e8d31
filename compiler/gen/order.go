package gen

import (
	"slices"
	"strings"

	"github.com/scriba-dev/scriba/schema"
)

// referencePath returns the dotted path that determines a reference's sort
// position. References without any element sort first.
func referencePath(r *schema.ConditionalUnitReference) []string {
	if id := r.Effective(); id != nil {
		return id.Path()
	}
	return nil
}

// CompareUnitReference compares two uses-clause references by their dotted
// paths, element by element in ordinary string order. A path that is a
// strict prefix of the other sorts first, so "System" precedes
// "System.SysUtils". References with identical paths compare equal.
func CompareUnitReference(a, b *schema.ConditionalUnitReference) int {
	return slices.CompareFunc(referencePath(a), referencePath(b), strings.Compare)
}

// SortUsesClause sorts a reference list in place using CompareUnitReference.
// The sort is stable: references with identical paths keep their relative
// input order, and sorting an already sorted list is a no-op.
func SortUsesClause(refs []*schema.ConditionalUnitReference) {
	slices.SortStableFunc(refs, CompareUnitReference)
}
