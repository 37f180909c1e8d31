// Package schema provides the building blocks for describing Object Pascal
// source files as typed, in-memory trees.
//
// A tree is constructed by the caller, handed to the writer in
// [github.com/scriba-dev/scriba/compiler/gen], rendered once, and discarded.
// Rendering never mutates a tree; use [Unit.Clone] and friends when a tree
// must outlive a mutation performed elsewhere.
//
// # Quick Start
//
// Describe a unit by filling its sections:
//
//	u := schema.NewUnit(schema.NewUnitIdentifier("uPerson"))
//	u.AddInterfaceUses(schema.NewUnitReference("System.SysUtils"))
//	u.AddDeclaration(&schema.ClassDeclaration{
//	    Name:     "TPerson",
//	    Ancestor: "TObject",
//	    Elements: []schema.ClassElement{
//	        &schema.ClassMemberDeclaration{
//	            Visibility: schema.Private,
//	            Member:     &schema.FieldDeclaration{Name: "FName", TypeName: "string"},
//	        },
//	        &schema.ClassMemberDeclaration{
//	            Visibility: schema.Public,
//	            Member: &schema.PropertyDeclaration{
//	                Name: "Name", TypeName: "string", Reader: "FName", Writer: "FName",
//	            },
//	        },
//	    },
//	})
//
// # Conditional Compilation
//
// Uses-clause references and attribute annotations may be switched on a
// preprocessor symbol. A [ConditionalUnitReference] holds a primary element,
// an alternative element, and an optional [CompilationCondition]:
//
//	// uWindows under {$IFDEF MSWINDOWS}, uPosix otherwise.
//	ref := &schema.ConditionalUnitReference{
//	    Primary:     schema.ParseUnitIdentifier("uWindows"),
//	    Alternative: schema.ParseUnitIdentifier("uPosix"),
//	    Condition:   &schema.CompilationCondition{Symbol: "MSWINDOWS"},
//	}
//
// When the condition is absent the primary element must be present and is
// emitted unconditionally. When a condition is set, at least one element must
// be present; the writer rejects wrappers that have nothing to emit.
//
// # Raw Bodies
//
// Statement and local-variable text inside method bodies is deliberately not
// modeled: [MethodDeclaration] carries pre-formatted strings that are
// reindented line-by-line at emission time. Modeling Pascal expressions is a
// non-goal of this package.
package schema
