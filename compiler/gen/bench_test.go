package gen_test

import (
	"testing"

	"github.com/scriba-dev/scriba/compiler/gen"
	"github.com/scriba-dev/scriba/schema"
)

// benchUnit builds a unit with a representative mix of declarations.
func benchUnit() *schema.Unit {
	u := schema.NewUnit(schema.NewUnitIdentifier("Bench", "App"))
	u.AddInterfaceUses(
		schema.NewUnitReference("System.SysUtils"),
		schema.NewUnitReference("System.Generics.Collections"),
		&schema.ConditionalUnitReference{
			Primary:     schema.ParseUnitIdentifier("Winapi.Windows"),
			Alternative: schema.ParseUnitIdentifier("Posix.Unistd"),
			Condition:   &schema.CompilationCondition{Symbol: "MSWINDOWS"},
		},
	)
	u.AddDeclaration(
		(&schema.EnumDeclaration{Name: "TState"}).
			AddValue("stIdle").
			AddValue("stRunning").
			AddOrdinalValue("stDone", 10),
	)
	cls := &schema.ClassDeclaration{Name: "TWorker", Ancestor: "TObject"}
	cls.AddMember(schema.Private, &schema.FieldDeclaration{Name: "FState", TypeName: "TState"})
	cls.AddMember(schema.Private, &schema.FieldDeclaration{Name: "FName", TypeName: "string"})
	cls.AddMember(schema.Public, &schema.MethodInterfaceDeclaration{
		Prototype: &schema.Prototype{
			Kind: schema.Constructor, Name: "Create",
			Parameters: []*schema.Parameter{{Name: "AName", TypeName: "string"}},
		},
	})
	cls.AddMember(schema.Public, &schema.MethodInterfaceDeclaration{
		Prototype: &schema.Prototype{Kind: schema.Procedure, Name: "Run"},
		Binding:   schema.Virtual,
	})
	cls.AddMember(schema.Public, &schema.PropertyDeclaration{Name: "State", TypeName: "TState", Reader: "FState"})
	u.AddDeclaration(cls)
	u.AddImplementationUses(schema.NewUnitReference("System.Classes"))
	u.AddMethod(
		&schema.MethodDeclaration{
			Class: "TWorker",
			Prototype: &schema.Prototype{
				Kind: schema.Constructor, Name: "Create",
				Parameters: []*schema.Parameter{{Name: "AName", TypeName: "string"}},
			},
			Statements: []string{"inherited Create;", "FName := AName;"},
		},
		&schema.MethodDeclaration{
			Class:      "TWorker",
			Prototype:  &schema.Prototype{Kind: schema.Procedure, Name: "Run"},
			LocalDecls: []string{"I: Integer;"},
			Statements: []string{"for I := 1 to 10 do\nbegin\n  Tick(I);\nend;"},
		},
	)
	return u
}

func BenchmarkWriter_RenderUnit(b *testing.B) {
	u := benchUnit()
	w := gen.NewWriter()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := w.RenderUnit(u); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSplitSyllables(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		gen.SplitSyllables("my-example_Name5Tag")
	}
}

func BenchmarkToCase(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		gen.ToCase("myLongExample_name", gen.CaseScreamingSnake)
	}
}

func BenchmarkSortUsesClause(b *testing.B) {
	base := []*schema.ConditionalUnitReference{
		schema.NewUnitReference("System.SysUtils"),
		schema.NewUnitReference("System.Generics.Collections"),
		schema.NewUnitReference("System"),
		schema.NewUnitReference("Winapi.Windows"),
		schema.NewUnitReference("uMain"),
		schema.NewUnitReference("System.Classes"),
	}
	refs := make([]*schema.ConditionalUnitReference, len(base))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(refs, base)
		gen.SortUsesClause(refs)
	}
}
