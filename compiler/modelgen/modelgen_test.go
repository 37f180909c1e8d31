package modelgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriba-dev/scriba/compiler/gen"
	"github.com/scriba-dev/scriba/compiler/load"
)

// modelDocument builds a document covering every construct Emit generates
// code for.
func modelDocument() *load.Document {
	return &load.Document{Unit: &load.Unit{
		Name:      "Models",
		Namespace: []string{"App"},
		Comment:   []string{"Data model for the app."},
		Includes:  []string{"defines.inc"},
		Interface: &load.InterfaceSection{
			Uses: []*load.Reference{
				{Unit: "System.SysUtils"},
				{Unit: "Winapi.Windows", Alt: "Posix.Unistd", IfDef: "MSWINDOWS"},
			},
			Declarations: []*load.Declaration{
				{Enum: &load.Enum{
					Name: "TColor",
					Values: []*load.EnumValue{
						{Name: "clRed"},
						{Name: "clBlue", Ordinal: intPtr(4)},
					},
				}},
				{Interface: &load.Interface{
					Name:     "IGreeter",
					Ancestor: "IInterface",
					GUID:     "{9885A725-4C4F-4B76-A4BC-5C5EBC0876EA}",
					Members: []*load.ClassElement{
						{Method: &load.MethodHead{Kind: "function", Name: "GetName", Returns: "string"}},
					},
				}},
				{Class: &load.Class{
					Name:        "TGreeter",
					Ancestor:    "TObject",
					Implements:  []string{"IGreeter"},
					Annotations: []*load.Annotation{{Text: "Serializable"}},
					Members: []*load.ClassElement{
						{Visibility: "public", Const: &load.Const{Name: "DefaultName", Value: "'world'"}},
						{Visibility: "private", Field: &load.Field{Name: "FName", Type: "string"}},
						{Visibility: "public", Method: &load.MethodHead{
							Kind: "constructor", Name: "Create",
							Params: []*load.Param{{Name: "AName", Type: "string"}},
						}},
						{Visibility: "public", Method: &load.MethodHead{
							Kind: "procedure", Name: "Greet", Binding: "virtual",
						}},
						{Visibility: "public", Property: &load.Property{Name: "Name", Type: "string", Read: "GetName"}},
					},
				}},
			},
		},
		Implementation: &load.ImplementationSection{
			Uses: []*load.Reference{{Unit: "System.Classes"}},
			Methods: []*load.Method{
				{
					Class: "TGreeter", Kind: "procedure", Name: "Greet",
					Locals: []string{"Line: string;"},
					Body:   []string{"Line := 'Hello, ' + FName + '!';", "WriteLn(Line);"},
				},
			},
		},
	}}
}

func intPtr(v int) *int { return &v }

func TestEmit(t *testing.T) {
	t.Run("unit constructor rebuilds the model through the schema API", func(t *testing.T) {
		src, err := Emit(modelDocument(), "models")

		require.NoError(t, err)
		code := string(src)
		assert.Contains(t, code, "// Code generated by scriba. DO NOT EDIT.")
		assert.Contains(t, code, "package models")
		assert.Contains(t, code, "// NewAppModelsUnit builds the App.Models unit model.")
		assert.Contains(t, code, "func NewAppModelsUnit() *schema.Unit {")
		assert.Contains(t, code, `u := schema.NewUnit(schema.NewUnitIdentifier("Models", "App"))`)
		assert.Contains(t, code, `u.Includes = []string{"defines.inc"}`)
		assert.Contains(t, code, `schema.NewUnitReference("System.SysUtils")`)
		assert.Contains(t, code, `schema.ParseUnitIdentifier("Winapi.Windows")`)
		assert.Contains(t, code, `Symbol: "MSWINDOWS"`)
		assert.Contains(t, code, `AddValue("clRed")`)
		assert.Contains(t, code, `AddOrdinalValue("clBlue", 4)`)
		assert.Contains(t, code, `GUID: "{9885A725-4C4F-4B76-A4BC-5C5EBC0876EA}"`)
		assert.Contains(t, code, `schema.NewAttributeAnnotation("Serializable")`)
		assert.Contains(t, code, "Visibility: schema.Private")
		assert.Contains(t, code, "Kind: schema.Constructor")
		assert.Contains(t, code, "Binding: schema.Virtual")
		assert.Contains(t, code, `Reader: "GetName"`)
		assert.Contains(t, code, `LocalDecls: []string{"Line: string;"}`)
		assert.Contains(t, code, "return u")
	})

	t.Run("program constructor", func(t *testing.T) {
		doc := &load.Document{Program: &load.Program{
			Name:       "Hello",
			Uses:       []*load.Reference{{Unit: "App.Models"}},
			Variables:  []string{"Greeter: TGreeter;"},
			Statements: []string{"Greeter := TGreeter.Create('world');", "Greeter.Greet;"},
		}}

		src, err := Emit(doc, "models")

		require.NoError(t, err)
		code := string(src)
		assert.Contains(t, code, "func NewHelloProgram() *schema.Program {")
		assert.Contains(t, code, `p := schema.NewProgram("Hello")`)
		assert.Contains(t, code, `p.AddUses(schema.NewUnitReference("App.Models"))`)
		assert.Contains(t, code, `p.Variables = []string{"Greeter: TGreeter;"}`)
		assert.Contains(t, code, "return p")
	})

	t.Run("output is deterministic", func(t *testing.T) {
		first, err := Emit(modelDocument(), "models")
		require.NoError(t, err)
		second, err := Emit(modelDocument(), "models")
		require.NoError(t, err)

		assert.Equal(t, string(first), string(second))
	})

	t.Run("empty document fails with a generation error", func(t *testing.T) {
		_, err := Emit(&load.Document{}, "models")

		require.Error(t, err)
		assert.True(t, gen.IsGenerationError(err))
		assert.ErrorIs(t, err, load.ErrInvalidDocument)
	})

	t.Run("invalid document fails with a generation error", func(t *testing.T) {
		doc := &load.Document{Unit: &load.Unit{Namespace: []string{"App"}}}

		_, err := Emit(doc, "models")

		require.Error(t, err)
		assert.True(t, gen.IsGenerationError(err))
		assert.Contains(t, err.Error(), "unit.name")
	})
}

func TestConstructorName(t *testing.T) {
	tests := []struct {
		name     string
		document *load.Document
		expected string
	}{
		{
			name:     "namespaced unit",
			document: &load.Document{Unit: &load.Unit{Name: "Models", Namespace: []string{"App"}}},
			expected: "NewAppModelsUnit",
		},
		{
			name:     "bare unit",
			document: &load.Document{Unit: &load.Unit{Name: "UnitX"}},
			expected: "NewUnitXUnit",
		},
		{
			name:     "snake name is pascalized",
			document: &load.Document{Unit: &load.Unit{Name: "my_models"}},
			expected: "NewMyModelsUnit",
		},
		{
			name:     "program",
			document: &load.Document{Program: &load.Program{Name: "Hello"}},
			expected: "NewHelloProgram",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := tt.document.SourceFile()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, constructorName(file))
		})
	}
}
