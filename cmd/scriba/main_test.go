package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriba-dev/scriba/compiler/load"
	"github.com/scriba-dev/scriba/schema"
)

const helloModel = `unit:
  name: Hello
  interface:
    uses:
      - unit: System.SysUtils
    declarations:
      - enum:
          name: TGreeting
          values:
            - name: grHi
            - name: grBye
`

func writeTestModel(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunVersion(t *testing.T) {
	require.NoError(t, run([]string{"scriba", "version"}))
}

func TestRunGenerate(t *testing.T) {
	model := writeTestModel(t, "hello.yaml", helloModel)
	out := t.TempDir()

	err := run([]string{"scriba", "generate", "--out", out, model})
	require.NoError(t, err)

	src, err := os.ReadFile(filepath.Join(out, "Hello.pas"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "unit Hello;")
	assert.Contains(t, string(src), "TGreeting = (")
}

func TestRunGenerateMissingModel(t *testing.T) {
	err := run([]string{"scriba", "generate", filepath.Join(t.TempDir(), "absent.yaml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no model files match")
}

func TestRunModelgen(t *testing.T) {
	model := writeTestModel(t, "hello.yaml", helloModel)
	out := filepath.Join(t.TempDir(), "hello.go")

	err := run([]string{"scriba", "modelgen", "--package", "fixtures", "--out", out, model})
	require.NoError(t, err)

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package fixtures")
	assert.Contains(t, string(src), "func NewHelloUnit()")
}

func TestRunImportGraphQL(t *testing.T) {
	sdl := writeTestModel(t, "schema.graphql", `
type Query {
  user: User
}

type User {
  id: ID!
  name: String
}
`)
	out := filepath.Join(t.TempDir(), "model.yaml")

	err := run([]string{"scriba", "import", "graphql", "--unit", "Api.Models", "--out", out, sdl})
	require.NoError(t, err)

	doc, err := load.LoadFile(out)
	require.NoError(t, err)
	file, err := doc.SourceFile()
	require.NoError(t, err)

	unit, ok := file.(*schema.Unit)
	require.True(t, ok)
	assert.Equal(t, "Api.Models", unit.BaseName())
	require.Len(t, unit.Interface.Declarations, 1)
	class, ok := unit.Interface.Declarations[0].(*schema.ClassDeclaration)
	require.True(t, ok)
	assert.Equal(t, "TUser", class.Name)
}

func TestRenderedName(t *testing.T) {
	unit := schema.NewUnit(schema.NewUnitIdentifier("Models", "App"))
	assert.Equal(t, "App.Models.pas", renderedName(unit))

	program := schema.NewProgram("Hello")
	assert.Equal(t, "Hello.dpr", renderedName(program))
}
