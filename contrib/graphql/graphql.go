package graphql

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/scriba-dev/scriba/compiler/gen"
	"github.com/scriba-dev/scriba/schema"
)

// builtinScalars maps the GraphQL built-in scalars onto Delphi primitives.
var builtinScalars = map[string]string{
	"Int":     "Integer",
	"Float":   "Double",
	"String":  "string",
	"ID":      "string",
	"Boolean": "Boolean",
}

// Option configures an import.
type Option func(*Config) error

// WithConfig merges a loaded configuration file into the import. Later
// options override its values.
func WithConfig(cfg *Config) Option {
	return func(c *Config) error {
		if cfg == nil {
			return gen.NewConfigError("Config", nil, "config cannot be nil")
		}
		if cfg.Unit != "" {
			c.Unit = cfg.Unit
		}
		if len(cfg.Namespace) > 0 {
			c.Namespace = cfg.Namespace
		}
		for name, delphiType := range cfg.Scalars {
			c.Scalars[name] = delphiType
		}
		return nil
	}
}

// WithUnitName sets the name of the produced unit.
func WithUnitName(name string) Option {
	return func(c *Config) error {
		if name == "" {
			return gen.NewConfigError("Unit", name, "unit name cannot be empty")
		}
		c.Unit = name
		return nil
	}
}

// WithNamespace sets the namespace segments of the produced unit, outermost
// first.
func WithNamespace(segments ...string) Option {
	return func(c *Config) error {
		for _, s := range segments {
			if s == "" {
				return gen.NewConfigError("Namespace", segments, "namespace segments cannot be empty")
			}
		}
		c.Namespace = segments
		return nil
	}
}

// WithScalar maps a custom scalar to a Delphi type.
func WithScalar(name, delphiType string) Option {
	return func(c *Config) error {
		if name == "" || delphiType == "" {
			return gen.NewConfigError("Scalars", name, "scalar mappings need a name and a type")
		}
		c.Scalars[name] = delphiType
		return nil
	}
}

// Import parses an SDL document and returns a unit declaring its types:
// enumerated types first, then interfaces, then classes, each group in name
// order. Object fields that take arguments describe resolvers rather than
// data and are skipped.
func Import(src []byte, opts ...Option) (*schema.Unit, error) {
	config := &Config{
		Unit:    "Models",
		Scalars: make(map[string]string),
	}
	for _, opt := range opts {
		if err := opt(config); err != nil {
			return nil, err
		}
	}

	doc, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphql", Input: string(src)})
	if err != nil {
		return nil, fmt.Errorf("scriba: parse graphql schema: %w", err)
	}

	cv := &converter{schema: doc, config: config}
	return cv.unit(), nil
}

// converter maps a parsed GraphQL schema onto the unit model.
type converter struct {
	schema *ast.Schema
	config *Config

	usesVariants bool
}

func (cv *converter) unit() *schema.Unit {
	unit := schema.NewUnit(schema.NewUnitIdentifier(cv.config.Unit, cv.config.Namespace...))
	unit.Comment = &schema.AnnotationComment{
		Lines: []string{"Imported from a GraphQL schema by scriba."},
	}

	names := make([]string, 0, len(cv.schema.Types))
	for name := range cv.schema.Types {
		names = append(names, name)
	}
	sort.Strings(names)

	var enums, interfaces, objects []*ast.Definition
	for _, name := range names {
		def := cv.schema.Types[name]
		if cv.skip(def) {
			continue
		}
		switch def.Kind {
		case ast.Enum:
			enums = append(enums, def)
		case ast.Interface:
			interfaces = append(interfaces, def)
		case ast.Object, ast.InputObject:
			objects = append(objects, def)
		}
	}

	for _, def := range enums {
		unit.AddDeclaration(cv.enum(def))
	}
	for _, def := range interfaces {
		unit.AddDeclaration(cv.interfaceType(def))
	}
	for _, def := range objects {
		class, methods := cv.object(def)
		unit.AddDeclaration(class)
		unit.AddMethod(methods...)
	}

	if cv.usesVariants {
		unit.AddInterfaceUses(schema.NewUnitReference("System.Variants"))
	}
	return unit
}

// skip reports whether a definition is excluded from the import: built-in
// prelude types, introspection types and the root operation types. Unions
// and custom scalars are referenced through field types but declare nothing
// themselves.
func (cv *converter) skip(def *ast.Definition) bool {
	if def.BuiltIn || strings.HasPrefix(def.Name, "__") {
		return true
	}
	for _, root := range []*ast.Definition{cv.schema.Query, cv.schema.Mutation, cv.schema.Subscription} {
		if root != nil && root.Name == def.Name {
			return true
		}
	}
	return false
}

// skipField reports whether a field is excluded: introspection fields and
// fields that take arguments.
func (cv *converter) skipField(field *ast.FieldDefinition) bool {
	return strings.HasPrefix(field.Name, "__") || len(field.Arguments) > 0
}

func (cv *converter) enum(def *ast.Definition) *schema.EnumDeclaration {
	enum := &schema.EnumDeclaration{
		Name:    "T" + def.Name,
		Comment: comment(def.Description),
	}
	prefix := gen.Initials(def.Name)
	for _, v := range def.EnumValues {
		enum.AddValue(prefix + gen.ToCase(v.Name, gen.CasePascal))
	}
	return enum
}

func (cv *converter) interfaceType(def *ast.Definition) *schema.InterfaceTypeDeclaration {
	decl := &schema.InterfaceTypeDeclaration{
		Name:     "I" + def.Name,
		Ancestor: "IInterface",
		GUID:     schema.DeterministicGUID("I" + def.Name),
		Comment:  comment(def.Description),
	}
	for _, field := range def.Fields {
		if cv.skipField(field) {
			continue
		}
		name := gen.ToCase(field.Name, gen.CasePascal)
		typeName := cv.delphiType(field.Type)
		decl.Members = append(decl.Members,
			&schema.ClassMemberDeclaration{Member: &schema.MethodInterfaceDeclaration{
				Prototype: &schema.Prototype{
					Kind:       schema.Function,
					Name:       "Get" + name,
					ReturnType: typeName,
				},
			}},
			&schema.ClassMemberDeclaration{Member: &schema.PropertyDeclaration{
				Name:     name,
				TypeName: typeName,
				Reader:   "Get" + name,
			}},
		)
	}
	return decl
}

// object maps an object or input definition onto a class: private backing
// fields, private getters satisfying the implemented interfaces, and public
// read/write properties. The getter bodies land in the implementation
// section.
func (cv *converter) object(def *ast.Definition) (*schema.ClassDeclaration, []*schema.MethodDeclaration) {
	class := &schema.ClassDeclaration{
		Name:    "T" + def.Name,
		Comment: comment(def.Description),
	}
	if len(def.Interfaces) > 0 {
		class.Ancestor = "TInterfacedObject"
		for _, name := range def.Interfaces {
			class.Interfaces = append(class.Interfaces, "I"+name)
		}
	}

	fields := make([]*ast.FieldDefinition, 0, len(def.Fields))
	for _, field := range def.Fields {
		if !cv.skipField(field) {
			fields = append(fields, field)
		}
	}

	for _, field := range fields {
		class.AddMember(schema.Private, &schema.FieldDeclaration{
			Name:     "F" + gen.ToCase(field.Name, gen.CasePascal),
			TypeName: cv.delphiType(field.Type),
		})
	}

	var methods []*schema.MethodDeclaration
	for _, proto := range cv.interfaceGetters(def) {
		class.AddMember(schema.Private, &schema.MethodInterfaceDeclaration{Prototype: proto})
		methods = append(methods, &schema.MethodDeclaration{
			Class:      class.Name,
			Prototype:  proto,
			Statements: []string{"Result := F" + strings.TrimPrefix(proto.Name, "Get") + ";"},
		})
	}

	for _, field := range fields {
		name := gen.ToCase(field.Name, gen.CasePascal)
		class.AddMember(schema.Public, &schema.PropertyDeclaration{
			Name:     name,
			TypeName: cv.delphiType(field.Type),
			Reader:   "F" + name,
			Writer:   "F" + name,
		})
	}
	return class, methods
}

// interfaceGetters returns the getter prototypes an object must provide for
// the interfaces it implements, in declaration order, deduplicated across
// interfaces sharing a field.
func (cv *converter) interfaceGetters(def *ast.Definition) []*schema.Prototype {
	var protos []*schema.Prototype
	seen := make(map[string]bool)
	for _, name := range def.Interfaces {
		iface := cv.schema.Types[name]
		if iface == nil {
			continue
		}
		for _, field := range iface.Fields {
			if cv.skipField(field) || seen[field.Name] {
				continue
			}
			seen[field.Name] = true
			protos = append(protos, &schema.Prototype{
				Kind:       schema.Function,
				Name:       "Get" + gen.ToCase(field.Name, gen.CasePascal),
				ReturnType: cv.delphiType(field.Type),
			})
		}
	}
	return protos
}

// delphiType maps a GraphQL type reference. Lists become dynamic arrays;
// non-null wrappers carry no Pascal distinction and are dropped.
func (cv *converter) delphiType(t *ast.Type) string {
	if t.NamedType == "" {
		return "TArray<" + cv.delphiType(t.Elem) + ">"
	}
	return cv.namedType(t.NamedType)
}

func (cv *converter) namedType(name string) string {
	if mapped, ok := builtinScalars[name]; ok {
		return mapped
	}
	if mapped, ok := cv.config.Scalars[name]; ok {
		return mapped
	}
	def := cv.schema.Types[name]
	if def == nil {
		cv.usesVariants = true
		return "Variant"
	}
	switch def.Kind {
	case ast.Scalar:
		// Unmapped custom scalars travel in their serialized form.
		return "string"
	case ast.Union:
		cv.usesVariants = true
		return "Variant"
	case ast.Interface:
		return "I" + name
	}
	return "T" + name
}

// comment converts a GraphQL description into an annotation comment.
func comment(description string) *schema.AnnotationComment {
	if description == "" {
		return nil
	}
	return &schema.AnnotationComment{Lines: strings.Split(strings.TrimSpace(description), "\n")}
}
