// Package modelgen turns model documents into Go construction code: a
// single generated function that rebuilds the document's unit or program
// through the schema API. Teams use it to promote serialized models into
// compile-time-checked Go sources.
//
// Usage:
//
//	doc, _ := load.LoadFile("models/app.yaml")
//	src, err := modelgen.Emit(doc, "models")
//	// src defines func NewAppModelsUnit() *schema.Unit
package modelgen

import (
	"bytes"

	"github.com/dave/jennifer/jen"

	"github.com/scriba-dev/scriba"
	"github.com/scriba-dev/scriba/compiler/gen"
	"github.com/scriba-dev/scriba/compiler/load"
	"github.com/scriba-dev/scriba/schema"
)

// schemaPkg is the import path of the package the generated code constructs
// its model through.
const schemaPkg = "github.com/scriba-dev/scriba/schema"

const headerComment = "Code generated by scriba. DO NOT EDIT."

// Emit renders doc as Go source for package pkg, defining a constructor
// function (NewXxxUnit or NewXxxProgram) that rebuilds the document's model
// through the schema API. Output is deterministic; a document that does not
// map onto the model fails with a GenerationError.
func Emit(doc *load.Document, pkg string) ([]byte, error) {
	file, err := doc.SourceFile()
	if err != nil {
		return nil, gen.NewGenerationError("", "map document", err)
	}
	name := constructorName(file)

	f := jen.NewFile(pkg)
	f.HeaderComment(headerComment)
	if err := genConstructor(f, file, name); err != nil {
		return nil, gen.NewGenerationError(name, "build model constructor", err)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, gen.NewGenerationError(name, "render model constructor", err)
	}
	return buf.Bytes(), nil
}

// constructorName derives the generated function name from the file's
// heading: NewAppModelsUnit for unit App.Models, NewHelloProgram for
// program Hello.
func constructorName(file schema.SourceFile) string {
	var b bytes.Buffer
	b.WriteString("New")
	switch f := file.(type) {
	case *schema.Unit:
		for _, segment := range f.Heading.Path() {
			b.WriteString(gen.ToCase(segment, gen.CasePascal))
		}
		b.WriteString("Unit")
	case *schema.Program:
		b.WriteString(gen.ToCase(f.Name, gen.CasePascal))
		b.WriteString("Program")
	}
	return b.String()
}

func genConstructor(f *jen.File, file schema.SourceFile, name string) (err error) {
	defer scriba.Recover(&err)
	switch file := file.(type) {
	case *schema.Unit:
		genUnit(f, file, name)
	case *schema.Program:
		genProgram(f, file, name)
	default:
		panic(scriba.NewInvalidNodeErrorWithNode("source file", file))
	}
	return nil
}

func genUnit(f *jen.File, u *schema.Unit, name string) {
	body := []jen.Code{
		jen.Id("u").Op(":=").Qual(schemaPkg, "NewUnit").Call(headingExpr(u.Heading)),
	}
	if u.Comment != nil {
		body = append(body, jen.Id("u").Dot("Comment").Op("=").Add(commentExpr(u.Comment)))
	}
	if len(u.Includes) > 0 {
		body = append(body, jen.Id("u").Dot("Includes").Op("=").Add(stringsExpr(u.Includes)))
	}
	if u.Interface != nil {
		if refs := refExprs(u.Interface.Uses); len(refs) > 0 {
			body = append(body, jen.Id("u").Dot("AddInterfaceUses").Call(refs...))
		}
		if len(u.Interface.Declarations) > 0 {
			decls := make([]jen.Code, len(u.Interface.Declarations))
			for i, d := range u.Interface.Declarations {
				decls[i] = declExpr(d)
			}
			body = append(body, jen.Id("u").Dot("AddDeclaration").Call(decls...))
		}
	}
	if u.Implementation != nil {
		if refs := refExprs(u.Implementation.Uses); len(refs) > 0 {
			body = append(body, jen.Id("u").Dot("AddImplementationUses").Call(refs...))
		}
		if len(u.Implementation.Methods) > 0 {
			methods := make([]jen.Code, len(u.Implementation.Methods))
			for i, m := range u.Implementation.Methods {
				methods[i] = methodExpr(m)
			}
			body = append(body, jen.Id("u").Dot("AddMethod").Call(methods...))
		}
	}
	body = append(body, jen.Return(jen.Id("u")))

	f.Commentf("%s builds the %s unit model.", name, u.Heading.String())
	f.Func().Id(name).Params().Op("*").Qual(schemaPkg, "Unit").Block(body...)
}

func genProgram(f *jen.File, p *schema.Program, name string) {
	body := []jen.Code{
		jen.Id("p").Op(":=").Qual(schemaPkg, "NewProgram").Call(jen.Lit(p.Name)),
	}
	if p.Comment != nil {
		body = append(body, jen.Id("p").Dot("Comment").Op("=").Add(commentExpr(p.Comment)))
	}
	if len(p.Includes) > 0 {
		body = append(body, jen.Id("p").Dot("Includes").Op("=").Add(stringsExpr(p.Includes)))
	}
	if refs := refExprs(p.Uses); len(refs) > 0 {
		body = append(body, jen.Id("p").Dot("AddUses").Call(refs...))
	}
	if len(p.Variables) > 0 {
		body = append(body, jen.Id("p").Dot("Variables").Op("=").Add(stringsExpr(p.Variables)))
	}
	if len(p.Statements) > 0 {
		body = append(body, jen.Id("p").Dot("Statements").Op("=").Add(stringsExpr(p.Statements)))
	}
	body = append(body, jen.Return(jen.Id("p")))

	f.Commentf("%s builds the %s program model.", name, p.Name)
	f.Func().Id(name).Params().Op("*").Qual(schemaPkg, "Program").Block(body...)
}

func headingExpr(id *schema.UnitIdentifier) *jen.Statement {
	args := []jen.Code{jen.Lit(id.Name)}
	for _, segment := range id.Namespace {
		args = append(args, jen.Lit(segment))
	}
	return jen.Qual(schemaPkg, "NewUnitIdentifier").Call(args...)
}

func commentExpr(c *schema.AnnotationComment) *jen.Statement {
	return jen.Op("&").Qual(schemaPkg, "AnnotationComment").Values(jen.Dict{
		jen.Id("Lines"): stringsExpr(c.Lines),
	})
}

func stringsExpr(lines []string) *jen.Statement {
	lits := make([]jen.Code, len(lines))
	for i, line := range lines {
		lits[i] = jen.Lit(line)
	}
	return jen.Index().String().Values(lits...)
}

func refExprs(refs []*schema.ConditionalUnitReference) []jen.Code {
	out := make([]jen.Code, len(refs))
	for i, r := range refs {
		out[i] = refExpr(r)
	}
	return out
}

// refExpr emits schema.NewUnitReference for the plain case and a
// ConditionalUnitReference literal when a condition or alternative is
// involved.
func refExpr(r *schema.ConditionalUnitReference) *jen.Statement {
	if r.Condition == nil && r.Alternative == nil && r.Primary != nil {
		return jen.Qual(schemaPkg, "NewUnitReference").Call(jen.Lit(r.Primary.String()))
	}
	fields := jen.Dict{}
	if r.Primary != nil {
		fields[jen.Id("Primary")] = jen.Qual(schemaPkg, "ParseUnitIdentifier").Call(jen.Lit(r.Primary.String()))
	}
	if r.Alternative != nil {
		fields[jen.Id("Alternative")] = jen.Qual(schemaPkg, "ParseUnitIdentifier").Call(jen.Lit(r.Alternative.String()))
	}
	if r.Condition != nil {
		fields[jen.Id("Condition")] = conditionExpr(r.Condition)
	}
	return jen.Op("&").Qual(schemaPkg, "ConditionalUnitReference").Values(fields)
}

func conditionExpr(c *schema.CompilationCondition) *jen.Statement {
	return jen.Op("&").Qual(schemaPkg, "CompilationCondition").Values(jen.Dict{
		jen.Id("Symbol"): jen.Lit(c.Symbol),
	})
}

func annotationsExpr(annotations []*schema.ConditionalAttributeAnnotation) *jen.Statement {
	elems := make([]jen.Code, len(annotations))
	for i, a := range annotations {
		elems[i] = annotationExpr(a)
	}
	return jen.Index().Op("*").Qual(schemaPkg, "ConditionalAttributeAnnotation").Values(elems...)
}

func annotationExpr(a *schema.ConditionalAttributeAnnotation) *jen.Statement {
	if a.Condition == nil && a.Alternative == "" {
		return jen.Qual(schemaPkg, "NewAttributeAnnotation").Call(jen.Lit(a.Primary))
	}
	fields := jen.Dict{}
	if a.Primary != "" {
		fields[jen.Id("Primary")] = jen.Lit(a.Primary)
	}
	if a.Alternative != "" {
		fields[jen.Id("Alternative")] = jen.Lit(a.Alternative)
	}
	if a.Condition != nil {
		fields[jen.Id("Condition")] = conditionExpr(a.Condition)
	}
	return jen.Op("&").Qual(schemaPkg, "ConditionalAttributeAnnotation").Values(fields)
}

func declExpr(d schema.Declaration) *jen.Statement {
	switch d := d.(type) {
	case *schema.EnumDeclaration:
		return enumExpr(d)
	case *schema.ClassDeclaration:
		return classExpr(d)
	case *schema.InterfaceTypeDeclaration:
		return interfaceExpr(d)
	default:
		panic(scriba.NewInvalidNodeErrorWithNode("declaration", d))
	}
}

// enumExpr chains AddValue/AddOrdinalValue calls off the literal so the
// generated code reads the way hand-written fixtures do.
func enumExpr(e *schema.EnumDeclaration) *jen.Statement {
	fields := jen.Dict{jen.Id("Name"): jen.Lit(e.Name)}
	if e.Comment != nil {
		fields[jen.Id("Comment")] = commentExpr(e.Comment)
	}
	if len(e.Annotations) > 0 {
		fields[jen.Id("Annotations")] = annotationsExpr(e.Annotations)
	}
	base := jen.Op("&").Qual(schemaPkg, "EnumDeclaration").Values(fields)
	if len(e.Values) == 0 {
		return base
	}
	expr := jen.Parens(base)
	for _, v := range e.Values {
		if v.Ordinal != nil {
			expr = expr.Dot("AddOrdinalValue").Call(jen.Lit(v.Name), jen.Lit(*v.Ordinal))
		} else {
			expr = expr.Dot("AddValue").Call(jen.Lit(v.Name))
		}
	}
	return expr
}

func classExpr(c *schema.ClassDeclaration) *jen.Statement {
	fields := jen.Dict{jen.Id("Name"): jen.Lit(c.Name)}
	if c.Ancestor != "" {
		fields[jen.Id("Ancestor")] = jen.Lit(c.Ancestor)
	}
	if len(c.Interfaces) > 0 {
		fields[jen.Id("Interfaces")] = stringsExpr(c.Interfaces)
	}
	if c.Comment != nil {
		fields[jen.Id("Comment")] = commentExpr(c.Comment)
	}
	if len(c.Annotations) > 0 {
		fields[jen.Id("Annotations")] = annotationsExpr(c.Annotations)
	}
	if len(c.Elements) > 0 {
		elems := make([]jen.Code, len(c.Elements))
		for i, e := range c.Elements {
			elems[i] = elementExpr(e)
		}
		fields[jen.Id("Elements")] = jen.Index().Qual(schemaPkg, "ClassElement").Values(elems...)
	}
	return jen.Op("&").Qual(schemaPkg, "ClassDeclaration").Values(fields)
}

func interfaceExpr(i *schema.InterfaceTypeDeclaration) *jen.Statement {
	fields := jen.Dict{jen.Id("Name"): jen.Lit(i.Name)}
	if i.Ancestor != "" {
		fields[jen.Id("Ancestor")] = jen.Lit(i.Ancestor)
	}
	if i.GUID != "" {
		fields[jen.Id("GUID")] = jen.Lit(i.GUID)
	}
	if i.Comment != nil {
		fields[jen.Id("Comment")] = commentExpr(i.Comment)
	}
	if len(i.Members) > 0 {
		members := make([]jen.Code, len(i.Members))
		for j, m := range i.Members {
			members[j] = jen.Values(memberFields(m))
		}
		fields[jen.Id("Members")] = jen.Index().Op("*").Qual(schemaPkg, "ClassMemberDeclaration").Values(members...)
	}
	return jen.Op("&").Qual(schemaPkg, "InterfaceTypeDeclaration").Values(fields)
}

func elementExpr(e schema.ClassElement) *jen.Statement {
	switch e := e.(type) {
	case *schema.NestedConstDeclaration:
		fields := jen.Dict{
			jen.Id("Name"):  jen.Lit(e.Name),
			jen.Id("Value"): jen.Lit(e.Value),
		}
		if e.Visibility != schema.Unspecified {
			fields[jen.Id("Visibility")] = visibilityExpr(e.Visibility)
		}
		return jen.Op("&").Qual(schemaPkg, "NestedConstDeclaration").Values(fields)
	case *schema.NestedTypeDeclaration:
		fields := jen.Dict{jen.Id("Declaration"): declExpr(e.Declaration)}
		if e.Visibility != schema.Unspecified {
			fields[jen.Id("Visibility")] = visibilityExpr(e.Visibility)
		}
		return jen.Op("&").Qual(schemaPkg, "NestedTypeDeclaration").Values(fields)
	case *schema.ClassMemberDeclaration:
		return jen.Op("&").Qual(schemaPkg, "ClassMemberDeclaration").Values(memberFields(e))
	default:
		panic(scriba.NewInvalidNodeErrorWithNode("class element", e))
	}
}

func memberFields(d *schema.ClassMemberDeclaration) jen.Dict {
	fields := jen.Dict{jen.Id("Member"): memberExpr(d.Member)}
	if d.Visibility != schema.Unspecified {
		fields[jen.Id("Visibility")] = visibilityExpr(d.Visibility)
	}
	if len(d.Annotations) > 0 {
		fields[jen.Id("Annotations")] = annotationsExpr(d.Annotations)
	}
	return fields
}

func memberExpr(m schema.ClassMember) *jen.Statement {
	switch m := m.(type) {
	case *schema.FieldDeclaration:
		return jen.Op("&").Qual(schemaPkg, "FieldDeclaration").Values(jen.Dict{
			jen.Id("Name"):     jen.Lit(m.Name),
			jen.Id("TypeName"): jen.Lit(m.TypeName),
		})
	case *schema.PropertyDeclaration:
		fields := jen.Dict{
			jen.Id("Name"):     jen.Lit(m.Name),
			jen.Id("TypeName"): jen.Lit(m.TypeName),
		}
		if m.Reader != "" {
			fields[jen.Id("Reader")] = jen.Lit(m.Reader)
		}
		if m.Writer != "" {
			fields[jen.Id("Writer")] = jen.Lit(m.Writer)
		}
		return jen.Op("&").Qual(schemaPkg, "PropertyDeclaration").Values(fields)
	case *schema.MethodInterfaceDeclaration:
		fields := jen.Dict{jen.Id("Prototype"): prototypeExpr(m.Prototype)}
		if m.Binding != schema.Static {
			fields[jen.Id("Binding")] = bindingExpr(m.Binding)
		}
		if m.Comment != nil {
			fields[jen.Id("Comment")] = commentExpr(m.Comment)
		}
		return jen.Op("&").Qual(schemaPkg, "MethodInterfaceDeclaration").Values(fields)
	default:
		panic(scriba.NewInvalidNodeErrorWithNode("class member", m))
	}
}

func prototypeExpr(p *schema.Prototype) *jen.Statement {
	fields := jen.Dict{
		jen.Id("Kind"): kindExpr(p.Kind),
		jen.Id("Name"): jen.Lit(p.Name),
	}
	if len(p.Parameters) > 0 {
		params := make([]jen.Code, len(p.Parameters))
		for i, param := range p.Parameters {
			params[i] = jen.Values(jen.Dict{
				jen.Id("Name"):     jen.Lit(param.Name),
				jen.Id("TypeName"): jen.Lit(param.TypeName),
			})
		}
		fields[jen.Id("Parameters")] = jen.Index().Op("*").Qual(schemaPkg, "Parameter").Values(params...)
	}
	if p.ReturnType != "" {
		fields[jen.Id("ReturnType")] = jen.Lit(p.ReturnType)
	}
	return jen.Op("&").Qual(schemaPkg, "Prototype").Values(fields)
}

func methodExpr(m *schema.MethodDeclaration) *jen.Statement {
	fields := jen.Dict{
		jen.Id("Class"):     jen.Lit(m.Class),
		jen.Id("Prototype"): prototypeExpr(m.Prototype),
	}
	if len(m.LocalDecls) > 0 {
		fields[jen.Id("LocalDecls")] = stringsExpr(m.LocalDecls)
	}
	if len(m.Statements) > 0 {
		fields[jen.Id("Statements")] = stringsExpr(m.Statements)
	}
	return jen.Op("&").Qual(schemaPkg, "MethodDeclaration").Values(fields)
}

func visibilityExpr(v schema.Visibility) *jen.Statement {
	switch v {
	case schema.Private:
		return jen.Qual(schemaPkg, "Private")
	case schema.Protected:
		return jen.Qual(schemaPkg, "Protected")
	case schema.Public:
		return jen.Qual(schemaPkg, "Public")
	default:
		panic(scriba.NewInvalidNodeErrorWithNode("visibility", v))
	}
}

func kindExpr(k schema.PrototypeKind) *jen.Statement {
	switch k {
	case schema.Procedure:
		return jen.Qual(schemaPkg, "Procedure")
	case schema.Constructor:
		return jen.Qual(schemaPkg, "Constructor")
	case schema.Destructor:
		return jen.Qual(schemaPkg, "Destructor")
	case schema.Function:
		return jen.Qual(schemaPkg, "Function")
	default:
		panic(scriba.NewInvalidNodeErrorWithNode("prototype kind", k))
	}
}

func bindingExpr(b schema.Binding) *jen.Statement {
	switch b {
	case schema.Virtual:
		return jen.Qual(schemaPkg, "Virtual")
	case schema.Override:
		return jen.Qual(schemaPkg, "Override")
	default:
		panic(scriba.NewInvalidNodeErrorWithNode("binding", b))
	}
}
