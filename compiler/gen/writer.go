package gen

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/scriba-dev/scriba"
	"github.com/scriba-dev/scriba/schema"
)

// fpcModeBlock switches Free Pascal into Delphi-compatible parsing mode. It
// is emitted near the top of every rendered unit and program.
var fpcModeBlock = []string{
	"{$IFDEF FPC}",
	"  {$MODE DELPHI}",
	"{$ENDIF}",
}

// lineStart matches every non-empty line of a raw multi-line block.
var lineStart = regexp.MustCompile(`(?m)^.+$`)

// Writer converts schema source files into Pascal source text. The zero
// value is ready to use. A Writer holds only the output buffer and the
// current indentation level, both reset per render call; it is not safe for
// concurrent use, but independent Writers may render in parallel.
type Writer struct {
	buf    strings.Builder
	indent indenter
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// RenderUnit renders u into complete unit source text. Output is
// deterministic: the same tree always renders to byte-identical text. A
// structurally invalid tree (an unknown variant, or a conditional wrapper
// with nothing to emit) returns a root-package error; valid trees never
// fail.
func (w *Writer) RenderUnit(u *schema.Unit) (out string, err error) {
	defer scriba.Recover(&err)
	w.reset()
	w.unit(u)
	return w.buf.String(), nil
}

// RenderProgram renders p into complete program source text, with the same
// determinism and error contract as RenderUnit.
func (w *Writer) RenderProgram(p *schema.Program) (out string, err error) {
	defer scriba.Recover(&err)
	w.reset()
	w.program(p)
	return w.buf.String(), nil
}

// Render renders any schema source file, dispatching on its concrete type.
func (w *Writer) Render(file schema.SourceFile) (string, error) {
	switch f := file.(type) {
	case *schema.Unit:
		return w.RenderUnit(f)
	case *schema.Program:
		return w.RenderProgram(f)
	default:
		return "", scriba.NewInvalidNodeErrorWithNode("source file", file)
	}
}

// RenderUnit renders u with a fresh Writer.
func RenderUnit(u *schema.Unit) (string, error) {
	return NewWriter().RenderUnit(u)
}

// RenderProgram renders p with a fresh Writer.
func RenderProgram(p *schema.Program) (string, error) {
	return NewWriter().RenderProgram(p)
}

func (w *Writer) reset() {
	w.buf.Reset()
	w.indent = indenter{}
}

// line writes one line at the current indentation level. Empty text
// produces a bare newline so blank lines never carry trailing spaces.
func (w *Writer) line(text string) {
	if text != "" {
		w.buf.WriteString(w.indent.prefix())
		w.buf.WriteString(text)
	}
	w.buf.WriteByte('\n')
}

func (w *Writer) blank() {
	w.buf.WriteByte('\n')
}

// directive writes a compiler directive at column zero regardless of the
// current indentation level.
func (w *Writer) directive(text string) {
	w.buf.WriteString(text)
	w.buf.WriteByte('\n')
}

// raw writes caller-supplied pre-formatted text, reindenting every
// non-empty line to the current level. Embedded blank lines stay
// unprefixed.
func (w *Writer) raw(text string) {
	prefix := w.indent.prefix()
	text = strings.TrimRight(text, "\n")
	w.buf.WriteString(lineStart.ReplaceAllStringFunc(text, func(line string) string {
		return prefix + line
	}))
	w.buf.WriteByte('\n')
}

func (w *Writer) unit(u *schema.Unit) {
	w.annotationComment(u.Comment)
	w.line("unit " + u.Heading.String() + ";")
	w.blank()
	w.includes(u.Includes)
	w.modeBlock()
	w.blank()
	w.interfaceSection(u.Interface)
	w.implementationSection(u.Implementation)
	w.line("end.")
}

func (w *Writer) program(p *schema.Program) {
	w.annotationComment(p.Comment)
	w.line("program " + p.Name + ";")
	w.blank()
	w.includes(p.Includes)
	w.modeBlock()
	w.blank()
	w.usesClause(p.Uses)
	if len(p.Variables) > 0 {
		w.line("var")
		w.indent.shift(1)
		for _, decl := range p.Variables {
			w.raw(decl)
		}
		w.indent.shift(-1)
		w.blank()
	}
	w.line("begin")
	w.indent.shift(1)
	for _, statement := range p.Statements {
		w.raw(statement)
	}
	w.indent.shift(-1)
	w.line("end.")
}

func (w *Writer) includes(names []string) {
	if len(names) == 0 {
		return
	}
	for _, name := range names {
		if strings.Contains(name, " ") {
			name = "'" + name + "'"
		}
		w.directive("{$INCLUDE " + name + "}")
	}
	w.blank()
}

func (w *Writer) modeBlock() {
	for _, text := range fpcModeBlock {
		w.directive(text)
	}
}

func (w *Writer) interfaceSection(s *schema.InterfaceSection) {
	w.line("interface")
	w.blank()
	if s == nil {
		return
	}
	w.usesClause(s.Uses)
	for _, d := range s.Declarations {
		w.line("type")
		w.indent.shift(1)
		w.declaration(d)
		w.indent.shift(-1)
		w.blank()
	}
}

func (w *Writer) implementationSection(s *schema.ImplementationSection) {
	w.line("implementation")
	w.blank()
	if s == nil {
		return
	}
	w.usesClause(s.Uses)
	for _, m := range s.Methods {
		w.methodDeclaration(m)
		w.blank()
	}
}

// usesClause renders a uses clause, or nothing at all when the reference
// list is empty. The last reference closes with ";", every other with ",";
// the terminator is passed into the reference's conditional branches so a
// branch-switched last reference still closes the clause in each branch.
func (w *Writer) usesClause(refs []*schema.ConditionalUnitReference) {
	if len(refs) == 0 {
		return
	}
	w.line("uses")
	for i, ref := range refs {
		terminator := ","
		if i == len(refs)-1 {
			terminator = ";"
		}
		w.unitReference(ref, terminator)
	}
	w.blank()
}

func (w *Writer) unitReference(ref *schema.ConditionalUnitReference, terminator string) {
	w.conditional("uses reference", ref.Condition,
		w.referenceLine(ref.Primary, terminator),
		w.referenceLine(ref.Alternative, terminator))
}

func (w *Writer) referenceLine(id *schema.UnitIdentifier, terminator string) func() {
	if id == nil {
		return nil
	}
	return func() {
		w.indent.shift(1)
		w.line(id.String() + terminator)
		w.indent.shift(-1)
	}
}

func (w *Writer) declaration(d schema.Declaration) {
	switch d := d.(type) {
	case *schema.ClassDeclaration:
		w.classDeclaration(d)
	case *schema.EnumDeclaration:
		w.enumDeclaration(d)
	case *schema.InterfaceTypeDeclaration:
		w.interfaceTypeDeclaration(d)
	default:
		panic(scriba.NewInvalidNodeErrorWithNode("declaration", d))
	}
}

func (w *Writer) annotationComment(c *schema.AnnotationComment) {
	if c == nil {
		return
	}
	for _, text := range c.Lines {
		if text == "" {
			w.line("///")
		} else {
			w.line("/// " + text)
		}
	}
}

func (w *Writer) attributeAnnotations(annotations []*schema.ConditionalAttributeAnnotation) {
	for _, a := range annotations {
		w.conditional("attribute annotation", a.Condition,
			w.annotationLine(a.Primary),
			w.annotationLine(a.Alternative))
	}
}

func (w *Writer) annotationLine(text string) func() {
	if text == "" {
		return nil
	}
	return func() {
		w.line("[" + text + "]")
	}
}

func (w *Writer) classDeclaration(c *schema.ClassDeclaration) {
	w.annotationComment(c.Comment)
	w.attributeAnnotations(c.Annotations)
	w.line(c.Name + " = class" + classParents(c))
	w.classBody(c.Elements)
	w.line("end;")
}

// classParents renders the "(ancestor, interfaces...)" suffix of a class
// heading, or "" when the class names neither.
func classParents(c *schema.ClassDeclaration) string {
	parents := make([]string, 0, len(c.Interfaces)+1)
	if c.Ancestor != "" {
		parents = append(parents, c.Ancestor)
	}
	parents = append(parents, c.Interfaces...)
	if len(parents) == 0 {
		return ""
	}
	return "(" + strings.Join(parents, ", ") + ")"
}

// classSection identifies the visibility/keyword section an element lands
// in. A section line is emitted whenever consecutive elements change
// section.
type classSection struct {
	visibility schema.Visibility
	keyword    string
}

func sectionOf(e schema.ClassElement) classSection {
	switch e := e.(type) {
	case *schema.NestedTypeDeclaration:
		return classSection{visibility: e.Visibility, keyword: "type"}
	case *schema.NestedConstDeclaration:
		return classSection{visibility: e.Visibility, keyword: "const"}
	case *schema.ClassMemberDeclaration:
		return classSection{visibility: e.Visibility}
	default:
		panic(scriba.NewInvalidNodeErrorWithNode("class element", e))
	}
}

func (w *Writer) classBody(elements []schema.ClassElement) {
	var current *classSection
	for i, e := range elements {
		if i > 0 {
			w.blank()
		}
		section := sectionOf(e)
		if current == nil || section != *current {
			w.sectionLine(section)
			current = &section
		}
		w.indent.shift(1)
		w.classElement(e)
		w.indent.shift(-1)
	}
}

// sectionLine emits the section heading ("private", "public type", ...).
// An unspecified-visibility member section has no heading at all.
func (w *Writer) sectionLine(section classSection) {
	parts := make([]string, 0, 2)
	if section.visibility != schema.Unspecified {
		parts = append(parts, section.visibility.String())
	}
	if section.keyword != "" {
		parts = append(parts, section.keyword)
	}
	if len(parts) == 0 {
		return
	}
	w.line(strings.Join(parts, " "))
}

func (w *Writer) classElement(e schema.ClassElement) {
	switch e := e.(type) {
	case *schema.NestedTypeDeclaration:
		w.declaration(e.Declaration)
	case *schema.NestedConstDeclaration:
		w.line(e.Name + " = " + e.Value + ";")
	case *schema.ClassMemberDeclaration:
		w.classMember(e)
	default:
		panic(scriba.NewInvalidNodeErrorWithNode("class element", e))
	}
}

func (w *Writer) classMember(d *schema.ClassMemberDeclaration) {
	switch m := d.Member.(type) {
	case *schema.MethodInterfaceDeclaration:
		w.annotationComment(m.Comment)
		w.attributeAnnotations(d.Annotations)
		w.line(prototypeText(m.Prototype, "") + ";" + bindingSuffix(m.Binding))
	case *schema.FieldDeclaration:
		w.attributeAnnotations(d.Annotations)
		w.line(m.Name + ": " + m.TypeName + ";")
	case *schema.PropertyDeclaration:
		w.attributeAnnotations(d.Annotations)
		w.line(propertyText(m))
	default:
		panic(scriba.NewInvalidNodeErrorWithNode("class member", d.Member))
	}
}

func bindingSuffix(b schema.Binding) string {
	switch b {
	case schema.Static:
		return ""
	case schema.Virtual:
		return " virtual;"
	case schema.Override:
		return " override;"
	default:
		panic(scriba.NewInvalidNodeErrorWithNode("binding", b))
	}
}

// prototypeText renders a method signature. owner is the implementing
// class for implementation-section bodies, "" for in-type declarations.
func prototypeText(p *schema.Prototype, owner string) string {
	var b strings.Builder
	b.WriteString(prototypeKeyword(p.Kind))
	b.WriteByte(' ')
	if owner != "" {
		b.WriteString(owner)
		b.WriteByte('.')
	}
	b.WriteString(p.Name)
	if len(p.Parameters) > 0 {
		params := make([]string, len(p.Parameters))
		for i, param := range p.Parameters {
			params[i] = param.Name + ": " + param.TypeName
		}
		b.WriteString("(" + strings.Join(params, "; ") + ")")
	}
	if p.Kind == schema.Function {
		b.WriteString(": " + p.ReturnType)
	}
	return b.String()
}

func prototypeKeyword(k schema.PrototypeKind) string {
	switch k {
	case schema.Procedure, schema.Constructor, schema.Destructor, schema.Function:
		return k.String()
	default:
		panic(scriba.NewInvalidNodeErrorWithNode("prototype kind", k))
	}
}

func propertyText(p *schema.PropertyDeclaration) string {
	var b strings.Builder
	b.WriteString("property " + p.Name + ": " + p.TypeName)
	if p.Reader != "" {
		b.WriteString(" read " + p.Reader)
	}
	if p.Writer != "" {
		b.WriteString(" write " + p.Writer)
	}
	b.WriteByte(';')
	return b.String()
}

func (w *Writer) enumDeclaration(e *schema.EnumDeclaration) {
	w.annotationComment(e.Comment)
	w.attributeAnnotations(e.Annotations)
	w.line(e.Name + " = (")
	w.indent.shift(1)
	for i, v := range e.Values {
		if i > 0 {
			w.blank()
		}
		text := v.Name
		if v.Ordinal != nil {
			text += " = " + strconv.Itoa(*v.Ordinal)
		}
		if i < len(e.Values)-1 {
			text += ","
		}
		w.line(text)
	}
	w.indent.shift(-1)
	w.line(");")
}

func (w *Writer) interfaceTypeDeclaration(i *schema.InterfaceTypeDeclaration) {
	w.annotationComment(i.Comment)
	heading := i.Name + " = interface"
	if i.Ancestor != "" {
		heading += "(" + i.Ancestor + ")"
	}
	w.line(heading)
	w.indent.shift(1)
	if i.GUID != "" {
		w.line("['" + i.GUID + "']")
	}
	for idx, m := range i.Members {
		if idx > 0 {
			w.blank()
		}
		w.interfaceMember(m)
	}
	w.indent.shift(-1)
	w.line("end;")
}

// interfaceMember renders one interface member. Interface members are
// implicitly public and abstract, so visibility and binding are ignored;
// fields are not representable in an interface and are rejected.
func (w *Writer) interfaceMember(d *schema.ClassMemberDeclaration) {
	switch m := d.Member.(type) {
	case *schema.MethodInterfaceDeclaration:
		w.annotationComment(m.Comment)
		w.attributeAnnotations(d.Annotations)
		w.line(prototypeText(m.Prototype, "") + ";")
	case *schema.PropertyDeclaration:
		w.attributeAnnotations(d.Annotations)
		w.line(propertyText(m))
	default:
		panic(scriba.NewInvalidNodeErrorWithNode("interface member", d.Member))
	}
}

func (w *Writer) methodDeclaration(m *schema.MethodDeclaration) {
	w.line(prototypeText(m.Prototype, m.Class) + ";")
	if len(m.LocalDecls) > 0 {
		w.line("var")
		w.indent.shift(1)
		for _, decl := range m.LocalDecls {
			w.raw(decl)
		}
		w.indent.shift(-1)
	}
	w.line("begin")
	w.indent.shift(1)
	for _, statement := range m.Statements {
		w.raw(statement)
	}
	w.indent.shift(-1)
	w.line("end;")
}
