// Package load reads and writes model documents: serializable descriptions
// of units and programs that map onto the schema node tree. Documents let a
// model live outside Go code, in YAML, JSON or msgpack form, and still drive
// the same generation pipeline.
package load

import (
	"fmt"

	"github.com/scriba-dev/scriba/schema"
)

// Document is the root of a model document. Exactly one of Unit or Program
// is set.
type Document struct {
	Unit    *Unit    `json:"unit,omitempty" yaml:"unit,omitempty" msgpack:"unit,omitempty"`
	Program *Program `json:"program,omitempty" yaml:"program,omitempty" msgpack:"program,omitempty"`
}

// Unit mirrors schema.Unit.
type Unit struct {
	Name           string                 `json:"name,omitempty" yaml:"name,omitempty" msgpack:"name,omitempty"`
	Namespace      []string               `json:"namespace,omitempty" yaml:"namespace,omitempty" msgpack:"namespace,omitempty"`
	Comment        []string               `json:"comment,omitempty" yaml:"comment,omitempty" msgpack:"comment,omitempty"`
	Includes       []string               `json:"includes,omitempty" yaml:"includes,omitempty" msgpack:"includes,omitempty"`
	Interface      *InterfaceSection      `json:"interface,omitempty" yaml:"interface,omitempty" msgpack:"interface,omitempty"`
	Implementation *ImplementationSection `json:"implementation,omitempty" yaml:"implementation,omitempty" msgpack:"implementation,omitempty"`
}

// InterfaceSection mirrors schema.InterfaceSection.
type InterfaceSection struct {
	Uses         []*Reference   `json:"uses,omitempty" yaml:"uses,omitempty" msgpack:"uses,omitempty"`
	Declarations []*Declaration `json:"declarations,omitempty" yaml:"declarations,omitempty" msgpack:"declarations,omitempty"`
}

// ImplementationSection mirrors schema.ImplementationSection.
type ImplementationSection struct {
	Uses    []*Reference `json:"uses,omitempty" yaml:"uses,omitempty" msgpack:"uses,omitempty"`
	Methods []*Method    `json:"methods,omitempty" yaml:"methods,omitempty" msgpack:"methods,omitempty"`
}

// Program mirrors schema.Program.
type Program struct {
	Name       string       `json:"name,omitempty" yaml:"name,omitempty" msgpack:"name,omitempty"`
	Comment    []string     `json:"comment,omitempty" yaml:"comment,omitempty" msgpack:"comment,omitempty"`
	Includes   []string     `json:"includes,omitempty" yaml:"includes,omitempty" msgpack:"includes,omitempty"`
	Uses       []*Reference `json:"uses,omitempty" yaml:"uses,omitempty" msgpack:"uses,omitempty"`
	Variables  []string     `json:"variables,omitempty" yaml:"variables,omitempty" msgpack:"variables,omitempty"`
	Statements []string     `json:"statements,omitempty" yaml:"statements,omitempty" msgpack:"statements,omitempty"`
}

// Reference is one uses-clause entry. Unit and Alt are dotted unit paths;
// IfDef switches between them with the conditional emission protocol.
type Reference struct {
	Unit  string `json:"unit,omitempty" yaml:"unit,omitempty" msgpack:"unit,omitempty"`
	Alt   string `json:"alt,omitempty" yaml:"alt,omitempty" msgpack:"alt,omitempty"`
	IfDef string `json:"ifdef,omitempty" yaml:"ifdef,omitempty" msgpack:"ifdef,omitempty"`
}

// Annotation is one attribute annotation, bare content without brackets,
// with the same conditional protocol as Reference.
type Annotation struct {
	Text  string `json:"text,omitempty" yaml:"text,omitempty" msgpack:"text,omitempty"`
	Alt   string `json:"alt,omitempty" yaml:"alt,omitempty" msgpack:"alt,omitempty"`
	IfDef string `json:"ifdef,omitempty" yaml:"ifdef,omitempty" msgpack:"ifdef,omitempty"`
}

// Declaration is a type-block declaration. Exactly one of Class, Enum or
// Interface is set.
type Declaration struct {
	Class     *Class     `json:"class,omitempty" yaml:"class,omitempty" msgpack:"class,omitempty"`
	Enum      *Enum      `json:"enum,omitempty" yaml:"enum,omitempty" msgpack:"enum,omitempty"`
	Interface *Interface `json:"interface,omitempty" yaml:"interface,omitempty" msgpack:"interface,omitempty"`
}

// Class mirrors schema.ClassDeclaration. Members keeps the declared element
// order, interleaving nested consts, nested types and plain members.
type Class struct {
	Name        string          `json:"name,omitempty" yaml:"name,omitempty" msgpack:"name,omitempty"`
	Ancestor    string          `json:"ancestor,omitempty" yaml:"ancestor,omitempty" msgpack:"ancestor,omitempty"`
	Implements  []string        `json:"implements,omitempty" yaml:"implements,omitempty" msgpack:"implements,omitempty"`
	Comment     []string        `json:"comment,omitempty" yaml:"comment,omitempty" msgpack:"comment,omitempty"`
	Annotations []*Annotation   `json:"annotations,omitempty" yaml:"annotations,omitempty" msgpack:"annotations,omitempty"`
	Members     []*ClassElement `json:"members,omitempty" yaml:"members,omitempty" msgpack:"members,omitempty"`
}

// ClassElement is one class-body element. Exactly one of Const, Type, Field,
// Method or Property is set; Annotations apply to the member kinds only.
type ClassElement struct {
	Visibility  string        `json:"visibility,omitempty" yaml:"visibility,omitempty" msgpack:"visibility,omitempty"`
	Annotations []*Annotation `json:"annotations,omitempty" yaml:"annotations,omitempty" msgpack:"annotations,omitempty"`
	Const       *Const        `json:"const,omitempty" yaml:"const,omitempty" msgpack:"const,omitempty"`
	Type        *Declaration  `json:"type,omitempty" yaml:"type,omitempty" msgpack:"type,omitempty"`
	Field       *Field        `json:"field,omitempty" yaml:"field,omitempty" msgpack:"field,omitempty"`
	Method      *MethodHead   `json:"method,omitempty" yaml:"method,omitempty" msgpack:"method,omitempty"`
	Property    *Property     `json:"property,omitempty" yaml:"property,omitempty" msgpack:"property,omitempty"`
}

// Const mirrors schema.NestedConstDeclaration. Value is raw Pascal text.
type Const struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty" msgpack:"name,omitempty"`
	Value string `json:"value,omitempty" yaml:"value,omitempty" msgpack:"value,omitempty"`
}

// Field mirrors schema.FieldDeclaration.
type Field struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty" msgpack:"name,omitempty"`
	Type string `json:"type,omitempty" yaml:"type,omitempty" msgpack:"type,omitempty"`
}

// MethodHead mirrors schema.MethodInterfaceDeclaration: an interface-side
// method declaration. Kind is procedure, function, constructor or
// destructor; Binding is empty, virtual or override.
type MethodHead struct {
	Kind    string   `json:"kind,omitempty" yaml:"kind,omitempty" msgpack:"kind,omitempty"`
	Name    string   `json:"name,omitempty" yaml:"name,omitempty" msgpack:"name,omitempty"`
	Params  []*Param `json:"params,omitempty" yaml:"params,omitempty" msgpack:"params,omitempty"`
	Returns string   `json:"returns,omitempty" yaml:"returns,omitempty" msgpack:"returns,omitempty"`
	Binding string   `json:"binding,omitempty" yaml:"binding,omitempty" msgpack:"binding,omitempty"`
	Comment []string `json:"comment,omitempty" yaml:"comment,omitempty" msgpack:"comment,omitempty"`
}

// Param mirrors schema.Parameter.
type Param struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty" msgpack:"name,omitempty"`
	Type string `json:"type,omitempty" yaml:"type,omitempty" msgpack:"type,omitempty"`
}

// Property mirrors schema.PropertyDeclaration.
type Property struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty" msgpack:"name,omitempty"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty" msgpack:"type,omitempty"`
	Read  string `json:"read,omitempty" yaml:"read,omitempty" msgpack:"read,omitempty"`
	Write string `json:"write,omitempty" yaml:"write,omitempty" msgpack:"write,omitempty"`
}

// Enum mirrors schema.EnumDeclaration.
type Enum struct {
	Name        string        `json:"name,omitempty" yaml:"name,omitempty" msgpack:"name,omitempty"`
	Comment     []string      `json:"comment,omitempty" yaml:"comment,omitempty" msgpack:"comment,omitempty"`
	Annotations []*Annotation `json:"annotations,omitempty" yaml:"annotations,omitempty" msgpack:"annotations,omitempty"`
	Values      []*EnumValue  `json:"values,omitempty" yaml:"values,omitempty" msgpack:"values,omitempty"`
}

// EnumValue mirrors schema.EnumValueDeclaration. A nil Ordinal means the
// compiler assigns the position.
type EnumValue struct {
	Name    string `json:"name,omitempty" yaml:"name,omitempty" msgpack:"name,omitempty"`
	Ordinal *int   `json:"ordinal,omitempty" yaml:"ordinal,omitempty" msgpack:"ordinal,omitempty"`
}

// Interface mirrors schema.InterfaceTypeDeclaration. Members are methods and
// properties only; they carry no visibility.
type Interface struct {
	Name     string          `json:"name,omitempty" yaml:"name,omitempty" msgpack:"name,omitempty"`
	Ancestor string          `json:"ancestor,omitempty" yaml:"ancestor,omitempty" msgpack:"ancestor,omitempty"`
	GUID     string          `json:"guid,omitempty" yaml:"guid,omitempty" msgpack:"guid,omitempty"`
	Comment  []string        `json:"comment,omitempty" yaml:"comment,omitempty" msgpack:"comment,omitempty"`
	Members  []*ClassElement `json:"members,omitempty" yaml:"members,omitempty" msgpack:"members,omitempty"`
}

// Method mirrors schema.MethodDeclaration: an implementation-section method
// body. Locals and Body lines are raw Pascal text.
type Method struct {
	Class   string   `json:"class,omitempty" yaml:"class,omitempty" msgpack:"class,omitempty"`
	Kind    string   `json:"kind,omitempty" yaml:"kind,omitempty" msgpack:"kind,omitempty"`
	Name    string   `json:"name,omitempty" yaml:"name,omitempty" msgpack:"name,omitempty"`
	Params  []*Param `json:"params,omitempty" yaml:"params,omitempty" msgpack:"params,omitempty"`
	Returns string   `json:"returns,omitempty" yaml:"returns,omitempty" msgpack:"returns,omitempty"`
	Locals  []string `json:"locals,omitempty" yaml:"locals,omitempty" msgpack:"locals,omitempty"`
	Body    []string `json:"body,omitempty" yaml:"body,omitempty" msgpack:"body,omitempty"`
}

// FromSourceFile builds the document form of a unit or program, the inverse
// of Document.SourceFile. Importers use it to save models for later editing
// and regeneration.
func FromSourceFile(f schema.SourceFile) (*Document, error) {
	switch f := f.(type) {
	case *schema.Unit:
		u, err := FromUnit(f)
		if err != nil {
			return nil, err
		}
		return &Document{Unit: u}, nil
	case *schema.Program:
		return &Document{Program: FromProgram(f)}, nil
	default:
		return nil, NewDecodeError("document", fmt.Sprintf("unsupported source file %T", f), nil)
	}
}

// FromUnit builds the document form of a unit.
func FromUnit(u *schema.Unit) (*Unit, error) {
	if u == nil || u.Heading == nil {
		return nil, NewDecodeError("unit", "missing heading", nil)
	}
	doc := &Unit{
		Name:      u.Heading.Name,
		Namespace: cloneStrings(u.Heading.Namespace),
		Comment:   commentLines(u.Comment),
		Includes:  cloneStrings(u.Includes),
	}
	if u.Interface != nil && (len(u.Interface.Uses) > 0 || len(u.Interface.Declarations) > 0) {
		section := &InterfaceSection{Uses: fromReferences(u.Interface.Uses)}
		for i, d := range u.Interface.Declarations {
			dd, err := fromDeclaration(fmt.Sprintf("unit.interface.declarations[%d]", i), d)
			if err != nil {
				return nil, err
			}
			section.Declarations = append(section.Declarations, dd)
		}
		doc.Interface = section
	}
	if u.Implementation != nil && (len(u.Implementation.Uses) > 0 || len(u.Implementation.Methods) > 0) {
		section := &ImplementationSection{Uses: fromReferences(u.Implementation.Uses)}
		for _, m := range u.Implementation.Methods {
			section.Methods = append(section.Methods, fromMethod(m))
		}
		doc.Implementation = section
	}
	return doc, nil
}

// FromProgram builds the document form of a program.
func FromProgram(p *schema.Program) *Program {
	return &Program{
		Name:       p.Name,
		Comment:    commentLines(p.Comment),
		Includes:   cloneStrings(p.Includes),
		Uses:       fromReferences(p.Uses),
		Variables:  cloneStrings(p.Variables),
		Statements: cloneStrings(p.Statements),
	}
}

func fromReferences(refs []*schema.ConditionalUnitReference) []*Reference {
	var out []*Reference
	for _, r := range refs {
		ref := &Reference{}
		if r.Primary != nil {
			ref.Unit = r.Primary.String()
		}
		if r.Alternative != nil {
			ref.Alt = r.Alternative.String()
		}
		if r.Condition != nil {
			ref.IfDef = r.Condition.Symbol
		}
		out = append(out, ref)
	}
	return out
}

func fromAnnotations(annotations []*schema.ConditionalAttributeAnnotation) []*Annotation {
	var out []*Annotation
	for _, a := range annotations {
		an := &Annotation{Text: a.Primary, Alt: a.Alternative}
		if a.Condition != nil {
			an.IfDef = a.Condition.Symbol
		}
		out = append(out, an)
	}
	return out
}

func fromDeclaration(path string, d schema.Declaration) (*Declaration, error) {
	switch d := d.(type) {
	case *schema.ClassDeclaration:
		c, err := fromClass(path, d)
		if err != nil {
			return nil, err
		}
		return &Declaration{Class: c}, nil
	case *schema.EnumDeclaration:
		return &Declaration{Enum: fromEnum(d)}, nil
	case *schema.InterfaceTypeDeclaration:
		i, err := fromInterface(path, d)
		if err != nil {
			return nil, err
		}
		return &Declaration{Interface: i}, nil
	default:
		return nil, NewDecodeError(path, fmt.Sprintf("unsupported declaration %T", d), nil)
	}
}

func fromClass(path string, c *schema.ClassDeclaration) (*Class, error) {
	doc := &Class{
		Name:        c.Name,
		Ancestor:    c.Ancestor,
		Implements:  cloneStrings(c.Interfaces),
		Comment:     commentLines(c.Comment),
		Annotations: fromAnnotations(c.Annotations),
	}
	for i, e := range c.Elements {
		elPath := fmt.Sprintf("%s.members[%d]", path, i)
		el, err := fromClassElement(elPath, e)
		if err != nil {
			return nil, err
		}
		doc.Members = append(doc.Members, el)
	}
	return doc, nil
}

func fromClassElement(path string, e schema.ClassElement) (*ClassElement, error) {
	switch e := e.(type) {
	case *schema.NestedConstDeclaration:
		return &ClassElement{
			Visibility: visibilityName(e.Visibility),
			Const:      &Const{Name: e.Name, Value: e.Value},
		}, nil
	case *schema.NestedTypeDeclaration:
		inner, err := fromDeclaration(path+".type", e.Declaration)
		if err != nil {
			return nil, err
		}
		return &ClassElement{Visibility: visibilityName(e.Visibility), Type: inner}, nil
	case *schema.ClassMemberDeclaration:
		el := &ClassElement{
			Visibility:  visibilityName(e.Visibility),
			Annotations: fromAnnotations(e.Annotations),
		}
		if err := fromMember(path, e.Member, el); err != nil {
			return nil, err
		}
		return el, nil
	default:
		return nil, NewDecodeError(path, fmt.Sprintf("unsupported class element %T", e), nil)
	}
}

func fromMember(path string, m schema.ClassMember, el *ClassElement) error {
	switch m := m.(type) {
	case *schema.FieldDeclaration:
		el.Field = &Field{Name: m.Name, Type: m.TypeName}
	case *schema.MethodInterfaceDeclaration:
		el.Method = &MethodHead{
			Kind:    m.Prototype.Kind.String(),
			Name:    m.Prototype.Name,
			Params:  fromParams(m.Prototype.Parameters),
			Returns: m.Prototype.ReturnType,
			Binding: bindingName(m.Binding),
			Comment: commentLines(m.Comment),
		}
	case *schema.PropertyDeclaration:
		el.Property = &Property{Name: m.Name, Type: m.TypeName, Read: m.Reader, Write: m.Writer}
	default:
		return NewDecodeError(path, fmt.Sprintf("unsupported class member %T", m), nil)
	}
	return nil
}

func fromEnum(e *schema.EnumDeclaration) *Enum {
	doc := &Enum{
		Name:        e.Name,
		Comment:     commentLines(e.Comment),
		Annotations: fromAnnotations(e.Annotations),
	}
	for _, v := range e.Values {
		value := &EnumValue{Name: v.Name}
		if v.Ordinal != nil {
			ordinal := *v.Ordinal
			value.Ordinal = &ordinal
		}
		doc.Values = append(doc.Values, value)
	}
	return doc
}

func fromInterface(path string, i *schema.InterfaceTypeDeclaration) (*Interface, error) {
	doc := &Interface{
		Name:     i.Name,
		Ancestor: i.Ancestor,
		GUID:     i.GUID,
		Comment:  commentLines(i.Comment),
	}
	for j, m := range i.Members {
		el := &ClassElement{Annotations: fromAnnotations(m.Annotations)}
		if err := fromMember(fmt.Sprintf("%s.members[%d]", path, j), m.Member, el); err != nil {
			return nil, err
		}
		doc.Members = append(doc.Members, el)
	}
	return doc, nil
}

func fromMethod(m *schema.MethodDeclaration) *Method {
	return &Method{
		Class:   m.Class,
		Kind:    m.Prototype.Kind.String(),
		Name:    m.Prototype.Name,
		Params:  fromParams(m.Prototype.Parameters),
		Returns: m.Prototype.ReturnType,
		Locals:  cloneStrings(m.LocalDecls),
		Body:    cloneStrings(m.Statements),
	}
}

func fromParams(params []*schema.Parameter) []*Param {
	var out []*Param
	for _, p := range params {
		out = append(out, &Param{Name: p.Name, Type: p.TypeName})
	}
	return out
}

func commentLines(c *schema.AnnotationComment) []string {
	if c == nil {
		return nil
	}
	return cloneStrings(c.Lines)
}

func visibilityName(v schema.Visibility) string {
	if v == schema.Unspecified {
		return ""
	}
	return v.String()
}

func bindingName(b schema.Binding) string {
	if b == schema.Static {
		return ""
	}
	return b.String()
}

func cloneStrings(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
