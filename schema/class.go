package schema

import "fmt"

// Visibility classifies a class element's access level.
type Visibility int

// Visibility levels. Unspecified renders no keyword and inherits whatever
// section the element lands in.
const (
	Unspecified Visibility = iota
	Private
	Protected
	Public
)

// String returns the Pascal keyword for the visibility, or "unspecified".
func (v Visibility) String() string {
	switch v {
	case Unspecified:
		return "unspecified"
	case Private:
		return "private"
	case Protected:
		return "protected"
	case Public:
		return "public"
	}
	return fmt.Sprintf("Visibility(%d)", int(v))
}

// PrototypeKind classifies a method prototype.
type PrototypeKind int

// Prototype kinds.
const (
	Procedure PrototypeKind = iota
	Constructor
	Destructor
	Function
)

// String returns the Pascal keyword introducing the prototype.
func (k PrototypeKind) String() string {
	switch k {
	case Procedure:
		return "procedure"
	case Constructor:
		return "constructor"
	case Destructor:
		return "destructor"
	case Function:
		return "function"
	}
	return fmt.Sprintf("PrototypeKind(%d)", int(k))
}

// Binding classifies a method's dispatch: statically bound, virtual, or an
// override of an inherited virtual method.
type Binding int

// Binding kinds.
const (
	Static Binding = iota
	Virtual
	Override
)

// String returns the binding name.
func (b Binding) String() string {
	switch b {
	case Static:
		return "static"
	case Virtual:
		return "virtual"
	case Override:
		return "override"
	}
	return fmt.Sprintf("Binding(%d)", int(b))
}

// ClassDeclaration declares a class type: name, optional ancestor, implemented
// interfaces, and an ordered element list (nested types, nested constants and
// members, each tagged with a visibility).
type ClassDeclaration struct {
	Name        string
	Ancestor    string   // Optional base class, "" means none
	Interfaces  []string // Implemented interface names, caller order preserved
	Comment     *AnnotationComment
	Annotations []*ConditionalAttributeAnnotation
	Elements    []ClassElement
}

// DeclaredName returns the class name.
func (c *ClassDeclaration) DeclaredName() string { return c.Name }

// AddMember appends a member with the given visibility.
func (c *ClassDeclaration) AddMember(visibility Visibility, member ClassMember) *ClassDeclaration {
	c.Elements = append(c.Elements, &ClassMemberDeclaration{
		Visibility: visibility,
		Member:     member,
	})
	return c
}

// ClassElement is the set of things a class body can hold:
// *NestedTypeDeclaration, *NestedConstDeclaration and
// *ClassMemberDeclaration. It is a closed sum.
type ClassElement interface {
	isClassElement()
	// ElementVisibility returns the element's declared visibility.
	ElementVisibility() Visibility
}

func (*NestedTypeDeclaration) isClassElement()  {}
func (*NestedConstDeclaration) isClassElement() {}
func (*ClassMemberDeclaration) isClassElement() {}

// NestedTypeDeclaration is a type declared inside a class body.
type NestedTypeDeclaration struct {
	Visibility  Visibility
	Declaration Declaration
}

// ElementVisibility returns the element's declared visibility.
func (d *NestedTypeDeclaration) ElementVisibility() Visibility { return d.Visibility }

// NestedConstDeclaration is a true constant declared inside a class body.
// Value is raw pre-formatted text ("42", "'comma'").
type NestedConstDeclaration struct {
	Visibility Visibility
	Name       string
	Value      string
}

// ElementVisibility returns the element's declared visibility.
func (d *NestedConstDeclaration) ElementVisibility() Visibility { return d.Visibility }

// ClassMemberDeclaration is a member (method, field or property) with its
// visibility and conditional attribute annotations.
type ClassMemberDeclaration struct {
	Visibility  Visibility
	Annotations []*ConditionalAttributeAnnotation
	Member      ClassMember
}

// ElementVisibility returns the member's declared visibility.
func (d *ClassMemberDeclaration) ElementVisibility() Visibility { return d.Visibility }

// ClassMember is the set of member kinds: *MethodInterfaceDeclaration,
// *FieldDeclaration and *PropertyDeclaration. It is a closed sum.
type ClassMember interface {
	isClassMember()
}

func (*MethodInterfaceDeclaration) isClassMember() {}
func (*FieldDeclaration) isClassMember()           {}
func (*PropertyDeclaration) isClassMember()        {}

// Parameter is one formal parameter of a prototype.
type Parameter struct {
	Name     string
	TypeName string
}

// Prototype is a method signature: kind, name, parameters and, for
// functions, a return type.
type Prototype struct {
	Kind       PrototypeKind
	Name       string
	Parameters []*Parameter
	ReturnType string // Functions only, "" otherwise
}

// MethodInterfaceDeclaration declares a method in a class or interface body:
// the prototype plus its binding.
type MethodInterfaceDeclaration struct {
	Prototype *Prototype
	Binding   Binding
	Comment   *AnnotationComment
}

// FieldDeclaration declares an instance field.
type FieldDeclaration struct {
	Name     string
	TypeName string
}

// PropertyDeclaration declares a property with optional read and write
// specifiers.
type PropertyDeclaration struct {
	Name     string
	TypeName string
	Reader   string // Optional read specifier, "" means none
	Writer   string // Optional write specifier, "" means none
}

// MethodDeclaration is an implementation-section method body: the owning
// class, the prototype, and raw local-variable and statement text. Raw text
// may span multiple lines; it is reindented line-by-line at emission time.
type MethodDeclaration struct {
	Class      string
	Prototype  *Prototype
	LocalDecls []string
	Statements []string
}
